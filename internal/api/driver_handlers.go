package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"partyrental/internal/service"
)

type DriverHandler struct {
	Service *service.DriverService
}

func NewDriverHandler(svc *service.DriverService) *DriverHandler {
	return &DriverHandler{Service: svc}
}

// GetRoute serves a driver's stop list for a day, defaulting to today.
func (h *DriverHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	date := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		var err error
		if date, err = parseDate(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	route, err := h.Service.Route(driverID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}
