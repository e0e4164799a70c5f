package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"partyrental/internal/service"
)

type InventoryHandler struct {
	Service *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: svc}
}

func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")
	items, err := h.Service.ListItems(category, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := h.Service.GetItem(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetItemCalendar serves the booked ranges for a calendar window. Defaults
// to the next 60 days when from/to are omitted.
func (h *InventoryHandler) GetItemCalendar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	from := time.Now().UTC()
	to := from.AddDate(0, 2, 0)
	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = parseDate(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from must be YYYY-MM-DD"})
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = parseDate(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to must be YYYY-MM-DD"})
			return
		}
	}

	calendar, err := h.Service.GetItemCalendar(id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calendar)
}

func (h *InventoryHandler) CheckItemAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	from, err := parseDate(r.URL.Query().Get("delivery_date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delivery_date must be YYYY-MM-DD"})
		return
	}
	to, err := parseDate(r.URL.Query().Get("pickup_date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pickup_date must be YYYY-MM-DD"})
		return
	}

	resp, err := h.Service.CheckItemAvailability(id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
