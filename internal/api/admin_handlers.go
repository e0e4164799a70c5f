package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"partyrental/internal/entities"
	"partyrental/internal/service"
)

type AdminHandler struct {
	Bookings  *service.BookingService
	Inventory *service.InventoryService
	Admin     *service.AdminService
}

func NewAdminHandler(bookings *service.BookingService, inventory *service.InventoryService, admin *service.AdminService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Inventory: inventory, Admin: admin}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	date := r.URL.Query().Get("date")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.Bookings.ListBookings(status, date, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	update, err := toUpdateEntity(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	resp, err := h.Bookings.UpdateBooking(id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Bookings.DeleteBooking(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking deleted"})
}

// ListConflicts feeds the dashboard's double-booking panel.
func (h *AdminHandler) ListConflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := h.Admin.ListConflicts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conflicts)
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Admin.DashboardStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) DriverWorkload(w http.ResponseWriter, r *http.Request) {
	workload, err := h.Admin.DriverWorkload()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workload)
}

func (h *AdminHandler) UnassignedBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Admin.UnassignedBookings()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, map[string]any{
			"id":            b.ID,
			"order_number":  b.OrderNumber,
			"customer_name": b.CustomerName,
			"delivery_date": b.DeliveryDate,
			"pickup_date":   b.PickupDate,
			"address":       b.DeliveryAddress,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.InventoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	item, err := h.Inventory.UpdateItem(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
