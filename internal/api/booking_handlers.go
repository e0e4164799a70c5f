package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"partyrental/internal/entities"
	"partyrental/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	delivery, err := parseDate(req.DeliveryDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delivery_date must be YYYY-MM-DD"})
		return
	}
	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pickup_date must be YYYY-MM-DD"})
		return
	}

	resp, err := h.Service.CheckAvailability(entities.AvailabilityRequest{
		ItemIDs:      req.ItemIDs,
		DeliveryDate: delivery,
		PickupDate:   pickup,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) FilterItems(w http.ResponseWriter, r *http.Request) {
	var req FilterItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	filter := entities.FilterItemsRequest{
		AreaSqft: req.AreaSqft,
		Surface:  req.Surface,
		HasPower: req.HasPower,
	}
	if req.DeliveryDate != "" && req.PickupDate != "" {
		delivery, err := parseDate(req.DeliveryDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delivery_date must be YYYY-MM-DD"})
			return
		}
		pickup, err := parseDate(req.PickupDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pickup_date must be YYYY-MM-DD"})
			return
		}
		filter.DeliveryDate = &delivery
		filter.PickupDate = &pickup
	}

	items, err := h.Service.FilterBookableItems(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.CustomerName == "" || req.CustomerEmail == "" || len(req.ItemIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "customer_name, customer_email and item_ids are required"})
		return
	}
	delivery, err := parseDate(req.DeliveryDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delivery_date must be YYYY-MM-DD"})
		return
	}
	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pickup_date must be YYYY-MM-DD"})
		return
	}

	resp, err := h.Service.CreateBooking(&entities.BookingRequest{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		DeliveryDate:       delivery,
		PickupDate:         pickup,
		DeliveryTimeWindow: req.DeliveryTimeWindow,
		PickupTimeWindow:   req.PickupTimeWindow,
		DeliveryAddress:    req.DeliveryAddress,
		SetupInstructions:  req.SetupInstructions,
		ItemIDs:            req.ItemIDs,
		Tip:                req.Tip,
		Language:           req.Language,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order"]
	resp, err := h.Service.GetBooking(orderNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order"]
	booking, err := h.Service.GetBooking(orderNumber)
	if err != nil {
		writeError(w, err)
		return
	}

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
	// Customers may only move dates or the address, not lifecycle state.
	update.Status = nil
	update.AssignedDriverID = nil
	update.PickupDriverID = nil

	resp, err := h.Service.UpdateBookingByOrderNumber(booking.OrderNumber, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// toUpdateEntity parses the wire update shape's date strings.
func toUpdateEntity(req *UpdateBookingRequest) (*entities.BookingUpdateRequest, error) {
	update := &entities.BookingUpdateRequest{
		Status:           req.Status,
		AssignedDriverID: req.AssignedDriverID,
		PickupDriverID:   req.PickupDriverID,
		DeliveryAddress:  req.DeliveryAddress,
	}
	if req.DeliveryDate != nil {
		d, err := parseDate(*req.DeliveryDate)
		if err != nil {
			return nil, errInvalidDate("delivery_date")
		}
		update.DeliveryDate = &d
	}
	if req.PickupDate != nil {
		p, err := parseDate(*req.PickupDate)
		if err != nil {
			return nil, errInvalidDate("pickup_date")
		}
		update.PickupDate = &p
	}
	return update, nil
}

func errInvalidDate(field string) error {
	return fmt.Errorf("%s must be YYYY-MM-DD", field)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order"]
	if err := h.Service.CancelBooking(orderNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}
