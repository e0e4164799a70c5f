package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"partyrental/internal/conflict"
	"partyrental/internal/db"
	"partyrental/internal/entities"
	httperrors "partyrental/internal/errors"
	"partyrental/internal/repository"
	"partyrental/internal/utils"
)

const defaultDeliveryFee = 50.0

type BookingService struct {
	Repo      BookingStore
	Inventory InventoryStore
	Sender    *SenderService
	Detector  conflict.Detector
}

func NewBookingService(repo BookingStore, inventory InventoryStore, sender *SenderService) *BookingService {
	return &BookingService{Repo: repo, Inventory: inventory, Sender: sender}
}

// claimsToReservations maps booking-item rows onto the conflict engine's
// snapshot shape. The store already excludes cancelled and completed
// bookings, so every claim maps to an active reservation; the engine
// re-filters by status regardless.
func claimsToReservations(claims []db.BookingItemClaim) []conflict.Reservation {
	reservations := make([]conflict.Reservation, 0, len(claims))
	for _, c := range claims {
		reservations = append(reservations, conflict.Reservation{
			ID:         c.BookingItemID,
			ResourceID: c.InventoryItemID,
			Interval:   conflict.Interval{Start: c.DeliveryDate, End: c.PickupDate},
			Status:     conflict.StatusActive,
		})
	}
	return reservations
}

// CheckAvailability reports whether every requested item is free for the
// requested window, naming the blocking order for each one that is not.
func (s *BookingService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	requested, err := conflict.NewInterval(req.DeliveryDate, req.PickupDate)
	if err != nil {
		return nil, httperrors.ErrBadRequest(err.Error())
	}
	if len(req.ItemIDs) == 0 {
		return nil, httperrors.ErrBadRequest("item_ids must not be empty")
	}

	claims, err := s.Repo.ListActiveClaimsOverlapping(requested.Start, requested.End)
	if err != nil {
		log.Printf("Error loading claims for availability check: %v", err)
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}

	unavailable, err := s.Detector.CheckAvailability(req.ItemIDs, claimsToReservations(claims), requested)
	if err != nil {
		return nil, err
	}

	claimsByItem := make(map[string]db.BookingItemClaim, len(claims))
	for _, c := range claims {
		claimsByItem[c.BookingItemID] = c
	}

	response := &entities.AvailabilityResponse{Available: len(unavailable) == 0}
	for _, u := range unavailable {
		for _, blocking := range u.Conflicts {
			claim := claimsByItem[blocking.ID]
			response.Conflicts = append(response.Conflicts, entities.ItemConflict{
				ItemID:           u.ResourceID,
				ItemName:         claim.ItemName,
				ConflictingOrder: claim.OrderNumber,
				ConflictDates:    blocking.Interval.String(),
			})
		}
	}
	if response.Available {
		response.Message = "All items available"
	} else {
		response.Message = fmt.Sprintf("Found %d conflict(s)", len(response.Conflicts))
	}
	return response, nil
}

// FilterBookableItems narrows the catalog to items that fit the party's
// space, surface, and power constraints, and, when a date range is given,
// are not already booked for it.
func (s *BookingService) FilterBookableItems(req entities.FilterItemsRequest) ([]entities.InventoryItemResponse, error) {
	items, err := s.Inventory.ListItems("", db.ItemStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("internal error loading inventory: %w", err)
	}

	byID := make(map[string]db.InventoryItem, len(items))
	resources := make([]conflict.Resource, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		resources = append(resources, conflict.Resource{ID: item.ID})
	}

	eligible := func(r conflict.Resource) bool {
		item := byID[r.ID]
		if !item.WebsiteVisible {
			return false
		}
		if item.MinSpaceSqft.Valid && req.AreaSqft < int(item.MinSpaceSqft.Int64) {
			return false
		}
		if req.Surface != "" && !utils.SurfaceAllowed(item.AllowedSurfaces, req.Surface) {
			return false
		}
		if item.RequiresPower && !req.HasPower {
			return false
		}
		return true
	}

	// Without dates only the eligibility predicate applies: an empty
	// snapshot against the zero interval filters nothing out on time.
	var reservations []conflict.Reservation
	var requested conflict.Interval
	if req.DeliveryDate != nil && req.PickupDate != nil {
		requested, err = conflict.NewInterval(*req.DeliveryDate, *req.PickupDate)
		if err != nil {
			return nil, httperrors.ErrBadRequest(err.Error())
		}
		claims, err := s.Repo.ListActiveClaimsOverlapping(requested.Start, requested.End)
		if err != nil {
			return nil, fmt.Errorf("internal error loading claims: %w", err)
		}
		reservations = claimsToReservations(claims)
	}

	available, err := s.Detector.FilterAvailable(resources, reservations, requested, eligible)
	if err != nil {
		return nil, err
	}

	responses := make([]entities.InventoryItemResponse, 0, len(available))
	for _, r := range available {
		responses = append(responses, itemResponse(byID[r.ID]))
	}
	return responses, nil
}

// CreateBooking validates the window, re-checks availability, and persists
// the booking. The repository takes per-item advisory locks inside the
// insert transaction and the schema carries an exclusion constraint, so two
// concurrent requests for the same unit cannot both commit; the engine's
// verdict alone is not the serialization point.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	availability, err := s.CheckAvailability(entities.AvailabilityRequest{
		ItemIDs:      req.ItemIDs,
		DeliveryDate: req.DeliveryDate,
		PickupDate:   req.PickupDate,
	})
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		first := availability.Conflicts[0]
		return nil, httperrors.ErrConflict(fmt.Sprintf(
			"%s is already booked by order %s (%s)", first.ItemName, first.ConflictingOrder, first.ConflictDates))
	}

	itemsByID, err := s.Inventory.GetItemsByIDs(req.ItemIDs)
	if err != nil {
		return nil, fmt.Errorf("internal error loading items: %w", err)
	}

	now := time.Now().UTC()
	booking := &db.Booking{
		ID:                 uuid.NewString(),
		OrderNumber:        utils.GenerateOrderNumber(now),
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		DeliveryDate:       req.DeliveryDate,
		PickupDate:         req.PickupDate,
		DeliveryTimeWindow: req.DeliveryTimeWindow,
		PickupTimeWindow:   req.PickupTimeWindow,
		RentalDays:         utils.RentalDays(req.DeliveryDate, req.PickupDate),
		DeliveryAddress:    req.DeliveryAddress,
		SetupInstructions:  req.SetupInstructions,
		Status:             db.BookingStatusPending,
		DeliveryFee:        defaultDeliveryFee,
		Tip:                req.Tip,
		Language:           req.Language,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var bookingItems []db.BookingItem
	for _, id := range req.ItemIDs {
		item, ok := itemsByID[id]
		if !ok {
			return nil, httperrors.ErrNotFound(fmt.Sprintf("inventory item %s not found", id))
		}
		if item.Status != db.ItemStatusAvailable {
			return nil, httperrors.ErrConflict(fmt.Sprintf("%s is not rentable (status %s)", item.Name, item.Status))
		}
		booking.Subtotal += item.BasePrice
		bookingItems = append(bookingItems, db.BookingItem{
			ID:              uuid.NewString(),
			InventoryItemID: item.ID,
			PriceAtBooking:  item.BasePrice,
		})
	}
	booking.Total = booking.Subtotal + booking.DeliveryFee + booking.Tip

	if err := s.Repo.CreateBooking(booking, bookingItems); err != nil {
		log.Printf("Error creating booking %s: %v", booking.OrderNumber, err)
		return nil, httperrors.ErrConflict("could not create booking: items were taken concurrently")
	}

	response := s.bookingResponse(booking, bookingItems, itemNames(req.ItemIDs, itemsByID))
	if s.Sender != nil {
		s.Sender.SendBookingEmail(*response, booking.Status)
		s.Sender.SendBookingSMS(*response, booking.Status)
	}
	return response, nil
}

func itemNames(ids []string, itemsByID map[string]db.InventoryItem) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, itemsByID[id].Name)
	}
	return names
}

func (s *BookingService) GetBooking(orderNumber string) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetBookingByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, httperrors.ErrNotFound("booking not found")
		}
		return nil, err
	}
	items, names, err := s.Repo.GetBookingItems(booking.ID)
	if err != nil {
		return nil, err
	}
	return s.bookingResponse(booking, items, names), nil
}

func (s *BookingService) ListBookings(status, date string, limit, offset int) (*entities.BookingsList, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	bookings, total, err := s.Repo.ListBookings(status, date, limit, offset)
	if err != nil {
		return nil, err
	}
	list := &entities.BookingsList{Total: total, Limit: limit, Offset: offset}
	for i := range bookings {
		items, names, err := s.Repo.GetBookingItems(bookings[i].ID)
		if err != nil {
			return nil, err
		}
		list.Bookings = append(list.Bookings, *s.bookingResponse(&bookings[i], items, names))
	}
	return list, nil
}

// UpdateBookingByOrderNumber resolves a customer-facing order number to the
// internal ID and applies the update.
func (s *BookingService) UpdateBookingByOrderNumber(orderNumber string, req *entities.BookingUpdateRequest) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetBookingByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, httperrors.ErrNotFound("booking not found")
		}
		return nil, err
	}
	return s.UpdateBooking(booking.ID, req)
}

// UpdateBooking applies an admin edit. Date changes re-run the availability
// check against every other booking's claims first.
func (s *BookingService) UpdateBooking(id string, req *entities.BookingUpdateRequest) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, httperrors.ErrNotFound("booking not found")
		}
		return nil, err
	}
	items, names, err := s.Repo.GetBookingItems(booking.ID)
	if err != nil {
		return nil, err
	}

	if req.DeliveryDate != nil {
		booking.DeliveryDate = *req.DeliveryDate
	}
	if req.PickupDate != nil {
		booking.PickupDate = *req.PickupDate
	}
	if req.DeliveryDate != nil || req.PickupDate != nil {
		if err := s.checkReschedule(booking, items); err != nil {
			return nil, err
		}
		booking.RentalDays = utils.RentalDays(booking.DeliveryDate, booking.PickupDate)
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.AssignedDriverID != nil {
		booking.AssignedDriverID = nullString(*req.AssignedDriverID)
	}
	if req.PickupDriverID != nil {
		booking.PickupDriverID = nullString(*req.PickupDriverID)
	}
	if req.DeliveryAddress != nil {
		booking.DeliveryAddress = *req.DeliveryAddress
	}

	if req.Status != nil && (*req.Status == db.BookingStatusCancelled || *req.Status == db.BookingStatusCompleted) {
		if err := s.Repo.UpdateBookingStatus(booking.ID, *req.Status); err != nil {
			return nil, err
		}
	} else if err := s.Repo.UpdateBooking(booking); err != nil {
		return nil, err
	}

	return s.bookingResponse(booking, items, names), nil
}

// checkReschedule verifies the new window against every claim except the
// booking's own.
func (s *BookingService) checkReschedule(booking *db.Booking, items []db.BookingItem) error {
	requested, err := conflict.NewInterval(booking.DeliveryDate, booking.PickupDate)
	if err != nil {
		return httperrors.ErrBadRequest(err.Error())
	}

	claims, err := s.Repo.ListActiveClaimsOverlapping(requested.Start, requested.End)
	if err != nil {
		return fmt.Errorf("internal error loading claims: %w", err)
	}
	var others []db.BookingItemClaim
	for _, c := range claims {
		if c.BookingID != booking.ID {
			others = append(others, c)
		}
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.InventoryItemID)
	}
	unavailable, err := s.Detector.CheckAvailability(ids, claimsToReservations(others), requested)
	if err != nil {
		return err
	}
	if len(unavailable) > 0 {
		return httperrors.ErrConflict(fmt.Sprintf("item %s is booked elsewhere in the new window", unavailable[0].ResourceID))
	}
	return nil
}

// CancelBooking moves the booking to cancelled, releasing its item claims,
// and notifies the customer.
func (s *BookingService) CancelBooking(orderNumber string) error {
	booking, err := s.Repo.GetBookingByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return httperrors.ErrNotFound("booking not found")
		}
		return err
	}
	if booking.Status == db.BookingStatusCancelled {
		return nil
	}
	if booking.Status == db.BookingStatusCompleted {
		return httperrors.ErrConflict("completed bookings cannot be cancelled")
	}

	if err := s.Repo.UpdateBookingStatus(booking.ID, db.BookingStatusCancelled); err != nil {
		return err
	}

	if s.Sender != nil {
		_, names, err := s.Repo.GetBookingItems(booking.ID)
		if err != nil {
			log.Printf("Could not load items for cancellation notice %s: %v", orderNumber, err)
		}
		booking.Status = db.BookingStatusCancelled
		resp := s.bookingResponse(booking, nil, names)
		s.Sender.SendBookingEmail(*resp, db.BookingStatusCancelled)
		s.Sender.SendBookingSMS(*resp, db.BookingStatusCancelled)
	}
	return nil
}

func (s *BookingService) DeleteBooking(id string) error {
	err := s.Repo.DeleteBooking(id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return httperrors.ErrNotFound("booking not found")
	}
	return err
}

func (s *BookingService) bookingResponse(b *db.Booking, items []db.BookingItem, names []string) *entities.BookingResponse {
	resp := &entities.BookingResponse{
		OrderNumber:        b.OrderNumber,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		DeliveryDate:       b.DeliveryDate,
		PickupDate:         b.PickupDate,
		DeliveryTimeWindow: b.DeliveryTimeWindow,
		PickupTimeWindow:   b.PickupTimeWindow,
		RentalDays:         b.RentalDays,
		DeliveryAddress:    b.DeliveryAddress,
		SetupInstructions:  b.SetupInstructions,
		Status:             b.Status,
		AssignedDriverID:   b.AssignedDriverID.String,
		PickupDriverID:     b.PickupDriverID.String,
		Subtotal:           b.Subtotal,
		DeliveryFee:        b.DeliveryFee,
		Tip:                b.Tip,
		Total:              b.Total,
		Language:           b.Language,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	for i, item := range items {
		detail := entities.BookingItemDetail{InventoryItemID: item.InventoryItemID, Price: item.PriceAtBooking}
		if i < len(names) {
			detail.Name = names[i]
		}
		resp.Items = append(resp.Items, detail)
	}
	return resp
}

func itemResponse(item db.InventoryItem) entities.InventoryItemResponse {
	resp := entities.InventoryItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Description:     item.Description,
		BasePrice:       item.BasePrice,
		RequiresPower:   item.RequiresPower,
		AllowedSurfaces: utils.SplitSurfaces(item.AllowedSurfaces),
		Status:          item.Status,
	}
	if item.MinSpaceSqft.Valid {
		resp.MinSpaceSqft = int(item.MinSpaceSqft.Int64)
	}
	return resp
}

func nullString(s string) (ns sql.NullString) {
	if s != "" {
		ns.Valid = true
		ns.String = s
	}
	return ns
}
