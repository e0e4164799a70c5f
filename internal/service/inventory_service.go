package service

import (
	"errors"
	"time"

	"partyrental/internal/conflict"
	"partyrental/internal/db"
	"partyrental/internal/entities"
	httperrors "partyrental/internal/errors"
	"partyrental/internal/repository"
	"partyrental/internal/utils"
)

type InventoryService struct {
	Repo     InventoryStore
	Bookings BookingStore
	Detector conflict.Detector
}

func NewInventoryService(repo InventoryStore, bookings BookingStore) *InventoryService {
	return &InventoryService{Repo: repo, Bookings: bookings}
}

func (s *InventoryService) ListItems(category, status string) ([]entities.InventoryItemResponse, error) {
	items, err := s.Repo.ListItems(category, status)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemResponse(item))
	}
	return responses, nil
}

func (s *InventoryService) GetItem(id string) (*entities.InventoryItemResponse, error) {
	item, err := s.Repo.GetItem(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, httperrors.ErrNotFound("inventory item not found")
		}
		return nil, err
	}
	resp := itemResponse(*item)
	return &resp, nil
}

// GetItemCalendar returns the booked date ranges for one item inside a
// window, the data behind the admin calendar's day highlighting.
func (s *InventoryService) GetItemCalendar(id string, from, to time.Time) (*entities.ItemCalendar, error) {
	item, err := s.Repo.GetItem(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, httperrors.ErrNotFound("inventory item not found")
		}
		return nil, err
	}

	window, err := conflict.NewInterval(from, to)
	if err != nil {
		return nil, httperrors.ErrBadRequest(err.Error())
	}

	claims, err := s.Bookings.ListActiveClaimsOverlapping(window.Start, window.End)
	if err != nil {
		return nil, err
	}

	calendar := &entities.ItemCalendar{
		ItemID:      item.ID,
		ItemName:    item.Name,
		From:        window.Start,
		To:          window.End,
		BookedDates: []entities.BookedRange{},
	}
	for _, c := range claims {
		if c.InventoryItemID != id {
			continue
		}
		calendar.BookedDates = append(calendar.BookedDates, entities.BookedRange{
			OrderNumber:  c.OrderNumber,
			DeliveryDate: c.DeliveryDate,
			PickupDate:   c.PickupDate,
		})
	}
	return calendar, nil
}

// CheckItemAvailability answers the single-item availability question for
// the booking wizard's date picker.
func (s *InventoryService) CheckItemAvailability(id string, from, to time.Time) (*entities.AvailabilityResponse, error) {
	if _, err := s.Repo.GetItem(id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, httperrors.ErrNotFound("inventory item not found")
		}
		return nil, err
	}

	requested, err := conflict.NewInterval(from, to)
	if err != nil {
		return nil, httperrors.ErrBadRequest(err.Error())
	}
	claims, err := s.Bookings.ListActiveClaimsOverlapping(requested.Start, requested.End)
	if err != nil {
		return nil, err
	}

	unavailable, err := s.Detector.CheckAvailability([]string{id}, claimsToReservations(claims), requested)
	if err != nil {
		return nil, err
	}

	claimsByItem := make(map[string]db.BookingItemClaim, len(claims))
	for _, c := range claims {
		claimsByItem[c.BookingItemID] = c
	}

	resp := &entities.AvailabilityResponse{Available: len(unavailable) == 0, Message: "Item available"}
	for _, u := range unavailable {
		for _, blocking := range u.Conflicts {
			claim := claimsByItem[blocking.ID]
			resp.Conflicts = append(resp.Conflicts, entities.ItemConflict{
				ItemID:           u.ResourceID,
				ItemName:         claim.ItemName,
				ConflictingOrder: claim.OrderNumber,
				ConflictDates:    blocking.Interval.String(),
			})
		}
		resp.Message = "Item is booked for the requested dates"
	}
	return resp, nil
}

func (s *InventoryService) UpdateItem(id string, req *entities.InventoryUpdateRequest) (*entities.InventoryItemResponse, error) {
	item, err := s.Repo.GetItem(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, httperrors.ErrNotFound("inventory item not found")
		}
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.BasePrice != nil {
		item.BasePrice = *req.BasePrice
	}
	if req.RequiresPower != nil {
		item.RequiresPower = *req.RequiresPower
	}
	if req.MinSpaceSqft != nil {
		item.MinSpaceSqft.Valid = true
		item.MinSpaceSqft.Int64 = int64(*req.MinSpaceSqft)
	}
	if req.AllowedSurfaces != nil {
		item.AllowedSurfaces = utils.JoinSurfaces(req.AllowedSurfaces)
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := s.Repo.UpdateItem(item); err != nil {
		return nil, err
	}
	resp := itemResponse(*item)
	return &resp, nil
}
