package service

import (
	"fmt"
	"log"

	"partyrental/internal/conflict"
	"partyrental/internal/db"
	"partyrental/internal/entities"
)

type AdminService struct {
	Bookings  BookingStore
	Inventory InventoryStore
	Drivers   DriverStore
	Stats     StatsStore
	Detector  conflict.Detector
}

func NewAdminService(bookings BookingStore, inventory InventoryStore, drivers DriverStore, stats StatsStore) *AdminService {
	return &AdminService{Bookings: bookings, Inventory: inventory, Drivers: drivers, Stats: stats}
}

// ListConflicts runs system-wide conflict detection for the admin
// dashboard: every unordered pair of live bookings double-claiming the same
// item.
func (s *AdminService) ListConflicts() ([]entities.ConflictReport, error) {
	claims, err := s.Bookings.ListActiveClaims()
	if err != nil {
		return nil, fmt.Errorf("internal error loading claims: %w", err)
	}

	pairs, err := s.Detector.FindConflicts(claimsToReservations(claims))
	if err != nil {
		return nil, err
	}

	claimsByID := make(map[string]db.BookingItemClaim, len(claims))
	for _, c := range claims {
		claimsByID[c.BookingItemID] = c
	}

	reports := make([]entities.ConflictReport, 0, len(pairs))
	for _, p := range pairs {
		a, b := claimsByID[p.A.ID], claimsByID[p.B.ID]
		reports = append(reports, entities.ConflictReport{
			ItemID:   p.ResourceID,
			ItemName: a.ItemName,
			BookingA: entities.ConflictBooking{
				OrderNumber:  a.OrderNumber,
				CustomerName: a.CustomerName,
				DeliveryDate: a.DeliveryDate,
				PickupDate:   a.PickupDate,
			},
			BookingB: entities.ConflictBooking{
				OrderNumber:  b.OrderNumber,
				CustomerName: b.CustomerName,
				DeliveryDate: b.DeliveryDate,
				PickupDate:   b.PickupDate,
			},
		})
	}
	return reports, nil
}

func (s *AdminService) DashboardStats() (*entities.DashboardStats, error) {
	stats := &entities.DashboardStats{}

	var err error
	if stats.BookingsByStatus, err = s.Stats.BookingCountsByStatus(); err != nil {
		return nil, err
	}
	if stats.UpcomingDeliveries, err = s.Stats.UpcomingDeliveries(); err != nil {
		return nil, err
	}
	if stats.UpcomingPickups, err = s.Stats.UpcomingPickups(); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.Stats.Revenue(); err != nil {
		return nil, err
	}
	if stats.InventoryCount, err = s.Inventory.CountItems(); err != nil {
		return nil, err
	}

	conflicts, err := s.ListConflicts()
	if err != nil {
		// The dashboard is still useful without the conflict count.
		log.Printf("Could not compute conflicts for dashboard: %v", err)
	} else {
		stats.ActiveConflicts = len(conflicts)
	}
	return stats, nil
}

func (s *AdminService) DriverWorkload() ([]entities.DriverWorkload, error) {
	return s.Drivers.Workload()
}

func (s *AdminService) UnassignedBookings() ([]db.Booking, error) {
	return s.Drivers.UnassignedBookings()
}
