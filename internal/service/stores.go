package service

import (
	"time"

	"partyrental/internal/db"
	"partyrental/internal/entities"
	"partyrental/internal/repository"
)

// Store interfaces consumed by the services. The repository types satisfy
// them; tests substitute mocks.

type BookingStore interface {
	ListActiveClaims() ([]db.BookingItemClaim, error)
	ListActiveClaimsOverlapping(from, to time.Time) ([]db.BookingItemClaim, error)
	CreateBooking(booking *db.Booking, items []db.BookingItem) error
	GetBookingByOrderNumber(orderNumber string) (*db.Booking, error)
	GetBookingByID(id string) (*db.Booking, error)
	GetBookingItems(bookingID string) ([]db.BookingItem, []string, error)
	ListBookings(status, date string, limit, offset int) ([]db.Booking, int64, error)
	UpdateBooking(b *db.Booking) error
	UpdateBookingStatus(id, status string) error
	DeleteBooking(id string) error
}

type InventoryStore interface {
	ListItems(category, status string) ([]db.InventoryItem, error)
	GetItem(id string) (*db.InventoryItem, error)
	GetItemsByIDs(ids []string) (map[string]db.InventoryItem, error)
	UpdateItem(item *db.InventoryItem) error
	CountItems() (int64, error)
}

type DriverStore interface {
	GetDriver(id string) (*db.Driver, error)
	Deliveries(driverID string, date time.Time) ([]entities.RouteStop, error)
	Pickups(driverID string, date time.Time) ([]entities.RouteStop, error)
	Workload() ([]entities.DriverWorkload, error)
	UnassignedBookings() ([]db.Booking, error)
}

type StatsStore interface {
	BookingCountsByStatus() (map[string]int64, error)
	UpcomingDeliveries() (int64, error)
	UpcomingPickups() (int64, error)
	Revenue() (float64, error)
}

var (
	_ BookingStore   = (*repository.BookingRepository)(nil)
	_ InventoryStore = (*repository.InventoryRepository)(nil)
	_ DriverStore    = (*repository.DriverRepository)(nil)
	_ StatsStore     = (*repository.StatsRepository)(nil)
)
