package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"partyrental/internal/db"
	"partyrental/internal/entities"
)

// MockBookingStore mocks the booking repository.
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) ListActiveClaims() ([]db.BookingItemClaim, error) {
	args := m.Called()
	return args.Get(0).([]db.BookingItemClaim), args.Error(1)
}

func (m *MockBookingStore) ListActiveClaimsOverlapping(from, to time.Time) ([]db.BookingItemClaim, error) {
	args := m.Called(from, to)
	return args.Get(0).([]db.BookingItemClaim), args.Error(1)
}

func (m *MockBookingStore) CreateBooking(booking *db.Booking, items []db.BookingItem) error {
	args := m.Called(booking, items)
	return args.Error(0)
}

func (m *MockBookingStore) GetBookingByOrderNumber(orderNumber string) (*db.Booking, error) {
	args := m.Called(orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingStore) GetBookingByID(id string) (*db.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingStore) GetBookingItems(bookingID string) ([]db.BookingItem, []string, error) {
	args := m.Called(bookingID)
	return args.Get(0).([]db.BookingItem), args.Get(1).([]string), args.Error(2)
}

func (m *MockBookingStore) ListBookings(status, date string, limit, offset int) ([]db.Booking, int64, error) {
	args := m.Called(status, date, limit, offset)
	return args.Get(0).([]db.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingStore) UpdateBooking(b *db.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingStore) UpdateBookingStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockBookingStore) DeleteBooking(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockInventoryStore mocks the inventory repository.
type MockInventoryStore struct {
	mock.Mock
}

func (m *MockInventoryStore) ListItems(category, status string) ([]db.InventoryItem, error) {
	args := m.Called(category, status)
	return args.Get(0).([]db.InventoryItem), args.Error(1)
}

func (m *MockInventoryStore) GetItem(id string) (*db.InventoryItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.InventoryItem), args.Error(1)
}

func (m *MockInventoryStore) GetItemsByIDs(ids []string) (map[string]db.InventoryItem, error) {
	args := m.Called(ids)
	return args.Get(0).(map[string]db.InventoryItem), args.Error(1)
}

func (m *MockInventoryStore) UpdateItem(item *db.InventoryItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockInventoryStore) CountItems() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockDriverStore mocks the driver repository.
type MockDriverStore struct {
	mock.Mock
}

func (m *MockDriverStore) GetDriver(id string) (*db.Driver, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Driver), args.Error(1)
}

func (m *MockDriverStore) Deliveries(driverID string, date time.Time) ([]entities.RouteStop, error) {
	args := m.Called(driverID, date)
	return args.Get(0).([]entities.RouteStop), args.Error(1)
}

func (m *MockDriverStore) Pickups(driverID string, date time.Time) ([]entities.RouteStop, error) {
	args := m.Called(driverID, date)
	return args.Get(0).([]entities.RouteStop), args.Error(1)
}

func (m *MockDriverStore) Workload() ([]entities.DriverWorkload, error) {
	args := m.Called()
	return args.Get(0).([]entities.DriverWorkload), args.Error(1)
}

func (m *MockDriverStore) UnassignedBookings() ([]db.Booking, error) {
	args := m.Called()
	return args.Get(0).([]db.Booking), args.Error(1)
}

// MockStatsStore mocks the stats repository.
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) BookingCountsByStatus() (map[string]int64, error) {
	args := m.Called()
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStatsStore) UpcomingDeliveries() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsStore) UpcomingPickups() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsStore) Revenue() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}
