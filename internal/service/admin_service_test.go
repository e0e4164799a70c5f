package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyrental/internal/db"
)

func TestListConflicts(t *testing.T) {
	claims := []db.BookingItemClaim{
		claim("bounce-1", "bi-1", "PTY-A", day(2025, 10, 18), day(2025, 10, 21)),
		claim("bounce-1", "bi-2", "PTY-B", day(2025, 10, 21), day(2025, 10, 23)),
		claim("table-1", "bi-3", "PTY-C", day(2025, 10, 18), day(2025, 10, 21)),
	}

	repo := new(MockBookingStore)
	repo.On("ListActiveClaims").Return(claims, nil)
	svc := NewAdminService(repo, nil, nil, nil)

	reports, err := svc.ListConflicts()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "bounce-1", reports[0].ItemID)
	assert.Equal(t, "Item bounce-1", reports[0].ItemName)
	assert.Equal(t, "PTY-A", reports[0].BookingA.OrderNumber)
	assert.Equal(t, "PTY-B", reports[0].BookingB.OrderNumber)
	assert.Equal(t, day(2025, 10, 21), reports[0].BookingB.DeliveryDate)
}

func TestListConflicts_NoConflicts(t *testing.T) {
	repo := new(MockBookingStore)
	repo.On("ListActiveClaims").Return([]db.BookingItemClaim{
		claim("bounce-1", "bi-1", "PTY-A", day(2025, 10, 18), day(2025, 10, 20)),
		claim("bounce-1", "bi-2", "PTY-B", day(2025, 10, 21), day(2025, 10, 23)),
	}, nil)
	svc := NewAdminService(repo, nil, nil, nil)

	reports, err := svc.ListConflicts()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestDashboardStats(t *testing.T) {
	repo := new(MockBookingStore)
	repo.On("ListActiveClaims").Return([]db.BookingItemClaim{
		claim("bounce-1", "bi-1", "PTY-A", day(2025, 10, 18), day(2025, 10, 21)),
		claim("bounce-1", "bi-2", "PTY-B", day(2025, 10, 20), day(2025, 10, 22)),
	}, nil)

	stats := new(MockStatsStore)
	stats.On("BookingCountsByStatus").Return(map[string]int64{
		db.BookingStatusPending:   2,
		db.BookingStatusConfirmed: 5,
	}, nil)
	stats.On("UpcomingDeliveries").Return(int64(3), nil)
	stats.On("UpcomingPickups").Return(int64(1), nil)
	stats.On("Revenue").Return(1840.5, nil)

	inventory := new(MockInventoryStore)
	inventory.On("CountItems").Return(int64(42), nil)

	svc := NewAdminService(repo, inventory, nil, stats)
	got, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.BookingsByStatus[db.BookingStatusConfirmed])
	assert.Equal(t, int64(3), got.UpcomingDeliveries)
	assert.Equal(t, int64(1), got.UpcomingPickups)
	assert.Equal(t, 1840.5, got.TotalRevenue)
	assert.Equal(t, int64(42), got.InventoryCount)
	assert.Equal(t, 1, got.ActiveConflicts)
}

func TestDashboardStats_ConflictErrorIsNotFatal(t *testing.T) {
	repo := new(MockBookingStore)
	repo.On("ListActiveClaims").Return([]db.BookingItemClaim{}, errors.New("timeout"))

	stats := new(MockStatsStore)
	stats.On("BookingCountsByStatus").Return(map[string]int64{}, nil)
	stats.On("UpcomingDeliveries").Return(int64(0), nil)
	stats.On("UpcomingPickups").Return(int64(0), nil)
	stats.On("Revenue").Return(0.0, nil)

	inventory := new(MockInventoryStore)
	inventory.On("CountItems").Return(int64(0), nil)

	svc := NewAdminService(repo, inventory, nil, stats)
	got, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Zero(t, got.ActiveConflicts)
}
