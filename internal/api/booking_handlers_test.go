package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyrental/internal/db"
	"partyrental/internal/service"
)

// stubBookingStore serves handler tests a fixed claim set; the write paths
// are unused here.
type stubBookingStore struct {
	claims []db.BookingItemClaim
}

func (s *stubBookingStore) ListActiveClaims() ([]db.BookingItemClaim, error) {
	return s.claims, nil
}

func (s *stubBookingStore) ListActiveClaimsOverlapping(from, to time.Time) ([]db.BookingItemClaim, error) {
	return s.claims, nil
}

func (s *stubBookingStore) CreateBooking(*db.Booking, []db.BookingItem) error { return nil }

func (s *stubBookingStore) GetBookingByOrderNumber(string) (*db.Booking, error) { return nil, nil }

func (s *stubBookingStore) GetBookingByID(string) (*db.Booking, error) { return nil, nil }

func (s *stubBookingStore) GetBookingItems(string) ([]db.BookingItem, []string, error) {
	return nil, nil, nil
}

func (s *stubBookingStore) ListBookings(string, string, int, int) ([]db.Booking, int64, error) {
	return nil, 0, nil
}

func (s *stubBookingStore) UpdateBooking(*db.Booking) error { return nil }

func (s *stubBookingStore) UpdateBookingStatus(string, string) error { return nil }

func (s *stubBookingStore) DeleteBooking(string) error { return nil }

func newAvailabilityHandler(claims []db.BookingItemClaim) *BookingHandler {
	svc := service.NewBookingService(&stubBookingStore{claims: claims}, nil, nil)
	return NewBookingHandler(svc)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCheckAvailabilityHandler_Available(t *testing.T) {
	h := newAvailabilityHandler(nil)

	rec := postJSON(t, h.CheckAvailability, "/api/bookings/check-availability", map[string]any{
		"item_ids":      []string{"bounce-1"},
		"delivery_date": "2025-10-21",
		"pickup_date":   "2025-10-23",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool   `json:"available"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "All items available", resp.Message)
}

func TestCheckAvailabilityHandler_Conflict(t *testing.T) {
	h := newAvailabilityHandler([]db.BookingItemClaim{{
		BookingItemID:   "bi-1",
		BookingID:       "bk-1",
		OrderNumber:     "PTY-20251020-ABCDEF",
		InventoryItemID: "bounce-1",
		ItemName:        "Castle Bouncer",
		DeliveryDate:    time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		PickupDate:      time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC),
		Status:          db.BookingStatusConfirmed,
	}})

	rec := postJSON(t, h.CheckAvailability, "/api/bookings/check-availability", map[string]any{
		"item_ids":      []string{"bounce-1"},
		"delivery_date": "2025-10-23",
		"pickup_date":   "2025-10-25",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool `json:"available"`
		Conflicts []struct {
			ItemID           string `json:"item_id"`
			ConflictingOrder string `json:"conflicting_order"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "PTY-20251020-ABCDEF", resp.Conflicts[0].ConflictingOrder)
}

func TestCheckAvailabilityHandler_BadDates(t *testing.T) {
	h := newAvailabilityHandler(nil)

	rec := postJSON(t, h.CheckAvailability, "/api/bookings/check-availability", map[string]any{
		"item_ids":      []string{"bounce-1"},
		"delivery_date": "21/10/2025",
		"pickup_date":   "2025-10-23",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckAvailabilityHandler_ReversedWindow(t *testing.T) {
	h := newAvailabilityHandler(nil)

	rec := postJSON(t, h.CheckAvailability, "/api/bookings/check-availability", map[string]any{
		"item_ids":      []string{"bounce-1"},
		"delivery_date": "2025-10-25",
		"pickup_date":   "2025-10-21",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
