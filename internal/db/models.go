package db

import (
	"database/sql"
	"time"
)

// Booking lifecycle statuses. Cancelled and completed bookings no longer
// claim their items.
const (
	BookingStatusPending         = "pending"
	BookingStatusConfirmed       = "confirmed"
	BookingStatusOutForDelivery  = "out_for_delivery"
	BookingStatusActive          = "active"
	BookingStatusPickupScheduled = "pickup_scheduled"
	BookingStatusCompleted       = "completed"
	BookingStatusCancelled       = "cancelled"
)

// Inventory item statuses.
const (
	ItemStatusAvailable   = "available"
	ItemStatusMaintenance = "maintenance"
	ItemStatusRetired     = "retired"
)

type Warehouse struct {
	ID      string
	Name    string
	Address string
}

type InventoryItem struct {
	ID              string
	Name            string
	Category        string
	Description     string
	BasePrice       float64
	RequiresPower   bool
	MinSpaceSqft    sql.NullInt64
	AllowedSurfaces string // comma-separated, empty means any surface
	WarehouseID     string
	Status          string
	WebsiteVisible  bool
	CreatedAt       time.Time
}

type Driver struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	LicenseNumber   string
	IsActive        bool
	TotalDeliveries int
	CreatedAt       time.Time
}

type Booking struct {
	ID                 string
	OrderNumber        string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	DeliveryDate       time.Time
	PickupDate         time.Time
	DeliveryTimeWindow string
	PickupTimeWindow   string
	RentalDays         int
	DeliveryAddress    string
	SetupInstructions  string
	Status             string
	AssignedDriverID   sql.NullString
	PickupDriverID     sql.NullString
	Subtotal           float64
	DeliveryFee        float64
	Tip                float64
	Total              float64
	Language           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingItem links a booking to one inventory item. Each row is one claim
// on one physical unit for the booking's date range.
type BookingItem struct {
	ID              string
	BookingID       string
	InventoryItemID string
	PriceAtBooking  float64
}

// BookingItemClaim is a booking-item row joined with enough booking context
// to build the conflict engine's snapshot and to name the blocking order in
// availability errors.
type BookingItemClaim struct {
	BookingItemID   string
	BookingID       string
	OrderNumber     string
	CustomerName    string
	InventoryItemID string
	ItemName        string
	DeliveryDate    time.Time
	PickupDate      time.Time
	Status          string
}
