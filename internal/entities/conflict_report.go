package entities

import "time"

// ConflictBooking is one side of a double-booking as shown on the admin
// dashboard.
type ConflictBooking struct {
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	DeliveryDate time.Time `json:"delivery_date"`
	PickupDate   time.Time `json:"pickup_date"`
}

// ConflictReport is one double-booked item: two orders claiming it over
// overlapping date ranges.
type ConflictReport struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	BookingA ConflictBooking `json:"booking_a"`
	BookingB ConflictBooking `json:"booking_b"`
}
