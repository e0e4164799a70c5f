package entities

import "time"

type BookingRequest struct {
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	CustomerPhone      string    `json:"customer_phone"`
	DeliveryDate       time.Time `json:"delivery_date"`
	PickupDate         time.Time `json:"pickup_date"`
	DeliveryTimeWindow string    `json:"delivery_time_window,omitempty"`
	PickupTimeWindow   string    `json:"pickup_time_window,omitempty"`
	DeliveryAddress    string    `json:"delivery_address"`
	SetupInstructions  string    `json:"setup_instructions,omitempty"`
	ItemIDs            []string  `json:"item_ids"`
	Tip                float64   `json:"tip,omitempty"`
	Language           string    `json:"language,omitempty"`
}

type BookingResponse struct {
	OrderNumber        string              `json:"order_number"`
	CustomerName       string              `json:"customer_name"`
	CustomerEmail      string              `json:"customer_email"`
	CustomerPhone      string              `json:"customer_phone"`
	DeliveryDate       time.Time           `json:"delivery_date"`
	PickupDate         time.Time           `json:"pickup_date"`
	DeliveryTimeWindow string              `json:"delivery_time_window,omitempty"`
	PickupTimeWindow   string              `json:"pickup_time_window,omitempty"`
	RentalDays         int                 `json:"rental_days"`
	DeliveryAddress    string              `json:"delivery_address"`
	SetupInstructions  string              `json:"setup_instructions,omitempty"`
	Status             string              `json:"status"`
	AssignedDriverID   string              `json:"assigned_driver_id,omitempty"`
	PickupDriverID     string              `json:"pickup_driver_id,omitempty"`
	Items              []BookingItemDetail `json:"items"`
	Subtotal           float64             `json:"subtotal"`
	DeliveryFee        float64             `json:"delivery_fee"`
	Tip                float64             `json:"tip"`
	Total              float64             `json:"total"`
	Language           string              `json:"language,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type BookingItemDetail struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
}

type BookingUpdateRequest struct {
	DeliveryDate     *time.Time `json:"delivery_date,omitempty"`
	PickupDate       *time.Time `json:"pickup_date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	AssignedDriverID *string    `json:"assigned_driver_id,omitempty"`
	PickupDriverID   *string    `json:"pickup_driver_id,omitempty"`
	DeliveryAddress  *string    `json:"delivery_address,omitempty"`
}
