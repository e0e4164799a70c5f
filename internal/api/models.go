package api

// Wire shapes for requests whose dates arrive as YYYY-MM-DD strings.
// Handlers parse them and hand entities structs to the services.

type AvailabilityRequest struct {
	ItemIDs      []string `json:"item_ids"`
	DeliveryDate string   `json:"delivery_date"`
	PickupDate   string   `json:"pickup_date"`
}

type FilterItemsRequest struct {
	AreaSqft     int    `json:"area_sqft"`
	Surface      string `json:"surface"`
	HasPower     bool   `json:"has_power"`
	DeliveryDate string `json:"delivery_date,omitempty"`
	PickupDate   string `json:"pickup_date,omitempty"`
}

type CreateBookingRequest struct {
	CustomerName       string   `json:"customer_name"`
	CustomerEmail      string   `json:"customer_email"`
	CustomerPhone      string   `json:"customer_phone"`
	DeliveryDate       string   `json:"delivery_date"`
	PickupDate         string   `json:"pickup_date"`
	DeliveryTimeWindow string   `json:"delivery_time_window,omitempty"`
	PickupTimeWindow   string   `json:"pickup_time_window,omitempty"`
	DeliveryAddress    string   `json:"delivery_address"`
	SetupInstructions  string   `json:"setup_instructions,omitempty"`
	ItemIDs            []string `json:"item_ids"`
	Tip                float64  `json:"tip,omitempty"`
	Language           string   `json:"language,omitempty"`
}

type UpdateBookingRequest struct {
	DeliveryDate     *string `json:"delivery_date,omitempty"`
	PickupDate       *string `json:"pickup_date,omitempty"`
	Status           *string `json:"status,omitempty"`
	AssignedDriverID *string `json:"assigned_driver_id,omitempty"`
	PickupDriverID   *string `json:"pickup_driver_id,omitempty"`
	DeliveryAddress  *string `json:"delivery_address,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
