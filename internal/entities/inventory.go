package entities

import "time"

type InventoryItemResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description,omitempty"`
	BasePrice       float64  `json:"base_price"`
	RequiresPower   bool     `json:"requires_power"`
	MinSpaceSqft    int      `json:"min_space_sqft,omitempty"`
	AllowedSurfaces []string `json:"allowed_surfaces,omitempty"`
	Status          string   `json:"status"`
}

// BookedRange is one reserved span on an item's calendar.
type BookedRange struct {
	OrderNumber  string    `json:"order_number"`
	DeliveryDate time.Time `json:"delivery_date"`
	PickupDate   time.Time `json:"pickup_date"`
}

type ItemCalendar struct {
	ItemID      string        `json:"item_id"`
	ItemName    string        `json:"item_name"`
	From        time.Time     `json:"from"`
	To          time.Time     `json:"to"`
	BookedDates []BookedRange `json:"booked_dates"`
}

type InventoryUpdateRequest struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Description     *string  `json:"description,omitempty"`
	BasePrice       *float64 `json:"base_price,omitempty"`
	RequiresPower   *bool    `json:"requires_power,omitempty"`
	MinSpaceSqft    *int     `json:"min_space_sqft,omitempty"`
	AllowedSurfaces []string `json:"allowed_surfaces,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// DriverRoute is one driver's stops for a single day.
type DriverRoute struct {
	DriverID   string      `json:"driver_id"`
	DriverName string      `json:"driver_name"`
	Date       time.Time   `json:"date"`
	Deliveries []RouteStop `json:"deliveries"`
	Pickups    []RouteStop `json:"pickups"`
}

type RouteStop struct {
	OrderNumber     string   `json:"order_number"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	DeliveryAddress string   `json:"delivery_address"`
	TimeWindow      string   `json:"time_window,omitempty"`
	ItemNames       []string `json:"item_names"`
}
