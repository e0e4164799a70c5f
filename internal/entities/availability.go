package entities

import "time"

type AvailabilityRequest struct {
	ItemIDs      []string  `json:"item_ids"`
	DeliveryDate time.Time `json:"delivery_date"`
	PickupDate   time.Time `json:"pickup_date"`
}

// ItemConflict names the existing order blocking one requested item, so the
// caller can tell the customer which item conflicts with which booking.
type ItemConflict struct {
	ItemID           string `json:"item_id"`
	ItemName         string `json:"item_name,omitempty"`
	ConflictingOrder string `json:"conflicting_order"`
	ConflictDates    string `json:"conflict_dates"`
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Conflicts []ItemConflict `json:"conflicts,omitempty"`
	Message   string         `json:"message"`
}

// FilterItemsRequest carries the party-space constraints used to filter the
// catalog, plus an optional date range to drop items already booked.
type FilterItemsRequest struct {
	AreaSqft     int        `json:"area_sqft"`
	Surface      string     `json:"surface"`
	HasPower     bool       `json:"has_power"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	PickupDate   *time.Time `json:"pickup_date,omitempty"`
}
