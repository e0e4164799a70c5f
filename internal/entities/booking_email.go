package entities

type BookingEmailData struct {
	CustomerName          string
	OrderNumber           string
	ItemNames             []string
	DeliveryDateFormatted string
	PickupDateFormatted   string
	DeliveryAddress       string
	Status                string
	Language              string
	CurrentYear           int
}
