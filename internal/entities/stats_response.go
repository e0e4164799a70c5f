package entities

type DashboardStats struct {
	BookingsByStatus   map[string]int64 `json:"bookings_by_status"`
	UpcomingDeliveries int64            `json:"upcoming_deliveries"`
	UpcomingPickups    int64            `json:"upcoming_pickups"`
	ActiveConflicts    int              `json:"active_conflicts"`
	TotalRevenue       float64          `json:"total_revenue"`
	InventoryCount     int64            `json:"inventory_count"`
}

type DriverWorkload struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Deliveries int64  `json:"deliveries"`
	Pickups    int64  `json:"pickups"`
}
