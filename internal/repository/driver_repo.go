package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"partyrental/internal/db"
	"partyrental/internal/entities"
)

// ErrDriverNotFound is returned when a lookup matches no driver.
var ErrDriverNotFound = errors.New("driver not found")

type DriverRepository struct {
	DB *sql.DB
}

func NewDriverRepository(database *sql.DB) *DriverRepository {
	return &DriverRepository{DB: database}
}

func (r *DriverRepository) GetDriver(id string) (*db.Driver, error) {
	var d db.Driver
	err := r.DB.QueryRow(
		`SELECT id, name, email, phone, license_number, is_active, total_deliveries, created_at
		 FROM drivers WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.LicenseNumber, &d.IsActive, &d.TotalDeliveries, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("error querying driver %s: %w", id, err)
	}
	return &d, nil
}

// routeStops loads the stops a driver serves on a date, in one of the two
// roles (delivery or pickup).
func (r *DriverRepository) routeStops(driverID string, date time.Time, pickup bool) ([]entities.RouteStop, error) {
	driverColumn, dateColumn, window := "assigned_driver_id", "delivery_date", "delivery_time_window"
	if pickup {
		driverColumn, dateColumn, window = "pickup_driver_id", "pickup_date", "pickup_time_window"
	}
	query := fmt.Sprintf(`
		SELECT b.order_number, b.customer_name, b.customer_phone, b.delivery_address, b.%s,
		       ARRAY_AGG(i.name ORDER BY i.name)
		FROM bookings b
		JOIN booking_items bi ON bi.booking_id = b.id
		JOIN inventory_items i ON bi.inventory_item_id = i.id
		WHERE b.%s = $1 AND b.%s = $2::date
		  AND b.status NOT IN ('cancelled', 'completed')
		GROUP BY b.id, b.%s
		ORDER BY b.%s, b.order_number`, window, driverColumn, dateColumn, window, window)

	rows, err := r.DB.Query(query, driverID, date)
	if err != nil {
		return nil, fmt.Errorf("error querying route stops: %w", err)
	}
	defer rows.Close()

	var stops []entities.RouteStop
	for rows.Next() {
		var stop entities.RouteStop
		var names pq.StringArray
		if err := rows.Scan(&stop.OrderNumber, &stop.CustomerName, &stop.CustomerPhone,
			&stop.DeliveryAddress, &stop.TimeWindow, &names); err != nil {
			return nil, fmt.Errorf("error scanning route stop: %w", err)
		}
		stop.ItemNames = []string(names)
		stops = append(stops, stop)
	}
	return stops, rows.Err()
}

func (r *DriverRepository) Deliveries(driverID string, date time.Time) ([]entities.RouteStop, error) {
	return r.routeStops(driverID, date, false)
}

func (r *DriverRepository) Pickups(driverID string, date time.Time) ([]entities.RouteStop, error) {
	return r.routeStops(driverID, date, true)
}

// Workload aggregates non-terminal bookings per active driver.
func (r *DriverRepository) Workload() ([]entities.DriverWorkload, error) {
	query := `
		SELECT d.id, d.name,
		       COUNT(bd.id) FILTER (WHERE bd.id IS NOT NULL),
		       COUNT(bp.id) FILTER (WHERE bp.id IS NOT NULL)
		FROM drivers d
		LEFT JOIN bookings bd ON bd.assigned_driver_id = d.id AND bd.status NOT IN ('cancelled', 'completed')
		LEFT JOIN bookings bp ON bp.pickup_driver_id = d.id AND bp.status NOT IN ('cancelled', 'completed')
		WHERE d.is_active
		GROUP BY d.id, d.name
		ORDER BY d.name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying driver workload: %w", err)
	}
	defer rows.Close()

	var workloads []entities.DriverWorkload
	for rows.Next() {
		var w entities.DriverWorkload
		if err := rows.Scan(&w.DriverID, &w.DriverName, &w.Deliveries, &w.Pickups); err != nil {
			return nil, fmt.Errorf("error scanning driver workload: %w", err)
		}
		workloads = append(workloads, w)
	}
	return workloads, rows.Err()
}

// UnassignedBookings lists upcoming bookings with no delivery driver yet.
func (r *DriverRepository) UnassignedBookings() ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE assigned_driver_id IS NULL
		  AND status NOT IN ('cancelled', 'completed')
		  AND delivery_date >= CURRENT_DATE
		ORDER BY delivery_date, order_number`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying unassigned bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning unassigned booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
