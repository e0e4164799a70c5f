package repository

import (
	"database/sql"
	"fmt"
)

type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(database *sql.DB) *StatsRepository {
	return &StatsRepository{DB: database}
}

func (r *StatsRepository) BookingCountsByStatus() (map[string]int64, error) {
	rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting bookings by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// UpcomingDeliveries counts non-terminal bookings delivering in the next
// seven days; UpcomingPickups the same for pickups.
func (r *StatsRepository) UpcomingDeliveries() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE status NOT IN ('cancelled', 'completed')
		  AND delivery_date BETWEEN CURRENT_DATE AND CURRENT_DATE + 7`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting upcoming deliveries: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) UpcomingPickups() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE status NOT IN ('cancelled', 'completed')
		  AND pickup_date BETWEEN CURRENT_DATE AND CURRENT_DATE + 7`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting upcoming pickups: %w", err)
	}
	return count, nil
}

// Revenue sums the totals of every booking that was not cancelled.
func (r *StatsRepository) Revenue() (float64, error) {
	var revenue float64
	err := r.DB.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM bookings WHERE status <> 'cancelled'`).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("error summing revenue: %w", err)
	}
	return revenue, nil
}
