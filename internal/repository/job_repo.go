package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetActiveBookingIDsPastPickup returns bookings still marked active whose
// pickup date has passed.
func (r *JobRepository) GetActiveBookingIDsPastPickup() ([]string, error) {
	query := `SELECT id FROM bookings WHERE status = 'active' AND pickup_date < CURRENT_DATE`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying active bookings past pickup: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateBookingStatuses moves a batch of bookings to a new status and
// releases their claims when the status is terminal.
func (r *JobRepository) UpdateBookingStatuses(ids []string, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting batch status transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`,
		newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}

	if newStatus == "completed" || newStatus == "cancelled" {
		if _, err := tx.Exec(`DELETE FROM booking_claims WHERE booking_id = ANY($1)`, pq.Array(ids)); err != nil {
			return fmt.Errorf("error releasing claims: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing batch status update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d bookings to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// DeletePendingBookingsOlderThan purges abandoned checkout bookings.
func (r *JobRepository) DeletePendingBookingsOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM bookings WHERE status = 'pending' AND created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting stale pending bookings: %w", err)
	}
	return result.RowsAffected()
}
