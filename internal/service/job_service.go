package service

import (
	"fmt"
	"log"
	"time"

	"partyrental/internal/db"
	"partyrental/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompleteFinishedBookings marks active bookings whose pickup date has
// passed as completed, releasing their item claims.
func (s *JobService) CompleteFinishedBookings() error {
	log.Println("Cron Job: Checking for bookings to mark as 'completed'...")

	bookingIDs, err := s.Repo.GetActiveBookingIDsPastPickup()
	if err != nil {
		return fmt.Errorf("cron job: failed to get active bookings past pickup: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No active bookings found past their pickup date.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'. IDs: %v", len(bookingIDs), bookingIDs)

	if err := s.Repo.UpdateBookingStatuses(bookingIDs, db.BookingStatusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d bookings to 'completed'.", len(bookingIDs))
	return nil
}

// PurgeStalePendingBookings deletes pending bookings abandoned before the
// given time, freeing their exclusion-guarded claims.
func (s *JobService) PurgeStalePendingBookings(before time.Time) (int64, error) {
	return s.Repo.DeletePendingBookingsOlderThan(before)
}
