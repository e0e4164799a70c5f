package service

import (
	"errors"
	"time"

	"partyrental/internal/entities"
	httperrors "partyrental/internal/errors"
	"partyrental/internal/repository"
)

type DriverService struct {
	Repo DriverStore
}

func NewDriverService(repo DriverStore) *DriverService {
	return &DriverService{Repo: repo}
}

// Route builds one driver's stop list for a day: deliveries first, then
// pickups, each ordered by time window.
func (s *DriverService) Route(driverID string, date time.Time) (*entities.DriverRoute, error) {
	driver, err := s.Repo.GetDriver(driverID)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, httperrors.ErrNotFound("driver not found")
		}
		return nil, err
	}

	deliveries, err := s.Repo.Deliveries(driverID, date)
	if err != nil {
		return nil, err
	}
	pickups, err := s.Repo.Pickups(driverID, date)
	if err != nil {
		return nil, err
	}

	return &entities.DriverRoute{
		DriverID:   driver.ID,
		DriverName: driver.Name,
		Date:       date,
		Deliveries: deliveries,
		Pickups:    pickups,
	}, nil
}
