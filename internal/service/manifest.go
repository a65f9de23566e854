package service

import (
	"context"
	"fmt"

	"github.com/railyard/booking/internal/domain"
	"github.com/railyard/booking/internal/repo"
)

// ManifestService assembles a flat cargo manifest across all trips.
type ManifestService struct {
	trips repo.TripRepo
}

// NewManifestService constructs a ManifestService backed by the
// provided TripRepo.
func NewManifestService(trips repo.TripRepo) *ManifestService {
	return &ManifestService{trips: trips}
}

// Manifest returns one ManifestRow per boarded passenger across all
// trips, in trip creation order and boarding order within a trip.
// Trips with nobody aboard contribute one row with empty passenger
// fields. Always returns a non-nil slice.
func (s *ManifestService) Manifest(ctx context.Context) ([]domain.ManifestRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ManifestService.Manifest: %w", err)
	}

	rows := []domain.ManifestRow{}
	for _, trip := range trips {
		base := domain.ManifestRow{
			TripID:          trip.ID.String(),
			OriginCity:      trip.OriginCity,
			DestinationCity: trip.DestinationCity,
			TrainID:         trip.Train.ID.String(),
		}

		passengers := trip.Passengers()
		if len(passengers) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, p := range passengers {
			row := base
			row.PassengerName = p.Name
			cargo := p.CargoWeight
			row.CargoWeight = &cargo
			rows = append(rows, row)
		}
	}
	return rows, nil
}
