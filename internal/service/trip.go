package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
	"github.com/railyard/booking/internal/repo"
)

// TripService implements business logic for Trip operations, including
// boarding and disembarking passengers. It holds trains and passengers
// repos because creating a trip requires resolving the train and
// boarding requires resolving the passenger.
type TripService struct {
	trips      repo.TripRepo
	trains     repo.TrainRepo
	passengers repo.PassengerRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, trains repo.TrainRepo, passengers repo.PassengerRepo) *TripService {
	return &TripService{trips: trips, trains: trains, passengers: passengers}
}

// Create resolves the train, runs the booking validations via
// domain.NewTrip, and stores the trip.
// Returns domain.ErrNotFound if the train does not exist, or one of the
// domain construction sentinels (ErrTrainUnavailable, ErrUnknownCity,
// ErrSameCity, ErrTrainNotAtOrigin) when validation fails.
func (s *TripService) Create(ctx context.Context, originCity, destinationCity string, trainID uuid.UUID) (*domain.Trip, error) {
	train, err := s.trains.GetByID(ctx, trainID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip, err := domain.NewTrip(originCity, destinationCity, train)
	if err != nil {
		return nil, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]*domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		return []*domain.Trip{}, total, nil
	}
	return trips, total, nil
}

// Delete removes a trip by ID. The train is left untouched; trips
// never transition train state.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Board resolves the trip and the passenger and boards the passenger.
// Returns domain.ErrNotFound when either does not exist, and
// domain.ErrInsufficientCapacity when the cargo does not fit.
func (s *TripService) Board(ctx context.Context, tripID, passengerID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.Board: %w", err)
	}
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return fmt.Errorf("service.TripService.Board: %w", err)
	}
	return passenger.Join(trip)
}

// Disembark resolves the trip and the passenger and removes the
// passenger from the trip.
// Returns domain.ErrNotFound when either does not exist, and
// domain.ErrNotOnTrip when the passenger is not aboard.
func (s *TripService) Disembark(ctx context.Context, tripID, passengerID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.Disembark: %w", err)
	}
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return fmt.Errorf("service.TripService.Disembark: %w", err)
	}
	return passenger.Leave(trip)
}

// RemainingCapacity returns the trip's current remaining cargo capacity.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) RemainingCapacity(ctx context.Context, tripID uuid.UUID) (float64, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.RemainingCapacity: %w", err)
	}
	return trip.RemainingCapacity(), nil
}

// Passengers returns the trip's boarded passengers in boarding order.
// Always returns a non-nil slice so callers can safely range over it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Passengers(ctx context.Context, tripID uuid.UUID) ([]*domain.Passenger, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Passengers: %w", err)
	}
	return trip.Passengers(), nil
}
