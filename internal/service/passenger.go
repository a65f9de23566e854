package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
	"github.com/railyard/booking/internal/repo"
)

// PassengerService implements business logic for Passenger operations.
type PassengerService struct {
	passengers repo.PassengerRepo
}

// NewPassengerService constructs a PassengerService backed by the
// provided PassengerRepo.
func NewPassengerService(r repo.PassengerRepo) *PassengerService {
	return &PassengerService{passengers: r}
}

// Create validates and stores a new passenger.
// Returns domain.ErrValidation if input violates business rules.
func (s *PassengerService) Create(ctx context.Context, passenger domain.Passenger) (*domain.Passenger, error) {
	if err := validatePassenger(passenger); err != nil {
		return nil, err
	}
	result, err := s.passengers.Create(ctx, &passenger)
	if err != nil {
		return nil, fmt.Errorf("service.PassengerService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single passenger by ID.
// Returns domain.ErrNotFound if no passenger with that ID exists.
func (s *PassengerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Passenger, error) {
	result, err := s.passengers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.PassengerService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all passengers in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PassengerService) List(ctx context.Context) ([]*domain.Passenger, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PassengerService.List: %w", err)
	}
	if passengers == nil {
		return []*domain.Passenger{}, nil
	}
	return passengers, nil
}

// Delete removes a passenger by ID. Trips the passenger already boarded
// keep their reference; deletion only removes the registry entry.
// Returns domain.ErrNotFound if the passenger does not exist.
func (s *PassengerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.passengers.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PassengerService.Delete: %w", err)
	}
	return nil
}

// validatePassenger enforces business rules for passenger creation.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - CargoWeight must not be negative.
func validatePassenger(passenger domain.Passenger) error {
	if strings.TrimSpace(passenger.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if passenger.CargoWeight < 0 {
		return fmt.Errorf("%w: cargo_weight must not be negative", domain.ErrValidation)
	}
	return nil
}
