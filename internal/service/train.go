// Package service contains the business logic for the railway booking
// API. Services validate inputs, enforce booking rules, and orchestrate
// repo calls. No storage detail lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
	"github.com/railyard/booking/internal/repo"
)

// TrainService implements business logic for Train operations.
// Update doubles as the dispatcher surface: it is the only place that
// moves a train's LastStation or flips OnTrip; the trip lifecycle
// deliberately never touches either.
type TrainService struct {
	trains repo.TrainRepo
}

// NewTrainService constructs a TrainService backed by the provided TrainRepo.
func NewTrainService(r repo.TrainRepo) *TrainService {
	return &TrainService{trains: r}
}

// Create validates and stores a new train.
// Returns domain.ErrValidation if input violates business rules.
func (s *TrainService) Create(ctx context.Context, train domain.Train) (*domain.Train, error) {
	if err := validateTrain(train); err != nil {
		return nil, err
	}
	result, err := s.trains.Create(ctx, &train)
	if err != nil {
		return nil, fmt.Errorf("service.TrainService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single train by ID.
// Returns domain.ErrNotFound if no train with that ID exists.
func (s *TrainService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Train, error) {
	result, err := s.trains.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TrainService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trains in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TrainService) List(ctx context.Context) ([]*domain.Train, error) {
	trains, err := s.trains.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TrainService.List: %w", err)
	}
	if trains == nil {
		return []*domain.Train{}, nil
	}
	return trains, nil
}

// Update validates and overwrites the mutable fields of an existing
// train. Returns domain.ErrValidation for invalid input,
// domain.ErrNotFound if the train does not exist.
func (s *TrainService) Update(ctx context.Context, train domain.Train) (*domain.Train, error) {
	if err := validateTrain(train); err != nil {
		return nil, err
	}
	result, err := s.trains.Update(ctx, &train)
	if err != nil {
		return nil, fmt.Errorf("service.TrainService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a train by ID.
// Returns domain.ErrNotFound if the train does not exist.
func (s *TrainService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trains.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TrainService.Delete: %w", err)
	}
	return nil
}

// validateTrain enforces business rules common to both Create and Update.
//   - LastStation must be non-empty (whitespace-only is rejected). It is
//     NOT checked against domain.Cities: trip construction is the layer
//     that enforces the station/origin match.
//   - MaxCargoWeight must not be negative.
func validateTrain(train domain.Train) error {
	if strings.TrimSpace(train.LastStation) == "" {
		return fmt.Errorf("%w: last_station is required", domain.ErrValidation)
	}
	if train.MaxCargoWeight < 0 {
		return fmt.Errorf("%w: max_cargo_weight must not be negative", domain.ErrValidation)
	}
	return nil
}
