// Package repo contains the storage layer for the railway booking API.
// Each resource has its own file with an interface and an in-memory
// implementation. No business logic lives here, only storage and
// retrieval. The interfaces are what the service layer depends on, so
// a persistent implementation could be swapped in without touching it.
package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
)

// TrainRepo defines the storage operations for trains.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
type TrainRepo interface {
	// Create stores a new train, assigning an ID when it has none, and
	// returns the stored record.
	Create(ctx context.Context, train *domain.Train) (*domain.Train, error)

	// GetByID retrieves a single train by ID.
	// Returns domain.ErrNotFound if no train with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Train, error)

	// List returns all trains in creation order.
	List(ctx context.Context) ([]*domain.Train, error)

	// Update overwrites the mutable fields of an existing train and
	// returns the stored record. The stored record is mutated in place
	// so trips already referencing the train observe the change.
	// Returns domain.ErrNotFound if no train with that ID exists.
	Update(ctx context.Context, train *domain.Train) (*domain.Train, error)

	// Delete removes a train by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memTrainRepo is the in-memory implementation of TrainRepo.
// A map gives O(1) lookup; order preserves creation order for List.
type memTrainRepo struct {
	mu     sync.RWMutex
	trains map[uuid.UUID]*domain.Train
	order  []uuid.UUID
}

// NewTrainRepo constructs an empty in-memory TrainRepo.
func NewTrainRepo() TrainRepo {
	return &memTrainRepo{trains: make(map[uuid.UUID]*domain.Train)}
}

func (r *memTrainRepo) Create(_ context.Context, train *domain.Train) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if train.ID == uuid.Nil {
		train.ID = uuid.New()
	}
	r.trains[train.ID] = train
	r.order = append(r.order, train.ID)
	return train, nil
}

func (r *memTrainRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	train, ok := r.trains[id]
	if !ok {
		return nil, fmt.Errorf("repo.TrainRepo.GetByID: %w", domain.ErrNotFound)
	}
	return train, nil
}

func (r *memTrainRepo) List(_ context.Context) ([]*domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Train, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.trains[id])
	}
	return out, nil
}

func (r *memTrainRepo) Update(_ context.Context, train *domain.Train) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.trains[train.ID]
	if !ok {
		return nil, fmt.Errorf("repo.TrainRepo.Update: %w", domain.ErrNotFound)
	}
	stored.LastStation = train.LastStation
	stored.MaxCargoWeight = train.MaxCargoWeight
	stored.OnTrip = train.OnTrip
	return stored, nil
}

func (r *memTrainRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trains[id]; !ok {
		return fmt.Errorf("repo.TrainRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.trains, id)
	for i, got := range r.order {
		if got == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
