package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
)

// TripRepo defines the storage operations for trips.
// Trips are handed out as the stored pointers: boarding mutates the
// same object every caller sees, which is what keeps the passenger
// identity semantics intact across the HTTP layer.
type TripRepo interface {
	// Create stores a new trip, assigning an ID when it has none, and
	// returns the stored record.
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)

	// GetByID retrieves a single trip by ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)

	// List returns all trips in creation order.
	List(ctx context.Context) ([]*domain.Trip, error)

	// ListPaged returns one page of trips in creation order plus the
	// total trip count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]*domain.Trip, int64, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memTripRepo is the in-memory implementation of TripRepo.
type memTripRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]*domain.Trip
	order []uuid.UUID
}

// NewTripRepo constructs an empty in-memory TripRepo.
func NewTripRepo() TripRepo {
	return &memTripRepo{trips: make(map[uuid.UUID]*domain.Trip)}
}

func (r *memTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	r.trips[trip.ID] = trip
	r.order = append(r.order, trip.ID)
	return trip, nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return trip, nil
}

func (r *memTripRepo) List(_ context.Context) ([]*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Trip, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.trips[id])
	}
	return out, nil
}

func (r *memTripRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]*domain.Trip, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.order))
	start := p.Offset()
	if start >= len(r.order) {
		return []*domain.Trip{}, total, nil
	}
	end := start + p.Limit
	if end > len(r.order) {
		end = len(r.order)
	}

	out := make([]*domain.Trip, 0, end-start)
	for _, id := range r.order[start:end] {
		out = append(out, r.trips[id])
	}
	return out, total, nil
}

func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.trips, id)
	for i, got := range r.order {
		if got == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
