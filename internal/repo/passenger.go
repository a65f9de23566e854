package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
)

// PassengerRepo defines the storage operations for passengers.
type PassengerRepo interface {
	// Create stores a new passenger, assigning an ID when it has none,
	// and returns the stored record.
	Create(ctx context.Context, passenger *domain.Passenger) (*domain.Passenger, error)

	// GetByID retrieves a single passenger by ID.
	// Returns domain.ErrNotFound if no passenger with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Passenger, error)

	// List returns all passengers in creation order.
	List(ctx context.Context) ([]*domain.Passenger, error)

	// Delete removes a passenger by ID. Returns domain.ErrNotFound if
	// it does not exist. Deleting does not pull the passenger off trips
	// already boarded.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memPassengerRepo is the in-memory implementation of PassengerRepo.
type memPassengerRepo struct {
	mu         sync.RWMutex
	passengers map[uuid.UUID]*domain.Passenger
	order      []uuid.UUID
}

// NewPassengerRepo constructs an empty in-memory PassengerRepo.
func NewPassengerRepo() PassengerRepo {
	return &memPassengerRepo{passengers: make(map[uuid.UUID]*domain.Passenger)}
}

func (r *memPassengerRepo) Create(_ context.Context, passenger *domain.Passenger) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if passenger.ID == uuid.Nil {
		passenger.ID = uuid.New()
	}
	r.passengers[passenger.ID] = passenger
	r.order = append(r.order, passenger.ID)
	return passenger, nil
}

func (r *memPassengerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passenger, ok := r.passengers[id]
	if !ok {
		return nil, fmt.Errorf("repo.PassengerRepo.GetByID: %w", domain.ErrNotFound)
	}
	return passenger, nil
}

func (r *memPassengerRepo) List(_ context.Context) ([]*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Passenger, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.passengers[id])
	}
	return out, nil
}

func (r *memPassengerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengers[id]; !ok {
		return fmt.Errorf("repo.PassengerRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.passengers, id)
	for i, got := range r.order {
		if got == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
