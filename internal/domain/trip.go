// Package domain contains the core types and booking rules for the
// railway booking backend. This package does not depend on the repo,
// service, or handler layers; all of them import it.
package domain

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Trip is a single directed journey of one train between two distinct
// cities. It is the top-level aggregate; passengers board and leave
// throughout its lifetime; there is no terminal "completed" state.
//
// Constructing a trip does not mark the train as on-trip and finishing
// one does not move LastStation; transitioning train state is the
// dispatcher's job (see TrainService.Update).
type Trip struct {
	ID              uuid.UUID `json:"id"`
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	Train           *Train    `json:"train"`

	// mu guards passengers so the capacity check and the append in
	// Passenger.Join happen atomically.
	mu         sync.Mutex
	passengers []*Passenger
}

// NewTrip validates the train and the origin city and returns a trip
// with an empty passenger list.
//
// Validation runs in a fixed order: train first (ErrInvalidTrain,
// ErrTrainUnavailable), then origin city (ErrUnknownCity, ErrSameCity,
// ErrTrainNotAtOrigin). The destination is stored as given; only the
// origin is checked against Cities.
func NewTrip(originCity, destinationCity string, train *Train) (*Trip, error) {
	if train == nil {
		return nil, ErrInvalidTrain
	}
	if train.OnTrip {
		return nil, ErrTrainUnavailable
	}
	if !KnownCity(originCity) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, originCity)
	}
	if originCity == destinationCity {
		return nil, ErrSameCity
	}
	if originCity != train.LastStation {
		return nil, fmt.Errorf("%w: train is at %q", ErrTrainNotAtOrigin, train.LastStation)
	}

	return &Trip{
		OriginCity:      originCity,
		DestinationCity: destinationCity,
		Train:           train,
		passengers:      []*Passenger{},
	}, nil
}

// RemainingCapacity returns the cargo weight the trip can still accept
// before reaching the train's maximum. It is recomputed from the
// current passenger list on every call, never cached.
func (t *Trip) RemainingCapacity() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked()
}

func (t *Trip) remainingLocked() float64 {
	remaining := t.Train.MaxCargoWeight
	for _, p := range t.passengers {
		remaining -= p.CargoWeight
	}
	return remaining
}

// Passengers returns the boarded passengers in boarding order.
// The slice is a copy; the passengers themselves are shared.
func (t *Trip) Passengers() []*Passenger {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Passenger, len(t.passengers))
	copy(out, t.passengers)
	return out
}

// board appends p if its cargo fits the remaining capacity.
// Called via Passenger.Join; check and append share the lock.
func (t *Trip) board(p *Passenger) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	remaining := t.remainingLocked()
	if p.CargoWeight > remaining {
		return fmt.Errorf("%w: cargo %gkg exceeds remaining %gkg",
			ErrInsufficientCapacity, p.CargoWeight, remaining)
	}
	t.passengers = append(t.passengers, p)
	return nil
}

// unboard removes the first occurrence of p, compared by identity, so
// two passengers with the same name and cargo stay distinguishable.
func (t *Trip) unboard(p *Passenger) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, got := range t.passengers {
		if got == p {
			t.passengers = append(t.passengers[:i], t.passengers[i+1:]...)
			return nil
		}
	}
	return ErrNotOnTrip
}
