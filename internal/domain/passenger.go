package domain

import "github.com/google/uuid"

// Passenger is a rider with an assigned cargo weight. Passengers are
// created independently of any trip and may board several trips; the
// model does not pin a passenger to at most one.
type Passenger struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CargoWeight float64   `json:"cargo_weight"` // kilograms
}

// Join boards p onto trip if the remaining capacity allows it.
// Returns ErrInsufficientCapacity and leaves the trip untouched when
// the cargo does not fit. Joining the same trip twice boards the
// passenger twice; there is no idempotence guard.
func (p *Passenger) Join(trip *Trip) error {
	return trip.board(p)
}

// Leave removes p from trip. When p boarded more than once only the
// earliest boarding is removed. Returns ErrNotOnTrip when p is not
// aboard.
func (p *Passenger) Leave(trip *Trip) error {
	return trip.unboard(p)
}

// String returns the passenger's name.
func (p *Passenger) String() string {
	return p.Name
}
