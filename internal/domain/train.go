package domain

import "github.com/google/uuid"

// Train represents a physical train: where it last stopped, how much
// cargo it can carry, and whether it is committed to a trip.
//
// Train is a plain data holder. LastStation is not checked against the
// city list here, and OnTrip is only ever read by trip construction;
// moving a train or flipping OnTrip happens through TrainService.Update.
type Train struct {
	ID             uuid.UUID `json:"id"`
	LastStation    string    `json:"last_station"`
	MaxCargoWeight float64   `json:"max_cargo_weight"` // kilograms
	OnTrip         bool      `json:"on_trip"`
}
