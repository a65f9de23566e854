package domain

// ManifestRow is a single row in the network-wide cargo manifest.
// It is a flat, denormalized view: one row per boarded passenger, with
// trip fields repeated for every passenger on that trip. Trips with
// nobody aboard yield one row with zero values for all passenger
// fields.
type ManifestRow struct {
	// Trip fields, repeated for every passenger on the trip.
	TripID          string
	OriginCity      string
	DestinationCity string
	TrainID         string

	// Passenger fields; zero values when the trip has no passengers.
	// CargoWeight is nil (not 0) on the empty-trip row so a genuine
	// zero-weight passenger stays distinguishable.
	PassengerName string
	CargoWeight   *float64
}
