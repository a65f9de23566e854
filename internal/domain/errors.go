package domain

import "errors"

// Booking rule sentinels. Services wrap these with context via
// fmt.Errorf("...: %w", err); handlers match them with errors.Is to
// pick a status code.
var (
	// ErrInvalidTrain is returned by NewTrip when no train is supplied.
	ErrInvalidTrain = errors.New("not a valid train")

	// ErrTrainUnavailable is returned by NewTrip when the train is
	// already committed to another trip.
	ErrTrainUnavailable = errors.New("train is already on a trip")

	// ErrUnknownCity is returned by NewTrip when the origin city is not
	// in Cities.
	ErrUnknownCity = errors.New("not a served city")

	// ErrSameCity is returned by NewTrip when origin and destination
	// are equal.
	ErrSameCity = errors.New("origin and destination cities must differ")

	// ErrTrainNotAtOrigin is returned by NewTrip when the train's last
	// station differs from the requested origin.
	ErrTrainNotAtOrigin = errors.New("train is not at the origin city")

	// ErrInsufficientCapacity is returned by Passenger.Join when the
	// passenger's cargo exceeds the trip's remaining capacity.
	ErrInsufficientCapacity = errors.New("insufficient remaining capacity")

	// ErrNotOnTrip is returned by Passenger.Leave when the passenger is
	// not aboard the trip.
	ErrNotOnTrip = errors.New("passenger is not on this trip")
)

// ErrNotFound is returned by repo and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails
// business rule validation (e.g. missing required field, negative
// cargo weight). Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")
