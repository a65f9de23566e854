package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railyard/booking/internal/domain"
)

func smallTrip(t *testing.T, capacity float64) *domain.Trip {
	t.Helper()
	train := idleTrain("Tehran", capacity)
	trip, err := domain.NewTrip("Tehran", "Qom", train)
	require.NoError(t, err)
	return trip
}

// ---- Join ------------------------------------------------------------------

func TestJoin_FitsExactly(t *testing.T) {
	trip := smallTrip(t, 100)
	p := &domain.Passenger{Name: "Reza", CargoWeight: 100}

	// cargo == remaining capacity is allowed; only strictly greater fails.
	require.NoError(t, p.Join(trip))
	assert.Equal(t, 0.0, trip.RemainingCapacity())
}

func TestJoin_ExceedsCapacity(t *testing.T) {
	trip := smallTrip(t, 100)
	p := &domain.Passenger{Name: "Reza", CargoWeight: 101}

	err := p.Join(trip)

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.Empty(t, trip.Passengers(), "a rejected join must leave the list unchanged")
	assert.Equal(t, 100.0, trip.RemainingCapacity())
}

func TestJoin_ExceedsAfterOthersBoarded(t *testing.T) {
	trip := smallTrip(t, 100)
	first := &domain.Passenger{Name: "A", CargoWeight: 70}
	second := &domain.Passenger{Name: "B", CargoWeight: 40}

	require.NoError(t, first.Join(trip))
	err := second.Join(trip)

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	require.Len(t, trip.Passengers(), 1)
}

// Duplicate joins are not guarded against: the same passenger boards
// twice and the cargo counts twice.
func TestJoin_SamePassengerTwice(t *testing.T) {
	trip := smallTrip(t, 100)
	p := &domain.Passenger{Name: "Reza", CargoWeight: 30}

	require.NoError(t, p.Join(trip))
	require.NoError(t, p.Join(trip))

	assert.Len(t, trip.Passengers(), 2)
	assert.Equal(t, 40.0, trip.RemainingCapacity())
}

// ---- Leave -----------------------------------------------------------------

func TestLeave_NotOnTrip(t *testing.T) {
	trip := smallTrip(t, 100)
	p := &domain.Passenger{Name: "Reza", CargoWeight: 10}

	err := p.Leave(trip)

	assert.ErrorIs(t, err, domain.ErrNotOnTrip)
}

func TestLeave_RemovesOnlyEarliestOccurrence(t *testing.T) {
	trip := smallTrip(t, 100)
	p := &domain.Passenger{Name: "Reza", CargoWeight: 10}
	require.NoError(t, p.Join(trip))
	require.NoError(t, p.Join(trip))

	require.NoError(t, p.Leave(trip))

	assert.Len(t, trip.Passengers(), 1)
	assert.Equal(t, 90.0, trip.RemainingCapacity())
}

// Membership is by identity, not value: a second passenger with the
// same name and cargo is a different person.
func TestLeave_IdentityNotValueEquality(t *testing.T) {
	trip := smallTrip(t, 100)
	aboard := &domain.Passenger{Name: "Reza", CargoWeight: 10}
	twin := &domain.Passenger{Name: "Reza", CargoWeight: 10}
	require.NoError(t, aboard.Join(trip))

	err := twin.Leave(trip)

	assert.ErrorIs(t, err, domain.ErrNotOnTrip)
	require.Len(t, trip.Passengers(), 1)
	assert.Same(t, aboard, trip.Passengers()[0])
}

func TestLeave_PreservesOrderOfOthers(t *testing.T) {
	trip := smallTrip(t, 100)
	a := &domain.Passenger{Name: "A", CargoWeight: 1}
	b := &domain.Passenger{Name: "B", CargoWeight: 2}
	c := &domain.Passenger{Name: "C", CargoWeight: 3}
	for _, p := range []*domain.Passenger{a, b, c} {
		require.NoError(t, p.Join(trip))
	}

	require.NoError(t, b.Leave(trip))

	got := trip.Passengers()
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, c, got[1])
}

// ---- String ----------------------------------------------------------------

func TestString_ReturnsNameOnly(t *testing.T) {
	p := &domain.Passenger{Name: "Ali Saeedi", CargoWeight: 616}

	assert.Equal(t, "Ali Saeedi", p.String())
	assert.Equal(t, "Ali Saeedi", fmt.Sprintf("%s", p))
}
