package dispatch

import (
	"testing"

	"github.com/fleetcore/dispatchcore/internal/fleettest"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/valuetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSarsaRejectsNilLocator(t *testing.T) {
	_, err := NewSarsa(nil, valuetable.NewTable())
	require.ErrorIs(t, err, ErrNilLocator)
}

func TestNewDoubleQRejectsNilLocator(t *testing.T) {
	pair := valuetable.NewPair(valuetable.NewTable(), valuetable.NewTable())
	_, err := NewDoubleQ(nil, pair)
	require.ErrorIs(t, err, ErrNilLocator)
}

func TestDispatchEmptyInputsShortCircuit(t *testing.T) {
	locator := fleettest.ThreeCellGrid(t)
	d, err := NewSarsa(locator, valuetable.NewTable())
	require.NoError(t, err)

	result, err := d.Dispatch(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, int64(0), d.Timestamp())
}

func TestDispatchMatchesSingleDriverToSingleRequest(t *testing.T) {
	locator := fleettest.ThreeCellGrid(t)
	table := valuetable.NewTable()
	d, err := NewSarsa(locator, table, WithAlpha(0.5))
	require.NoError(t, err)

	drivers, requests, candidates := fleettest.OneDriverOneRequest()
	result, err := d.Dispatch(drivers, requests, candidates)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"d1": "r1"}, result)
	assert.Equal(t, int64(1_700_000_000), d.Timestamp())
	assert.NotZero(t, table.Get("A", 1_700_000_000), "the matched driver's cell should receive a TD update")
}

func TestDispatchAdvancesTimestampMonotonically(t *testing.T) {
	locator := fleettest.ThreeCellGrid(t)
	table := valuetable.NewTable()
	d, err := NewSarsa(locator, table)
	require.NoError(t, err)

	drivers, requests, candidates := fleettest.OneDriverOneRequest()
	_, err = d.Dispatch(drivers, requests, candidates)
	require.NoError(t, err)
	firstTS := d.Timestamp()
	require.Equal(t, int64(1_700_000_000), firstTS)

	// A second tick carrying an older request timestamp must not move the
	// dispatcher's clock backward (spec.md §4.5.2).
	requests["r1"] = parse.Request{
		ID: "r1", StartCell: "A", EndCell: "B",
		RequestTS: firstTS - 100, FinishTS: firstTS + 200, Reward: 20,
	}
	_, err = d.Dispatch(drivers, requests, candidates)
	require.NoError(t, err)
	assert.Equal(t, firstTS, d.Timestamp())
}

// S4 — idle penalty (spec.md §8): one driver, no requests, r_idle = -1.
// Output empty; V(gA) strictly decreases even though requests/candidates
// are both empty (only drivers-and-requests-both-empty short-circuits).
func TestDispatchIdlePenaltyWithNoRequests(t *testing.T) {
	locator := fleettest.ThreeCellGridWithIdleLoop(t)
	table := valuetable.NewTable()
	d, err := NewSarsa(locator, table, WithAlpha(1.0), WithIdleReward(-1))
	require.NoError(t, err)

	drivers := map[string]parse.Driver{"d1": {ID: "d1", Cell: "A"}}

	result, err := d.Dispatch(drivers, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Less(t, table.Get("A", d.Timestamp()), 0.0)
}

func TestDispatchDoubleQProducesFiniteUpdates(t *testing.T) {
	locator := fleettest.ThreeCellGridWithIdleLoop(t)
	pair := valuetable.NewPair(valuetable.NewTable(), valuetable.NewTable())
	d, err := NewDoubleQ(locator, pair, WithSeed(42), WithAlpha(0.5))
	require.NoError(t, err)

	drivers, requests, candidates := fleettest.OneDriverOneRequest()
	result, err := d.Dispatch(drivers, requests, candidates)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"d1": "r1"}, result)
	assert.True(t, pair.AllFinite())
}
