package agent_test

import (
	"testing"

	"github.com/fleetcore/dispatchcore/agent"
	"github.com/fleetcore/dispatchcore/dispatch"
	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/reposition"
	"github.com/fleetcore/dispatchcore/valuetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCellGrid(t *testing.T) *grid.Registry {
	t.Helper()
	cells := []grid.Cell{
		{ID: "gA", Lng: 104.0, Lat: 30.6},
		{ID: "gB", Lng: 104.1, Lat: 30.6},
	}
	reg, err := grid.NewRegistry(cells, nil)
	require.NoError(t, err)
	return reg
}

func TestNewRequiresAllDependencies(t *testing.T) {
	locator := twoCellGrid(t)
	table := valuetable.NewTable()
	d, err := dispatch.NewSarsa(locator, table)
	require.NoError(t, err)
	r, err := reposition.New(locator, table)
	require.NoError(t, err)

	_, err = agent.New(agent.WithDispatcher(d), agent.WithRepositioner(r))
	require.ErrorIs(t, err, agent.ErrNilLocator)

	_, err = agent.New(agent.WithLocator(locator), agent.WithRepositioner(r))
	require.ErrorIs(t, err, agent.ErrNilDispatcher)

	_, err = agent.New(agent.WithLocator(locator), agent.WithDispatcher(d))
	require.ErrorIs(t, err, agent.ErrNilRepositioner)
}

func TestAgentDispatchRoundTrip(t *testing.T) {
	locator := twoCellGrid(t)
	table := valuetable.NewTable()
	d, err := dispatch.NewSarsa(locator, table)
	require.NoError(t, err)
	r, err := reposition.New(locator, table)
	require.NoError(t, err)

	a, err := agent.New(agent.WithLocator(locator), agent.WithDispatcher(d), agent.WithRepositioner(r))
	require.NoError(t, err)

	records := []parse.DispatchRecord{
		{
			OrderID:              "r1",
			DriverID:             "d1",
			OrderDriverDistance:  500,
			OrderStartLocation:   [2]float64{104.0, 30.6},
			OrderFinishLocation:  [2]float64{104.1, 30.6},
			DriverLocation:       [2]float64{104.0, 30.6},
			Timestamp:            1_700_000_000,
			OrderFinishTimestamp: 1_700_000_300,
			DayOfWeek:            2,
			RewardUnits:          20,
			PickUpETA:            60,
		},
	}

	results, err := a.Dispatch(records)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, agent.DispatchResult{OrderID: "r1", DriverID: "d1"}, results[0])
}

func TestAgentRepositionRoundTrip(t *testing.T) {
	locator := twoCellGrid(t)
	table := valuetable.NewTable()
	table.Seed("gB", 5)
	d, err := dispatch.NewSarsa(locator, table)
	require.NoError(t, err)
	r, err := reposition.New(locator, table)
	require.NoError(t, err)

	a, err := agent.New(agent.WithLocator(locator), agent.WithDispatcher(d), agent.WithRepositioner(r))
	require.NoError(t, err)

	record := parse.RepositionRecord{
		Timestamp: 1000,
		DayOfWeek: 2,
		DriverInfo: []parse.DriverInfo{
			{DriverID: "d1", GridID: "gA"},
		},
	}

	results, err := a.Reposition(record)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, agent.RepositionResult{DriverID: "d1", Destination: "gB"}, results[0])
}

func TestAgentDispatchPropagatesInputMalformed(t *testing.T) {
	locator := twoCellGrid(t)
	table := valuetable.NewTable()
	d, err := dispatch.NewSarsa(locator, table)
	require.NoError(t, err)
	r, err := reposition.New(locator, table)
	require.NoError(t, err)

	a, err := agent.New(agent.WithLocator(locator), agent.WithDispatcher(d), agent.WithRepositioner(r))
	require.NoError(t, err)

	_, err = a.Dispatch([]parse.DispatchRecord{{OrderID: "", DriverID: "d1"}})
	require.ErrorIs(t, err, parse.ErrInvalidRecord)
}
