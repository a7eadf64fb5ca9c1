package parse_test

import (
	"testing"

	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocator(t *testing.T) grid.CellLocator {
	t.Helper()
	reg, err := grid.NewRegistry([]grid.Cell{
		{ID: "gA", Lng: 0, Lat: 0},
		{ID: "gB", Lng: 1, Lat: 1},
	}, nil)
	require.NoError(t, err)
	return reg
}

func TestParseDispatchBuildsDriversRequestsCandidates(t *testing.T) {
	p := parse.New(testLocator(t))
	records := []parse.DispatchRecord{
		{
			OrderID: "r1", DriverID: "d1",
			OrderDriverDistance: 10, PickUpETA: 5,
			OrderStartLocation: [2]float64{0, 0}, OrderFinishLocation: [2]float64{1, 1},
			DriverLocation: [2]float64{0, 0},
			Timestamp:      1000, OrderFinishTimestamp: 1500, DayOfWeek: 2, RewardUnits: 3,
		},
	}

	tick, err := p.ParseDispatch(records)
	require.NoError(t, err)
	require.Contains(t, tick.Drivers, "d1")
	require.Contains(t, tick.Requests, "r1")
	assert.Equal(t, "gA", tick.Drivers["d1"].Cell)
	assert.Equal(t, "gA", tick.Requests["r1"].StartCell)
	assert.Equal(t, "gB", tick.Requests["r1"].EndCell)
	require.Len(t, tick.Candidates["r1"], 1)
	assert.Equal(t, "d1", tick.Candidates["r1"][0].DriverID)
}

func TestParseDispatchLastWriteWinsOnDuplicateKeys(t *testing.T) {
	p := parse.New(testLocator(t))
	records := []parse.DispatchRecord{
		{OrderID: "r1", DriverID: "d1", RewardUnits: 1, OrderStartLocation: [2]float64{0, 0}, OrderFinishLocation: [2]float64{0, 0}, DriverLocation: [2]float64{0, 0}},
		{OrderID: "r1", DriverID: "d1", RewardUnits: 9, OrderStartLocation: [2]float64{0, 0}, OrderFinishLocation: [2]float64{0, 0}, DriverLocation: [2]float64{0, 0}},
	}

	tick, err := p.ParseDispatch(records)
	require.NoError(t, err)
	assert.Equal(t, 9.0, tick.Requests["r1"].Reward)
}

func TestParseDispatchIsIdempotent(t *testing.T) {
	p := parse.New(testLocator(t))
	records := []parse.DispatchRecord{
		{OrderID: "r1", DriverID: "d1", OrderStartLocation: [2]float64{0, 0}, OrderFinishLocation: [2]float64{1, 1}, DriverLocation: [2]float64{0, 0}},
	}

	tick1, err1 := p.ParseDispatch(records)
	tick2, err2 := p.ParseDispatch(records)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, tick1, tick2)
}

func TestParseDispatchRejectsMissingIDs(t *testing.T) {
	p := parse.New(testLocator(t))
	_, err := p.ParseDispatch([]parse.DispatchRecord{{OrderID: "", DriverID: "d1"}})
	require.ErrorIs(t, err, parse.ErrInvalidRecord)
}

func TestParseDispatchRejectsNegativeDistance(t *testing.T) {
	p := parse.New(testLocator(t))
	_, err := p.ParseDispatch([]parse.DispatchRecord{{OrderID: "r1", DriverID: "d1", OrderDriverDistance: -1}})
	require.ErrorIs(t, err, parse.ErrInvalidRecord)
}

func TestParseRepositionPassesUnknownCellThrough(t *testing.T) {
	p := parse.New(testLocator(t))
	rec := parse.RepositionRecord{
		Timestamp: 10, DayOfWeek: 1,
		DriverInfo: []parse.DriverInfo{{DriverID: "d1", GridID: "unknown-cell"}},
	}

	tick := p.ParseReposition(rec)
	require.Len(t, tick.Drivers, 1)
	assert.Equal(t, "unknown-cell", tick.Drivers[0].Cell)
}
