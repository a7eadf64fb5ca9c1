// Package fleettest holds small synthetic fixtures (a three-cell grid and a
// toy driver/request tick) used by the dispatch package's test suite.
package fleettest

import (
	"testing"

	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/stretchr/testify/require"
)

// ThreeCellGrid returns a Registry over three widely-spaced cells (A, B, C)
// with no idle-transition rows, so IdleTransitions falls back to the
// degenerate self-loop distribution everywhere.
func ThreeCellGrid(t *testing.T) *grid.Registry {
	t.Helper()
	cells := []grid.Cell{
		{ID: "A", Lng: 104.0, Lat: 30.6},
		{ID: "B", Lng: 104.1, Lat: 30.6},
		{ID: "C", Lng: 104.0, Lat: 30.7},
	}
	reg, err := grid.NewRegistry(cells, nil)
	require.NoError(t, err)
	return reg
}

// ThreeCellGridWithIdleLoop returns the same three cells as ThreeCellGrid
// plus an idle-transition table covering all 24 hours where every cell
// transitions to itself with probability 1 (a driver that never moves).
func ThreeCellGridWithIdleLoop(t *testing.T) *grid.Registry {
	t.Helper()
	cells := []grid.Cell{
		{ID: "A", Lng: 104.0, Lat: 30.6},
		{ID: "B", Lng: 104.1, Lat: 30.6},
		{ID: "C", Lng: 104.0, Lat: 30.7},
	}

	var rows []grid.TransitionRow
	for hour := 0; hour < 24; hour++ {
		for _, c := range cells {
			rows = append(rows, grid.TransitionRow{Hour: hour, StartCell: c.ID, EndCell: c.ID, Probability: 1.0})
		}
	}

	reg, err := grid.NewRegistry(cells, rows)
	require.NoError(t, err)
	return reg
}

// OneDriverOneRequest returns a single driver at cell A, a single request
// from A to B worth reward 20 taking 300 seconds, and one candidate pairing
// them with a 60-second ETA and 500m pickup distance.
func OneDriverOneRequest() (map[string]parse.Driver, map[string]parse.Request, map[string][]parse.Candidate) {
	drivers := map[string]parse.Driver{
		"d1": {ID: "d1", Lng: 104.0, Lat: 30.6, Cell: "A"},
	}
	requests := map[string]parse.Request{
		"r1": {ID: "r1", StartCell: "A", EndCell: "B", RequestTS: 1_700_000_000, FinishTS: 1_700_000_300, DayOfWeek: 2, Reward: 20},
	}
	candidates := map[string][]parse.Candidate{
		"r1": {{DriverID: "d1", RequestID: "r1", Distance: 500, ETA: 60}},
	}
	return drivers, requests, candidates
}
