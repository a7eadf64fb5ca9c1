package agent_test

import (
	"fmt"

	"github.com/fleetcore/dispatchcore/agent"
	"github.com/fleetcore/dispatchcore/dispatch"
	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/reposition"
	"github.com/fleetcore/dispatchcore/valuetable"
)

func Example() {
	cells := []grid.Cell{
		{ID: "gA", Lng: 104.0, Lat: 30.6},
		{ID: "gB", Lng: 104.1, Lat: 30.6},
	}
	locator, err := grid.NewRegistry(cells, nil)
	if err != nil {
		panic(err)
	}

	table := valuetable.NewTable()
	d, err := dispatch.NewSarsa(locator, table)
	if err != nil {
		panic(err)
	}
	r, err := reposition.New(locator, table)
	if err != nil {
		panic(err)
	}

	a, err := agent.New(agent.WithLocator(locator), agent.WithDispatcher(d), agent.WithRepositioner(r))
	if err != nil {
		panic(err)
	}

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
			RewardUnits:          20,
			PickUpETA:            60,
		},
	}

	results, err := a.Dispatch(records)
	if err != nil {
		panic(err)
	}
	fmt.Println(results[0].DriverID, results[0].OrderID)
	// Output: d1 r1
}
