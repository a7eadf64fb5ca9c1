package reposition_test

import (
	"fmt"

	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/reposition"
	"github.com/fleetcore/dispatchcore/valuetable"
)

func Example() {
	cells := []grid.Cell{
		{ID: "gA", Lng: 0, Lat: 0},
		{ID: "gB", Lng: 0.01, Lat: 0},
	}
	locator, err := grid.NewRegistry(cells, nil)
	if err != nil {
		panic(err)
	}

	table := valuetable.NewTable()
	table.Seed("gB", 5)

	r, err := reposition.New(locator, table)
	if err != nil {
		panic(err)
	}

	drivers := []parse.IdleDriver{{DriverID: "d1", Cell: "gA"}}
	result, err := r.Reposition(drivers, 1000)
	if err != nil {
		panic(err)
	}
	fmt.Println(result["d1"])
	// Output: gB
}
