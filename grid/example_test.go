package grid_test

import (
	"fmt"

	"github.com/fleetcore/dispatchcore/grid"
)

func ExampleRegistry_Lookup() {
	cells := []grid.Cell{
		{ID: "downtown", Lng: 104.06, Lat: 30.66},
		{ID: "airport", Lng: 104.04, Lat: 30.58},
	}
	reg, err := grid.NewRegistry(cells, nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(reg.Lookup(104.061, 30.661))
	// Output: downtown
}
