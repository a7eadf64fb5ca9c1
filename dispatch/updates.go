package dispatch

import (
	"math"

	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/valuetable"
)

// applyMatchUpdates writes alpha*score to each accepted candidate's driver
// cell (spec.md §4.5.4, first block). Writes land on the student table
// only; for Sarsa, student is the sole table.
func (d *Dispatcher) applyMatchUpdates(student valuetable.Writer, accepted []scoredCandidate, timestamp int64) {
	for _, c := range accepted {
		student.Add(c.driverCell, timestamp, d.cfg.alpha*c.score)
	}
}

// applyIdleUpdates applies the expected-Sarsa idle-driver update (spec.md
// §4.5.4, second block) to every driver absent from assignedDrivers: the
// bootstrap target is the idle-transition-weighted expectation of the
// teacher's next-step value; v0 and the write both target the student.
func (d *Dispatcher) applyIdleUpdates(
	student valuetable.ReadWriter,
	teacher valuetable.Reader,
	locator grid.CellLocator,
	drivers map[string]parse.Driver,
	assignedDrivers map[string]bool,
	timestamp int64,
) {
	for _, driver := range drivers {
		if assignedDrivers[driver.ID] {
			continue
		}

		v0 := student.Get(driver.Cell, timestamp)
		v1 := d.expectedIdleNext(teacher, locator, driver.Cell, timestamp)
		update := d.cfg.idleReward + d.cfg.gamma*v1 - v0

		if isNonFinite(update) {
			d.cfg.logger.Debug().Str("driver_id", driver.ID).Msg("dispatch: non-finite idle update, skipping")
			continue
		}

		student.Add(driver.Cell, timestamp, d.cfg.alpha*update)
	}
}

func (d *Dispatcher) expectedIdleNext(teacher valuetable.Reader, locator grid.CellLocator, cell string, timestamp int64) float64 {
	nextTS := timestamp + int64(d.cfg.stepSeconds)
	var expected float64
	for destCell, p := range locator.IdleTransitions(timestamp, cell) {
		expected += p * teacher.Get(destCell, nextTS)
	}
	return expected
}

// applyOpenUpdates applies the optional open-request update (spec.md
// §4.5.4, third block) to every request absent from assignedRequests,
// scaled by w_open and applied only when net-positive. Disabled entirely
// when w_open == 0 (the default, spec.md §9 Open Questions).
func (d *Dispatcher) applyOpenUpdates(
	student valuetable.ReadWriter,
	teacher valuetable.Reader,
	requests map[string]parse.Request,
	assignedRequests map[string]bool,
	timestamp int64,
) {
	if d.cfg.openWeight == 0 {
		return
	}

	for _, request := range requests {
		if assignedRequests[request.ID] {
			continue
		}

		deltaSeconds := request.FinishTS - request.RequestTS
		v0 := student.Get(request.StartCell, timestamp)
		v1 := teacher.Get(request.EndCell, timestamp+deltaSeconds)
		discount := math.Pow(d.cfg.gamma, float64(deltaSeconds))

		update := d.cfg.openWeight * (request.Reward + discount*v1 - v0)
		if isNonFinite(update) {
			d.cfg.logger.Debug().Str("request_id", request.ID).Msg("dispatch: non-finite open-request update, skipping")
			continue
		}
		if update <= 0 {
			continue
		}

		student.Add(request.StartCell, timestamp, d.cfg.alpha*update)
	}
}
