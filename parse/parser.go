package parse

import (
	"errors"

	"github.com/fleetcore/dispatchcore/grid"
)

// Sentinel errors for malformed tick payloads (spec.md §7, InputMalformed:
// "terminating error; no partial output").
var (
	// ErrInvalidRecord indicates a record is missing a required id or
	// carries an out-of-contract value (negative distance/eta).
	ErrInvalidRecord = errors.New("parse: invalid record")
)

// DispatchRecord is one row of the dispatch input payload (spec.md §6):
// one record per (driver, request) candidate pairing.
type DispatchRecord struct {
	OrderID              string
	DriverID             string
	OrderDriverDistance  float64
	OrderStartLocation   [2]float64 // [lng, lat]
	OrderFinishLocation  [2]float64 // [lng, lat]
	DriverLocation       [2]float64 // [lng, lat]
	Timestamp            int64
	OrderFinishTimestamp int64
	DayOfWeek            int
	RewardUnits          float64
	PickUpETA            float64
}

// DriverInfo is one entry of a RepositionRecord's driver_info list.
type DriverInfo struct {
	DriverID string
	GridID   string
}

// RepositionRecord is the reposition input payload (spec.md §6).
type RepositionRecord struct {
	Timestamp  int64
	DayOfWeek  int
	DriverInfo []DriverInfo
}

// Parser resolves raw coordinates to grid cells via a CellLocator and
// assembles Driver/Request/Candidate tuples for a tick.
type Parser struct {
	locator grid.CellLocator
}

// New returns a Parser backed by the given cell locator.
func New(locator grid.CellLocator) *Parser {
	return &Parser{locator: locator}
}

// ParseDispatch normalises dispatch input records into a Tick. Duplicate
// driver/request ids across records collapse to the last record seen,
// matching parse_dispatch's dict-overwrite semantics in the original
// source (spec.md §4.2: "same key → same payload; last one wins").
//
// A record missing its order or driver id, or carrying a negative
// distance/eta, is InputMalformed (spec.md §7): ParseDispatch fails the
// whole tick rather than silently dropping one record.
func (p *Parser) ParseDispatch(records []DispatchRecord) (Tick, error) {
	tick := Tick{
		Drivers:    make(map[string]Driver, len(records)),
		Requests:   make(map[string]Request, len(records)),
		Candidates: make(map[string][]Candidate),
	}

	for _, rec := range records {
		if rec.OrderID == "" || rec.DriverID == "" {
			return Tick{}, ErrInvalidRecord
		}
		if rec.OrderDriverDistance < 0 || rec.PickUpETA < 0 {
			return Tick{}, ErrInvalidRecord
		}

		driver := Driver{
			ID:   rec.DriverID,
			Lng:  rec.DriverLocation[0],
			Lat:  rec.DriverLocation[1],
			Cell: p.locator.Lookup(rec.DriverLocation[0], rec.DriverLocation[1]),
		}
		tick.Drivers[driver.ID] = driver

		request := Request{
			ID:        rec.OrderID,
			StartCell: p.locator.Lookup(rec.OrderStartLocation[0], rec.OrderStartLocation[1]),
			EndCell:   p.locator.Lookup(rec.OrderFinishLocation[0], rec.OrderFinishLocation[1]),
			RequestTS: rec.Timestamp,
			FinishTS:  rec.OrderFinishTimestamp,
			DayOfWeek: rec.DayOfWeek,
			Reward:    rec.RewardUnits,
		}
		tick.Requests[request.ID] = request

		tick.Candidates[request.ID] = append(tick.Candidates[request.ID], Candidate{
			DriverID:  rec.DriverID,
			RequestID: rec.OrderID,
			Distance:  rec.OrderDriverDistance,
			ETA:       rec.PickUpETA,
		})
	}

	return tick, nil
}

// ParseReposition normalises a reposition input record into a
// RepositionTick. Unknown grid ids are passed through untouched (spec.md
// §7, UnknownCell: "driver stays put").
func (p *Parser) ParseReposition(rec RepositionRecord) RepositionTick {
	drivers := make([]IdleDriver, 0, len(rec.DriverInfo))
	for _, d := range rec.DriverInfo {
		drivers = append(drivers, IdleDriver{DriverID: d.DriverID, Cell: d.GridID})
	}

	return RepositionTick{
		Timestamp: rec.Timestamp,
		DayOfWeek: rec.DayOfWeek,
		Drivers:   drivers,
	}
}
