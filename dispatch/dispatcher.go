package dispatch

import (
	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/valuetable"
)

// Dispatcher is the per-tick matching and value-learning core (spec.md
// §4.5). One Dispatcher owns one variant (Sarsa or Double-Q) and a
// monotonic timestamp that only ever advances, mirroring the original
// competition entry's online-learning loop.
type Dispatcher struct {
	cfg       Config
	locator   grid.CellLocator
	v         variant
	timestamp int64
}

// NewSarsa builds a Dispatcher backed by a single shared value table: the
// on-policy TD(0) variant (spec.md §4.5.4).
func NewSarsa(locator grid.CellLocator, table valuetable.ReadWriter, opts ...Option) (*Dispatcher, error) {
	if locator == nil {
		return nil, ErrNilLocator
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dispatcher{
		cfg:     cfg,
		locator: locator,
		v:       &sarsaVariant{table: table},
	}, nil
}

// NewDoubleQ builds a Dispatcher backed by a pair of value tables, one
// designated student and one teacher by an independent fair-coin flip each
// tick (spec.md §4.5.5).
func NewDoubleQ(locator grid.CellLocator, pair *valuetable.Pair, opts ...Option) (*Dispatcher, error) {
	if locator == nil {
		return nil, ErrNilLocator
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dispatcher{
		cfg:     cfg,
		locator: locator,
		v:       newDoubleQVariant(pair, cfg.seed),
	}, nil
}

// Dispatch scores every supplied candidate, greedily matches drivers to
// requests, updates the value table(s) for matched, idle and (optionally)
// open requests, and returns the accepted driver_id -> request_id
// assignments (spec.md §4.5.1). A tick with no drivers and no requests
// short-circuits to an empty result with no table mutation (spec.md §4.5.7).
func (d *Dispatcher) Dispatch(
	drivers map[string]parse.Driver,
	requests map[string]parse.Request,
	candidates map[string][]parse.Candidate,
) (map[string]string, error) {
	// "Empty inputs" (spec.md §4.5.7) means nothing at all happened this
	// tick: no drivers and no requests. A tick with drivers but no
	// requests still must run idle updates (spec.md §8 scenario S4); a
	// tick with requests but no drivers still must run open-request
	// updates. Only the fully-empty case short-circuits.
	if len(drivers) == 0 && len(requests) == 0 {
		return map[string]string{}, nil
	}

	d.advanceTimestamp(requests)

	joint, student, teacher := d.v.resolve()

	scored := d.scoreCandidates(joint, drivers, requests, candidates, d.timestamp)
	accepted := greedyMatch(scored)

	assignedDrivers := make(map[string]bool, len(accepted))
	assignedRequests := make(map[string]bool, len(accepted))
	result := make(map[string]string, len(accepted))
	for _, c := range accepted {
		assignedDrivers[c.driverID] = true
		assignedRequests[c.requestID] = true
		result[c.driverID] = c.requestID
	}

	d.applyMatchUpdates(student, accepted, d.timestamp)
	d.applyIdleUpdates(student, teacher, d.locator, drivers, assignedDrivers, d.timestamp)
	d.applyOpenUpdates(student, teacher, requests, assignedRequests, d.timestamp)

	d.cfg.logger.Info().
		Int("drivers", len(drivers)).
		Int("requests", len(requests)).
		Int("matched", len(accepted)).
		Int64("timestamp", d.timestamp).
		Msg("dispatch: tick complete")

	return result, nil
}

// advanceTimestamp moves the dispatcher's monotonic clock forward to the
// latest request timestamp seen so far, never backward (spec.md §4.5.2).
func (d *Dispatcher) advanceTimestamp(requests map[string]parse.Request) {
	for _, r := range requests {
		if r.RequestTS > d.timestamp {
			d.timestamp = r.RequestTS
		}
	}
}

// Timestamp reports the dispatcher's current monotonic clock value.
func (d *Dispatcher) Timestamp() int64 { return d.timestamp }
