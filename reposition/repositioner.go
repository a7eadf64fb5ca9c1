package reposition

import (
	"math"
	"sort"

	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/valuetable"
)

// Repositioner holds a read-only handle on the shared value table and
// grid; it never mutates either (spec.md §5, "Shared-resource policy").
type Repositioner struct {
	cfg     Config
	locator Locator
	values  valuetable.Reader
}

// New builds a Repositioner. locator and values must be non-nil.
func New(locator Locator, values valuetable.Reader, opts ...Option) (*Repositioner, error) {
	if locator == nil {
		return nil, ErrNilLocator
	}
	if values == nil {
		return nil, ErrNilReader
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Repositioner{cfg: cfg, locator: locator, values: values}, nil
}

// Reposition recommends a destination cell for every idle driver in
// drivers, walked in input order, with a per-tick destination-exclusion
// set (spec.md §4.6, invariant 7). Empty drivers short-circuits to an
// empty map.
func (r *Repositioner) Reposition(drivers []parse.IdleDriver, timestamp int64) (map[string]string, error) {
	if len(drivers) == 0 {
		return map[string]string{}, nil
	}

	candidates := r.topCandidates(len(drivers), timestamp)
	taken := make(map[string]bool, len(drivers))
	result := make(map[string]string, len(drivers))

	for _, driver := range drivers {
		result[driver.DriverID] = r.bestDestination(driver, candidates, taken, timestamp)
	}

	r.cfg.logger.Info().
		Int("drivers", len(drivers)).
		Int("candidates", len(candidates)).
		Msg("reposition: tick complete")

	return result, nil
}

func (r *Repositioner) bestDestination(
	driver parse.IdleDriver,
	candidates []string,
	taken map[string]bool,
	timestamp int64,
) string {
	vCur := r.values.Get(driver.Cell, timestamp)
	best := driver.Cell
	bestGain := 0.0

	for _, cand := range candidates {
		if cand == driver.Cell || taken[cand] {
			continue
		}

		eta := r.locator.Distance(driver.Cell, cand) / r.cfg.speed
		gain := math.Pow(r.cfg.gamma, eta)*r.values.Get(cand, timestamp) - vCur
		if isNonFinite(gain) {
			continue
		}
		if gain > bestGain {
			bestGain = gain
			best = cand
		}
	}

	// Mark the chosen cell taken unconditionally, stay or move: spec.md
	// §4.6 step 5 has no stay-exception, and a driver that stays put must
	// still occupy its own cell in the exclusion set so a later driver
	// cannot be assigned into it (spec.md §8 property 7).
	taken[best] = true
	return best
}

// topCandidates ranks every registered cell by current value (descending,
// stable) and returns the top K = min(candidateMultiplier*driverCount,
// |cells|), computed once per tick (spec.md §4.6, step 1).
func (r *Repositioner) topCandidates(driverCount int, timestamp int64) []string {
	cells := r.locator.Cells()

	k := r.cfg.candidateMultiplier * driverCount
	if k > len(cells) {
		k = len(cells)
	}

	type ranked struct {
		cell  string
		value float64
	}
	scored := make([]ranked, len(cells))
	for i, c := range cells {
		scored[i] = ranked{cell: c, value: r.values.Get(c, timestamp)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].value > scored[j].value })

	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = scored[i].cell
	}
	return out
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
