package grid

import (
	"fmt"
	"math"
	"sort"
)

// unknownCellDistance is returned by Distance when either endpoint is not
// in the registry; large enough to never win a scoring comparison, finite
// so it can never poison a sum (spec.md §7, NumericDegenerate policy).
const unknownCellDistance = 1e12

// hoursPerDay is the number of hour-of-day buckets in the idle transition
// table (spec.md §4.1: "transition table contains all 24 hours").
const hoursPerDay = 24

// Registry is the concrete, immutable-after-construction CellLocator: a
// static set of cell centroids indexed by a k-d tree, plus the
// hour-of-day idle-transition table. Registry satisfies CellLocator.
//
// Registry is process-wide and shared by reference (spec.md §3:
// "Grid ... process-wide, immutable after initialisation"); it holds no
// lock because nothing ever mutates it after NewRegistry returns.
type Registry struct {
	cfg   config
	cells map[string]*Cell
	tree  *kdNode

	// transitions[hour][startCell] = destination cell -> probability.
	transitions map[int]map[string]map[string]float64
}

// NewRegistry builds a Registry from the given cells and idle-transition
// rows. cells must be non-empty and contain no duplicate ids. transitions
// rows with a hour outside [0,24) are rejected; rows whose destination
// distribution does not sum to 1±1e-9 are rejected, so a malformed seed
// file fails fast at construction (spec.md §7, SeedMissing-class error).
//
// Complexity: O(N log N) for the k-d tree build, N = len(cells).
func NewRegistry(cells []Cell, transitions []TransitionRow, opts ...Option) (*Registry, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cellMap := make(map[string]*Cell, len(cells))
	kdCells := make([]*Cell, 0, len(cells))
	for i := range cells {
		c := cells[i]
		if _, exists := cellMap[c.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCell, c.ID)
		}
		cp := c
		cellMap[c.ID] = &cp
		kdCells = append(kdCells, &cp)
	}

	transitionTable, err := buildTransitionTable(transitions)
	if err != nil {
		return nil, err
	}

	return &Registry{
		cfg:         cfg,
		cells:       cellMap,
		tree:        kdBuild(kdCells, 0),
		transitions: transitionTable,
	}, nil
}

// TransitionRow is one row of the idle_transition_probability.csv seed:
// at hour h, a driver idling at StartCell transitions to EndCell with
// Probability.
type TransitionRow struct {
	Hour        int
	StartCell   string
	EndCell     string
	Probability float64
}

func buildTransitionTable(rows []TransitionRow) (map[int]map[string]map[string]float64, error) {
	table := make(map[int]map[string]map[string]float64, hoursPerDay)
	sums := make(map[int]map[string]float64)

	for _, r := range rows {
		if r.Hour < 0 || r.Hour >= hoursPerDay {
			return nil, fmt.Errorf("%w: hour=%d", ErrMissingHour, r.Hour)
		}
		if table[r.Hour] == nil {
			table[r.Hour] = make(map[string]map[string]float64)
			sums[r.Hour] = make(map[string]float64)
		}
		if table[r.Hour][r.StartCell] == nil {
			table[r.Hour][r.StartCell] = make(map[string]float64)
		}
		table[r.Hour][r.StartCell][r.EndCell] = r.Probability
		sums[r.Hour][r.StartCell] += r.Probability
	}

	for hour, byStart := range sums {
		for start, sum := range byStart {
			if math.Abs(sum-1.0) > normalizeTolerance {
				return nil, fmt.Errorf("%w: hour=%d start=%s sum=%f", ErrTransitionNotNormal, hour, start, sum)
			}
		}
	}

	return table, nil
}

// Lookup implements CellLocator.
func (r *Registry) Lookup(lng, lat float64) string {
	node, _ := r.tree.nearest(lng, lat, nil, 0)
	if node == nil {
		return ""
	}
	return node.cell.ID
}

// Distance implements CellLocator.
func (r *Registry) Distance(a, b string) float64 {
	ca, aok := r.cells[a]
	cb, bok := r.cells[b]
	if !aok || !bok {
		return unknownCellDistance
	}
	if r.cfg.fastDistance {
		return equirectangular(ca.Lng, ca.Lat, cb.Lng, cb.Lat)
	}
	return haversine(ca.Lng, ca.Lat, cb.Lng, cb.Lat)
}

// IdleTransitions implements CellLocator.
func (r *Registry) IdleTransitions(ts int64, g string) map[string]float64 {
	hour := hourOfDayUTC(ts)
	if byStart, ok := r.transitions[hour]; ok {
		if dist, ok := byStart[g]; ok {
			return dist
		}
	}
	return map[string]float64{g: 1.0}
}

// CellCount returns the number of distinct cells in the registry.
func (r *Registry) CellCount() int {
	return len(r.cells)
}

// Cells returns all cell ids currently registered, sorted so that
// value-ranking ties resolve deterministically across runs (Repositioner's
// per-tick candidate ranking depends on this).
func (r *Registry) Cells() []string {
	ids := make([]string, 0, len(r.cells))
	for id := range r.cells {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func hourOfDayUTC(ts int64) int {
	// time.Unix(ts, 0).UTC().Hour() without importing time into the hot
	// path struct; kept as a thin wrapper so callers never need to deal
	// with time.Time directly for this lookup.
	const secondsPerHour = 3600
	const hoursPerDayConst = 24
	return int((ts / secondsPerHour) % hoursPerDayConst)
}
