package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrNoCells indicates a Registry was built from zero cells.
	ErrNoCells = errors.New("grid: registry must contain at least one cell")

	// ErrDuplicateCell indicates the same cell id was supplied twice at construction.
	ErrDuplicateCell = errors.New("grid: duplicate cell id")

	// ErrMissingHour indicates a transition row whose hour lies outside [0,24).
	// A table that leaves some hours out is accepted; those hours fall back to
	// the degenerate self-loop distribution.
	ErrMissingHour = errors.New("grid: idle transition table missing an hour bucket")

	// ErrTransitionNotNormal indicates a loaded distribution does not sum to 1±1e-9.
	ErrTransitionNotNormal = errors.New("grid: idle transition distribution does not sum to 1")
)

// normalizeTolerance bounds how far a loaded transition distribution's sum
// may drift from 1.0 before it is rejected (spec.md §8, property 6).
const normalizeTolerance = 1e-9

// Cell is a single hexagonal service-area region: an opaque identifier and
// the (lng, lat) centroid used for nearest-neighbor lookup and distance.
type Cell struct {
	ID  string
	Lng float64
	Lat float64
}

// CellLocator resolves raw coordinates to their containing cell and reports
// inter-cell distance and idle-transition distributions. Parser, Dispatcher
// and Repositioner all depend on this interface rather than on *Registry
// directly, so tests can substitute a coarse synthetic locator without the
// full 8 518-row hex table (see SPEC_FULL.md §4, item 1).
type CellLocator interface {
	// Lookup returns the id of the cell whose centroid is nearest (lng, lat)
	// in Euclidean (lng, lat) space. Ties are broken deterministically.
	Lookup(lng, lat float64) string

	// Distance returns the distance in metres between two cell centroids
	// (haversine for Registry, or its equirectangular approximation when
	// built WithFastDistance). Unknown cell ids yield a very large (but
	// finite) distance.
	Distance(a, b string) float64

	// IdleTransitions returns the probability distribution over destination
	// cells for a driver idling in g at the hour-of-day derived from ts
	// (UTC). The distribution always sums to 1±1e-9; a missing (hour, g)
	// pair yields the degenerate distribution {g: 1.0}.
	IdleTransitions(ts int64, g string) map[string]float64
}

// Option configures a Registry at construction time.
type Option func(*config)

type config struct {
	fastDistance bool
}

// WithFastDistance makes Registry.Distance use the equirectangular
// approximation (spec.md §4.1) instead of haversine. Accuracy is within 2%
// of haversine for cells inside the service area; intended for hot paths
// such as Repositioner's per-candidate ETA computation.
func WithFastDistance() Option {
	return func(c *config) { c.fastDistance = true }
}

func defaultConfig() config {
	return config{fastDistance: false}
}
