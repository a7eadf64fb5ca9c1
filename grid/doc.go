// Package grid is the static spatial index of the fleet decision core:
// a registry of hexagonal service-area cells, a k-d tree for nearest-cell
// lookup, haversine/equirectangular inter-cell distance, and the hourly
// idle-transition probability table.
//
// The cell set and the transition table are loaded once at construction
// and never mutated afterward; every method on Registry is safe for
// concurrent read-only use by multiple goroutines.
//
// Complexity:
//
//   - Lookup:         O(log N) expected (k-d tree descent), N = |cells|.
//   - Distance:       O(1).
//   - IdleTransitions: O(1) map lookup.
//
// Errors:
//
//	ErrNoCells            - registry constructed with zero cells.
//	ErrMissingHour        - an idle-transition row has an hour outside [0,24).
//	ErrTransitionNotNormal - a loaded transition distribution does not sum to 1±1e-9.
package grid
