// Package parse normalises one tick's raw observation records into the
// Driver, Request and DispatchCandidate values the Dispatcher and
// Repositioner operate on (spec.md §4.2).
//
// Grounded on original_source/mobility_on_demand/model/parse.py's
// parse_dispatch: duplicate driver/request keys across records collapse
// to a single payload (last write wins), and cell resolution goes through
// a grid.CellLocator so the hex-grid CSV is never required by tests.
package parse
