// Package dispatch implements the fleet decision core's order-dispatch
// engine (spec.md §4.5): candidate scoring against the shared state-value
// table, a deterministic greedy conflict-free matching, and the Sarsa /
// Double-Q temporal-difference update rules (including the idle-driver
// and open-request counterfactual updates).
//
// Dispatcher owns exactly one piece of long-lived state: the value table
// (plain *valuetable.Table/*TimeIndexed for Sarsa, *valuetable.Pair for
// Double-Q) and a monotonically non-decreasing timestamp (spec.md §4.5.6).
// A single Dispatch call is one state transition; there is no terminal
// state.
//
// Sarsa and Double-Q share the matching and scoring skeleton and differ
// only in how they read the bootstrap target and where they write TD
// updates; both are expressed as an unexported variant interface whose
// single resolve method yields the tick's joint, student and teacher
// table views, while scoring, matching and the three update passes are
// shared Dispatcher methods. No third dispatcher variant is anticipated
// and none should be added speculatively.
package dispatch
