// Package reposition implements the idle-driver repositioning planner
// (spec.md §4.6): for each idle driver, rank a bounded set of candidate
// cells by current state value and greedily pick the best positive-gain
// destination, excluding cells already claimed by another driver this
// tick.
//
// Grounded on the original competition entry's StateValueGreedy planner
// (reposition.py): rank cells by value once per tick, cap the candidate
// set at 10x the driver count, then walk drivers in input order applying
// a destination-exclusion set.
package reposition
