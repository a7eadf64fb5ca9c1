// Package valuetable implements the fleet decision core's state-value
// store (spec.md §3, §4.4): a keyed map from grid cell (optionally
// cell + hour-of-week) to a scalar expected-reward estimate, read on
// every dispatch/reposition decision and updated online by the
// Dispatcher's TD rule.
//
// Two shapes are provided behind the common Reader/Writer interfaces:
//
//   - Table: one scalar per cell.
//   - TimeIndexed: one scalar per (cell, hour-of-week) bucket, with
//     linear interpolation between the two buckets adjacent to a
//     real-valued timestamp (spec.md §4.4).
//
// Pair composes two Tables (or TimeIndexed tables) of the same shape
// into the joint-read, split-write structure the Double-Q dispatcher
// variant needs (spec.md §4.5.5, §3 "Double-Q variant").
package valuetable
