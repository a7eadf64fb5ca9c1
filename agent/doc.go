// Package agent provides the stateless per-tick orchestration facade
// (spec.md §4.7): one Agent wraps a single Dispatcher and a single
// Repositioner built at startup and forwards each tick's parsed inputs to
// whichever of the two the caller invokes. The Agent holds no per-tick
// state of its own beyond what the Dispatcher and Repositioner already
// hold internally.
package agent
