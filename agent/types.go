package agent

import (
	"errors"

	"github.com/fleetcore/dispatchcore/dispatch"
	"github.com/fleetcore/dispatchcore/grid"
	"github.com/fleetcore/dispatchcore/reposition"
	"github.com/rs/zerolog"
)

// Sentinel errors for the agent package.
var (
	// ErrNilLocator indicates an Agent was constructed without a cell locator.
	ErrNilLocator = errors.New("agent: cell locator must not be nil")

	// ErrNilDispatcher indicates an Agent was constructed without a Dispatcher.
	ErrNilDispatcher = errors.New("agent: dispatcher must not be nil")

	// ErrNilRepositioner indicates an Agent was constructed without a Repositioner.
	ErrNilRepositioner = errors.New("agent: repositioner must not be nil")
)

// Config holds the dependencies an Agent is assembled from.
type Config struct {
	locator      grid.CellLocator
	dispatcher   *dispatch.Dispatcher
	repositioner *reposition.Repositioner
	logger       *zerolog.Logger
}

// Option configures an Agent at construction, mirroring the rest of this
// module's functional-options constructors.
type Option func(*Config)

// WithLocator sets the cell locator the Agent's Parser resolves coordinates through.
func WithLocator(locator grid.CellLocator) Option {
	return func(c *Config) { c.locator = locator }
}

// WithDispatcher attaches the (already constructed) Dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(c *Config) { c.dispatcher = d }
}

// WithRepositioner attaches the (already constructed) Repositioner.
func WithRepositioner(r *reposition.Repositioner) Option {
	return func(c *Config) { c.repositioner = r }
}

// WithLogger attaches a zerolog.Logger; each tick logs under it with a
// fresh correlation id (SPEC_FULL.md §2).
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.logger = &logger }
}

func defaultConfig() Config {
	noop := zerolog.Nop()
	return Config{logger: &noop}
}

// DispatchResult is one entry of a Dispatch call's output (spec.md §6).
type DispatchResult struct {
	OrderID  string
	DriverID string
}

// RepositionResult is one entry of a Reposition call's output (spec.md §6).
type RepositionResult struct {
	DriverID    string
	Destination string
}
