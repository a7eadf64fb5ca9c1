package agent

import (
	"sort"

	"github.com/fleetcore/dispatchcore/dispatch"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/reposition"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Agent is the per-tick orchestrator: parse -> dispatch/reposition ->
// format (spec.md §4.7). It is safe to reuse across ticks; it performs no
// caching beyond what its Dispatcher and Repositioner already hold.
type Agent struct {
	parser       *parse.Parser
	dispatcher   *dispatch.Dispatcher
	repositioner *reposition.Repositioner
	logger       *zerolog.Logger
}

// New assembles an Agent from its dependencies. WithLocator,
// WithDispatcher and WithRepositioner are required.
func New(opts ...Option) (*Agent, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.locator == nil {
		return nil, ErrNilLocator
	}
	if cfg.dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	if cfg.repositioner == nil {
		return nil, ErrNilRepositioner
	}

	return &Agent{
		parser:       parse.New(cfg.locator),
		dispatcher:   cfg.dispatcher,
		repositioner: cfg.repositioner,
		logger:       cfg.logger,
	}, nil
}

// Dispatch parses one dispatch tick's records, runs it through the
// Dispatcher, and formats the resulting matching as the external output
// shape (spec.md §6).
func (a *Agent) Dispatch(records []parse.DispatchRecord) ([]DispatchResult, error) {
	tickLog := a.logger.With().Str("tick_id", uuid.NewString()).Logger()

	tick, err := a.parser.ParseDispatch(records)
	if err != nil {
		tickLog.Error().Err(err).Msg("agent: dispatch input malformed")
		return nil, err
	}

	assignments, err := a.dispatcher.Dispatch(tick.Drivers, tick.Requests, tick.Candidates)
	if err != nil {
		tickLog.Error().Err(err).Msg("agent: dispatch failed")
		return nil, err
	}

	out := make([]DispatchResult, 0, len(assignments))
	for driverID, orderID := range assignments {
		out = append(out, DispatchResult{OrderID: orderID, DriverID: driverID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })

	tickLog.Info().
		Int("drivers", len(tick.Drivers)).
		Int("requests", len(tick.Requests)).
		Int("matched", len(out)).
		Msg("agent: dispatch tick complete")

	return out, nil
}

// Reposition parses one reposition tick's record, runs it through the
// Repositioner, and formats the resulting destinations as the external
// output shape (spec.md §6).
func (a *Agent) Reposition(record parse.RepositionRecord) ([]RepositionResult, error) {
	tickLog := a.logger.With().Str("tick_id", uuid.NewString()).Logger()

	repTick := a.parser.ParseReposition(record)

	assignments, err := a.repositioner.Reposition(repTick.Drivers, repTick.Timestamp)
	if err != nil {
		tickLog.Error().Err(err).Msg("agent: reposition failed")
		return nil, err
	}

	out := make([]RepositionResult, 0, len(assignments))
	for driverID, destination := range assignments {
		out = append(out, RepositionResult{DriverID: driverID, Destination: destination})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DriverID < out[j].DriverID })

	tickLog.Info().
		Int("drivers", len(repTick.Drivers)).
		Msg("agent: reposition tick complete")

	return out, nil
}
