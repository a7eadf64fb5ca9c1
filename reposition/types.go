package reposition

import (
	"errors"

	"github.com/fleetcore/dispatchcore/grid"
	"github.com/rs/zerolog"
)

// Sentinel errors for the reposition package.
var (
	// ErrNilLocator indicates a Repositioner was constructed without a Locator.
	ErrNilLocator = errors.New("reposition: cell locator must not be nil")

	// ErrNilReader indicates a Repositioner was constructed without a value reader.
	ErrNilReader = errors.New("reposition: value reader must not be nil")
)

// DefaultSpeedMetersPerSecond is the driver travel speed used to convert
// cell distance into ETA (spec.md §4.6: "speed = 3 m/s").
const DefaultSpeedMetersPerSecond = 3.0

// DefaultGamma is the discount factor applied to the repositioning gain
// (spec.md §4.6). Independent from the Dispatcher's gamma so callers may
// tune them separately; in practice operators usually set both to the
// same value.
const DefaultGamma = 0.9999

// DefaultCandidateMultiplier is the factor applied to the idle-driver
// count to bound the per-tick candidate-cell set: K = min(multiplier *
// |drivers|, |cells|) (spec.md §4.6, §9 "Bounded reposition candidates").
const DefaultCandidateMultiplier = 10

// Locator is grid.CellLocator plus Cells, which the Repositioner needs to
// build the per-tick candidate ranking (SPEC_FULL.md
// §4 item 1: depend on an interface, not *grid.Registry, so tests can
// substitute a small synthetic grid).
type Locator interface {
	grid.CellLocator
	// Cells returns every registered cell id, in a stable order.
	Cells() []string
}

// Config holds the Repositioner's tunable parameters.
type Config struct {
	speed               float64
	gamma               float64
	candidateMultiplier int
	logger              *zerolog.Logger
}

// Option configures a Repositioner at construction.
type Option func(*Config)

// WithSpeed overrides the driver travel speed used for ETA (m/s).
func WithSpeed(speed float64) Option { return func(c *Config) { c.speed = speed } }

// WithGamma overrides the discount factor applied to repositioning gain.
func WithGamma(gamma float64) Option { return func(c *Config) { c.gamma = gamma } }

// WithCandidateMultiplier overrides the multiplier used to bound the
// per-tick candidate-cell set (spec.md §9: default 10).
func WithCandidateMultiplier(m int) Option { return func(c *Config) { c.candidateMultiplier = m } }

// WithLogger attaches a zerolog.Logger for per-tick summaries.
func WithLogger(logger zerolog.Logger) Option { return func(c *Config) { c.logger = &logger } }

func defaultConfig() Config {
	noop := zerolog.Nop()
	return Config{
		speed:               DefaultSpeedMetersPerSecond,
		gamma:               DefaultGamma,
		candidateMultiplier: DefaultCandidateMultiplier,
		logger:              &noop,
	}
}
