package dispatch

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for the dispatch package.
var (
	// ErrNilLocator indicates a Dispatcher was constructed without a grid.CellLocator.
	ErrNilLocator = errors.New("dispatch: cell locator must not be nil")
)

// Default hyperparameters, carried over from the original competition
// entry's Agent(d=False, a=0.0067, g=0.9999, ir=0) (SPEC_FULL.md §4, item 6).
const (
	DefaultAlpha      = 0.0067
	DefaultGamma      = 0.9999
	DefaultIdleReward = 0.0
	DefaultOpenWeight = 0.0 // open-request update disabled by default (spec.md §9 Open Questions)

	// DefaultStepSeconds is Δt_step, the TD time-step duration used to
	// convert ride durations into discount exponents (spec.md §4.5).
	DefaultStepSeconds = 2.0
)

// Config holds the Dispatcher's tunable hyperparameters (spec.md §4.5).
type Config struct {
	alpha       float64
	gamma       float64
	idleReward  float64
	openWeight  float64
	stepSeconds float64
	rawGamma    bool // use raw gamma discount instead of gamma^tau (SPEC_FULL.md §6, item 3)
	seed        int64
	logger      *zerolog.Logger
}

// Option configures a Dispatcher at construction, mirroring the teacher's
// functional-option constructors (core.NewGraph, dijkstra.Dijkstra).
type Option func(*Config)

// WithAlpha sets the TD learning rate α.
func WithAlpha(alpha float64) Option { return func(c *Config) { c.alpha = alpha } }

// WithGamma sets the discount factor γ ∈ (0,1).
func WithGamma(gamma float64) Option { return func(c *Config) { c.gamma = gamma } }

// WithIdleReward sets the per-tick idle penalty r_idle (spec.md §4.5, ≤ 0).
func WithIdleReward(r float64) Option { return func(c *Config) { c.idleReward = r } }

// WithOpenWeight sets w_open, the open-request update weight (spec.md
// §4.5.4; defaults to 0 per spec.md §9 Open Questions).
func WithOpenWeight(w float64) Option { return func(c *Config) { c.openWeight = w } }

// WithStepSeconds overrides Δt_step, the TD time-step duration (spec.md
// §4.5: "Step size Δt_step = 2 s").
func WithStepSeconds(s float64) Option { return func(c *Config) { c.stepSeconds = s } }

// WithRawGammaDiscount switches the multi-step ride discount from γ^τ
// (canonical, spec.md §4.5.2) to raw γ, the alternative documented in
// spec.md §9 and SPEC_FULL.md §6 item 3. Off by default.
func WithRawGammaDiscount() Option { return func(c *Config) { c.rawGamma = true } }

// WithSeed sets the seed for the Double-Q variant's per-tick coin flip,
// making its sequence (and therefore its output) reproducible (spec.md §5).
func WithSeed(seed int64) Option { return func(c *Config) { c.seed = seed } }

// WithLogger attaches a zerolog.Logger used for debug-level skip events
// and info-level tick summaries (SPEC_FULL.md §2).
func WithLogger(logger zerolog.Logger) Option { return func(c *Config) { c.logger = &logger } }

func defaultConfig() Config {
	noop := zerolog.Nop()
	return Config{
		alpha:       DefaultAlpha,
		gamma:       DefaultGamma,
		idleReward:  DefaultIdleReward,
		openWeight:  DefaultOpenWeight,
		stepSeconds: DefaultStepSeconds,
		logger:      &noop,
	}
}

// scoredCandidate is a candidate paired with its computed score, carrying
// enough context to apply the TD update if it is accepted by the matcher.
type scoredCandidate struct {
	driverID   string
	requestID  string
	driverCell string
	endCell    string
	score      float64
	tau        float64 // discount exponent, in Δt_step units (unused by the discount when rawGamma)
	rideEndTS  int64   // timestamp + travel time, used as the v1 read time
}
