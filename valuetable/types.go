package valuetable

import (
	"errors"
	"time"
)

// Sentinel errors for the valuetable package.
var (
	// ErrSeedUnreadable indicates the initial-value seed could not be parsed.
	// Construction-time and fatal per spec.md §7 (SeedMissing).
	ErrSeedUnreadable = errors.New("valuetable: seed data unreadable")
)

// hoursPerWeek is the size of the time-indexed bucket space: spec.md §3
// defines hour-of-week in [0,168).
const hoursPerWeek = 24 * 7

// secondsPerHour converts a real-valued timestamp into the fractional
// position within its hour bucket (spec.md §4.4).
const secondsPerHour = 3600.0

// Reader reads the current estimate for a cell at a real-valued timestamp.
// The scalar Table ignores ts; TimeIndexed blends the two adjacent hour
// buckets. Both share this signature so Dispatcher and Repositioner code
// is agnostic to which variant backs it (spec.md §9, "Value-table key").
type Reader interface {
	Get(cell string, ts int64) float64
}

// Writer applies a delta to the value(s) backing a cell at ts.
type Writer interface {
	Add(cell string, ts int64, delta float64)
}

// ReadWriter is the full read/write contract a ValueTable implementation
// provides.
type ReadWriter interface {
	Reader
	Writer
}

// Option configures a TimeIndexed table at construction.
type Option func(*timeConfig)

type timeConfig struct {
	loc *time.Location
}

// WithBucketTimezone selects the timezone used to derive hour-of-week
// buckets from a timestamp. Defaults to UTC (spec.md §4.4: "bucket(t) ...
// UTC"); the original source left this as a TODO (SPEC_FULL.md §6, item 2).
func WithBucketTimezone(loc *time.Location) Option {
	return func(c *timeConfig) { c.loc = loc }
}

func defaultTimeConfig() timeConfig {
	return timeConfig{loc: time.UTC}
}

// bucket computes 24*weekday(t) + hour(t) in the configured timezone,
// matching spec.md §4.4's bucket(t) definition.
func bucket(ts int64, loc *time.Location) int {
	t := time.Unix(ts, 0).In(loc)
	return int(t.Weekday())*24 + t.Hour()
}
