package valuetable

import "sync"

// TimeIndexed is the time-bucketed state-value variant: the state key is
// (cell, hour-of-week), and reads/writes for a real-valued timestamp
// linearly blend the two buckets adjacent to it (spec.md §4.4):
//
//	u = (t mod 3600) / 3600
//	get(cell, t) = (1-u)*V[cell, bucket(t)] + u*V[cell, bucket(t+3600)]
//	add(cell, t, δ) updates both buckets with weights (1-u) and u.
type TimeIndexed struct {
	mu     sync.RWMutex
	values map[string]map[int]float64 // cell -> bucket -> value
	loc    *timeConfig
}

// NewTimeIndexed returns an empty time-indexed table. Missing (cell,
// bucket) pairs default to 0.
func NewTimeIndexed(opts ...Option) *TimeIndexed {
	cfg := defaultTimeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TimeIndexed{
		values: make(map[string]map[int]float64),
		loc:    &cfg,
	}
}

// blendWeight returns u = (t mod 3600) / 3600, the fractional position of
// ts within its hour.
func blendWeight(ts int64) float64 {
	return float64(((ts%int64(secondsPerHour))+int64(secondsPerHour))%int64(secondsPerHour)) / secondsPerHour
}

// Get implements Reader with linear interpolation between the bucket
// containing ts and the next hour's bucket.
func (t *TimeIndexed) Get(cell string, ts int64) float64 {
	b0 := bucket(ts, t.loc.loc)
	b1 := bucket(ts+int64(secondsPerHour), t.loc.loc)
	u := blendWeight(ts)

	t.mu.RLock()
	defer t.mu.RUnlock()

	v0 := t.values[cell][b0]
	v1 := t.values[cell][b1]
	return (1-u)*v0 + u*v1
}

// Add implements Writer, distributing delta across the two adjacent
// buckets weighted by (1-u) and u (spec.md §4.4).
func (t *TimeIndexed) Add(cell string, ts int64, delta float64) {
	b0 := bucket(ts, t.loc.loc)
	b1 := bucket(ts+int64(secondsPerHour), t.loc.loc)
	u := blendWeight(ts)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.values[cell] == nil {
		t.values[cell] = make(map[int]float64, 2)
	}
	t.values[cell][b0] += (1 - u) * delta
	t.values[cell][b1] += u * delta
}

// Seed overwrites the value stored for (cell, bucket), used when loading
// a time-indexed init_values.csv (grid_id, bucket, value rows).
func (t *TimeIndexed) Seed(cell string, bucketIdx int, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.values[cell] == nil {
		t.values[cell] = make(map[int]float64, 1)
	}
	t.values[cell][bucketIdx] = value
}

// AllFinite reports whether every stored value is finite.
func (t *TimeIndexed) AllFinite() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, byBucket := range t.values {
		for _, v := range byBucket {
			if isNonFinite(v) {
				return false
			}
		}
	}
	return true
}
