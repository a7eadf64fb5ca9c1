package dispatch

import (
	"math/rand"

	"github.com/fleetcore/dispatchcore/valuetable"
)

// variant resolves, once per Dispatch call, which value-table views back
// this tick's scoring/matching, TD bootstrap target and TD writes. The
// shared dispatcher core (score.go, match.go, updates.go) is written
// entirely against these three views, so Sarsa and Double-Q share 80% of
// their logic exactly as spec.md §9's Design Notes prescribe.
type variant interface {
	// resolve returns:
	//   joint   - read used for candidate scoring and matching (spec.md §4.5.2).
	//   student - read/write target for TD updates (spec.md §4.5.4/§4.5.5).
	//   teacher - read-only source for TD bootstrap targets.
	resolve() (joint, student valuetable.ReadWriter, teacher valuetable.Reader)
}

// sarsaVariant is the on-policy TD(0) variant: a single shared table plays
// all three roles (spec.md §4.5.4).
type sarsaVariant struct {
	table valuetable.ReadWriter
}

func (s *sarsaVariant) resolve() (joint, student valuetable.ReadWriter, teacher valuetable.Reader) {
	return s.table, s.table, s.table
}

// doubleQVariant is the Double-Q variant (spec.md §4.5.5, §3): two
// disjoint tables, one designated student (written) and one teacher
// (bootstrap target only) by an independent fair-coin flip each tick. The
// joint reader used for scoring/matching always sums both tables
// regardless of which side is student this tick.
type doubleQVariant struct {
	pair *valuetable.Pair
	rng  *rand.Rand
}

func newDoubleQVariant(pair *valuetable.Pair, seed int64) *doubleQVariant {
	return &doubleQVariant{pair: pair, rng: rand.New(rand.NewSource(seed))}
}

// jointReadWriter adapts Pair.JointRead to the valuetable.ReadWriter shape
// the shared dispatcher core expects for its "joint" view; Add on this
// view is never called (matching/scoring only reads it), but the type
// must satisfy ReadWriter since resolve()'s signature is shared with
// sarsaVariant.
type jointReadWriter struct {
	pair *valuetable.Pair
}

func (j jointReadWriter) Get(cell string, ts int64) float64 { return j.pair.JointRead(cell, ts) }
func (j jointReadWriter) Add(cell string, ts int64, delta float64) {
	panic("dispatch: joint view is read-only; TD writes must target the student table")
}

func (d *doubleQVariant) resolve() (joint, student valuetable.ReadWriter, teacher valuetable.Reader) {
	aIsStudent := d.rng.Float64() < 0.5
	student, teacher = d.pair.Roles(aIsStudent)
	return jointReadWriter{pair: d.pair}, student, teacher
}
