package valuetable

// Pair composes two same-shaped ReadWriters (A, B) into the Double-Q
// value-table structure (spec.md §3, "Double-Q variant"): on any tick one
// table is the student (written) and the other the teacher (read-only for
// the bootstrap target); the joint reader used for scoring and matching
// always returns A + B.
//
// Pair itself does not flip the coin: the Dispatcher decides which side is
// student for a given tick (it owns the seedable PRNG, per spec.md §5) and
// calls Roles to get the two sides in the right order.
type Pair struct {
	A, B ReadWriter
}

// NewPair wraps two ReadWriters of identical shape (both *Table or both
// *TimeIndexed) into a Double-Q Pair.
func NewPair(a, b ReadWriter) *Pair {
	return &Pair{A: a, B: b}
}

// JointRead returns V_A[s] + V_B[s], the joint estimate used for scoring
// and matching (spec.md §3: "The joint reader returns V_A[s] + V_B[s]").
func (p *Pair) JointRead(cell string, ts int64) float64 {
	return p.A.Get(cell, ts) + p.B.Get(cell, ts)
}

// Roles returns (student, teacher) for the tick: when aIsStudent is true,
// A is written and B supplies the bootstrap target; otherwise the reverse
// (spec.md §4.5.5).
func (p *Pair) Roles(aIsStudent bool) (student, teacher ReadWriter) {
	if aIsStudent {
		return p.A, p.B
	}
	return p.B, p.A
}

// AllFinite reports whether every value in both tables is finite. Only
// *Table and *TimeIndexed implement finiteChecker; Pair delegates to
// whichever concrete type backs it.
func (p *Pair) AllFinite() bool {
	return allFinite(p.A) && allFinite(p.B)
}

type finiteChecker interface {
	AllFinite() bool
}

func allFinite(rw ReadWriter) bool {
	if fc, ok := rw.(finiteChecker); ok {
		return fc.AllFinite()
	}
	return true
}
