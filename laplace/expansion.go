package laplace

// Charge is a point source's strength. K(t,s) = 1/|s-t| scaled by Charge
// gives the potential a single source contributes at a target.
type Charge float64

// Multipole is an outer (source-centered) expansion truncated at order
// P: a slice of length MTerm(P), indexed by Index(nx,ny,nz) for every
// multi-index of degree 0..P-1. Multipole[0] is always the total
// enclosed charge.
type Multipole []float64

// NewMultipole allocates a zeroed multipole vector for order p.
func NewMultipole(p int) Multipole { return make(Multipole, MTerm(p)) }

// Order recovers P from a multipole vector's length by inverting MTerm.
// It panics if the length is not a valid MTerm(P).
func (m Multipole) Order() int { return orderFromLen(len(m), MTerm) }

// AddTo adds m into dst in place (dst += m). The two vectors must have
// equal length.
func (m Multipole) AddTo(dst Multipole) {
	if len(m) != len(dst) {
		panic("laplace: multipole length mismatch in AddTo")
	}
	for i, v := range m {
		dst[i] += v
	}
}

// Local is an inner (target-centered) expansion truncated at order P: a
// slice of length LTerm(P), indexed by Index(nx,ny,nz) for every
// multi-index of degree 0..P.
type Local []float64

// NewLocal allocates a zeroed local vector for order p.
func NewLocal(p int) Local { return make(Local, LTerm(p)) }

// Order recovers P from a local vector's length by inverting LTerm. It
// panics if the length is not a valid LTerm(P).
func (l Local) Order() int { return orderFromLen(len(l), LTerm) }

// AddTo adds l into dst in place (dst += l). The two vectors must have
// equal length.
func (l Local) AddTo(dst Local) {
	if len(l) != len(dst) {
		panic("laplace: local length mismatch in AddTo")
	}
	for i, v := range l {
		dst[i] += v
	}
}

// Result holds a target's accumulated potential and force: Result[0] is
// the potential, Result[1:4] is the force vector (s-t)/|s-t|^3 summed
// over sources, scaled by charge.
type Result [4]float64

// AddTo adds r into dst in place.
func (r Result) AddTo(dst *Result) {
	for i := range r {
		dst[i] += r[i]
	}
}

func orderFromLen(n int, term func(int) int) int {
	for p := 0; p <= 64; p++ {
		if term(p) == n {
			return p
		}
		if term(p) > n {
			break
		}
	}
	panic("laplace: vector length does not correspond to any truncation order")
}
