// Package laplace implements the cartesian-Taylor expansion engine for
// the Laplace potential K(t,s) = 1/|s-t| to a fixed truncation order P:
// the monomial index, the multipole/local coefficient vectors, the
// power and derivative builders, and the six shift operators (P2M,
// M2M, M2L, M2P, L2L, L2P) plus direct evaluation.
package laplace

// An Alpha is a three-axis exponent triple (nx, ny, nz), the multi-index
// used throughout the package to label a monomial x^nx y^ny z^nz or the
// corresponding partial derivative.
type Alpha struct {
	X, Y, Z int
}

// Degree returns nx+ny+nz.
func (a Alpha) Degree() int { return a.X + a.Y + a.Z }

// Add returns the componentwise sum of a and b.
func (a Alpha) Add(b Alpha) Alpha {
	return Alpha{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Index maps a multi-index (nx, ny, nz) onto its slot in a degree-graded
// colexicographic coefficient vector:
//
//	n = nx+ny+nz, m = ny+nz
//	I(nx,ny,nz) = n(n+1)(n+2)/6 + m(m+1)/2 + nz
//
// Slots of degree d occupy a contiguous block starting at d(d+1)(d+2)/6;
// within that block, nx decreases and (ny,nz) walk a triangle as ny+nz
// increases then nz increases, giving the ordering (0,0,0),
// (1,0,0),(0,1,0),(0,0,1), (2,0,0),(1,1,0),(1,0,1),(0,2,0),... used
// by the power and derivative builders.
func Index(nx, ny, nz int) int {
	n := nx + ny + nz
	m := ny + nz
	return n*(n+1)*(n+2)/6 + m*(m+1)/2 + nz
}

// IndexOf is Index applied to an Alpha.
func IndexOf(a Alpha) int { return Index(a.X, a.Y, a.Z) }

// Weight returns nx!·ny!·nz!, the factorial weight attached to the
// multi-index α by the Taylor-coefficient convention C[I(α)] = d^α/α!.
func Weight(nx, ny, nz int) int {
	return factorial(nx) * factorial(ny) * factorial(nz)
}

// WeightOf is Weight applied to an Alpha.
func WeightOf(a Alpha) int { return Weight(a.X, a.Y, a.Z) }

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// MTerm returns the length of a multipole vector truncated at order P:
// the number of multi-indices of degree 0..P-1, P(P+1)(P+2)/6.
func MTerm(p int) int { return p * (p + 1) * (p + 2) / 6 }

// LTerm returns the length of a local vector truncated at order P: the
// number of multi-indices of degree 0..P, (P+1)(P+2)(P+3)/6.
func LTerm(p int) int { return (p + 1) * (p + 2) * (p + 3) / 6 }

// Alphas returns every multi-index of degree 0..maxDegree, in ascending
// Index order (so Alphas(d)[Index(a)] reconstructs a). Degree blocks are
// emitted low-to-high, and within a block (nx,ny,nz) are emitted exactly
// in the order Index assigns them slots — the order the power and
// derivative builders rely on, since computing a degree-n coefficient
// only ever reads degree-(n-1) (or lower) coefficients that this order
// guarantees are already filled in.
func Alphas(maxDegree int) []Alpha {
	out := make([]Alpha, 0, LTerm(maxDegree))
	for d := 0; d <= maxDegree; d++ {
		for m := 0; m <= d; m++ {
			nx := d - m
			for nz := 0; nz <= m; nz++ {
				ny := m - nz
				out = append(out, Alpha{nx, ny, nz})
			}
		}
	}
	return out
}
