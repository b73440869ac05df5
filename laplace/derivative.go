package laplace

import (
	"math"

	"github.com/pmansfield/lapfmm/geom"
)

// buildDerivative fills c[I(alpha)] = d^alpha(1/R) for every multi-index
// of degree 0..maxDegree, given the translation vector d (R = |d|).
// c[0] must already hold invR (1/|d|) on entry; invR2 is 1/|d|^2.
//
// Phase A (this function's main loop) computes the raw chain-recursion
// value degree by degree, grounded on Terms<nx,ny,nz>::derivative and
// DerivativeSum/DerivativeTerm in the original template source: for a
// multi-index alpha of total degree n >= 1,
//
//	c[alpha] = (1/n) * invR2 * sum_over_axes(axisTerm)
//
// where, for each axis a with count m = alpha[a] >= 1:
//
//	m == 1:  axisTerm = (1-2n) * d[a] * c[alpha - e_a]
//	m >= 2:  axisTerm = (1-2n) * d[a] * c[alpha - e_a] + (1-n) * c[alpha - 2*e_a]
//
// Phase B (scalePhase) then multiplies every entry by its factorial
// weight, converting the raw chain value into the literal partial
// derivative ∂^alpha(1/R).
func buildDerivative(c []float64, d geom.Point, invR2 float64, maxDegree int) {
	for deg := 1; deg <= maxDegree; deg++ {
		for _, a := range alphasOfDegree(deg) {
			n := deg
			coefFar := float64(1 - 2*n)
			coefNear := float64(1 - n)
			var sum float64
			if a.X >= 1 {
				sum += coefFar * d[0] * c[Index(a.X-1, a.Y, a.Z)]
				if a.X >= 2 {
					sum += coefNear * c[Index(a.X-2, a.Y, a.Z)]
				}
			}
			if a.Y >= 1 {
				sum += coefFar * d[1] * c[Index(a.X, a.Y-1, a.Z)]
				if a.Y >= 2 {
					sum += coefNear * c[Index(a.X, a.Y-2, a.Z)]
				}
			}
			if a.Z >= 1 {
				sum += coefFar * d[2] * c[Index(a.X, a.Y, a.Z-1)]
				if a.Z >= 2 {
					sum += coefNear * c[Index(a.X, a.Y, a.Z-2)]
				}
			}
			c[IndexOf(a)] = sum / float64(n) * invR2
		}
	}
	scalePhase(c, maxDegree)
}

func scalePhase(c []float64, maxDegree int) {
	for deg := 1; deg <= maxDegree; deg++ {
		for _, a := range alphasOfDegree(deg) {
			c[IndexOf(a)] *= float64(WeightOf(a))
		}
	}
}

// alphasOfDegree returns every multi-index of exactly the given total
// degree, in ascending Index order.
func alphasOfDegree(deg int) []Alpha {
	out := make([]Alpha, 0, deg+1)
	for m := 0; m <= deg; m++ {
		nx := deg - m
		for nz := 0; nz <= m; nz++ {
			ny := m - nz
			out = append(out, Alpha{nx, ny, nz})
		}
	}
	return out
}

// invDistance returns (1/|d|, 1/|d|^2), panicking if d is within the
// self-interaction guard distance (see Eval in operators.go) since the
// shift operators are never meant to translate by a near-zero vector.
func invDistance(d geom.Point) (invR, invR2 float64) {
	r2 := d.NormSq()
	if r2 < selfInteractionGuard {
		panic("laplace: translation vector is degenerate (|d|^2 below guard threshold)")
	}
	invR2 = 1 / r2
	invR = math.Sqrt(invR2)
	return invR, invR2
}
