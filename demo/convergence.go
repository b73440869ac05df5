package demo

import (
	"math"

	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace"
)

// ConvergencePoint is one row of a P-sweep: the truncation order and
// how far the tree's far-field evaluation at target strays from the
// direct pairwise sum at that order.
type ConvergencePoint struct {
	P                          int
	PotentialError, ForceError float64
}

// Sweep builds a fresh two-level tree at every order P=1..maxP from
// the same sources and box, evaluates target through the far-field
// path (M2P off the root multipole) and through direct P2P, and
// records how the two disagree. It is the runnable form of spec.md's
// S2 round-trip property: the error should shrink as P grows for any
// target well outside the box.
func Sweep(maxP int, sources []Source, boxCenter geom.Point, boxHalfWidth float64, target geom.Point) []ConvergencePoint {
	points := make([]ConvergencePoint, 0, maxP)
	for p := 1; p <= maxP; p++ {
		k := laplace.New(p)
		tree := BuildTwoLevel(k, boxCenter, boxHalfWidth, sources)
		approx := tree.EvaluateFar(target)
		direct := tree.EvaluateDirect(target)

		potErr := math.Abs(approx[0] - direct[0])
		var forceErrSq float64
		for i := 1; i < 4; i++ {
			diff := approx[i] - direct[i]
			forceErrSq += diff * diff
		}
		points = append(points, ConvergencePoint{
			P:              p,
			PotentialError: potErr,
			ForceError:     math.Sqrt(forceErrSq),
		})
	}
	return points
}
