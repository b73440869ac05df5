package demo

import (
	"math"
	"testing"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace"
)

// TestConvergencePlot is exploratory, not assertive, matching the
// los/analyze kde_test.go pattern: it plots log|potential error| vs P
// (spec.md's S2 decay curve) so the convergence shape can be eyeballed
// rather than encoded as a hard threshold. TestSweepShrinksWithOrder
// below is the assertive counterpart.
func TestConvergencePlot(t *testing.T) {
	plt.Reset()

	sources := []Source{
		{Pos: geom.Pt(0.1, 0.2, -0.05), Q: laplace.Charge(1)},
		{Pos: geom.Pt(-0.15, 0.05, 0.2), Q: laplace.Charge(-0.6)},
		{Pos: geom.Pt(0.05, -0.1, 0.15), Q: laplace.Charge(2)},
	}
	boxCenter := geom.Pt(0, 0, 0)
	target := geom.Pt(20, -15, 10)

	points := Sweep(8, sources, boxCenter, 0.5, target)
	ps := make([]float64, len(points))
	logErrs := make([]float64, len(points))
	for i, pt := range points {
		ps[i] = float64(pt.P)
		logErrs[i] = math.Log10(math.Max(pt.PotentialError, 1e-300))
	}

	plt.Plot(ps, logErrs, "ok-", plt.LW(2))
	plt.Show()
}

// TestSweepShrinksWithOrder is the assertive half of the convergence
// check: potential error must not grow as P increases, and the
// highest order tested should be accurate to a tight tolerance.
func TestSweepShrinksWithOrder(t *testing.T) {
	sources := []Source{
		{Pos: geom.Pt(0.1, 0.2, -0.05), Q: laplace.Charge(1)},
		{Pos: geom.Pt(-0.15, 0.05, 0.2), Q: laplace.Charge(-0.6)},
		{Pos: geom.Pt(0.05, -0.1, 0.15), Q: laplace.Charge(2)},
	}
	boxCenter := geom.Pt(0, 0, 0)
	target := geom.Pt(20, -15, 10)

	points := Sweep(8, sources, boxCenter, 0.5, target)
	prev := math.Inf(1)
	for _, pt := range points {
		if pt.PotentialError > prev+1e-12 {
			t.Fatalf("potential error grew at P=%d: %g > %g", pt.P, pt.PotentialError, prev)
		}
		prev = pt.PotentialError
	}
	if points[len(points)-1].PotentialError > 1e-6 {
		t.Fatalf("potential error at highest P tested is too large: %g", points[len(points)-1].PotentialError)
	}
}
