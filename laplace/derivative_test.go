package laplace

import (
	"math"
	"testing"

	"github.com/pmansfield/lapfmm/geom"
	"github.com/stretchr/testify/assert"
)

func invR(p geom.Point) float64 { return 1 / p.Norm() }

// centralDerivative approximates the partial derivative picked out by
// alpha of 1/|p| at p=d via repeated central differences, used as an
// independent oracle for the derivative builder.
func centralDerivative(d geom.Point, a Alpha, h float64) float64 {
	f := invR
	axes := []int{}
	for i := 0; i < a.X; i++ {
		axes = append(axes, 0)
	}
	for i := 0; i < a.Y; i++ {
		axes = append(axes, 1)
	}
	for i := 0; i < a.Z; i++ {
		axes = append(axes, 2)
	}
	return nthCentralDiff(f, d, axes, h)
}

func nthCentralDiff(f func(geom.Point) float64, at geom.Point, axes []int, h float64) float64 {
	if len(axes) == 0 {
		return f(at)
	}
	axis := axes[0]
	rest := axes[1:]
	var bump geom.Point
	bump[axis] = h
	plus := nthCentralDiff(f, at.Add(bump), rest, h)
	minus := nthCentralDiff(f, at.Sub(bump), rest, h)
	return (plus - minus) / (2 * h)
}

func TestDerivativeBuilderMatchesFiniteDifference(t *testing.T) {
	d := geom.Pt(3.1, -1.4, 0.6)
	const maxDegree = 3
	c := make([]float64, LTerm(maxDegree))
	invr2 := 1 / d.NormSq()
	c[0] = 1 / d.Norm()
	buildDerivative(c, d, invr2, maxDegree)

	for _, a := range Alphas(maxDegree) {
		if a.Degree() == 0 {
			continue
		}
		want := centralDerivative(d, a, 2e-3)
		got := c[IndexOf(a)]
		assert.InDelta(t, want, got, math.Max(1e-3, math.Abs(want)*1e-2), "alpha=%v", a)
	}
}

func TestDerivativeBuilderDegreeZeroIsInvR(t *testing.T) {
	d := geom.Pt(2, 2, 1)
	c := make([]float64, LTerm(2))
	invr2 := 1 / d.NormSq()
	c[0] = 1 / d.Norm()
	buildDerivative(c, d, invr2, 2)
	assert.InDelta(t, 1.0/3.0, c[0], 1e-12)
}
