package laplace

import (
	"math"
	"testing"

	"github.com/pmansfield/lapfmm/geom"
	"github.com/stretchr/testify/assert"
)

func TestEvalDirect(t *testing.T) {
	source := geom.Pt(1, 2, 2)
	target := geom.Pt(0, 0, 0)
	var r Result
	Eval(&r, 3, source, target)

	d := source.Sub(target)
	wantPotential := 3.0 / d.Norm()
	wantForce := d.Scale(3.0 / (d.Norm() * d.Norm() * d.Norm()))

	assert.InDelta(t, wantPotential, r[0], 1e-12)
	assert.InDelta(t, wantForce[0], r[1], 1e-12)
	assert.InDelta(t, wantForce[1], r[2], 1e-12)
	assert.InDelta(t, wantForce[2], r[3], 1e-12)
}

func TestEvalSelfInteraction(t *testing.T) {
	p := geom.Pt(4, -1, 0.5)
	var r Result
	Eval(&r, 5, p, p)
	assert.Equal(t, Result{}, r, "coincident source and target must leave dst untouched")

	var r2 Result
	near := p.Add(geom.Pt(1e-5, 0, 0))
	Eval(&r2, 5, near, p)
	assert.Equal(t, Result{}, r2, "a pair within the self-interaction guard must leave dst untouched")
}

// TestM2MTwoLevelMatchesDirect builds a multipole around a leaf
// cluster, shifts it up through two parent levels with M2M, then
// evaluates it at a distant target with M2P, and checks the result
// tracks the direct pairwise sum as P grows (S3: translation
// consistency).
func TestM2MTwoLevelMatchesDirect(t *testing.T) {
	type src struct {
		q Charge
		p geom.Point
	}
	sources := []src{
		{1.0, geom.Pt(0.1, 0.05, -0.1)},
		{-0.6, geom.Pt(-0.15, 0.2, 0.05)},
		{2.0, geom.Pt(0.05, -0.1, 0.12)},
	}
	leafCenter := geom.Pt(0, 0, 0)
	midCenter := geom.Pt(0.5, 0.5, 0.5)
	rootCenter := geom.Pt(2, 1, -1)
	target := geom.Pt(40, 30, -25)

	var direct Result
	for _, s := range sources {
		Eval(&direct, s.q, s.p, target)
	}

	prevErr := math.Inf(1)
	for _, p := range []int{3, 5, 7} {
		k := New(p)
		leaf := k.NewMultipole()
		for _, s := range sources {
			k.P2M(leaf, s.q, leafCenter, s.p)
		}
		mid := k.NewMultipole()
		k.M2M(mid, leaf, midCenter.Sub(leafCenter))
		root := k.NewMultipole()
		k.M2M(root, mid, rootCenter.Sub(midCenter))

		var approx Result
		k.M2P(&approx, root, target.Sub(rootCenter))

		err := math.Abs(approx[0] - direct[0])
		assert.Less(t, err, prevErr+1e-12, "potential error should shrink (or stay tiny) as P grows, got %g at P=%d", err, p)
		prevErr = err
	}
	assert.Less(t, prevErr, 1e-6, "potential error at the highest order tested should be small")
}
