package laplace

import "github.com/pmansfield/lapfmm/geom"

// selfInteractionGuard is the squared-distance threshold below which a
// direct evaluation is treated as a self-interaction and skipped,
// rather than dividing by a near-zero distance.
const selfInteractionGuard = 1e-8

// P2M accumulates a single source's contribution into a multipole
// expansion centered at center: dst[α] += q * (center-source)^α/α!,
// for every α of degree 0..Order(dst)-1. translation points
// source -> target per the package-wide convention, i.e. d = center -
// source.
func P2M(dst Multipole, q Charge, center, source geom.Point) {
	p := dst.Order()
	d := center.Sub(source)
	c := make([]float64, MTerm(p))
	c[0] = 1
	buildPower(c, d, p-1)
	for i, cv := range c {
		dst[i] += float64(q) * cv
	}
}

// M2M shifts a child multipole expansion up to its parent's center:
// dst[α] += Σ_{β, 0<=β<=α} C[α-β]·src[β], where C is the power-builder
// table of translation = parentCenter - childCenter. dst and src must
// share the same truncation order.
func M2M(dst, src Multipole, translation geom.Point) {
	p := dst.Order()
	if src.Order() != p {
		panic("laplace: M2M requires equal-order multipoles")
	}
	c := make([]float64, MTerm(p))
	c[0] = 1
	buildPower(c, translation, p-1)
	for _, alpha := range Alphas(p - 1) {
		var sum float64
		for bx := 0; bx <= alpha.X; bx++ {
			for by := 0; by <= alpha.Y; by++ {
				for bz := 0; bz <= alpha.Z; bz++ {
					beta := Alpha{bx, by, bz}
					gamma := Alpha{alpha.X - bx, alpha.Y - by, alpha.Z - bz}
					sum += c[IndexOf(gamma)] * src[IndexOf(beta)]
				}
			}
		}
		dst[IndexOf(alpha)] += sum
	}
}

// M2L translates a multipole expansion into a local expansion about a
// distant center: dst[α] += Σ_β src[β]·D[α+β], for every α of degree
// 0..Order(dst) and every β of degree 0..Order(src)-1 such that
// |α+β| <= Order(dst). D is the derivative-builder table of
// translation = targetCenter - sourceCenter.
func M2L(dst Local, src Multipole, translation geom.Point) {
	p := dst.Order()
	mp := src.Order()
	invR, invR2 := invDistance(translation)
	c := NewLocal(p)
	c[0] = invR
	buildDerivative(c, translation, invR2, p)
	for _, alpha := range Alphas(p) {
		maxBetaDeg := mp - 1
		if budget := p - alpha.Degree(); budget < maxBetaDeg {
			maxBetaDeg = budget
		}
		if maxBetaDeg < 0 {
			continue
		}
		var sum float64
		for _, beta := range Alphas(maxBetaDeg) {
			sum += src[IndexOf(beta)] * c[IndexOf(alpha.Add(beta))]
		}
		dst[IndexOf(alpha)] += sum
	}
}

// M2P evaluates a multipole expansion directly at a single target,
// accumulating potential and force into dst. translation = target -
// sourceCenter.
func M2P(dst *Result, src Multipole, translation geom.Point) {
	mp := src.Order()
	invR, invR2 := invDistance(translation)
	c := NewLocal(mp)
	c[0] = invR
	buildDerivative(c, translation, invR2, mp)
	for _, beta := range Alphas(mp - 1) {
		mv := src[IndexOf(beta)]
		dst[0] += mv * c[IndexOf(beta)]
		dst[1] += mv * c[IndexOf(beta.Add(Alpha{1, 0, 0}))]
		dst[2] += mv * c[IndexOf(beta.Add(Alpha{0, 1, 0}))]
		dst[3] += mv * c[IndexOf(beta.Add(Alpha{0, 0, 1}))]
	}
}

// L2L shifts a parent local expansion down to a child's center:
// dst[α] += Σ_β src[α+β]·C[β], for β of degree 1..Order(dst)-|α|, plus
// the direct copy dst[α] += src[α] (the β=0 term). C is the
// power-builder table of translation = childCenter - parentCenter.
func L2L(dst, src Local, translation geom.Point) {
	p := dst.Order()
	if src.Order() != p {
		panic("laplace: L2L requires equal-order locals")
	}
	c := make([]float64, LTerm(p))
	c[0] = 1
	buildPower(c, translation, p)
	for _, alpha := range Alphas(p) {
		maxBetaDeg := p - alpha.Degree()
		var sum float64
		for _, beta := range Alphas(maxBetaDeg) {
			sum += c[IndexOf(beta)] * src[IndexOf(alpha.Add(beta))]
		}
		dst[IndexOf(alpha)] += sum
	}
}

// L2P evaluates a local expansion at a single target, accumulating
// potential and force into dst. translation = target - center.
func L2P(dst *Result, src Local, translation geom.Point) {
	p := src.Order()
	c := make([]float64, LTerm(p))
	c[0] = 1
	buildPower(c, translation, p)
	for _, alpha := range Alphas(p) {
		dst[0] += src[IndexOf(alpha)] * c[IndexOf(alpha)]
	}
	for _, gamma := range Alphas(p - 1) {
		cv := c[IndexOf(gamma)]
		dst[1] += src[IndexOf(gamma.Add(Alpha{1, 0, 0}))] * cv
		dst[2] += src[IndexOf(gamma.Add(Alpha{0, 1, 0}))] * cv
		dst[3] += src[IndexOf(gamma.Add(Alpha{0, 0, 1}))] * cv
	}
}

// Eval accumulates the direct P2P interaction of a single source on a
// single target into dst: potential q/|s-t|, force q(s-t)/|s-t|^3. If
// the squared distance between source and target is below
// selfInteractionGuard, Eval treats the pair as a self-interaction and
// leaves dst unchanged.
func Eval(dst *Result, q Charge, source, target geom.Point) {
	d := source.Sub(target)
	r2 := d.NormSq()
	if r2 < selfInteractionGuard {
		return
	}
	r := d.Norm()
	invr := 1 / r
	invr3 := invr * invr * invr
	dst[0] += float64(q) * invr
	f := d.Scale(float64(q) * invr3)
	dst[1] += f[0]
	dst[2] += f[1]
	dst[3] += f[2]
}
