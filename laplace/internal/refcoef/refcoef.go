// Package refcoef holds hand-specialized getCoef variants for
// truncation orders P=1..4, transcribed from the commented-out
// per-order specializations in the original template source. It has
// no sumM2L (M2L convolution) specializations. The getCoef variants
// exist purely as an independent cross-check against the generic,
// table-driven laplace.buildDerivative path — laplace.Kernel never
// calls into this package at runtime.
package refcoef

import "github.com/pmansfield/lapfmm/geom"

// axisDeriv returns the degree-n raw chain-recursion contribution of a
// single axis: far is the axis's already-computed (alpha - e_axis)
// value, near is (alpha - 2*e_axis) (only meaningful when the axis's
// own count is >= 2).
func axisDeriv(n int, dAxis, far, near float64, hasNear bool) float64 {
	coefFar := float64(1 - 2*n)
	s := coefFar * dAxis * far
	if hasNear {
		s += float64(1-n) * near
	}
	return s
}

// index mirrors laplace.Index without importing the package under
// test, so this cross-check stays independent of it.
func index(nx, ny, nz int) int {
	n := nx + ny + nz
	m := ny + nz
	return n*(n+1)*(n+2)/6 + m*(m+1)/2 + nz
}

func weight(nx, ny, nz int) float64 {
	fact := func(n int) float64 {
		f := 1.0
		for i := 2; i <= n; i++ {
			f *= float64(i)
		}
		return f
	}
	return fact(nx) * fact(ny) * fact(nz)
}

// GetCoef computes the derivative-builder table for translation d at
// order p, for p in 1..4. It panics for any other p.
func GetCoef(p int, d geom.Point) []float64 {
	switch p {
	case 1:
		return getCoef1(d)
	case 2:
		return getCoef2(d)
	case 3:
		return getCoef3(d)
	case 4:
		return getCoef4(d)
	default:
		panic("refcoef: GetCoef only specializes P=1..4")
	}
}

func getCoef1(d geom.Point) []float64 {
	return getCoef1AsDegree(d, 1)
}

func getCoef2(d geom.Point) []float64 {
	c := getCoef1AsDegree(d, 2)
	raw := rawFrom(c, 2)
	fillDegree2Raw(d, raw)
	applyScale(c, raw, 2)
	return c
}

func getCoef3(d geom.Point) []float64 {
	c := getCoef1AsDegree(d, 3)
	raw := rawFrom(c, 3)
	fillDegree2Raw(d, raw)
	fillDegree3Raw(d, raw)
	applyScale(c, raw, 3)
	return c
}

func getCoef4(d geom.Point) []float64 {
	c := getCoef1AsDegree(d, 4)
	raw := rawFrom(c, 4)
	fillDegree2Raw(d, raw)
	fillDegree3Raw(d, raw)
	invR2 := 1 / d.NormSq()

	type pureSpec struct{ nx, ny, nz, axis int }
	for _, s := range []pureSpec{{4, 0, 0, 0}, {0, 4, 0, 1}, {0, 0, 4, 2}} {
		n1 := downOne(s.nx, s.ny, s.nz, s.axis)
		n2 := downTwo(s.nx, s.ny, s.nz, s.axis)
		raw[index(s.nx, s.ny, s.nz)] = axisDeriv(4, d[s.axis], raw[index3(n1)], raw[index3(n2)], true) / 4 * invR2
	}
	type threeOneSpec struct{ nx, ny, nz, major, minor int }
	for _, s := range []threeOneSpec{
		{3, 1, 0, 0, 1}, {3, 0, 1, 0, 2}, {1, 3, 0, 1, 0}, {0, 3, 1, 1, 2}, {1, 0, 3, 2, 0}, {0, 1, 3, 2, 1},
	} {
		majorMinus1 := downOne(s.nx, s.ny, s.nz, s.major)
		majorMinus2 := downTwo(s.nx, s.ny, s.nz, s.major)
		minorMinus1 := downOne(s.nx, s.ny, s.nz, s.minor)
		termMajor := axisDeriv(4, d[s.major], raw[index3(majorMinus1)], raw[index3(majorMinus2)], true)
		termMinor := axisDeriv(4, d[s.minor], raw[index3(minorMinus1)], 0, false)
		raw[index(s.nx, s.ny, s.nz)] = (termMajor + termMinor) / 4 * invR2
	}
	type twoTwoSpec struct{ nx, ny, nz, a, b int }
	for _, s := range []twoTwoSpec{{2, 2, 0, 0, 1}, {2, 0, 2, 0, 2}, {0, 2, 2, 1, 2}} {
		aMinus1 := downOne(s.nx, s.ny, s.nz, s.a)
		aMinus2 := downTwo(s.nx, s.ny, s.nz, s.a)
		bMinus1 := downOne(s.nx, s.ny, s.nz, s.b)
		bMinus2 := downTwo(s.nx, s.ny, s.nz, s.b)
		termA := axisDeriv(4, d[s.a], raw[index3(aMinus1)], raw[index3(aMinus2)], true)
		termB := axisDeriv(4, d[s.b], raw[index3(bMinus1)], raw[index3(bMinus2)], true)
		raw[index(s.nx, s.ny, s.nz)] = (termA + termB) / 4 * invR2
	}
	type twoOneOneSpec struct{ nx, ny, nz, major, minorA, minorB int }
	for _, s := range []twoOneOneSpec{{2, 1, 1, 0, 1, 2}, {1, 2, 1, 1, 0, 2}, {1, 1, 2, 2, 0, 1}} {
		majorMinus1 := downOne(s.nx, s.ny, s.nz, s.major)
		majorMinus2 := downTwo(s.nx, s.ny, s.nz, s.major)
		minorAMinus1 := downOne(s.nx, s.ny, s.nz, s.minorA)
		minorBMinus1 := downOne(s.nx, s.ny, s.nz, s.minorB)
		termMajor := axisDeriv(4, d[s.major], raw[index3(majorMinus1)], raw[index3(majorMinus2)], true)
		termA := axisDeriv(4, d[s.minorA], raw[index3(minorAMinus1)], 0, false)
		termB := axisDeriv(4, d[s.minorB], raw[index3(minorBMinus1)], 0, false)
		raw[index(s.nx, s.ny, s.nz)] = (termMajor + termA + termB) / 4 * invR2
	}

	applyScale(c, raw, 4)
	return c
}

// --- shared plumbing ---

type triple struct{ nx, ny, nz int }

func downOne(nx, ny, nz, axis int) triple {
	t := triple{nx, ny, nz}
	switch axis {
	case 0:
		t.nx--
	case 1:
		t.ny--
	case 2:
		t.nz--
	}
	return t
}

func downTwo(nx, ny, nz, axis int) triple {
	t := triple{nx, ny, nz}
	switch axis {
	case 0:
		t.nx -= 2
	case 1:
		t.ny -= 2
	case 2:
		t.nz -= 2
	}
	return t
}

func index3(t triple) int { return index(t.nx, t.ny, t.nz) }

// getCoef1AsDegree builds the length-LTerm(p) output vector and fills
// in degree 0 and degree 1 exactly as getCoef1 does.
func getCoef1AsDegree(d geom.Point, p int) []float64 {
	n := (p + 1) * (p + 2) * (p + 3) / 6
	c := make([]float64, n)
	invR := 1 / d.Norm()
	c[0] = invR
	invR2 := 1 / d.NormSq()
	raw0 := invR
	c[index(1, 0, 0)] = axisDeriv(1, d[0], raw0, 0, false) * invR2
	c[index(0, 1, 0)] = axisDeriv(1, d[1], raw0, 0, false) * invR2
	c[index(0, 0, 1)] = axisDeriv(1, d[2], raw0, 0, false) * invR2
	return c
}

// rawFrom re-derives the unscaled (pre factorial) degree 0 and 1
// values from c (which applyScale leaves unchanged, since weight==1 there)
// into a same-length raw buffer used by the higher-degree formulas.
func rawFrom(c []float64, maxDegree int) []float64 {
	raw := make([]float64, len(c))
	raw[0] = c[0]
	raw[index(1, 0, 0)] = c[index(1, 0, 0)]
	raw[index(0, 1, 0)] = c[index(0, 1, 0)]
	raw[index(0, 0, 1)] = c[index(0, 0, 1)]
	return raw
}

func fillDegree2Raw(d geom.Point, raw []float64) {
	invR2 := 1 / d.NormSq()
	type pureSpec struct{ nx, ny, nz, axis int }
	for _, s := range []pureSpec{{2, 0, 0, 0}, {0, 2, 0, 1}, {0, 0, 2, 2}} {
		n1 := downOne(s.nx, s.ny, s.nz, s.axis)
		n2 := downTwo(s.nx, s.ny, s.nz, s.axis)
		raw[index(s.nx, s.ny, s.nz)] = axisDeriv(2, d[s.axis], raw[index3(n1)], raw[index3(n2)], true) / 2 * invR2
	}
	type mixSpec struct{ nx, ny, nz, a, b int }
	for _, s := range []mixSpec{{1, 1, 0, 0, 1}, {1, 0, 1, 0, 2}, {0, 1, 1, 1, 2}} {
		na := downOne(s.nx, s.ny, s.nz, s.a)
		nb := downOne(s.nx, s.ny, s.nz, s.b)
		termA := axisDeriv(2, d[s.a], raw[index3(na)], 0, false)
		termB := axisDeriv(2, d[s.b], raw[index3(nb)], 0, false)
		raw[index(s.nx, s.ny, s.nz)] = (termA + termB) / 2 * invR2
	}
}

func fillDegree3Raw(d geom.Point, raw []float64) {
	invR2 := 1 / d.NormSq()
	type pureSpec struct{ nx, ny, nz, axis int }
	for _, s := range []pureSpec{{3, 0, 0, 0}, {0, 3, 0, 1}, {0, 0, 3, 2}} {
		n1 := downOne(s.nx, s.ny, s.nz, s.axis)
		n2 := downTwo(s.nx, s.ny, s.nz, s.axis)
		raw[index(s.nx, s.ny, s.nz)] = axisDeriv(3, d[s.axis], raw[index3(n1)], raw[index3(n2)], true) / 3 * invR2
	}
	type twoOneSpec struct{ nx, ny, nz, major, minor int }
	for _, s := range []twoOneSpec{
		{2, 1, 0, 0, 1}, {2, 0, 1, 0, 2}, {1, 2, 0, 1, 0}, {0, 2, 1, 1, 2}, {1, 0, 2, 2, 0}, {0, 1, 2, 2, 1},
	} {
		majorMinus1 := downOne(s.nx, s.ny, s.nz, s.major)
		majorMinus2 := downTwo(s.nx, s.ny, s.nz, s.major)
		minorMinus1 := downOne(s.nx, s.ny, s.nz, s.minor)
		termMajor := axisDeriv(3, d[s.major], raw[index3(majorMinus1)], raw[index3(majorMinus2)], true)
		termMinor := axisDeriv(3, d[s.minor], raw[index3(minorMinus1)], 0, false)
		raw[index(s.nx, s.ny, s.nz)] = (termMajor + termMinor) / 3 * invR2
	}
	n111x := downOne(1, 1, 1, 0)
	t0 := axisDeriv(3, d[0], raw[index3(n111x)], 0, false)
	n111y := downOne(1, 1, 1, 1)
	t1 := axisDeriv(3, d[1], raw[index3(n111y)], 0, false)
	n111z := downOne(1, 1, 1, 2)
	t2 := axisDeriv(3, d[2], raw[index3(n111z)], 0, false)
	raw[index(1, 1, 1)] = (t0 + t1 + t2) / 3 * invR2
}

// applyScale multiplies every raw degree-2..maxDegree entry by its
// factorial weight and writes the result into c (degrees 0,1 are
// already final in c and untouched).
func applyScale(c, raw []float64, maxDegree int) {
	for deg := 2; deg <= maxDegree; deg++ {
		for m := 0; m <= deg; m++ {
			nx := deg - m
			for nz := 0; nz <= m; nz++ {
				ny := m - nz
				idx := index(nx, ny, nz)
				c[idx] = raw[idx] * weight(nx, ny, nz)
			}
		}
	}
}
