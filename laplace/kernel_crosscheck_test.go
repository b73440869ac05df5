package laplace

import (
	"testing"

	"github.com/pmansfield/lapfmm/geom"
	"github.com/pmansfield/lapfmm/laplace/internal/refcoef"
	"github.com/stretchr/testify/assert"
)

// TestHandSpecializedDerivativeMatchesGeneric resolves the "were the
// P=1..6 specializations ever validated" question left open by the
// commented-out code in the original source: for the P=1..4
// specializations transcribed into laplace/internal/refcoef, this
// checks they agree with the generic, table-driven path to float64
// precision across a battery of displacements.
func TestHandSpecializedDerivativeMatchesGeneric(t *testing.T) {
	displacements := []geom.Point{
		geom.Pt(3.1, -1.4, 0.6),
		geom.Pt(1, 1, 1),
		geom.Pt(-2.2, 5.5, -0.3),
		geom.Pt(10, 0.01, -7),
		geom.Pt(0.4, -0.9, 2.0),
	}
	for p := 1; p <= 4; p++ {
		for _, d := range displacements {
			invR2 := 1 / d.NormSq()
			generic := make([]float64, LTerm(p))
			generic[0] = 1 / d.Norm()
			buildDerivative(generic, d, invR2, p)

			special := refcoef.GetCoef(p, d)

			assert.Equal(t, len(generic), len(special), "P=%d length mismatch", p)
			for i := range generic {
				assert.InDelta(t, generic[i], special[i], 1e-9, "P=%d slot=%d d=%v", p, i, d)
			}
		}
	}
}
