package laplace

import "github.com/pmansfield/lapfmm/geom"

// buildPower fills C[I(nx,ny,nz)] = d^(nx,ny,nz)/(nx! ny! nz!) for every
// multi-index of degree 1..maxDegree, given C[0] already holds the
// degree-0 value (normally 1). The recurrence ascends by total degree,
// applying the z, then y, then x step depending on which count is still
// nonzero — the same order Terms<nx,ny,nz>::power walks in the original
// template recursion:
//
//	C[I(nx,ny,nz)]   = C[I(nx,ny,nz-1)] * d.z / nz   (nz >= 1)
//	C[I(nx,ny,0)]    = C[I(nx,ny-1,0)] * d.y / ny    (nz == 0, ny >= 1)
//	C[I(nx,0,0)]     = C[I(nx-1,0,0)] * d.x / nx     (ny == nz == 0, nx >= 1)
func buildPower(c []float64, d geom.Point, maxDegree int) {
	for deg := 1; deg <= maxDegree; deg++ {
		for m := 0; m <= deg; m++ {
			nx := deg - m
			for nz := 0; nz <= m; nz++ {
				ny := m - nz
				idx := Index(nx, ny, nz)
				switch {
				case nz >= 1:
					c[idx] = c[Index(nx, ny, nz-1)] * d[2] / float64(nz)
				case ny >= 1:
					c[idx] = c[Index(nx, ny-1, 0)] * d[1] / float64(ny)
				default:
					c[idx] = c[Index(nx-1, 0, 0)] * d[0] / float64(nx)
				}
			}
		}
	}
}
