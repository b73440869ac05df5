/*Package geom contains the three-dimensional vector type shared by the
Laplace kernel and the box dispatcher that drives it. Axes are indexed
in the fixed order x=0, y=1, z=2.
*/
package geom

import "math"

// Point is an ordered triple of real numbers. It is used for sources,
// targets, box centers, and the translation vectors passed to the
// kernel's shift operators.
type Point [3]float64

// Pt builds a Point from its three components.
func Pt(x, y, z float64) Point { return Point{x, y, z} }

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Scale returns p scaled by c.
func (p Point) Scale(c float64) Point {
	return Point{p[0] * c, p[1] * c, p[2] * c}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p[0]*q[0] + p[1]*q[1] + p[2]*q[2]
}

// NormSq returns |p|^2.
func (p Point) NormSq() float64 { return p.Dot(p) }

// Norm returns |p|.
func (p Point) Norm() float64 { return math.Sqrt(p.NormSq()) }
