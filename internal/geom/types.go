// Package geom provides the 2D geometric primitives and predicates the
// pose search relies on: rigid transforms, board containment and
// positive-area polygon overlap.
//
// Coordinates follow mathematical graph-paper conventions: x increases to
// the right, y increases up the page. All predicates use floating-point
// arithmetic with a fixed tolerance (Epsilon) so that pieces designed to
// abut exactly edge-to-edge are not reported as overlapping.
package geom

import "math"

// Epsilon is the tolerance used by the orientation and crossing tests.
// Coordinates in this project are millimeters, so anything closer than
// this is treated as coincident.
var Epsilon = 1e-7

// ContainmentSlack is the slack allowed when testing containment against
// the board rectangle. Touching the board edge is allowed.
var ContainmentSlack = 1e-6

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Polygon is a simple closed polygon as a sequence of vertices. The
// polygon is implicitly closed: the last vertex connects back to the
// first. Vertex winding may be either direction but must be consistent.
type Polygon []Point2D

// Translate shifts all vertices by dx, dy.
func (p Polygon) Translate(dx, dy float64) Polygon {
	result := make(Polygon, len(p))
	for i, v := range p {
		result[i] = Point2D{X: v.X + dx, Y: v.Y + dy}
	}
	return result
}

// Rotate rotates all vertices about the origin by theta radians.
func (p Polygon) Rotate(theta float64) Polygon {
	sin, cos := math.Sincos(theta)
	result := make(Polygon, len(p))
	for i, v := range p {
		result[i] = Point2D{
			X: cos*v.X - sin*v.Y,
			Y: sin*v.X + cos*v.Y,
		}
	}
	return result
}

// BoundingBox returns the min and max corners of the polygon.
func (p Polygon) BoundingBox() (min, max Point2D) {
	if len(p) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// Area computes the absolute polygon area using the shoelace formula.
func (p Polygon) Area() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X * p[j].Y
		area -= p[j].X * p[i].Y
	}
	return math.Abs(area) / 2
}

// Centroid computes the average position of the vertices.
func (p Polygon) Centroid() Point2D {
	if len(p) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, v := range p {
		sumX += v.X
		sumY += v.Y
	}
	n := float64(len(p))
	return Point2D{X: sumX / n, Y: sumY / n}
}

// Clone makes an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	result := make(Polygon, len(p))
	copy(result, p)
	return result
}
