package geom

// sampleOffset is how far interior sample points are pushed inward from an
// edge midpoint. Well below any piece feature size, well above float noise.
const sampleOffset = 1e-4

// InRect reports whether the polygon lies entirely within the axis-aligned
// rectangle [0, width] x [0, height]. Touching the rectangle edge is
// allowed. Because the rectangle is convex and polygon edges are straight,
// testing the vertices is sufficient.
func InRect(p Polygon, width, height float64) bool {
	if len(p) < 3 {
		return false
	}
	for _, v := range p {
		if v.X < -ContainmentSlack || v.X > width+ContainmentSlack ||
			v.Y < -ContainmentSlack || v.Y > height+ContainmentSlack {
			return false
		}
	}
	return true
}

// Overlaps reports whether the interiors of two simple polygons intersect
// in a region of positive area. Touching edges or vertices (zero-area
// contact) does not count: puzzle pieces are expected to tile
// edge-to-edge.
//
// Two simple polygons have intersecting interiors exactly when an edge of
// one properly crosses an edge of the other, or a point of one's interior
// lies strictly inside the other. The interior points tested are the
// vertices plus a sample nudged inward from each edge midpoint; the
// samples also catch the degenerate case of coincident outlines, where
// every vertex lies on the other polygon's boundary.
func Overlaps(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	aMin, aMax := a.BoundingBox()
	bMin, bMax := b.BoundingBox()
	if aMin.X >= bMax.X-ContainmentSlack || bMin.X >= aMax.X-ContainmentSlack ||
		aMin.Y >= bMax.Y-ContainmentSlack || bMin.Y >= aMax.Y-ContainmentSlack {
		return false
	}

	for i := range a {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := range b {
			if properCrossing(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}

	for _, v := range a {
		if StrictlyInside(v, b) {
			return true
		}
	}
	for _, v := range b {
		if StrictlyInside(v, a) {
			return true
		}
	}

	for _, s := range interiorSamples(a) {
		if StrictlyInside(s, b) {
			return true
		}
	}
	for _, s := range interiorSamples(b) {
		if StrictlyInside(s, a) {
			return true
		}
	}

	return false
}

// StrictlyInside reports whether the point lies in the open interior of
// the polygon. Points on the boundary (within Epsilon) are not inside.
func StrictlyInside(pt Point2D, p Polygon) bool {
	if len(p) < 3 {
		return false
	}
	if OnBoundary(pt, p) {
		return false
	}

	// Ray casting: count crossings of a ray from pt going right.
	inside := false
	n := len(p)
	for i := 0; i < n; i++ {
		pi := p[i]
		pj := p[(i+1)%n]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// OnBoundary reports whether the point lies within Epsilon of any edge of
// the polygon.
func OnBoundary(pt Point2D, p Polygon) bool {
	n := len(p)
	for i := 0; i < n; i++ {
		if pointSegmentDistance(pt, p[i], p[(i+1)%n]) <= Epsilon {
			return true
		}
	}
	return false
}

// properCrossing reports whether segments ab and cd intersect at a point
// interior to both. Shared endpoints, touching, and collinear overlap are
// not proper crossings: those are zero-area contacts.
func properCrossing(a, b, c, d Point2D) bool {
	// Orientation values scale with the segment length times the distance
	// of the third point from the line, so the zero threshold scales with
	// the segment length to keep Epsilon a distance tolerance.
	tolCD := c.Distance(d) * Epsilon
	tolAB := a.Distance(b) * Epsilon

	d1 := orientation(c, d, a)
	d2 := orientation(c, d, b)
	d3 := orientation(a, b, c)
	d4 := orientation(a, b, d)

	abSplit := (d1 > tolCD && d2 < -tolCD) || (d1 < -tolCD && d2 > tolCD)
	cdSplit := (d3 > tolAB && d4 < -tolAB) || (d3 < -tolAB && d4 > tolAB)
	return abSplit && cdSplit
}

// orientation returns the cross product of vectors ab and ac: positive if
// c lies to the left of the directed line a->b.
func orientation(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// pointSegmentDistance returns the distance from pt to segment ab.
func pointSegmentDistance(pt, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return pt.Distance(a)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.Distance(Point2D{X: a.X + t*dx, Y: a.Y + t*dy})
}

// interiorSamples returns one point per edge, nudged inward from the edge
// midpoint along the interior-facing normal.
func interiorSamples(p Polygon) []Point2D {
	n := len(p)
	samples := make([]Point2D, 0, n)

	// Signed shoelace area decides which side of an edge the interior is on.
	var signed float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		signed += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	side := 1.0 // counter-clockwise: interior is left of each edge
	if signed < 0 {
		side = -1.0
	}

	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		length := a.Distance(b)
		if length <= Epsilon {
			continue
		}
		// Left normal of a->b, flipped for clockwise polygons.
		nx := -(b.Y - a.Y) / length * side
		ny := (b.X - a.X) / length * side
		samples = append(samples, Point2D{
			X: (a.X+b.X)/2 + nx*sampleOffset,
			Y: (a.Y+b.Y)/2 + ny*sampleOffset,
		})
	}
	return samples
}
