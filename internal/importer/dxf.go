// Package importer loads puzzle pieces from external CAD files.
package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/menace/internal/geom"
	"github.com/piwi3910/menace/internal/model"
)

// ImportResult collects the pieces recovered from a file plus any
// warnings and errors encountered along the way.
type ImportResult struct {
	Pieces   []model.Piece
	Warnings []string
	Errors   []string
}

// segment is a line segment between two 2D points, used for chaining
// disconnected LINE entities into closed outlines.
type segment struct {
	start geom.Point2D
	end   geom.Point2D
}

// chainTolerance is the maximum endpoint gap for two segments to count
// as connected.
const chainTolerance = 0.01

// ImportDXF reads puzzle pieces from a DXF file. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes one
// piece with its outline translated so the bounding box starts at the
// origin.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	ents := drawing.Entities()
	if len(ents) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []geom.Polygon
	var segments []segment

	for _, ent := range ents {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylineToOutline(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToOutline(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: geom.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   geom.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, chained := range chainSegments(segments, chainTolerance) {
		if len(chained) >= 3 {
			outlines = append(outlines, chained)
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	pieceNum := 0
	for _, outline := range outlines {
		pieceNum++
		normalized := normalizeOutline(outline)
		min, max := normalized.BoundingBox()
		width := max.X - min.X
		height := max.Y - min.Y

		if width < chainTolerance || height < chainTolerance {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f mm)", width, height))
			continue
		}

		piece := model.NewPiece(fmt.Sprintf("dxf-%d", pieceNum), normalized)
		if err := piece.Validate(); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped invalid shape %d: %v", pieceNum, err))
			continue
		}
		result.Pieces = append(result.Pieces, piece)
	}

	return result
}

// lwPolylineToOutline converts a DXF LWPOLYLINE entity to an outline.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToOutline(lw *entity.LwPolyline) geom.Polygon {
	var outline geom.Polygon

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := geom.Point2D{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			nextIdx := (i + 1) % len(lw.Vertices)
			next := geom.Point2D{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			// The next vertex is added by the following iteration.
			outline = append(outline, arcPts[:len(arcPts)-1]...)
		} else {
			outline = append(outline, current)
		}
	}

	return outline
}

// bulgeArcPoints generates points along an arc defined by two endpoints
// and a DXF bulge factor. The bulge is the tangent of 1/4 the included
// angle.
func bulgeArcPoints(p1, p2 geom.Point2D, bulge float64, numSegments int) geom.Polygon {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return geom.Polygon{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)

	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	var pts geom.Polygon
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, geom.Point2D{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToOutline approximates a circle as a regular polygon.
func circleToOutline(c *entity.Circle, numSegments int) geom.Polygon {
	outline := make(geom.Polygon, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		outline[i] = geom.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return outline
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []geom.Point2D {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]geom.Point2D, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = geom.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

func pointsToSegments(pts []geom.Point2D) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
func chainSegments(segs []segment, tolerance float64) []geom.Polygon {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []geom.Polygon

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := geom.Polygon{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains form piece outlines.
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	// Largest shapes first for stable piece numbering.
	sort.Slice(outlines, func(i, j int) bool {
		return outlines[i].Area() > outlines[j].Area()
	})

	return outlines
}

func pointsClose(a, b geom.Point2D, tolerance float64) bool {
	return a.Distance(b) <= tolerance
}

// normalizeOutline translates the outline so its bounding box starts at
// the origin, matching how built-in pieces are defined.
func normalizeOutline(o geom.Polygon) geom.Polygon {
	if len(o) == 0 {
		return o
	}
	min, _ := o.BoundingBox()
	return o.Translate(-min.X, -min.Y)
}
