// Package export provides functionality for exporting solved boards to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/menace/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors mirrors the color scheme used by the board viewer widget.
var pieceColors = []pieceColor{
	{R: 244, G: 67, B: 54},  // red
	{R: 33, G: 150, B: 243}, // blue
	{R: 76, G: 175, B: 80},  // green
	{R: 255, G: 235, B: 59}, // yellow
	{R: 156, G: 39, B: 176}, // purple
	{R: 255, G: 152, B: 0},  // orange
	{R: 0, G: 188, B: 212},  // cyan
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 30.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders a solved board to a single-page PDF: the board
// rectangle with every placed piece drawn as a filled polygon, plus a
// legend listing each piece's pose.
func ExportPDF(path string, sol model.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("no placed pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.2f x %.2f mm)", sol.Puzzle, sol.Width, sol.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Covered: %.0f mm2 | Board: %.0f mm2 | Coverage: %.1f%%",
		len(sol.Placed), sol.CoveredArea(), sol.Width*sol.Height, sol.Coverage()*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the board into the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/sol.Width, drawHeight/sol.Height)

	canvasW := sol.Width * scale
	canvasH := sol.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board background
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed pieces. Board coordinates have y up; PDF y grows downward,
	// so y is flipped against the board height.
	for i, placement := range sol.Placed {
		col := pieceColors[i%len(pieceColors)]
		points := make([]fpdf.PointType, len(placement.Polygon))
		for j, v := range placement.Polygon {
			points[j] = fpdf.PointType{
				X: offsetX + v.X*scale,
				Y: offsetY + (sol.Height-v.Y)*scale,
			}
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Polygon(points, "FD")
	}

	renderLegend(pdf, sol, offsetY+canvasH+8)

	return pdf.OutputFileAndClose(path)
}

// renderLegend lists the placed pieces with their poses below the diagram.
func renderLegend(pdf *fpdf.Fpdf, sol model.Solution, top float64) {
	pdf.SetFont("Helvetica", "", 8)
	y := top
	for i, placement := range sol.Placed {
		col := pieceColors[i%len(pieceColors)]

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(marginLeft, y, 4, 4, "F")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft+6, y)
		line := fmt.Sprintf("%s  pose %s  area %.0f mm2",
			placement.Piece.Label, placement.Pose.DegString(), placement.Polygon.Area())
		pdf.CellFormat(120, 4, line, "", 0, "L", false, 0, "")
		y += 5
	}
}
