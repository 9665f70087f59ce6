// Package ui contains the fyne widgets of the solution viewer.
package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/menace/internal/model"
)

// Piece colors, cycled for visual distinction.
var pieceColors = []color.NRGBA{
	{R: 244, G: 67, B: 54, A: 255},  // red
	{R: 33, G: 150, B: 243, A: 255}, // blue
	{R: 76, G: 175, B: 80, A: 255},  // green
	{R: 255, G: 235, B: 59, A: 255}, // yellow
	{R: 156, G: 39, B: 176, A: 255}, // purple
	{R: 255, G: 152, B: 0, A: 255},  // orange
	{R: 0, G: 188, B: 212, A: 255},  // cyan
	{R: 121, G: 85, B: 72, A: 255},  // brown
}

// BoardCanvas renders a solved board: the board rectangle with every
// placed piece drawn as a colored outline.
type BoardCanvas struct {
	widget.BaseWidget
	solution  model.Solution
	maxWidth  float32
	maxHeight float32
}

func NewBoardCanvas(sol model.Solution, maxW, maxH float32) *BoardCanvas {
	bc := &BoardCanvas{
		solution:  sol,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoardCanvasRenderer(bc)
}

type boardCanvasRenderer struct {
	bc      *BoardCanvas
	objects []fyne.CanvasObject
}

func newBoardCanvasRenderer(bc *BoardCanvas) *boardCanvasRenderer {
	r := &boardCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *boardCanvasRenderer) scale() float32 {
	sol := r.bc.solution
	scaleX := r.bc.maxWidth / float32(sol.Width)
	scaleY := r.bc.maxHeight / float32(sol.Height)
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *boardCanvasRenderer) rebuild() {
	r.objects = nil

	sol := r.bc.solution
	scale := r.scale()
	canvasW := float32(sol.Width) * scale
	canvasH := float32(sol.Height) * scale

	// Board background
	bg := canvas.NewRectangle(color.NRGBA{R: 235, G: 235, B: 235, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Board border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Placed pieces as outlines. Board coordinates have y up; screen y
	// grows downward, so y is flipped against the board height.
	for i, placement := range sol.Placed {
		col := pieceColors[i%len(pieceColors)]

		n := len(placement.Polygon)
		for j := 0; j < n; j++ {
			a := placement.Polygon[j]
			b := placement.Polygon[(j+1)%n]

			line := canvas.NewLine(col)
			line.StrokeWidth = 3
			line.Position1 = fyne.NewPos(float32(a.X)*scale, (float32(sol.Height)-float32(a.Y))*scale)
			line.Position2 = fyne.NewPos(float32(b.X)*scale, (float32(sol.Height)-float32(b.Y))*scale)
			r.objects = append(r.objects, line)
		}

		c := placement.Polygon.Centroid()
		label := canvas.NewText(placement.Piece.Label, color.Black)
		label.TextSize = 11
		label.Move(fyne.NewPos(float32(c.X)*scale-10, (float32(sol.Height)-float32(c.Y))*scale-6))
		r.objects = append(r.objects, label)
	}
}

func (r *boardCanvasRenderer) Layout(size fyne.Size)        {}
func (r *boardCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *boardCanvasRenderer) Destroy()                     {}
func (r *boardCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardCanvasRenderer) MinSize() fyne.Size {
	sol := r.bc.solution
	scale := r.scale()
	return fyne.NewSize(float32(sol.Width)*scale, float32(sol.Height)*scale)
}

// RenderSolution creates the full viewer content for a solution: header,
// board canvas and per-piece pose list.
func RenderSolution(sol model.Solution) fyne.CanvasObject {
	if len(sol.Placed) == 0 {
		return widget.NewLabel("No placed pieces in this solution.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"%s (%.2f × %.2f) — %d pieces, %.1f%% coverage",
		sol.Puzzle, sol.Width, sol.Height, len(sol.Placed), sol.Coverage()*100,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	board := NewBoardCanvas(sol, 700, 460)

	var poses []fyne.CanvasObject
	for _, placement := range sol.Placed {
		poses = append(poses, widget.NewLabel(fmt.Sprintf(
			"%s  %s", placement.Piece.Label, placement.Pose.DegString(),
		)))
	}

	content := container.NewVBox(
		header,
		board,
		widget.NewSeparator(),
		container.NewVBox(poses...),
	)
	return container.NewScroll(content)
}
