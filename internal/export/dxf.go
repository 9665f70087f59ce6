package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/menace/internal/geom"
	"github.com/piwi3910/menace/internal/model"
)

// ExportDXF writes the solved board as a DXF drawing. The board outline
// goes on a BOARD layer and each placed piece gets its own layer named
// after the piece, with the outline drawn as line entities.
func ExportDXF(path string, sol model.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("no placed pieces to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BOARD", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add board layer: %w", err)
	}
	drawRect(d, sol.Width, sol.Height)

	for i, placement := range sol.Placed {
		name := placement.Piece.Label
		if name == "" {
			name = fmt.Sprintf("PIECE_%d", i+1)
		}
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer for piece %s: %w", name, err)
		}
		drawOutline(d, placement.Polygon)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

func drawRect(d *drawing.Drawing, width, height float64) {
	d.Line(0, 0, 0, width, 0, 0)
	d.Line(width, 0, 0, width, height, 0)
	d.Line(width, height, 0, 0, height, 0)
	d.Line(0, height, 0, 0, 0, 0)
}

func drawOutline(d *drawing.Drawing, poly geom.Polygon) {
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		d.Line(a.X, a.Y, 0, b.X, b.Y, 0)
	}
}
