package importer

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

func newDrawing(t *testing.T) *drawing.Drawing {
	t.Helper()
	d := dxf.NewDrawing()
	_, err := d.AddLayer("PIECES", dxf.DefaultColor, dxf.DefaultLineType, true)
	require.NoError(t, err)
	return d
}

func saveDrawing(t *testing.T, d *drawing.Drawing) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pieces.dxf")
	require.NoError(t, d.SaveAs(path))
	return path
}

func addRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}

func TestImportDXF_ChainedLines(t *testing.T) {
	d := newDrawing(t)
	addRect(d, 10, 5, 40, 30)
	path := saveDrawing(t, d)

	result := ImportDXF(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Pieces, 1)

	piece := result.Pieces[0]
	assert.Equal(t, "dxf-1", piece.Label)
	assert.InDelta(t, 40*30, piece.Reference.Area(), 1e-6)

	// The outline is normalized to start at the origin.
	min, max := piece.Reference.BoundingBox()
	assert.InDelta(t, 0, min.X, 1e-9)
	assert.InDelta(t, 0, min.Y, 1e-9)
	assert.InDelta(t, 40, max.X, 1e-9)
	assert.InDelta(t, 30, max.Y, 1e-9)
}

func TestImportDXF_MultipleShapesLargestFirst(t *testing.T) {
	d := newDrawing(t)
	addRect(d, 0, 0, 20, 20)
	addRect(d, 100, 100, 50, 40)
	path := saveDrawing(t, d)

	result := ImportDXF(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Pieces, 2)
	assert.InDelta(t, 50*40, result.Pieces[0].Reference.Area(), 1e-6)
	assert.InDelta(t, 20*20, result.Pieces[1].Reference.Area(), 1e-6)
}

func TestImportDXF_Circle(t *testing.T) {
	d := newDrawing(t)
	d.Circle(30, 30, 0, 10)
	path := saveDrawing(t, d)

	result := ImportDXF(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Pieces, 1)

	// A 64-gon approximation stays within a percent of the true area.
	area := result.Pieces[0].Reference.Area()
	assert.InDelta(t, math.Pi*10*10, area, math.Pi*10*10*0.01)
}

func TestImportDXF_OpenChainIgnored(t *testing.T) {
	d := newDrawing(t)
	d.Line(0, 0, 0, 10, 0, 0)
	d.Line(10, 0, 0, 10, 10, 0)
	path := saveDrawing(t, d)

	result := ImportDXF(path)

	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Pieces)
}

func TestImportDXF_MissingFile(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "missing.dxf"))

	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Pieces)
}
