package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/menace/internal/model"
)

// ExportXLSX writes a pose report for a solved board: one row per placed
// piece with its label, pose components and area, followed by a summary
// block with the board dimensions and coverage.
func ExportXLSX(path string, sol model.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("no placed pieces to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []interface{}{"Piece", "X", "Y", "Theta (deg)", "Area", "Vertices"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, placement := range sol.Placed {
		values := []interface{}{
			placement.Piece.Label,
			placement.Pose.X,
			placement.Pose.Y,
			placement.Pose.Theta * 180 / math.Pi,
			placement.Polygon.Area(),
			len(placement.Polygon),
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Puzzle", sol.Puzzle},
		{"Board width", sol.Width},
		{"Board height", sol.Height},
		{"Covered area", sol.CoveredArea()},
		{"Coverage", fmt.Sprintf("%.1f%%", sol.Coverage()*100)},
		{"Solved at", sol.SolvedAt.Format("2006-01-02 15:04:05")},
	}
	for _, line := range summary {
		if err := setRow(f, sheet, row, line); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
