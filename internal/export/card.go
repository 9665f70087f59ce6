package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/menace/internal/model"
)

// CardInfo holds the data encoded into a solution card's QR code. Scanning
// the code recovers the full pose list, enough to replay the solution on
// the same puzzle.
type CardInfo struct {
	Puzzle string       `json:"puzzle"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Poses  []PosedPiece `json:"poses"`
}

// PosedPiece pairs a piece label with its final pose.
type PosedPiece struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// Card layout constants (A6 landscape in mm).
const (
	cardWidth    = 148.0
	cardHeight   = 105.0
	cardMargin   = 8.0
	cardQRSize   = 60.0
	cardLineStep = 5.5
)

// ExportCard generates a single-page PDF solution card: the puzzle name,
// the pose of every placed piece as text, and a QR code encoding the
// same data as JSON.
func ExportCard(path string, sol model.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("no placed pieces to export")
	}

	info := CardInfo{
		Puzzle: sol.Puzzle,
		Width:  sol.Width,
		Height: sol.Height,
	}
	for _, placement := range sol.Placed {
		info.Poses = append(info.Poses, PosedPiece{
			Label: placement.Piece.Label,
			X:     placement.Pose.X,
			Y:     placement.Pose.Y,
			Theta: placement.Pose.Theta,
		})
	}

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A6", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(cardMargin, cardMargin)
	pdf.CellFormat(cardWidth-2*cardMargin, 6, sol.Puzzle, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(cardMargin, cardMargin+7)
	sub := fmt.Sprintf("%.2f x %.2f mm, %d pieces, solved %s",
		sol.Width, sol.Height, len(sol.Placed), sol.SolvedAt.Format("2006-01-02"))
	pdf.CellFormat(cardWidth-2*cardMargin, 5, sub, "", 0, "L", false, 0, "")

	y := cardMargin + 16
	for _, pp := range info.Poses {
		pdf.SetXY(cardMargin, y)
		line := fmt.Sprintf("%-10s %s", pp.Label, model.Pose{X: pp.X, Y: pp.Y, Theta: pp.Theta}.DegString())
		pdf.CellFormat(cardWidth-cardQRSize-3*cardMargin, 5, line, "", 0, "L", false, 0, "")
		y += cardLineStep
	}

	imgName := fmt.Sprintf("qr_%s_%d", sol.ID, len(sol.Placed))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, cardWidth-cardQRSize-cardMargin, (cardHeight-cardQRSize)/2,
		cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return pdf.OutputFileAndClose(path)
}
