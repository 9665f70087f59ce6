// menace — dissection puzzle solver
//
// Searches for a flat, gap-free placement of a set of polygonal pieces
// inside a rectangular board by backtracking over a discretized pose
// space.
//
// Build:
//
//	go build -o menace ./cmd/menace
//
// Examples:
//
//	menace -list
//	menace -puzzle martins-menace -workers 4 -timeout 10m
//	menace -dxf pieces.dxf -width 200 -height 150 -pdf solved.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/piwi3910/menace/internal/engine"
	"github.com/piwi3910/menace/internal/export"
	"github.com/piwi3910/menace/internal/importer"
	"github.com/piwi3910/menace/internal/model"
	"github.com/piwi3910/menace/internal/project"
)

var (
	puzzleName = flag.String("puzzle", "martins-menace", "built-in puzzle to solve")
	list       = flag.Bool("list", false, "list the built-in puzzles and exit")

	dxfPath = flag.String("dxf", "", "import pieces from a DXF file instead of a built-in puzzle")
	width   = flag.Float64("width", 0, "board width for -dxf puzzles")
	height  = flag.Float64("height", 0, "board height for -dxf puzzles")

	nx             = flag.Int("nx", 0, "override the x resolution of the pose grid")
	ny             = flag.Int("ny", 0, "override the y resolution of the pose grid")
	ntheta         = flag.Int("ntheta", 0, "override the angular resolution of the pose grid")
	fullFirstPiece = flag.Bool("full-first-piece", false, "search the whole board for the first piece instead of one quadrant")

	workers  = flag.Int("workers", 1, "number of concurrent search workers")
	timeout  = flag.Duration("timeout", 0, "give up after this long (0 means no limit)")
	progress = flag.Bool("progress", false, "print progress while searching")

	pdfPath  = flag.String("pdf", "", "write a PDF board diagram of the solution")
	outDXF   = flag.String("out-dxf", "", "write the solved outlines as DXF")
	xlsxPath = flag.String("xlsx", "", "write a pose report as XLSX")
	cardPath = flag.String("card", "", "write a QR solution card as PDF")
	savePath = flag.String("save", "", "save the solution as JSON ('auto' picks a path under the config dir)")
)

func main() {
	flag.Parse()

	if *list {
		fmt.Println("Built-in puzzles:")
		for _, name := range model.PuzzleNames() {
			if p, ok := model.GetPuzzle(name); ok {
				fmt.Printf("  %-16s %.2f x %.2f, %d pieces\n", name, p.Width, p.Height, len(p.Pieces))
			}
		}
		return
	}

	puzzle, err := loadPuzzle()
	if err != nil {
		fatal(err)
	}

	solver := engine.New()
	solver.Workers = *workers
	if *progress {
		solver.Progress = printProgress
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	fmt.Printf("Solving %q (%.2f x %.2f, %d pieces, grid %dx%dx%d)...\n",
		puzzle.Name, puzzle.Width, puzzle.Height, len(puzzle.Pieces),
		puzzle.Resolution.NX, puzzle.Resolution.NY, puzzle.Resolution.NTheta)

	result, err := solver.Solve(ctx, puzzle)
	if err != nil {
		if ctx.Err() != nil {
			fatal(fmt.Errorf("search stopped after %s: %w", *timeout, err))
		}
		fatal(err)
	}

	fmt.Printf("Tried %d poses in %s (candidates per piece: %s)\n",
		result.Stats.PosesTried, result.Stats.Duration.Round(time.Millisecond),
		formatCounts(result.Stats.Candidates))

	if !result.Found {
		fmt.Println("No solution in the searched pose space.")
		os.Exit(1)
	}

	sol := model.NewSolution(puzzle.Name, result.Board)
	fmt.Printf("Solved, %.1f%% of the board covered:\n", sol.Coverage()*100)
	for _, placement := range sol.Placed {
		fmt.Printf("  %-10s %s\n", placement.Piece.Label, placement.Pose.DegString())
	}

	if err := writeArtifacts(sol); err != nil {
		fatal(err)
	}
}

func loadPuzzle() (model.Puzzle, error) {
	var puzzle model.Puzzle

	if *dxfPath != "" {
		if *width <= 0 || *height <= 0 {
			return model.Puzzle{}, fmt.Errorf("-dxf requires positive -width and -height")
		}
		imported := importer.ImportDXF(*dxfPath)
		for _, w := range imported.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		if len(imported.Errors) > 0 {
			return model.Puzzle{}, fmt.Errorf("DXF import failed: %s", strings.Join(imported.Errors, "; "))
		}
		puzzle = model.Puzzle{
			Name:       strings.TrimSuffix(*dxfPath, ".dxf"),
			Width:      *width,
			Height:     *height,
			Pieces:     imported.Pieces,
			Resolution: model.DefaultResolution(),
		}
	} else {
		p, ok := model.GetPuzzle(*puzzleName)
		if !ok {
			return model.Puzzle{}, fmt.Errorf("unknown puzzle %q, use -list to see the built-ins", *puzzleName)
		}
		puzzle = p
	}

	if *nx > 0 {
		puzzle.Resolution.NX = *nx
	}
	if *ny > 0 {
		puzzle.Resolution.NY = *ny
	}
	if *ntheta > 0 {
		puzzle.Resolution.NTheta = *ntheta
	}
	puzzle.Resolution.FullFirstPiece = *fullFirstPiece

	return puzzle, nil
}

func writeArtifacts(sol model.Solution) error {
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, sol); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *pdfPath)
	}
	if *outDXF != "" {
		if err := export.ExportDXF(*outDXF, sol); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *outDXF)
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, sol); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *xlsxPath)
	}
	if *cardPath != "" {
		if err := export.ExportCard(*cardPath, sol); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *cardPath)
	}
	if *savePath != "" {
		path := *savePath
		if path == "auto" {
			p, err := project.SolutionPath(sol)
			if err != nil {
				return err
			}
			path = p
		}
		if err := project.SaveSolution(path, sol); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", path)
	}
	return nil
}

func printProgress(depth, index, total int) {
	// Depth-0 candidates are few and long-running, deeper ones are noise.
	if depth == 0 {
		fmt.Fprintf(os.Stderr, "piece 1: candidate %d/%d\n", index+1, total)
	}
}

func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ", ")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "menace: %v\n", err)
	os.Exit(1)
}
