// menace-view — solution viewer
//
// Opens a saved solution JSON file and renders the board with its
// placed pieces.
//
// Build:
//
//	go build -o menace-view ./cmd/menace-view
//
// Usage:
//
//	menace-view path/to/solution.json
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/menace/internal/project"
	"github.com/piwi3910/menace/internal/ui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: menace-view <solution.json>")
		os.Exit(2)
	}

	sol, err := project.LoadSolution(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "menace-view: %v\n", err)
		os.Exit(1)
	}

	application := app.NewWithID("com.piwi3910.menace")
	window := application.NewWindow(fmt.Sprintf("Menace — %s", sol.Puzzle))

	window.SetContent(ui.RenderSolution(sol))
	window.Resize(fyne.NewSize(800, 600))
	window.CenterOnScreen()
	window.ShowAndRun()
}
