// Package project persists puzzles and solutions as JSON files.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/menace/internal/model"
)

// DefaultDir returns the default directory for storing puzzles and
// solutions.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "menace"), nil
}

// DefaultPuzzlesPath returns the default file path for custom puzzles.
func DefaultPuzzlesPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "puzzles.json"), nil
}

// SavePuzzles saves custom puzzles to a JSON file.
func SavePuzzles(path string, puzzles []model.Puzzle) error {
	return writeJSON(path, puzzles)
}

// LoadPuzzles loads custom puzzles from a JSON file. Returns an empty
// slice if the file does not exist.
func LoadPuzzles(path string) ([]model.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Puzzle{}, nil
		}
		return nil, err
	}

	var puzzles []model.Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, err
	}
	for i := range puzzles {
		if err := puzzles[i].Validate(); err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", puzzles[i].Name, err)
		}
	}
	return puzzles, nil
}

// SaveSolution writes a single solution to a JSON file.
func SaveSolution(path string, sol model.Solution) error {
	return writeJSON(path, sol)
}

// LoadSolution reads a solution from a JSON file.
func LoadSolution(path string) (model.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Solution{}, err
	}

	var sol model.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return model.Solution{}, err
	}
	if sol.Puzzle == "" {
		return model.Solution{}, errors.New("loaded solution has no puzzle name")
	}
	return sol, nil
}

// SolutionPath returns the default file path for a solution, named after
// the puzzle and the solution ID.
func SolutionPath(sol model.Solution) (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.json", sol.Puzzle, sol.ID)), nil
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
