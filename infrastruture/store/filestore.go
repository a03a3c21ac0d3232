// Package store reads and writes maze grids as plain text files:
// newline-joined rows, one character per cell, trailing newline on write.
package store

import (
	"os"

	"github.com/amazing-mazes/maze-api/maze"
)

// WriteGrid writes the grid to path in its text form.
func WriteGrid(path string, g maze.Grid) error {
	return os.WriteFile(path, []byte(g.String()+"\n"), 0o644)
}

// ReadGrid reads a grid from the text file at path. Characters are
// preserved exactly; blank lines are skipped.
func ReadGrid(path string) (maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return maze.Parse(string(data))
}
