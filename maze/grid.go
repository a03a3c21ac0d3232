/*
Package maze defines the character-grid representation shared by the maze
generators and solvers.

A maze of logical size n is stored as a (2n+1)x(2n+1) byte grid. Logical
cells live at odd (row, col) pairs; even positions are walls or the border.
The grid is a plain mutable buffer owned by the caller: generators produce
it, solvers mutate passable-cell states in place and never touch walls or
dimensions.
*/
package maze

import (
	"errors"
	"strings"
)

// Cell states. Empty, Seen and Path are mutually exclusive per position;
// Wall is immutable once the maze is carved.
const (
	Wall  byte = '#' // wall or border
	Empty byte = '.' // passable, not visited by a solver
	Seen  byte = '*' // explored by a solver, not on the final path
	Path  byte = 'o' // on the reconstructed solution path
)

var (
	ErrInvalidSize      = errors.New("maze size must be a positive integer")
	ErrBoundaryNotFound = errors.New("entry/exit opening not found on the grid border")
	ErrEmptyGrid        = errors.New("grid text contains no rows")
	ErrRaggedGrid       = errors.New("grid rows have inconsistent widths")
)

// Grid is a rectangular matrix of cell states.
type Grid [][]byte

// Position identifies a grid coordinate (not a logical cell coordinate).
type Position struct {
	Row int
	Col int
}

// MakeBlankGrid returns a (2n+1)x(2n+1) grid filled with walls, with every
// logical-cell position set to Empty and no passages carved yet.
func MakeBlankGrid(n int) (Grid, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	size := 2*n + 1
	grid := make(Grid, size)
	for r := range grid {
		grid[r] = make([]byte, size)
		for c := range grid[r] {
			grid[r][c] = Wall
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			gr, gc := CellToGrid(r, c)
			grid[gr][gc] = Empty
		}
	}
	return grid, nil
}

// OpenEntryExit opens the two boundary passages: the entry on the top
// border above logical cell (0,0) and the exit on the bottom border below
// logical cell (n-1,n-1).
func OpenEntryExit(g Grid, n int) {
	g[0][1] = Empty
	g[len(g)-1][2*n-1] = Empty
}

// CellToGrid maps a logical cell coordinate to its grid coordinate.
func CellToGrid(r, c int) (int, int) {
	return 2*r + 1, 2*c + 1
}

// Height returns the number of grid rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of grid columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether (r, c) is inside the grid.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Height() && c >= 0 && c < g.Width()
}

// FindEntryExit locates the entry and exit openings. The entry is the first
// Empty position on the top row scanning left to right; the exit is the
// first Empty position on the bottom row scanning right to left, so a grid
// with several bottom openings still yields the conventional one. A grid
// missing either opening is malformed and yields ErrBoundaryNotFound.
func (g Grid) FindEntryExit() (Position, Position, error) {
	h, w := g.Height(), g.Width()
	if h == 0 || w == 0 {
		return Position{}, Position{}, ErrBoundaryNotFound
	}

	entry := Position{Row: -1}
	for c := 0; c < w; c++ {
		if g[0][c] == Empty {
			entry = Position{Row: 0, Col: c}
			break
		}
	}

	exit := Position{Row: -1}
	for c := w - 1; c >= 0; c-- {
		if g[h-1][c] == Empty {
			exit = Position{Row: h - 1, Col: c}
			break
		}
	}

	if entry.Row == -1 || exit.Row == -1 {
		return Position{}, Position{}, ErrBoundaryNotFound
	}
	return entry, exit, nil
}

// Clone returns a deep copy of the grid. Solvers mutate their input, so
// callers comparing algorithms on the same maze must hand each one a clone.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for r, row := range g {
		clone[r] = make([]byte, len(row))
		copy(clone[r], row)
	}
	return clone
}

// Count tallies every cell state present in the grid.
func (g Grid) Count() map[byte]int {
	counts := make(map[byte]int)
	for _, row := range g {
		for _, cell := range row {
			counts[cell]++
		}
	}
	return counts
}

// String renders the grid as newline-joined rows, one character per cell.
// This is the on-disk text format; no trailing newline is included.
func (g Grid) String() string {
	rows := make([]string, len(g))
	for r, row := range g {
		rows[r] = string(row)
	}
	return strings.Join(rows, "\n")
}

// Parse reconstructs a grid from its text form. Blank lines are skipped;
// interior characters are preserved exactly. All rows must have the same
// width.
func Parse(text string) (Grid, error) {
	var grid Grid
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		grid = append(grid, []byte(line))
	}

	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range grid {
		if len(row) != len(grid[0]) {
			return nil, ErrRaggedGrid
		}
	}
	return grid, nil
}
