/*
Package generator carves perfect mazes into blank character grids.

Two interchangeable algorithms are provided: recursive-backtracking descent
(implemented iteratively) and Kruskal over a shuffled edge list. Both
produce a spanning tree over the n*n logical cells — exactly n*n-1 carved
passages, connected and acyclic — and finish by opening the entry and exit
border passages. Neither yields a uniformly random spanning tree; both
distributions are biased, which is acceptable for this domain.

Every call seeds its own rand.Rand, so repeated or concurrent calls never
interfere and the same (algorithm, n, seed) triple always reproduces the
same grid.
*/
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/amazing-mazes/maze-api/maze"
)

// Algorithm names a maze-carving strategy.
type Algorithm string

const (
	// Backtracking carves with randomized depth-first descent.
	Backtracking Algorithm = "backtracking"
	// Kruskal carves by processing a shuffled edge list through a
	// disjoint-set union.
	Kruskal Algorithm = "kruskal"
)

var ErrUnknownAlgorithm = errors.New("unknown generator algorithm")

// Algorithms lists the supported generator algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{Backtracking, Kruskal}
}

// Generate carves an n-by-n perfect maze with the chosen algorithm and
// seed. It fails on n <= 0 or an unrecognized algorithm, before any grid
// is allocated.
func Generate(algorithm Algorithm, n int, seed int64) (maze.Grid, error) {
	if n <= 0 {
		return nil, maze.ErrInvalidSize
	}

	switch algorithm {
	case Backtracking:
		return carveBacktracking(n, seed)
	case Kruskal:
		return carveKruskal(n, seed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// RandomSeed returns a time-based seed for callers that did not supply one.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// carveBetween opens the wall at the midpoint between two adjacent logical
// cells.
func carveBetween(g maze.Grid, r1, c1, r2, c2 int) {
	g1r, g1c := maze.CellToGrid(r1, c1)
	g2r, g2c := maze.CellToGrid(r2, c2)
	g[(g1r+g2r)/2][(g1c+g2c)/2] = maze.Empty
}
