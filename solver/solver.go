/*
Package solver searches a carved maze grid for a route between its entry
and exit openings, mutating the grid in place to record the outcome.

Two interchangeable algorithms are provided: depth-first backtracking and
A* with the Manhattan heuristic. Both convert explored passable cells to
maze.Seen and overwrite the winning route with maze.Path, but they differ
on failure: the backtracking solver still marks everything it reached as
Seen, while A* leaves a grid it could not solve untouched. The asymmetry is
inherited behavior and kept deliberately; callers that care should not rely
on failure markings.

A solve takes exclusive ownership of the grid for its duration. Walls and
dimensions are never modified.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/amazing-mazes/maze-api/maze"
)

// Algorithm names a maze-solving strategy.
type Algorithm string

const (
	// Backtracking solves with short-circuiting depth-first search.
	Backtracking Algorithm = "backtracking"
	// AStar solves with A* search under the Manhattan heuristic, so the
	// route it marks is always a shortest one.
	AStar Algorithm = "astar"
)

var ErrUnknownAlgorithm = errors.New("unknown solver algorithm")

// steps enumerates the 4-connected neighborhood: up, down, left, right.
// The backtracking solver explores in exactly this order.
var steps = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Algorithms lists the supported solver algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{Backtracking, AStar}
}

// Solve searches grid with the chosen algorithm, mutating it in place.
// It returns false with a nil error when the maze has no route, and an
// error when the algorithm is unknown or the grid has no detectable
// entry/exit opening.
func Solve(algorithm Algorithm, grid maze.Grid) (bool, error) {
	switch algorithm {
	case Backtracking:
		return solveBacktracking(grid)
	case AStar:
		return solveAStar(grid)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// endpoints carries the border openings and the interior cells the search
// actually runs between.
type endpoints struct {
	entry maze.Position
	exit  maze.Position
	start maze.Position
	goal  maze.Position
}

// resolveEndpoints locates the border openings and maps each to the first
// passable cell just inside the border, when that cell exists. A grid
// without detectable openings is malformed; the error surfaces before any
// search begins.
func resolveEndpoints(g maze.Grid) (endpoints, error) {
	entry, exit, err := g.FindEntryExit()
	if err != nil {
		return endpoints{}, err
	}

	ep := endpoints{entry: entry, exit: exit, start: entry, goal: exit}
	if entry.Row == 0 && isEmpty(g, 1, entry.Col) {
		ep.start = maze.Position{Row: 1, Col: entry.Col}
	}
	if h := g.Height(); exit.Row == h-1 && isEmpty(g, h-2, exit.Col) {
		ep.goal = maze.Position{Row: h - 2, Col: exit.Col}
	}
	return ep, nil
}

func isEmpty(g maze.Grid, r, c int) bool {
	return g.InBounds(r, c) && g[r][c] == maze.Empty
}

// markSolution overwrites the reconstructed goal-to-start chain with Path,
// superseding any Seen marking applied moments earlier, and extends the
// route through the border openings so it spans border to border.
func markSolution(g maze.Grid, parent []int, ep endpoints) {
	w := g.Width()
	start := ep.start.Row*w + ep.start.Col

	for cur := ep.goal.Row*w + ep.goal.Col; cur != start; cur = parent[cur] {
		g[cur/w][cur%w] = maze.Path
	}
	g[ep.start.Row][ep.start.Col] = maze.Path
	g[ep.entry.Row][ep.entry.Col] = maze.Path
	g[ep.exit.Row][ep.exit.Col] = maze.Path
}
