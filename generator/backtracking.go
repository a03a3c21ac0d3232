package generator

import (
	"math/rand"

	"github.com/amazing-mazes/maze-api/maze"
)

// carveBacktracking carves passages by randomized depth-first descent.
//
// An explicit stack of logical cells replaces native recursion, so the
// descent depth is bounded only by the number of cells and never by the
// call stack. The cell on top of the stack advances to a random unvisited
// neighbor, carving the wall between them; when no such neighbor exists
// the stack pops. Every carve joins a visited cell to a fresh one, so the
// result is a spanning tree by construction.
func carveBacktracking(n int, seed int64) (maze.Grid, error) {
	grid, err := maze.MakeBlankGrid(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	visited := make([]bool, n*n)

	type cell struct{ r, c int }
	stack := []cell{{0, 0}}
	visited[0] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		progressed := false
		for _, d := range dirs {
			nr, nc := cur.r+d[0], cur.c+d[1]
			if nr < 0 || nr >= n || nc < 0 || nc >= n || visited[nr*n+nc] {
				continue
			}
			visited[nr*n+nc] = true
			carveBetween(grid, cur.r, cur.c, nr, nc)
			stack = append(stack, cell{nr, nc})
			progressed = true
			break
		}

		if !progressed {
			stack = stack[:len(stack)-1]
		}
	}

	maze.OpenEntryExit(grid, n)
	return grid, nil
}
