package generator

import (
	"math/rand"

	"github.com/amazing-mazes/maze-api/dsu"
	"github.com/amazing-mazes/maze-api/maze"
)

// edge connects two adjacent logical cells.
type edge struct {
	r1, c1 int
	r2, c2 int
}

// carveKruskal carves passages with Kruskal's algorithm: build the full
// 2n(n-1) candidate edge list, shuffle it, and carve an edge's wall exactly
// when its endpoints still belong to different components. Cycle rejection
// through the DSU guarantees the same spanning-tree invariant as the
// backtracking carver.
func carveKruskal(n int, seed int64) (maze.Grid, error) {
	grid, err := maze.MakeBlankGrid(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	edges := make([]edge, 0, 2*n*(n-1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r+1 < n {
				edges = append(edges, edge{r, c, r + 1, c})
			}
			if c+1 < n {
				edges = append(edges, edge{r, c, r, c + 1})
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	forest := dsu.New(n * n)
	for _, e := range edges {
		if forest.Union(e.r1*n+e.c1, e.r2*n+e.c2) {
			carveBetween(grid, e.r1, e.c1, e.r2, e.c2)
		}
	}

	maze.OpenEntryExit(grid, n)
	return grid, nil
}
