package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-mazes/maze-api/maze"
)

// carvedWalls counts interior wall-between positions opened by the
// generator. Positions with exactly one odd coordinate separate two
// adjacent logical cells; the border openings sit outside the interior and
// are not counted.
func carvedWalls(g maze.Grid, n int) int {
	carved := 0
	for r := 1; r <= 2*n-1; r++ {
		for c := 1; c <= 2*n-1; c++ {
			if (r+c)%2 == 1 && g[r][c] == maze.Empty {
				carved++
			}
		}
	}
	return carved
}

// reachableCells flood-fills the logical cells through carved walls and
// returns how many are reachable from (0,0).
func reachableCells(g maze.Grid, n int) int {
	visited := make([]bool, n*n)
	visited[0] = true
	queue := [][2]int{{0, 0}}
	count := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			if nr < 0 || nr >= n || nc < 0 || nc >= n || visited[nr*n+nc] {
				continue
			}
			g1r, g1c := maze.CellToGrid(cur[0], cur[1])
			g2r, g2c := maze.CellToGrid(nr, nc)
			if g[(g1r+g2r)/2][(g1c+g2c)/2] != maze.Empty {
				continue
			}
			visited[nr*n+nc] = true
			count++
			queue = append(queue, [2]int{nr, nc})
		}
	}
	return count
}

func TestGenerateSpanningTree(t *testing.T) {
	for _, algo := range Algorithms() {
		for _, n := range []int{1, 2, 3, 5, 10, 25} {
			for _, seed := range []int64{1, 42, 1234567} {
				t.Run(fmt.Sprintf("%s/n=%d/seed=%d", algo, n, seed), func(t *testing.T) {
					grid, err := Generate(algo, n, seed)
					require.NoError(t, err)

					require.Equal(t, 2*n+1, grid.Height())
					require.Equal(t, 2*n+1, grid.Width())

					// A spanning tree over n^2 cells has n^2-1 edges; with
					// full connectivity that also proves acyclicity.
					assert.Equal(t, n*n-1, carvedWalls(grid, n))
					assert.Equal(t, n*n, reachableCells(grid, n))

					entry, exit, err := grid.FindEntryExit()
					require.NoError(t, err)
					assert.Equal(t, maze.Position{Row: 0, Col: 1}, entry)
					assert.Equal(t, maze.Position{Row: 2 * n, Col: 2*n - 1}, exit)
				})
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			a, err := Generate(algo, 10, 99)
			require.NoError(t, err)
			b, err := Generate(algo, 10, 99)
			require.NoError(t, err)
			assert.Equal(t, a.String(), b.String())

			c, err := Generate(algo, 10, 100)
			require.NoError(t, err)
			assert.NotEqual(t, a.String(), c.String())
		})
	}
}

func TestGenerateSmallest(t *testing.T) {
	// n=1 has zero candidate edges, so both algorithms must produce the
	// exact same 3x3 grid: the sole cell plus the two border openings.
	want := "#.#\n#.#\n#.#"
	for _, algo := range Algorithms() {
		grid, err := Generate(algo, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, want, grid.String(), "algorithm %s", algo)
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Run("non-positive size", func(t *testing.T) {
		for _, algo := range Algorithms() {
			_, err := Generate(algo, 0, 1)
			assert.ErrorIs(t, err, maze.ErrInvalidSize)
			_, err = Generate(algo, -3, 1)
			assert.ErrorIs(t, err, maze.ErrInvalidSize)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := Generate("prim", 5, 1)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}
