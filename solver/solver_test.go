package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/maze"
)

// blockedGrid has an entry, an exit, and a wall row sealing the two apart.
const blockedGrid = "#.###\n" +
	"#.#.#\n" +
	"#####\n" +
	"#.#.#\n" +
	"###.#"

func mustParse(t *testing.T, text string) maze.Grid {
	t.Helper()
	grid, err := maze.Parse(text)
	require.NoError(t, err)
	return grid
}

// assertSolvedGrid checks the post-solve state invariants: only the four
// legal cell states appear, walls are untouched, and the Path cells form a
// single simple chain from the entry opening to the exit opening.
func assertSolvedGrid(t *testing.T, before, after maze.Grid) {
	t.Helper()

	var pathCells []maze.Position
	for r := 0; r < after.Height(); r++ {
		for c := 0; c < after.Width(); c++ {
			switch after[r][c] {
			case maze.Wall, maze.Empty, maze.Seen:
			case maze.Path:
				pathCells = append(pathCells, maze.Position{Row: r, Col: c})
			default:
				t.Fatalf("illegal cell state %q at (%d,%d)", after[r][c], r, c)
			}
			if before[r][c] == maze.Wall {
				assert.Equal(t, maze.Wall, after[r][c], "wall mutated at (%d,%d)", r, c)
			} else {
				assert.NotEqual(t, maze.Wall, after[r][c], "corridor walled up at (%d,%d)", r, c)
			}
		}
	}
	require.NotEmpty(t, pathCells)

	entry, exit, err := after.FindEntryExit()
	// The openings are Path now, so the scan must fail; recover them from
	// the pre-solve grid instead.
	assert.Error(t, err)
	entry, exit, err = before.FindEntryExit()
	require.NoError(t, err)
	assert.Equal(t, maze.Path, after[entry.Row][entry.Col])
	assert.Equal(t, maze.Path, after[exit.Row][exit.Col])

	// A simple chain: every Path cell touches one or two Path neighbors,
	// and exactly two cells (the route's ends) touch only one.
	if len(pathCells) > 1 {
		endpoints := 0
		for _, p := range pathCells {
			neighbors := 0
			for _, d := range steps {
				nr, nc := p.Row+d[0], p.Col+d[1]
				if after.InBounds(nr, nc) && after[nr][nc] == maze.Path {
					neighbors++
				}
			}
			require.True(t, neighbors == 1 || neighbors == 2,
				"path cell (%d,%d) has %d path neighbors", p.Row, p.Col, neighbors)
			if neighbors == 1 {
				endpoints++
			}
		}
		assert.Equal(t, 2, endpoints)
	}
}

func TestSolveGeneratedMazes(t *testing.T) {
	for _, genAlgo := range generator.Algorithms() {
		for _, solAlgo := range Algorithms() {
			for _, n := range []int{1, 2, 5, 15} {
				t.Run(fmt.Sprintf("%s/%s/n=%d", genAlgo, solAlgo, n), func(t *testing.T) {
					grid, err := generator.Generate(genAlgo, n, 321)
					require.NoError(t, err)
					before := grid.Clone()

					found, err := Solve(solAlgo, grid)
					require.NoError(t, err)
					assert.True(t, found, "a perfect maze is always solvable")
					assertSolvedGrid(t, before, grid)
				})
			}
		}
	}
}

func TestAStarPathNeverLongerThanBacktracking(t *testing.T) {
	for _, genAlgo := range generator.Algorithms() {
		for _, seed := range []int64{7, 77, 777} {
			t.Run(fmt.Sprintf("%s/seed=%d", genAlgo, seed), func(t *testing.T) {
				grid, err := generator.Generate(genAlgo, 20, seed)
				require.NoError(t, err)

				dfsGrid := grid.Clone()
				found, err := Solve(Backtracking, dfsGrid)
				require.NoError(t, err)
				require.True(t, found)

				astarGrid := grid.Clone()
				found, err = Solve(AStar, astarGrid)
				require.NoError(t, err)
				require.True(t, found)

				assert.LessOrEqual(t, astarGrid.Count()[maze.Path], dfsGrid.Count()[maze.Path])
			})
		}
	}
}

func TestSolveSmallestMaze(t *testing.T) {
	// n=1: the route is entry -> sole cell -> exit and nothing else gets
	// explored, so there must be no Seen cells at all.
	for _, algo := range Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			grid, err := generator.Generate(generator.Backtracking, 1, 5)
			require.NoError(t, err)

			found, err := Solve(algo, grid)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "#o#\n#o#\n#o#", grid.String())
		})
	}
}

func TestSolveFailureMarkingAsymmetry(t *testing.T) {
	t.Run("backtracking marks reached cells even on failure", func(t *testing.T) {
		grid := mustParse(t, blockedGrid)

		found, err := Solve(Backtracking, grid)
		require.NoError(t, err)
		assert.False(t, found)

		// Everything reachable from the start is Seen; the sealed-off
		// bottom region is untouched.
		assert.Equal(t, maze.Seen, grid[1][1])
		assert.Equal(t, maze.Seen, grid[0][1])
		assert.Equal(t, maze.Empty, grid[3][1])
		assert.Equal(t, maze.Empty, grid[3][3])
		assert.Equal(t, maze.Empty, grid[4][3])
		assert.Zero(t, grid.Count()[maze.Path])
	})

	t.Run("astar leaves the grid untouched on failure", func(t *testing.T) {
		grid := mustParse(t, blockedGrid)

		found, err := Solve(AStar, grid)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, blockedGrid, grid.String())
	})
}

func TestSolveMalformedGrid(t *testing.T) {
	sealed := mustParse(t, "###\n#.#\n###")
	for _, algo := range Algorithms() {
		_, err := Solve(algo, sealed.Clone())
		assert.ErrorIs(t, err, maze.ErrBoundaryNotFound, "algorithm %s", algo)
	}
}

func TestSolveUnknownAlgorithm(t *testing.T) {
	grid, err := generator.Generate(generator.Kruskal, 3, 1)
	require.NoError(t, err)

	_, err = Solve("dijkstra", grid)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
