package bench

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/infrastruture/store"
	"github.com/amazing-mazes/maze-api/solver"
)

func TestRun(t *testing.T) {
	records, err := Run(Options{
		Sizes:    []int{3, 5},
		Reps:     2,
		BaseSeed: 123,
	})
	require.NoError(t, err)

	// Per size and rep: 2 generations, each solved by 2 solvers.
	assert.Len(t, records, 2*2*(2+2*2))

	for _, r := range records {
		switch r.Phase {
		case "generation":
			assert.True(t, r.OK)
			assert.Empty(t, r.GenAlgorithm)
			assert.Zero(t, r.PathCells)
		case "solving":
			assert.True(t, r.OK, "generated mazes are always solvable")
			assert.NotEmpty(t, r.GenAlgorithm)
			assert.Greater(t, r.PathCells, 0)
		default:
			t.Fatalf("unexpected phase %q", r.Phase)
		}
		assert.Equal(t, r.Height, 2*r.N+1)
		assert.Contains(t, []int64{runSeed(123, 0, r.N), runSeed(123, 1, r.N)}, r.Seed)
	}
}

func TestRunRequiresSizes(t *testing.T) {
	_, err := Run(Options{})
	assert.Error(t, err)
}

func TestRunWritesExamples(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(Options{
		Sizes:       []int{4},
		BaseSeed:    7,
		Generators:  []generator.Algorithm{generator.Kruskal},
		Solvers:     []solver.Algorithm{solver.AStar},
		ExamplesDir: dir,
	})
	require.NoError(t, err)

	grid, err := store.ReadGrid(filepath.Join(dir, "maze_n4_kruskal_astar.txt"))
	require.NoError(t, err)
	assert.Equal(t, 9, grid.Height())
}

func TestWriteCSV(t *testing.T) {
	records, err := Run(Options{Sizes: []int{2}, BaseSeed: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, "phase", rows[0][0])
	for _, row := range rows {
		assert.Len(t, row, 15)
	}
}

func TestWriteSummary(t *testing.T) {
	records, err := Run(Options{Sizes: []int{2}, BaseSeed: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, records)

	out := buf.String()
	assert.Contains(t, out, "generation")
	assert.Contains(t, out, "solving")
	assert.Contains(t, out, "astar")
	assert.Equal(t, 1+4, strings.Count(out, "\n"), "header plus one line per phase/algo/size")
}
