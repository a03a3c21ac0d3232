package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-mazes/maze-api/generator"
)

func TestGridFileRoundTrip(t *testing.T) {
	grid, err := generator.Generate(generator.Backtracking, 5, 42)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maze_5.txt")
	require.NoError(t, WriteGrid(path, grid))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, grid.String()+"\n", string(data), "files carry a trailing newline")

	loaded, err := ReadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, grid.String(), loaded.String())
}

func TestReadGridMissingFile(t *testing.T) {
	_, err := ReadGrid(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
