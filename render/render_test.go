package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-mazes/maze-api/maze"
)

func TestPNG(t *testing.T) {
	grid, err := maze.Parse("#o\n*.")
	require.NoError(t, err)

	data, err := PNG(grid, 4)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 8, bounds.Dx())
	assert.Equal(t, 8, bounds.Dy())

	// Sample the center of each block.
	assertPixel(t, img.At(2, 2), 0, 0, 0)       // wall
	assertPixel(t, img.At(6, 2), 255, 0, 0)     // path
	assertPixel(t, img.At(2, 6), 200, 200, 200) // seen
	assertPixel(t, img.At(6, 6), 255, 255, 255) // empty
}

func TestPNGDefaultCellSize(t *testing.T) {
	grid, err := maze.Parse("#.#\n#.#\n#.#")
	require.NoError(t, err)

	data, err := PNG(grid, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3*DefaultCellSize, img.Bounds().Dx())
	assert.Equal(t, 3*DefaultCellSize, img.Bounds().Dy())
}

func assertPixel(t *testing.T, c color.Color, wantR, wantG, wantB uint32) {
	t.Helper()
	r, g, b, _ := c.RGBA()
	assert.Equal(t, wantR, r>>8)
	assert.Equal(t, wantG, g>>8)
	assert.Equal(t, wantB, b>>8)
}
