// Package render rasterizes a maze grid to a PNG image. Every grid
// position becomes a square block of a configurable pixel size, colored by
// cell state: walls black, corridors white, the solution path red and
// explored cells light gray.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/amazing-mazes/maze-api/maze"
)

// DefaultCellSize is the block edge length, in pixels, used when the
// caller supplies a non-positive one.
const DefaultCellSize = 10

var palette = map[byte]color.RGBA{
	maze.Wall:  {0, 0, 0, 255},
	maze.Empty: {255, 255, 255, 255},
	maze.Path:  {255, 0, 0, 255},
	maze.Seen:  {200, 200, 200, 255},
}

// unknown cell states render white, matching the corridor color
var fallback = color.RGBA{255, 255, 255, 255}

// PNG encodes the grid as a PNG where each grid position is a
// cellSize-by-cellSize block.
func PNG(g maze.Grid, cellSize int) ([]byte, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	h, w := g.Height(), g.Width()
	img := image.NewRGBA(image.Rect(0, 0, w*cellSize, h*cellSize))

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cellColor, ok := palette[g[r][c]]
			if !ok {
				cellColor = fallback
			}
			for y := r * cellSize; y < (r+1)*cellSize; y++ {
				for x := c * cellSize; x < (c+1)*cellSize; x++ {
					img.SetRGBA(x, y, cellColor)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
