package i

import (
	"context"

	"github.com/google/uuid"

	dmn "github.com/amazing-mazes/maze-api/domain"
)

// MazeManager defines the maze lifecycle operations the API exposes:
// generate a maze, fetch it, solve it in place, and render it.
type MazeManager interface {
	// Generate carves a new maze and persists it. A nil seed means a
	// non-deterministic one is chosen.
	Generate(ctx context.Context, algorithm string, size int, seed *int64) (*dmn.Maze, error)

	// ByID retrieves a maze record, preferring the hot cache over the
	// archive.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// Solve runs the chosen solver over the stored grid, persists the
	// marked result, and reports whether a route was found.
	Solve(ctx context.Context, id uuid.UUID, algorithm string) (*dmn.Maze, bool, error)

	// Render rasterizes the stored grid to a PNG with the given cell size
	// in pixels.
	Render(ctx context.Context, id uuid.UUID, cellSize int) ([]byte, error)
}
