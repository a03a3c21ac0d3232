package i

import (
	"context"

	"github.com/google/uuid"

	dmn "github.com/amazing-mazes/maze-api/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines the interface for the durable maze archive.
type MazeRepo interface {
	// Save inserts or updates a maze record, including its grid text.
	Save(ctx context.Context, m *dmn.Maze) error

	// ByID retrieves a maze record by its unique ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}

// GridCache defines the interface for the hot grid-text cache that backs
// in-flight solves.
type GridCache interface {
	// Save stores the grid text for a maze ID with the cache TTL.
	Save(ctx context.Context, id uuid.UUID, gridText string) error

	// Get returns the cached grid text for a maze ID.
	// Returns an error on a cache miss.
	Get(ctx context.Context, id uuid.UUID) (string, error)

	// WithLock runs fn while holding an exclusive per-maze lock, serializing
	// read-solve-write cycles on the same grid.
	WithLock(id uuid.UUID, fn func() error) error
}
