package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/amazing-mazes/maze-api/maze"
)

// Maze is a generated maze together with the parameters that produced it.
// Grid reflects the latest state: freshly carved, or carrying Seen/Path
// markings after a solve.
type Maze struct {
	ID         uuid.UUID `bson:"_id"`
	Size       int       `bson:"size"`
	Algorithm  string    `bson:"algorithm"`
	Seed       int64     `bson:"seed"`
	GridText   string    `bson:"grid"`
	Solved     bool      `bson:"solved"`
	SolvedWith string    `bson:"solvedWith,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
}

// Grid parses the stored grid text back into its matrix form.
func (m *Maze) Grid() (maze.Grid, error) {
	return maze.Parse(m.GridText)
}

// SetGrid stores the grid in its text form.
func (m *Maze) SetGrid(g maze.Grid) {
	m.GridText = g.String()
}
