// Package mazeapi exposes maze generation, solving and rendering over HTTP.
package mazeapi

// GenerateRequest asks for a new maze to be carved.
// Seed is carried as a string so an unparsable value can degrade to a
// random seed instead of failing the bind.
type GenerateRequest struct {
	Size      int    `json:"size" binding:"required"`
	Algorithm string `json:"algorithm" binding:"required"`
	Seed      string `json:"seed,omitempty"`
}

// SolveRequest asks for a stored maze to be solved in place.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID         string `json:"id"`
	Size       int    `json:"size"`
	Algorithm  string `json:"algorithm"`
	Seed       int64  `json:"seed"`
	Grid       string `json:"grid"`
	Solved     bool   `json:"solved"`
	SolvedWith string `json:"solved_with,omitempty"`
}

// SolveResponse reports a solve outcome alongside the marked maze.
type SolveResponse struct {
	Maze      MazeResponse `json:"maze"`
	PathFound bool         `json:"path_found"`
}
