package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	dmn "github.com/amazing-mazes/maze-api/domain"
	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/render"
	"github.com/amazing-mazes/maze-api/service/i"
	"github.com/amazing-mazes/maze-api/solver"
)

// MazeService orchestrates the maze lifecycle: carving through the
// generator, archiving to the repo, caching grid text for in-flight solves,
// and rendering. Solves on a stored maze run under a per-ID lock so
// concurrent requests never interleave read-solve-write cycles on the same
// grid; the solver itself owns the grid buffer exclusively for the
// duration of one call.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.GridCache
	logger i.Logger
}

// NewMazeService creates a MazeService with the given archive, cache and
// logger.
func NewMazeService(repo i.MazeRepo, cache i.GridCache, logger i.Logger) (i.MazeManager, error) {
	if repo == nil || cache == nil || logger == nil {
		return nil, fmt.Errorf("maze service requires a repo, a cache and a logger")
	}
	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// Generate carves a new maze and persists it. A nil seed falls back to a
// time-based one, so the call still succeeds without determinism.
func (s *MazeService) Generate(ctx context.Context, algorithm string, size int, seed *int64) (*dmn.Maze, error) {
	chosenSeed := generator.RandomSeed()
	if seed != nil {
		chosenSeed = *seed
	}

	grid, err := generator.Generate(generator.Algorithm(algorithm), size, chosenSeed)
	if err != nil {
		return nil, err
	}

	m := &dmn.Maze{
		ID:        uuid.New(),
		Size:      size,
		Algorithm: algorithm,
		Seed:      chosenSeed,
		CreatedAt: time.Now().UTC(),
	}
	m.SetGrid(grid)

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	// The cache is best effort; the archive is authoritative.
	if err := s.cache.Save(ctx, m.ID, m.GridText); err != nil {
		s.logger.Warning(fmt.Sprintf("Failed to cache maze %s: %v", m.ID, err))
	}

	s.logger.Info(fmt.Sprintf("Generated maze: ID=%s size=%d algorithm=%s seed=%d", m.ID, size, algorithm, chosenSeed))
	return m, nil
}

// ByID retrieves a maze record. The grid text comes from the cache when
// present, the archived copy otherwise.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	m, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if text, cerr := s.cache.Get(ctx, id); cerr == nil {
		m.GridText = text
	}
	return m, nil
}

// Solve runs the chosen solver over the stored grid under the per-maze
// lock and persists the marked result. The boolean reports whether a route
// was found; a route-less maze is a normal outcome, not an error.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, algorithm string) (*dmn.Maze, bool, error) {
	var m *dmn.Maze
	var solved bool

	err := s.cache.WithLock(id, func() error {
		var err error
		m, err = s.ByID(ctx, id)
		if err != nil {
			return err
		}

		grid, err := m.Grid()
		if err != nil {
			return err
		}

		solved, err = solver.Solve(solver.Algorithm(algorithm), grid)
		if err != nil {
			return err
		}

		m.SetGrid(grid)
		m.Solved = solved
		m.SolvedWith = algorithm

		if err := s.repo.Save(ctx, m); err != nil {
			return err
		}
		if err := s.cache.Save(ctx, m.ID, m.GridText); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to cache solved maze %s: %v", m.ID, err))
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Info(fmt.Sprintf("Solved maze: ID=%s algorithm=%s found=%t", id, algorithm, solved))
	return m, solved, nil
}

// Render rasterizes the stored grid to a PNG.
func (s *MazeService) Render(ctx context.Context, id uuid.UUID, cellSize int) ([]byte, error) {
	m, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	grid, err := m.Grid()
	if err != nil {
		return nil, err
	}
	return render.PNG(grid, cellSize)
}
