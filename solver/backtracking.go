package solver

import "github.com/amazing-mazes/maze-api/maze"

// frame is one suspended level of the depth-first descent: a position plus
// the index of the next direction to try from it.
type frame struct {
	pos  maze.Position
	next int
}

// solveBacktracking runs short-circuiting depth-first search from the
// resolved start. The recursion is flattened onto an explicit frame stack
// because the descent depth scales with maze area, not side length, and
// must not depend on call-stack headroom.
//
// Every cell reached during the search is converted to Seen afterwards,
// whether or not the goal was found. On success the parent chain from goal
// back to start is overwritten with Path.
func solveBacktracking(g maze.Grid) (bool, error) {
	ep, err := resolveEndpoints(g)
	if err != nil {
		return false, err
	}

	h, w := g.Height(), g.Width()
	if !isEmpty(g, ep.start.Row, ep.start.Col) {
		return false, nil
	}

	visited := make([]bool, h*w)
	parent := make([]int, h*w)
	for i := range parent {
		parent[i] = -1
	}

	stack := make([]frame, 0, h*w)
	stack = append(stack, frame{pos: ep.start})
	visited[ep.start.Row*w+ep.start.Col] = true

	found := false
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == ep.goal {
			found = true
			break
		}

		advanced := false
		for top.next < len(steps) {
			d := steps[top.next]
			top.next++

			nr, nc := top.pos.Row+d[0], top.pos.Col+d[1]
			if !isEmpty(g, nr, nc) || visited[nr*w+nc] {
				continue
			}
			visited[nr*w+nc] = true
			parent[nr*w+nc] = top.pos.Row*w + top.pos.Col
			stack = append(stack, frame{pos: maze.Position{Row: nr, Col: nc}})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	// Explored cells become Seen regardless of the outcome.
	for i, wasVisited := range visited {
		if wasVisited && g[i/w][i%w] == maze.Empty {
			g[i/w][i%w] = maze.Seen
		}
	}

	if !found {
		return false, nil
	}
	markSolution(g, parent, ep)
	return true, nil
}
