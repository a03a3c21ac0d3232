package solver

import (
	"container/heap"

	"github.com/amazing-mazes/maze-api/maze"
)

// node is a frontier entry: a flat cell index, its accumulated step count
// and estimated total cost, and an insertion sequence number that breaks
// ties between equal-cost entries.
type node struct {
	idx int
	g   int
	f   int
	seq int
}

// frontier is a binary min-heap over f, then insertion order.
type frontier []node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	popped := old[n-1]
	*f = old[:n-1]
	return popped
}

// solveAStar runs A* from the resolved start with the Manhattan heuristic,
// which never overestimates remaining distance on a unit-cost 4-connected
// grid, so the first pop of the goal yields a shortest route.
//
// Stale frontier entries are invalidated lazily: a popped node whose cell
// was already finalized is discarded instead of being removed from the
// heap eagerly. On success every finalized cell still holding Empty is
// marked Seen before the route is overwritten with Path; on failure the
// grid is left untouched.
func solveAStar(g maze.Grid) (bool, error) {
	ep, err := resolveEndpoints(g)
	if err != nil {
		return false, err
	}

	h, w := g.Height(), g.Width()
	manhattan := func(r, c int) int {
		return abs(r-ep.goal.Row) + abs(c-ep.goal.Col)
	}

	gScore := make([]int, h*w)
	parent := make([]int, h*w)
	for i := range gScore {
		gScore[i] = -1
		parent[i] = -1
	}
	closed := make([]bool, h*w)

	startIdx := ep.start.Row*w + ep.start.Col
	goalIdx := ep.goal.Row*w + ep.goal.Col

	open := &frontier{{idx: startIdx, g: 0, f: manhattan(ep.start.Row, ep.start.Col), seq: 0}}
	heap.Init(open)
	gScore[startIdx] = 0
	seq := 1

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		if cur.idx == goalIdx {
			for i, done := range closed {
				if done && g[i/w][i%w] == maze.Empty {
					g[i/w][i%w] = maze.Seen
				}
			}
			markSolution(g, parent, ep)
			return true, nil
		}

		r, c := cur.idx/w, cur.idx%w
		for _, d := range steps {
			nr, nc := r+d[0], c+d[1]
			if !isEmpty(g, nr, nc) {
				continue
			}

			ni := nr*w + nc
			tentative := cur.g + 1
			if gScore[ni] != -1 && tentative >= gScore[ni] {
				continue
			}
			gScore[ni] = tentative
			parent[ni] = cur.idx
			heap.Push(open, node{idx: ni, g: tentative, f: tentative + manhattan(nr, nc), seq: seq})
			seq++
		}
	}

	return false, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
