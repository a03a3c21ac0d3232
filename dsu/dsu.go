// Package dsu implements a disjoint-set (union-find) data structure over
// integer indices, with path compression and union by rank. The Kruskal
// maze generator uses it to reject wall removals that would close a cycle.
package dsu

// DSU partitions the indices 0..size-1 into disjoint sets.
type DSU struct {
	parent []int
	rank   []int
}

// New creates a DSU where every index is its own singleton set.
func New(size int) *DSU {
	d := &DSU{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative (root) of the set containing x,
// compressing the walked path so later queries are nearly O(1).
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // halve the path
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b, attaching the lower-ranked root
// under the higher-ranked one. It returns false when a and b were already
// in the same set, which is the cycle test Kruskal relies on.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	return true
}
