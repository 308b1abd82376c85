// Package dsu implements a disjoint-set forest (union-find) over dense
// integer ids 0..n-1, with union by size and full path compression.
//
// Invariants:
//   - Find always returns a root r with parent[r] == r.
//   - Union attaches the smaller component's root under the larger one's.
//   - The component sizes always sum to n.
//
// Complexity: near-constant amortized time per operation, O(n) memory.
package dsu

// DSU is a disjoint-set forest. The zero value is an empty forest.
type DSU struct {
	parent []int
	size   []int
	count  int
}

// New returns a forest of n singleton sets.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the root of x's set. Every node on the path from x is
// re-pointed directly at the root.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets of a and b. It returns false, and changes nothing,
// when they already share a root.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--
	return true
}

// Same reports whether a and b are in the same set.
func (d *DSU) Same(a, b int) bool { return d.Find(a) == d.Find(b) }

// Size returns the size of x's set.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Sizes returns the size of every set, one entry per root, in root order.
func (d *DSU) Sizes() []int {
	out := make([]int, 0, d.count)
	for i, p := range d.parent {
		if p == i {
			out = append(out, d.size[i])
		}
	}
	return out
}
