// Package cluster groups 3D points by repeatedly joining the closest
// remaining pair, the edge-streaming half of Kruskal's algorithm.
//
// All pairwise edges are generated once and sorted ascending by squared
// distance; unions are then applied in that order on a dsu.DSU. Running to
// a single component yields a minimum spanning tree; stopping early yields
// the forest after a fixed number of connection attempts.
package cluster

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridsearch/dsu"
	"github.com/katalvlaran/gridsearch/vec"
)

// ErrNegativeAttempts indicates a negative attempt budget.
var ErrNegativeAttempts = errors.New("cluster: attempts must be non-negative")

// Pair is an undirected edge between point ids A < B with squared distance Dist.
type Pair struct {
	A, B int
	Dist int64
}

// AllPairs returns every pair of points sorted by ascending squared
// distance. Ties keep (A, B) generation order, so results are deterministic.
//
// Complexity: O(n² log n) time, O(n²) memory.
func AllPairs(points []vec.Point3) []Pair {
	n := len(points)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{A: i, B: j, Dist: points[i].DistSq(points[j])})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Dist < pairs[j].Dist })
	return pairs
}

// ConnectN applies the first attempts pairs to a fresh forest of n points.
// Attempts on already-joined pairs still count toward the limit.
func ConnectN(n int, pairs []Pair, attempts int) (*dsu.DSU, error) {
	if attempts < 0 {
		return nil, ErrNegativeAttempts
	}
	d := dsu.New(n)
	for i := 0; i < attempts && i < len(pairs); i++ {
		d.Union(pairs[i].A, pairs[i].B)
	}
	return d, nil
}

// ConnectAll unions pairs in order until one component remains and returns
// the pair that completed it. ok is false when n < 2 or the pairs never join
// everything.
func ConnectAll(n int, pairs []Pair) (last Pair, ok bool) {
	if n < 2 {
		return Pair{}, false
	}
	d := dsu.New(n)
	for _, p := range pairs {
		if !d.Union(p.A, p.B) {
			continue
		}
		if d.Count() == 1 {
			return p, true
		}
	}
	return Pair{}, false
}

// TopSizes returns the k largest component sizes in descending order.
// Fewer than k are returned when the forest has fewer components; k <= 0
// returns none.
func TopSizes(d *dsu.DSU, k int) []int {
	k = max(k, 0)
	sizes := d.Sizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if k < len(sizes) {
		sizes = sizes[:k]
	}
	return sizes
}
