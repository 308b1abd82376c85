package memo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/dfs"
)

var (
	// ErrTooManyRequired indicates more required nodes than fit in a mask.
	ErrTooManyRequired = errors.New("memo: at most 63 distinct required nodes are supported")
	// ErrBadGraphLine indicates an adjacency line without a "name:" prefix.
	ErrBadGraphLine = errors.New("memo: malformed adjacency line")
)

// Digraph is a directed graph keyed by node name.
type Digraph map[string][]string

// ParseDigraph reads lines of the form "node: a b c".
// Blank lines are skipped.
func ParseDigraph(text string) (Digraph, error) {
	g := Digraph{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadGraphLine, i+1, line)
		}
		g[strings.TrimSpace(name)] = strings.Fields(rest)
	}
	return g, nil
}

// CountPaths counts simple paths from -> to. A node is never revisited
// within one path. No memoization is possible here because the visited set
// is part of the state.
func CountPaths(g Digraph, from, to string) int64 {
	visited := map[string]bool{}
	var walk func(n string) int64
	walk = func(n string) int64 {
		if n == to {
			return 1
		}
		if visited[n] {
			return 0
		}
		visited[n] = true
		var total int64
		for _, m := range g[n] {
			total += walk(m)
		}
		visited[n] = false
		return total
	}
	return walk(from)
}

// pathKey is a (node, seen-required-mask) subproblem.
type pathKey struct {
	node string
	mask uint64
}

// CountPathsVia counts paths from -> to that pass through every node in
// required at least once. Repeated names in required count once.
//
// The part of the graph reachable from "from" without passing through "to"
// must be acyclic; otherwise the error wraps dfs.ErrCycleDetected.
//
// The seen-mask is updated as soon as a node is entered, before the target
// check and before the cache lookup, and it is part of the cache key.
func CountPathsVia(g Digraph, from, to string, required []string) (int64, error) {
	bit := make(map[string]uint64, len(required))
	var full uint64
	for _, r := range required {
		if _, dup := bit[r]; dup {
			continue
		}
		if len(bit) == 63 {
			return 0, ErrTooManyRequired
		}
		b := uint64(1) << uint(len(bit))
		bit[r] = b
		full |= b
	}
	stopAtTarget := func(n string) []string {
		if n == to {
			return nil
		}
		return g[n]
	}
	if _, err := dfs.TopologicalSort([]string{from}, stopAtTarget); err != nil {
		return 0, fmt.Errorf("memo: counting %s -> %s: %w", from, to, err)
	}
	cache := NewTable[pathKey, int64]()
	return countVia(g, from, to, 0, full, bit, cache), nil
}

func countVia(g Digraph, node, to string, mask, full uint64, bit map[string]uint64, cache *Table[pathKey, int64]) int64 {
	mask |= bit[node]
	if node == to {
		if mask == full {
			return 1
		}
		return 0
	}
	key := pathKey{node: node, mask: mask}
	if v, ok := cache.Get(key); ok {
		return v
	}
	var total int64
	for _, m := range g[node] {
		total += countVia(g, m, to, mask, full, bit, cache)
	}
	return cache.Put(key, total)
}
