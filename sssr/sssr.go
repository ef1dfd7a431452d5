package sssr

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
)

// SSSR returns exactly n smallest rings of adj in canonical form, ordered
// by size. n is normally CircuitRank(adj); n == 0 yields no rings.
//
// ErrRingCountNotReached (wrapped with a stack trace) signals an internal
// inconsistency: fewer than n independent rings were found.
func SSSR(adj Adjacency, n int) ([]Ring, error) {
	switch {
	case n < 0:
		return nil, errors.WithStack(ErrBadRingCount)
	case n == 0:
		return nil, nil
	}
	g := skin(adj)
	if len(g) == 0 {
		return nil, errors.Wrapf(ErrRingCountNotReached, "no cyclic part, %d rings requested", n)
	}
	t := buildPID(terminatedPaths(g))
	rings, err := selectRings(t.candidates(), n)
	if err != nil {
		return nil, errors.Wrapf(err, "%d rings requested over %d atoms", n, len(g))
	}
	return rings, nil
}

// Components returns the connected components of adj, each sorted, in
// order of their smallest atom.
func Components(adj Adjacency) [][]int {
	seen := make(map[int]struct{}, len(adj))
	var out [][]int
	for _, start := range adj.Atoms() {
		if _, ok := seen[start]; ok {
			continue
		}
		seen[start] = struct{}{}
		comp := []int{start}
		q := linkedlistqueue.New()
		q.Enqueue(start)
		for !q.Empty() {
			v, _ := q.Dequeue()
			for _, m := range sortedKeys(adj[v.(int)]) {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				comp = append(comp, m)
				q.Enqueue(m)
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}
	return out
}

// CircuitRank returns edges - vertices + components, the number of rings
// in any cycle basis of adj.
func CircuitRank(adj Adjacency) int {
	return adj.EdgeCount() - len(adj) + len(Components(adj))
}
