// Package sssr computes the Smallest Set of Smallest Rings of an arbitrary
// undirected graph: a minimal-length cycle basis whose size equals the
// circuit rank (edges - vertices + connected components).
//
// The implementation follows the path-included distance matrix idea of
// Lee, Kang, Cho and No (PNAS 2009, doi:10.1073/pnas.0813040106):
//
//  1. Skin the graph: drop self-loops, collapse parallel edges and strip
//     atoms that cannot lie on a cycle.
//  2. Breadth-first growth of path fronts. Every time two fronts meet (even
//     ring) or a front closes on itself (odd ring) the path is recorded.
//  3. Fold the recorded paths into two witness tables: pid1 (shortest
//     paths between a pair) and pid2 (paths exactly one edge longer),
//     relaxing every pair through every intermediate atom.
//  4. Build candidate rings from two shortest witnesses (even) or a
//     shortest plus a second-shortest witness (odd), keeping simple cycles.
//  5. Select greedily by size. Rings whose atoms are already covered are
//     held back; if the greedy pass falls short (cages, bridged systems),
//     held rings are re-tested against the contours of merged accepted
//     rings ("ring scissoring") and promoted when they are not a
//     combination of them.
//
// Rings are returned in canonical form (see Canonical).
//
// Complexity: O(V^3) for the relaxation over branch atoms, which in
// molecular graphs is a small subset of V.
//
// Example:
//
//	adj := sssr.Adjacency{}
//	for i := 1; i <= 6; i++ {
//		adj.AddEdge(i, i%6+1)
//	}
//	rings, err := sssr.SSSR(adj, sssr.CircuitRank(adj))
package sssr
