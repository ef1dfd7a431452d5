// Package sssr: shared types and sentinel errors.
//
// Errors:
//
//	ErrRingCountNotReached - the selection and repair passes could not reach
//	                         the requested ring count. This is an internal
//	                         invariant violation, never a property of the input.
//	ErrBadRingCount        - a negative ring count was requested.
package sssr

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrRingCountNotReached indicates that the algorithm failed to produce
	// the requested number of rings. Valid connectivity graphs never trigger it.
	ErrRingCountNotReached = errors.New("sssr: ring count not reached")

	// ErrBadRingCount indicates a negative expected ring count.
	ErrBadRingCount = errors.New("sssr: negative ring count")
)

// Ring is an ordered cycle of atom ids. Consecutive ids, including the
// last/first pair, are bonded.
type Ring []int

// Contains reports whether the ring passes through atom n.
func (r Ring) Contains(n int) bool {
	for _, x := range r {
		if x == n {
			return true
		}
	}
	return false
}

// Equal reports whether two rings hold the same sequence.
func (r Ring) Equal(o Ring) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// key renders a ring for use as a map key.
func (r Ring) key() string {
	var b strings.Builder
	for i, n := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Adjacency is an undirected connectivity graph: atom id -> neighbor set.
// Bond orders are not part of it.
type Adjacency map[int]map[int]struct{}

// AddAtom makes sure n is present, even without neighbors.
func (a Adjacency) AddAtom(n int) {
	if _, ok := a[n]; !ok {
		a[n] = make(map[int]struct{})
	}
}

// AddEdge inserts the undirected edge n-m, creating both atoms as needed.
func (a Adjacency) AddEdge(n, m int) {
	a.AddAtom(n)
	a.AddAtom(m)
	a[n][m] = struct{}{}
	a[m][n] = struct{}{}
}

// RemoveAtom deletes n together with every edge touching it.
func (a Adjacency) RemoveAtom(n int) {
	for m := range a[n] {
		delete(a[m], n)
	}
	delete(a, n)
}

// EdgeCount returns the number of undirected edges, ignoring self-loops.
func (a Adjacency) EdgeCount() int {
	total := 0
	for n, ms := range a {
		for m := range ms {
			if m != n {
				total++
			}
		}
	}
	return total / 2
}

// Clone returns a deep copy.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for n, ms := range a {
		cp := make(map[int]struct{}, len(ms))
		for m := range ms {
			cp[m] = struct{}{}
		}
		out[n] = cp
	}
	return out
}

// Atoms returns the atom ids in ascending order.
func (a Adjacency) Atoms() []int {
	return sortedKeys(a)
}

func sortedKeys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
