package sssr

import "sort"

// skin returns a simple copy of adj without self-loops and without atoms
// that cannot lie on a cycle (repeatedly stripped terminal atoms).
func skin(adj Adjacency) Adjacency {
	g := make(Adjacency, len(adj))
	for n, ms := range adj {
		for m := range ms {
			if m != n {
				g.AddEdge(n, m)
			}
		}
	}
	for {
		var terminal []int
		for n, ms := range g {
			if len(ms) < 2 {
				terminal = append(terminal, n)
			}
		}
		if len(terminal) == 0 {
			return g
		}
		for _, n := range terminal {
			g.RemoveAtom(n)
		}
	}
}

// front is an insertion-ordered map of growing paths keyed by their tail atom.
type front struct {
	order []int
	paths map[int][]int
}

func newFront() *front {
	return &front{paths: make(map[int][]int)}
}

func (f *front) set(n int, p []int) {
	if _, ok := f.paths[n]; !ok {
		f.order = append(f.order, n)
	}
	f.paths[n] = p
}

func (f *front) get(n int) ([]int, bool) {
	p, ok := f.paths[n]
	return p, ok
}

func (f *front) has(n int) bool {
	_, ok := f.paths[n]
	return ok
}

func (f *front) remove(n int) {
	if _, ok := f.paths[n]; !ok {
		return
	}
	delete(f.paths, n)
	for i, x := range f.order {
		if x == n {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

func (f *front) empty() bool {
	return len(f.paths) == 0
}

// terminatedPaths grows breadth-first path fronts over a skinned graph and
// records every path that ends where two fronts meet or a front closes.
// Paths only start and end at branch or meeting atoms, so the recorded set
// is the raw material for all-pairs witness folding.
func terminatedPaths(g Adjacency) [][]int {
	unvisited := make(map[int]struct{}, len(g))
	for n := range g {
		unvisited[n] = struct{}{}
	}
	var terminated [][]int
	record := func(p []int) {
		terminated = append(terminated, append([]int(nil), p...))
	}
	seed := func() *front {
		s := sortedKeys(unvisited)[0]
		delete(unvisited, s)
		next := newFront()
		for _, x := range sortedKeys(g[s]) {
			if _, ok := unvisited[x]; ok {
				next.set(x, []int{s, x})
			}
		}
		return next
	}

	next := seed()
	for {
		visited := make(map[int]struct{})
		odd := make(map[int]struct{})
		stack := next
		next = newFront()

		for _, tail := range stack.order {
			path := stack.paths[tail]
			var neighbors []int
			for m := range g[tail] {
				if _, ok := unvisited[m]; ok {
					neighbors = append(neighbors, m)
				}
			}
			sort.Ints(neighbors)
			visited[tail] = struct{}{}

			// grow extends p by n and classifies the result.
			grow := func(p []int, n int) {
				switch {
				case stack.has(n): // odd ring closure
					odd[tail] = struct{}{}
					record(p)
				default:
					if q, ok := next.get(n); ok { // even ring closure
						record(p)
						if len(q) != 1 { // not the bicycle marker
							record(q)
							next.set(n, []int{n})
						}
						return
					}
					next.set(n, p)
				}
			}

			switch {
			case len(neighbors) == 1:
				n := neighbors[0]
				if _, ok := odd[n]; ok {
					if len(path) != 1 {
						record(path) // second closure of an odd ring
					}
					next.set(n, []int{n})
					continue
				}
				grow(append(path[:len(path):len(path)], n), n)
			case len(neighbors) > 1:
				if len(path) != 1 {
					record(path)
				}
				for _, n := range neighbors {
					if _, ok := odd[n]; ok {
						if stack.has(n) {
							next.remove(n)
						} else {
							next.set(n, []int{n})
						}
						continue
					}
					grow([]int{tail, n}, n)
				}
			}
		}

		for n := range visited {
			delete(unvisited, n)
		}
		if len(unvisited) == 0 {
			return terminated
		}
		if next.empty() {
			next = seed()
		}
	}
}
