package sssr

import "sort"

// unreachable is the distance between atoms with no known witness path.
const unreachable = 1_000_000_000

// stepKey identifies a witness path by its first and last inner steps.
// Two witnesses with the same key would close into a degenerate ring.
type stepKey struct{ first, last int }

// witnesses holds paths between one ordered pair of atoms.
type witnesses map[stepKey][]int

// paths returns the stored paths ordered by key.
func (w witnesses) paths() [][]int {
	keys := make([]stepKey, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].first != keys[j].first {
			return keys[i].first < keys[j].first
		}
		return keys[i].last < keys[j].last
	})
	out := make([][]int, len(keys))
	for i, k := range keys {
		out[i] = w[k]
	}
	return out
}

// pidTable is a path-included distance matrix: i -> j -> witnesses.
type pidTable map[int]map[int]witnesses

func (t pidTable) get(i, j int) witnesses {
	return t[i][j]
}

func (t pidTable) put(i, j int, w witnesses) {
	row, ok := t[i]
	if !ok {
		row = make(map[int]witnesses)
		t[i] = row
	}
	row[j] = w
}

func (t pidTable) merge(i, j int, w witnesses) {
	if len(w) == 0 {
		return
	}
	cur := t.get(i, j)
	if cur == nil {
		cur = make(witnesses, len(w))
		t.put(i, j, cur)
	}
	for k, p := range w {
		cur[k] = p
	}
}

// distances is the symmetric length table of pid1 witnesses.
type distances map[int]map[int]int

func (d distances) at(i, j int) int {
	if v, ok := d[i][j]; ok {
		return v
	}
	return unreachable
}

func (d distances) set(i, j, v int) {
	row, ok := d[i]
	if !ok {
		row = make(map[int]int)
		d[i] = row
	}
	row[j] = v
}

// pid bundles the witness tables built from terminated paths.
type pid struct {
	p1, p2 pidTable
	dist   distances
}

// buildPID folds terminated paths into pid1/pid2 and relaxes every pair
// through every intermediate atom.
//
// Stage 1: seed the tables, shortest paths first.
// Stage 2: for each k, i, j decide whether routing i->k->j yields a new
// shortest path (demoting the old one when it is exactly one longer), an
// equal alternative, or a second-shortest witness.
func buildPID(paths [][]int) *pid {
	t := &pid{p1: pidTable{}, p2: pidTable{}, dist: distances{}}

	// Stage 1
	chains := append([][]int(nil), paths...)
	sort.SliceStable(chains, func(a, b int) bool { return len(chains[a]) < len(chains[b]) })
	for _, c := range chains {
		d := len(c) - 1
		n, m := c[0], c[len(c)-1]
		nn, mm := c[1], c[len(c)-2]
		back := reversed(c)
		if cur, ok := t.dist[n][m]; ok && cur != d {
			t.p2.merge(n, m, witnesses{{nn, mm}: c})
			t.p2.merge(m, n, witnesses{{mm, nn}: back})
			continue
		}
		t.p1.merge(n, m, witnesses{{nn, mm}: c})
		t.p1.merge(m, n, witnesses{{mm, nn}: back})
		t.dist.set(n, m, d)
		t.dist.set(m, n, d)
	}

	// Stage 2
	nodes := sortedKeys(t.p1)
	for _, k := range nodes {
		for _, i := range nodes {
			if i == k {
				continue
			}
			dik := t.dist.at(i, k)
			for _, j := range nodes {
				if j == k || j == i {
					continue
				}
				ij := t.dist.at(i, j)
				ikj := dik + t.dist.at(k, j)
				switch {
				case ij-ikj == 1:
					t.p2.put(i, j, t.p1.get(i, j))
					t.p1.put(i, j, through(t.p1.get(i, k), t.p1.get(k, j)))
					t.dist.set(i, j, ikj)
				case ij > ikj:
					t.p2.put(i, j, nil)
					t.p1.put(i, j, through(t.p1.get(i, k), t.p1.get(k, j)))
					t.dist.set(i, j, ikj)
				case ij == ikj:
					t.p1.merge(i, j, through(t.p1.get(i, k), t.p1.get(k, j)))
				case ikj-ij == 1:
					t.p2.merge(i, j, through(t.p1.get(i, k), t.p1.get(k, j)))
				}
			}
		}
	}
	return t
}

// through concatenates every i->k witness with every k->j witness.
func through(ik, kj witnesses) witnesses {
	out := make(witnesses, len(ik)*len(kj))
	for _, a := range ik.paths() {
		for _, b := range kj.paths() {
			p := make([]int, 0, len(a)+len(b)-1)
			p = append(p, a[:len(a)-1]...)
			p = append(p, b...)
			out[stepKey{p[1], p[len(p)-2]}] = p
		}
	}
	return out
}

// candidate is a group of rings of one size derived from one atom pair.
type candidate struct {
	size   int
	p1, p2 [][]int
}

// candidates builds canonical simple rings from the witness tables, in
// ascending size order.
func (t *pid) candidates() []Ring {
	var groups []candidate
	seen := make(map[int]struct{})
	for _, i := range sortedKeys(t.p1) {
		seen[i] = struct{}{}
		for _, j := range sortedKeys(t.p1[i]) {
			if _, ok := seen[j]; ok {
				continue
			}
			p1 := t.p1.get(i, j).paths()
			p2 := t.p2.get(i, j).paths()
			if len(p1) == 0 {
				continue
			}
			d := t.dist.at(i, j) * 2
			switch {
			case len(p1) == 1:
				if len(p2) == 0 {
					continue
				}
				groups = append(groups, candidate{d + 1, p1, p2})
			case len(p2) == 0:
				groups = append(groups, candidate{d, p1, nil})
			default:
				groups = append(groups, candidate{d, p1, nil}, candidate{d + 1, p1, p2})
			}
		}
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].size < groups[b].size })

	var out []Ring
	emit := func(a, b []int) {
		c := join(a, reversed(b))
		if simple(c) {
			out = append(out, Canonical(c))
		}
	}
	for _, g := range groups {
		if g.size%2 == 1 {
			for _, a := range g.p1 {
				for _, b := range g.p2 {
					emit(a, b)
				}
			}
			continue
		}
		for x := 0; x < len(g.p1); x++ {
			for y := x + 1; y < len(g.p1); y++ {
				emit(g.p1[x], g.p1[y])
			}
		}
	}
	return out
}
