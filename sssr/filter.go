package sssr

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

// selectRings picks n rings out of size-ordered candidates.
//
// The greedy pass accepts a ring when it brings at least one new atom and
// holds it otherwise. Cages and bridged systems leave the greedy pass short;
// held rings are then promoted unless they are reproducible as contours of
// already accepted rings or are sums of them in the cycle space.
func selectRings(cands []Ring, n int) ([]Ring, error) {
	if len(cands) == 0 {
		return nil, errors.WithStack(ErrRingCountNotReached)
	}
	first := cands[0]
	if n == 1 {
		return []Ring{first}, nil
	}

	seen := map[string]Ring{first.key(): first}
	covered := make(map[int]struct{})
	for _, a := range first {
		covered[a] = struct{}{}
	}
	basis := []Ring{first}
	var hold []Ring
	for _, c := range cands[1:] {
		k := c.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = c
		if coveredBy(c, covered) {
			hold = append(hold, c)
			continue
		}
		for _, a := range c {
			covered[a] = struct{}{}
		}
		basis = append(basis, c)
		if len(basis) == n {
			return basis, nil
		}
	}

	// repair pass
	adj := make(map[string]map[int][]int, len(seen))
	for k, r := range seen {
		adj[k] = ringAdjacency(r)
	}
	contours := connectedRings(basis, adj)
	sp := newSpan()
	for _, r := range basis {
		sp.add(r)
	}
	for _, c := range hold {
		if containsRing(contours, c) || isCondensed(c, basis, adj) || !sp.add(c) {
			continue
		}
		contours = connectedRings(append([]Ring{c}, contours...), adj)
		basis = append(basis, c)
		if len(basis) == n {
			sort.SliceStable(basis, func(a, b int) bool { return len(basis[a]) < len(basis[b]) })
			return basis, nil
		}
	}
	return nil, errors.WithStack(ErrRingCountNotReached)
}

func coveredBy(r Ring, atoms map[int]struct{}) bool {
	for _, a := range r {
		if _, ok := atoms[a]; !ok {
			return false
		}
	}
	return true
}

func containsRing(rings []Ring, r Ring) bool {
	for _, x := range rings {
		if x.Equal(r) {
			return true
		}
	}
	return false
}

// common returns the sorted atoms shared by two ring adjacencies.
func common(a, b map[int][]int) []int {
	var out []int
	for n := range a {
		if _, ok := b[n]; ok {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// scissorFrame is one level of the depth-limited walk over neighbor rings.
type scissorFrame struct {
	ring     Ring
	adj      map[int][]int
	depth    int
	children []int
	next     int
	seen     map[int]struct{}
}

// isCondensed reports whether c is the outer contour of a chain of accepted
// rings that each share more than one atom with it. For
//
//	1--2--3
//	|  |  |
//	4--5--6
//
// (1,2,3,6,5,4) is the combination of (1,2,5,4) and (2,3,6,5).
func isCondensed(c Ring, basis []Ring, adj map[string]map[int][]int) bool {
	ck := adj[c.key()]
	var rings []Ring
	for _, x := range basis {
		if len(common(adj[x.key()], ck)) > 1 {
			rings = append(rings, x)
		}
	}
	if len(rings) < 2 {
		return false
	}
	links := make([][]int, len(rings))
	for i := range rings {
		for j := i + 1; j < len(rings); j++ {
			if len(common(adj[rings[i].key()], adj[rings[j].key()])) > 1 {
				links[i] = append(links[i], j)
				links[j] = append(links[j], i)
			}
		}
	}

	limit := len(rings) - 1
	for start := range rings {
		if len(links[start]) == 0 {
			continue
		}
		stack := arraystack.New()
		stack.Push(&scissorFrame{
			ring:     rings[start],
			adj:      adj[rings[start].key()],
			depth:    limit,
			children: links[start],
			seen:     map[int]struct{}{start: {}},
		})
		for !stack.Empty() {
			top, _ := stack.Peek()
			f := top.(*scissorFrame)
			if f.next == len(f.children) {
				stack.Pop()
				continue
			}
			child := f.children[f.next]
			f.next++
			if _, ok := f.seen[child]; ok {
				continue
			}
			childRing := rings[child]
			shared := common(f.adj, adj[childRing.key()])
			var mc Ring
			switch {
			case len(shared) > 2:
				// keep only the two terminal atoms of the shared chain
				var term []int
				inner := make(map[int]struct{})
				for _, a := range shared {
					inner[a] = struct{}{}
				}
				for _, a := range shared {
					cnt := 0
					for _, b := range f.adj[a] {
						if _, ok := inner[b]; ok {
							cnt++
						}
					}
					if cnt == 1 {
						term = append(term, a)
					}
				}
				if len(term) != 2 {
					continue
				}
				delete(inner, term[0])
				delete(inner, term[1])
				n, m := term[0], term[1]
				mc = Canonical(join(scissors(without(f.ring, inner), n, m), scissors(without(childRing, inner), m, n)))
			case len(shared) == 2:
				n, m := shared[0], shared[1]
				mc = Canonical(join(scissors(f.ring, n, m), scissors(childRing, m, n)))
			default:
				continue // point contact
			}
			if mc.Equal(c) {
				return true
			}
			if f.depth > 0 && len(mc) > 2 && len(mc) <= len(c)+1 {
				seen := make(map[int]struct{}, len(f.seen)+1)
				for k := range f.seen {
					seen[k] = struct{}{}
				}
				seen[child] = struct{}{}
				stack.Push(&scissorFrame{
					ring:     mc,
					adj:      ringAdjacency(mc),
					depth:    f.depth - 1,
					children: links[child],
					seen:     seen,
				})
			}
		}
	}
	return false
}

func without(r Ring, drop map[int]struct{}) Ring {
	out := make(Ring, 0, len(r))
	for _, a := range r {
		if _, ok := drop[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}

// uniqueChord returns the part of r outside the shared atoms, bounded by
// the two terminal shared atoms. It reports false when the shared atoms
// are not one contiguous run of r. A ring made only of shared atoms yields
// an empty chord.
func uniqueChord(r Ring, shared map[int]struct{}) (Ring, bool) {
	lc := len(shared)
	if len(r) == lc {
		return Ring{}, coveredBy(r, shared)
	}
	if len(r) < lc {
		return nil, false
	}
	rot := append(Ring(nil), r...)
	for i := 0; i < len(r); i++ {
		if coveredBy(rot[:lc], shared) {
			out := append(Ring(nil), rot[lc-1:]...)
			return append(out, rot[0]), true
		}
		rot = append(rot[1:], rot[0])
	}
	return nil, false
}

// connectedRings merges rings that share exactly one bond or one chord
// into larger contours. Merged contours are registered in adj.
func connectedRings(in []Ring, adj map[string]map[int][]int) []Ring {
	rings := append([]Ring(nil), in...)
	var out []Ring
	for i := range rings {
		c := rings[i]
		ck := adj[c.key()]
		merged := false
		for j := i + 1; j < len(rings) && !merged; j++ {
			r := rings[j]
			rk := adj[r.key()]
			shared := common(ck, rk)
			switch {
			case len(shared) == 2:
				n, m := shared[0], shared[1]
				if !hasLink(ck, n, m) || !hasLink(rk, n, m) {
					continue
				}
				c = Canonical(join(scissors(c, n, m), scissors(r, m, n)))
			case len(shared) > 2:
				set := make(map[int]struct{}, len(shared))
				for _, a := range shared {
					set[a] = struct{}{}
				}
				cc, ok := uniqueChord(c, set)
				if !ok {
					continue
				}
				rc, ok := uniqueChord(r, set)
				if !ok {
					continue
				}
				switch {
				case len(cc) > 0 && len(rc) > 0:
					if rc[0] == cc[0] {
						rc = reversed(rc)
					}
					c = Canonical(join(cc, rc))
				case len(cc) > 0:
					c = Canonical(cc)
				case len(rc) > 0:
					c = Canonical(rc)
				default:
					continue
				}
			default:
				continue
			}
			ck = ringAdjacency(c)
			rings[j] = c
			adj[c.key()] = ck
			merged = true
		}
		if !merged {
			out = append(out, c)
		}
	}
	return out
}

func hasLink(adj map[int][]int, n, m int) bool {
	for _, x := range adj[n] {
		if x == m {
			return true
		}
	}
	return false
}
