package query

import (
	"iter"
	"slices"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/thiele/core"
)

// Query is a pattern graph. Build it with AddAtom and AddBond; it is
// read-only once matching starts and safe to share between goroutines.
type Query struct {
	atoms map[int]AtomQuery
	bonds map[int]map[int][]core.BondOrder
}

// New creates an empty Query.
func New() *Query {
	return &Query{
		atoms: make(map[int]AtomQuery),
		bonds: make(map[int]map[int][]core.BondOrder),
	}
}

// AddAtom registers query atom id.
func (q *Query) AddAtom(id int, a AtomQuery) error {
	if _, ok := q.atoms[id]; ok {
		return ErrDuplicateAtom
	}
	q.atoms[id] = a
	q.bonds[id] = make(map[int][]core.BondOrder)
	return nil
}

// AddBond connects query atoms n and m with a bond matching any of orders.
func (q *Query) AddBond(n, m int, orders ...core.BondOrder) error {
	if len(orders) == 0 {
		return ErrNoOrders
	}
	if _, ok := q.atoms[n]; !ok {
		return ErrAtomNotFound
	}
	if _, ok := q.atoms[m]; !ok {
		return ErrAtomNotFound
	}
	if _, ok := q.bonds[n][m]; ok {
		return ErrBondExists
	}
	q.bonds[n][m] = append([]core.BondOrder(nil), orders...)
	q.bonds[m][n] = q.bonds[n][m]
	return nil
}

// Size returns the number of query atoms.
func (q *Query) Size() int { return len(q.atoms) }

// matcher holds the state of one FindMappings run.
type matcher struct {
	q       *Query
	mol     *core.Molecule
	scope   map[int]struct{}
	sizes   map[int][]int
	order   []int       // query atoms in visiting order
	anchor  map[int]int // query atom -> earlier mapped neighbor, absent for component roots
	mapping Mapping
	used    map[int]struct{}
}

// FindMappings lazily enumerates every mapping of q onto m. The sequence
// yields a single error when ring sizes are required but ring perception
// fails. Each yielded Mapping is a fresh map.
func (q *Query) FindMappings(m *core.Molecule, opts ...Option) iter.Seq2[Mapping, error] {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return func(yield func(Mapping, error) bool) {
		if len(q.atoms) == 0 {
			return
		}
		w := &matcher{
			q:       q,
			mol:     m,
			scope:   o.Scope,
			mapping: make(Mapping, len(q.atoms)),
			used:    make(map[int]struct{}, len(q.atoms)),
		}
		if q.needsRings() {
			sizes, err := m.AtomRingSizes()
			if err != nil {
				yield(nil, errors.Wrap(err, "query: ring sizes"))
				return
			}
			w.sizes = sizes
		}
		w.plan()
		w.extend(0, func(mp Mapping) bool { return yield(mp, nil) })
	}
}

func (q *Query) needsRings() bool {
	for _, a := range q.atoms {
		if len(a.RingSizes) > 0 {
			return true
		}
	}
	return false
}

// plan orders query atoms breadth-first per component, smallest id first.
func (w *matcher) plan() {
	ids := make([]int, 0, len(w.q.atoms))
	for id := range w.q.atoms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	w.anchor = make(map[int]int, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, root := range ids {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		queue := []int{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			w.order = append(w.order, n)
			next := make([]int, 0, len(w.q.bonds[n]))
			for x := range w.q.bonds[n] {
				next = append(next, x)
			}
			sort.Ints(next)
			for _, x := range next {
				if _, ok := seen[x]; ok {
					continue
				}
				seen[x] = struct{}{}
				w.anchor[x] = n
				queue = append(queue, x)
			}
		}
	}
}

// extend maps w.order[depth] and recurses; it returns false once the
// consumer stopped the iteration.
func (w *matcher) extend(depth int, yield func(Mapping) bool) bool {
	if depth == len(w.order) {
		out := make(Mapping, len(w.mapping))
		for k, v := range w.mapping {
			out[k] = v
		}
		return yield(out)
	}
	qn := w.order[depth]
	var candidates []int
	if p, ok := w.anchor[qn]; ok {
		candidates = w.mol.Neighbors(w.mapping[p])
	} else {
		candidates = w.mol.Atoms()
	}
	for _, n := range candidates {
		if !w.accepts(qn, n) {
			continue
		}
		w.mapping[qn] = n
		w.used[n] = struct{}{}
		more := w.extend(depth+1, yield)
		delete(w.mapping, qn)
		delete(w.used, n)
		if !more {
			return false
		}
	}
	return true
}

// accepts checks atom constraints of qn on n and every bond from qn to an
// already mapped query atom.
func (w *matcher) accepts(qn, n int) bool {
	if _, ok := w.used[n]; ok {
		return false
	}
	if w.scope != nil {
		if _, ok := w.scope[n]; !ok {
			return false
		}
	}
	if !w.atomMatches(w.q.atoms[qn], n) {
		return false
	}
	for qx, orders := range w.q.bonds[qn] {
		x, ok := w.mapping[qx]
		if !ok {
			continue
		}
		o, ok := w.mol.BondOrder(n, x)
		if !ok || !slices.Contains(orders, o) {
			return false
		}
	}
	return true
}

func (w *matcher) atomMatches(a AtomQuery, n int) bool {
	atom, ok := w.mol.Atom(n)
	if !ok || atom.Charge != a.Charge || atom.Radical != a.Radical {
		return false
	}
	if len(a.Elements) > 0 && !slices.Contains(a.Elements, atom.Element) {
		return false
	}
	if len(a.Neighbors) > 0 && !slices.Contains(a.Neighbors, w.mol.Degree(n)) {
		return false
	}
	if len(a.Hybridization) > 0 && !slices.Contains(a.Hybridization, w.mol.Hybridization(n)) {
		return false
	}
	if len(a.Heteroatoms) > 0 && !slices.Contains(a.Heteroatoms, w.mol.Heteroatoms(n)) {
		return false
	}
	for _, s := range a.RingSizes {
		if !slices.Contains(w.sizes[n], s) {
			return false
		}
	}
	return true
}
