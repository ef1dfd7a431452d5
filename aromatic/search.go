package aromatic

import (
	"iter"
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/sssr"
)

// bondPatch is one bond order assignment produced by the search.
type bondPatch struct {
	n, m  int
	order core.BondOrder
}

// frame is one pending step of the walk: enter atom from prev through a
// bond of the given order. cut is the path length to restore when the
// branch stacked above this frame dies; -1 when nothing was forked here.
type frame struct {
	atom, prev int
	order      core.BondOrder
	cut        int
}

// branch is an ordered list of pending frames; the last one runs first.
type branch struct {
	frames []frame
}

func (b *branch) push(f frame) { b.frames = append(b.frames, f) }

func (b *branch) pop() frame {
	f := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	return f
}

// pushFront schedules f after every other pending frame of the branch.
func (b *branch) pushFront(f frame) {
	b.frames = append([]frame{f}, b.frames...)
}

// remove drops the pending step entering atom from prev as a single bond.
// It reports false when no such step is pending.
func (b *branch) remove(atom, prev int) bool {
	for i := len(b.frames) - 1; i >= 0; i-- {
		f := b.frames[i]
		if f.atom == atom && f.prev == prev && f.order == core.Single {
			b.frames = append(b.frames[:i], b.frames[i+1:]...)
			return true
		}
	}
	return false
}

func (b *branch) clone() *branch {
	return &branch{frames: append([]frame(nil), b.frames...)}
}

// component is one connected piece of a classified skeleton with
// neighbor lists in ascending order.
type component struct {
	rings    map[int][]int
	fixed    map[int]struct{}
	pyrroles map[int]struct{}
}

// components splits sk into connected pieces, ordered by smallest atom.
func (sk *skeleton) components() []*component {
	var out []*component
	for _, atoms := range sssr.Components(sk.rings) {
		c := &component{
			rings:    make(map[int][]int, len(atoms)),
			fixed:    make(map[int]struct{}),
			pyrroles: make(map[int]struct{}),
		}
		for _, n := range atoms {
			c.rings[n] = sortedSet(sk.rings[n])
			if sk.isFixed(n) {
				c.fixed[n] = struct{}{}
			}
			if sk.isPyrrole(n) {
				c.pyrroles[n] = struct{}{}
			}
		}
		out = append(out, c)
	}
	return out
}

// walk holds the state of one component search.
type walk struct {
	c      *component
	fixed  map[int]struct{}
	start  int
	size   int
	stack  *arraystack.Stack // of *branch
	path   []bondPatch
	onPath map[int]struct{}
}

// forms enumerates every Kekulé assignment of c. Each yielded slice is a
// fresh copy listing one order per skeleton bond. When the search space is
// exhausted without a single assignment the sequence ends with a
// *RingError wrapping ErrKekuleNotFound.
func (c *component) forms() iter.Seq2[[]bondPatch, error] {
	return func(yield func([]bondPatch, error) bool) {
		w := c.newWalk()
		found := false
		for w.next() {
			found = true
			if !yield(append([]bondPatch(nil), w.path...), nil) {
				return
			}
			w.drop()
		}
		if !found {
			yield(nil, &RingError{Atoms: sortedKeysOf(c.rings), Reason: "kekule form not found", kind: ErrKekuleNotFound})
		}
	}
}

// newWalk picks the start atom and seeds the branch stack. A settled atom
// is preferred; otherwise a non-fused, non-pyrrole atom; otherwise any
// non-fused atom. A fully fused cage starts from its smallest atom, which
// is then treated as settled with a double bond leaving it.
func (c *component) newWalk() *walk {
	w := &walk{
		c:      c,
		fixed:  make(map[int]struct{}, len(c.fixed)+1),
		stack:  arraystack.New(),
		onPath: make(map[int]struct{}),
	}
	for n := range c.fixed {
		w.fixed[n] = struct{}{}
	}
	for _, ms := range c.rings {
		w.size += len(ms)
	}
	w.size /= 2

	atoms := sortedKeysOf(c.rings)
	if len(c.fixed) > 0 {
		w.start = sortedSet(c.fixed)[0]
		w.stack.Push(&branch{frames: []frame{{atom: c.rings[w.start][0], prev: w.start, order: core.Single}}})
		return w
	}
	order := core.Single
	start, ok := firstAtom(atoms, func(n int) bool {
		_, p := c.pyrroles[n]
		return len(c.rings[n]) == 2 && !p
	})
	if !ok {
		start, ok = firstAtom(atoms, func(n int) bool { return len(c.rings[n]) == 2 })
	}
	if !ok {
		start = atoms[0]
		w.fixed[start] = struct{}{}
		order = core.Double
	}
	w.start = start
	for _, nb := range c.rings[start] {
		w.stack.Push(&branch{frames: []frame{{atom: nb, prev: start, order: order}}})
	}
	return w
}

func firstAtom(atoms []int, ok func(int) bool) (int, bool) {
	for _, n := range atoms {
		if ok(n) {
			return n, true
		}
	}
	return 0, false
}

func (w *walk) top() *branch {
	b, _ := w.stack.Peek()
	return b.(*branch)
}

func (w *walk) settled(n int) bool {
	_, ok := w.fixed[n]
	return ok
}

func (w *walk) pyrrole(n int) bool {
	_, ok := w.c.pyrroles[n]
	return ok
}

// drop discards the top branch and rolls the path back to the fork point
// recorded by the branch below.
func (w *walk) drop() {
	w.stack.Pop()
	if w.stack.Empty() {
		return
	}
	b := w.top()
	if len(b.frames) == 0 {
		return
	}
	if cut := b.frames[len(b.frames)-1].cut; cut >= 0 && cut < len(w.path) {
		w.path = w.path[:cut]
		w.onPath = make(map[int]struct{}, len(w.path))
		for _, p := range w.path {
			w.onPath[p.n] = struct{}{}
		}
	}
}

// next advances the search to the next complete assignment held in
// w.path. It returns false once every branch is exhausted.
func (w *walk) next() bool {
	for !w.stack.Empty() {
		b := w.top()
		if len(b.frames) == 0 {
			w.drop()
			continue
		}
		f := b.pop()
		w.path = append(w.path, bondPatch{n: f.atom, m: f.prev, order: f.order})
		w.onPath[f.atom] = struct{}{}
		if len(w.path) == w.size {
			return true
		}
		if f.atom != w.start {
			w.step(b, f)
		}
	}
	return false
}

// step expands the walk from f.atom, entered through f.order.
func (w *walk) step(b *branch, f frame) {
	atom, bond := f.atom, f.order
	var forward, closures []int
	loop := false
	for _, nb := range w.c.rings[atom] {
		switch {
		case nb == f.prev:
		case nb == w.start:
			loop = true
		default:
			if _, ok := w.onPath[nb]; ok {
				closures = append(closures, nb)
			} else {
				forward = append(forward, nb)
			}
		}
	}

	if loop {
		switch {
		case bond == core.Double:
			if len(w.fixed) == 0 {
				w.drop()
				return
			}
			b.pushFront(frame{atom: w.start, prev: atom, order: core.Single, cut: -1})
		case len(w.fixed) > 0:
			// the start keeps a single bond: something else must carry
			// the double bond of this atom
			if len(forward) == 0 && !w.settled(atom) && !w.pyrrole(atom) {
				w.drop()
				return
			}
			b.pushFront(frame{atom: w.start, prev: atom, order: core.Single, cut: -1})
		default:
			b.pushFront(frame{atom: w.start, prev: atom, order: core.Double, cut: -1})
			bond = core.Double
		}
	}

	switch {
	case bond == core.Double || w.settled(atom):
		// double in, single out
		for _, nb := range closures {
			if !w.close(b, atom, nb) {
				return
			}
		}
		for _, nb := range forward {
			b.push(frame{atom: nb, prev: atom, order: core.Single, cut: -1})
		}

	case len(forward) == 1:
		nb := forward[0]
		switch {
		case w.settled(nb):
			if !w.pyrrole(atom) {
				w.drop()
				return
			}
			b.push(frame{atom: nb, prev: atom, order: core.Single, cut: -1})
		case w.pyrrole(atom):
			opposite := b.clone()
			opposite.push(frame{atom: nb, prev: atom, order: core.Double, cut: -1})
			b.push(frame{atom: nb, prev: atom, order: core.Single, cut: len(w.path)})
			w.stack.Push(opposite)
		default:
			b.push(frame{atom: nb, prev: atom, order: core.Double, cut: -1})
			if len(closures) > 0 {
				w.close(b, atom, closures[0])
			}
		}

	case len(forward) > 0:
		n1, n2 := forward[0], forward[1]
		switch {
		case w.settled(n1) && w.settled(n2):
			w.drop()
		case w.settled(n1):
			b.push(frame{atom: n1, prev: atom, order: core.Single, cut: -1})
			b.push(frame{atom: n2, prev: atom, order: core.Double, cut: -1})
		case w.settled(n2):
			b.push(frame{atom: n2, prev: atom, order: core.Single, cut: -1})
			b.push(frame{atom: n1, prev: atom, order: core.Double, cut: -1})
		default:
			opposite := b.clone()
			b.push(frame{atom: n1, prev: atom, order: core.Single, cut: -1})
			b.push(frame{atom: n2, prev: atom, order: core.Double, cut: len(w.path)})
			opposite.push(frame{atom: n2, prev: atom, order: core.Single, cut: -1})
			opposite.push(frame{atom: n1, prev: atom, order: core.Double, cut: -1})
			w.stack.Push(opposite)
		}

	case len(closures) > 0 && !w.pyrrole(atom):
		// needs a double bond but ring closures are single
		w.drop()
	}
}

// close records the ring-closure bond atom-nb as single and withdraws the
// pending step that would have walked it from the other side. A pending
// step demanding a double bond there kills the branch.
func (w *walk) close(b *branch, atom, nb int) bool {
	if !b.remove(atom, nb) {
		w.drop()
		return false
	}
	w.path = append(w.path, bondPatch{n: nb, m: atom, order: core.Single})
	return true
}

func sortedKeysOf(m map[int][]int) []int {
	out := make([]int, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
