package aromatic

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/thiele/core"
)

// hop is one edge of an alternating path: walk from last to current and
// give the bond the stated order.
type hop struct {
	last, current int
	depth         int
	order         core.BondOrder
}

// moveHydrogens relocates pyrrole-like hydrogens from six-membered donor
// rings to odd acceptor rings (N1C=CC2=NC=CC2=C1 >> N1C=CC2=CN=CC=C12).
//
// From each donor a depth-first search follows skeleton bonds whose current
// order alternates single/double, skipping quinone atoms. Reaching an
// acceptor through a bond that becomes single flips every bond of the path
// and moves the hydrogen. Donors without such a path are left unchanged.
func (t *thiele) moveHydrogens(quinones map[int]struct{}) error {
	m := t.m
	for _, start := range t.donors {
		var stack []hop
		for _, n := range sortedSet(t.skel[start]) {
			if _, q := quinones[n]; !q {
				stack = append(stack, hop{last: start, current: n, order: core.Double})
			}
		}
		var path []hop
		seen := map[int]struct{}{start: {}}
		found := false
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(path) > h.depth {
				for _, p := range path[h.depth:] {
					delete(seen, p.current)
				}
				path = path[:h.depth]
			}
			path = append(path, h)
			if _, ok := t.acceptors[h.current]; ok {
				if h.order == core.Single {
					found = true
					break
				}
				continue
			}
			seen[h.current] = struct{}{}
			next := core.Double
			if h.order == core.Double {
				next = core.Single
			}
			for _, x := range sortedSet(t.skel[h.current]) {
				if _, ok := seen[x]; ok {
					continue
				}
				if _, q := quinones[x]; q {
					continue
				}
				if o, _ := m.BondOrder(h.current, x); o != h.order {
					continue
				}
				stack = append(stack, hop{last: h.current, current: x, depth: h.depth + 1, order: next})
			}
		}
		if !found {
			continue
		}

		end := path[len(path)-1].current
		delete(t.acceptors, end)
		delete(t.pyrroles, start)
		t.pyrroles[end] = struct{}{}
		if err := m.SetHydrogens(end, 1); err != nil {
			return errors.Wrap(err, "aromatic: tautomer acceptor")
		}
		if err := m.SetHydrogens(start, 0); err != nil {
			return errors.Wrap(err, "aromatic: tautomer donor")
		}
		for _, p := range path {
			if err := m.SetBondOrder(p.last, p.current, p.order); err != nil {
				return errors.Wrap(err, "aromatic: tautomer path")
			}
		}
		t.o.Logger.Debug("hydrogen moved", zap.Int("donor", start), zap.Int("acceptor", end))
		if len(t.acceptors) == 0 {
			return nil
		}
	}
	return nil
}
