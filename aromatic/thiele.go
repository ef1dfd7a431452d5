package aromatic

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
	"github.com/katalvlaran/thiele/query"
	"github.com/katalvlaran/thiele/sssr"
)

var (
	sp2Elements     = []int{periodic.B, periodic.C, periodic.N, periodic.O, periodic.P, periodic.S}
	pyrroleElements = []int{periodic.B, periodic.N, periodic.O, periodic.P, periodic.S, periodic.Se}
)

// thiele holds the state of one aromatization run.
type thiele struct {
	m    *core.Molecule
	o    Options
	skel sssr.Adjacency

	pyrroles    map[int]struct{}
	acceptors   map[int]struct{}
	donors      []int
	freaks      []sssr.Ring
	tetracycles []sssr.Ring
	charges     map[int]int // formal charges to commit with the aromatic form
}

// Thiele raises every benzene-like and pyrrole-like ring of m to aromatic
// bonds, in place, and tags the member atoms aromatic. It reports whether
// any ring was converted; an already aromatic molecule yields false and is
// left untouched. Hückel rules are not applied.
//
// Only rings of four to seven atoms qualify. Four-membered rings are kept
// only when their atoms all end up in larger aromatic rings, and their own
// bonds are reset to single. Rings carrying an exocyclic double bond are
// excised before the final ring set is perceived again over what remains.
func Thiele(m *core.Molecule, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	rings, err := m.SSSR()
	if err != nil {
		return false, errors.Wrap(err, "aromatic: ring perception")
	}
	t := &thiele{
		m:         m,
		o:         o,
		skel:      make(sssr.Adjacency),
		pyrroles:  make(map[int]struct{}),
		acceptors: make(map[int]struct{}),
		charges:   make(map[int]int),
	}
	for _, r := range rings {
		t.collect(r)
	}
	if len(t.skel) == 0 {
		return false, nil
	}

	quinones := t.quinones()
	if o.FixTautomers && len(t.acceptors) > 0 && len(t.donors) > 0 {
		if err := t.moveHydrogens(quinones); err != nil {
			return false, err
		}
	}
	if len(quinones) > 0 {
		t.excise(quinones)
	}
	if len(t.skel) == 0 {
		return false, nil
	}
	n := sssr.CircuitRank(t.skel)
	if n == 0 {
		return false, nil
	}
	final, err := sssr.SSSR(t.skel, n)
	if err != nil {
		return false, errors.Wrap(err, "aromatic: skeleton ring perception")
	}
	if err := t.commit(final); err != nil {
		return false, err
	}
	o.Logger.Debug("thiele form",
		zap.Int("rings", len(final)),
		zap.Int("quinones", len(quinones)),
		zap.Int("freaks", len(t.freaks)))
	return true, nil
}

// collect sorts one SSSR ring into the skeleton, the four-membered list or
// the freak list, and records tautomer and metal-organic candidates.
func (t *thiele) collect(r sssr.Ring) {
	m := t.m
	size := len(r)
	if size < 4 || size > 7 {
		return
	}
	sp2 := 0
	for _, n := range r {
		if m.Hybridization(n) == core.HybridSP2 && slices.Contains(sp2Elements, m.Element(n)) {
			sp2++
		}
	}

	switch {
	case sp2 == size:
		if size == 4 {
			t.tetracycles = append(t.tetracycles, r)
			return
		}
		if t.o.FixTautomers && size%2 == 1 {
			for _, n := range r {
				if m.Element(n) == periodic.N && m.Charge(n) == 0 {
					t.acceptors[n] = struct{}{}
					break
				}
			}
		}
		t.addRing(r)

	case size > 4 && size == sp2+1:
		n, ok := firstAtom(r, func(x int) bool { return m.Hybridization(x) == core.HybridSP3 })
		if !ok {
			return
		}
		z := m.Element(n)
		if size == 7 && z != periodic.B {
			return
		}
		switch {
		case slices.Contains(pyrroleElements, z) && m.Charge(n) == 0:
			if t.o.FixTautomers && size == 6 && z == periodic.N && m.Degree(n) == 2 {
				t.donors = append(t.donors, n)
			} else if t.o.FixMetalOrganics && size == 5 && z == periodic.N {
				t.imidazolium(n)
			}
		case z == periodic.C && size == 5 && m.Charge(n) == -1:
			if t.o.FixMetalOrganics {
				t.sandwich(n)
			}
		default:
			return
		}
		t.pyrroles[n] = struct{}{}
		t.addRing(r)

	case size == 5:
		nitrogens := 0
		for _, n := range r {
			if m.Element(n) == periodic.N && m.Charge(n) == 0 {
				nitrogens++
			}
		}
		if nitrogens > 1 {
			t.freaks = append(t.freaks, r)
		}
	}
}

func (t *thiele) addRing(r sssr.Ring) {
	for i, n := range r {
		t.skel.AddEdge(n, r[(i+1)%len(r)])
	}
}

// imidazolium neutralizes CN1C=C[N+](C)=C1[Cu-] style carbene complexes.
func (t *thiele) imidazolium(n int) {
	m := t.m
	c, ok := firstAtom(m.Neighbors(n), func(x int) bool {
		if m.Element(x) != periodic.C || m.Degree(x) != 3 {
			return false
		}
		for _, y := range m.Neighbors(x) {
			if y == n {
				continue
			}
			metal := slices.Contains(coinage, m.Element(y)) && m.Charge(y) < 0
			onium := m.Element(y) == periodic.N && m.Charge(y) == 1
			if !metal && !onium {
				return false
			}
		}
		return true
	})
	if !ok {
		return
	}
	for _, x := range m.Neighbors(c) {
		if q := m.Charge(x); q < 0 {
			if v, ok := t.charges[x]; ok {
				t.charges[x] = v + 1
			} else {
				t.charges[x] = q + 1
			}
		} else {
			t.charges[x] = 0
		}
	}
}

// sandwich neutralizes a cyclopentadienyl anion bound to a cationic metal
// through a special bond.
func (t *thiele) sandwich(n int) {
	m := t.m
	metal, ok := firstAtom(m.Neighbors(n), func(x int) bool {
		o, _ := m.BondOrder(n, x)
		return o == core.Special && m.Charge(x) > 0 && slices.Contains(sandwichers, m.Element(x))
	})
	if !ok {
		return
	}
	t.charges[n] = 0
	if v, ok := t.charges[metal]; ok {
		t.charges[metal] = v - 1
	} else {
		t.charges[metal] = m.Charge(metal) - 1
	}
}

// quinones returns skeleton atoms double bonded to an atom outside it.
func (t *thiele) quinones() map[int]struct{} {
	out := make(map[int]struct{})
	for _, n := range t.skel.Atoms() {
		for x, o := range t.m.Bonds(n) {
			if _, in := t.skel[x]; !in && o == core.Double {
				out[n] = struct{}{}
				break
			}
		}
	}
	return out
}

// excise removes quinone atoms, then atoms left isolated, then prunes
// dangling chains from the smallest atom up. A dangling pyrrole-like atom
// goes alone; any other dangling atom takes its neighbor with it.
func (t *thiele) excise(quinones map[int]struct{}) {
	for n := range quinones {
		t.skel.RemoveAtom(n)
	}
	for _, n := range t.skel.Atoms() {
		if len(t.skel[n]) == 0 {
			delete(t.skel, n)
		}
	}
	for {
		n, ok := firstAtom(t.skel.Atoms(), func(x int) bool { return len(t.skel[x]) == 1 })
		if !ok {
			return
		}
		x := sortedSet(t.skel[n])[0]
		t.skel.RemoveAtom(n)
		if _, p := t.pyrroles[n]; !p {
			t.skel.RemoveAtom(x)
		}
	}
}

// commit writes the aromatic form: hybridization, collected charges,
// four-membered ring resets, aromatic bonds, then freak rings.
func (t *thiele) commit(final []sssr.Ring) error {
	m := t.m
	seen := make(map[int]struct{})
	for _, r := range final {
		for _, n := range r {
			seen[n] = struct{}{}
		}
	}
	for _, n := range sortedSet(seen) {
		if err := m.SetHybridization(n, core.HybridAromatic); err != nil {
			return err
		}
	}
	for n, q := range t.charges {
		if err := m.SetCharge(n, q); err != nil {
			return err
		}
	}
	for _, r := range t.tetracycles {
		if !inSet(r, seen) {
			continue
		}
		if err := setRing(m, r, core.Single); err != nil {
			return err
		}
	}
	for _, r := range final {
		if err := setRing(m, r, core.Aromatic); err != nil {
			return err
		}
	}
	m.FlushCache()

	if len(t.freaks) == 0 {
		return nil
	}
	for _, r := range t.freaks {
		hit := false
		for _, err := range freakRing().FindMappings(m, query.WithinAtoms(r...)) {
			if err != nil {
				return errors.Wrap(err, "aromatic: freak ring")
			}
			hit = true
			break
		}
		if !hit {
			continue
		}
		if err := setRing(m, r, core.Aromatic); err != nil {
			return err
		}
		for _, n := range r {
			if err := m.SetHybridization(n, core.HybridAromatic); err != nil {
				return err
			}
		}
	}
	m.FlushCache()
	return nil
}

func setRing(m *core.Molecule, r sssr.Ring, order core.BondOrder) error {
	for i, n := range r {
		if err := m.SetBondOrder(n, r[(i+1)%len(r)], order); err != nil {
			return errors.Wrapf(err, "aromatic: ring bond %d-%d", n, r[(i+1)%len(r)])
		}
	}
	return nil
}

func inSet(r sssr.Ring, s map[int]struct{}) bool {
	for _, n := range r {
		if _, ok := s[n]; !ok {
			return false
		}
	}
	return true
}
