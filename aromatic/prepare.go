package aromatic

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
	"github.com/katalvlaran/thiele/sssr"
)

// skeleton is the classified aromatic sub-graph of a molecule.
//
//	rings    - ring-bond adjacency, every atom of degree 2 or 3
//	fixed    - atoms whose double bond is settled outside the skeleton
//	           or by their electron count: zero ring double bonds
//	pyrroles - atoms donating a lone pair: zero or one ring double bond
//
// Every other skeleton atom needs exactly one ring double bond.
type skeleton struct {
	rings    sssr.Adjacency
	fixed    map[int]struct{}
	pyrroles map[int]struct{}
}

func (s *skeleton) isFixed(n int) bool {
	_, ok := s.fixed[n]
	return ok
}

func (s *skeleton) isPyrrole(n int) bool {
	_, ok := s.pyrroles[n]
	return ok
}

// prepareRings builds and classifies the aromatic skeleton of m.
//
// Aromatic bonds lying in no ring are written back as single bonds. An
// SSSR ring whose atoms are all aromatic but whose bonds are not (c1ccc-cc1)
// joins the skeleton as a whole, dropping a double bond duplicated inside
// it.
func prepareRings(m *core.Molecule) (*skeleton, error) {
	sk := &skeleton{
		rings:    make(sssr.Adjacency),
		fixed:    make(map[int]struct{}),
		pyrroles: make(map[int]struct{}),
	}
	doubles := make(sssr.Adjacency)
	triples := make(map[int]struct{})
	for _, b := range m.BondList() {
		switch b.Order {
		case core.Aromatic:
			sk.rings.AddEdge(b.N, b.M)
		case core.Double:
			doubles.AddEdge(b.N, b.M)
		case core.Triple:
			triples[b.N] = struct{}{}
			triples[b.M] = struct{}{}
		}
	}
	if len(sk.rings) == 0 {
		return sk, nil
	}
	var bad []int
	for _, n := range sk.rings.Atoms() {
		if _, ok := triples[n]; ok {
			bad = append(bad, n)
		}
	}
	if len(bad) > 0 {
		return nil, invalid("triple bond connected to an aromatic ring", bad...)
	}

	rings, err := m.SSSR()
	if err != nil {
		return nil, errors.Wrap(err, "aromatic: ring perception")
	}
	leftover := sk.rings.Clone()
	for _, r := range rings {
		if !inSkeleton(r, sk.rings) {
			continue
		}
		pairs := make([][2]int, 0, len(r))
		pairs = append(pairs, [2]int{r[0], r[len(r)-1]})
		for i := 0; i+1 < len(r); i++ {
			pairs = append(pairs, [2]int{r[i], r[i+1]})
		}
		for _, p := range pairs {
			n, x := p[0], p[1]
			if _, ok := sk.rings[n][x]; !ok {
				if _, ok := doubles[n][x]; ok {
					delete(doubles[n], x)
					delete(doubles[x], n)
				}
				sk.rings.AddEdge(n, x)
			} else if _, ok := leftover[n][x]; ok {
				delete(leftover[n], x)
				delete(leftover[x], n)
			}
		}
	}

	for _, n := range sk.rings.Atoms() {
		if d := len(sk.rings[n]); d != 2 && d != 3 {
			bad = append(bad, n)
		}
	}
	if len(bad) > 0 {
		return nil, invalid("aromatic bond outside a ring or hypercondensed ring", bad...)
	}

	// c1ccccc1c2ccccc2 written for c1ccccc1-c2ccccc2
	done := make(map[int]struct{})
	for _, n := range leftover.Atoms() {
		if len(leftover[n]) == 0 {
			continue
		}
		done[n] = struct{}{}
		for _, x := range sortedSet(leftover[n]) {
			if _, ok := done[x]; ok {
				continue
			}
			delete(sk.rings[n], x)
			delete(sk.rings[x], n)
			if err := m.SetBondOrder(n, x, core.Single); err != nil {
				return nil, errors.Wrap(err, "aromatic: reset stray aromatic bond")
			}
		}
	}

	for _, n := range sk.rings.Atoms() {
		if len(doubles[n]) > 0 {
			sk.fixed[n] = struct{}{}
		}
	}
	for _, n := range sortedSet(sk.fixed) {
		if len(sk.rings[n]) != 2 {
			return nil, invalid("quinone valence error", n)
		}
		a, _ := m.Atom(n)
		switch a.Element {
		case periodic.N:
			if a.Charge != 1 {
				return nil, invalid("quinone should be charged N atom", n)
			}
		case periodic.C, periodic.P, periodic.S, periodic.As, periodic.Se, periodic.Te:
			if a.Charge != 0 {
				return nil, invalid("quinone should be neutral S, Se, Te, C, P, As atom", n)
			}
		default:
			return nil, invalid("quinone should be neutral S, Se, Te, C, P, As atom", n)
		}
	}

	for _, n := range sk.rings.Atoms() {
		if err := sk.classify(m, n); err != nil {
			return nil, err
		}
	}

	// double bonds pair plain atoms up; without a lone pair donor an odd
	// count can never be satisfied
	for _, atoms := range sssr.Components(sk.rings) {
		plain, donor := 0, false
		for _, n := range atoms {
			switch {
			case sk.isPyrrole(n):
				donor = true
			case !sk.isFixed(n):
				plain++
			}
		}
		if !donor && plain%2 == 1 {
			return nil, invalid("odd number of atoms needing a ring double bond", atoms...)
		}
	}
	return sk, nil
}

// classify assigns n to fixed, pyrroles or plain by element, charge,
// radical flag, bond count and implicit hydrogens.
func (sk *skeleton) classify(m *core.Molecule, n int) error {
	a, _ := m.Atom(n)
	bonds := m.Degree(n)
	h, known := m.Hydrogens(n)
	fix := func() { sk.fixed[n] = struct{}{} }
	pyrrole := func() { sk.pyrroles[n] = struct{}{} }

	switch a.Element {
	case periodic.C:
		switch a.Charge {
		case 0:
			if bonds != 2 && bonds != 3 {
				return invalid("carbon valence", n)
			}
		case -1, 1:
			switch {
			case a.Radical && bonds == 2:
				fix()
			case a.Radical:
				return invalid("carbon radical valence", n)
			case bonds == 3:
				fix()
			case bonds == 2:
				pyrrole()
			default:
				return invalid("charged carbon valence", n)
			}
		default:
			return invalid("carbon charge", n)
		}

	case periodic.N, periodic.P, periodic.As:
		switch a.Charge {
		case 0:
			switch {
			case a.Radical:
				if bonds != 2 {
					return invalid("radical pnictogen valence", n)
				}
				fix()
			case bonds == 3:
				if a.Element == periodic.N {
					fix()
				} else {
					pyrrole()
				}
			case bonds == 2:
				switch {
				case !known:
					pyrrole()
				case h == 1:
					fix()
				case h > 1:
					return invalid("pnictogen hydrogens", n)
				}
			case bonds != 4 || a.Element == periodic.N:
				return invalid("pnictogen valence", n)
			}
		case -1:
			if bonds != 2 || a.Radical {
				return invalid("pnictogen anion valence", n)
			}
			fix()
		case 1:
			switch {
			case a.Radical:
				if bonds != 2 {
					return invalid("pnictogen cation-radical valence", n)
				}
			case bonds == 2:
				pyrrole()
			case bonds != 3:
				return invalid("pnictogen cation valence", n)
			}
		default:
			return invalid("pnictogen charge", n)
		}

	case periodic.O:
		if bonds != 2 {
			return invalid("triple-bonded oxygen", n)
		}
		switch a.Charge {
		case 0:
			if a.Radical {
				return invalid("radical oxygen", n)
			}
			fix()
		case 1:
			if a.Radical {
				fix()
			}
		default:
			return invalid("invalid oxygen charge", n)
		}

	case periodic.S, periodic.Se, periodic.Te:
		if sk.isFixed(n) {
			return nil
		}
		switch {
		case bonds == 2:
			if a.Radical {
				if a.Charge != 1 {
					return invalid("S, Se, Te cation-radical expected", n)
				}
				fix()
			}
			switch a.Charge {
			case 0:
				fix()
			case 1:
			default:
				return invalid("S, Se, Te cation in benzene like ring expected", n)
			}
		case bonds == 3 && a.Charge == 1 && !a.Radical:
			fix()
		default:
			return invalid("S, Se, Te hypervalent ring", n)
		}

	case periodic.B:
		switch a.Charge {
		case 0:
			switch {
			case bonds == 2 && a.Radical:
				fix()
			case bonds == 2:
				switch {
				case !known:
					pyrrole()
				case h == 1:
					fix()
				case h > 1:
					return invalid("boron hydrogens", n)
				}
			case !a.Radical:
				fix()
			default:
				return invalid("boron radical valence", n)
			}
		case 1:
			if bonds != 2 || a.Radical {
				return invalid("boron cation valence", n)
			}
			fix()
		case -1:
			switch {
			case bonds == 2 && !a.Radical:
				pyrrole()
			case bonds == 2:
			case a.Radical:
				fix()
			default:
				pyrrole()
			}
		default:
			return invalid("boron charge", n)
		}

	default:
		sym, _ := periodic.Symbol(a.Element)
		return invalid(fmt.Sprintf("only B, C, N, P, O, S, Se, Te possible, not: %s", sym), n)
	}
	return nil
}

func inSkeleton(r sssr.Ring, rings sssr.Adjacency) bool {
	for _, n := range r {
		if _, ok := rings[n]; !ok {
			return false
		}
	}
	return true
}

func sortedSet(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
