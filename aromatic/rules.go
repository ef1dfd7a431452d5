package aromatic

import (
	"sync"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
	"github.com/katalvlaran/thiele/query"
)

// FixAction is one rewrite applied to a matched atom or bond. The set of
// actions is closed: SetCharge, SetHybridization and SetBondOrder.
type FixAction interface {
	apply(m *core.Molecule, mapping query.Mapping) error
}

// SetCharge assigns Charge to the molecule atom matched by query atom Atom.
type SetCharge struct {
	Atom   int
	Charge int
}

func (a SetCharge) apply(m *core.Molecule, mp query.Mapping) error {
	return m.SetCharge(mp[a.Atom], a.Charge)
}

// SetHybridization assigns a hybridization tag to a matched atom.
type SetHybridization struct {
	Atom          int
	Hybridization core.Hybridization
}

func (a SetHybridization) apply(m *core.Molecule, mp query.Mapping) error {
	return m.SetHybridization(mp[a.Atom], a.Hybridization)
}

// SetBondOrder rewrites the bond between two matched atoms.
type SetBondOrder struct {
	N, M  int
	Order core.BondOrder
}

func (a SetBondOrder) apply(m *core.Molecule, mp query.Mapping) error {
	return m.SetBondOrder(mp[a.N], mp[a.M], a.Order)
}

// FixRule pairs a pattern with the actions applied to each of its matches.
type FixRule struct {
	Name    string
	Pattern *query.Query
	Actions []FixAction
}

// patternAtom and patternBond keep the rule table declarative.
type patternAtom struct {
	id int
	q  query.AtomQuery
}

type patternBond struct {
	n, m   int
	orders []core.BondOrder
}

func mustPattern(atoms []patternAtom, bonds []patternBond) *query.Query {
	q := query.New()
	for _, a := range atoms {
		if err := q.AddAtom(a.id, a.q); err != nil {
			panic(err)
		}
	}
	for _, b := range bonds {
		if err := q.AddBond(b.n, b.m, b.orders...); err != nil {
			panic(err)
		}
	}
	return q
}

func el(z ...int) []int { return z }

func nb(d ...int) []int { return d }

func bo(o ...core.BondOrder) []core.BondOrder { return o }

var (
	aromaticOnly = bo(core.Aromatic)
	singleOnly   = bo(core.Single)
	doubleOnly   = bo(core.Double)
	specialOnly  = bo(core.Special)

	hybAromatic = []core.Hybridization{core.HybridAromatic}
	hybSP2      = []core.Hybridization{core.HybridSP2}

	coinage     = el(periodic.Cu, periodic.Ag, periodic.Au, periodic.Pd)
	sandwichers = el(periodic.Ti, periodic.V, periodic.Cr, periodic.Mn, periodic.Fe, periodic.Co,
		periodic.Ni, periodic.Zr, periodic.Nb, periodic.Mo, periodic.Ru, periodic.Hf,
		periodic.W, periodic.Re, periodic.Ir)
	five = []int{5}
)

// FixRules returns the process-wide table of charge and bond repairs run
// before kekulization. The table is built once and must not be modified.
var FixRules = sync.OnceValue(func() []FixRule {
	var rules []FixRule

	//  : N :  >>  : [N+] :
	//    \\           \
	//     O           [O-]
	rules = append(rules, FixRule{
		Name: "n-oxide",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(3), Hybridization: hybAromatic}},
				{2, query.AtomQuery{Elements: el(periodic.O), Neighbors: nb(1)}},
			},
			[]patternBond{{1, 2, doubleOnly}}),
		Actions: []FixAction{
			SetCharge{1, 1}, SetCharge{2, -1}, SetHybridization{2, core.HybridSP3},
			SetBondOrder{1, 2, core.Single},
		},
	})

	//  : N :  >>  : [N+] :
	//    \\           \
	//     N           [N-]
	rules = append(rules, FixRule{
		Name: "n-nitride",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(3), Hybridization: hybAromatic}},
				{2, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(1, 2), Hybridization: hybSP2}},
			},
			[]patternBond{{1, 2, doubleOnly}}),
		Actions: []FixAction{
			SetCharge{1, 1}, SetCharge{2, -1}, SetHybridization{2, core.HybridSP3},
			SetBondOrder{1, 2, core.Single},
		},
	})

	// : [S+] : >> : S :
	//    |          \\
	//   [O-]         O
	rules = append(rules, FixRule{
		Name: "s-oxide",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.S), Charge: 1, Neighbors: nb(3), Hybridization: hybAromatic}},
				{2, query.AtomQuery{Elements: el(periodic.O), Charge: -1, Neighbors: nb(1)}},
			},
			[]patternBond{{1, 2, singleOnly}}),
		Actions: []FixAction{
			SetCharge{1, 0}, SetCharge{2, 0}, SetHybridization{2, core.HybridSP2},
			SetBondOrder{1, 2, core.Double},
		},
	})

	// [O-]-N:C:C:[N+]=O
	rules = append(rules, FixRule{
		Name: "nitro-like",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.O), Charge: -1, Neighbors: nb(1)}},
				{2, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(3)}},
				{3, query.AtomQuery{Elements: el(periodic.C)}},
				{4, query.AtomQuery{Elements: el(periodic.C)}},
				{5, query.AtomQuery{Elements: el(periodic.N), Charge: 1, Neighbors: nb(3)}},
				{6, query.AtomQuery{Elements: el(periodic.O), Neighbors: nb(1)}},
			},
			[]patternBond{
				{1, 2, singleOnly}, {2, 3, aromaticOnly}, {3, 4, aromaticOnly},
				{4, 5, aromaticOnly}, {5, 6, doubleOnly},
			}),
		Actions: []FixAction{SetCharge{2, 1}, SetCharge{6, -1}, SetBondOrder{5, 6, core.Single}},
	})

	// N : A : N
	//  :     :
	//   C # C
	rules = append(rules, FixRule{
		Name: "aryne",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(2)}},
				{2, query.AtomQuery{Elements: el(periodic.C), Neighbors: nb(2)}},
				{3, query.AtomQuery{Elements: el(periodic.C), Neighbors: nb(2)}},
				{4, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(2, 3)}},
				{5, query.AtomQuery{Elements: el(periodic.C, periodic.N)}},
			},
			[]patternBond{
				{1, 2, aromaticOnly}, {2, 3, bo(core.Triple)}, {3, 4, aromaticOnly},
				{4, 5, aromaticOnly}, {1, 5, aromaticOnly},
			}),
		Actions: []FixAction{SetBondOrder{2, 3, core.Aromatic}},
	})

	// C:[N+]:[C-]
	//    \\
	//     O
	rules = append(rules, FixRule{
		Name: "n-acyl-ylide",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.N), Charge: 1, Neighbors: nb(3)}},
				{2, query.AtomQuery{Elements: el(periodic.O), Neighbors: nb(1)}},
				{3, query.AtomQuery{Elements: el(periodic.C), Charge: -1, Neighbors: nb(2, 3)}},
				{4, query.AtomQuery{Elements: el(periodic.C), Neighbors: nb(2, 3)}},
			},
			[]patternBond{{1, 2, doubleOnly}, {1, 3, aromaticOnly}, {1, 4, aromaticOnly}}),
		Actions: []FixAction{
			SetCharge{2, -1}, SetHybridization{2, core.HybridSP3}, SetCharge{3, 0},
			SetBondOrder{1, 2, core.Single},
		},
	})

	//  O=[N+] : C
	//     :     :
	//    O : N : C
	rules = append(rules, FixRule{
		Name: "furoxan",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.N), Charge: 1, Neighbors: nb(3)}},
				{2, query.AtomQuery{Elements: el(periodic.O), Neighbors: nb(1)}},
				{3, query.AtomQuery{Elements: el(periodic.O), Neighbors: nb(2)}},
				{4, query.AtomQuery{Elements: el(periodic.C), Neighbors: nb(2, 3)}},
				{5, query.AtomQuery{Elements: el(periodic.C), Neighbors: nb(2, 3)}},
				{6, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(2, 3)}},
			},
			[]patternBond{
				{1, 2, doubleOnly}, {1, 3, aromaticOnly}, {1, 4, aromaticOnly},
				{3, 6, aromaticOnly}, {4, 5, aromaticOnly}, {5, 6, aromaticOnly},
			}),
		Actions: []FixAction{
			SetHybridization{1, core.HybridSP2}, SetHybridization{3, core.HybridSP3},
			SetHybridization{4, core.HybridSP2}, SetHybridization{5, core.HybridSP2},
			SetHybridization{6, core.HybridSP3},
			SetBondOrder{1, 3, core.Single}, SetBondOrder{1, 4, core.Single},
			SetBondOrder{3, 6, core.Single}, SetBondOrder{4, 5, core.Double},
			SetBondOrder{5, 6, core.Single},
		},
	})

	// bis-carbene palladium complex
	//
	//         R - N : C                  R - N : C
	//            :    :                    :     :
	//  A - Pd - C     : >>    A - [Pd-2] - C      :
	//            :    :                    :     :
	//         R - N : C                R - [N+]: C
	imidazoleN := query.AtomQuery{Elements: el(periodic.N), RingSizes: five, Neighbors: nb(3), Heteroatoms: nb(0)}
	carbene := query.AtomQuery{Elements: el(periodic.C), RingSizes: five, Neighbors: nb(3)}
	rules = append(rules, FixRule{
		Name: "bis-imidazolium-pd",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: el(periodic.Pd)}},
				{2, carbene}, {3, imidazoleN}, {4, imidazoleN},
				{5, carbene}, {6, imidazoleN}, {7, imidazoleN},
			},
			[]patternBond{
				{1, 2, singleOnly}, {2, 3, aromaticOnly}, {2, 4, aromaticOnly},
				{1, 5, singleOnly}, {5, 6, aromaticOnly}, {5, 7, aromaticOnly},
			}),
		Actions: []FixAction{SetCharge{1, -2}, SetCharge{3, 1}, SetCharge{6, 1}},
	})

	rules = append(rules, FixRule{
		Name: "imidazolium-metal",
		Pattern: mustPattern(
			[]patternAtom{
				{1, query.AtomQuery{Elements: coinage}},
				{2, carbene}, {3, imidazoleN}, {4, imidazoleN},
			},
			[]patternBond{{1, 2, singleOnly}, {2, 3, aromaticOnly}, {2, 4, aromaticOnly}}),
		Actions: []FixAction{SetCharge{1, -1}, SetCharge{3, 1}},
	})

	cp := query.AtomQuery{Elements: el(periodic.C), RingSizes: five}
	ferrocene := []patternAtom{{1, query.AtomQuery{Elements: sandwichers}}}
	for i := 2; i <= 11; i++ {
		ferrocene = append(ferrocene, patternAtom{i, cp})
	}
	rules = append(rules, FixRule{
		Name: "ferrocene",
		Pattern: mustPattern(ferrocene, []patternBond{
			{1, 2, specialOnly}, {1, 7, specialOnly},
			{2, 3, aromaticOnly}, {3, 4, aromaticOnly}, {4, 5, aromaticOnly}, {5, 6, aromaticOnly}, {2, 6, aromaticOnly},
			{7, 8, aromaticOnly}, {8, 9, aromaticOnly}, {9, 10, aromaticOnly}, {10, 11, aromaticOnly}, {7, 11, aromaticOnly},
		}),
		Actions: []FixAction{SetCharge{1, 2}, SetCharge{2, -1}, SetCharge{7, -1}},
	})

	rules = append(rules, FixRule{
		Name: "half-sandwich",
		Pattern: mustPattern(ferrocene[:6], []patternBond{
			{1, 2, specialOnly},
			{2, 3, aromaticOnly}, {3, 4, aromaticOnly}, {4, 5, aromaticOnly}, {5, 6, aromaticOnly}, {2, 6, aromaticOnly},
		}),
		Actions: []FixAction{SetCharge{1, 1}, SetCharge{2, -1}},
	})
	return rules
})

// freakRing matches five-membered rings with two neutral nitrogens that
// the ring classifier cannot raise on its own, like N1C=Cn2cccc12.
var freakRing = sync.OnceValue(func() *query.Query {
	return mustPattern(
		[]patternAtom{
			{1, query.AtomQuery{Elements: el(periodic.N), Neighbors: nb(2)}},
			{2, query.AtomQuery{}}, {3, query.AtomQuery{}}, {4, query.AtomQuery{}}, {5, query.AtomQuery{}},
		},
		[]patternBond{
			{1, 2, singleOnly}, {2, 3, bo(core.Double, core.Aromatic)}, {3, 4, singleOnly},
			{4, 5, aromaticOnly}, {1, 5, singleOnly},
		})
})
