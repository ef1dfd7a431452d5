package smiles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/periodic"
)

// opening is a ring label waiting for its partner.
type opening struct {
	atom int
	bond string
}

type reader struct {
	m         *core.Molecule
	lower     map[int]bool // written in aromatic (lowercase) form
	hydrogens map[int]int  // bracket atoms carry their own count
	rings     map[string]opening
}

// Parse reads one SMILES string into a new molecule. Atom ids follow the
// order of appearance, starting at 1.
//
// Bonds between two lowercase atoms default to aromatic, all others to
// single. '~' denotes a special (coordination) bond. Bracket atoms keep
// their written hydrogen count; organic-subset atoms get the count derived
// from their bonds. Stereo marks, isotopes and atom classes are dropped.
func Parse(s string) (*core.Molecule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	ast, err := parseLine.ParseString("", s)
	if err != nil {
		return nil, errors.WithMessage(ErrSyntax, err.Error())
	}
	r := &reader{
		m:         core.NewMolecule(),
		lower:     make(map[int]bool),
		hydrogens: make(map[int]int),
		rings:     make(map[string]opening),
	}
	for _, c := range ast.Chains {
		if err := r.chain(c, 0, ""); err != nil {
			return nil, err
		}
	}
	if len(r.rings) > 0 {
		labels := make([]string, 0, len(r.rings))
		for l := range r.rings {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		return nil, errors.Wrapf(ErrUnclosedRing, "labels %v", labels)
	}

	// AddBond recomputes hydrogens, so explicit counts go last
	for n, h := range r.hydrogens {
		if err := r.m.SetHydrogens(n, h); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return r.m, nil
}

func (r *reader) chain(c *chain, prev int, bond string) error {
	cur, err := r.atom(c.Head)
	if err != nil {
		return err
	}
	if prev != 0 {
		if err := r.bond(prev, cur, bond); err != nil {
			return err
		}
	}
	for _, l := range c.Links {
		switch {
		case l.Branch != nil:
			if err := r.chain(l.Branch.Chain, cur, l.Branch.Bond); err != nil {
				return err
			}
		case l.Ring != "":
			if err := r.ring(cur, l.Ring, l.Bond); err != nil {
				return err
			}
		default:
			next, err := r.atom(l.Atom)
			if err != nil {
				return err
			}
			if err := r.bond(cur, next, l.Bond); err != nil {
				return err
			}
			cur = next
		}
	}
	return nil
}

func (r *reader) ring(n int, label, bond string) error {
	o, ok := r.rings[label]
	if !ok {
		r.rings[label] = opening{atom: n, bond: bond}
		return nil
	}
	delete(r.rings, label)
	switch {
	case bond == "":
		bond = o.bond
	case o.bond != "" && o.bond != bond:
		return errors.Wrapf(ErrBondConflict, "ring %s: %q and %q", label, o.bond, bond)
	}
	return r.bond(o.atom, n, bond)
}

func (r *reader) bond(n, m int, symbol string) error {
	var order core.BondOrder
	switch symbol {
	case "":
		order = core.Single
		if r.lower[n] && r.lower[m] {
			order = core.Aromatic
		}
	case "-", "/", "\\":
		order = core.Single
	case "=":
		order = core.Double
	case "#":
		order = core.Triple
	case ":":
		order = core.Aromatic
	case "~":
		order = core.Special
	default:
		return errors.Wrapf(ErrUnsupportedBond, "%q between atoms %d and %d", symbol, n, m)
	}
	return errors.Wrapf(r.m.AddBond(n, m, order), "smiles: bond %d-%d", n, m)
}

func (r *reader) atom(t *atomToken) (int, error) {
	if t.Organic != "" {
		return r.add(t.Organic, core.Atom{})
	}
	b, err := parseBracket.ParseString("", t.Bracket)
	if err != nil {
		return 0, errors.WithMessage(ErrSyntax, err.Error())
	}
	charge, err := parseCharge(b.Charge)
	if err != nil {
		return 0, err
	}
	n, err := r.add(b.Symbol, core.Atom{Charge: charge})
	if err != nil {
		return 0, err
	}
	h := 0
	if b.Hydrogens != nil {
		h = 1
		if b.Hydrogens.Count != nil {
			h = *b.Hydrogens.Count
		}
	}
	r.hydrogens[n] = h
	return n, nil
}

// add inserts an atom written as symbol; a lowercase symbol marks it
// aromatic.
func (r *reader) add(symbol string, a core.Atom) (int, error) {
	lower := symbol == strings.ToLower(symbol)
	if lower {
		symbol = strings.ToUpper(symbol[:1]) + symbol[1:]
	}
	z, err := periodic.Number(symbol)
	if err != nil {
		return 0, errors.Wrapf(err, "smiles: symbol %q", symbol)
	}
	a.Element = z
	n, err := r.m.AddAtom(a)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	r.lower[n] = lower
	return n, nil
}

// parseCharge reads "", "+", "++", "-", "--", "+2" or "-3".
func parseCharge(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	if len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
		v, err := strconv.Atoi(s[1:])
		if err != nil {
			return 0, errors.WithMessage(ErrSyntax, err.Error())
		}
		return sign * v, nil
	}
	return sign * len(s), nil
}
