package aromatic

import (
	"iter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/thiele/core"
)

// kekuleForms repairs known encodings in place, classifies the aromatic
// skeleton and returns the lazy product of the per-component searches.
func kekuleForms(m *core.Molecule, log *zap.Logger) (iter.Seq2[[]bondPatch, error], error) {
	if _, err := fixRings(m, log); err != nil {
		return nil, err
	}
	sk, err := prepareRings(m)
	if err != nil {
		return nil, err
	}
	comps := sk.components()
	parts := make([]iter.Seq2[[]bondPatch, error], len(comps))
	for i, c := range comps {
		parts[i] = c.forms()
	}
	log.Debug("aromatic skeleton",
		zap.Int("atoms", len(sk.rings)),
		zap.Int("components", len(comps)),
		zap.Int("fixed", len(sk.fixed)),
		zap.Int("pyrroles", len(sk.pyrroles)))
	return product(parts), nil
}

// applyPatch writes bond orders, then recomputes hybridization and
// implicit hydrogens of every touched atom.
func applyPatch(m *core.Molecule, patch []bondPatch) error {
	touched := make(map[int]struct{}, len(patch))
	for _, p := range patch {
		if err := m.SetBondOrder(p.n, p.m, p.order); err != nil {
			return err
		}
		touched[p.n] = struct{}{}
		touched[p.m] = struct{}{}
	}
	for _, n := range sortedSet(touched) {
		m.CalcHybridization(n)
		m.CalcImplicit(n)
	}
	return nil
}

// Kekule converts every aromatic ring of m into one alternating
// single/double pattern, in place. It reports whether any aromatic ring
// was found.
//
// On error m may be partially modified; clone it first when atomicity
// matters.
//
// Errors:
//   - ErrInvalidRing: the aromatic skeleton violates degree or valence rules.
//   - ErrKekuleNotFound: no alternating assignment exists.
//   - sssr.ErrRingCountNotReached: ring perception failed (wrapped).
func Kekule(m *core.Molecule, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	forms, err := kekuleForms(m, o.Logger)
	if err != nil {
		return false, err
	}
	for patch, err := range forms {
		if err != nil {
			return false, err
		}
		if len(patch) == 0 {
			return false, nil
		}
		if err := applyPatch(m, patch); err != nil {
			return false, err
		}
		m.FlushCache()
		return true, nil
	}
	return false, nil
}

// EnumerateKekule lazily yields every Kekulé form of m. m is not modified:
// the search runs on a private clone and each yielded molecule is an
// independent copy. A molecule without aromatic rings yields one copy of
// itself.
//
// The sequence is restartable; every range over it searches afresh. A
// failure is reported once as the error of the last pair.
func EnumerateKekule(m *core.Molecule, opts ...Option) iter.Seq2[*core.Molecule, error] {
	o := buildOptions(opts)
	return func(yield func(*core.Molecule, error) bool) {
		work := m.Clone()
		forms, err := kekuleForms(work, o.Logger)
		if err != nil {
			yield(nil, err)
			return
		}
		count := 0
		for patch, err := range forms {
			if err != nil {
				yield(nil, err)
				return
			}
			form := work.Clone()
			if err := applyPatch(form, patch); err != nil {
				yield(nil, err)
				return
			}
			count++
			if !yield(form, nil) {
				break
			}
		}
		o.Logger.Debug("kekule forms enumerated", zap.Int("count", count))
	}
}

// CheckThiele validates the aromatic rings of m without modifying it. With
// fast set only the skeleton classification runs; otherwise the known
// encoding repairs run and one Kekulé form is searched for.
//
// An invalid ring reports (false, nil). A non-nil error signals a ring
// perception failure, not a property of the molecule.
func CheckThiele(m *core.Molecule, fast bool) (bool, error) {
	work := m.Clone()
	var err error
	if fast {
		_, err = prepareRings(work)
	} else {
		var forms iter.Seq2[[]bondPatch, error]
		forms, err = kekuleForms(work, zap.NewNop())
		if err == nil {
			for _, ferr := range forms {
				err = ferr
				break
			}
		}
	}
	var re *RingError
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &re):
		return false, nil
	default:
		return false, err
	}
}
