package aromatic

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/thiele/core"
	"github.com/katalvlaran/thiele/query"
)

// fixRings rewrites known charge-separated and metal-organic encodings into
// the forms the classifier accepts. Matches of a rule are collected before
// any action is applied; an atom already patched by an earlier match is
// never patched again.
func fixRings(m *core.Molecule, log *zap.Logger) (bool, error) {
	seen := make(map[int]struct{})
	for _, rule := range FixRules() {
		var matches []query.Mapping
		for mp, err := range rule.Pattern.FindMappings(m) {
			if err != nil {
				return false, errors.Wrapf(err, "aromatic: fix rule %s", rule.Name)
			}
			matches = append(matches, mp)
		}
		for _, mp := range matches {
			if overlaps(mp, seen) {
				continue
			}
			for _, n := range mp {
				seen[n] = struct{}{}
			}
			for _, act := range rule.Actions {
				if err := act.apply(m, mp); err != nil {
					return false, errors.Wrapf(err, "aromatic: fix rule %s", rule.Name)
				}
			}
			log.Debug("fix rule applied", zap.String("rule", rule.Name), zap.Any("atoms", mp))
		}
	}
	if len(seen) == 0 {
		return false, nil
	}
	m.FlushCache()
	return true, nil
}

func overlaps(mp query.Mapping, seen map[int]struct{}) bool {
	for _, n := range mp {
		if _, ok := seen[n]; ok {
			return true
		}
	}
	return false
}
