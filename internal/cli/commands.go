package cli

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thiele/aromatic"
	"github.com/katalvlaran/thiele/internal/metrics"
	"github.com/katalvlaran/thiele/smiles"
)

func status(changed bool) string {
	if changed {
		return metrics.ResultChanged
	}
	return metrics.ResultUnchanged
}

func newAromatizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "aromatize [SMILES...]",
		Aliases: []string{"thiele"},
		Short:   "Convert Kekulé rings to aromatic bonds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, "aromatize", aromatize)
		},
	}
}

func aromatize(_ context.Context, rt *Runtime, input string) (*Result, error) {
	m, err := smiles.Parse(input)
	if err != nil {
		return nil, err
	}
	changed, err := aromatic.Thiele(m, rt.aromaticOptions()...)
	if err != nil {
		return nil, err
	}
	return &Result{SMILES: []string{smiles.Format(m)}, Changed: changed, status: status(changed)}, nil
}

func newKekulizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "kekulize [SMILES...]",
		Aliases: []string{"kekule"},
		Short:   "Replace aromatic bonds by one Kekulé form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, "kekulize", kekulize)
		},
	}
}

func kekulize(_ context.Context, rt *Runtime, input string) (*Result, error) {
	m, err := smiles.Parse(input)
	if err != nil {
		return nil, err
	}
	changed, err := aromatic.Kekule(m, rt.aromaticOptions()...)
	if err != nil {
		return nil, err
	}
	return &Result{SMILES: []string{smiles.Format(m)}, Changed: changed, status: status(changed)}, nil
}

func newEnumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate [SMILES...]",
		Short: "List Kekulé forms, up to --limit per molecule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, "enumerate", enumerate)
		},
	}
}

func enumerate(ctx context.Context, rt *Runtime, input string) (*Result, error) {
	m, err := smiles.Parse(input)
	if err != nil {
		return nil, err
	}
	limit := rt.Config.Enumerate.Limit
	res := &Result{}
	for form, err := range aromatic.EnumerateKekule(m, rt.aromaticOptions()...) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.SMILES = append(res.SMILES, smiles.Format(form))
		if limit > 0 && len(res.SMILES) == limit {
			break
		}
	}
	if rt.Metrics != nil {
		rt.Metrics.ObserveForms(len(res.SMILES))
	}
	res.Changed = len(res.SMILES) > 0 && res.SMILES[0] != smiles.Format(m)
	res.status = status(res.Changed)
	return res, nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [SMILES...]",
		Short: "Report whether the aromatic rings admit a Kekulé form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, "check", check)
		},
	}
}

func check(_ context.Context, rt *Runtime, input string) (*Result, error) {
	m, err := smiles.Parse(input)
	if err != nil {
		return nil, err
	}
	ok, err := aromatic.CheckThiele(m, rt.Fast)
	if err != nil {
		return nil, err
	}
	res := &Result{Valid: &ok, status: metrics.ResultUnchanged}
	if !ok {
		res.status = metrics.ResultInvalid
	}
	return res, nil
}

func newRingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rings [SMILES...]",
		Short: "Print SSSR ring sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, "rings", rings)
		},
	}
}

func rings(_ context.Context, rt *Runtime, input string) (*Result, error) {
	m, err := smiles.Parse(input)
	if err != nil {
		return nil, err
	}
	sssr, err := m.SSSR()
	if err != nil {
		return nil, err
	}
	sizes := make([]int, 0, len(sssr))
	for _, r := range sssr {
		sizes = append(sizes, len(r))
	}
	slices.Sort(sizes)
	if rt.Metrics != nil {
		rt.Metrics.ObserveRings(sizes...)
	}
	return &Result{Rings: sizes, status: metrics.ResultUnchanged}, nil
}

// invalidRing reports whether err is a property of the molecule.
func invalidRing(err error) bool {
	return errors.Is(err, aromatic.ErrInvalidRing) || errors.Is(err, aromatic.ErrKekuleNotFound)
}
