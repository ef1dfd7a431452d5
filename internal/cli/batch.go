package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/thiele/internal/config"
	"github.com/katalvlaran/thiele/internal/metrics"
)

// Result is the outcome for one input line.
type Result struct {
	Line    int      `json:"line"`
	Input   string   `json:"input"`
	SMILES  []string `json:"smiles,omitempty"`
	Changed bool     `json:"changed"`
	Valid   *bool    `json:"valid,omitempty"`
	Rings   []int    `json:"rings,omitempty"`
	Error   string   `json:"error,omitempty"`

	// status is the metrics result label.
	status string
}

// processor turns one SMILES string into a result. A returned error is
// recorded on the result, it does not stop the batch.
type processor func(ctx context.Context, rt *Runtime, input string) (*Result, error)

// readInputs returns args, or the non-blank lines of in when args is empty.
func readInputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var out []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: read input: %w", err)
	}
	return out, nil
}

// runBatch processes inputs on a bounded worker pool and writes results in
// input order. It fails when at least one molecule failed.
func runBatch(cmd *cobra.Command, args []string, op string, fn processor) error {
	rt, err := RuntimeFrom(cmd)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	results := make([]*Result, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(rt.Config.Worker.Count)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(ctx, rt, input)
			if res == nil {
				res = &Result{}
			}
			res.Line, res.Input = i+1, input
			if err != nil {
				res.Error, res.status = err.Error(), metrics.ResultError
				if invalidRing(err) {
					res.status = metrics.ResultInvalid
				}
				rt.Logger.Warn("molecule failed",
					zap.String("op", op), zap.Int("line", i+1), zap.Error(err))
			}
			if rt.Metrics != nil {
				rt.Metrics.ObserveMolecule(op, res.status)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if err := writeResults(cmd.OutOrStdout(), rt.Config.Output.Format, results); err != nil {
		return err
	}
	rt.Logger.Info("run finished",
		zap.String("op", op), zap.Int("molecules", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%s: %d of %d molecules failed", op, failed, len(results))
	}
	return nil
}

func writeResults(w io.Writer, format string, results []*Result) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("cli: encode result: %w", err)
			}
		}
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, r := range results {
		writeText(bw, r)
	}
	return bw.Flush()
}

// writeText prints one result. Errors and verdicts keep the input on the
// line; conversions print the bare SMILES.
func writeText(w io.Writer, r *Result) {
	switch {
	case r.Error != "":
		fmt.Fprintf(w, "%s\terror: %s\n", r.Input, r.Error)
	case r.Valid != nil:
		verdict := "invalid"
		if *r.Valid {
			verdict = "valid"
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Input, verdict)
	case r.Rings != nil:
		sizes := make([]string, len(r.Rings))
		for i, s := range r.Rings {
			sizes[i] = fmt.Sprint(s)
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Input, strings.Join(sizes, ","))
	default:
		for _, s := range r.SMILES {
			fmt.Fprintln(w, s)
		}
	}
}
