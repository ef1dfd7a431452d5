// Package cli implements the thiele command tree: aromatize, kekulize,
// enumerate, check and rings over SMILES given as arguments or on stdin.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/thiele/aromatic"
	"github.com/katalvlaran/thiele/internal/config"
	"github.com/katalvlaran/thiele/internal/logging"
	"github.com/katalvlaran/thiele/internal/metrics"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath      string
	LogLevel        string
	OutputFormat    string
	Workers         int
	Limit           int
	Fast            bool
	NoTautomers     bool
	NoMetalOrganics bool
	Metrics         bool
}

// Runtime carries initialized dependencies through the command tree.
type Runtime struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Recorder
	RunID   string
	Fast    bool
}

type runtimeKey struct{}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "thiele",
		Short: "Aromaticity perception and Kekulé forms for SMILES",
		Long: "thiele converts molecules between aromatic (Thiele) and Kekulé\n" +
			"notation, enumerates Kekulé forms and reports SSSR rings.\n" +
			"Molecules are read from arguments or, when none are given, one per stdin line.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPostRun(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file (THIELE_* variables override it)")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", config.DefaultOutputFormat, "output format (text, json)")
	pf.IntVarP(&opts.Workers, "workers", "w", config.DefaultWorkers(), "concurrent molecules")
	pf.IntVar(&opts.Limit, "limit", config.DefaultEnumerateLimit, "maximum Kekulé forms per molecule, 0 for all")
	pf.BoolVar(&opts.Fast, "fast", false, "check: classify ring atoms only, skip the Kekulé search")
	pf.BoolVar(&opts.NoTautomers, "no-tautomers", false, "disable the tautomer repair")
	pf.BoolVar(&opts.NoMetalOrganics, "no-metal-organics", false, "disable the metal-organic charge repair")
	pf.BoolVar(&opts.Metrics, "metrics", false, "dump Prometheus metrics to stderr after the run")

	cmd.AddCommand(
		newAromatizeCmd(),
		newKekulizeCmd(),
		newEnumerateCmd(),
		newCheckCmd(),
		newRingsCmd(),
	)
	return cmd
}

// Execute runs the command tree on os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	rt := &Runtime{
		Config: cfg,
		RunID:  uuid.NewString(),
		Fast:   opts.Fast,
	}
	rt.Logger = logging.WithRun(logger, rt.RunID)
	if cfg.Metrics.Enabled {
		rt.Metrics = metrics.New()
	}
	rt.Logger.Debug("run started",
		zap.String("command", cmd.Name()),
		zap.Int("workers", cfg.Worker.Count),
		zap.String("output", cfg.Output.Format))

	cmd.SetContext(context.WithValue(cmd.Context(), runtimeKey{}, rt))
	return nil
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if f.Changed("output") {
		cfg.Output.Format = opts.OutputFormat
	}
	if f.Changed("workers") {
		cfg.Worker.Count = opts.Workers
	}
	if f.Changed("limit") {
		cfg.Enumerate.Limit = opts.Limit
	}
	if opts.NoTautomers {
		cfg.Aromatize.FixTautomers = false
	}
	if opts.NoMetalOrganics {
		cfg.Aromatize.FixMetalOrganics = false
	}
	if opts.Metrics {
		cfg.Metrics.Enabled = true
	}
}

func persistentPostRun(cmd *cobra.Command) error {
	rt, err := RuntimeFrom(cmd)
	if err != nil {
		return err
	}
	_ = rt.Logger.Sync()
	if rt.Metrics == nil {
		return nil
	}
	return rt.Metrics.WriteText(cmd.ErrOrStderr())
}

// RuntimeFrom extracts the Runtime stored by the root pre-run hook.
func RuntimeFrom(cmd *cobra.Command) (*Runtime, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("cli: command has no context")
	}
	rt, ok := ctx.Value(runtimeKey{}).(*Runtime)
	if !ok || rt == nil {
		return nil, fmt.Errorf("cli: runtime not initialized")
	}
	return rt, nil
}

// aromaticOptions maps the configuration onto conversion options.
func (rt *Runtime) aromaticOptions() []aromatic.Option {
	return []aromatic.Option{
		aromatic.WithFixTautomers(rt.Config.Aromatize.FixTautomers),
		aromatic.WithFixMetalOrganics(rt.Config.Aromatize.FixMetalOrganics),
		aromatic.WithLogger(rt.Logger),
	}
}
