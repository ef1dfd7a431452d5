// Package config loads thiele command line settings from an optional YAML
// file and THIELE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/thiele/internal/logging"
)

// Config is the fully resolved settings tree.
type Config struct {
	Log       logging.Config  `mapstructure:"log"`
	Aromatize AromatizeConfig `mapstructure:"aromatize"`
	Enumerate EnumerateConfig `mapstructure:"enumerate"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Output    OutputConfig    `mapstructure:"output"`
}

// AromatizeConfig toggles the encoding repairs of aromatization.
type AromatizeConfig struct {
	FixTautomers     bool `mapstructure:"fix_tautomers"`
	FixMetalOrganics bool `mapstructure:"fix_metal_organics"`
}

// EnumerateConfig bounds Kekulé enumeration. Limit 0 means unbounded.
type EnumerateConfig struct {
	Limit int `mapstructure:"limit"`
}

// WorkerConfig sizes the molecule worker pool.
type WorkerConfig struct {
	Count int `mapstructure:"count"`
}

// MetricsConfig enables the end-of-run metrics dump.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q",
			logging.FormatJSON, logging.FormatConsole, c.Log.Format)
	}
	if c.Enumerate.Limit < 0 {
		return fmt.Errorf("enumerate.limit must be >= 0, got %d", c.Enumerate.Limit)
	}
	if c.Worker.Count < 1 || c.Worker.Count > MaxWorkers {
		return fmt.Errorf("worker.count must be in [1,%d], got %d", MaxWorkers, c.Worker.Count)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", OutputText, OutputJSON, c.Output.Format)
	}
	return nil
}
