package config

import (
	"runtime"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel         = "warn"
	DefaultLogFormat        = "console"
	DefaultFixTautomers     = true
	DefaultFixMetalOrganics = true
	DefaultEnumerateLimit   = 0
	DefaultMetricsEnabled   = false
	DefaultOutputFormat     = OutputText

	// MaxWorkers caps worker.count.
	MaxWorkers = 256
)

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n > MaxWorkers {
		n = MaxWorkers
	}
	return n
}

// setDefaults registers every key so that environment overrides are seen
// by Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("log.error_output_paths", []string{"stderr"})
	v.SetDefault("aromatize.fix_tautomers", DefaultFixTautomers)
	v.SetDefault("aromatize.fix_metal_organics", DefaultFixMetalOrganics)
	v.SetDefault("enumerate.limit", DefaultEnumerateLimit)
	v.SetDefault("worker.count", DefaultWorkers())
	v.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	v.SetDefault("output.format", DefaultOutputFormat)
}
