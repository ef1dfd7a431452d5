package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix of every environment override.
const envPrefix = "THIELE"

// newViper returns a viper instance reading YAML, with THIELE_ environment
// overrides where nested keys map "." to "_" (aromatize.fix_tautomers is
// THIELE_AROMATIZE_FIX_TAUTOMERS).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

// Load resolves settings from defaults, the YAML file at path (skipped
// when path is empty) and the environment, in increasing priority.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	return unmarshalAndValidate(v)
}

// LoadFromEnv resolves settings from defaults and the environment only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
