package config

// Package config layers the CLI configuration: embedded defaults, an optional
// user YAML file, and AMPARO_* environment variables, in increasing precedence.

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TwiN/deepmerge"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaults []byte

type Config struct {
	ApiUrl               string        `yaml:"api_url" envconfig:"AMPARO_API_URL"`
	ApiTimeout           time.Duration `yaml:"api_timeout" envconfig:"AMPARO_API_TIMEOUT"`
	SessionFile          string        `yaml:"session_file" envconfig:"AMPARO_SESSION_FILE"`
	NotificationInterval time.Duration `yaml:"notification_interval" envconfig:"AMPARO_NOTIFICATION_INTERVAL"`
}

func Load() (*Config, error) {
	merged, err := mergedYaml()
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(merged, &raw); err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}

	cfg := &Config{}
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}

	// Environment variables win over both the defaults and the user file
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergedYaml() ([]byte, error) {
	path := userConfigPath()
	if path == "" {
		return defaults, nil
	}
	overrides, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	merged, err := deepmerge.YAML(defaults, overrides, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to merge %s with defaults: %w", path, err)
	}
	return merged, nil
}

func decode(raw map[string]interface{}, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     cfg,
		TagName:    "yaml",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// userConfigPath resolves the optional user config file. AMPARO_CONFIG takes
// precedence over the well-known location under the OS config dir.
func userConfigPath() string {
	if path := os.Getenv("AMPARO_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "amparo", "config.yaml")
}
