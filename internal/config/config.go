// Package config loads service settings from flexbi.yaml and FLEXBI_*
// environment variables. The classifier ratios live here because the 70%/30%
// reference constants are behavior-compatible defaults, not laws.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr" yaml:"listen_addr"`
	DBPath          string        `mapstructure:"db_path" yaml:"db_path"`
	OutputDir       string        `mapstructure:"output_dir" yaml:"output_dir"`
	ForecastURL     string        `mapstructure:"forecast_url" yaml:"forecast_url"`
	ForecastTimeout time.Duration `mapstructure:"forecast_timeout" yaml:"forecast_timeout"`
	DefaultTopN     int           `mapstructure:"default_top_n" yaml:"default_top_n"`

	Classifier Classifier `mapstructure:"classifier" yaml:"classifier"`
}

// Classifier holds the tunable role-detection ratios.
type Classifier struct {
	NumericRatio     float64 `mapstructure:"numeric_ratio" yaml:"numeric_ratio"`
	CategoricalRatio float64 `mapstructure:"categorical_ratio" yaml:"categorical_ratio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("db_path", "flexbi.db")
	v.SetDefault("output_dir", "output")
	v.SetDefault("forecast_url", "")
	v.SetDefault("forecast_timeout", 8*time.Second)
	v.SetDefault("default_top_n", 0)
	v.SetDefault("classifier.numeric_ratio", 0.70)
	v.SetDefault("classifier.categorical_ratio", 0.30)
}

// Load reads cfgFile when given, otherwise looks for flexbi.yaml in the
// working directory. A missing file is fine; defaults and env vars apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FLEXBI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("flexbi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration snapshot next to the database so a deployed
// instance records the thresholds it ran with.
func Save(c *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
