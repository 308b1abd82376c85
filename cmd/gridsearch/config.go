package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the ambient configuration shared by every command. Solver
// specific keys (ram.size, ram.bytes, robots.width, robots.height,
// playground.connections) are read by the solvers themselves through
// puzzle.Settings.
type Config struct {
	InputDir string `mapstructure:"input_dir"`
	LogLevel string `mapstructure:"log_level"`
	Workers  int    `mapstructure:"workers"`
}

// Fields renders c for structured logging.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"input_dir": c.InputDir,
		"log_level": c.LogLevel,
		"workers":   c.Workers,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("input_dir", "inputs")
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 0)
	v.SetEnvPrefix("GRIDSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and decodes the ambient keys.
// An explicit path must exist; the default gridsearch.yaml is optional.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gridsearch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
