// Package config loads the volcanium CLI configuration: built-in defaults, then
// an optional YAML file, then VOLCANIUM_* environment overrides. The file path
// itself comes from the caller; the CLI defaults it to VOLCANIUM_CONFIG.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/volcanium/pressure"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the CLI configuration.
type Config struct {
	Input   string `yaml:"input"`
	Start   string `yaml:"start"`
	Workers int    `yaml:"workers"`
	Solo    struct {
		Budget int `yaml:"budget"`
	} `yaml:"solo"`
	Duo struct {
		Budget   int    `yaml:"budget"`
		Strategy string `yaml:"strategy"`
	} `yaml:"duo"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

func defaultConfig() Config {
	var c Config
	c.Input = "input.txt"
	c.Start = pressure.DefaultStart
	c.Workers = 1
	c.Solo.Budget = pressure.DefaultSoloBudget
	c.Duo.Budget = pressure.DefaultDuoBudget
	c.Duo.Strategy = pressure.PathDedup.String()
	c.Logging.Level = "info"
	return c
}

// LoadFile is Read followed by Validate.
func LoadFile(path string) (Config, error) {
	c, err := Read(path)
	if err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

// Read reads path over the defaults (an empty path skips the file) and applies
// environment overrides. The result is not validated, so callers can layer
// further overrides first.
func Read(path string) (Config, error) {
	c := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("VOLCANIUM_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("VOLCANIUM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VOLCANIUM_WORKERS"); v != "" {
		var n int
		if _, err := fmt.Sscan(v, &n); err != nil {
			return Config{}, fmt.Errorf("%w: VOLCANIUM_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Workers = n
	}

	return c, nil
}

// Validate checks ranges and names; the solvers re-check on use.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	case c.Start == "":
		return fmt.Errorf("%w: start is empty", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.Solo.Budget < 1:
		return fmt.Errorf("%w: solo.budget %d", ErrInvalidConfig, c.Solo.Budget)
	case c.Duo.Budget < 1:
		return fmt.Errorf("%w: duo.budget %d", ErrInvalidConfig, c.Duo.Budget)
	}
	if _, err := pressure.ParseStrategy(c.Duo.Strategy); err != nil {
		return fmt.Errorf("%w: duo.strategy: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Strategy returns the parsed duo strategy.
func (c Config) Strategy() pressure.Strategy {
	s, _ := pressure.ParseStrategy(c.Duo.Strategy)
	return s
}
