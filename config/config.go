package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

// MinSweepStep bounds the sweep view to a few hundred curves.
const MinSweepStep = 1.0 // nm

type Config struct {
	Output    string
	Format    format.Format
	Mode      mode.Mode
	Envelope  bool
	Verbose   bool
	SweepStep float64 // nm
	Params    parameters.Parameters
}

// file mirrors Config as it is written in YAML. Pointers tell unset keys apart.
type file struct {
	Output     string                 `yaml:"output"`
	Format     string                 `yaml:"format"`
	Mode       string                 `yaml:"mode"`
	Envelope   *bool                  `yaml:"envelope"`
	Verbose    *bool                  `yaml:"verbose"`
	SweepStep  *float64               `yaml:"sweep_step"`
	Parameters *parameters.Parameters `yaml:"parameters"`
}

func Default() Config {
	return Config{
		Output:    "pattern.html",
		Format:    format.HTML,
		Mode:      mode.Pattern,
		SweepStep: 50,
		Params:    parameters.Default(),
	}
}

// Load applies the YAML file at path on top of cfg.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	f := file{Parameters: &cfg.Params}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Format != "" {
		if cfg.Format, err = format.UnmarshalText(f.Format); err != nil {
			return err
		}
	}
	if f.Mode != "" {
		if cfg.Mode, err = mode.UnmarshalText(f.Mode); err != nil {
			return err
		}
	}
	if f.Envelope != nil {
		cfg.Envelope = *f.Envelope
	}
	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}
	if f.SweepStep != nil {
		cfg.SweepStep = *f.SweepStep
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if !(c.SweepStep >= MinSweepStep) {
		return fmt.Errorf("sweep step must be at least %g nm, got %g", MinSweepStep, c.SweepStep)
	}
	return nil
}

// OutputPath makes the extension of Output match the format: another format's
// extension is replaced, anything else is kept and the extension appended.
func (c *Config) OutputPath() string {
	ext := filepath.Ext(c.Output)
	if strings.EqualFold(ext, c.Format.Ext()) {
		return c.Output
	}
	if _, err := format.UnmarshalText(strings.ToLower(strings.TrimPrefix(ext, "."))); err == nil {
		return strings.TrimSuffix(c.Output, ext) + c.Format.Ext()
	}
	return c.Output + c.Format.Ext()
}
