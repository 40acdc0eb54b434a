package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doubleslit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-d", "0.5", "-l", "450", "-D", "1000", "-b", "0",
		"-f", "png", "-m", "i", "-o", "out.png", "-envelope", "-v",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, parameters.Parameters{SlitSeparation: 0.5, Wavelength: 450, ScreenDistance: 1000}, cfg.Params)
	assert.Equal(t, format.Png, cfg.Format)
	assert.Equal(t, mode.Intensity, cfg.Mode)
	assert.Equal(t, "out.png", cfg.Output)
	assert.True(t, cfg.Envelope)
	assert.True(t, cfg.Verbose)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"out of range wavelength", []string{"-l", "800"}},
		{"bad format", []string{"-f", "gif"}},
		{"bad mode", []string{"-m", "x"}},
		{"negative sweep step", []string{"-sweep-step", "-5"}},
		{"tiny sweep step", []string{"-m", "sweep", "-sweep-step", "1e-6"}},
		{"fractional sweep step below minimum", []string{"-sweep-step", "0.1"}},
		{"empty output", []string{"-o", ""}},
		{"unknown flag", []string{"-x"}},
		{"positional argument", []string{"extra"}},
		{"missing config", []string{"-config", "/does/not/exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, io.Discard)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output: green
format: svg
mode: sweep
envelope: true
sweep_step: 25
parameters:
  wavelength_nm: 532
  slit_width_mm: 0.1
`)
	cfg := Default()
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "green", cfg.Output)
	assert.Equal(t, format.Svg, cfg.Format)
	assert.Equal(t, mode.Sweep, cfg.Mode)
	assert.True(t, cfg.Envelope)
	assert.Equal(t, 25.0, cfg.SweepStep)
	assert.Equal(t, 532.0, cfg.Params.Wavelength)
	assert.Equal(t, 0.1, cfg.Params.SlitWidth)
	// keys missing from the file keep their defaults
	assert.Equal(t, 0.4, cfg.Params.SlitSeparation)
	assert.Equal(t, 2000.0, cfg.Params.ScreenDistance)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, content := range []string{"format: gif", "mode: nope", "parameters: [1, 2]"} {
		cfg := Default()
		assert.Error(t, Load(writeConfig(t, content), &cfg), content)
	}
}

func TestSweepStepBoundary(t *testing.T) {
	cfg, err := Parse([]string{"-m", "sweep", "-sweep-step", "1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, MinSweepStep, cfg.SweepStep)

	c := Default()
	c.SweepStep = 0.999
	assert.Error(t, c.Validate())
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "format: csv\nparameters:\n  wavelength_nm: 650\n  slit_separation_mm: 0.8\n")

	cfg, err := Parse([]string{"-config", path, "-l", "420"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, format.Csv, cfg.Format)
	assert.Equal(t, 420.0, cfg.Params.Wavelength)
	assert.Equal(t, 0.8, cfg.Params.SlitSeparation)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		f      format.Format
		want   string
	}{
		{"pattern.html", format.HTML, "pattern.html"},
		{"pattern.HTML", format.HTML, "pattern.HTML"},
		{"pattern.html", format.Png, "pattern.png"},
		{"pattern", format.Csv, "pattern.csv"},
		{"run.v2", format.Svg, "run.v2.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			cfg := Config{Output: tt.output, Format: tt.f}
			assert.Equal(t, tt.want, cfg.OutputPath())
		})
	}
}
