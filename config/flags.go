package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

// Parse builds a Config from command-line arguments. Precedence is
// defaults < config file < explicitly set flags.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	cfg := Default()

	var (
		configPath string
		formatText = cfg.Format.String()
		modeText   = cfg.Mode.String()
		flags      = cfg
	)

	fs := flag.NewFlagSet("doubleslit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { PrintUsage(stderr) }

	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&flags.Output, "o", cfg.Output, "Output file")
	fs.StringVar(&formatText, "f", formatText, "Output format: html, png, svg, csv")
	fs.StringVar(&modeText, "m", modeText, "View: pattern, intensity, fringes, sweep")
	fs.Float64Var(&flags.Params.SlitSeparation, "d", cfg.Params.SlitSeparation, "Slit separation, mm")
	fs.Float64Var(&flags.Params.Wavelength, "l", cfg.Params.Wavelength, "Wavelength, nm")
	fs.Float64Var(&flags.Params.ScreenDistance, "D", cfg.Params.ScreenDistance, "Slit to screen distance, mm")
	fs.Float64Var(&flags.Params.SlitWidth, "b", cfg.Params.SlitWidth, "Slit width, mm")
	fs.BoolVar(&flags.Envelope, "envelope", cfg.Envelope, "Overlay the diffraction envelope")
	fs.Float64Var(&flags.SweepStep, "sweep-step", cfg.SweepStep, "Wavelength step of the sweep view, nm")
	fs.BoolVar(&flags.Verbose, "v", cfg.Verbose, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if configPath != "" {
		if err := Load(configPath, &cfg); err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "o":
			cfg.Output = flags.Output
		case "f":
			cfg.Format, err = format.UnmarshalText(formatText)
		case "m":
			cfg.Mode, err = mode.UnmarshalText(modeText)
		case "d":
			cfg.Params.SlitSeparation = flags.Params.SlitSeparation
		case "l":
			cfg.Params.Wavelength = flags.Params.Wavelength
		case "D":
			cfg.Params.ScreenDistance = flags.Params.ScreenDistance
		case "b":
			cfg.Params.SlitWidth = flags.Params.SlitWidth
		case "envelope":
			cfg.Envelope = flags.Envelope
		case "sweep-step":
			cfg.SweepStep = flags.SweepStep
		case "v":
			cfg.Verbose = flags.Verbose
		}
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, `Young's double-slit simulator

Usage: doubleslit [flags]

PARAMETERS:
  -d <mm>                  Slit separation, 0.2..1 (default: 0.4)
  -l <nm>                  Wavelength, 400..700 (default: 590)
  -D <mm>                  Slit to screen distance, 500..2000 (default: 2000)
  -b <mm>                  Slit width, 0..0.1, 0 = ideal slits (default: 0.05)

OUTPUT:
  -o <file>                Output file (default: pattern.html)
  -f <html|png|svg|csv>    Output format (default: html)
  -m <view>                pattern, intensity, fringes or sweep (default: pattern)
  -envelope                Overlay the diffraction envelope (needs -b > 0)
  -sweep-step <nm>         Wavelength step of the sweep view, >= 1 (default: 50)
  -config <file>           YAML file with any of the settings above
  -v                       Verbose output

EXAMPLES:
  # Green light, wide slits, PNG figure with the envelope
  doubleslit -l 532 -b 0.1 -envelope -f png -o green.png

  # Compare all colors on one chart
  doubleslit -m sweep -b 0 -o sweep.html

`)
}
