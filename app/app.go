package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/doubleslit/config"
	"github.com/AnkushinDaniil/doubleslit/entity"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/envelope"
	"github.com/AnkushinDaniil/doubleslit/interference"
	"github.com/AnkushinDaniil/doubleslit/render"
	"github.com/AnkushinDaniil/doubleslit/spectrum"
	"github.com/AnkushinDaniil/doubleslit/visibility"
)

// rendererFor picks the renderer for the configured format.
var rendererFor = render.For

type App struct {
	Config *config.Config
}

// Summary holds the figures logged after each run.
type Summary struct {
	FringeSpacing       float64 // mm
	CentralMaximumWidth float64 // mm
	Visibility          float64
}

func New(cfg *config.Config) *App {
	return &App{Config: cfg}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	p := a.Config.Params
	log.WithFields(log.Fields{
		"output":         a.Config.OutputPath(),
		"format":         a.Config.Format,
		"mode":           a.Config.Mode,
		"envelope":       a.Config.Envelope,
		"slitSeparation": p.SlitSeparation,
		"wavelength":     p.Wavelength,
		"screenDistance": p.ScreenDistance,
		"slitWidth":      p.SlitWidth,
	}).Debug("App started")

	renderer, err := rendererFor(a.Config.Format)
	if err != nil {
		return fmt.Errorf("failed to pick renderer: %w", err)
	}

	scene, err := a.Scene(ctx)
	if err != nil {
		return err
	}
	log.Info("Pattern computed")

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(a.Config.OutputPath())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := renderer.Render(f, scene); err != nil {
		f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil {
			log.WithError(rmErr).WithField("file", f.Name()).Warn("Failed to remove partial output")
		}
		return fmt.Errorf("failed to render %s: %w", a.Config.Format, err)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"file": f.Name(),
	}).Info("Pattern rendered and saved")

	return f.Close()
}

// Scene computes everything the configured view needs.
func (a *App) Scene(ctx context.Context) (*render.Scene, error) {
	p := a.Config.Params
	curve := interference.Compute(p)

	intensity, err := entity.NewSeries("Intensity", toMillimeters(curve.Positions), curve.Intensities)
	if err != nil {
		return nil, fmt.Errorf("failed to create intensity series: %w", err)
	}
	color := spectrum.WavelengthToRGB(p.Wavelength)
	intensity.WithColor(color.Hex())

	scene := &render.Scene{
		Title:  render.Title(p),
		Params: p,
		Mode:   a.Config.Mode,
		Color:  color,
		Curves: []*entity.Series{intensity},
	}

	summary := Summarize(p, curve)
	log.WithFields(log.Fields{
		"fringeSpacing": summary.FringeSpacing,
		"centralWidth":  summary.CentralMaximumWidth,
		"visibility":    summary.Visibility,
		"color":         color.Hex(),
	}).Info("Pattern summary")

	if a.Config.Envelope {
		env, err := envelopeSeries(p, curve)
		switch {
		case errors.Is(err, envelope.ErrNoSlitWidth):
			log.Warn("Envelope skipped: slit width is zero")
		case err != nil:
			return nil, err
		default:
			scene.Envelope = env
		}
	}

	if a.Config.Mode == mode.Sweep {
		scene.Curves, err = sweep(ctx, p, a.Config.SweepStep)
		if err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func Summarize(p parameters.Parameters, curve interference.Curve) Summary {
	winSize := visibility.WindowFor(p, curve.Positions[1]-curve.Positions[0])
	return Summary{
		FringeSpacing:       interference.FringeSpacing(p) * 1e3,
		CentralMaximumWidth: interference.CentralMaximumWidth(p) * 1e3,
		Visibility:          visibility.Mean(visibility.Compute(curve.Intensities, winSize)),
	}
}

func envelopeSeries(p parameters.Parameters, curve interference.Curve) (*entity.Series, error) {
	startTime := time.Now()
	env, err := envelope.Compute(p, curve.Positions)
	if err != nil {
		return nil, fmt.Errorf("failed to compute envelope: %w", err)
	}
	log.WithField("time", time.Since(startTime)).Debug("Envelope fitted")

	s, err := entity.NewSeries("Diffraction envelope", env.Positions, env.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope series: %w", err)
	}
	return s, nil
}

// sweep computes one curve per wavelength from MinWavelength to MaxWavelength.
func sweep(ctx context.Context, p parameters.Parameters, step float64) ([]*entity.Series, error) {
	if !(step >= config.MinSweepStep) {
		return nil, fmt.Errorf("sweep step must be at least %g nm, got %g", config.MinSweepStep, step)
	}
	n := int(math.Floor((parameters.MaxWavelength-parameters.MinWavelength)/step + 1e-9))

	startTime := time.Now()
	curves := make([]*entity.Series, 0, n+1)
	defer func() {
		log.WithFields(log.Fields{
			"time":   time.Since(startTime),
			"curves": len(curves),
		}).Debug("Sweep computed")
	}()

	for i := 0; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// rounded to drop the representation error of fractional steps from labels
		nm := math.Round((parameters.MinWavelength+float64(i)*step)*1e6) / 1e6
		p.Wavelength = nm
		curve := interference.Compute(p)
		s, err := entity.NewSeries(fmt.Sprintf("λ = %g nm", nm), toMillimeters(curve.Positions), curve.Intensities)
		if err != nil {
			return nil, fmt.Errorf("failed to create sweep series: %w", err)
		}
		curves = append(curves, s.WithColor(spectrum.WavelengthToRGB(nm).Hex()))
	}
	return curves, nil
}

func toMillimeters(positions []float64) []float64 {
	mm := make([]float64, len(positions))
	for i, x := range positions {
		mm[i] = x * 1e3
	}
	return mm
}
