// Package envelope fits the single-slit diffraction envelope that modulates
// the double-slit fringes.
//
// The envelope (sin α / α)² is sampled at the given screen positions and
// resampled onto a fixed grid with a not-a-knot cubic spline, so it can be
// overlaid on the intensity curve.
package envelope

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
)

const (
	Samples   = 500
	minPoints = 4
)

var (
	ErrNoSlitWidth       = errors.New("envelope is undefined for zero slit width")
	ErrTooFewPoints      = fmt.Errorf("at least %d positions are required", minPoints)
	ErrDuplicatePosition = errors.New("positions must be distinct numbers")
)

type Curve struct {
	Positions []float64 // millimeters
	Values    []float64
}

// Compute fits the envelope over positions given in meters, in any order.
func Compute(p parameters.Parameters, positions []float64) (Curve, error) {
	if p.SlitWidth <= 0 {
		return Curve{}, ErrNoSlitWidth
	}
	if len(positions) < minPoints {
		return Curve{}, ErrTooFewPoints
	}

	sorted := slices.Clone(positions)
	slices.Sort(sorted)

	si := p.SI()
	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, x := range sorted {
		if i > 0 && !(x > sorted[i-1]) {
			return Curve{}, ErrDuplicatePosition
		}
		xs[i] = x * 1e3
		ys[i] = interference.Diffraction(interference.Alpha(si, x))
	}

	var spline interp.NotAKnotCubic
	if err := spline.Fit(xs, ys); err != nil {
		return Curve{}, fmt.Errorf("failed to fit envelope: %w", err)
	}

	fit := floats.Span(make([]float64, Samples), floats.Min(xs), floats.Max(xs))
	values := make([]float64, len(fit))
	for i, x := range fit {
		values[i] = clamp(spline.Predict(x))
	}
	return Curve{Positions: fit, Values: values}, nil
}

// The spline may overshoot slightly around the envelope zeros.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
