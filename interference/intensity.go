// Package interference evaluates the double-slit intensity on the screen
// using the small-angle path difference d·x/D.
package interference

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

const (
	Samples      = 1000
	HalfWidth    = 0.05 // meters
	AlphaEpsilon = 1e-10
	MaxIntensity = 4.0
)

type Curve struct {
	Positions   []float64 // meters
	Intensities []float64
}

// Compute samples the intensity over [-HalfWidth, HalfWidth].
func Compute(p parameters.Parameters) Curve {
	si := p.SI()
	positions := floats.Span(make([]float64, Samples), -HalfWidth, HalfWidth)
	intensities := make([]float64, len(positions))
	for i, x := range positions {
		intensities[i] = Intensity(si, x)
	}
	return Curve{Positions: positions, Intensities: intensities}
}

// Intensity returns the intensity at screen position x (meters).
func Intensity(si parameters.SI, x float64) float64 {
	delta := si.SlitSeparation * x / si.ScreenDistance
	phase := 2 * math.Pi * delta / si.Wavelength
	c := math.Cos(phase / 2)
	interference := MaxIntensity * c * c
	if si.SlitWidth == 0 {
		return interference
	}
	return Diffraction(Alpha(si, x)) * interference
}

// Alpha is the single-slit diffraction parameter π·b·sin(θ)/λ.
func Alpha(si parameters.SI, x float64) float64 {
	theta := math.Atan(x / si.ScreenDistance)
	return math.Pi * si.SlitWidth * math.Sin(theta) / si.Wavelength
}

// Diffraction returns (sin α / α)². A zero alpha is replaced by AlphaEpsilon.
func Diffraction(alpha float64) float64 {
	if alpha == 0 {
		alpha = AlphaEpsilon
	}
	s := math.Sin(alpha) / alpha
	return s * s
}

// FringeSpacing is the distance between neighbouring bright fringes, λD/d, in meters.
func FringeSpacing(p parameters.Parameters) float64 {
	si := p.SI()
	return si.Wavelength * si.ScreenDistance / si.SlitSeparation
}

// CentralMaximumWidth is the width of the central diffraction lobe, 2λD/b, in meters.
func CentralMaximumWidth(p parameters.Parameters) float64 {
	si := p.SI()
	if si.SlitWidth == 0 {
		return math.Inf(1)
	}
	return 2 * si.Wavelength * si.ScreenDistance / si.SlitWidth
}
