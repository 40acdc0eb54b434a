// Package spectrum maps visible wavelengths to display colors with the usual
// piecewise-linear approximation of the spectrum.
package spectrum

import (
	"fmt"
	"image/color"
	"math"
)

const (
	VisibleMin = 380.0 // nm
	VisibleMax = 780.0 // nm
)

type RGB struct {
	R, G, B float64
}

var Black = RGB{}

type band struct {
	lo, hi float64
	color  func(nm float64) RGB
}

// Bands are half-open [lo, hi) except the last one, which includes VisibleMax.
var bands = []band{
	{380, 440, func(nm float64) RGB {
		atten := 0.3 + 0.7*(nm-380)/60
		return RGB{R: -(nm - 440) / 60 * atten, B: atten}
	}},
	{440, 490, func(nm float64) RGB {
		return RGB{G: (nm - 440) / 50, B: 1}
	}},
	{490, 510, func(nm float64) RGB {
		return RGB{G: 1, B: -(nm - 510) / 20}
	}},
	{510, 580, func(nm float64) RGB {
		return RGB{R: (nm - 510) / 70, G: 1}
	}},
	{580, 645, func(nm float64) RGB {
		return RGB{R: 1, G: -(nm - 645) / 65}
	}},
	{645, 780, func(nm float64) RGB {
		atten := 0.3 + 0.7*(780-nm)/135
		return RGB{R: atten}
	}},
}

// WavelengthToRGB returns Black outside the visible range.
func WavelengthToRGB(nm float64) RGB {
	for i, b := range bands {
		if nm >= b.lo && (nm < b.hi || i == len(bands)-1 && nm <= b.hi) {
			return b.color(nm)
		}
	}
	return Black
}

func (c RGB) Hex() string {
	n := c.Scale(1)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Scale returns the color with every channel multiplied by k, as an opaque pixel.
func (c RGB) Scale(k float64) color.NRGBA {
	return color.NRGBA{R: channel(c.R * k), G: channel(c.G * k), B: channel(c.B * k), A: 0xff}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 0xff))
}
