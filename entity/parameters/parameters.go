package parameters

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinSlitSeparation = 0.2    // mm
	MaxSlitSeparation = 1.0    // mm
	MinWavelength     = 400.0  // nm
	MaxWavelength     = 700.0  // nm
	MinScreenDistance = 500.0  // mm
	MaxScreenDistance = 2000.0 // mm
	MinSlitWidth      = 0.0    // mm
	MaxSlitWidth      = 0.1    // mm
)

var ErrNotFinite = errors.New("parameter is not finite")

// Parameters describes the slit geometry in laboratory units.
type Parameters struct {
	SlitSeparation float64 `yaml:"slit_separation_mm"` // mm
	Wavelength     float64 `yaml:"wavelength_nm"`      // nm
	ScreenDistance float64 `yaml:"screen_distance_mm"` // mm
	SlitWidth      float64 `yaml:"slit_width_mm"`      // mm
}

// SI holds the same geometry converted to meters.
type SI struct {
	SlitSeparation float64
	Wavelength     float64
	ScreenDistance float64
	SlitWidth      float64
}

func Default() Parameters {
	return Parameters{
		SlitSeparation: 0.4,
		Wavelength:     590,
		ScreenDistance: 2000,
		SlitWidth:      0.05,
	}
}

func (p Parameters) SI() SI {
	return SI{
		SlitSeparation: p.SlitSeparation * 1e-3,
		Wavelength:     p.Wavelength * 1e-9,
		ScreenDistance: p.ScreenDistance * 1e-3,
		SlitWidth:      p.SlitWidth * 1e-3,
	}
}

func (p Parameters) Validate() error {
	if err := checkRange("slit separation", p.SlitSeparation, MinSlitSeparation, MaxSlitSeparation, "mm"); err != nil {
		return err
	}
	if err := checkRange("wavelength", p.Wavelength, MinWavelength, MaxWavelength, "nm"); err != nil {
		return err
	}
	if err := checkRange("screen distance", p.ScreenDistance, MinScreenDistance, MaxScreenDistance, "mm"); err != nil {
		return err
	}
	return checkRange("slit width", p.SlitWidth, MinSlitWidth, MaxSlitWidth, "mm")
}

func checkRange(name string, v, lo, hi float64, unit string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %w", name, ErrNotFinite)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %g and %g %s, got %g", name, lo, hi, unit, v)
	}
	return nil
}
