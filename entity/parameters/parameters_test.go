package parameters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Parameters)
		wantErr bool
	}{
		{"default", func(*Parameters) {}, false},
		{"lower bounds", func(p *Parameters) {
			*p = Parameters{MinSlitSeparation, MinWavelength, MinScreenDistance, MinSlitWidth}
		}, false},
		{"upper bounds", func(p *Parameters) {
			*p = Parameters{MaxSlitSeparation, MaxWavelength, MaxScreenDistance, MaxSlitWidth}
		}, false},
		{"separation too small", func(p *Parameters) { p.SlitSeparation = 0.1 }, true},
		{"wavelength too long", func(p *Parameters) { p.Wavelength = 780 }, true},
		{"screen too close", func(p *Parameters) { p.ScreenDistance = 100 }, true},
		{"negative slit width", func(p *Parameters) { p.SlitWidth = -0.01 }, true},
		{"nan wavelength", func(p *Parameters) { p.Wavelength = math.NaN() }, true},
		{"infinite distance", func(p *Parameters) { p.ScreenDistance = math.Inf(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.modify(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNaNReportsNotFinite(t *testing.T) {
	p := Default()
	p.SlitWidth = math.NaN()
	assert.ErrorIs(t, p.Validate(), ErrNotFinite)
}

func TestSI(t *testing.T) {
	si := Default().SI()
	assert.InDelta(t, 0.4e-3, si.SlitSeparation, 1e-15)
	assert.InDelta(t, 590e-9, si.Wavelength, 1e-18)
	assert.InDelta(t, 2.0, si.ScreenDistance, 1e-12)
	assert.InDelta(t, 0.05e-3, si.SlitWidth, 1e-15)
}
