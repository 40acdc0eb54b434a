package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		winSize int
		want    []float64
	}{
		{"full contrast", []float64{0, 4, 0, 4}, 2, []float64{1, 1}},
		{"half contrast", []float64{1, 3, 3, 1}, 4, []float64{0.5}},
		{"dark window", []float64{0, 0, 0}, 3, []float64{0}},
		{"partial window dropped", []float64{1, 3, 2}, 2, []float64{0.5}},
		{"invalid window", []float64{1, 2}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.values, tt.winSize))
		})
	}
}

func TestIdealFringesHaveFullVisibility(t *testing.T) {
	p := parameters.Default()
	p.SlitWidth = 0
	curve := interference.Compute(p)

	winSize := WindowFor(p, curve.Positions[1]-curve.Positions[0])
	require.Equal(t, 29, winSize)

	v := Compute(curve.Intensities, winSize)
	require.NotEmpty(t, v)
	assert.Greater(t, Mean(v), 0.95)
}

func TestWindowForHasFloor(t *testing.T) {
	p := parameters.Parameters{SlitSeparation: 1, Wavelength: 400, ScreenDistance: 500}
	assert.Equal(t, 2, WindowFor(p, 1e-3))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 0.75, Mean([]float64{0.5, 1}), 1e-12)
}
