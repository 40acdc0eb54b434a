package entity

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	tests := []struct {
		name    string
		series  string
		x, y    []float64
		wantErr bool
	}{
		{"valid", "intensity", []float64{1, 2}, []float64{3, 4}, false},
		{"empty name", "", []float64{1}, []float64{1}, true},
		{"length mismatch", "intensity", []float64{1, 2}, []float64{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries(tt.series, tt.x, tt.y)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.series, s.Name())
			assert.Equal(t, len(tt.x), s.Len())
		})
	}
}

func TestSeriesData(t *testing.T) {
	s, err := NewSeries("envelope", []float64{-1, 0, 1}, []float64{0.5, 1, 0.25})
	require.NoError(t, err)
	s.WithColor("#ff0000")

	assert.Equal(t, []opts.LineData{
		{Value: []float64{-1, 0.5}},
		{Value: []float64{0, 1}},
		{Value: []float64{1, 0.25}},
	}, s.Data())
	assert.Equal(t, "#ff0000", s.Color())
	assert.Equal(t, 1.0, s.Max())
}
