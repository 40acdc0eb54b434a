package entity

import (
	"errors"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/opts"
)

type Series struct {
	name  string
	x     []float64
	y     []float64
	color string
}

func NewSeries(name string, x, y []float64) (*Series, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("length mismatch: %d positions, %d values", len(x), len(y))
	}
	return &Series{name: name, x: x, y: y}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) X() []float64 {
	return s.x
}

func (s *Series) Y() []float64 {
	return s.y
}

// Color is a "#rrggbb" string, empty when the renderer should pick one.
func (s *Series) Color() string {
	return s.color
}

func (s *Series) WithColor(color string) *Series {
	s.color = color
	return s
}

func (s *Series) Len() int {
	return len(s.x)
}

// Data returns [x, y] pairs for a chart with a value x-axis.
func (s *Series) Data() []opts.LineData {
	data := make([]opts.LineData, len(s.x))
	for i := range s.x {
		data[i] = opts.LineData{Value: []float64{s.x[i], s.y[i]}}
	}
	return data
}

func (s *Series) Max() float64 {
	if len(s.y) == 0 {
		return 0
	}
	return s.y[s.maxIdx()]
}

func (s *Series) maxIdx() int {
	maxIdx := 0
	for i, v := range s.y {
		if v > s.y[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}
