// Package render draws a computed diffraction pattern into one of the
// supported output formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AnkushinDaniil/doubleslit/entity"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/spectrum"
)

const (
	xAxisName     = "x, mm"
	yAxisName     = "Relative intensity"
	envelopeColor = "#d62728"
	defaultColor  = "#1f77b4"
)

var ErrNoCurves = errors.New("scene has no curves")

// Scene is everything a renderer needs. Curve positions are in millimeters.
type Scene struct {
	Title    string
	Params   parameters.Parameters
	Mode     mode.Mode
	Color    spectrum.RGB
	Curves   []*entity.Series
	Envelope *entity.Series
}

type Renderer interface {
	Render(w io.Writer, scene *Scene) error
}

func For(f format.Format) (Renderer, error) {
	switch f {
	case format.HTML:
		return HTML{}, nil
	case format.Png:
		return DefaultPNG(), nil
	case format.Svg:
		return SVG{Width: 1024, Height: 600}, nil
	case format.Csv:
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

func Title(p parameters.Parameters) string {
	return fmt.Sprintf("Young's double slit: d = %g mm, λ = %g nm, D = %g mm, b = %g mm",
		p.SlitSeparation, p.Wavelength, p.ScreenDistance, p.SlitWidth)
}

func (s *Scene) series() []*entity.Series {
	series := append([]*entity.Series(nil), s.Curves...)
	if s.Envelope != nil {
		series = append(series, s.Envelope)
	}
	return series
}

func seriesColor(s *entity.Series, fallback string) string {
	if s.Color() != "" {
		return s.Color()
	}
	return fallback
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
