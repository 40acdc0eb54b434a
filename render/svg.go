package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// SVG renders the intensity curves with go-chart. The fringe strip is not drawn.
type SVG struct {
	Width  int
	Height int
}

func (r SVG) Render(w io.Writer, scene *Scene) error {
	if len(scene.Curves) == 0 {
		return ErrNoCurves
	}

	series := make([]chart.Series, 0, len(scene.Curves)+1)
	for _, s := range scene.Curves {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name(),
			XValues: s.X(),
			YValues: s.Y(),
			Style: chart.Style{
				StrokeColor: hexColor(seriesColor(s, defaultColor)),
				StrokeWidth: 1.5,
			},
		})
	}
	if env := scene.Envelope; env != nil {
		series = append(series, chart.ContinuousSeries{
			Name:    env.Name(),
			XValues: env.X(),
			YValues: env.Y(),
			Style: chart.Style{
				StrokeColor:     hexColor(envelopeColor),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5, 3},
			},
		})
	}

	graph := chart.Chart{
		Title:  scene.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: xAxisName,
		},
		YAxis: chart.YAxis{
			Name: yAxisName,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	return nil
}
