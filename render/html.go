package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML renders an interactive go-echarts page.
type HTML struct{}

func (HTML) Render(w io.Writer, scene *Scene) error {
	if len(scene.Curves) == 0 {
		return ErrNoCurves
	}
	page := components.NewPage()
	page.PageTitle = scene.Title
	if scene.Mode.ShowCurve() {
		page.AddCharts(intensityChart(scene))
	}
	if scene.Mode.ShowFringes() {
		page.AddCharts(fringeChart(scene))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func intensityChart(scene *Scene) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       scene.Title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: scene.Title,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
			Top:          "30px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "intensity",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: xAxisName,
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yAxisName,
			Type: "value",
			Show: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	for _, s := range scene.Curves {
		c := seriesColor(s, defaultColor)
		line.AddSeries(s.Name(), s.Data(),
			charts.WithLineStyleOpts(opts.LineStyle{Color: c}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c}),
		)
	}
	if scene.Envelope != nil {
		line.AddSeries(scene.Envelope.Name(), scene.Envelope.Data(),
			charts.WithLineStyleOpts(opts.LineStyle{Color: envelopeColor, Type: "dashed"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: envelopeColor}),
		)
	}
	return line
}

func fringeChart(scene *Scene) *charts.HeatMap {
	curve := scene.Curves[0]
	hm := charts.NewHeatMap()

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "300px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Fringes",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xAxisName,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: []string{""},
			Show: opts.Bool(false),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: 1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#000000", scene.Color.Hex()},
			},
		}),
	)

	labels := make([]string, curve.Len())
	for i, x := range curve.X() {
		labels[i] = fmt.Sprintf("%.2f", x)
	}
	hm.SetXAxis(labels)

	levels := Levels(curve)
	data := make([]opts.HeatMapData, len(levels))
	for i, level := range levels {
		data[i] = opts.HeatMapData{Value: [3]interface{}{i, 0, level}}
	}
	hm.AddSeries(curve.Name(), data)
	return hm
}
