package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/AnkushinDaniil/doubleslit/entity"
)

// PNG renders a static figure with gonum/plot: the intensity curve and the
// fringe strip side by side, depending on the mode.
type PNG struct {
	Width  vg.Length
	Height vg.Length
}

func DefaultPNG() PNG {
	return PNG{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

func (r PNG) Render(w io.Writer, scene *Scene) error {
	if len(scene.Curves) == 0 {
		return ErrNoCurves
	}

	row := make([]*plot.Plot, 0, 2)
	if scene.Mode.ShowCurve() {
		p, err := intensityPlot(scene)
		if err != nil {
			return err
		}
		row = append(row, p)
	}
	if scene.Mode.ShowFringes() {
		row = append(row, fringePlot(scene))
	}

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 5,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for j, p := range row {
		p.Draw(canvases[0][j])
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

func intensityPlot(scene *Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Intensity"
	p.X.Label.Text = xAxisName
	p.Y.Label.Text = yAxisName
	p.Add(plotter.NewGrid())

	for _, s := range scene.Curves {
		if err := addLine(p, s, seriesColor(s, defaultColor), false); err != nil {
			return nil, err
		}
	}
	if scene.Envelope != nil {
		if err := addLine(p, scene.Envelope, envelopeColor, true); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true
	return p, nil
}

func addLine(p *plot.Plot, s *entity.Series, hex string, dashed bool) error {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.X()[i]
		xys[i].Y = s.Y()[i]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to create line %q: %w", s.Name(), err)
	}
	l.LineStyle.Color = hexColor(hex)
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	p.Add(l)
	p.Legend.Add(s.Name(), l)
	return nil
}

func fringePlot(scene *Scene) *plot.Plot {
	curve := scene.Curves[0]
	p := plot.New()
	p.Title.Text = "Fringes"
	p.X.Label.Text = xAxisName
	p.HideY()

	x := curve.X()
	img := FringeStrip(curve, scene.Color, FringeRows)
	p.Add(plotter.NewImage(img, x[0], 0, x[len(x)-1], FringeRows))
	return p
}
