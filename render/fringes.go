package render

import (
	"image"

	"github.com/AnkushinDaniil/doubleslit/entity"
	"github.com/AnkushinDaniil/doubleslit/spectrum"
)

// FringeRows is the height of the fringe strip in pixels.
const FringeRows = 100

// Levels normalizes the series by its maximum; a dark series stays zero.
func Levels(s *entity.Series) []float64 {
	levels := make([]float64, s.Len())
	peak := s.Max()
	if peak <= 0 {
		return levels
	}
	for i, v := range s.Y() {
		levels[i] = v / peak
	}
	return levels
}

// FringeStrip paints one column per sample, colored by c and shaded by the
// normalized intensity.
func FringeStrip(s *entity.Series, c spectrum.RGB, rows int) *image.NRGBA {
	levels := Levels(s)
	img := image.NewNRGBA(image.Rect(0, 0, len(levels), rows))
	for x, level := range levels {
		px := c.Scale(level)
		for y := 0; y < rows; y++ {
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}
