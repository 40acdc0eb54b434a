package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeaders = []string{"series", "x_mm", "value"}

// CSV writes every series as semicolon-separated rows.
type CSV struct{}

func (CSV) Render(w io.Writer, scene *Scene) error {
	if len(scene.Curves) == 0 {
		return ErrNoCurves
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, s := range scene.series() {
		x, y := s.X(), s.Y()
		for i := range x {
			row := []string{
				s.Name(),
				strconv.FormatFloat(x[i], 'f', 6, 64),
				strconv.FormatFloat(y[i], 'g', 10, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
