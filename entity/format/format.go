package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Png
	Csv
	Svg
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	case "svg":
		return Svg, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	case Svg:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	return "." + f.String()
}
