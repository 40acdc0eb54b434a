package mode

import "fmt"

type Mode uint8

const (
	// Pattern draws the intensity curve next to the fringe strip.
	Pattern Mode = iota
	Intensity
	Fringes
	// Sweep draws one intensity curve per wavelength of the visible range.
	Sweep
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "p", "pattern":
		return Pattern, nil
	case "i", "intensity":
		return Intensity, nil
	case "f", "fringes":
		return Fringes, nil
	case "s", "sweep":
		return Sweep, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Pattern:
		return "pattern"
	case Intensity:
		return "intensity"
	case Fringes:
		return "fringes"
	case Sweep:
		return "sweep"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) ShowCurve() bool {
	return m != Fringes
}

func (m Mode) ShowFringes() bool {
	return m == Pattern || m == Fringes
}
