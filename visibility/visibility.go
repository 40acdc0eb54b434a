package visibility

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
)

// PeriodNumber is the number of fringe periods covered by one window.
const PeriodNumber = 1

// Compute returns the contrast (max-min)/(max+min) of consecutive windows of
// winSize samples. A trailing partial window is dropped.
func Compute(values []float64, winSize int) []float64 {
	if winSize <= 0 {
		return nil
	}
	result := make([]float64, 0, len(values)/winSize)
	i := 0
	minimum, maximum := math.Inf(1), math.Inf(-1)
	for _, value := range values {
		minimum = math.Min(minimum, value)
		maximum = math.Max(maximum, value)
		i++
		if i == winSize {
			result = append(result, contrast(minimum, maximum))
			i = 0
			minimum, maximum = math.Inf(1), math.Inf(-1)
		}
	}
	return result
}

func contrast(minimum, maximum float64) float64 {
	if maximum+minimum == 0 {
		return 0
	}
	return (maximum - minimum) / (maximum + minimum)
}

// WindowFor returns the number of samples, spaced step meters apart, spanning
// PeriodNumber fringes.
func WindowFor(p parameters.Parameters, step float64) int {
	winSize := int(interference.FringeSpacing(p)/step) * PeriodNumber
	return max(winSize, 2)
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
