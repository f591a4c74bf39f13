package view

import "math"

// ScaleTransform maps a per-million value onto the log colour domain.
// Zero maps to ln(1) = 0 and values in (0, 1) stay negative. Negative
// values are corrections in the source and are treated as zero.
func ScaleTransform(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return math.Log(v)
}
