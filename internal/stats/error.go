package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"mnemos/internal/pattern"
)

// successThreshold marks a trial as successful when the squared error is
// below it. For bipolar vectors every mismatch contributes exactly 4, so a
// threshold of 1 accepts only exact recovery.
const successThreshold = 1.0

// SquaredError returns the squared error between a reference pattern and a
// recalled state: the dot product of the elementwise difference with itself.
func SquaredError(reference, recalled pattern.Pattern) (float64, error) {
	if len(reference) != len(recalled) {
		return 0, fmt.Errorf("length mismatch: reference %d, recalled %d", len(reference), len(recalled))
	}
	diff := make([]float64, len(reference))
	floats.SubTo(diff, reference, recalled)
	return floats.Dot(diff, diff), nil
}
