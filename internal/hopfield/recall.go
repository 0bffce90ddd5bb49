package hopfield

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"mnemos/internal/pattern"
)

// Recall runs the asynchronous retrieval dynamics. The state is initialized
// to a copy of the presented pattern; there is no external input after the
// first step. Each sweep visits every unit exactly once in a fresh random
// order, and each update sees the effect of all earlier updates in the same
// sweep. The state after the final sweep is returned as-is; there is no
// convergence test.
func Recall(w *Weights, initial pattern.Pattern, sweeps int, rng *rand.Rand) (pattern.Pattern, error) {
	if w == nil {
		return nil, errors.New("weights must not be nil")
	}
	if rng == nil {
		return nil, errors.New("rng must not be nil")
	}
	if len(initial) != w.n {
		return nil, fmt.Errorf("state length %d does not match network size %d", len(initial), w.n)
	}
	if sweeps < 1 {
		return nil, fmt.Errorf("sweeps must be at least 1, got %d", sweeps)
	}

	state := initial.Clone()
	for s := 0; s < sweeps; s++ {
		for _, i := range rng.Perm(w.n) {
			field := floats.Dot(w.row(i), state)
			// A unit with zero local field holds its previous value.
			switch {
			case field > 0:
				state[i] = 1
			case field < 0:
				state[i] = -1
			}
		}
	}
	return state, nil
}
