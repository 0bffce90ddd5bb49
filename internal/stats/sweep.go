package stats

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"mnemos/internal/hopfield"
	"mnemos/internal/model"
	"mnemos/internal/pattern"
)

const defaultFlipStep = 3

// SweepConfig controls a recall-performance sweep.
type SweepConfig struct {
	FlipCounts  []int
	Repetitions int
	Sweeps      int
	Workers     int
	Seed        int64
}

// DefaultFlipCounts returns the corruption levels 0, step, 2*step, ... up to
// and including units/2.
func DefaultFlipCounts(units, step int) []int {
	if step < 1 {
		step = defaultFlipStep
	}
	counts := make([]int, 0, units/(2*step)+1)
	for k := 0; k <= units/2; k += step {
		counts = append(counts, k)
	}
	return counts
}

// PerformanceSweep estimates the recall success rate at each corruption
// level. Per flip count it runs cfg.Repetitions independent trials; each
// trial corrupts every stored pattern, recalls it, and scores success as
// exact recovery. Trials share the weight matrix read-only and are fanned
// out across a bounded worker pool, each with its own seeded random stream,
// so results are reproducible for a fixed cfg.Seed regardless of worker
// count.
func PerformanceSweep(ctx context.Context, set *pattern.Set, w *hopfield.Weights, cfg SweepConfig) ([]model.SweepPoint, error) {
	if set == nil || set.Len() == 0 {
		return nil, errors.New("pattern set must not be empty")
	}
	if w == nil {
		return nil, errors.New("weights must not be nil")
	}
	if w.Units() != set.Units() {
		return nil, fmt.Errorf("weight matrix size %d does not match pattern length %d", w.Units(), set.Units())
	}
	if cfg.Repetitions < 1 {
		return nil, fmt.Errorf("repetitions must be at least 1, got %d", cfg.Repetitions)
	}
	if len(cfg.FlipCounts) == 0 {
		return nil, errors.New("flip counts must not be empty")
	}
	n := set.Units()
	for _, k := range cfg.FlipCounts {
		if k < 0 || k > n {
			return nil, fmt.Errorf("flip count %d out of range [0, %d]", k, n)
		}
	}
	if cfg.Sweeps < 1 {
		cfg.Sweeps = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	points := make([]model.SweepPoint, 0, len(cfg.FlipCounts))
	for fi, k := range cfg.FlipCounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		means := make([]float64, cfg.Repetitions)
		errs := make([]error, cfg.Repetitions)
		workerPool := pool.New().WithMaxGoroutines(cfg.Workers)
		for rep := 0; rep < cfg.Repetitions; rep++ {
			rep := rep
			seed := cfg.Seed + int64(fi)*int64(cfg.Repetitions) + int64(rep)
			workerPool.Go(func() {
				rng := rand.New(rand.NewSource(seed))
				means[rep], errs[rep] = trialSuccessMean(set, w, k, cfg.Sweeps, rng)
			})
		}
		workerPool.Wait()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}

		points = append(points, model.SweepPoint{
			FlipCount:      k,
			FlipPercent:    100 * float64(k) / float64(n),
			SuccessPercent: 100 * stat.Mean(means, nil),
		})
	}
	return points, nil
}

// trialSuccessMean corrupts and recalls every stored pattern once and
// returns the mean binary success indicator.
func trialSuccessMean(set *pattern.Set, w *hopfield.Weights, flips, sweeps int, rng *rand.Rand) (float64, error) {
	indicators := make([]float64, 0, set.Len())
	for _, st := range set.All() {
		noisy, err := pattern.Flip(rng, st.Data, flips)
		if err != nil {
			return 0, err
		}
		recalled, err := hopfield.Recall(w, noisy, sweeps, rng)
		if err != nil {
			return 0, err
		}
		sqErr, err := SquaredError(st.Data, recalled)
		if err != nil {
			return 0, err
		}
		if sqErr < successThreshold {
			indicators = append(indicators, 1)
		} else {
			indicators = append(indicators, 0)
		}
	}
	return stat.Mean(indicators, nil), nil
}
