package hopfield

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"mnemos/internal/pattern"
)

// Weights is the symmetric, zero-diagonal connection matrix of a network.
// It is built once per pattern set and shared read-only by recall runs.
type Weights struct {
	n int
	m *mat.Dense
}

// Build generates connection weights from a pattern set using the
// outer-product rule of storage: the sum of p*p' over all stored patterns,
// minus P on the diagonal to remove self-connections, scaled by 1/N.
func Build(set *pattern.Set) (*Weights, error) {
	if set == nil || set.Len() == 0 {
		return nil, errors.New("pattern set must not be empty")
	}
	n := set.Units()
	sum := mat.NewDense(n, n, nil)
	for _, st := range set.All() {
		v := mat.NewVecDense(n, st.Data.Clone())
		sum.RankOne(sum, 1, v, v)
	}
	p := float64(set.Len())
	for i := 0; i < n; i++ {
		sum.Set(i, i, sum.At(i, i)-p)
	}
	sum.Scale(1/float64(n), sum)

	w := &Weights{n: n, m: sum}
	if err := w.check(); err != nil {
		return nil, err
	}
	return w, nil
}

// check enforces the storage invariants: no self-feedback and exact
// symmetry. A violation indicates broken pattern validation upstream.
func (w *Weights) check() error {
	for i := 0; i < w.n; i++ {
		if w.m.At(i, i) != 0 {
			return fmt.Errorf("self-connection at unit %d: %v", i, w.m.At(i, i))
		}
		for j := i + 1; j < w.n; j++ {
			if w.m.At(i, j) != w.m.At(j, i) {
				return fmt.Errorf("asymmetric weights at (%d,%d)", i, j)
			}
		}
	}
	return nil
}

// Units returns the network size N.
func (w *Weights) Units() int { return w.n }

func (w *Weights) At(i, j int) float64 { return w.m.At(i, j) }

// Matrix exposes the weight matrix for inspection.
func (w *Weights) Matrix() mat.Matrix { return w.m }

func (w *Weights) row(i int) []float64 { return w.m.RawRowView(i) }
