package pattern

import (
	"errors"
	"fmt"
	"math/rand"
)

// Flip returns a copy of p with exactly k distinct entries sign-flipped,
// chosen uniformly at random without replacement. k=0 returns an exact copy.
// The input pattern is never mutated.
func Flip(rng *rand.Rand, p Pattern, k int) (Pattern, error) {
	if rng == nil {
		return nil, errors.New("rng must not be nil")
	}
	if k < 0 || k > len(p) {
		return nil, fmt.Errorf("flip count %d out of range [0, %d]", k, len(p))
	}
	out := p.Clone()
	for _, i := range rng.Perm(len(p))[:k] {
		out[i] = -out[i]
	}
	return out, nil
}
