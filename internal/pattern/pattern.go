package pattern

import (
	"errors"
	"fmt"
)

// Pattern is a fixed-length vector of bipolar unit activations. Every entry
// is exactly -1 or +1.
type Pattern []float64

var ErrNotBipolar = errors.New("pattern entries must be -1 or +1")

// New validates and copies values into a Pattern.
func New(values []float64) (Pattern, error) {
	if len(values) == 0 {
		return nil, errors.New("pattern must not be empty")
	}
	for i, v := range values {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrNotBipolar, i, v)
		}
	}
	return Pattern(append([]float64(nil), values...)), nil
}

func (p Pattern) Clone() Pattern {
	return append(Pattern(nil), p...)
}

func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Stored is a named reference pattern held by a Set.
type Stored struct {
	Name string
	Data Pattern
}

// Set is a fixed-order collection of stored patterns of equal length. It is
// validated once at construction and immutable afterwards.
type Set struct {
	stored []Stored
	units  int
}

// NewSet validates that at least one pattern is supplied, that all patterns
// are bipolar and that all lengths agree.
func NewSet(stored ...Stored) (*Set, error) {
	if len(stored) == 0 {
		return nil, errors.New("pattern set must contain at least one pattern")
	}
	units := len(stored[0].Data)
	owned := make([]Stored, 0, len(stored))
	for _, st := range stored {
		data, err := New(st.Data)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", st.Name, err)
		}
		if len(data) != units {
			return nil, fmt.Errorf("pattern %q has length %d, want %d", st.Name, len(data), units)
		}
		owned = append(owned, Stored{Name: st.Name, Data: data})
	}
	return &Set{stored: owned, units: units}, nil
}

// Units returns the pattern length N shared by every stored pattern.
func (s *Set) Units() int { return s.units }

// Len returns the number of stored patterns P.
func (s *Set) Len() int { return len(s.stored) }

func (s *Set) At(i int) Stored { return s.stored[i] }

func (s *Set) All() []Stored {
	return append([]Stored(nil), s.stored...)
}

// Find returns the stored pattern with the given name.
func (s *Set) Find(name string) (Stored, bool) {
	for _, st := range s.stored {
		if st.Name == name {
			return st, true
		}
	}
	return Stored{}, false
}
