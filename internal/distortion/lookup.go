package distortion

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Lookup interpolates between precomputed (input, output) radius samples
// measured for one channel. Radii outside the sampled range clamp to the
// nearest sample.
type Lookup struct {
	forward interp.PiecewiseLinear
	inverse interp.PiecewiseLinear
}

// NewLookup builds a lookup model from ordered samples. Inputs must be
// strictly increasing with at least two entries, and outputs must be
// strictly increasing for DistortInverse to be meaningful.
func NewLookup(inputs, outputs []float64) (*Lookup, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("sample count mismatch: %d inputs, %d outputs", len(inputs), len(outputs))
	}
	if len(inputs) < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", len(inputs))
	}

	l := &Lookup{}
	if err := l.forward.Fit(inputs, outputs); err != nil {
		return nil, fmt.Errorf("fitting forward table: %w", err)
	}
	if err := l.inverse.Fit(outputs, inputs); err != nil {
		return nil, fmt.Errorf("fitting inverse table: %w", err)
	}
	return l, nil
}

// Distort implements ColorChannel.
func (l *Lookup) Distort(r float64) float64 { return l.forward.Predict(r) }

// DistortInverse implements ColorChannel.
func (l *Lookup) DistortInverse(r float64) float64 { return l.inverse.Predict(r) }
