package distortion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var model ColorChannel = Identity{}

	radii := []float64{0, 1e-9, 0.25, 0.5, 1.0, 10.0, 1e6}
	for _, r := range radii {
		assert.Equal(t, r, model.Distort(r), "Distort(%v)", r)
		assert.Equal(t, r, model.DistortInverse(r), "DistortInverse(%v)", r)
	}
}

func TestPolynomialDistort(t *testing.T) {
	tests := []struct {
		name         string
		offset       float64
		coefficients []float64
		r            float64
		expected     float64
	}{
		// p(r) = 2r + 3, scaled by 0.5
		{"linear at zero", 0.5, []float64{2, 3}, 0, 1.5},
		{"linear at one", 0.5, []float64{2, 3}, 1, 2.5},
		// p(r) = r^2 + 2r + 1 = (r+1)^2
		{"quadratic", 1.0, []float64{1, 2, 1}, 2, 9},
		{"quadratic fractional", 1.0, []float64{1, 2, 1}, 0.5, 2.25},
		// Constant polynomial: corrected radius is offset * c regardless of r
		{"constant", 2.0, []float64{3}, 7, 6},
		// No coefficients: polynomial evaluates to zero
		{"empty coefficients", 2.0, nil, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolynomial(tt.offset, tt.coefficients)
			assert.InDelta(t, tt.expected, p.Distort(tt.r), 1e-12)
		})
	}
}

func TestPolynomialAccessors(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	p := NewPolynomial(0.5, coeffs)

	assert.Equal(t, 0.5, p.Offset())
	assert.Equal(t, coeffs, p.Coefficients())

	// Both the constructor argument and the accessor result must be
	// detached from the model's internal state.
	coeffs[0] = 99
	got := p.Coefficients()
	assert.Equal(t, 1.0, got[0])
	got[1] = 99
	assert.Equal(t, 2.0, p.Coefficients()[1])
}

func TestPolynomialDistortInverse(t *testing.T) {
	// A gently increasing mapping similar in shape to a real lens
	// correction: p(r) = 0.2 r^2 + 1.1 r + 0.01, offset 1.
	p := NewPolynomial(1.0, []float64{0.2, 1.1, 0.01})

	for _, r := range []float64{0.05, 0.1, 0.3, 0.5, 0.8, 1.0} {
		distorted := p.Distort(r)
		recovered := p.DistortInverse(distorted)
		assert.InDelta(t, r, recovered, 1e-5, "round trip at r=%v", r)
	}
}

func TestPolynomialDistortInverseLinear(t *testing.T) {
	// Distort(r) = 2r, so the inverse is exactly r/2.
	p := NewPolynomial(2.0, []float64{1, 0})
	assert.InDelta(t, 0.35, p.DistortInverse(0.7), 1e-6)
}

func TestLookup(t *testing.T) {
	inputs := []float64{0, 0.5, 1.0}
	outputs := []float64{0, 0.6, 1.4}

	l, err := NewLookup(inputs, outputs)
	require.NoError(t, err)

	// Exact samples
	assert.InDelta(t, 0.0, l.Distort(0), 1e-12)
	assert.InDelta(t, 0.6, l.Distort(0.5), 1e-12)
	assert.InDelta(t, 1.4, l.Distort(1.0), 1e-12)

	// Midpoints interpolate linearly
	assert.InDelta(t, 0.3, l.Distort(0.25), 1e-12)
	assert.InDelta(t, 1.0, l.Distort(0.75), 1e-12)

	// Inverse table
	assert.InDelta(t, 0.5, l.DistortInverse(0.6), 1e-12)
	assert.InDelta(t, 0.25, l.DistortInverse(0.3), 1e-12)

	// Out-of-range radii clamp to the nearest sample
	assert.InDelta(t, 1.4, l.Distort(2.0), 1e-12)
	assert.InDelta(t, 0.0, l.Distort(-0.5), 1e-12)
}

func TestLookupErrors(t *testing.T) {
	_, err := NewLookup([]float64{0, 1}, []float64{0})
	assert.Error(t, err, "mismatched sample counts")

	_, err = NewLookup([]float64{0}, []float64{0})
	assert.Error(t, err, "single sample")

	_, err = NewLookup([]float64{0, 0.5, 0.5}, []float64{0, 1, 2})
	assert.Error(t, err, "inputs not strictly increasing")
}
