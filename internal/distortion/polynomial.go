package distortion

import "math"

// Polynomial models channel distortion as a polynomial in the input
// radius, scaled by a per-channel offset. Coefficients run from the
// highest-degree term down to the constant term; the degree is whatever
// the calibration measured, so different devices and channels may carry
// different coefficient counts.
type Polynomial struct {
	offset       float64
	coefficients []float64
}

// NewPolynomial builds a polynomial model from a calibrated offset and
// coefficient sequence. The coefficients are copied.
func NewPolynomial(offset float64, coefficients []float64) *Polynomial {
	return &Polynomial{
		offset:       offset,
		coefficients: append([]float64(nil), coefficients...),
	}
}

// Offset returns the per-channel scale factor.
func (p *Polynomial) Offset() float64 { return p.offset }

// Coefficients returns a copy of the coefficient sequence, highest degree
// first.
func (p *Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coefficients...)
}

// Distort implements ColorChannel. The corrected radius is the offset
// times the polynomial evaluated at r by Horner's rule.
func (p *Polynomial) Distort(r float64) float64 {
	var acc float64
	for _, c := range p.coefficients {
		acc = acc*r + c
	}
	return p.offset * acc
}

// inverseTolerance bounds the bracket width at which the secant iteration
// for DistortInverse stops.
const inverseTolerance = 1e-7

// maxInverseIterations caps the secant iteration so a degenerate
// calibration cannot loop forever.
const maxInverseIterations = 100

// DistortInverse implements ColorChannel, solving Distort(x) == r for x
// by the secant method. The result is an approximation; its quality
// depends on the calibration being monotonic near r.
func (p *Polynomial) DistortInverse(r float64) float64 {
	r0 := r / 2
	r1 := r / 3
	dr0 := r - p.Distort(r0)
	for i := 0; i < maxInverseIterations && math.Abs(r1-r0) > inverseTolerance; i++ {
		dr1 := r - p.Distort(r1)
		if dr1 == dr0 {
			break
		}
		r2 := r1 - dr1*((r1-r0)/(dr1-dr0))
		r0, dr0 = r1, dr1
		r1 = r2
	}
	return r1
}
