// Package distortion provides per-color-channel radial distortion models
// for head-mounted display lenses.
//
// A model maps a normalized radial coordinate, measured from the lens's
// optical center, to a corrected radial coordinate. One model exists per
// color channel because each wavelength refracts differently through the
// lens (chromatic aberration).
package distortion

// ColorChannel is the radial distortion model for a single color channel.
//
// Distort maps a radius >= 0 to a corrected radius >= 0, and
// DistortInverse approximates the inverse mapping. Physically valid
// calibrations produce monotonically non-decreasing mappings; this is
// assumed by consumers, not enforced here.
//
// Implementations are immutable after construction and safe for
// concurrent use, so a single instance may back any number of metrics
// builds.
type ColorChannel interface {
	Distort(r float64) float64
	DistortInverse(r float64) float64
}
