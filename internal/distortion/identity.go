package distortion

// Identity passes radii through unchanged. It stands in for a lens with
// no measurable distortion, used for simulation and degraded-calibration
// scenarios where the warp pass should be a no-op.
type Identity struct{}

// Distort implements ColorChannel.
func (Identity) Distort(r float64) float64 { return r }

// DistortInverse implements ColorChannel.
func (Identity) DistortInverse(r float64) float64 { return r }
