// Package hmd assembles head-mount and display metrics for a stereo
// head-mounted display from calibration properties.
//
// Every metrics build degrades to compiled-in defaults when a property is
// absent or malformed; no operation in this package can fail. A metrics
// value is assembled once per device configuration change and treated as
// read-only by the render pipeline that consumes it.
package hmd

import "github.com/GhostdroidR/frameworks-native/internal/distortion"

// VerticalAlignment positions the optical center vertically relative to
// the display panel.
type VerticalAlignment int

const (
	AlignCenter VerticalAlignment = iota
	AlignTop
	AlignBottom
)

// String returns the lowercase name of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return "center"
	}
}

// EyeOrientation is the counterclockwise rotation of one eye's viewport
// relative to the panel.
type EyeOrientation int

const (
	CCW0Degrees EyeOrientation = iota
	CCW90Degrees
	CCW180Degrees
	CCW270Degrees
)

// String returns the rotation in degrees, e.g. "ccw90".
func (o EyeOrientation) String() string {
	switch o {
	case CCW90Degrees:
		return "ccw90"
	case CCW180Degrees:
		return "ccw180"
	case CCW270Degrees:
		return "ccw270"
	default:
		return "ccw0"
	}
}

// DisplayOrientation is the mounting orientation of the panel.
type DisplayOrientation int

const (
	Portrait DisplayOrientation = iota
	Landscape
)

// String returns the lowercase name of the orientation.
func (o DisplayOrientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// HeadMountMetrics describes the geometry and optics of the head mount:
// lens placement, per-eye frustums, and the per-channel distortion models
// shared by both eyes. The three ColorChannel values are shared, not
// copied; they are immutable after construction, so reuse across builds
// and across goroutines is safe.
type HeadMountMetrics struct {
	// InterLensDistance is the distance between the two lens centers in
	// meters.
	InterLensDistance float64

	// LeftEyeToDisplay and RightEyeToDisplay are the distances from each
	// eye's exit pupil to the display panel along the viewing axis, in
	// meters.
	LeftEyeToDisplay  float64
	RightEyeToDisplay float64

	VerticalAlignment VerticalAlignment

	LeftFOV  FieldOfView
	RightFOV FieldOfView

	// Per-channel radial distortion, shared by both eyes.
	RedDistortion   distortion.ColorChannel
	GreenDistortion distortion.ColorChannel
	BlueDistortion  distortion.ColorChannel

	LeftEyeOrientation  EyeOrientation
	RightEyeOrientation EyeOrientation

	// LensToOriginOffset is the horizontal offset in meters from each
	// lens center to the display origin, derived from the inter-lens
	// distance and the gap between the two display halves.
	LensToOriginOffset float64
}

// DisplayMetrics describes the physical panel behind the lenses.
type DisplayMetrics struct {
	WidthPixels  int
	HeightPixels int

	// Physical size of one pixel in meters along each axis.
	MetersPerPixelX float64
	MetersPerPixelY float64

	// BorderSizeMeters is the inactive border around the panel.
	BorderSizeMeters float64

	// FrameIntervalMillis is the nominal time between refreshes.
	FrameIntervalMillis float64

	Orientation DisplayOrientation
}

// SizeMeters returns the physical panel dimensions.
func (d DisplayMetrics) SizeMeters() (width, height float64) {
	return float64(d.WidthPixels) * d.MetersPerPixelX,
		float64(d.HeightPixels) * d.MetersPerPixelY
}
