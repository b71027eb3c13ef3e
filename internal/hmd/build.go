package hmd

import (
	"github.com/GhostdroidR/frameworks-native/internal/distortion"
	"github.com/GhostdroidR/frameworks-native/internal/props"
)

// sharedIdentity backs all three channels of an undistorted build, so a
// consumer can detect pass-through mode by comparing channels.
var sharedIdentity distortion.ColorChannel = distortion.Identity{}

// HeadMountMetricsFrom assembles head mount metrics for the given per-eye
// fields of view, building one polynomial distortion model per color
// channel from the calibration source. It cannot fail: every input
// degrades to a compiled-in default.
func HeadMountMetricsFrom(src props.Source, leftFOV, rightFOV FieldOfView) HeadMountMetrics {
	offsets := props.Floats(src, KeyRGBPolynomialOffset, defaultPolynomialOffsets)
	if len(offsets) != 3 {
		offsets = defaultPolynomialOffsets
	}

	// The coefficient vectors carry no arity constraint: whatever degree
	// the calibration resolved is used.
	red := distortion.NewPolynomial(offsets[0],
		props.Floats(src, KeyRedPolynomial, defaultRedPolynomial))
	green := distortion.NewPolynomial(offsets[1],
		props.Floats(src, KeyGreenPolynomial, defaultGreenPolynomial))
	blue := distortion.NewPolynomial(offsets[2],
		props.Floats(src, KeyBluePolynomial, defaultBluePolynomial))

	return assemble(src, leftFOV, rightFOV, red, green, blue)
}

// DefaultHeadMountMetrics derives the per-eye fields of view from the
// calibrated inside/outside/bottom/top bounds before building. The
// inside and outside bounds mirror across eyes: the left eye's left
// bound equals the right eye's right bound.
func DefaultHeadMountMetrics(src props.Source) HeadMountMetrics {
	left, right := defaultFOVs(src)
	return HeadMountMetricsFrom(src, left, right)
}

// UndistortedHeadMountMetricsFrom builds pass-through metrics that share
// a single identity model across all three channels, for simulation and
// degraded-calibration scenarios.
func UndistortedHeadMountMetricsFrom(src props.Source, leftFOV, rightFOV FieldOfView) HeadMountMetrics {
	return assemble(src, leftFOV, rightFOV, sharedIdentity, sharedIdentity, sharedIdentity)
}

// DefaultUndistortedHeadMountMetrics is the zero-FOV-argument variant of
// UndistortedHeadMountMetricsFrom.
func DefaultUndistortedHeadMountMetrics(src props.Source) HeadMountMetrics {
	left, right := defaultFOVs(src)
	return UndistortedHeadMountMetricsFrom(src, left, right)
}

// DisplayMetricsFrom derives per-pixel physical size for the given panel
// resolution. Both pixel dimensions must be positive; the divisions are
// unguarded.
func DisplayMetricsFrom(src props.Source, widthPixels, heightPixels int) DisplayMetrics {
	width, height := screenSizeMeters(src)
	return DisplayMetrics{
		WidthPixels:         widthPixels,
		HeightPixels:        heightPixels,
		MetersPerPixelX:     width / float64(widthPixels),
		MetersPerPixelY:     height / float64(heightPixels),
		BorderSizeMeters:    screenBorderSize,
		FrameIntervalMillis: 1000 / screenRefreshRate,
		Orientation:         Portrait,
	}
}

func defaultFOVs(src props.Source) (left, right FieldOfView) {
	bounds := maxFOVs(src)
	inside, outside, bottom, top := bounds[0], bounds[1], bounds[2], bounds[3]
	left = NewFieldOfView(outside, inside, bottom, top)
	right = NewFieldOfView(inside, outside, bottom, top)
	return left, right
}

// assemble fills in the geometry common to distorted and undistorted
// builds. Vertical alignment and eye orientation are fixed here, not
// calibrated.
func assemble(src props.Source, leftFOV, rightFOV FieldOfView,
	red, green, blue distortion.ColorChannel) HeadMountMetrics {
	lens := interLensDistance(src)
	eye := eyeToDisplay(src)
	return HeadMountMetrics{
		InterLensDistance:   lens,
		LeftEyeToDisplay:    eye,
		RightEyeToDisplay:   eye,
		VerticalAlignment:   AlignCenter,
		LeftFOV:             leftFOV,
		RightFOV:            rightFOV,
		RedDistortion:       red,
		GreenDistortion:     green,
		BlueDistortion:      blue,
		LeftEyeOrientation:  CCW0Degrees,
		RightEyeOrientation: CCW0Degrees,
		LensToOriginOffset:  (lens - displayGap(src)) / 2,
	}
}
