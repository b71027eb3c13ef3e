package hmd

import (
	"math"

	"github.com/GhostdroidR/frameworks-native/internal/props"
)

// Property names consumed from the calibration source. These match the
// persist keys written by the device provisioning tooling.
const (
	KeyRGBPolynomialOffset = "persist.dvr.rgb_poly_offset"
	KeyRedPolynomial       = "persist.dvr.r_poly"
	KeyGreenPolynomial     = "persist.dvr.g_poly"
	KeyBluePolynomial      = "persist.dvr.b_poly"
	KeyLensDistance        = "persist.dvr.lens_distance"
	KeyDisplayGap          = "persist.dvr.display_gap"
	KeyEyeToDisplay        = "persist.dvr.v_eye_to_display"
	KeyMaxFOV              = "persist.dvr.fov_iobt"
	KeyScreenSize          = "persist.dvr.screen_size"
)

// Compiled-in defaults for an uncalibrated device. The polynomial tables
// are factory measurements for the reference lens assembly.
var (
	defaultRedPolynomial = []float64{
		-4.08519004, 34.70282075, -67.37781249, 56.97304235,
		-23.35768685, 4.7199597, 0.63198082,
	}
	defaultGreenPolynomial = []float64{
		4.43078318, 3.47806617, -20.58017398, 20.85880414,
		-8.4046504, 1.61284685, 0.8881761,
	}
	defaultBluePolynomial = []float64{
		12.04141265, -21.98112491, 14.06758389, -3.15245629,
		0.36549102, 0.05252705, 0.99844279,
	}
	defaultPolynomialOffsets = []float64{0.20971645238, 0.15189450000, 1.00096958278}

	// Inside, outside, bottom, top bounds in degrees.
	defaultMaxFOVDegrees = []float64{43.7, 47.8, 54.2, 54.2}

	// Physical panel size in meters.
	defaultScreenSizeMeters = []float64{0.0742177, 0.131943}
)

const (
	defaultInterLensDistance = 0.064
	defaultDisplayGap        = 0.0
	defaultEyeToDisplay      = 0.035

	// screenBorderSize is the inactive panel border in meters.
	screenBorderSize = 0.004

	// screenRefreshRate is the panel refresh rate in Hz.
	screenRefreshRate = 60.0
)

func interLensDistance(src props.Source) float64 {
	return props.Float(src, KeyLensDistance, defaultInterLensDistance)
}

func displayGap(src props.Source) float64 {
	return props.Float(src, KeyDisplayGap, defaultDisplayGap)
}

func eyeToDisplay(src props.Source) float64 {
	return props.Float(src, KeyEyeToDisplay, defaultEyeToDisplay)
}

// screenSizeMeters resolves the physical panel size.
//
// TODO: a size resolved from the source is still discarded below, so the
// compiled-in panel size always wins. Flipping the check to != 2 enables
// per-device sizes but changes meters-per-pixel on every provisioned
// unit in the field, which needs a rollout decision first.
func screenSizeMeters(src props.Source) (width, height float64) {
	sizes := props.Floats(src, KeyScreenSize, defaultScreenSizeMeters)
	if len(sizes) != 0 {
		sizes = defaultScreenSizeMeters
	}
	return sizes[0], sizes[1]
}

// maxFOVs resolves the inside/outside/bottom/top frustum bounds,
// converting the calibrated degrees to radians. A vector of any length
// other than four reverts wholesale to the defaults.
func maxFOVs(src props.Source) [4]float64 {
	fovs := props.Floats(src, KeyMaxFOV, defaultMaxFOVDegrees)
	if len(fovs) != 4 {
		fovs = defaultMaxFOVDegrees
	}
	var bounds [4]float64
	for i, deg := range fovs {
		bounds[i] = deg * math.Pi / 180
	}
	return bounds
}
