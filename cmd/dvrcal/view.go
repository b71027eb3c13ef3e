package main

import (
	"github.com/GhostdroidR/frameworks-native/internal/distortion"
	"github.com/GhostdroidR/frameworks-native/internal/hmd"
)

// JSON views of the metrics records. The distortion models are interface
// values with unexported state, so they are flattened into a tagged shape
// here instead of marshalled directly.

type metricsView struct {
	HeadMount headMountView `json:"head_mount"`
	Display   displayView   `json:"display"`
}

type headMountView struct {
	InterLensDistance   float64     `json:"inter_lens_distance_m"`
	LeftEyeToDisplay    float64     `json:"left_eye_to_display_m"`
	RightEyeToDisplay   float64     `json:"right_eye_to_display_m"`
	VerticalAlignment   string      `json:"vertical_alignment"`
	LeftFOV             fovView     `json:"left_fov_rad"`
	RightFOV            fovView     `json:"right_fov_rad"`
	Red                 channelView `json:"red_distortion"`
	Green               channelView `json:"green_distortion"`
	Blue                channelView `json:"blue_distortion"`
	LeftEyeOrientation  string      `json:"left_eye_orientation"`
	RightEyeOrientation string      `json:"right_eye_orientation"`
	LensToOriginOffset  float64     `json:"lens_to_origin_offset_m"`
}

type fovView struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

type channelView struct {
	Model        string    `json:"model"`
	Offset       float64   `json:"offset,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
}

type displayView struct {
	WidthPixels         int     `json:"width_px"`
	HeightPixels        int     `json:"height_px"`
	MetersPerPixelX     float64 `json:"meters_per_pixel_x"`
	MetersPerPixelY     float64 `json:"meters_per_pixel_y"`
	BorderSizeMeters    float64 `json:"border_size_m"`
	FrameIntervalMillis float64 `json:"frame_interval_ms"`
	Orientation         string  `json:"orientation"`
}

func newHeadMountView(m hmd.HeadMountMetrics) headMountView {
	return headMountView{
		InterLensDistance:   m.InterLensDistance,
		LeftEyeToDisplay:    m.LeftEyeToDisplay,
		RightEyeToDisplay:   m.RightEyeToDisplay,
		VerticalAlignment:   m.VerticalAlignment.String(),
		LeftFOV:             newFOVView(m.LeftFOV),
		RightFOV:            newFOVView(m.RightFOV),
		Red:                 newChannelView(m.RedDistortion),
		Green:               newChannelView(m.GreenDistortion),
		Blue:                newChannelView(m.BlueDistortion),
		LeftEyeOrientation:  m.LeftEyeOrientation.String(),
		RightEyeOrientation: m.RightEyeOrientation.String(),
		LensToOriginOffset:  m.LensToOriginOffset,
	}
}

func newFOVView(f hmd.FieldOfView) fovView {
	return fovView{Left: f.Left, Right: f.Right, Bottom: f.Bottom, Top: f.Top}
}

func newChannelView(c distortion.ColorChannel) channelView {
	switch model := c.(type) {
	case *distortion.Polynomial:
		return channelView{
			Model:        "polynomial",
			Offset:       model.Offset(),
			Coefficients: model.Coefficients(),
		}
	case distortion.Identity:
		return channelView{Model: "identity"}
	default:
		return channelView{Model: "lookup"}
	}
}

func newDisplayView(d hmd.DisplayMetrics) displayView {
	return displayView{
		WidthPixels:         d.WidthPixels,
		HeightPixels:        d.HeightPixels,
		MetersPerPixelX:     d.MetersPerPixelX,
		MetersPerPixelY:     d.MetersPerPixelY,
		BorderSizeMeters:    d.BorderSizeMeters,
		FrameIntervalMillis: d.FrameIntervalMillis,
		Orientation:         d.Orientation.String(),
	}
}
