package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GhostdroidR/frameworks-native/internal/hmd"
	"github.com/GhostdroidR/frameworks-native/internal/props"
)

func TestNewChannelView(t *testing.T) {
	m := hmd.DefaultHeadMountMetrics(props.Static{
		hmd.KeyRGBPolynomialOffset: "0.5,0.6,0.7",
		hmd.KeyRedPolynomial:       "1.0,2.0",
	})

	got := newChannelView(m.RedDistortion)
	want := channelView{
		Model:        "polynomial",
		Offset:       0.5,
		Coefficients: []float64{1.0, 2.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("channel view mismatch (-want +got):\n%s", diff)
	}

	undistorted := hmd.DefaultUndistortedHeadMountMetrics(props.Static{})
	got = newChannelView(undistorted.RedDistortion)
	if diff := cmp.Diff(channelView{Model: "identity"}, got); diff != "" {
		t.Errorf("identity view mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsViewMarshals(t *testing.T) {
	src := props.Static{}
	view := metricsView{
		HeadMount: newHeadMountView(hmd.DefaultHeadMountMetrics(src)),
		Display:   newDisplayView(hmd.DisplayMetricsFrom(src, 1000, 2000)),
	}

	out, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"head_mount", "display"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing %q in metrics JSON", key)
		}
	}
}

func TestNewDisplayView(t *testing.T) {
	d := hmd.DisplayMetricsFrom(props.Static{}, 1000, 2000)
	got := newDisplayView(d)

	if got.Orientation != "portrait" {
		t.Errorf("orientation = %q, want portrait", got.Orientation)
	}
	if got.WidthPixels != 1000 || got.HeightPixels != 2000 {
		t.Errorf("pixel size = %dx%d, want 1000x2000", got.WidthPixels, got.HeightPixels)
	}
}
