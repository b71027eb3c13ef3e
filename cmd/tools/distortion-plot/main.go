// Command distortion-plot renders the per-channel radial distortion
// curves resolved from a calibration source, for visual inspection of a
// device calibration before it ships.
package main

import (
	"flag"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GhostdroidR/frameworks-native/internal/distortion"
	"github.com/GhostdroidR/frameworks-native/internal/hmd"
	"github.com/GhostdroidR/frameworks-native/internal/props"
	"github.com/GhostdroidR/frameworks-native/internal/props/propdb"
)

var (
	dbPath  = flag.String("db", "calibration.db", "Path to the calibration database")
	useEnv  = flag.Bool("env", false, "Resolve properties from the environment instead of the database")
	output  = flag.String("o", "distortion.png", "Output image path (.png, .svg, .pdf)")
	maxR    = flag.Float64("rmax", 1.0, "Maximum normalized radius to plot")
	samples = flag.Int("samples", 200, "Number of samples per curve")
)

func main() {
	flag.Parse()

	var src props.Source
	if *useEnv {
		src = props.Env{}
	} else {
		db, err := propdb.Open(*dbPath)
		if err != nil {
			log.Fatalf("distortion-plot: %v", err)
		}
		defer db.Close()
		src = db
	}

	m := hmd.DefaultHeadMountMetrics(src)
	if err := plotChannels(m, *output, *maxR, *samples); err != nil {
		log.Fatalf("distortion-plot: %v", err)
	}
	log.Printf("wrote %s", *output)
}

func plotChannels(m hmd.HeadMountMetrics, path string, maxR float64, samples int) error {
	p := plot.New()
	p.Title.Text = "Radial distortion by color channel"
	p.X.Label.Text = "input radius (normalized)"
	p.Y.Label.Text = "corrected radius"

	channels := []struct {
		name  string
		model distortion.ColorChannel
		color color.RGBA
	}{
		{"red", m.RedDistortion, color.RGBA{R: 220, G: 60, B: 60, A: 255}},
		{"green", m.GreenDistortion, color.RGBA{R: 60, G: 180, B: 75, A: 255}},
		{"blue", m.BlueDistortion, color.RGBA{R: 60, G: 90, B: 220, A: 255}},
	}

	for _, ch := range channels {
		line, err := plotter.NewLine(curvePoints(ch.model, maxR, samples))
		if err != nil {
			return err
		}
		line.Color = ch.color
		p.Add(line)
		p.Legend.Add(ch.name, line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func curvePoints(model distortion.ColorChannel, maxR float64, samples int) plotter.XYs {
	points := make(plotter.XYs, samples+1)
	for i := 0; i <= samples; i++ {
		r := maxR * float64(i) / float64(samples)
		points[i].X = r
		points[i].Y = model.Distort(r)
	}
	return points
}
