// Command x01 draws four simple line charts on one 2x2 page: two views of a
// parabola with markers, a sinc function with zero axes and a sine wave over
// a dashed grid.
//
// Usage:
//
//	x01 [-dev png|svg|pdf|null] [-o file] [-save file] [-font 0|1] [options]
//
// Run x01 -h for the full option list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/plot"
)

func main() {
	if err := run(os.Args, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "x01: %v\n", err)
		os.Exit(1)
	}
}

// data holds the sample buffers shared by the charts.
type data struct {
	x, y   [101]float64
	xs, ys [6]float64

	xscale, yscale float64
	xoff, yoff     float64
}

func run(args []string, stderr io.Writer) error {
	s := plot.NewStream(plot.WithStderr(stderr))

	// Four charts per page unless the options say otherwise.
	s.SetSubpages(2, 2)

	fs := s.FlagSet()
	font := fs.Int("font", 1, "font set: 0 normal only, 1 extended")
	save := fs.String("save", "", "also save the plots to `file`, device chosen by its extension")
	locate := fs.Bool("locate", false, "turn on cursor location mode (interactive devices only)")
	xor := fs.Bool("xor", false, "turn on xor mode (interactive devices only)")

	rest, err := s.ParseOpts(args, plot.ParseFull)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, plot.ErrVersionShown) {
			return nil
		}
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", plot.ErrBadOption, rest[0])
	}
	fmt.Fprintf(stderr, "plot library version: %s\n", plot.Version)
	if *locate {
		fmt.Fprintf(stderr, "x01: -locate needs an interactive device, ignored for %s\n", s.Device())
	}
	if *xor {
		fmt.Fprintf(stderr, "x01: -xor needs an interactive device, ignored for %s\n", s.Device())
	}

	if err := s.Init(); err != nil {
		return err
	}
	if err := s.LoadFont(*font); err != nil {
		return err
	}

	d := &data{xscale: 6, yscale: 1}
	plot1(s, d)

	d.xscale, d.yscale, d.yoff = 1, 0.0014, 0.0185
	s.SetYAxisDigits(5, 0)
	plot1(s, d)

	plot2(s, d)
	plot3(s, d)

	if err := s.End(); err != nil {
		return err
	}
	if *save != "" {
		return s.SaveAs("", *save)
	}
	return nil
}

// plot1 draws y = yoff + yscale*x^2 with six markers on it.
func plot1(s *plot.Stream, d *data) {
	for i := range 60 {
		d.x[i] = d.xoff + d.xscale*float64(i+1)/60
		d.y[i] = d.yoff + d.yscale*d.x[i]*d.x[i]
	}
	xmin, xmax := d.x[0], d.x[59]
	ymin, ymax := d.y[0], d.y[59]

	for i := range 6 {
		d.xs[i] = d.x[i*10+3]
		d.ys[i] = d.y[i*10+3]
	}

	// Axes scaled separately with a labelled box.
	s.Color0(1)
	s.Env(xmin, xmax, ymin, ymax, 0, 0)
	s.Color0(2)
	s.Label("(x)", "(y)", "#frPLplot Example 1 - y=x#u2")

	s.Color0(4)
	s.Points(d.xs[:], d.ys[:], 9)

	s.Color0(3)
	s.Line(d.x[:60], d.y[:60])
}

// plot2 draws sin(x)/x with the zero axes.
func plot2(s *plot.Stream, d *data) {
	s.Color0(1)
	s.Env(-2, 10, -0.4, 1.2, 0, 1)
	s.Color0(2)
	s.Label("(x)", "sin(x)/x", "#frPLplot Example 1 - Sinc Function")

	for i := range 100 {
		d.x[i] = (float64(i) - 19) / 6
		d.y[i] = 1
		if d.x[i] != 0 {
			d.y[i] = math.Sin(d.x[i]) / d.x[i]
		}
	}

	s.Color0(3)
	s.SetWidth(2)
	s.Line(d.x[:100], d.y[:100])
	s.SetWidth(1)
}

// plot3 draws a sine wave over a dashed grid with explicit tick intervals.
func plot3(s *plot.Stream, d *data) {
	s.Advance(0)
	s.StandardViewport()
	s.Window(0, 360, -1.2, 1.2)

	s.Color0(1)
	s.Box("bcnst", 60, 2, "bcnstv", 0.2, 2)

	s.SetLineStyle([]int{1500}, []int{1500})
	s.Color0(2)
	s.Box("g", 30, 0, "g", 0.2, 0)
	s.SetLineStyle(nil, nil)

	s.Color0(3)
	s.Label("Angle (degrees)", "sine", "#frPLplot Example 1 - Sine function")

	for i := range 101 {
		d.x[i] = 3.6 * float64(i)
		d.y[i] = math.Sin(d.x[i] * math.Pi / 180)
	}

	s.Color0(4)
	s.Line(d.x[:], d.y[:])
}
