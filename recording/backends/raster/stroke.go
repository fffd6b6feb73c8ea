package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/plot/recording"
)

// strokePolyline adds the outline of a polyline of half width hw (pixels)
// to r: one rectangle per segment plus a disc at every vertex, which gives
// round joins and caps.
//
// vector.Rasterizer accumulates signed coverage, so every polygon is emitted
// with the same orientation; overlapping pieces then saturate instead of
// cancelling.
func strokePolyline(r *vector.Rasterizer, pts []recording.Point, hw float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := recording.Pt(-d.Y/l*hw, d.X/l*hw)
		moveTo(r, a.Add(n))
		lineTo(r, b.Add(n))
		lineTo(r, b.Sub(n))
		lineTo(r, a.Sub(n))
		r.ClosePath()
	}

	steps := discSteps(hw)
	for _, p := range pts {
		disc(r, p, hw, steps)
	}
}

// disc adds a polygonal disc, traversed in the same direction as the
// segment rectangles of strokePolyline.
func disc(r *vector.Rasterizer, c recording.Point, radius float64, steps int) {
	for i := 0; i < steps; i++ {
		a := -2 * math.Pi * float64(i) / float64(steps)
		p := recording.Pt(c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a))
		if i == 0 {
			moveTo(r, p)
		} else {
			lineTo(r, p)
		}
	}
	r.ClosePath()
}

// discSteps keeps disc edges around one pixel long.
func discSteps(radius float64) int {
	return max(8, int(math.Ceil(2*math.Pi*radius)))
}

func moveTo(r *vector.Rasterizer, p recording.Point) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p recording.Point) {
	r.LineTo(float32(p.X), float32(p.Y))
}
