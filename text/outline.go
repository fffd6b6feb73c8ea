package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot/recording"
)

// curveSteps is the number of line segments per Bézier curve.
const curveSteps = 8

// outline returns the flattened outline of glyph id in font units, y down.
// Glyphs without an outline, such as space, return a nil path.
func (f *Face) outline(id sfnt.GlyphIndex) (recording.Path, error) {
	return f.outlines.GetOrCreate(id, func() (recording.Path, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		segs, err := f.sfnt.LoadGlyph(&f.buf, id, unitsPPEM(f.upem), nil)
		if err != nil && !errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("text: glyph %d of %s: %w", id, f.name, err)
		}
		return flatten(segs), nil
	})
}

// flatten converts sfnt segments to polygons.
func flatten(segs sfnt.Segments) recording.Path {
	var (
		path recording.Path
		sub  []recording.Point
		pen  recording.Point
	)
	closeSub := func() {
		if len(sub) >= 3 {
			path = append(path, sub)
		}
		sub = nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeSub()
			pen = point(seg.Args[0])
			sub = append(sub, pen)
		case sfnt.SegmentOpLineTo:
			pen = point(seg.Args[0])
			sub = append(sub, pen)
		case sfnt.SegmentOpQuadTo:
			c, end := point(seg.Args[0]), point(seg.Args[1])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				sub = append(sub, recording.Point{
					X: u*u*pen.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*pen.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			pen = end
		case sfnt.SegmentOpCubeTo:
			c1, c2, end := point(seg.Args[0]), point(seg.Args[1]), point(seg.Args[2])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				sub = append(sub, recording.Point{
					X: u*u*u*pen.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*pen.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			pen = end
		}
	}
	closeSub()
	return path
}

func point(p fixed.Point26_6) recording.Point {
	return recording.Point{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}
