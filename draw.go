package plot

import (
	"fmt"
	"math"

	"github.com/gogpu/plot/internal/clip"
	"github.com/gogpu/plot/recording"
	"github.com/gogpu/plot/text"
)

// Color0 selects color i of color map 0 for lines, markers and text.
func (s *Stream) Color0(i int) {
	if !s.ready() {
		return
	}
	if i < 0 || i >= len(s.cmap0) {
		s.setErr(fmt.Errorf("%w: color index %d, map has %d entries", ErrBadColor, i, len(s.cmap0)))
		return
	}
	s.color = i
	s.rec.SetColor(s.cmap0[i])
}

// Color returns the current color map 0 index.
func (s *Stream) Color() int {
	return s.color
}

// SetWidth sets the pen width. One unit is a pixel at 90 dpi.
func (s *Stream) SetWidth(w float64) {
	if !s.ready() {
		return
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		s.setErr(fmt.Errorf("%w: pen width %v", ErrBadStyle, w))
		return
	}
	s.pen = w
	s.rec.SetWidth(w * penUnit)
}

// Width returns the current pen width.
func (s *Stream) Width() float64 {
	return s.pen
}

// SetLineStyle sets a dash pattern of alternating marks and spaces in
// micrometres. Empty slices restore solid lines.
func (s *Stream) SetLineStyle(marks, spaces []int) {
	if !s.ready() {
		return
	}
	if len(marks) != len(spaces) {
		s.setErr(fmt.Errorf("%w: %d marks, %d spaces", ErrBadStyle, len(marks), len(spaces)))
		return
	}
	lengths := make([]float64, 0, 2*len(marks))
	for i := range marks {
		if marks[i] < 0 || spaces[i] < 0 {
			s.setErr(fmt.Errorf("%w: negative mark or space", ErrBadStyle))
			return
		}
		lengths = append(lengths, float64(marks[i])/1000, float64(spaces[i])/1000)
	}
	s.marks = append([]int(nil), marks...)
	s.spaces = append([]int(nil), spaces...)
	s.dash = recording.NewDash(lengths...)
	s.rec.SetDash(s.dash)
}

// LineStyle returns the current marks and spaces in micrometres.
func (s *Stream) LineStyle() (marks, spaces []int) {
	return append([]int(nil), s.marks...), append([]int(nil), s.spaces...)
}

// LoadFont selects the font set: 0 has the normal face only, 1 adds the
// roman, italic and script faces. It may be called before Init.
func (s *Stream) LoadFont(set int) error {
	if set != 0 && set != 1 {
		err := fmt.Errorf("%w: font set %d, want 0 or 1", ErrBadOption, set)
		s.setErr(err)
		return err
	}
	fonts, err := text.LoadFontSet(set == 1)
	if err != nil {
		s.setErr(err)
		return err
	}
	s.fonts = fonts
	s.extended = set == 1
	return nil
}

// SetXAxisDigits sets the label width above which x labels use scientific
// notation (0 means the default of 5). digits is overwritten by Box with
// the width of the longest label drawn.
func (s *Stream) SetXAxisDigits(digmax, digits int) {
	s.xdigmax, s.xdigs = digmax, digits
}

// SetYAxisDigits is SetXAxisDigits for the y axis.
func (s *Stream) SetYAxisDigits(digmax, digits int) {
	s.ydigmax, s.ydigs = digmax, digits
}

// XAxisDigits returns the x label digit settings.
func (s *Stream) XAxisDigits() (digmax, digits int) {
	return s.xdigmax, s.xdigs
}

// YAxisDigits returns the y label digit settings.
func (s *Stream) YAxisDigits() (digmax, digits int) {
	return s.ydigmax, s.ydigs
}

// Line draws a polyline through (xs[i], ys[i]) in world coordinates,
// clipped to the viewport. Non-finite points break the line.
func (s *Stream) Line(xs, ys []float64) {
	if !s.needWindow() {
		return
	}
	if len(xs) != len(ys) {
		s.setErr(fmt.Errorf("%w: Line with %d x and %d y values", ErrLengthMismatch, len(xs), len(ys)))
		return
	}
	if len(xs) < 2 {
		return
	}

	c := clip.NewClipper(s.viewport)
	run := make([]recording.Point, 0, len(xs))
	flush := func() {
		for _, piece := range c.Polyline(run) {
			s.setErr(s.rec.Polyline(piece))
		}
		run = run[:0]
	}
	for i := range xs {
		if !finite(xs[i], ys[i]) {
			flush()
			continue
		}
		run = append(run, s.toPage(xs[i], ys[i]))
	}
	flush()
}

// Join draws a line segment between two world points.
func (s *Stream) Join(x1, y1, x2, y2 float64) {
	s.Line([]float64{x1, x2}, []float64{y1, y2})
}

// Points draws marker code at each (xs[i], ys[i]). Markers outside the
// window are skipped.
func (s *Stream) Points(xs, ys []float64, code int) {
	if !s.needWindow() {
		return
	}
	if len(xs) != len(ys) {
		s.setErr(fmt.Errorf("%w: Points with %d x and %d y values", ErrLengthMismatch, len(xs), len(ys)))
		return
	}
	sym, ok := symbolFor(code)
	if !ok {
		s.setErr(fmt.Errorf("%w: %d", ErrBadSymbol, code))
		return
	}

	// Markers are always drawn solid.
	s.rec.SetDash(nil)
	defer s.rec.SetDash(s.dash)

	r := s.symht / 2
	for i := range xs {
		if !finite(xs[i], ys[i]) {
			continue
		}
		p := s.toPage(xs[i], ys[i])
		if !s.viewport.Contains(p) {
			continue
		}
		s.drawSymbol(sym, p, r)
	}
}

// drawSymbol draws sym centred on p with half-size r.
func (s *Stream) drawSymbol(sym symbol, p recording.Point, r float64) {
	place := func(pts []recording.Point) []recording.Point {
		out := make([]recording.Point, len(pts))
		for i, u := range pts {
			out[i] = recording.Point{X: p.X + u.X*r, Y: p.Y - u.Y*r}
		}
		return out
	}
	for _, stroke := range sym.strokes {
		s.setErr(s.rec.Polyline(place(stroke)))
	}
	if len(sym.fill) > 0 {
		s.setErr(s.rec.Fill(recording.Path{place(sym.fill)}))
	}
}
