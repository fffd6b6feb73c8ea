package plot

import (
	"fmt"
	"strings"

	"github.com/gogpu/plot/recording"
	"github.com/gogpu/plot/text"
)

// Text directions in page space (y down).
var (
	horizontal = recording.Identity()
	upward     = recording.Matrix{A: 0, B: 1, D: -1, E: 0}
)

// Label writes the x label below the viewport, the y label along its left
// side and the title above it, all centred. The y label moves outwards
// when the numeric labels of the last Box reach past 5 character heights.
func (s *Stream) Label(xlabel, ylabel, title string) {
	s.MText("b", 3.2, 0.5, 0.5, xlabel)
	s.MText("l", s.yLabelDisp(), 0.5, 0.5, ylabel)
	s.MText("t", 2.0, 0.5, 0.5, title)
}

// yLabelDisp is the y label displacement in character heights. The label
// body and descenders take 1.5 heights on the viewport side of its centre
// line, including a gap.
func (s *Stream) yLabelDisp() float64 {
	if s.chrht <= 0 {
		return 5.0
	}
	return max(5.0, s.leftExtent/s.chrht+1.5)
}

// MText writes str relative to a viewport edge. side is one of b, t, l, r;
// adding v writes horizontal text on the l and r sides. disp is the
// distance outwards from the edge to the text centre line, in character
// heights. pos is the position along the edge as a fraction of its length,
// and just the fraction of the text placed before that position.
func (s *Stream) MText(side string, disp, pos, just float64, str string) {
	if !s.ready() {
		return
	}
	if !s.hasViewport {
		s.setErr(fmt.Errorf("%w: MText before Viewport", ErrNoWindow))
		return
	}
	side = strings.ToLower(side)
	vp := s.viewport
	d := disp * s.chrht
	perpendicular := strings.Contains(side, "v")

	var (
		ref recording.Point
		dir = horizontal
	)
	switch {
	case strings.Contains(side, "b"):
		ref = recording.Pt(vp.X+pos*vp.W, vp.Bottom()+d)
	case strings.Contains(side, "t"):
		ref = recording.Pt(vp.X+pos*vp.W, vp.Y-d)
	case strings.Contains(side, "l"):
		ref = recording.Pt(vp.X-d, vp.Bottom()-pos*vp.H)
		if !perpendicular {
			dir = upward
		}
	case strings.Contains(side, "r"):
		ref = recording.Pt(vp.Right()+d, vp.Bottom()-pos*vp.H)
		if !perpendicular {
			dir = upward
		}
	default:
		s.setErr(fmt.Errorf("%w: text side %q", ErrBadOption, side))
		return
	}
	s.drawText(ref, dir, just, str)
}

// drawText fills the outlines of str. ref is the point on the text centre
// line at fraction just of its width; dir rotates the text about ref.
func (s *Stream) drawText(ref recording.Point, dir recording.Matrix, just float64, str string) {
	if str == "" {
		return
	}
	block, err := s.fonts.Layout(text.Parse(str), s.chrht)
	if err != nil {
		s.setErr(err)
		return
	}
	if len(block.Path) == 0 {
		return
	}
	m := recording.Translate(ref.X, ref.Y).
		Multiply(dir).
		Multiply(recording.Translate(-just*block.Width, s.chrht/2))
	s.setErr(s.rec.Fill(block.Path.Transform(m)))
}

// textWidth returns the width of str in millimetres.
func (s *Stream) textWidth(str string) float64 {
	return s.fonts.Width(text.Parse(str), s.chrht)
}
