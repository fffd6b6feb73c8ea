package plot

import (
	"fmt"
	"math"

	"github.com/gogpu/plot/internal/clip"
	"github.com/gogpu/plot/recording"
)

// Standard viewport margins in character heights.
const (
	marginLeft   = 8.0
	marginRight  = 5.0
	marginTop    = 5.0
	marginBottom = 5.0
)

// Advance moves to subpage page of the current page. Page 0 moves to the
// next subpage and starts a new page after the last one. Subpages are
// numbered from 1, left to right and top to bottom.
func (s *Stream) Advance(page int) {
	if !s.ready() {
		return
	}
	n := s.nx * s.ny
	switch {
	case page == 0:
		if s.sub >= n {
			s.newPage()
		} else {
			s.sub++
		}
	case page >= 1 && page <= n:
		s.sub = page
	default:
		s.setErr(fmt.Errorf("%w: %d, want 0..%d", ErrBadSubpage, page, n))
		return
	}
	s.setSubpage()
	s.log().Debug("plot: advance", "page", s.page, "subpage", s.sub)
}

func (s *Stream) newPage() {
	s.rec.BeginPage()
	s.page++
	s.sub = 1
}

// setSubpage computes the current subpage rectangle and drops the viewport.
func (s *Stream) setSubpage() {
	i := max(s.sub, 1) - 1
	col, row := i%s.nx, i/s.nx
	w, h := s.pageW/float64(s.nx), s.pageH/float64(s.ny)
	s.subRect = clip.NewRect(float64(col)*w, float64(row)*h, w, h)
	s.hasViewport = false
	s.hasWindow = false
}

// Subpage returns the current page and subpage numbers.
func (s *Stream) Subpage() (page, sub int) {
	return s.page, s.sub
}

// Viewport sets the plotting area in normalised subpage coordinates, with
// (0, 0) at the bottom left of the subpage.
func (s *Stream) Viewport(xmin, xmax, ymin, ymax float64) {
	if !s.ready() {
		return
	}
	if !(xmin < xmax && ymin < ymax) {
		s.setErr(fmt.Errorf("%w: viewport [%v, %v] x [%v, %v]", ErrBadRange, xmin, xmax, ymin, ymax))
		return
	}
	if s.sub == 0 {
		s.setSubpage()
	}
	sp := s.subRect
	s.setViewport(clip.NewRect(
		sp.X+xmin*sp.W,
		sp.Y+(1-ymax)*sp.H,
		(xmax-xmin)*sp.W,
		(ymax-ymin)*sp.H,
	))
}

func (s *Stream) setViewport(r clip.Rect) {
	if r.IsEmpty() {
		s.setErr(fmt.Errorf("%w: viewport has no area", ErrBadRange))
		return
	}
	s.viewport = r
	s.hasViewport = true
	s.hasWindow = false
	s.leftExtent = 0
}

// standardArea is the subpage minus the standard margins.
func (s *Stream) standardArea() clip.Rect {
	if s.sub == 0 {
		s.setSubpage()
	}
	sp := s.subRect
	return clip.NewRect(
		sp.X+marginLeft*s.chrht,
		sp.Y+marginTop*s.chrht,
		sp.W-(marginLeft+marginRight)*s.chrht,
		sp.H-(marginTop+marginBottom)*s.chrht,
	)
}

// StandardViewport sets a viewport leaving room for labels: 8 character
// heights on the left and 5 on the other sides.
func (s *Stream) StandardViewport() {
	if !s.ready() {
		return
	}
	s.setViewport(s.standardArea())
}

// AspectViewport sets the largest viewport with height/width ratio aspect
// that fits inside the standard margins, centred.
func (s *Stream) AspectViewport(aspect float64) {
	if !s.ready() {
		return
	}
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		s.setErr(fmt.Errorf("%w: aspect %v", ErrBadRange, aspect))
		return
	}
	area := s.standardArea()
	w, h := area.W, area.W*aspect
	if h > area.H {
		w, h = area.H/aspect, area.H
	}
	s.setViewport(clip.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h))
}

// ViewportRect returns the current viewport in page millimetres.
func (s *Stream) ViewportRect() (r clip.Rect, ok bool) {
	return s.viewport, s.hasViewport
}

// Window maps world coordinates onto the viewport. Reversed ranges flip
// the axis; empty ranges are errors.
func (s *Stream) Window(xmin, xmax, ymin, ymax float64) {
	if !s.ready() {
		return
	}
	if !s.hasViewport {
		s.setErr(fmt.Errorf("%w: Window before Viewport", ErrNoWindow))
		return
	}
	if xmin == xmax || ymin == ymax || !finite(xmin, xmax, ymin, ymax) {
		s.setErr(fmt.Errorf("%w: window [%v, %v] x [%v, %v]", ErrBadRange, xmin, xmax, ymin, ymax))
		return
	}
	s.wxmin, s.wxmax = xmin, xmax
	s.wymin, s.wymax = ymin, ymax
	s.hasWindow = true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Env sets up a standard plot: it advances to the next subpage, sets the
// viewport and window and draws the box.
//
// just 0 uses the standard viewport, 1 gives both axes the same scale and
// 2 makes the box square. axis selects the box decoration:
//
//	-2  nothing
//	-1  box only
//	 0  box, ticks and numeric labels
//	 1  as 0, plus the x=0 and y=0 axes
//	 2  as 1, plus a grid at major ticks
//	 3  as 2, plus a grid at minor ticks
//
// Adding 10, 20 or 30 makes x, y or both axes logarithmic; the ranges are
// then given as log10 values.
func (s *Stream) Env(xmin, xmax, ymin, ymax float64, just, axis int) {
	if !s.ready() {
		return
	}
	if xmin == xmax || ymin == ymax || !finite(xmin, xmax, ymin, ymax) {
		s.setErr(fmt.Errorf("%w: env [%v, %v] x [%v, %v]", ErrBadRange, xmin, xmax, ymin, ymax))
		return
	}
	xopt, yopt, err := envBoxOptions(axis)
	if err != nil {
		s.setErr(err)
		return
	}
	if just < 0 || just > 2 {
		s.setErr(fmt.Errorf("%w: env justification %d, want 0..2", ErrBadOption, just))
		return
	}

	s.Advance(0)
	switch just {
	case 0:
		s.StandardViewport()
	case 1:
		s.AspectViewport(math.Abs((ymax - ymin) / (xmax - xmin)))
	case 2:
		s.AspectViewport(1)
	}
	s.Window(xmin, xmax, ymin, ymax)
	if xopt != "" || yopt != "" {
		s.Box(xopt, 0, 0, yopt, 0, 0)
	}
}

// envBoxOptions translates an Env axis code into Box options.
func envBoxOptions(axis int) (xopt, yopt string, err error) {
	logs := axis / 10
	code := axis % 10
	if axis < 0 {
		logs, code = 0, axis
	}
	if logs > 3 || code < -2 || code > 3 {
		return "", "", fmt.Errorf("%w: env axis code %d", ErrBadOption, axis)
	}

	switch code {
	case -2:
		return "", "", nil
	case -1:
		xopt, yopt = "bc", "bc"
	default:
		xopt, yopt = "bcnst", "bcnstv"
		extra := [...]string{"", "a", "ag", "agh"}[code]
		xopt += extra
		yopt += extra
	}
	if logs&1 != 0 {
		xopt += "l"
	}
	if logs&2 != 0 {
		yopt += "l"
	}
	return xopt, yopt, nil
}

// toPage converts world coordinates to page millimetres.
func (s *Stream) toPage(x, y float64) recording.Point {
	vp := s.viewport
	return recording.Point{
		X: vp.X + (x-s.wxmin)/(s.wxmax-s.wxmin)*vp.W,
		Y: vp.Bottom() - (y-s.wymin)/(s.wymax-s.wymin)*vp.H,
	}
}

// needWindow reports whether world drawing is possible, recording an
// error if not.
func (s *Stream) needWindow() bool {
	if !s.ready() {
		return false
	}
	if !s.hasWindow {
		s.setErr(ErrNoWindow)
		return false
	}
	return true
}
