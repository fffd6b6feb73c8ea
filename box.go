package plot

import (
	"strings"

	"github.com/gogpu/plot/internal/axis"
	"github.com/gogpu/plot/recording"
)

// boxOpts are the parsed option letters of one Box axis.
type boxOpts struct {
	zero, low, high bool // a, b, c
	grid, minorGrid bool // g, h
	invert, log     bool // i, l
	highLabels      bool // m
	lowLabels       bool // n
	minor, major    bool // s, t
	perpendicular   bool // v
	fixed           bool // f
}

func parseBoxOpts(opt string) boxOpts {
	opt = strings.ToLower(opt)
	has := func(c string) bool { return strings.Contains(opt, c) }
	return boxOpts{
		zero: has("a"), low: has("b"), high: has("c"),
		grid: has("g"), minorGrid: has("h"),
		invert: has("i"), log: has("l"),
		highLabels: has("m"), lowLabels: has("n"),
		minor: has("s"), major: has("t"),
		perpendicular: has("v"),
		fixed:         has("f"),
	}
}

func (o boxOpts) needsTicks() bool {
	return o.grid || o.minorGrid || o.minor || o.major || o.lowLabels || o.highLabels || o.zero
}

// Box draws the viewport frame, axes, ticks, grid and numeric labels.
// xtick and ytick are the major tick intervals (0 picks one); nxsub and
// nysub the minor subdivisions (0 picks a count). Options:
//
//	a  zero axis (x option: the line y=0; y option: the line x=0)
//	b  bottom edge (x) or left edge (y)
//	c  top edge (x) or right edge (y)
//	f  always fixed-point labels
//	g  grid at major ticks
//	h  grid at minor ticks
//	i  ticks point out of the viewport
//	l  logarithmic axis, window given in log10 units
//	m  labels on the top (x) or right (y)
//	n  labels on the bottom (x) or left (y)
//	s  minor ticks
//	t  major ticks
//	v  y labels written horizontally
func (s *Stream) Box(xopt string, xtick float64, nxsub int, yopt string, ytick float64, nysub int) {
	if !s.needWindow() {
		return
	}
	xo, yo := parseBoxOpts(xopt), parseBoxOpts(yopt)

	var xt, yt axis.TickSet
	if xo.needsTicks() {
		var ok bool
		if xt, ok = s.tickSet(xo, s.wxmin, s.wxmax, xtick, nxsub); !ok {
			return
		}
	}
	if yo.needsTicks() {
		var ok bool
		if yt, ok = s.tickSet(yo, s.wymin, s.wymax, ytick, nysub); !ok {
			return
		}
	}

	vp := s.viewport
	xpos := func(v float64) float64 { return s.toPage(v, s.wymin).X }
	ypos := func(v float64) float64 { return s.toPage(s.wxmin, v).Y }

	// Grid lines.
	if xo.minorGrid {
		for _, v := range xt.Minor {
			s.segment(recording.Pt(xpos(v), vp.Y), recording.Pt(xpos(v), vp.Bottom()))
		}
	}
	if xo.grid {
		for _, v := range xt.Major {
			s.segment(recording.Pt(xpos(v), vp.Y), recording.Pt(xpos(v), vp.Bottom()))
		}
	}
	if yo.minorGrid {
		for _, v := range yt.Minor {
			s.segment(recording.Pt(vp.X, ypos(v)), recording.Pt(vp.Right(), ypos(v)))
		}
	}
	if yo.grid {
		for _, v := range yt.Major {
			s.segment(recording.Pt(vp.X, ypos(v)), recording.Pt(vp.Right(), ypos(v)))
		}
	}

	// Zero axes.
	if xo.zero && within(0, s.wymin, s.wymax) {
		y := ypos(0)
		s.segment(recording.Pt(vp.X, y), recording.Pt(vp.Right(), y))
		if xo.major {
			for _, v := range xt.Major {
				s.segment(recording.Pt(xpos(v), y-s.majht/2), recording.Pt(xpos(v), y+s.majht/2))
			}
		}
	}
	if yo.zero && within(0, s.wxmin, s.wxmax) {
		x := xpos(0)
		s.segment(recording.Pt(x, vp.Y), recording.Pt(x, vp.Bottom()))
		if yo.major {
			for _, v := range yt.Major {
				s.segment(recording.Pt(x-s.majht/2, ypos(v)), recording.Pt(x+s.majht/2, ypos(v)))
			}
		}
	}

	// Edges with ticks pointing into the viewport, or out with i.
	inward := func(o boxOpts) float64 {
		if o.invert {
			return -1
		}
		return 1
	}
	xticks := func(y, sign float64) {
		if xo.minor {
			for _, v := range xt.Minor {
				s.segment(recording.Pt(xpos(v), y), recording.Pt(xpos(v), y+sign*s.minht))
			}
		}
		if xo.major {
			for _, v := range xt.Major {
				s.segment(recording.Pt(xpos(v), y), recording.Pt(xpos(v), y+sign*s.majht))
			}
		}
	}
	yticks := func(x, sign float64) {
		if yo.minor {
			for _, v := range yt.Minor {
				s.segment(recording.Pt(x, ypos(v)), recording.Pt(x+sign*s.minht, ypos(v)))
			}
		}
		if yo.major {
			for _, v := range yt.Major {
				s.segment(recording.Pt(x, ypos(v)), recording.Pt(x+sign*s.majht, ypos(v)))
			}
		}
	}
	if xo.low {
		s.segment(recording.Pt(vp.X, vp.Bottom()), recording.Pt(vp.Right(), vp.Bottom()))
		xticks(vp.Bottom(), -inward(xo))
	}
	if xo.high {
		s.segment(recording.Pt(vp.X, vp.Y), recording.Pt(vp.Right(), vp.Y))
		xticks(vp.Y, inward(xo))
	}
	if yo.low {
		s.segment(recording.Pt(vp.X, vp.Y), recording.Pt(vp.X, vp.Bottom()))
		yticks(vp.X, inward(yo))
	}
	if yo.high {
		s.segment(recording.Pt(vp.Right(), vp.Y), recording.Pt(vp.Right(), vp.Bottom()))
		yticks(vp.Right(), -inward(yo))
	}

	if xo.lowLabels || xo.highLabels {
		s.xdigs = s.axisLabels(xo, xt, s.wxmin, s.wxmax, s.xdigmax, true)
	}
	if yo.lowLabels || yo.highLabels {
		s.ydigs = s.axisLabels(yo, yt, s.wymin, s.wymax, s.ydigmax, false)
	}
}

// tickSet computes the ticks of one axis, recording any error.
func (s *Stream) tickSet(o boxOpts, wmin, wmax, tick float64, nsub int) (axis.TickSet, bool) {
	var (
		ts  axis.TickSet
		err error
	)
	if o.log {
		ts, err = axis.LogTicks(wmin, wmax)
	} else {
		ts, err = axis.Ticks(wmin, wmax, tick, nsub)
	}
	if err != nil {
		s.setErr(err)
		return ts, false
	}
	return ts, true
}

// axisLabels writes the numeric labels of one axis and returns the length
// of the longest label.
func (s *Stream) axisLabels(o boxOpts, ts axis.TickSet, wmin, wmax float64, digmax int, isX bool) int {
	format := axis.Precision(wmin, wmax, ts.Step, digmax, o.fixed)
	longest := 0
	for _, v := range ts.Major {
		var label string
		if o.log {
			label = axis.DecadeLabel(v, o.fixed)
		} else {
			label = axis.Label(v, format)
		}
		longest = max(longest, len(label))

		pos := (v - wmin) / (wmax - wmin)
		if pos < -1e-6 || pos > 1+1e-6 {
			continue
		}
		pos = min(max(pos, 0), 1)
		switch {
		case isX:
			if o.lowLabels {
				s.MText("b", 1.5, pos, 0.5, label)
			}
			if o.highLabels {
				s.MText("t", 1.5, pos, 0.5, label)
			}
		case o.perpendicular:
			if o.lowLabels {
				s.MText("lv", 0.5, pos, 1, label)
				s.leftExtent = max(s.leftExtent, 0.5*s.chrht+s.textWidth(label))
			}
			if o.highLabels {
				s.MText("rv", 0.5, pos, 0, label)
			}
		default:
			if o.lowLabels {
				s.MText("l", 1.5, pos, 0.5, label)
				s.leftExtent = max(s.leftExtent, 2*s.chrht)
			}
			if o.highLabels {
				s.MText("r", 1.5, pos, 0.5, label)
			}
		}
	}

	if mult := format.Multiplier(); mult != "" && !o.log {
		if isX {
			s.MText("b", 3.2, 1, 1, mult)
		} else {
			s.MText("t", 0.8, 0, 0.5, mult)
		}
	}
	return longest
}

// within reports whether v lies in the range spanned by a and b.
func within(v, a, b float64) bool {
	return v >= min(a, b) && v <= max(a, b)
}

func (s *Stream) segment(a, b recording.Point) {
	s.setErr(s.rec.Polyline([]recording.Point{a, b}))
}
