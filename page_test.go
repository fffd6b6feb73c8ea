package plot

import (
	"errors"
	"testing"
)

func TestAdvance(t *testing.T) {
	s := newTestStream(t, WithSubpages(2, 2))

	for want := 1; want <= 4; want++ {
		s.Advance(0)
		if page, sub := s.Subpage(); page != 1 || sub != want {
			t.Fatalf("after %d advances: page %d sub %d", want, page, sub)
		}
	}
	s.Advance(0)
	if page, sub := s.Subpage(); page != 2 || sub != 1 {
		t.Errorf("advance past last subpage: page %d sub %d, want 2 1", page, sub)
	}
	s.Advance(3)
	if page, sub := s.Subpage(); page != 2 || sub != 3 {
		t.Errorf("Advance(3): page %d sub %d, want 2 3", page, sub)
	}
	if s.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", s.Pages())
	}

	s.Advance(5)
	if !errors.Is(s.Err(), ErrBadSubpage) {
		t.Errorf("Advance(5) error = %v, want ErrBadSubpage", s.Err())
	}
}

func TestSubpageRects(t *testing.T) {
	s := newTestStream(t, WithSubpages(2, 2))
	s.Advance(4)
	s.Viewport(0, 1, 0, 1)
	vp, ok := s.ViewportRect()
	if !ok {
		t.Fatal("no viewport")
	}
	w, h := s.pageW/2, s.pageH/2
	if !near(vp.X, w) || !near(vp.Y, h) || !near(vp.W, w) || !near(vp.H, h) {
		t.Errorf("subpage 4 viewport = %+v, want bottom right quarter", vp)
	}

	s.Advance(1)
	if _, ok := s.ViewportRect(); ok {
		t.Error("Advance should drop the viewport")
	}
	s.Viewport(0.25, 0.75, 0, 0.5)
	vp, _ = s.ViewportRect()
	if !near(vp.X, w/4) || !near(vp.Y, h/2) || !near(vp.W, w/2) || !near(vp.H, h/2) {
		t.Errorf("partial viewport = %+v", vp)
	}
}

func TestStandardViewport(t *testing.T) {
	s := newTestStream(t)
	s.Advance(0)
	s.StandardViewport()
	vp, _ := s.ViewportRect()
	c := s.chrht
	if !near(vp.X, 8*c) || !near(vp.Y, 5*c) {
		t.Errorf("origin = (%v, %v), want (%v, %v)", vp.X, vp.Y, 8*c, 5*c)
	}
	if !near(vp.Right(), s.pageW-5*c) || !near(vp.Bottom(), s.pageH-5*c) {
		t.Errorf("far corner = (%v, %v)", vp.Right(), vp.Bottom())
	}
}

func TestAspectViewport(t *testing.T) {
	s := newTestStream(t)
	s.Advance(0)
	s.AspectViewport(1)
	vp, _ := s.ViewportRect()
	if !near(vp.W, vp.H) {
		t.Errorf("square viewport is %v x %v", vp.W, vp.H)
	}
	area := s.standardArea()
	if !near(vp.H, area.H) || !near(vp.X+vp.W/2, area.X+area.W/2) {
		t.Errorf("viewport %+v not centred in %+v", vp, area)
	}

	s.AspectViewport(0)
	if !errors.Is(s.Err(), ErrBadRange) {
		t.Errorf("AspectViewport(0) error = %v, want ErrBadRange", s.Err())
	}
}

func TestViewportWindowErrors(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Stream)
		want error
	}{
		{"empty viewport", func(s *Stream) { s.Viewport(0.5, 0.5, 0, 1) }, ErrBadRange},
		{"reversed viewport", func(s *Stream) { s.Viewport(0, 1, 1, 0) }, ErrBadRange},
		{"window before viewport", func(s *Stream) { s.Advance(0); s.Window(0, 1, 0, 1) }, ErrNoWindow},
		{"empty window", func(s *Stream) { s.Viewport(0, 1, 0, 1); s.Window(1, 1, 0, 1) }, ErrBadRange},
		{"line before window", func(s *Stream) { s.Viewport(0, 1, 0, 1); s.Join(0, 0, 1, 1) }, ErrNoWindow},
		{"env range", func(s *Stream) { s.Env(0, 0, 0, 1, 0, 0) }, ErrBadRange},
		{"env just", func(s *Stream) { s.Env(0, 1, 0, 1, 3, 0) }, ErrBadOption},
		{"env axis", func(s *Stream) { s.Env(0, 1, 0, 1, 0, 4) }, ErrBadOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream(t)
			tt.draw(s)
			if !errors.Is(s.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", s.Err(), tt.want)
			}
		})
	}
}

func TestWindowMapping(t *testing.T) {
	s := newTestStream(t)
	s.Advance(0)
	s.Viewport(0, 1, 0, 1)
	s.Window(0, 10, -5, 5)

	tests := []struct {
		x, y, px, py float64
	}{
		{0, -5, 0, s.pageH},
		{10, 5, s.pageW, 0},
		{5, 0, s.pageW / 2, s.pageH / 2},
	}
	for _, tt := range tests {
		p := s.toPage(tt.x, tt.y)
		if !near(p.X, tt.px) || !near(p.Y, tt.py) {
			t.Errorf("toPage(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, p, tt.px, tt.py)
		}
	}

	// Reversed ranges flip the axis.
	s.Window(10, 0, -5, 5)
	if p := s.toPage(10, 0); !near(p.X, 0) {
		t.Errorf("reversed window maps x=10 to %v, want 0", p.X)
	}
}

func TestEnvBoxOptions(t *testing.T) {
	tests := []struct {
		axis       int
		xopt, yopt string
		wantErr    bool
	}{
		{axis: -2},
		{axis: -1, xopt: "bc", yopt: "bc"},
		{axis: 0, xopt: "bcnst", yopt: "bcnstv"},
		{axis: 1, xopt: "bcnsta", yopt: "bcnstva"},
		{axis: 2, xopt: "bcnstag", yopt: "bcnstvag"},
		{axis: 3, xopt: "bcnstagh", yopt: "bcnstvagh"},
		{axis: 10, xopt: "bcnstl", yopt: "bcnstv"},
		{axis: 20, xopt: "bcnst", yopt: "bcnstvl"},
		{axis: 31, xopt: "bcnstal", yopt: "bcnstval"},
		{axis: -3, wantErr: true},
		{axis: 4, wantErr: true},
		{axis: 40, wantErr: true},
	}
	for _, tt := range tests {
		xopt, yopt, err := envBoxOptions(tt.axis)
		if (err != nil) != tt.wantErr {
			t.Errorf("envBoxOptions(%d) error = %v, wantErr %v", tt.axis, err, tt.wantErr)
			continue
		}
		if xopt != tt.xopt || yopt != tt.yopt {
			t.Errorf("envBoxOptions(%d) = %q, %q; want %q, %q", tt.axis, xopt, yopt, tt.xopt, tt.yopt)
		}
	}
}

func TestEnvJustified(t *testing.T) {
	s := newTestStream(t)
	s.Env(0, 10, 0, 5, 1, -2)
	vp, _ := s.ViewportRect()
	if !near(vp.H/vp.W, 0.5) {
		t.Errorf("viewport aspect = %v, want 0.5", vp.H/vp.W)
	}
}

func TestEnvBadJustificationKeepsSubpage(t *testing.T) {
	s := newTestStream(t, WithSubpages(2, 2))
	page, sub := s.Subpage()
	s.Env(0, 1, 0, 1, 7, 0)
	if !errors.Is(s.Err(), ErrBadOption) {
		t.Errorf("Err() = %v, want ErrBadOption", s.Err())
	}
	if p, n := s.Subpage(); p != page || n != sub {
		t.Errorf("subpage moved from %d/%d to %d/%d", page, sub, p, n)
	}
}
