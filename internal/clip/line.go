package clip

// Clipper clips lines against a rectangle.
type Clipper struct {
	clip Rect
}

// NewClipper creates a clipper for the given bounds.
func NewClipper(clip Rect) *Clipper {
	return &Clipper{clip: clip}
}

// Clip returns the clip rectangle.
func (c *Clipper) Clip() Rect {
	return c.clip
}

// Outcode constants for the Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func (c *Clipper) outcode(p Point) int {
	code := outcodeInside

	if p.X < c.clip.X {
		code |= outcodeLeft
	} else if p.X > c.clip.Right() {
		code |= outcodeRight
	}

	if p.Y < c.clip.Y {
		code |= outcodeTop
	} else if p.Y > c.clip.Bottom() {
		code |= outcodeBottom
	}

	return code
}

// ClipLine clips the segment p0-p1 with the Cohen-Sutherland algorithm.
// ok is false when no part of the segment is inside.
func (c *Clipper) ClipLine(p0, p1 Point) (q0, q1 Point, ok bool) {
	code0 := c.outcode(p0)
	code1 := c.outcode(p1)

	for {
		if (code0 | code1) == 0 {
			return p0, p1, true
		}
		if (code0 & code1) != 0 {
			return Point{}, Point{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case (codeOut & outcodeTop) != 0:
			t := (c.clip.Y - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = c.clip.Y
		case (codeOut & outcodeBottom) != 0:
			t := (c.clip.Bottom() - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = c.clip.Bottom()
		case (codeOut & outcodeRight) != 0:
			t := (c.clip.Right() - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = c.clip.Right()
		case (codeOut & outcodeLeft) != 0:
			t := (c.clip.X - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = c.clip.X
		}

		if codeOut == code0 {
			p0 = p
			code0 = c.outcode(p0)
		} else {
			p1 = p
			code1 = c.outcode(p1)
		}
	}
}

// Polyline clips a polyline and returns the visible pieces. Consecutive
// visible segments stay joined in one piece.
func (c *Clipper) Polyline(pts []Point) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	var (
		out [][]Point
		cur []Point
	)
	for i := 1; i < len(pts); i++ {
		q0, q1, ok := c.ClipLine(pts[i-1], pts[i])
		if !ok {
			if len(cur) >= 2 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] != q0 {
			out = append(out, cur)
			cur = nil
		}
		if len(cur) == 0 {
			cur = append(cur, q0)
		}
		cur = append(cur, q1)
	}
	if len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}
