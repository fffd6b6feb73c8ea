package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// glyph is a shaped glyph in font units, relative to the run origin.
// Offsets are y-up as reported by the shaper.
type glyph struct {
	id      font.GID
	x, y    float64
	advance float64
}

// shaper pools HarfBuzz shapers, which keep mutable buffers.
type shaper struct {
	pool *sync.Pool
}

func newShaper() shaper {
	return shaper{pool: &sync.Pool{
		New: func() any {
			return &shaping.HarfbuzzShaper{}
		},
	}}
}

// shape shapes s left to right at a size of one em, so positions come
// back in font units.
func (s shaper) shape(face *Face, str string) ([]glyph, float64) {
	if str == "" {
		return nil, 0
	}
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(face.shape),
		Size:      unitsPPEM(face.upem),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := make([]glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = glyph{
			id:      g.GlyphID,
			x:       pen + fixedToFloat(g.XOffset),
			y:       fixedToFloat(g.YOffset),
			advance: adv,
		}
		pen += adv
	}
	return glyphs, pen
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// unitsPPEM is a size of one em expressed in font units.
func unitsPPEM(upem float64) fixed.Int26_6 {
	return fixed.Int26_6(upem * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
