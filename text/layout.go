package text

import (
	"math"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/plot/recording"
)

const (
	// emPerHeight converts a character height (capital letters) to an em.
	emPerHeight = 1.45

	// levelScale shrinks each superscript or subscript level.
	levelScale = 0.75

	// levelShift moves the baseline per level, in character heights of
	// the enclosing level.
	levelShift = 0.5
)

// Block is laid-out text in millimetres. The origin is the start of the
// baseline and y grows down.
type Block struct {
	Path  recording.Path
	Width float64
}

// Layout shapes runs with character height h (mm).
func (fs *FontSet) Layout(runs []Run, h float64) (Block, error) {
	var (
		b   Block
		pen float64
	)
	for _, run := range runs {
		face := fs.Face(run.Font)
		scale := LevelScale(run.Level)
		s := h * emPerHeight * scale / face.upem
		base := -BaselineShift(run.Level) * h

		sr := fs.shapeRun(face, run.Text)
		for _, g := range sr.glyphs {
			p, err := face.outline(sfnt.GlyphIndex(g.id))
			if err != nil {
				return Block{}, err
			}
			if p == nil {
				continue
			}
			m := recording.Translate(pen+g.x*s, base-g.y*s).Multiply(recording.Scale(s, s))
			b.Path = append(b.Path, p.Transform(m)...)
		}
		pen += sr.advance * s
	}
	b.Width = pen
	return b, nil
}

// Width returns the advance width of runs at character height h,
// without building outlines.
func (fs *FontSet) Width(runs []Run, h float64) float64 {
	var w float64
	for _, run := range runs {
		face := fs.Face(run.Font)
		w += fs.shapeRun(face, run.Text).advance * h * emPerHeight * LevelScale(run.Level) / face.upem
	}
	return w
}

// LevelScale is the size factor of script level l.
func LevelScale(l int) float64 {
	if l < 0 {
		l = -l
	}
	return math.Pow(levelScale, float64(l))
}

// BaselineShift is the baseline offset of level l in character heights,
// positive upwards.
func BaselineShift(l int) float64 {
	n := l
	if n < 0 {
		n = -n
	}
	var shift float64
	for k := 0; k < n; k++ {
		shift += levelShift * LevelScale(k)
	}
	if l < 0 {
		return -shift
	}
	return shift
}
