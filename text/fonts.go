package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/plot/internal/cache"
	"github.com/gogpu/plot/recording"
)

// ErrEmptyFontData is returned when a face is built from no data.
var ErrEmptyFontData = errors.New("text: empty font data")

// Cache sizes per face and per font set.
const (
	outlineCacheSize = 512
	runCacheSize     = 256
)

// Face is one parsed font. The same data is parsed twice: go-text uses it
// for shaping and sfnt for glyph outlines. Both agree on glyph indices.
type Face struct {
	name   string
	shape  *font.Font
	sfnt   *sfnt.Font
	upem   float64
	ascent float64 // font units

	mu       sync.Mutex // guards buf
	buf      sfnt.Buffer
	outlines *cache.Cache[sfnt.GlyphIndex, recording.Path]
}

// NewFace parses TrueType or OpenType data.
func NewFace(name string, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", name, err)
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s for shaping: %w", name, err)
	}
	f := &Face{
		name:     name,
		shape:    gt.Font,
		sfnt:     sf,
		upem:     float64(sf.UnitsPerEm()),
		outlines: cache.New[sfnt.GlyphIndex, recording.Path](outlineCacheSize),
	}
	m, err := sf.Metrics(&f.buf, unitsPPEM(f.upem), 0)
	if err != nil {
		return nil, fmt.Errorf("text: metrics of %s: %w", name, err)
	}
	f.ascent = float64(m.Ascent) / 64
	return f, nil
}

// Name returns the name the face was created with.
func (f *Face) Name() string {
	return f.name
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Face) UnitsPerEm() float64 {
	return f.upem
}

// builtinFaces parses the bundled fonts once per process. Roman and
// italic are serif faces from Latin Modern.
var builtinFaces = sync.OnceValues(func() ([numFonts]*Face, error) {
	var faces [numFonts]*Face
	sources := [numFonts]struct {
		name string
		data []byte
	}{
		FontNormal: {"Go Regular", goregular.TTF},
		FontRoman:  {"LM Roman 10", lmroman10regular.TTF},
		FontItalic: {"LM Roman 10 Italic", lmroman10italic.TTF},
		FontScript: {"Go Smallcaps", gosmallcaps.TTF},
	}
	for i, src := range sources {
		f, err := NewFace(src.name, src.data)
		if err != nil {
			return faces, err
		}
		faces[i] = f
	}
	return faces, nil
})

// FontSet is the group of faces selectable with #f escapes.
// It is safe for concurrent use.
type FontSet struct {
	faces    [numFonts]*Face
	extended bool
	shaper   shaper
	runs     *cache.Cache[runKey, shapedRun]
}

// runKey identifies a shaped piece of text.
type runKey struct {
	face *Face
	text string
}

type shapedRun struct {
	glyphs  []glyph
	advance float64 // font units
}

// LoadFontSet returns the bundled fonts. Without extended, every font
// escape falls back to the normal face.
func LoadFontSet(extended bool) (*FontSet, error) {
	faces, err := builtinFaces()
	if err != nil {
		return nil, err
	}
	fs := &FontSet{faces: faces, extended: extended}
	if !extended {
		for i := range fs.faces {
			fs.faces[i] = faces[FontNormal]
		}
	}
	fs.shaper = newShaper()
	fs.runs = cache.New[runKey, shapedRun](runCacheSize)
	return fs, nil
}

// NewFontSet builds a set from explicit faces. Nil entries fall back to
// the normal face, which must be present.
func NewFontSet(normal, roman, italic, script *Face) (*FontSet, error) {
	if normal == nil {
		return nil, errors.New("text: font set needs a normal face")
	}
	fs := &FontSet{
		faces:    [numFonts]*Face{normal, roman, italic, script},
		extended: true,
		shaper:   newShaper(),
		runs:     cache.New[runKey, shapedRun](runCacheSize),
	}
	for i, f := range fs.faces {
		if f == nil {
			fs.faces[i] = normal
		}
	}
	return fs, nil
}

// Extended reports whether the set has distinct roman, italic and script faces.
func (fs *FontSet) Extended() bool {
	return fs.extended
}

// Face returns the face used for f.
func (fs *FontSet) Face(f Font) *Face {
	if f < 0 || f >= numFonts {
		f = FontNormal
	}
	return fs.faces[f]
}

// shapeRun shapes str with face, reusing earlier results. Axis labels
// repeat across charts, so most lookups hit.
func (fs *FontSet) shapeRun(face *Face, str string) shapedRun {
	r, _ := fs.runs.GetOrCreate(runKey{face, str}, func() (shapedRun, error) {
		glyphs, advance := fs.shaper.shape(face, str)
		return shapedRun{glyphs: glyphs, advance: advance}, nil
	})
	return r
}
