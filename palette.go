package plot

import (
	"fmt"
	"strings"

	"github.com/gogpu/plot/recording"
)

// Palette is an indexed color map. Entry 0 is the page background.
type Palette []recording.RGBA

// DefaultPalette returns the 16-color default map 0.
func DefaultPalette() Palette {
	return Palette{
		recording.RGB8(0, 0, 0),       // black
		recording.RGB8(255, 0, 0),     // red
		recording.RGB8(255, 255, 0),   // yellow
		recording.RGB8(0, 255, 0),     // green
		recording.RGB8(127, 255, 212), // aquamarine
		recording.RGB8(255, 192, 203), // pink
		recording.RGB8(245, 222, 179), // wheat
		recording.RGB8(190, 190, 190), // grey
		recording.RGB8(165, 42, 42),   // brown
		recording.RGB8(0, 0, 255),     // blue
		recording.RGB8(138, 43, 226),  // blue violet
		recording.RGB8(0, 255, 255),   // cyan
		recording.RGB8(64, 224, 208),  // turquoise
		recording.RGB8(255, 0, 255),   // magenta
		recording.RGB8(250, 128, 114), // salmon
		recording.RGB8(255, 255, 255), // white
	}
}

// padColor fills entries added by Resize.
var padColor = recording.RGB8(255, 0, 0)

// Resize returns a palette of n entries. Existing entries are kept and new
// ones are red.
func (p Palette) Resize(n int) Palette {
	out := make(Palette, n)
	copied := copy(out, p)
	for i := copied; i < n; i++ {
		out[i] = padColor
	}
	return out
}

// Clone returns a copy of p.
func (p Palette) Clone() Palette {
	return append(Palette(nil), p...)
}

// ParsePalette reads a comma-separated list of hex colors such as
// "#000000,ff0000,0x00ff00". Empty entries keep the color of base at that
// index.
func ParsePalette(s string, base Palette) (Palette, error) {
	fields := strings.Split(s, ",")
	out := base.Clone()
	if len(out) < len(fields) {
		out = out.Resize(len(fields))
	}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		c, err := recording.ParseHex(f)
		if err != nil {
			return nil, fmt.Errorf("%w: color %d %q: %v", ErrBadColor, i, f, err)
		}
		out[i] = c
	}
	return out, nil
}
