package text

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Font selects one face of a FontSet.
type Font int

const (
	FontNormal Font = iota // sans-serif
	FontRoman
	FontItalic
	FontScript

	numFonts
)

// String returns the escape letter of the font.
func (f Font) String() string {
	switch f {
	case FontNormal:
		return "n"
	case FontRoman:
		return "r"
	case FontItalic:
		return "i"
	case FontScript:
		return "s"
	default:
		return "Font(" + strconv.Itoa(int(f)) + ")"
	}
}

// fontEscapes maps the letter after #f to a face.
var fontEscapes = map[byte]Font{
	'n': FontNormal,
	'r': FontRoman,
	'i': FontItalic,
	's': FontScript,
}

// Run is a piece of text drawn with one face at one script level.
type Run struct {
	Text string
	Font Font

	// Level is positive for superscripts and negative for subscripts.
	Level int
}

// greekKeys lists the Latin keys of #g in the order of greekUpper.
const greekKeys = "ABGDEZYHIKLMNCOPRSTUFXQW"

var greekUpper = []rune("ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ")

// Greek returns the Greek letter for the Latin key c, keeping the case of c.
func Greek(c rune) (rune, bool) {
	upper := c
	lower := c >= 'a' && c <= 'z'
	if lower {
		upper = c - 'a' + 'A'
	}
	i := strings.IndexRune(greekKeys, upper)
	if i < 0 {
		return 0, false
	}
	g := greekUpper[i]
	if lower {
		// Lowercase Greek is 0x20 above uppercase.
		g += 0x20
	}
	return g, true
}

// Parse splits s into runs. Unknown escapes are kept literally.
// Run text is NFC-normalised.
func Parse(s string) []Run {
	var (
		runs  []Run
		cur   strings.Builder
		font  = FontNormal
		level int
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: norm.NFC.String(cur.String()), Font: font, Level: level})
		cur.Reset()
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '#' || i+1 == len(s) {
			cur.WriteByte(s[i])
			continue
		}
		switch c := s[i+1]; c {
		case '#':
			cur.WriteByte('#')
			i++
		case 'u', 'd':
			flush()
			if c == 'u' {
				level++
			} else {
				level--
			}
			i++
		case 'f':
			f, ok := byte(0), false
			if i+2 < len(s) {
				f = s[i+2]
				_, ok = fontEscapes[f]
			}
			if !ok {
				cur.WriteByte('#')
				continue
			}
			flush()
			font = fontEscapes[f]
			i += 2
		case 'g':
			if i+2 < len(s) {
				if g, ok := Greek(rune(s[i+2])); ok {
					cur.WriteRune(g)
					i += 2
					continue
				}
			}
			cur.WriteByte('#')
		case '[':
			end := strings.IndexByte(s[i+2:], ']')
			if end < 0 {
				cur.WriteByte('#')
				continue
			}
			r, ok := parseCodePoint(s[i+2 : i+2+end])
			if !ok {
				cur.WriteByte('#')
				continue
			}
			cur.WriteRune(r)
			i += 2 + end
		default:
			cur.WriteByte('#')
		}
	}
	flush()
	return runs
}

// parseCodePoint reads "0x2192" or "8594".
func parseCodePoint(s string) (rune, bool) {
	var (
		v   uint64
		err error
	)
	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(h, 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil || v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, false
	}
	return rune(v), true
}
