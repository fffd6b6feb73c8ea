package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Run
	}{
		{"empty", "", nil},
		{"plain", "(x)", []Run{{Text: "(x)"}}},
		{"superscript", "y=x#u2", []Run{
			{Text: "y=x"},
			{Text: "2", Level: 1},
		}},
		{"super and back", "e#u-x#d+1", []Run{
			{Text: "e"},
			{Text: "-x", Level: 1},
			{Text: "+1"},
		}},
		{"subscript", "x#d0#u", []Run{
			{Text: "x"},
			{Text: "0", Level: -1},
		}},
		{"font switch", "#frPLplot Example 1 - y=x#u2", []Run{
			{Text: "PLplot Example 1 - y=x", Font: FontRoman},
			{Text: "2", Font: FontRoman, Level: 1},
		}},
		{"font switch mid string", "a#fib#fnc", []Run{
			{Text: "a"},
			{Text: "b", Font: FontItalic},
			{Text: "c"},
		}},
		{"literal hash", "##1", []Run{{Text: "#1"}}},
		{"greek", "#ga+#gW", []Run{{Text: "α+Ω"}}},
		{"hex code point", "a#[0x2192]b", []Run{{Text: "a→b"}}},
		{"decimal code point", "#[8594]", []Run{{Text: "→"}}},
		{"unknown escape", "#q", []Run{{Text: "#q"}}},
		{"unknown font", "#fz", []Run{{Text: "#fz"}}},
		{"unknown greek key", "#g1", []Run{{Text: "#g1"}}},
		{"unterminated code point", "#[0x41", []Run{{Text: "#[0x41"}}},
		{"bad code point", "#[zz]", []Run{{Text: "#[zz]"}}},
		{"trailing hash", "a#", []Run{{Text: "a#"}}},
		{"normalised", "e\u0301", []Run{{Text: "\u00e9"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Parse(tt.in)); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestGreek(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
		ok   bool
	}{
		{'a', 'α', true},
		{'A', 'Α', true},
		{'p', 'π', true},
		{'h', 'θ', true},
		{'s', 'σ', true},
		{'W', 'Ω', true},
		{'j', 0, false},
		{'1', 0, false},
	}
	for _, tt := range tests {
		got, ok := Greek(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Greek(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFontString(t *testing.T) {
	for f, want := range map[Font]string{
		FontNormal: "n",
		FontRoman:  "r",
		FontItalic: "i",
		FontScript: "s",
		Font(9):    "Font(9)",
	} {
		if got := f.String(); got != want {
			t.Errorf("Font(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}
