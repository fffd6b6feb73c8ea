package plot

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/plot/recording"
)

func TestParseOpts(t *testing.T) {
	s := NewStream()
	rest, err := s.ParseOpts([]string{
		"/usr/local/bin/x01",
		"-dev", "svg",
		"-o=out.svg",
		"--geometry", "800x600+10+10",
		"-dpi", "72",
		"-px", "2",
		"-py=3",
		"-bg", "ffffff",
		"-width", "2",
		"data.txt",
	}, ParseFull)
	if err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	if diff := cmp.Diff([]string{"data.txt"}, rest); diff != "" {
		t.Errorf("rest (-want +got):\n%s", diff)
	}
	if s.program != "x01" {
		t.Errorf("program = %q, want x01", s.program)
	}
	if s.Device() != "svg" || s.Output() != "out.svg" {
		t.Errorf("device, output = %q, %q", s.Device(), s.Output())
	}
	if s.widthPx != 800 || s.heightPx != 600 || s.dpi != 72 {
		t.Errorf("geometry = %dx%d at %v dpi", s.widthPx, s.heightPx, s.dpi)
	}
	if s.nx != 2 || s.ny != 3 || s.width != 2 {
		t.Errorf("subpages %dx%d, width %v", s.nx, s.ny, s.width)
	}
	if s.ColorMap0()[0] != recording.White {
		t.Errorf("background = %v, want white", s.ColorMap0()[0])
	}
}

func TestParseOptsModes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		mode     ParseMode
		wantRest []string
		wantErr  error
	}{
		{"no program", []string{"-dev", "null", "a"}, ParseFull | ParseNoProgram, []string{"a"}, nil},
		{"skip unknown", []string{"p", "-bogus", "a", "-dev", "null"}, ParseSkip, []string{"-bogus", "a"}, nil},
		{"unknown", []string{"p", "-bogus"}, ParseFull | ParseQuiet, nil, ErrBadOption},
		{"end of options", []string{"p", "--", "-dev", "svg"}, ParseFull, []string{"-dev", "svg"}, nil},
		{"missing argument", []string{"p", "-dev"}, ParseFull | ParseQuiet, nil, ErrBadOption},
		{"bad subpages", []string{"p", "-px", "0"}, ParseFull | ParseQuiet, nil, ErrBadOption},
		{"bad geometry", []string{"p", "-geometry", "big"}, ParseFull | ParseQuiet, nil, ErrBadOption},
		{"bad color", []string{"p", "-bg", "zzz"}, ParseFull | ParseQuiet, nil, ErrBadColor},
		{"bad width", []string{"p", "-width", "-1"}, ParseFull | ParseQuiet, nil, ErrBadStyle},
		{"bad bool", []string{"p", "-verbose=maybe"}, ParseFull | ParseQuiet, nil, ErrBadOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			s := NewStream(WithStderr(&stderr))
			rest, err := s.ParseOpts(tt.args, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseOpts error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantRest, rest); diff != "" {
				t.Errorf("rest (-want +got):\n%s", diff)
			}
			if tt.mode&ParseQuiet != 0 && stderr.Len() > 0 {
				t.Errorf("quiet mode wrote %q", stderr.String())
			}
		})
	}
}

func TestParseOptsDevice(t *testing.T) {
	s := NewStream()
	if _, err := s.ParseOpts([]string{"p", "--", "-dev", "svg"}, ParseFull); err != nil {
		t.Fatal(err)
	}
	if s.Device() != DefaultDevice {
		t.Errorf("options after -- were parsed: device %q", s.Device())
	}
}

func TestParseOptsUnknownMessage(t *testing.T) {
	var stderr bytes.Buffer
	s := NewStream(WithStderr(&stderr))
	if _, err := s.ParseOpts([]string{"x01", "-bogus"}, ParseFull); !errors.Is(err, ErrBadOption) {
		t.Fatalf("ParseOpts error = %v, want ErrBadOption", err)
	}
	out := stderr.String()
	if !strings.Contains(out, "unrecognized option -bogus") || !strings.Contains(out, "Usage: x01") {
		t.Errorf("stderr = %q", out)
	}
}

func TestParseOptsHelp(t *testing.T) {
	var stderr bytes.Buffer
	s := NewStream(WithStderr(&stderr))
	if _, err := s.ParseOpts([]string{"x01", "-h"}, ParseFull); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("ParseOpts(-h) = %v, want flag.ErrHelp", err)
	}
	out := stderr.String()
	for _, want := range []string{"Usage: x01", "-dev", "-geometry", "-cfg"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage lacks %q:\n%s", want, out)
		}
	}
}

func TestParseOptsVersion(t *testing.T) {
	var stderr bytes.Buffer
	s := NewStream(WithStderr(&stderr))
	if _, err := s.ParseOpts([]string{"x01", "-v"}, ParseFull); !errors.Is(err, ErrVersionShown) {
		t.Fatalf("ParseOpts(-v) = %v, want ErrVersionShown", err)
	}
	if want := "plot library version: " + Version; !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestParseOptsCallerFlags(t *testing.T) {
	s := NewStream()
	fs := s.FlagSet()
	locate := fs.Bool("locate", false, "turn on locate mode")
	save := fs.String("save", "", "save a copy to `file`")

	rest, err := s.ParseOpts([]string{"x01", "-locate", "-save", "copy.svg", "-dev", "null"}, ParseFull)
	if err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	if len(rest) != 0 || !*locate || *save != "copy.svg" || s.Device() != "null" {
		t.Errorf("rest %v, locate %v, save %q, device %q", rest, *locate, *save, s.Device())
	}
}

func TestParseOptsPalette(t *testing.T) {
	s := NewStream()
	if _, err := s.ParseOpts([]string{"p", "-ncol0", "20", "-cmap0", "#ffffff,,00ff00"}, ParseFull); err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	p := s.ColorMap0()
	if len(p) != 20 {
		t.Fatalf("palette has %d entries, want 20", len(p))
	}
	if p[0] != recording.White || p[1] != DefaultPalette()[1] || p[2] != recording.RGB8(0, 255, 0) {
		t.Errorf("palette head = %v", p[:3])
	}
	if p[19] != recording.RGB8(255, 0, 0) {
		t.Errorf("padding color = %v, want red", p[19])
	}
}

func TestParseOptsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	cfg := "device = \"svg\"\ngeometry = \"1024x768\"\npx = 2\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStream()
	if _, err := s.ParseOpts([]string{"p", "-cfg", path, "-dev", "pdf"}, ParseFull); err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	if s.Device() != "pdf" {
		t.Errorf("device = %q, want the later -dev value", s.Device())
	}
	if s.widthPx != 1024 || s.heightPx != 768 || s.nx != 2 {
		t.Errorf("config not applied: %dx%d, px %d", s.widthPx, s.heightPx, s.nx)
	}

	s = NewStream()
	if _, err := s.ParseOpts([]string{"p", "-cfg", path + ".missing"}, ParseFull|ParseQuiet); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestParseOptsLogging(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var stderr bytes.Buffer
	s := NewStream(WithStderr(&stderr))
	if _, err := s.ParseOpts([]string{"p", "-debug"}, ParseFull); err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("-debug should enable debug logging")
	}

	SetLogger(nil)
	s = NewStream(WithStderr(&stderr))
	if _, err := s.ParseOpts([]string{"p"}, ParseFull); err != nil {
		t.Fatalf("ParseOpts: %v", err)
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logging should stay silent without -verbose or -debug")
	}
}
