package raster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/plot/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}
	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *raster.Backend", backend)
	}
}

// record builds a one-page recording of 100x50 mm at 25.4 dpi, so one
// millimetre is one pixel.
func record(t *testing.T, pages int, draw func(rec *recording.Recorder)) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder(recording.Info{Width: 100, Height: 50, DPI: 25.4, Background: recording.Black})
	for i := 0; i < pages; i++ {
		rec.BeginPage()
		if draw != nil {
			draw(rec)
		}
	}
	return rec.Finish()
}

func TestBackendBackground(t *testing.T) {
	r := record(t, 1, nil)
	b := NewBackend()
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	img := b.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("width = %d, want 100", got)
	}
	if r, g, bb, a := img.At(10, 10).RGBA(); r != 0 || g != 0 || bb != 0 || a != 0xffff {
		t.Errorf("background = %d,%d,%d,%d, want opaque black", r, g, bb, a)
	}
}

func TestBackendPolyline(t *testing.T) {
	r := record(t, 1, func(rec *recording.Recorder) {
		rec.SetColor(recording.RGB(1, 0, 0))
		rec.SetWidth(2)
		_ = rec.Polyline([]recording.Point{{X: 10, Y: 25}, {X: 90, Y: 25}})
	})
	b := NewBackend()
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	img := b.Pages()[0]
	if c := img.RGBAAt(50, 25); c.R < 200 || c.G != 0 {
		t.Errorf("pixel on the line = %v, want red", c)
	}
	if c := img.RGBAAt(50, 40); c.R != 0 {
		t.Errorf("pixel off the line = %v, want background", c)
	}
}

func TestBackendDashedPolyline(t *testing.T) {
	r := record(t, 1, func(rec *recording.Recorder) {
		rec.SetColor(recording.White)
		rec.SetWidth(1)
		rec.SetDash(recording.NewDash(10, 10))
		_ = rec.Polyline([]recording.Point{{X: 0, Y: 25.5}, {X: 100, Y: 25.5}})
	})
	b := NewBackend()
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	img := b.Pages()[0]
	if c := img.RGBAAt(5, 25); c.R < 128 {
		t.Errorf("pixel inside first dash = %v, want lit", c)
	}
	if c := img.RGBAAt(15, 25); c.R != 0 {
		t.Errorf("pixel inside first gap = %v, want dark", c)
	}
}

func TestBackendFillWithHole(t *testing.T) {
	square := func(x0, y0, x1, y1 float64, clockwise bool) []recording.Point {
		pts := []recording.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		if !clockwise {
			pts[1], pts[3] = pts[3], pts[1]
		}
		return pts
	}
	r := record(t, 1, func(rec *recording.Recorder) {
		rec.SetColor(recording.White)
		_ = rec.Fill(recording.Path{
			square(10, 10, 40, 40, true),
			square(20, 20, 30, 30, false),
		})
	})
	b := NewBackend()
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	img := b.Pages()[0]
	if c := img.RGBAAt(15, 15); c.R != 255 {
		t.Errorf("filled ring pixel = %v, want white", c)
	}
	if c := img.RGBAAt(25, 25); c.R != 0 {
		t.Errorf("hole pixel = %v, want black", c)
	}
}

func TestBackendWriteTo(t *testing.T) {
	b := NewBackend()
	if err := record(t, 1, nil).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestBackendWriteToMultiPage(t *testing.T) {
	b := NewBackend()
	if err := record(t, 2, nil).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, recording.ErrMultiPage) {
		t.Errorf("WriteTo with 2 pages = %v, want ErrMultiPage", err)
	}
}

func TestBackendSaveFamily(t *testing.T) {
	b := NewBackend()
	if err := record(t, 2, nil).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	dir := t.TempDir()
	if err := b.SaveToFile(filepath.Join(dir, "plot.png")); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	for _, name := range []string{"plot.png", "plot-2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing page file %s: %v", name, err)
		}
	}
}

func TestBackendDefaultDPI(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(recording.Info{Width: 25.4, Height: 25.4}); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if b.width != DefaultDPI || b.height != DefaultDPI {
		t.Errorf("size = %dx%d, want %dx%d", b.width, b.height, DefaultDPI, DefaultDPI)
	}
	if err := b.Begin(recording.Info{}); err == nil {
		t.Error("Begin with an empty page should fail")
	}
}
