package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/plot/recording"
)

func render(t *testing.T, pages int, draw func(rec *recording.Recorder)) *Backend {
	t.Helper()
	rec := recording.NewRecorder(recording.Info{Width: 100, Height: 50, DPI: 25.4, Title: "test plot"})
	for i := 0; i < pages; i++ {
		rec.BeginPage()
		if draw != nil {
			draw(rec)
		}
	}
	b := NewBackend()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	return b
}

// wellFormed decodes every token of doc.
func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed XML: %v\n%s", err, doc)
		}
	}
}

func TestBackendRegistration(t *testing.T) {
	b, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend(svg): %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", b)
	}
}

func TestBackendDocument(t *testing.T) {
	b := render(t, 1, func(rec *recording.Recorder) {
		rec.SetColor(recording.RGB(1, 0, 0))
		rec.SetWidth(0.5)
		rec.SetDash(recording.NewDash(1.5, 1.5))
		_ = rec.Polyline([]recording.Point{{X: 0, Y: 0}, {X: 10, Y: 20}})
		rec.SetColor(recording.RGB(0, 0, 1))
		_ = rec.Fill(recording.Path{{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}})
	})

	pages := b.Pages()
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	doc := pages[0]
	wellFormed(t, doc)

	for _, want := range []string{
		`width="100"`,
		"<title>test plot</title>",
		`d="M0.00 0.00 L10.00 20.00"`,
		"stroke:rgb(255,0,0)",
		"stroke-width:0.50",
		"stroke-dasharray:1.50,1.50",
		"fill:rgb(0,0,255)",
		"L2.00 2.00Z",
	} {
		if !bytes.Contains(doc, []byte(want)) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestBackendSolidHasNoDashArray(t *testing.T) {
	b := render(t, 1, func(rec *recording.Recorder) {
		rec.SetColor(recording.White)
		_ = rec.Polyline([]recording.Point{{X: 0, Y: 0}, {X: 10, Y: 20}})
	})
	if strings.Contains(string(b.Pages()[0]), "dasharray") {
		t.Error("solid polyline should not carry a dash array")
	}
}

func TestBackendWriteTo(t *testing.T) {
	b := render(t, 1, nil)
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) || !strings.Contains(buf.String(), "<svg") {
		t.Errorf("WriteTo wrote %d bytes: %q", n, buf.String())
	}

	multi := render(t, 2, nil)
	if _, err := multi.WriteTo(&bytes.Buffer{}); !errors.Is(err, recording.ErrMultiPage) {
		t.Errorf("WriteTo with 2 pages = %v, want ErrMultiPage", err)
	}
}
