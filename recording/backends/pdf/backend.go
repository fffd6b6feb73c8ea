// Package pdf provides the pdf output device for the recording system.
// All pages go into one document built with codeberg.org/go-pdf/fpdf, in
// millimetre units so recording coordinates are used unchanged.
package pdf

import (
	"errors"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/plot/recording"
	"github.com/gogpu/plot/recording/backends/internal/pagefile"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// minWidth is the thinnest line written, in millimetres.
const minWidth = 0.05

// Backend renders recordings to a multi-page PDF document.
// The document can be written once, with WriteTo or SaveToFile.
type Backend struct {
	info  recording.Info
	doc   *fpdf.Fpdf
	pages int
	open  bool
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.Extensioner   = (*Backend)(nil)
)

// NewBackend creates a new PDF backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin creates the document with pages of info's size.
func (b *Backend) Begin(info recording.Info) error {
	if info.Width <= 0 || info.Height <= 0 {
		return errors.New("pdf: empty page")
	}
	b.info = info
	b.pages = 0
	b.doc = fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: info.Width, Ht: info.Height},
	})
	b.doc.SetMargins(0, 0, 0)
	b.doc.SetAutoPageBreak(false, 0)
	b.doc.SetCreator("gogpu/plot", true)
	if info.Title != "" {
		b.doc.SetTitle(info.Title, true)
	}
	return b.doc.Error()
}

// BeginPage adds a page painted with bg.
func (b *Backend) BeginPage(bg recording.RGBA) error {
	b.doc.AddPage()
	b.doc.SetLineCapStyle("round")
	b.doc.SetLineJoinStyle("round")

	r, g, bl := bg.RGB255()
	b.doc.SetFillColor(r, g, bl)
	b.doc.Rect(0, 0, b.info.Width, b.info.Height, "F")
	b.pages++
	b.open = true
	return b.doc.Error()
}

// SetColor sets the draw and fill colors.
func (b *Backend) SetColor(c recording.RGBA) {
	r, g, bl := c.RGB255()
	b.doc.SetDrawColor(r, g, bl)
	b.doc.SetFillColor(r, g, bl)
}

// SetWidth sets the line width in millimetres.
func (b *Backend) SetWidth(w float64) {
	b.doc.SetLineWidth(max(w, minWidth))
}

// SetDash sets the dash pattern in millimetres.
func (b *Backend) SetDash(d *recording.Dash) {
	if !d.IsDashed() {
		b.doc.SetDashPattern([]float64{}, 0)
		return
	}
	b.doc.SetDashPattern(d.Array, d.Offset)
}

// Polyline strokes an open path.
func (b *Backend) Polyline(pts []recording.Point) {
	if !b.open || len(pts) < 2 {
		return
	}
	b.doc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.doc.LineTo(p.X, p.Y)
	}
	b.doc.DrawPath("D")
}

// Fill fills a closed path with the non-zero rule.
func (b *Backend) Fill(p recording.Path) {
	if !b.open {
		return
	}
	drawn := false
	for _, sub := range p {
		if len(sub) < 3 {
			continue
		}
		b.doc.MoveTo(sub[0].X, sub[0].Y)
		for _, pt := range sub[1:] {
			b.doc.LineTo(pt.X, pt.Y)
		}
		b.doc.ClosePath()
		drawn = true
	}
	if drawn {
		b.doc.DrawPath("F")
	}
}

// EndPage finishes the current page.
func (b *Backend) EndPage() error {
	if !b.open {
		return errors.New("pdf: EndPage without BeginPage")
	}
	b.open = false
	return b.doc.Error()
}

// End finalizes the document.
func (b *Backend) End() error {
	if b.pages == 0 {
		return errors.New("pdf: no pages rendered")
	}
	return b.doc.Error()
}

// Pages returns the number of pages in the document.
func (b *Backend) Pages() int {
	return b.pages
}

// Extension implements recording.Extensioner.
func (b *Backend) Extension() string {
	return "pdf"
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &pagefile.CountingWriter{W: w}
	err := b.doc.Output(cw)
	return cw.N, err
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	return b.doc.OutputFileAndClose(path)
}
