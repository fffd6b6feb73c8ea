// Package svg provides the svg output device for the recording system.
// Each page becomes one SVG document written with github.com/ajstarks/svgo.
// Dash patterns map to stroke-dasharray; text arrives as filled outlines, so
// documents do not depend on installed fonts.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/plot/recording"
	"github.com/gogpu/plot/recording/backends/internal/pagefile"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultDPI is used when the recording does not specify a resolution.
const DefaultDPI = 96

// Backend renders recordings to SVG documents.
type Backend struct {
	info          recording.Info
	scale         float64 // user units per millimetre
	width, height int

	canvas *svgo.SVG
	page   *bytes.Buffer
	pages  []*bytes.Buffer

	color    recording.RGBA
	penWidth float64
	dash     *recording.Dash
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.Extensioner   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin sizes the documents from info.
func (b *Backend) Begin(info recording.Info) error {
	if info.DPI <= 0 {
		info.DPI = DefaultDPI
	}
	b.info = info
	b.scale = info.DPI / 25.4
	b.width, b.height = info.PixelSize()
	if b.width <= 0 || b.height <= 0 {
		return errors.New("svg: empty page")
	}
	b.pages = nil
	b.color = recording.Black
	b.penWidth = 1 / b.scale
	b.dash = nil
	return nil
}

// BeginPage starts a new document with a background rectangle.
func (b *Backend) BeginPage(bg recording.RGBA) error {
	b.page = &bytes.Buffer{}
	b.canvas = svgo.New(b.page)
	b.canvas.Start(b.width, b.height)
	if b.info.Title != "" {
		b.canvas.Title(b.info.Title)
	}
	b.canvas.Rect(0, 0, b.width, b.height, "fill:"+paint(bg)+opacity("fill", bg))
	return nil
}

// SetColor sets the stroke and fill color.
func (b *Backend) SetColor(c recording.RGBA) {
	b.color = c
}

// SetWidth sets the pen width in millimetres.
func (b *Backend) SetWidth(w float64) {
	b.penWidth = w
}

// SetDash sets the dash pattern in millimetres.
func (b *Backend) SetDash(d *recording.Dash) {
	b.dash = d.Clone()
}

// Polyline writes an unfilled path.
func (b *Backend) Polyline(pts []recording.Point) {
	if b.canvas == nil || len(pts) < 2 {
		return
	}
	var d strings.Builder
	b.subpath(&d, pts)

	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round%s",
		paint(b.color), num(b.penWidth*b.scale), opacity("stroke", b.color))
	if b.dash.IsDashed() {
		dash := b.dash.Scale(b.scale)
		parts := make([]string, len(dash.Array))
		for i, v := range dash.Array {
			parts[i] = num(v)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
		if dash.Offset != 0 {
			style += ";stroke-dashoffset:" + num(dash.Offset)
		}
	}
	b.canvas.Path(d.String(), style)
}

// Fill writes a filled path.
func (b *Backend) Fill(p recording.Path) {
	if b.canvas == nil || len(p) == 0 {
		return
	}
	var d strings.Builder
	for _, sub := range p {
		if len(sub) < 3 {
			continue
		}
		b.subpath(&d, sub)
		d.WriteString("Z")
	}
	if d.Len() == 0 {
		return
	}
	b.canvas.Path(d.String(), "stroke:none;fill-rule:nonzero;fill:"+paint(b.color)+opacity("fill", b.color))
}

// EndPage closes the current document.
func (b *Backend) EndPage() error {
	if b.canvas == nil {
		return errors.New("svg: EndPage without BeginPage")
	}
	b.canvas.End()
	b.pages = append(b.pages, b.page)
	b.canvas, b.page = nil, nil
	return nil
}

// End finalizes the output.
func (b *Backend) End() error {
	return nil
}

// Pages returns the rendered documents.
func (b *Backend) Pages() [][]byte {
	out := make([][]byte, len(b.pages))
	for i, p := range b.pages {
		out[i] = p.Bytes()
	}
	return out
}

// Extension implements recording.Extensioner.
func (b *Backend) Extension() string {
	return "svg"
}

// WriteTo writes the single rendered document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return pagefile.WriteSingle(w, len(b.pages), b.encode)
}

// SaveToFile saves every page as an SVG file.
func (b *Backend) SaveToFile(path string) error {
	return pagefile.SaveFamily(path, len(b.pages), b.encode)
}

func (b *Backend) encode(w io.Writer, page int) error {
	_, err := w.Write(b.pages[page].Bytes())
	return err
}

func (b *Backend) subpath(d *strings.Builder, pts []recording.Point) {
	for i, p := range pts {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString(" L")
		}
		d.WriteString(num(p.X * b.scale))
		d.WriteByte(' ')
		d.WriteString(num(p.Y * b.scale))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func paint(c recording.RGBA) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func opacity(prop string, c recording.RGBA) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(";%s-opacity:%s", prop, strconv.FormatFloat(c.A, 'f', 3, 64))
}
