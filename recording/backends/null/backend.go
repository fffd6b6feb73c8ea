// Package null provides the null output device: it accepts every command
// and produces no output. It is useful for dry runs and tests.
package null

import "github.com/gogpu/plot/recording"

func init() {
	recording.Register("null", func() recording.Backend {
		return NewBackend()
	})
}

// Backend discards all drawing. It counts what it was sent.
type Backend struct {
	pages, polylines, fills int
}

// NewBackend creates a new null backend.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Begin(recording.Info) error {
	*b = Backend{}
	return nil
}

func (b *Backend) BeginPage(recording.RGBA) error {
	b.pages++
	return nil
}

func (b *Backend) SetColor(recording.RGBA)    {}
func (b *Backend) SetWidth(float64)           {}
func (b *Backend) SetDash(*recording.Dash)    {}
func (b *Backend) Polyline([]recording.Point) { b.polylines++ }
func (b *Backend) Fill(recording.Path)        { b.fills++ }
func (b *Backend) EndPage() error             { return nil }
func (b *Backend) End() error                 { return nil }

// Stats returns the number of pages, polylines and fills received.
func (b *Backend) Stats() (pages, polylines, fills int) {
	return b.pages, b.polylines, b.fills
}
