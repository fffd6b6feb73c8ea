package recording

import (
	"errors"
	"io"
)

// Backend is the interface that all output devices must implement.
// Backends receive page commands and translate them to their output format
// (raster pixels, SVG elements, PDF content streams, ...).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept any number of pages between Begin and End
//  3. Treat coordinates as millimetres from the top-left page corner
type Backend interface {
	// Begin prepares the backend for pages described by info.
	Begin(info Info) error

	// BeginPage starts a new page cleared to bg.
	BeginPage(bg RGBA) error

	// SetColor sets the color for subsequent strokes and fills.
	SetColor(c RGBA)

	// SetWidth sets the pen width in millimetres.
	SetWidth(w float64)

	// SetDash sets the dash pattern; nil means solid lines.
	SetDash(d *Dash)

	// Polyline strokes an open polyline with round joins and caps.
	Polyline(pts []Point)

	// Fill fills a closed path using the non-zero winding rule.
	Fill(p Path)

	// EndPage finishes the current page.
	EndPage() error

	// End finalizes the output. After End, output methods can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to files.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. Backends that write one file
	// per page derive the page file names with FamilyName.
	SaveToFile(path string) error
}

// Extensioner is implemented by backends with a conventional file extension.
type Extensioner interface {
	// Extension returns the file extension without the leading dot.
	Extension() string
}

// ErrMultiPage is returned when a backend that produces one document per
// page is asked to write several pages to a single writer.
var ErrMultiPage = errors.New("recording: backend cannot write several pages to one writer")
