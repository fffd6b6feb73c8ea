package plot

import (
	"io"

	"github.com/gogpu/plot/recording"
)

// StreamOption configures a Stream during creation.
//
// Example:
//
//	// Default png output named after the program
//	s := plot.NewStream()
//
//	// Four subpages rendered to a PDF file
//	s := plot.NewStream(plot.WithDevice("pdf"), plot.WithOutput("out.pdf"),
//		plot.WithSubpages(2, 2))
//
// Options that receive invalid values record a sticky error, reported by
// Err and Init.
type StreamOption func(*Stream)

// WithDevice selects the output device by registry name.
func WithDevice(name string) StreamOption {
	return func(s *Stream) {
		s.SetDevice(name)
	}
}

// WithOutput sets the output file. "-" writes to standard output.
func WithOutput(path string) StreamOption {
	return func(s *Stream) {
		s.SetOutput(path)
	}
}

// WithGeometry sets the page size in pixels at the stream resolution.
func WithGeometry(w, h int) StreamOption {
	return func(s *Stream) {
		s.SetGeometry(w, h)
	}
}

// WithDPI sets the stream resolution.
func WithDPI(dpi float64) StreamOption {
	return func(s *Stream) {
		s.SetDPI(dpi)
	}
}

// WithBackground sets color 0 of the palette.
func WithBackground(c recording.RGBA) StreamOption {
	return func(s *Stream) {
		s.SetBackground(c)
	}
}

// WithSubpages divides each page into nx by ny subpages.
func WithSubpages(nx, ny int) StreamOption {
	return func(s *Stream) {
		s.SetSubpages(nx, ny)
	}
}

// WithPalette replaces color map 0.
func WithPalette(p Palette) StreamOption {
	return func(s *Stream) {
		s.SetColorMap0(p)
	}
}

// WithProgram sets the program name used for the default output file.
func WithProgram(name string) StreamOption {
	return func(s *Stream) {
		s.program = name
	}
}

// WithConfig applies session defaults loaded with LoadConfig.
func WithConfig(cfg Config) StreamOption {
	return func(s *Stream) {
		s.setErr(cfg.Apply(s))
	}
}

// WithStdout sets where "-" output goes. The default is os.Stdout.
func WithStdout(w io.Writer) StreamOption {
	return func(s *Stream) {
		s.stdout = w
	}
}

// WithStderr sets where usage, version and log messages go. The default is
// os.Stderr.
func WithStderr(w io.Writer) StreamOption {
	return func(s *Stream) {
		s.stderr = w
	}
}
