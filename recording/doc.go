// Package recording provides the plot buffer: a device-independent record of
// every page drawn by a plot.Stream.
//
// A Stream never talks to an output device directly. Each drawing call is
// reduced to a handful of page-level commands (polylines, filled outlines and
// the pen state they need) which are appended to a Recorder. When the stream
// ends, the finished Recording is played back to a Backend that turns the
// commands into PNG images, SVG documents or PDF pages. The same Recording can
// be played back any number of times, which is how a plot is saved to a second
// device after it has been drawn.
//
// # Coordinates
//
// All coordinates are in millimetres on the physical page, with the origin in
// the top-left corner and Y increasing downward. Backends convert to their own
// units using the page size and resolution carried by [Info].
//
// # Usage
//
//	rec := recording.NewRecorder(recording.Info{Width: 200, Height: 150, DPI: 90})
//	rec.BeginPage()
//	rec.SetColor(recording.RGB(1, 0, 0))
//	rec.SetWidth(0.3)
//	rec.Polyline([]recording.Point{{X: 10, Y: 10}, {X: 190, Y: 140}})
//	rec.EndPage()
//	r := rec.Finish()
//
//	b, _ := recording.NewBackend("png")
//	_ = r.Playback(b)
//	_ = b.(recording.FileBackend).SaveToFile("out.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to make it available by name:
//
//	import _ "github.com/gogpu/plot/recording/backends/svg"
//
// The plot package imports all built-in backends (png, svg, pdf, null).
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A finished Recording is immutable
// and can be played back from multiple goroutines.
package recording
