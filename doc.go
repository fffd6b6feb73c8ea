// Package plot provides a stateful scientific plotting session for Go.
//
// # Overview
//
// A Stream collects drawing calls (axes, labels, polylines, markers) into a
// device-independent page recording and renders it to an output device when
// the session ends. The API follows the classic procedural plotting model:
// configure, Init, advance to a subpage, set up a viewport and window, draw,
// and End.
//
// # Quick Start
//
//	s := plot.NewStream(plot.WithDevice("svg"), plot.WithOutput("sinc.svg"))
//	if err := s.Init(); err != nil {
//		log.Fatal(err)
//	}
//	s.Env(-2, 10, -0.4, 1.2, 0, 1)
//	s.Label("(x)", "sin(x)/x", "Sinc function")
//	s.Line(xs, ys)
//	if err := s.End(); err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
// Drawing calls do not return errors. The first failure is kept and later
// calls become no-ops; Err reports it and End returns it.
//
// # Devices
//
// Output devices register themselves with the recording package. Importing
// plot makes png, svg, pdf and null available. A finished recording can be
// replayed to other devices with SaveAs.
//
// # Coordinate System
//
// Viewports are given in normalised subpage coordinates with the origin at
// the bottom left. Windows map world coordinates onto the viewport. Pages
// are recorded in millimetres from the top-left corner.
package plot

// Version is the library version reported by -v.
const Version = "0.3.0"
