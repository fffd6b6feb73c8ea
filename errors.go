package plot

import "errors"

// Sentinel errors. Stream methods wrap them with context, so compare with
// errors.Is.
var (
	// ErrNotInitialized is returned for drawing before Init or after End.
	ErrNotInitialized = errors.New("plot: stream not initialized")

	// ErrStreamOpen is returned by SaveAs before End.
	ErrStreamOpen = errors.New("plot: stream still open")

	// ErrBadRange is returned for empty or reversed viewports and empty windows.
	ErrBadRange = errors.New("plot: invalid range")

	// ErrNoWindow is returned when drawing before a viewport and window are set.
	ErrNoWindow = errors.New("plot: no viewport or window")

	// ErrLengthMismatch is returned when coordinate slices differ in length.
	ErrLengthMismatch = errors.New("plot: coordinate slices differ in length")

	// ErrBadColor is returned for a color map index out of range or a bad color.
	ErrBadColor = errors.New("plot: invalid color")

	// ErrBadSymbol is returned for an unknown marker code.
	ErrBadSymbol = errors.New("plot: unknown symbol code")

	// ErrBadStyle is returned for an invalid line style or pen width.
	ErrBadStyle = errors.New("plot: invalid line style")

	// ErrBadSubpage is returned by Advance for a subpage outside the grid.
	ErrBadSubpage = errors.New("plot: invalid subpage")

	// ErrBadOption is returned by ParseOpts and the setters for invalid
	// option names and values.
	ErrBadOption = errors.New("plot: invalid option")

	// ErrVersionShown is returned by ParseOpts after -v printed the version.
	ErrVersionShown = errors.New("plot: version shown")
)
