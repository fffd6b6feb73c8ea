package recording

import "errors"

// Info describes the pages of a recording.
type Info struct {
	// Width and Height are the page size in millimetres.
	Width, Height float64

	// DPI is the resolution raster backends render at.
	DPI float64

	// Background is the page color when Begin is called.
	Background RGBA

	// Title is stored in document metadata by backends that support it.
	Title string
}

// PixelSize returns the page size in device pixels at Info.DPI.
func (i Info) PixelSize() (w, h int) {
	s := i.DPI / 25.4
	return int(i.Width*s + 0.5), int(i.Height*s + 0.5)
}

// ErrNoPage is returned when a drawing command is recorded outside a page.
var ErrNoPage = errors.New("recording: no page in progress")

// Recorder captures page commands.
// Redundant state commands (setting the color, width or dash pattern to its
// current value) are dropped, so backends only see real state changes.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	info     Info
	commands []Command
	pages    int
	inPage   bool

	color RGBA
	width float64
	dash  *Dash

	// emitted is the pen state backends have seen on the current page;
	// the valid flags are false until the first state command of a page.
	emitted struct {
		color RGBA
		width float64
		dash  *Dash
	}
	colorValid, widthValid, dashValid bool
}

// NewRecorder creates a new Recorder for pages described by info.
func NewRecorder(info Info) *Recorder {
	return &Recorder{
		info:     info,
		commands: make([]Command, 0, 256),
	}
}

// Info returns the page description.
func (r *Recorder) Info() Info {
	return r.info
}

// SetBackground changes the background used by pages started afterwards.
func (r *Recorder) SetBackground(c RGBA) {
	r.info.Background = c
}

// BeginPage starts a new page. An unfinished page is ended first.
func (r *Recorder) BeginPage() {
	if r.inPage {
		r.EndPage()
	}
	r.pages++
	r.inPage = true
	r.colorValid, r.widthValid, r.dashValid = false, false, false
	r.commands = append(r.commands, BeginPageCommand{Number: r.pages, Background: r.info.Background})
}

// EndPage finishes the current page. It is a no-op outside a page.
func (r *Recorder) EndPage() {
	if !r.inPage {
		return
	}
	r.inPage = false
	r.commands = append(r.commands, EndPageCommand{})
}

// InPage reports whether a page is in progress.
func (r *Recorder) InPage() bool {
	return r.inPage
}

// Pages returns the number of pages begun so far.
func (r *Recorder) Pages() int {
	return r.pages
}

// SetColor sets the pen and fill color.
func (r *Recorder) SetColor(c RGBA) {
	r.color = c
}

// SetWidth sets the pen width in millimetres.
func (r *Recorder) SetWidth(w float64) {
	r.width = w
}

// SetDash sets the dash pattern; nil means solid.
func (r *Recorder) SetDash(d *Dash) {
	r.dash = d.Clone()
}

// Polyline records an open polyline stroked with the current pen.
// Polylines with fewer than two points are dropped.
func (r *Recorder) Polyline(pts []Point) error {
	if !r.inPage {
		return ErrNoPage
	}
	if len(pts) < 2 {
		return nil
	}
	r.flushColor()
	r.flushStroke()
	r.commands = append(r.commands, PolylineCommand{Points: clonePoints(pts)})
	return nil
}

// Fill records a filled path in the current color.
func (r *Recorder) Fill(p Path) error {
	if !r.inPage {
		return ErrNoPage
	}
	if len(p) == 0 {
		return nil
	}
	r.flushColor()
	clone := make(Path, len(p))
	for i, sub := range p {
		clone[i] = clonePoints(sub)
	}
	r.commands = append(r.commands, FillCommand{Path: clone})
	return nil
}

func (r *Recorder) flushColor() {
	if r.colorValid && r.emitted.color == r.color {
		return
	}
	r.colorValid = true
	r.emitted.color = r.color
	r.commands = append(r.commands, SetColorCommand{Color: r.color})
}

func (r *Recorder) flushStroke() {
	if !r.widthValid || r.emitted.width != r.width {
		r.widthValid = true
		r.emitted.width = r.width
		r.commands = append(r.commands, SetWidthCommand{Width: r.width})
	}
	if !r.dashValid || !r.emitted.dash.Equal(r.dash) {
		r.dashValid = true
		r.emitted.dash = r.dash.Clone()
		r.commands = append(r.commands, SetDashCommand{Dash: r.dash.Clone()})
	}
}

// Finish returns an immutable Recording of everything recorded so far.
// An unfinished page is ended first. The Recorder can keep recording
// afterwards; later pages do not affect the returned Recording.
func (r *Recorder) Finish() *Recording {
	r.EndPage()
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		info:     r.info,
		commands: cmds,
		pages:    r.pages,
	}
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Recording is an immutable container for recorded pages.
// It can be replayed to any Backend implementation.
type Recording struct {
	info     Info
	commands []Command
	pages    int
}

// Info returns the page description.
func (r *Recording) Info() Info {
	return r.info
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Pages returns the number of recorded pages.
func (r *Recording) Pages() int {
	return r.pages
}

// Playback replays the recording to the given backend.
// Playback stops at the first backend error.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.info); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case BeginPageCommand:
			err = backend.BeginPage(c.Background)
		case EndPageCommand:
			err = backend.EndPage()
		case SetColorCommand:
			backend.SetColor(c.Color)
		case SetWidthCommand:
			backend.SetWidth(c.Width)
		case SetDashCommand:
			backend.SetDash(c.Dash)
		case PolylineCommand:
			backend.Polyline(c.Points)
		case FillCommand:
			backend.Fill(c.Path)
		}
		if err != nil {
			return err
		}
	}

	return backend.End()
}
