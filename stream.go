package plot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/plot/internal/clip"
	"github.com/gogpu/plot/recording"
	"github.com/gogpu/plot/text"
)

// Defaults of a new Stream.
const (
	DefaultDevice = "png"
	DefaultWidth  = 720
	DefaultHeight = 540
	DefaultDPI    = 90.0
)

// penUnit is the length of one pen width unit in millimetres.
const penUnit = 25.4 / 90

// Base sizes in millimetres, scaled with the page size.
const (
	baseCharHeight   = 3.0
	baseSymbolHeight = 3.0
	baseMajorTick    = 3.0
	baseMinorTick    = 1.5
)

// Stream is a plotting session. It records every page and renders the
// recording to its device when End is called.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	// Configuration, fixed by Init.
	program  string
	device   string
	output   string
	widthPx  int
	heightPx int
	dpi      float64
	cmap0    Palette
	nx, ny   int
	width    float64 // default pen width
	verbose  bool
	debug    bool
	stdout   io.Writer
	stderr   io.Writer
	flags    *flagState

	// Session state.
	initialized bool
	ended       bool
	err         error
	rec         *recording.Recorder
	result      *recording.Recording
	fonts       *text.FontSet
	extended    bool

	pageW, pageH float64 // mm
	page, sub    int

	chrDef, chrScale  float64
	chrht, symht      float64
	majht, minht      float64
	subRect, viewport clip.Rect
	hasViewport       bool
	wxmin, wxmax      float64
	wymin, wymax      float64
	hasWindow         bool

	color          int
	pen            float64
	marks, spaces  []int
	dash           *recording.Dash
	xdigmax, xdigs int
	ydigmax, ydigs int
	leftExtent     float64 // mm left of the viewport covered by y labels
}

// NewStream creates a stream with the default device, a 720x540 page at
// 90 dpi, one subpage and the default palette.
func NewStream(opts ...StreamOption) *Stream {
	s := &Stream{
		program:  "plot",
		device:   DefaultDevice,
		widthPx:  DefaultWidth,
		heightPx: DefaultHeight,
		dpi:      DefaultDPI,
		cmap0:    DefaultPalette(),
		nx:       1,
		ny:       1,
		width:    1,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		chrScale: 1,
	}
	if exe, err := os.Executable(); err == nil {
		s.program = programName(exe)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// programName strips the directory and extension of a program path.
func programName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Stream) log() *slog.Logger {
	return Logger()
}

// setErr records err if it is the first error.
func (s *Stream) setErr(err error) {
	if err != nil && s.err == nil {
		s.err = err
		s.log().Debug("plot: sticky error", "err", err)
	}
}

// Err returns the first error recorded by the stream.
func (s *Stream) Err() error {
	return s.err
}

// ready reports whether drawing calls should proceed.
func (s *Stream) ready() bool {
	if s.err != nil {
		return false
	}
	if !s.initialized {
		s.setErr(ErrNotInitialized)
		return false
	}
	return true
}

// SetDevice selects the output device by registry name. It takes effect at Init.
func (s *Stream) SetDevice(name string) {
	if s.late("device") {
		return
	}
	s.device = name
}

// Device returns the output device name.
func (s *Stream) Device() string {
	return s.device
}

// SetOutput sets the output file. "-" writes to standard output.
func (s *Stream) SetOutput(path string) {
	if s.late("output") {
		return
	}
	s.output = path
}

// Output returns the output file name; Init fills in the default.
func (s *Stream) Output() string {
	return s.output
}

// SetGeometry sets the page size in pixels. It takes effect at Init.
func (s *Stream) SetGeometry(w, h int) {
	if w <= 0 || h <= 0 {
		s.setErr(fmt.Errorf("%w: geometry %dx%d", ErrBadOption, w, h))
		return
	}
	if s.late("geometry") {
		return
	}
	s.widthPx, s.heightPx = w, h
}

// SetDPI sets the resolution. It takes effect at Init.
func (s *Stream) SetDPI(dpi float64) {
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		s.setErr(fmt.Errorf("%w: dpi %v", ErrBadOption, dpi))
		return
	}
	if s.late("dpi") {
		return
	}
	s.dpi = dpi
}

// late reports whether a session setting arrives after Init, logging that
// it is ignored.
func (s *Stream) late(setting string) bool {
	if !s.initialized && !s.ended {
		return false
	}
	s.log().Warn("plot: setting ignored after Init", "setting", setting)
	return true
}

// SetBackground sets color 0, used to clear new pages.
func (s *Stream) SetBackground(c recording.RGBA) {
	s.cmap0[0] = c
	if s.rec != nil {
		s.rec.SetBackground(c)
	}
}

// SetSubpages divides each page into nx columns and ny rows. After Init
// the new grid applies from the next page.
func (s *Stream) SetSubpages(nx, ny int) {
	if nx <= 0 || ny <= 0 {
		s.setErr(fmt.Errorf("%w: subpages %dx%d", ErrBadOption, nx, ny))
		return
	}
	s.nx, s.ny = nx, ny
	if s.initialized {
		s.sub = nx * ny
		s.setSizes()
	}
}

// SetColorMap0 replaces color map 0. It must have at least one entry.
func (s *Stream) SetColorMap0(p Palette) {
	if len(p) == 0 {
		s.setErr(fmt.Errorf("%w: empty palette", ErrBadColor))
		return
	}
	s.cmap0 = p.Clone()
	if s.rec != nil {
		s.rec.SetBackground(s.cmap0[0])
	}
}

// ColorMap0 returns a copy of color map 0.
func (s *Stream) ColorMap0() Palette {
	return s.cmap0.Clone()
}

// SetCharHeight sets the default character height in millimetres (0 keeps
// the current default) and the scale applied to it.
func (s *Stream) SetCharHeight(def, scale float64) {
	if def < 0 || scale <= 0 {
		s.setErr(fmt.Errorf("%w: character height %v scale %v", ErrBadOption, def, scale))
		return
	}
	s.chrDef, s.chrScale = def, scale
	if s.initialized {
		s.setSizes()
	}
}

// CharHeight returns the default and current character heights in millimetres.
func (s *Stream) CharHeight() (def, current float64) {
	return s.chrht / s.chrScale, s.chrht
}

// setSizes derives character, symbol and tick sizes from the page size
// and the subpage grid.
func (s *Stream) setSizes() {
	scale := 0.5 * (s.pageW + s.pageH) / 200
	if s.ny > 1 {
		scale /= math.Sqrt(float64(s.ny))
	}
	def := baseCharHeight * scale
	if s.chrDef > 0 {
		def = s.chrDef
	}
	s.chrht = def * s.chrScale
	s.symht = baseSymbolHeight * scale
	s.majht = baseMajorTick * scale
	s.minht = baseMinorTick * scale
}

// Init opens the device and the first page.
func (s *Stream) Init() error {
	if s.initialized || s.ended {
		return fmt.Errorf("%w: Init called twice", ErrBadOption)
	}
	if s.err != nil {
		return s.err
	}
	b, err := recording.NewBackend(s.device)
	if err != nil {
		return fmt.Errorf("%w: device: %v (available: %s)", ErrBadOption, err, strings.Join(recording.Backends(), ", "))
	}
	if s.output == "" {
		if ext, ok := b.(recording.Extensioner); ok {
			s.output = s.program + "." + ext.Extension()
		}
	}

	s.pageW = float64(s.widthPx) * 25.4 / s.dpi
	s.pageH = float64(s.heightPx) * 25.4 / s.dpi
	s.rec = recording.NewRecorder(recording.Info{
		Width:      s.pageW,
		Height:     s.pageH,
		DPI:        s.dpi,
		Background: s.cmap0[0],
		Title:      s.program,
	})
	if s.fonts == nil {
		fonts, err := text.LoadFontSet(s.extended)
		if err != nil {
			return err
		}
		s.fonts = fonts
	}

	s.initialized = true
	s.setSizes()
	s.rec.BeginPage()
	s.page, s.sub = 1, 0
	s.Color0(1)
	s.SetWidth(s.width)

	s.log().Info("plot: stream initialized",
		"device", s.device,
		"output", s.output,
		"size", fmt.Sprintf("%dx%d", s.widthPx, s.heightPx),
		"subpages", fmt.Sprintf("%dx%d", s.nx, s.ny))
	return s.err
}

// End finishes the last page, renders the recording to the device and
// writes the output. It returns the first error of the session.
func (s *Stream) End() error {
	if !s.initialized {
		if s.err != nil {
			return s.err
		}
		return ErrNotInitialized
	}
	s.initialized = false
	s.ended = true
	s.result = s.rec.Finish()
	if s.err != nil {
		return s.err
	}
	return s.render(s.device, s.output)
}

// SaveAs replays every recorded page to another device. An empty device
// is chosen from the output file extension. SaveAs is valid after End.
func (s *Stream) SaveAs(device, output string) error {
	if s.result == nil {
		if s.initialized {
			return ErrStreamOpen
		}
		return ErrNotInitialized
	}
	if device == "" {
		d, err := recording.ForExtension(output)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadOption, err)
		}
		device = d
	}
	return s.render(device, output)
}

// render plays the finished recording to device and writes output.
func (s *Stream) render(device, output string) error {
	b, err := recording.NewBackend(device)
	if err != nil {
		return fmt.Errorf("%w: device: %v", ErrBadOption, err)
	}
	s.log().Debug("plot: playback", "device", device, "pages", s.result.Pages())
	if err := s.result.Playback(b); err != nil {
		return fmt.Errorf("plot: render %s: %w", device, err)
	}

	switch {
	case output == "":
		s.log().Debug("plot: no output", "device", device)
		return nil
	case output == "-":
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("%w: device %s cannot write to a stream", ErrBadOption, device)
		}
		if device != "svg" && isTerminal(s.stdout) {
			return fmt.Errorf("%w: refusing to write %s output to a terminal", ErrBadOption, device)
		}
		if _, err := wb.WriteTo(s.stdout); err != nil {
			return fmt.Errorf("plot: write %s: %w", device, err)
		}
	default:
		if err := saveFile(b, output); err != nil {
			return fmt.Errorf("plot: write %s: %w", output, err)
		}
	}
	s.log().Info("plot: output written", "device", device, "output", output, "pages", s.result.Pages())
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// saveFile writes backend output to path.
func saveFile(b recording.Backend, path string) (err error) {
	if fb, ok := b.(recording.FileBackend); ok {
		return fb.SaveToFile(path)
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return errors.New("device produces no output")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = wb.WriteTo(f)
	return err
}

// Recording returns the finished recording, or nil before End.
func (s *Stream) Recording() *recording.Recording {
	return s.result
}

// Pages returns the number of pages recorded so far.
func (s *Stream) Pages() int {
	switch {
	case s.result != nil:
		return s.result.Pages()
	case s.rec != nil:
		return s.rec.Pages()
	default:
		return 0
	}
}

// Devices returns the names of the registered output devices.
func Devices() []string {
	return recording.Backends()
}
