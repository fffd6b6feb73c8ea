package recording

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Page commands
	CmdBeginPage CommandType = iota // Start a new page
	CmdEndPage                      // Finish the current page

	// State commands
	CmdSetColor // Set pen and fill color
	CmdSetWidth // Set pen width
	CmdSetDash  // Set dash pattern

	// Drawing commands
	CmdPolyline // Stroke an open polyline
	CmdFill     // Fill a closed path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPage: "BeginPage",
	CmdEndPage:   "EndPage",
	CmdSetColor:  "SetColor",
	CmdSetWidth:  "SetWidth",
	CmdSetDash:   "SetDash",
	CmdPolyline:  "Polyline",
	CmdFill:      "Fill",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPageCommand starts a new page cleared to Background.
type BeginPageCommand struct {
	// Number is the 1-based page number.
	Number     int
	Background RGBA
}

// Type implements Command.
func (BeginPageCommand) Type() CommandType { return CmdBeginPage }

// EndPageCommand finishes the current page.
type EndPageCommand struct{}

// Type implements Command.
func (EndPageCommand) Type() CommandType { return CmdEndPage }

// SetColorCommand sets the color used by subsequent strokes and fills.
type SetColorCommand struct {
	Color RGBA
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// SetWidthCommand sets the pen width in millimetres.
type SetWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetWidthCommand) Type() CommandType { return CmdSetWidth }

// SetDashCommand sets the dash pattern. A nil Dash means solid lines.
type SetDashCommand struct {
	Dash *Dash
}

// Type implements Command.
func (SetDashCommand) Type() CommandType { return CmdSetDash }

// PolylineCommand strokes an open polyline with the current pen.
type PolylineCommand struct {
	Points []Point
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// FillCommand fills a closed path with the current color using the
// non-zero winding rule.
type FillCommand struct {
	Path Path
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }
