package terminal

import (
	"io"
	"os"
)

// Pre-allocated ANSI sequences
var (
	csiClearScreen = []byte("\x1b[2J")
	csiHome        = []byte("\x1b[H")
	csiRIS         = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0        = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios left raw by tcell
	resetTerminalMode()
}
