package terminal

import (
	"bufio"
	"io"
	"sync"
)

// ANSIDisplay repaints the whole screen per frame with plain escape
// sequences: cursor home, clear, then the frame text
type ANSIDisplay struct {
	writer *bufio.Writer
	text   []byte

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSIDisplay creates a display writing to w
func NewANSIDisplay(w io.Writer) *ANSIDisplay {
	return &ANSIDisplay{
		writer: bufio.NewWriterSize(w, 65536),
	}
}

// Init clears the screen and hides the cursor
func (d *ANSIDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	d.writer.Write(csiClearScreen)
	d.writer.Write(csiCursorHide)
	d.writer.Flush()

	d.initialized = true
	return nil
}

// Fini shows the cursor and resets attributes
func (d *ANSIDisplay) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	d.writer.Write(csiCursorShow)
	d.writer.Write(csiSGR0)
	d.writer.Flush()

	d.finalized = true
}

// Draw writes one full frame and flushes
func (d *ANSIDisplay) Draw(g Grid) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	d.text = g.AppendText(d.text[:0])

	d.writer.Write(csiHome)
	d.writer.Write(csiClearScreen)
	d.writer.Write(d.text)
	d.writer.Flush()
}
