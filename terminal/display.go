package terminal

// Grid is the character surface a Display presents.
// Glyphs are addressed row-major from the top-left corner.
type Grid interface {
	Width() int
	Height() int
	Glyph(x, y int) rune

	// AppendText appends rows separated and terminated by '\n'
	AppendText(dst []byte) []byte
}

// Display shows successive frames. Methods are called from one goroutine.
type Display interface {
	// Init prepares the terminal; no frame is drawn before it succeeds
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Draw replaces the visible frame. Output errors are ignored
	Draw(g Grid)
}
