package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellDisplay draws frames through a tcell screen.
// tcell puts the terminal in raw mode, so SIGINT never arrives; Ctrl-C, Esc
// and q are turned into the quit callback instead.
type TcellDisplay struct {
	screen tcell.Screen
	quit   func()
	style  tcell.Style

	mu          sync.Mutex
	initialized bool
	finalized   bool
	pollDone    chan struct{}
}

// NewTcellDisplay wraps screen, or the real terminal screen when screen is nil.
// quit may be nil.
func NewTcellDisplay(screen tcell.Screen, quit func()) *TcellDisplay {
	if quit == nil {
		quit = func() {}
	}
	return &TcellDisplay{
		screen: screen,
		quit:   quit,
		style:  tcell.StyleDefault,
	}
}

// Init opens the screen, hides the cursor and starts event polling
func (d *TcellDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if d.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell screen: %w", err)
		}
		d.screen = screen
	}

	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	d.screen.HideCursor()
	d.screen.Clear()

	d.pollDone = make(chan struct{})
	go d.pollEvents()

	d.initialized = true
	return nil
}

// pollEvents runs until the screen is finalized
func (d *TcellDisplay) pollEvents() {
	defer close(d.pollDone)

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				d.quit()
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Fini restores the terminal and waits for the event poller to exit
func (d *TcellDisplay) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	d.screen.Fini()
	<-d.pollDone

	d.finalized = true
}

// Draw clears the screen and places every non-background glyph
func (d *TcellDisplay) Draw(g Grid) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	d.screen.Clear()
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := g.Glyph(x, y); r != ' ' {
				d.screen.SetContent(x, y, r, nil, d.style)
			}
		}
	}
	d.screen.Show()
}
