package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/ascii-donut/config"
	"github.com/lixenwraith/ascii-donut/render"
	"github.com/lixenwraith/ascii-donut/terminal"
)

// recordingDisplay keeps the text of every drawn frame and cancels after a limit
type recordingDisplay struct {
	initErr error
	limit   int
	cancel  context.CancelFunc

	inited    bool
	finalized bool
	frames    []string
}

func (d *recordingDisplay) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.inited = true
	return nil
}

func (d *recordingDisplay) Fini() { d.finalized = true }

func (d *recordingDisplay) Draw(g terminal.Grid) {
	d.frames = append(d.frames, string(g.AppendText(nil)))
	if len(d.frames) >= d.limit {
		d.cancel()
	}
}

func TestAnimateDrawsAdvancingFrames(t *testing.T) {
	cfg := config.Default()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := &recordingDisplay{limit: 3, cancel: cancel}
	frames, err := Animate(ctx, cfg, d)
	if err != nil {
		t.Fatalf("Animate: %v", err)
	}
	if frames != 3 || len(d.frames) != 3 {
		t.Fatalf("frames = %d, drawn = %d, want 3", frames, len(d.frames))
	}
	if !d.inited || !d.finalized {
		t.Errorf("display lifecycle: init=%t fini=%t", d.inited, d.finalized)
	}

	s := render.State{}
	for i, got := range d.frames {
		want := render.RenderFrame(cfg, s.A, s.B)
		if got != want {
			t.Errorf("frame %d does not match render at angles (%g, %g)", i, s.A, s.B)
		}
		s = s.Advance(cfg)
	}
}

func TestAnimateInitFailure(t *testing.T) {
	cfg := config.Default()
	d := &recordingDisplay{initErr: errors.New("no tty")}

	frames, err := Animate(context.Background(), cfg, d)
	if err == nil {
		t.Fatal("expected init error")
	}
	if !errors.Is(err, d.initErr) {
		t.Errorf("error %v does not wrap init error", err)
	}
	if frames != 0 || d.finalized {
		t.Errorf("frames=%d fini=%t after failed init", frames, d.finalized)
	}
}
