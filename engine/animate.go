package engine

import (
	"context"
	"fmt"

	"github.com/lixenwraith/ascii-donut/config"
	"github.com/lixenwraith/ascii-donut/render"
	"github.com/lixenwraith/ascii-donut/terminal"
)

// Animate renders, draws and advances forever. There is no internal exit
// condition: it returns only when ctx is cancelled, after restoring the display.
func Animate(ctx context.Context, cfg config.Config, display terminal.Display) (frames int, err error) {
	if err := display.Init(); err != nil {
		return 0, fmt.Errorf("display init: %w", err)
	}
	defer display.Fini()

	r := render.NewRenderer(cfg)
	state := render.State{}

	for {
		select {
		case <-ctx.Done():
			return frames, nil
		default:
		}

		display.Draw(r.Render(state))
		state = state.Advance(cfg)
		frames++
	}
}
