package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/ascii-donut/config"
	"github.com/lixenwraith/ascii-donut/render"
)

// languageLabel heads the benchmark report so results line up with the
// other implementations' output
const languageLabel = "Go"

// Report is the outcome of a benchmark run
type Report struct {
	Frames  int
	Elapsed time.Duration
}

// AverageFrame returns the mean time per frame, 0 when nothing was rendered
func (r Report) AverageFrame() time.Duration {
	if r.Frames <= 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Frames)
}

// FPS returns frames per second, 0 when frames or elapsed time is zero
func (r Report) FPS() float64 {
	if r.Frames <= 0 || r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}

// WriteTo writes the five-line report
func (r Report) WriteTo(w io.Writer) (int64, error) {
	avgMs := float64(r.AverageFrame()) / float64(time.Millisecond)
	n, err := fmt.Fprintf(w,
		"Language: %s\nFrames: %d\nTotal Time: %.4fs\nAvg Frame Time: %.2fms\nFPS: %.2f\n",
		languageLabel, r.Frames, r.Elapsed.Seconds(), avgMs, r.FPS(),
	)
	return int64(n), err
}

// Benchmark renders cfg.Frames frames back to back, serializing each one and
// discarding the text. Cancelling ctx stops early; the report then counts
// only completed frames.
func Benchmark(ctx context.Context, cfg config.Config, clock Clock) Report {
	if clock == nil {
		clock = NewTimeProvider()
	}

	r := render.NewRenderer(cfg)
	state := render.State{}
	var text []byte

	start := clock.Now()
	frames := 0
	for frames < cfg.Frames {
		if ctx.Err() != nil {
			break
		}
		text = r.Render(state).AppendText(text[:0])
		state = state.Advance(cfg)
		frames++
	}
	elapsed := clock.Now().Sub(start)

	return Report{Frames: frames, Elapsed: elapsed}
}
