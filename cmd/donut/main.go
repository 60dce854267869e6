package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/ascii-donut/config"
	"github.com/lixenwraith/ascii-donut/engine"
	"github.com/lixenwraith/ascii-donut/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDONUT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "donut: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so errors reach main only after they ran
func run(args []string) error {
	cfg := config.Default()
	rejected := config.ParseInto(&cfg, args)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	for _, name := range rejected {
		log.Printf("ignoring --%s: missing or malformed value", name)
	}

	if cfg.Fit && !cfg.Benchmark {
		if w, h, ok := terminal.Size(os.Stdout); ok {
			// Last row stays free so the trailing newline does not scroll
			cfg.Width, cfg.Height = w, h-1
		} else {
			log.Printf("fit requested but stdout is not a terminal, keeping %dx%d", cfg.Width, cfg.Height)
		}
	}

	log.Printf("config: %s", cfg)
	for _, w := range cfg.Validate() {
		log.Printf("config warning: %s", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Benchmark {
		report := engine.Benchmark(ctx, cfg, nil)
		if _, err := report.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Printf("benchmark: %d frames in %v (%.2f fps)", report.Frames, report.Elapsed, report.FPS())
		return nil
	}

	return runAnimation(ctx, stop, cfg)
}

// runAnimation drives the selected display until ctx is cancelled, falling
// back to plain ANSI output when tcell cannot open the terminal
func runAnimation(ctx context.Context, stop context.CancelFunc, cfg config.Config) error {
	var display terminal.Display
	switch cfg.Backend {
	case config.BackendTcell:
		display = terminal.NewTcellDisplay(nil, stop)
	default:
		display = terminal.NewANSIDisplay(os.Stdout)
	}

	frames, err := engine.Animate(ctx, cfg, display)
	if err != nil && cfg.Backend == config.BackendTcell {
		log.Printf("tcell display unavailable (%v), falling back to %s", err, config.BackendANSI)
		frames, err = engine.Animate(ctx, cfg, terminal.NewANSIDisplay(os.Stdout))
	}
	if err != nil {
		log.Printf("animation failed: %v", err)
		return fmt.Errorf("animation failed: %w", err)
	}

	log.Printf("animation stopped after %d frames: %v", frames, context.Cause(ctx))
	return nil
}
