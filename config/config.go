// Package config holds the immutable run parameters of the torus renderer and
// the lenient command-line scanner that produces them.
package config

import (
	"fmt"
	"math"
)

// Backend names accepted by --backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// DefaultShading orders glyphs from dimmest to brightest
const DefaultShading = ".,-~:;=!*#$@"

// Config is produced once at startup and is read-only afterwards
type Config struct {
	// Output dimensions in characters
	Width  int
	Height int

	// Torus geometry: R1 tube radius, R2 distance from torus center to tube center
	R1 float64
	R2 float64

	// Projection: K1 screen scale, K2 camera distance added to depth
	K1 float64
	K2 float64

	// Per-frame rotation increments in radians
	AStep float64
	BStep float64

	// Surface sampling resolution in radians
	ThetaStep float64
	PhiStep   float64

	// Shading glyphs, index 0 dimmest
	Shading []rune

	Benchmark bool
	Frames    int

	// Workers > 1 splits the surface sweep across goroutines
	Workers int

	// WrapAngles keeps rotation angles within [0, 2π)
	WrapAngles bool

	// Backend selects the animation display
	Backend string

	// Fit sizes the frame to the terminal at startup
	Fit bool

	Debug bool
}

// Default returns the baseline configuration every run starts from
func Default() Config {
	return Config{
		Width:     80,
		Height:    22,
		R1:        1.0,
		R2:        2.0,
		K1:        30.0,
		K2:        5.0,
		AStep:     0.04,
		BStep:     0.02,
		ThetaStep: 0.07,
		PhiStep:   0.02,
		Shading:   []rune(DefaultShading),
		Frames:    500,
		Workers:   1,
		Backend:   BackendANSI,
	}
}

// Validate reports values the renderer accepts but cannot use productively.
// Nothing here is fatal; callers log the warnings and continue.
func (c Config) Validate() []string {
	var warnings []string

	if c.Width <= 0 || c.Height <= 0 {
		warnings = append(warnings, fmt.Sprintf("frame size %dx%d is empty", c.Width, c.Height))
	}
	if !(c.ThetaStep > 0) || !(c.PhiStep > 0) {
		warnings = append(warnings, fmt.Sprintf("sampling steps theta=%g phi=%g produce no surface points", c.ThetaStep, c.PhiStep))
	}
	if c.R1 <= 0 || c.R2 <= 0 {
		warnings = append(warnings, fmt.Sprintf("radii r1=%g r2=%g are not positive", c.R1, c.R2))
	}
	// Nearest surface depth is -(r1+r2) after rotation; camera must stay outside
	if c.K2 <= c.R1+c.R2 {
		warnings = append(warnings, fmt.Sprintf("k2=%g places the camera within reach of the surface (r1+r2=%g)", c.K2, c.R1+c.R2))
	}
	if len(c.Shading) == 0 {
		warnings = append(warnings, "shading is empty")
	}
	if c.Benchmark && c.Frames <= 0 {
		warnings = append(warnings, fmt.Sprintf("benchmark frame count %d renders nothing", c.Frames))
	}
	if math.IsNaN(c.AStep) || math.IsNaN(c.BStep) {
		warnings = append(warnings, "rotation step is NaN")
	}
	if c.Backend != BackendANSI && c.Backend != BackendTcell {
		warnings = append(warnings, fmt.Sprintf("unknown backend %q, using %q", c.Backend, BackendANSI))
	}

	return warnings
}

// String renders the effective configuration on one line for the log
func (c Config) String() string {
	return fmt.Sprintf(
		"size=%dx%d r1=%g r2=%g k1=%g k2=%g a_step=%g b_step=%g theta_step=%g phi_step=%g shading=%q benchmark=%t frames=%d workers=%d wrap=%t backend=%s",
		c.Width, c.Height, c.R1, c.R2, c.K1, c.K2, c.AStep, c.BStep, c.ThetaStep, c.PhiStep,
		string(c.Shading), c.Benchmark, c.Frames, c.Workers, c.WrapAngles, c.Backend,
	)
}
