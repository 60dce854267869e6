package render

import (
	"math"

	"github.com/lixenwraith/ascii-donut/config"
)

// State is the only mutable rendering state: the two rotation angles.
// A is the rotation about the X axis, B about the Z axis.
// The driver owns it and advances it strictly between renders.
type State struct {
	A, B float64
}

// StepAngles adds one frame of rotation without bounding the result
func StepAngles(a, b float64, cfg config.Config) (float64, float64) {
	return a + cfg.AStep, b + cfg.BStep
}

// Advance returns the state one frame later, wrapped into [0, 2π) when
// cfg.WrapAngles is set
func (s State) Advance(cfg config.Config) State {
	a, b := StepAngles(s.A, s.B, cfg)
	if cfg.WrapAngles {
		a, b = WrapAngle(a), WrapAngle(b)
	}
	return State{A: a, B: b}
}

// WrapAngle reduces x into [0, 2π); non-finite values pass through
func WrapAngle(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	x = math.Mod(x, fullTurn)
	if x < 0 {
		x += fullTurn
	}
	// -tiny + 2π rounds up to exactly 2π
	if x >= fullTurn {
		x = 0
	}
	return x
}
