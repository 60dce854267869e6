package config

import (
	"reflect"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg := Parse(nil)
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Parse(nil) = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Width != 80 || cfg.Height != 22 {
		t.Errorf("default size = %dx%d, want 80x22", cfg.Width, cfg.Height)
	}
	if cfg.R1 != 1 || cfg.R2 != 2 || cfg.K1 != 30 || cfg.K2 != 5 {
		t.Errorf("default geometry = r1 %g r2 %g k1 %g k2 %g", cfg.R1, cfg.R2, cfg.K1, cfg.K2)
	}
	if string(cfg.Shading) != ".,-~:;=!*#$@" {
		t.Errorf("default shading = %q", string(cfg.Shading))
	}
	if cfg.Frames != 500 || cfg.Benchmark {
		t.Errorf("default frames=%d benchmark=%t", cfg.Frames, cfg.Benchmark)
	}
}

func TestParseOverrides(t *testing.T) {
	args := []string{
		"--benchmark",
		"--width", "120",
		"--height", "40",
		"--r1", "0.5",
		"--r2", "3",
		"--k1", "45.5",
		"--k2", "8",
		"--a-step", "0.1",
		"--b-step", "-0.05",
		"--theta-step", "0.1",
		"--phi-step", "0.03",
		"--frames", "42",
		"--shading", " .:#",
	}
	cfg := Parse(args)

	want := Default()
	want.Benchmark = true
	want.Width = 120
	want.Height = 40
	want.R1 = 0.5
	want.R2 = 3
	want.K1 = 45.5
	want.K2 = 8
	want.AStep = 0.1
	want.BStep = -0.05
	want.ThetaStep = 0.1
	want.PhiStep = 0.03
	want.Frames = 42
	want.Shading = []rune(" .:#")

	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Parse overrides:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestParseLenient(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c Config)
	}{
		{
			name: "malformed width keeps default",
			args: []string{"--width", "abc"},
			check: func(t *testing.T, c Config) {
				if c.Width != 80 {
					t.Errorf("Width = %d, want 80", c.Width)
				}
			},
		},
		{
			name: "malformed float keeps prior override",
			args: []string{"--k1", "40", "--k1", "forty"},
			check: func(t *testing.T, c Config) {
				if c.K1 != 40 {
					t.Errorf("K1 = %g, want 40", c.K1)
				}
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"--help", "--color", "red", "stray", "--height", "30"},
			check: func(t *testing.T, c Config) {
				if c.Height != 30 {
					t.Errorf("Height = %d, want 30", c.Height)
				}
			},
		},
		{
			name: "single dash forms ignored",
			args: []string{"-width", "100", "-benchmark", "-k1=12"},
			check: func(t *testing.T, c Config) {
				if c.Width != 80 || c.Benchmark || c.K1 != 30 {
					t.Errorf("Width=%d Benchmark=%t K1=%g, want defaults", c.Width, c.Benchmark, c.K1)
				}
			},
		},
		{
			name: "trailing value flag without value",
			args: []string{"--frames"},
			check: func(t *testing.T, c Config) {
				if c.Frames != 500 {
					t.Errorf("Frames = %d, want 500", c.Frames)
				}
			},
		},
		{
			name: "value flag consumes next argument even if it looks like a flag",
			args: []string{"--width", "--benchmark"},
			check: func(t *testing.T, c Config) {
				if c.Width != 80 || c.Benchmark {
					t.Errorf("Width=%d Benchmark=%t, want 80 false", c.Width, c.Benchmark)
				}
			},
		},
		{
			name: "empty shading keeps default",
			args: []string{"--shading", ""},
			check: func(t *testing.T, c Config) {
				if string(c.Shading) != DefaultShading {
					t.Errorf("Shading = %q, want default", string(c.Shading))
				}
			},
		},
		{
			name: "inline values",
			args: []string{"--width=100", "--benchmark=false", "--phi-step=0.05"},
			check: func(t *testing.T, c Config) {
				if c.Width != 100 || c.Benchmark || c.PhiStep != 0.05 {
					t.Errorf("got width=%d benchmark=%t phi=%g", c.Width, c.Benchmark, c.PhiStep)
				}
			},
		},
		{
			name: "negative numbers accepted without range checks",
			args: []string{"--width", "-5", "--r1", "-1"},
			check: func(t *testing.T, c Config) {
				if c.Width != -5 || c.R1 != -1 {
					t.Errorf("Width=%d R1=%g, want -5 -1", c.Width, c.R1)
				}
			},
		},
		{
			name: "supplemented flags",
			args: []string{"--workers", "4", "--wrap-angles", "--backend", "TCELL", "--fit", "--debug"},
			check: func(t *testing.T, c Config) {
				if c.Workers != 4 || !c.WrapAngles || c.Backend != BackendTcell || !c.Fit || !c.Debug {
					t.Errorf("got %+v", c)
				}
			},
		},
		{
			name: "unknown backend keeps default",
			args: []string{"--backend", "ebiten"},
			check: func(t *testing.T, c Config) {
				if c.Backend != BackendANSI {
					t.Errorf("Backend = %q, want %q", c.Backend, BackendANSI)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Parse(tt.args))
		})
	}
}

func TestParseIntoReportsRejected(t *testing.T) {
	cfg := Default()
	rejected := ParseInto(&cfg, []string{"--width", "abc", "--height", "10", "--unknown", "--frames"})

	want := []string{"width", "frames"}
	if !reflect.DeepEqual(rejected, want) {
		t.Errorf("rejected = %v, want %v", rejected, want)
	}
	if cfg.Height != 10 {
		t.Errorf("Height = %d, want 10", cfg.Height)
	}
}
