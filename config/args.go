package config

import (
	"strconv"
	"strings"
)

// option describes one recognized command-line flag.
// Value options consume the following argument; switches do not.
type option struct {
	switchFlag bool
	set        func(c *Config, value string) bool
}

var options = map[string]option{
	"benchmark":   {switchFlag: true, set: func(c *Config, v string) bool { return setBool(&c.Benchmark, v) }},
	"wrap-angles": {switchFlag: true, set: func(c *Config, v string) bool { return setBool(&c.WrapAngles, v) }},
	"fit":         {switchFlag: true, set: func(c *Config, v string) bool { return setBool(&c.Fit, v) }},
	"debug":       {switchFlag: true, set: func(c *Config, v string) bool { return setBool(&c.Debug, v) }},

	"width":      {set: func(c *Config, v string) bool { return setInt(&c.Width, v) }},
	"height":     {set: func(c *Config, v string) bool { return setInt(&c.Height, v) }},
	"frames":     {set: func(c *Config, v string) bool { return setInt(&c.Frames, v) }},
	"workers":    {set: func(c *Config, v string) bool { return setInt(&c.Workers, v) }},
	"r1":         {set: func(c *Config, v string) bool { return setFloat(&c.R1, v) }},
	"r2":         {set: func(c *Config, v string) bool { return setFloat(&c.R2, v) }},
	"k1":         {set: func(c *Config, v string) bool { return setFloat(&c.K1, v) }},
	"k2":         {set: func(c *Config, v string) bool { return setFloat(&c.K2, v) }},
	"a-step":     {set: func(c *Config, v string) bool { return setFloat(&c.AStep, v) }},
	"b-step":     {set: func(c *Config, v string) bool { return setFloat(&c.BStep, v) }},
	"theta-step": {set: func(c *Config, v string) bool { return setFloat(&c.ThetaStep, v) }},
	"phi-step":   {set: func(c *Config, v string) bool { return setFloat(&c.PhiStep, v) }},
	"shading":    {set: setShading},
	"backend":    {set: setBackend},
}

// Parse overlays command-line arguments (without the program name) onto the
// defaults. Scanning never fails: unknown arguments are skipped and a value
// that does not parse leaves the field as it was.
func Parse(args []string) Config {
	cfg := Default()
	ParseInto(&cfg, args)
	return cfg
}

// ParseInto overlays arguments onto an existing configuration and returns the
// names of flags whose values were rejected
func ParseInto(cfg *Config, args []string) (rejected []string) {
	for i := 0; i < len(args); i++ {
		name, inline, hasInline := splitArg(args[i])
		if name == "" {
			continue
		}

		opt, ok := options[name]
		if !ok {
			continue
		}

		var value string
		switch {
		case hasInline:
			value = inline
		case opt.switchFlag:
			value = "true"
		case i+1 < len(args):
			i++
			value = args[i]
		default:
			// Trailing value flag with nothing after it
			rejected = append(rejected, name)
			continue
		}

		if !opt.set(cfg, value) {
			rejected = append(rejected, name)
		}
	}
	return rejected
}

// splitArg extracts the flag name from "--name" or "--name=value".
// Anything else, single-dash forms included, yields an empty name.
func splitArg(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false
	}
	arg = arg[2:]
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		return arg[:eq], arg[eq+1:], true
	}
	return arg, "", false
}

func setInt(dst *int, v string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	*dst = n
	return true
}

func setFloat(dst *float64, v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return false
	}
	*dst = f
	return true
}

func setBool(dst *bool, v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	*dst = b
	return true
}

// setShading takes each character of v as one glyph, in order
func setShading(c *Config, v string) bool {
	if v == "" {
		return false
	}
	c.Shading = []rune(v)
	return true
}

func setBackend(c *Config, v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case BackendANSI, BackendTcell:
		c.Backend = v
		return true
	}
	return false
}
