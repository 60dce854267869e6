package render

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/ascii-donut/config"
)

const (
	fullTurn = 2 * math.Pi

	// luminanceScale maps the lighting term to a shading index
	luminanceScale = 8.0
)

// Renderer projects and shades the torus into a reusable Frame.
// A Renderer is owned by one driver goroutine; the returned Frame is valid
// until the next Render call.
type Renderer struct {
	cfg   config.Config
	frame *Frame

	// Phi sin/cos depend only on PhiStep, computed once
	phiSin []float64
	phiCos []float64

	thetaCount int
	workers    int
	shards     []*Frame
}

// NewRenderer prepares sampling tables and buffers for cfg
func NewRenderer(cfg config.Config) *Renderer {
	r := &Renderer{
		cfg:        cfg,
		frame:      NewFrame(cfg.Width, cfg.Height),
		thetaCount: sampleCount(cfg.ThetaStep),
	}

	phiCount := sampleCount(cfg.PhiStep)
	r.phiSin = make([]float64, phiCount)
	r.phiCos = make([]float64, phiCount)
	for j := 0; j < phiCount; j++ {
		r.phiSin[j], r.phiCos[j] = math.Sincos(float64(j) * cfg.PhiStep)
	}

	r.workers = cfg.Workers
	if r.workers > r.thetaCount {
		r.workers = r.thetaCount
	}
	if r.workers > 1 {
		r.shards = make([]*Frame, r.workers)
		for i := range r.shards {
			r.shards[i] = NewFrame(cfg.Width, cfg.Height)
		}
	}

	return r
}

// Render draws the torus at the given angles
func (r *Renderer) Render(s State) *Frame {
	r.frame.Reset()

	if r.workers <= 1 {
		r.sweep(r.frame, s.A, s.B, 0, r.thetaCount)
		return r.frame
	}

	// Contiguous theta bands per worker, first 'rem' bands one sample longer
	var wg sync.WaitGroup
	per := r.thetaCount / r.workers
	rem := r.thetaCount % r.workers
	start := 0
	for w := 0; w < r.workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		go func(shard *Frame, from, to int) {
			defer wg.Done()
			shard.Reset()
			r.sweep(shard, s.A, s.B, from, to)
		}(r.shards[w], start, start+n)
		start += n
	}
	wg.Wait()

	for _, shard := range r.shards {
		r.frame.Merge(shard)
	}
	return r.frame
}

// sweep samples theta indices [from, to) against every phi sample into dst
func (r *Renderer) sweep(dst *Frame, a, b float64, from, to int) {
	if dst.width == 0 || dst.height == 0 || len(r.cfg.Shading) == 0 {
		return
	}

	cfg := &r.cfg
	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)

	// Rotation about X by a, then about Z by b
	rot := mgl64.Rotate3DZ(b).Mul3(mgl64.Rotate3DX(a))

	halfW := float64(dst.width) / 2
	halfH := float64(dst.height) / 2
	maxX := float64(dst.width)
	maxY := float64(dst.height)
	shadeMax := len(cfg.Shading) - 1

	for i := from; i < to; i++ {
		sinT, cosT := math.Sincos(float64(i) * cfg.ThetaStep)
		circleX := cfg.R2 + cfg.R1*cosT
		circleY := cfg.R1 * sinT

		for j, sinP := range r.phiSin {
			cosP := r.phiCos[j]

			p := rot.Mul3x1(mgl64.Vec3{circleX * cosP, circleX * sinP, circleY})

			ooz := 1.0 / (p[2] + cfg.K2)
			fx := halfW + cfg.K1*ooz*p[0]
			fy := halfH - (cfg.K1*0.5)*ooz*p[1]

			// Truncation toward zero maps (-1, max) onto [0, max); NaN fails both sides
			if !(fx > -1 && fx < maxX && fy > -1 && fy < maxY) {
				continue
			}

			lum := cosP*cosT*sinB - cosA*cosT*sinP - sinA*sinT + cosB*(cosA*sinT-cosT*sinA*sinP)
			if lum <= 0 {
				continue
			}

			idx := int(fy)*dst.width + int(fx)
			if ooz > dst.depth[idx] {
				dst.depth[idx] = ooz
				shade := int(math.Round(lum * luminanceScale))
				if shade < 0 {
					shade = 0
				} else if shade > shadeMax {
					shade = shadeMax
				}
				dst.glyphs[idx] = cfg.Shading[shade]
			}
		}
	}
}

// RenderFrame renders the torus at angles (a, b) and returns the text form.
// The result depends only on its arguments.
func RenderFrame(cfg config.Config, a, b float64) string {
	return NewRenderer(cfg).Render(State{A: a, B: b}).String()
}

// sampleCount returns how many samples i*step fall in [0, 2π).
// Non-positive or NaN steps yield none.
func sampleCount(step float64) int {
	if !(step > 0) {
		return 0
	}
	n := 0
	for float64(n)*step < fullTurn {
		n++
	}
	return n
}
