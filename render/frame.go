package render

import (
	"io"
	"unicode/utf8"
)

// Background is the glyph of a cell no surface point reached
const Background = ' '

// Frame is a width×height glyph grid paired with an inverse-depth buffer.
// Cells are row-major: idx = y*width + x
type Frame struct {
	glyphs []rune
	depth  []float64
	width  int
	height int
}

// NewFrame allocates a cleared frame; non-positive dimensions yield an empty frame
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	f := &Frame{
		glyphs: make([]rune, width*height),
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
	}
	f.Reset()
	return f
}

// Width returns the frame width in cells
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in cells
func (f *Frame) Height() int { return f.height }

// Reset fills glyphs with Background and depth with 0 using exponential copy
func (f *Frame) Reset() {
	if len(f.glyphs) == 0 {
		return
	}
	f.glyphs[0] = Background
	f.depth[0] = 0
	for filled := 1; filled < len(f.glyphs); filled *= 2 {
		copy(f.glyphs[filled:], f.glyphs[:filled])
	}
	for filled := 1; filled < len(f.depth); filled *= 2 {
		copy(f.depth[filled:], f.depth[:filled])
	}
}

// Glyph returns the glyph at (x, y), Background when out of bounds
func (f *Frame) Glyph(x, y int) rune {
	if !f.inBounds(x, y) {
		return Background
	}
	return f.glyphs[y*f.width+x]
}

// Depth returns the stored inverse depth at (x, y), 0 when out of bounds or never drawn
func (f *Frame) Depth(x, y int) float64 {
	if !f.inBounds(x, y) {
		return 0
	}
	return f.depth[y*f.width+x]
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Merge folds other into f with the z-buffer rule: strictly nearer wins,
// so on equal depth the cell already in f is kept. Merging shards in sweep
// order reproduces the sequential result.
func (f *Frame) Merge(other *Frame) {
	if other.width != f.width || other.height != f.height {
		return
	}
	for i, ooz := range other.depth {
		if ooz > f.depth[i] {
			f.depth[i] = ooz
			f.glyphs[i] = other.glyphs[i]
		}
	}
}

// Coverage counts cells holding a surface glyph
func (f *Frame) Coverage() int {
	n := 0
	for _, d := range f.depth {
		if d > 0 {
			n++
		}
	}
	return n
}

// AppendText appends the row-major text form, each row followed by '\n'
func (f *Frame) AppendText(dst []byte) []byte {
	for y := 0; y < f.height; y++ {
		row := f.glyphs[y*f.width : (y+1)*f.width]
		for _, r := range row {
			if r < utf8.RuneSelf {
				dst = append(dst, byte(r))
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
		dst = append(dst, '\n')
	}
	return dst
}

// String serializes the frame as text
func (f *Frame) String() string {
	return string(f.AppendText(make([]byte, 0, f.width*f.height+f.height)))
}

// WriteTo writes the text form to w
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.AppendText(make([]byte, 0, f.width*f.height+f.height)))
	return int64(n), err
}
