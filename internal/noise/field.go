package noise

import (
	"fmt"
	"math"
)

// Dimension is the size of a sample grid.
type Dimension struct {
	Width, Height int
}

// Point is an integer coordinate on the sample plane.
type Point struct {
	X, Y int
}

// HeightField is a dense row-major grid of normalized samples.
// Values lie in [0,1]; index = y*Width + x.
type HeightField struct {
	Width  int
	Height int
	Values []float64
}

func newHeightField(width, height int) *HeightField {
	return &HeightField{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// Dimension returns the field size.
func (f *HeightField) Dimension() Dimension {
	return Dimension{Width: f.Width, Height: f.Height}
}

// At returns the sample at (x, y).
func (f *HeightField) At(x, y int) (float64, error) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0, fmt.Errorf("%w: {%d, %d} outside {%d, %d}", ErrInvalidDimensions, x, y, f.Width, f.Height)
	}
	return f.Values[y*f.Width+x], nil
}

// Slice copies the w×h sub-rectangle anchored at (x, y).
func (f *HeightField) Slice(x, y, w, h int) (*HeightField, error) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > f.Width || y+h > f.Height {
		return nil, fmt.Errorf("%w: slice {%d, %d, %d, %d} of {%d, %d}",
			ErrInvalidDimensions, x, y, w, h, f.Width, f.Height)
	}
	out := newHeightField(w, h)
	for row := 0; row < h; row++ {
		src := (y+row)*f.Width + x
		copy(out.Values[row*w:(row+1)*w], f.Values[src:src+w])
	}
	return out, nil
}

// Rescale maps every sample onto an integer elevation in [0, levels).
func (f *HeightField) Rescale(levels int) []uint8 {
	if levels <= 0 {
		return make([]uint8, len(f.Values))
	}
	if levels > 256 {
		levels = 256
	}
	top := float64(levels - 1)
	out := make([]uint8, len(f.Values))
	for i, v := range f.Values {
		h := math.Floor(clamp01(v) * top)
		out[i] = uint8(h)
	}
	return out
}

// Min returns the smallest sample.
func (f *HeightField) Min() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	m := f.Values[0]
	for _, v := range f.Values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample.
func (f *HeightField) Max() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	m := f.Values[0]
	for _, v := range f.Values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Equal reports whether two fields are bit-identical.
func (f *HeightField) Equal(o *HeightField) bool {
	if f.Width != o.Width || f.Height != o.Height || len(f.Values) != len(o.Values) {
		return false
	}
	for i := range f.Values {
		if f.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
