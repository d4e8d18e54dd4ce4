package noise

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"craftgen/internal/profiling"
)

// GenerateGradient produces gradient-lattice noise: one random gradient per
// lattice point over a width×height grid, sampled samples times per cell.
// The result is (width*samples)×(height*samples) values in [0,1].
//
// This is an alternate formulation of Generate. The two are not
// numerically related; pick one per world.
func (g *Generator) GenerateGradient(width, height, samples uint, k Kernel) (*HeightField, error) {
	defer profiling.Track("noise.GenerateGradient")()

	if width == 0 || height == 0 || samples == 0 {
		return nil, fmt.Errorf("%w: {%d, %d}, %d", ErrInvalidDimensions, width, height, samples)
	}
	if !k.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, k)
	}

	w, h := int(width), int(height)
	gradients := make([]mgl64.Vec2, w*h)
	for i := range gradients {
		gx, err := g.rng.Float(-1, 1)
		if err != nil {
			return nil, err
		}
		gy, err := g.rng.Float(-1, 1)
		if err != nil {
			return nil, err
		}
		gradients[i] = mgl64.Vec2{gx, gy}
	}

	cols, rows := w*int(samples), h*int(samples)
	deltaX := float64(w) / float64(cols)
	deltaY := float64(h) / float64(rows)

	out := newHeightField(cols, rows)
	for row := 0; row < rows; row++ {
		py := float64(row) * deltaY
		fy0 := math.Floor(py)
		fy := py - fy0
		y0 := int(fy0) % h
		y1 := (y0 + 1) % h

		for col := 0; col < cols; col++ {
			px := float64(col) * deltaX
			fx0 := math.Floor(px)
			fx := px - fx0
			x0 := int(fx0) % w
			x1 := (x0 + 1) % w

			d00 := gradients[y0*w+x0].Dot(mgl64.Vec2{fx, fy})
			d10 := gradients[y0*w+x1].Dot(mgl64.Vec2{fx - 1, fy})
			d01 := gradients[y1*w+x0].Dot(mgl64.Vec2{fx, fy - 1})
			d11 := gradients[y1*w+x1].Dot(mgl64.Vec2{fx - 1, fy - 1})

			top := k.interpolate(d00, d10, fx)
			bottom := k.interpolate(d01, d11, fx)
			v := k.interpolate(top, bottom, fy)

			// |gradient| < sqrt(2) and |offset| <= sqrt(2), so v is within [-2, 2].
			out.Values[row*cols+col] = clamp01((v + 2) / 4)
		}
	}
	return out, nil
}
