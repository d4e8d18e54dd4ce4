package noise

import (
	"errors"
	"fmt"
	"math"

	"craftgen/internal/profiling"
	"craftgen/internal/random"
)

// MaxOctaves keeps the coarsest period (2^(octaves-1)) within an int.
const MaxOctaves = 30

var (
	ErrInvalidDimensions = errors.New("noise: invalid dimensions")
	ErrInvalidRange      = random.ErrInvalidRange
	ErrFileNotFound      = errors.New("noise: file not found")
)

// Params controls octave synthesis.
type Params struct {
	Octaves     uint
	Amplitude   float64
	Persistence float64
	Kernel      Kernel
}

// DefaultParams returns eight cosine octaves halving in weight.
func DefaultParams() Params {
	return Params{
		Octaves:     8,
		Amplitude:   1.0,
		Persistence: 0.5,
		Kernel:      KernelCosine,
	}
}

// Validate checks the octave count, amplitude, persistence and kernel.
func (p Params) Validate() error {
	if p.Octaves == 0 || p.Octaves > MaxOctaves {
		return fmt.Errorf("%w: octaves %d (want 1..%d)", ErrInvalidDimensions, p.Octaves, MaxOctaves)
	}
	if !(p.Amplitude > 0) {
		return fmt.Errorf("%w: amplitude %f (must be > 0)", ErrInvalidRange, p.Amplitude)
	}
	if !(p.Persistence > 0 && p.Persistence < 1) {
		return fmt.Errorf("%w: persistence %f (must be in (0,1))", ErrInvalidRange, p.Persistence)
	}
	if !p.Kernel.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRange, p.Kernel)
	}
	return nil
}

// OctaveWeights returns the weight applied to each octave, coarsest first.
// Each weight is the previous one multiplied by the persistence.
func OctaveWeights(p Params) []float64 {
	weights := make([]float64, p.Octaves)
	amplitude := p.Amplitude
	for i := range weights {
		amplitude *= p.Persistence
		weights[i] = amplitude
	}
	return weights
}

// Generator synthesizes height fields from a shared random source.
// Every call advances the source, so call order is part of the output.
type Generator struct {
	rng *random.Random
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng *random.Random) *Generator {
	return &Generator{rng: rng}
}

// Generate produces a dim-sized field of multi-octave lattice noise.
//
// The lattice spans offset-position cells; when offset equals position the
// span is dim itself. Octave o blends lattice corners 2^o cells apart, and
// octaves are accumulated from coarsest to finest before being normalized
// by the total weight, so every sample lies in [0,1].
func (g *Generator) Generate(dim Dimension, position, offset Point, p Params) (*HeightField, error) {
	defer profiling.Track("noise.Generate")()

	if dim.Width <= 0 || dim.Height <= 0 {
		return nil, fmt.Errorf("%w: {%d, %d}", ErrInvalidDimensions, dim.Width, dim.Height)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	span := dim
	if offset != position {
		span = Dimension{Width: offset.X - position.X, Height: offset.Y - position.Y}
		if span.Width <= 0 || span.Height <= 0 {
			return nil, fmt.Errorf("%w: span {%d, %d} from {%d, %d} to {%d, %d}", ErrInvalidDimensions,
				span.Width, span.Height, position.X, position.Y, offset.X, offset.Y)
		}
	}

	lattice, err := g.lattice(span)
	if err != nil {
		return nil, err
	}

	octaves := make([][]float64, p.Octaves)
	for o := range octaves {
		octaves[o] = smoothOctave(lattice, span, dim, uint(o), p.Kernel)
	}

	// Amplitude cancels out of the normalized sum.
	relative := p
	relative.Amplitude = 1
	out := newHeightField(dim.Width, dim.Height)
	total := 0.0
	for i, weight := range OctaveWeights(relative) {
		octave := octaves[len(octaves)-1-i]
		total += weight
		for idx, v := range octave {
			out.Values[idx] += math.Abs(v * weight)
		}
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: octave weights sum to %g", ErrInvalidRange, total)
	}
	for idx, v := range out.Values {
		out.Values[idx] = clamp01(v / total)
	}
	return out, nil
}

// lattice draws one uniform value per span cell, row by row.
func (g *Generator) lattice(span Dimension) ([]float64, error) {
	values := make([]float64, span.Width*span.Height)
	for i := range values {
		v, err := g.rng.Float(0, 1)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// smoothOctave samples the lattice at period 2^octave for every output cell.
func smoothOctave(lattice []float64, span, dim Dimension, octave uint, k Kernel) []float64 {
	period := 1 << octave
	fperiod := float64(period)
	scaleX := float64(span.Width) / float64(dim.Width)
	scaleY := float64(span.Height) / float64(dim.Height)

	field := make([]float64, dim.Width*dim.Height)
	for y := 0; y < dim.Height; y++ {
		v := float64(y) * scaleY
		sy0 := math.Floor(v/fperiod) * fperiod
		alphaY := (v - sy0) / fperiod
		y0 := int(sy0) % span.Height
		y1 := (int(sy0) + period) % span.Height

		for x := 0; x < dim.Width; x++ {
			u := float64(x) * scaleX
			sx0 := math.Floor(u/fperiod) * fperiod
			alphaX := (u - sx0) / fperiod
			x0 := int(sx0) % span.Width
			x1 := (int(sx0) + period) % span.Width

			top := k.interpolate(lattice[y0*span.Width+x0], lattice[y0*span.Width+x1], alphaX)
			bottom := k.interpolate(lattice[y1*span.Width+x0], lattice[y1*span.Width+x1], alphaX)
			field[y*dim.Width+x] = k.interpolate(top, bottom, alphaY)
		}
	}
	return field
}
