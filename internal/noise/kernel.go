package noise

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects how lattice corners are blended.
type Kernel uint8

const (
	KernelLinear Kernel = iota
	KernelCosine
	KernelSmoothstep
)

func (k Kernel) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelCosine:
		return "cosine"
	case KernelSmoothstep:
		return "smoothstep"
	default:
		return fmt.Sprintf("kernel(%d)", uint8(k))
	}
}

// ParseKernel maps a config name to a Kernel. "bicubic" is accepted as an
// alias for the cosine kernel.
func ParseKernel(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return KernelLinear, nil
	case "cosine", "bicubic":
		return KernelCosine, nil
	case "smoothstep":
		return KernelSmoothstep, nil
	default:
		return 0, fmt.Errorf("noise: unknown kernel %q", name)
	}
}

func (k Kernel) valid() bool {
	return k <= KernelSmoothstep
}

// interpolate blends a and b by t in [0,1].
func (k Kernel) interpolate(a, b, t float64) float64 {
	switch k {
	case KernelCosine:
		t = (1 - math.Cos(t*math.Pi)) / 2
	case KernelSmoothstep:
		t = fade(t)
	}
	return lerp(a, b, t)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
