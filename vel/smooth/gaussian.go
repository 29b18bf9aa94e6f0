package smooth

import (
	"fmt"
	"math"

	"github.com/seisgo/velfield/vel/core"
)

// Smoothing levels accepted on the configuration surface.
const (
	MinLevel = 1
	MaxLevel = 100

	// levelDivisor maps a level to sigma: sigma = level / levelDivisor.
	levelDivisor = 10.0
)

// Sigma converts a configuration level (1-100) to a Gaussian sigma in
// grid cells.
func Sigma(level int) (float64, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, fmt.Errorf("smooth: level must be in [%d,%d]: %d", MinLevel, MaxLevel, level)
	}
	return float64(level) / levelDivisor, nil
}

// Kernel returns a normalized Gaussian kernel for the given sigma. The
// kernel is truncated at three sigma on each side and always has odd
// length.
func Kernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}

	k := make([]float64, 2*radius+1)
	inv := 1 / (2 * sigma * sigma)
	var sum float64
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d * inv)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Grid returns a new grid holding the Gaussian-smoothed field. The rows
// (across traces) are filtered first, then the columns (along time),
// which is equivalent to the full 2D convolution for a separable
// kernel.
func Grid(g *core.Grid, sigma float64) (*core.Grid, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("smooth: sigma must be > 0: %f", sigma)
	}

	kernel := Kernel(sigma)
	out := g.Clone()
	ax := g.Axes

	// Across traces.
	src := make([]float64, ax.NumTraces)
	dst := make([]float64, ax.NumTraces)
	for s := 0; s < ax.NumSamples; s++ {
		for j := range src {
			src[j] = out.At(s, j)
		}
		if err := convolveClamped(dst, src, kernel); err != nil {
			return nil, err
		}
		for j, v := range dst {
			out.Set(s, j, v)
		}
	}

	// Along time.
	src = make([]float64, ax.NumSamples)
	dst = make([]float64, ax.NumSamples)
	for j := 0; j < ax.NumTraces; j++ {
		src = out.Column(j, src)
		if err := convolveClamped(dst, src, kernel); err != nil {
			return nil, err
		}
		out.SetColumn(j, dst)
	}

	return out, nil
}

// GridLevel smooths with the sigma derived from a configuration level.
func GridLevel(g *core.Grid, level int) (*core.Grid, error) {
	sigma, err := Sigma(level)
	if err != nil {
		return nil, err
	}
	return Grid(g, sigma)
}
