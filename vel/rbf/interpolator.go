package rbf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/seisgo/velfield/vel/core"
)

// Option configures interpolant construction.
type Option func(*config)

type config struct {
	epsilon   float64
	smoothing float64
}

func defaultConfig() config {
	return config{epsilon: 1}
}

// WithEpsilon sets the shape parameter of the scale-sensitive kernels
// (gaussian, multiquadric). Values <= 0 are ignored.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithSmoothing adds a ridge term to the kernel matrix diagonal. A
// positive value trades the exact-interpolation property for noise
// robustness; zero (the default) keeps the interpolant exact at the
// picks.
func WithSmoothing(lambda float64) Option {
	return func(c *config) {
		if lambda >= 0 {
			c.smoothing = lambda
		}
	}
}

// Interpolator is a 2D radial-basis interpolant over the scatter of
// (trace, time) -> velocity. Construction solves the dense collocation
// system once; Eval is then O(N) per call.
type Interpolator struct {
	kernel  Kernel
	epsilon float64
	xs, ys  []float64
	weights []float64
	poly    []float64 // constant [, x, y] coefficients, kernel-dependent
}

// New builds an interpolant from pick coordinates (xs = trace indices,
// ys = times) and velocities. At least two distinct points are
// required; coincident duplicates make the system singular.
func New(xs, ys, vals []float64, kernel Kernel, opts ...Option) (*Interpolator, error) {
	if len(xs) != len(ys) || len(xs) != len(vals) {
		return nil, fmt.Errorf("rbf: coordinate and value counts differ: %d, %d, %d",
			len(xs), len(ys), len(vals))
	}
	if err := requireDistinct2D(xs, ys); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(xs)
	npoly := kernel.polyTerms(2)
	dim := n + npoly

	a := mat.NewDense(dim, dim, nil)
	b := mat.NewVecDense(dim, nil)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			a.Set(i, j, kernel.phi(r, cfg.epsilon))
		}
		a.Set(i, i, a.At(i, i)+cfg.smoothing)
		b.SetVec(i, vals[i])

		// Polynomial tail: [1, x, y] columns and their transpose.
		for p := 0; p < npoly; p++ {
			v := polyTerm2D(p, xs[i], ys[i])
			a.Set(i, n+p, v)
			a.Set(n+p, i, v)
		}
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("rbf: collocation solve failed: %w", core.ErrSingularSystem)
	}

	it := &Interpolator{
		kernel:  kernel,
		epsilon: cfg.epsilon,
		xs:      append([]float64(nil), xs...),
		ys:      append([]float64(nil), ys...),
		weights: make([]float64, n),
		poly:    make([]float64, npoly),
	}
	for i := 0; i < n; i++ {
		it.weights[i] = coeffs.AtVec(i)
	}
	for p := 0; p < npoly; p++ {
		it.poly[p] = coeffs.AtVec(n + p)
	}
	return it, nil
}

// Eval returns the interpolated velocity at (x, y).
func (it *Interpolator) Eval(x, y float64) float64 {
	var sum float64
	for i, w := range it.weights {
		r := math.Hypot(x-it.xs[i], y-it.ys[i])
		sum += w * it.kernel.phi(r, it.epsilon)
	}
	for p, c := range it.poly {
		sum += c * polyTerm2D(p, x, y)
	}
	return sum
}

// Len returns the number of source points.
func (it *Interpolator) Len() int {
	return len(it.weights)
}

func polyTerm2D(p int, x, y float64) float64 {
	switch p {
	case 0:
		return 1
	case 1:
		return x
	default:
		return y
	}
}

func requireDistinct2D(xs, ys []float64) error {
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[0] || ys[i] != ys[0] {
			return nil
		}
	}
	return fmt.Errorf("rbf: need at least 2 distinct picks, got %d coincident: %w",
		len(xs), core.ErrSingularSystem)
}
