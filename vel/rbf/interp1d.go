package rbf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/seisgo/velfield/vel/core"
)

// Interp1D is the one-dimensional form of the interpolant, used by the
// two-step strategy to extend a single trace's (time, velocity) picks
// over the full time axis.
type Interp1D struct {
	kernel  Kernel
	epsilon float64
	ts      []float64
	weights []float64
	poly    []float64 // constant [, t] coefficients, kernel-dependent
}

// New1D builds a 1D interpolant over (time, velocity) pairs of one
// trace. At least two distinct times are required.
func New1D(ts, vals []float64, kernel Kernel, opts ...Option) (*Interp1D, error) {
	if len(ts) != len(vals) {
		return nil, fmt.Errorf("rbf: time and value counts differ: %d, %d", len(ts), len(vals))
	}
	if err := requireDistinct1D(ts); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(ts)
	npoly := kernel.polyTerms(1)
	dim := n + npoly

	a := mat.NewDense(dim, dim, nil)
	b := mat.NewVecDense(dim, nil)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := math.Abs(ts[i] - ts[j])
			a.Set(i, j, kernel.phi(r, cfg.epsilon))
		}
		a.Set(i, i, a.At(i, i)+cfg.smoothing)
		b.SetVec(i, vals[i])

		for p := 0; p < npoly; p++ {
			v := polyTerm1D(p, ts[i])
			a.Set(i, n+p, v)
			a.Set(n+p, i, v)
		}
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("rbf: collocation solve failed: %w", core.ErrSingularSystem)
	}

	it := &Interp1D{
		kernel:  kernel,
		epsilon: cfg.epsilon,
		ts:      append([]float64(nil), ts...),
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

// Eval returns the interpolated velocity at time t.
func (it *Interp1D) Eval(t float64) float64 {
	var sum float64
	for i, w := range it.weights {
		sum += w * it.kernel.phi(math.Abs(t-it.ts[i]), it.epsilon)
	}
	for p, c := range it.poly {
		sum += c * polyTerm1D(p, t)
	}
	return sum
}

// Profile evaluates the interpolant on a full time axis.
func (it *Interp1D) Profile(ax core.Axes) []float64 {
	out := make([]float64, ax.NumSamples)
	for s := range out {
		out[s] = it.Eval(ax.Time(s))
	}
	return out
}

func polyTerm1D(p int, t float64) float64 {
	if p == 0 {
		return 1
	}
	return t
}

func requireDistinct1D(ts []float64) error {
	for i := 1; i < len(ts); i++ {
		if ts[i] != ts[0] {
			return nil
		}
	}
	return fmt.Errorf("rbf: need at least 2 distinct times, got %d coincident: %w",
		len(ts), core.ErrSingularSystem)
}
