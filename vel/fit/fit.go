package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
)

// Model is a laterally invariant velocity-time law. Eval returns the
// velocity in m/s at two-way time t (ms); Profile samples the law on a
// full time axis.
type Model interface {
	Eval(t float64) float64
	Profile(ax core.Axes) []float64
}

// solveLine fits v = v0 + k*basis(t) by ordinary least squares using a
// QR factorization of the overdetermined design matrix.
func solveLine(times, vels []float64, basis func(float64) float64) (v0, k float64, err error) {
	n := len(times)

	a := mat.NewDense(n, 2, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, 0, 1)
		a.Set(i, 1, basis(times[i]))
		b.SetVec(i, vels[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var coeffs mat.VecDense
	if err := qr.SolveVecTo(&coeffs, false, b); err != nil {
		return 0, 0, fmt.Errorf("fit: degenerate scatter: %w", core.ErrSingularSystem)
	}

	return coeffs.AtVec(0), coeffs.AtVec(1), nil
}

// rSquared returns the coefficient of determination of the model over
// the scatter, clamped at zero. A constant scatter yields zero.
func rSquared(m Model, times, vels []float64) float64 {
	if len(vels) == 0 {
		return 0
	}

	var mean float64
	for _, v := range vels {
		mean += v
	}
	mean /= float64(len(vels))

	var ssTotal, ssResidual float64
	for i, v := range vels {
		d := v - mean
		ssTotal += d * d
		r := v - m.Eval(times[i])
		ssResidual += r * r
	}
	if ssTotal == 0 {
		return 0
	}

	r2 := 1 - ssResidual/ssTotal
	if r2 < 0 {
		return 0
	}
	return r2
}

// scatter collapses a pick snapshot to the 1D (time, velocity) cloud,
// keeping only picks accepted by keep (nil keeps all).
func scatter(picks []pick.Pick, keep func(pick.Pick) bool) (times, vels []float64) {
	times = make([]float64, 0, len(picks))
	vels = make([]float64, 0, len(picks))
	for _, p := range picks {
		if keep != nil && !keep(p) {
			continue
		}
		times = append(times, p.Time)
		vels = append(vels, p.Velocity)
	}
	return times, vels
}

// Evaluate samples the model at every cell of a grid on the given axes.
// Every trace column carries the same profile.
func Evaluate(m Model, ax core.Axes) (*core.Grid, error) {
	g, err := core.NewGrid(ax)
	if err != nil {
		return nil, err
	}

	profile := m.Profile(ax)
	for j := 0; j < ax.NumTraces; j++ {
		g.SetColumn(j, profile)
	}
	return g, nil
}
