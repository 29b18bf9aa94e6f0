package fit

import (
	"fmt"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
)

// Linear is the model V = V0 + K*t with t in ms.
type Linear struct {
	V0 float64 // intercept velocity in m/s
	K  float64 // gradient in m/s per ms
	R2 float64 // goodness of fit over the scatter it was built against
}

// NewLinear builds a custom linear model from caller-supplied
// coefficients. No minimum pick count applies; picks are only used to
// report the goodness of fit and may be empty.
func NewLinear(v0, k float64, picks []pick.Pick) Linear {
	m := Linear{V0: v0, K: k}
	times, vels := scatter(picks, nil)
	m.R2 = rSquared(m, times, vels)
	return m
}

// FitLinear estimates (V0, K) by ordinary least squares over the full
// pick scatter, ignoring trace indices. At least two picks are required.
func FitLinear(picks []pick.Pick) (Linear, error) {
	times, vels := scatter(picks, nil)
	if len(times) < 2 {
		return Linear{}, fmt.Errorf("fit: linear model needs at least 2 picks, got %d: %w",
			len(times), core.ErrInsufficientData)
	}

	v0, k, err := solveLine(times, vels, func(t float64) float64 { return t })
	if err != nil {
		return Linear{}, err
	}

	m := Linear{V0: v0, K: k}
	m.R2 = rSquared(m, times, vels)
	return m, nil
}

// Eval returns V0 + K*t.
func (m Linear) Eval(t float64) float64 {
	return m.V0 + m.K*t
}

// Profile samples the model on the time axis.
func (m Linear) Profile(ax core.Axes) []float64 {
	out := make([]float64, ax.NumSamples)
	for s := range out {
		out[s] = m.Eval(ax.Time(s))
	}
	return out
}

// String describes the model the way it is shown to users.
func (m Linear) String() string {
	return fmt.Sprintf("V = %.1f + %.4f*TWT (R2 = %.4f)", m.V0, m.K, m.R2)
}
