package fit

import (
	"fmt"
	"math"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
)

// minLogVelocity floors evaluated logarithmic profiles at typical water
// velocity so the model never produces non-physical values at small
// times.
const minLogVelocity = 1000.0

// Logarithmic is the model V = V0 + K*ln(t) with t in ms.
type Logarithmic struct {
	V0 float64
	K  float64
	R2 float64
}

// NewLogarithmic builds a custom logarithmic model from caller-supplied
// coefficients. Picks are only used for the goodness-of-fit report.
func NewLogarithmic(v0, k float64, picks []pick.Pick) Logarithmic {
	m := Logarithmic{V0: v0, K: k}
	times, vels := scatter(picks, func(p pick.Pick) bool { return p.Time > 0 })
	m.R2 = rSquared(m, times, vels)
	return m
}

// FitLogarithmic estimates (V0, K) by least squares over the pick
// scatter. Picks at time <= 0 are excluded before fitting since ln is
// undefined there; at least two picks must remain.
func FitLogarithmic(picks []pick.Pick) (Logarithmic, error) {
	times, vels := scatter(picks, func(p pick.Pick) bool { return p.Time > 0 })
	if len(times) < 2 {
		return Logarithmic{}, fmt.Errorf("fit: logarithmic model needs at least 2 picks with time > 0, got %d: %w",
			len(times), core.ErrInsufficientData)
	}

	v0, k, err := solveLine(times, vels, math.Log)
	if err != nil {
		return Logarithmic{}, err
	}

	m := Logarithmic{V0: v0, K: k}
	m.R2 = rSquared(m, times, vels)
	return m, nil
}

// Eval returns V0 + K*ln(t), floored at minLogVelocity. Times at or
// below zero are substituted with 1e-3 ms to keep ln finite; Profile
// uses the axis step instead, which is the better floor when the grid
// is known.
func (m Logarithmic) Eval(t float64) float64 {
	if t <= 0 {
		t = 1e-3
	}
	return math.Max(m.V0+m.K*math.Log(t), minLogVelocity)
}

// Profile samples the model on the time axis. The sample at time zero
// is evaluated at one axis step instead, avoiding ln(0).
func (m Logarithmic) Profile(ax core.Axes) []float64 {
	out := make([]float64, ax.NumSamples)
	for s := range out {
		t := ax.Time(s)
		if t <= 0 {
			t = ax.TimeStep
		}
		out[s] = m.Eval(t)
	}
	return out
}

// String describes the model the way it is shown to users.
func (m Logarithmic) String() string {
	return fmt.Sprintf("V = %.1f + %.4f*ln(TWT) (R2 = %.4f)", m.V0, m.K, m.R2)
}
