package testutil

import (
	"testing"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
)

// FillGrid builds a grid with the given dimensions and fills every cell
// from fill(sample, trace).
func FillGrid(t *testing.T, nTraces, nSamples int, timeStep float64, fill func(s, j int) float64) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(core.Axes{
		NumTraces:  nTraces,
		TimeStep:   timeStep,
		NumSamples: nSamples,
	})
	if err != nil {
		t.Fatal(err)
	}
	for s := 0; s < nSamples; s++ {
		for j := 0; j < nTraces; j++ {
			g.Set(s, j, fill(s, j))
		}
	}
	return g
}

// ConstantGrid builds a grid with every cell set to value.
func ConstantGrid(t *testing.T, nTraces, nSamples int, value float64) *core.Grid {
	t.Helper()
	return FillGrid(t, nTraces, nSamples, 4, func(s, j int) float64 { return value })
}

// LinearPicks generates picks sampling v = v0 + k*t at every
// trace/time combination.
func LinearPicks(traces []int, times []float64, v0, k float64) []pick.Pick {
	out := make([]pick.Pick, 0, len(traces)*len(times))
	for _, tr := range traces {
		for _, tm := range times {
			out = append(out, pick.Pick{Trace: tr, Time: tm, Velocity: v0 + k*tm})
		}
	}
	return out
}
