// Package testutil provides shared helpers for velocity grid tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/seisgo/velfield/vel/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFiniteGrid fails t if any grid cell is NaN or Inf.
func RequireFiniteGrid(t *testing.T, g *core.Grid) {
	t.Helper()
	for i, v := range g.Data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("cell %d: non-finite value %v", i, v)
		}
	}
}

// RequirePopulatedGrid fails t if any grid cell is zero or non-finite.
func RequirePopulatedGrid(t *testing.T, g *core.Grid) {
	t.Helper()
	RequireFiniteGrid(t, g)
	for i, v := range g.Data {
		if v == 0 {
			t.Fatalf("cell %d unpopulated", i)
		}
	}
}

// MaxAbsDiffGrid returns the maximum absolute cell difference between
// two grids. Returns an error if the grids differ in size.
func MaxAbsDiffGrid(a, b *core.Grid) (float64, error) {
	if len(a.Data) != len(b.Data) {
		return 0, fmt.Errorf("size mismatch: %d vs %d", len(a.Data), len(b.Data))
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(float64(a.Data[i]) - float64(b.Data[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
