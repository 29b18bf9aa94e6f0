// Package twostep implements the two-step interpolation strategy:
// per-trace 1D radial-basis interpolation over each sufficiently picked
// trace, nearest-trace copying for the remaining gaps, and a final
// blending blur over the seams.
//
// The strategy trades exactness for robustness: traces filled in step
// one reproduce their own picks, copied traces do not, but the field
// stays usable even when whole stretches of the line carry no picks at
// all, which defeats a single global scattered interpolation.
package twostep

import (
	"context"
	"fmt"
	"sort"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
	"github.com/seisgo/velfield/vel/rbf"
	"github.com/seisgo/velfield/vel/smooth"
)

// DefaultMinTracePicks is the minimum pick count a trace needs before
// it is interpolated on its own in step one.
const DefaultMinTracePicks = 2

// seamSmoothLevel drives the unconditional final blur that blends the
// seams left by nearest-trace copying (sigma 1.0). It is independent of
// any globally configured smoothing.
const seamSmoothLevel = 10

// Config selects the per-trace kernel and the step-one threshold.
type Config struct {
	Kernel        rbf.Kernel
	MinTracePicks int // 0 means DefaultMinTracePicks
}

// Construct builds a fully populated grid from the pick snapshot. It
// fails with the insufficient-data error when step one fills no trace
// at all. Cancellation is polled at every trace boundary.
func Construct(ctx context.Context, picks []pick.Pick, ax core.Axes, cfg Config) (*core.Grid, error) {
	g, err := core.NewGrid(ax)
	if err != nil {
		return nil, err
	}

	minPicks := cfg.MinTracePicks
	if minPicks <= 0 {
		minPicks = DefaultMinTracePicks
	}

	filled := make([]bool, ax.NumTraces)
	groups := pick.GroupByTrace(picks)

	traces := make([]int, 0, len(groups))
	for t := range groups {
		traces = append(traces, t)
	}
	sort.Ints(traces)

	// Step 1: interpolate each trace with enough picks over the full
	// time axis.
	profile := make([]float64, ax.NumSamples)
	for _, t := range traces {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("twostep: construction cancelled: %w", ctx.Err())
		default:
		}

		col := ax.Column(t)
		if col < 0 {
			continue
		}
		group := groups[t]
		if len(group) < minPicks {
			continue
		}

		if !fillTrace(g, col, group, cfg.Kernel, profile) {
			continue
		}
		filled[col] = true
	}

	// Step 2: copy each unfilled trace from its nearest filled
	// neighbor, preferring the lower index on ties.
	if err := fillGaps(g, filled); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("twostep: construction cancelled: %w", ctx.Err())
	default:
	}

	// Step 3: blend the copy seams.
	return smooth.GridLevel(g, seamSmoothLevel)
}

// fillTrace extrapolates one trace's picks over the full time axis and
// stores the profile. It reports false when the trace's picks are
// degenerate (for example all at one time), leaving the trace for step
// two.
func fillTrace(g *core.Grid, col int, group []pick.Pick, kernel rbf.Kernel, profile []float64) bool {
	ts := make([]float64, len(group))
	vs := make([]float64, len(group))
	minVel := group[0].Velocity
	for i, p := range group {
		ts[i] = p.Time
		vs[i] = p.Velocity
		if p.Velocity < minVel {
			minVel = p.Velocity
		}
	}

	it, err := rbf.New1D(ts, vs, kernel)
	if err != nil {
		return false
	}

	// Extrapolated values are floored at half the trace's slowest pick
	// so runaway extrapolation cannot go non-physical.
	floor := minVel * 0.5
	for s := range profile {
		v := it.Eval(g.Axes.Time(s))
		if v < floor {
			v = floor
		}
		profile[s] = v
	}
	g.SetColumn(col, profile)
	return true
}

// fillGaps copies the nearest filled column into every unfilled one.
func fillGaps(g *core.Grid, filled []bool) error {
	n := len(filled)

	// prev[j] is the closest filled column at or below j, next[j] the
	// closest at or above; -1 when absent.
	prev := make([]int, n)
	next := make([]int, n)
	last := -1
	for j := 0; j < n; j++ {
		if filled[j] {
			last = j
		}
		prev[j] = last
	}
	last = -1
	for j := n - 1; j >= 0; j-- {
		if filled[j] {
			last = j
		}
		next[j] = last
	}

	anyFilled := false
	for j := 0; j < n; j++ {
		if filled[j] {
			anyFilled = true
			break
		}
	}
	if !anyFilled {
		return fmt.Errorf("twostep: no trace reached the minimum pick count: %w",
			core.ErrInsufficientData)
	}

	for j := 0; j < n; j++ {
		if filled[j] {
			continue
		}
		src := prev[j]
		if src < 0 {
			src = next[j]
		} else if next[j] >= 0 && next[j]-j < j-src {
			// Strictly closer above wins; equal distance keeps the
			// lower index.
			src = next[j]
		}
		g.CopyColumn(j, src)
	}
	return nil
}
