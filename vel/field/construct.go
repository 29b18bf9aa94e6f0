package field

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/fit"
	"github.com/seisgo/velfield/vel/pick"
	"github.com/seisgo/velfield/vel/rbf"
	"github.com/seisgo/velfield/vel/smooth"
	"github.com/seisgo/velfield/vel/twostep"
)

// Construct builds a dense velocity grid from an immutable pick
// snapshot. When geom is nil the grid axes are derived from the pick
// population's trace and time span instead of the trace geometry.
//
// The returned grid is independently owned by the caller; it is never
// patched afterwards, only replaced by re-running Construct.
func Construct(ctx context.Context, picks []pick.Pick, geom *core.Geometry, cfg Config) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ax, err := axesFor(picks, geom, cfg.timeStep())
	if err != nil {
		return nil, err
	}

	cfg.progress(5, fmt.Sprintf("building %d x %d grid with %s", ax.NumTraces, ax.NumSamples, cfg.Method))

	g, err := construct(ctx, picks, ax, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SmoothLevel > 0 {
		cfg.progress(90, "smoothing velocity field")
		g, err = smooth.GridLevel(g, cfg.SmoothLevel)
		if err != nil {
			return nil, err
		}
	}

	cfg.progress(100, "velocity field complete")
	return g, nil
}

func construct(ctx context.Context, picks []pick.Pick, ax core.Axes, cfg Config) (*core.Grid, error) {
	switch cfg.Method {
	case MethodLinearBestFit:
		m, err := fit.FitLinear(picks)
		if err != nil {
			return nil, err
		}
		cfg.progress(40, m.String())
		return fit.Evaluate(m, ax)

	case MethodLinearCustom:
		m := fit.NewLinear(cfg.V0, cfg.K, picks)
		cfg.progress(40, m.String())
		return fit.Evaluate(m, ax)

	case MethodLogBestFit:
		m, err := fit.FitLogarithmic(picks)
		if err != nil {
			return nil, err
		}
		cfg.progress(40, m.String())
		return fit.Evaluate(m, ax)

	case MethodLogCustom:
		m := fit.NewLogarithmic(cfg.V0, cfg.K, picks)
		cfg.progress(40, m.String())
		return fit.Evaluate(m, ax)

	case MethodRBF:
		return constructRBF(ctx, picks, ax, cfg)

	case MethodTwoStep:
		return twostep.Construct(ctx, picks, ax, twostep.Config{
			Kernel:        cfg.Kernel,
			MinTracePicks: cfg.MinTracePicks,
		})

	default:
		return nil, fmt.Errorf("field: unknown method %d", cfg.Method)
	}
}

// constructRBF solves the global scattered system once, then evaluates
// the grid columns in parallel. Cancellation is polled per column; a
// cancelled run discards the partial grid entirely.
func constructRBF(ctx context.Context, picks []pick.Pick, ax core.Axes, cfg Config) (*core.Grid, error) {
	xs := make([]float64, len(picks))
	ys := make([]float64, len(picks))
	vs := make([]float64, len(picks))
	for i, p := range picks {
		xs[i] = float64(p.Trace)
		ys[i] = p.Time
		vs[i] = p.Velocity
	}

	var opts []rbf.Option
	if cfg.Epsilon > 0 {
		opts = append(opts, rbf.WithEpsilon(cfg.Epsilon))
	}
	if cfg.RBFSmoothing > 0 {
		opts = append(opts, rbf.WithSmoothing(cfg.RBFSmoothing))
	}

	cfg.progress(20, fmt.Sprintf("solving %d-point %s system", len(picks), cfg.Kernel))
	it, err := rbf.New(xs, ys, vs, cfg.Kernel, opts...)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGrid(ax)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cfg.progress(50, "evaluating interpolant on grid")
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for j := 0; j < ax.NumTraces; j++ {
		grp.Go(func() error {
			select {
			case <-gctx.Done():
				return fmt.Errorf("field: construction cancelled: %w", gctx.Err())
			default:
			}

			x := float64(ax.Trace(j))
			for s := 0; s < ax.NumSamples; s++ {
				g.Set(s, j, it.Eval(x, ax.Time(s)))
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// axesFor derives the target grid axes from the trace geometry, or from
// the pick population when no geometry was supplied.
func axesFor(picks []pick.Pick, geom *core.Geometry, timeStep float64) (core.Axes, error) {
	if geom != nil {
		return geom.AxesFor(timeStep), nil
	}
	if len(picks) == 0 {
		return core.Axes{}, fmt.Errorf("field: no geometry and no picks to span a grid: %w",
			core.ErrInsufficientData)
	}

	minTrace, maxTrace := picks[0].Trace, picks[0].Trace
	maxTime := picks[0].Time
	for _, p := range picks[1:] {
		if p.Trace < minTrace {
			minTrace = p.Trace
		}
		if p.Trace > maxTrace {
			maxTrace = p.Trace
		}
		if p.Time > maxTime {
			maxTime = p.Time
		}
	}

	samples := int(maxTime/timeStep) + 1
	if samples < 2 {
		samples = 2
	}
	return core.Axes{
		TraceStart: minTrace,
		NumTraces:  maxTrace - minTrace + 1,
		TimeStart:  0,
		TimeStep:   timeStep,
		NumSamples: samples,
	}, nil
}
