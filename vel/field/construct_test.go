package field

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/seisgo/velfield/internal/testutil"
	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/pick"
	"github.com/seisgo/velfield/vel/rbf"
)

var testGeom = &core.Geometry{
	TraceStart: 0,
	Coords: []core.Point{
		{X: 0, Y: 0}, {X: 25, Y: 0}, {X: 50, Y: 0}, {X: 75, Y: 0}, {X: 100, Y: 0}, {X: 125, Y: 0},
	},
	MaxTime: 1000,
}

var testPicks = []pick.Pick{
	{Trace: 0, Time: 100, Velocity: 1500},
	{Trace: 0, Time: 1000, Velocity: 1800},
	{Trace: 5, Time: 100, Velocity: 1600},
	{Trace: 5, Time: 1000, Velocity: 1900},
}

func requirePopulated(t *testing.T, g *core.Grid) {
	t.Helper()
	testutil.RequireFiniteGrid(t, g)
}

func TestConstructAllMethods(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"linear best fit", Config{Method: MethodLinearBestFit}},
		{"linear custom", Config{Method: MethodLinearCustom, V0: 1500, K: 0.5}},
		{"log best fit", Config{Method: MethodLogBestFit}},
		{"log custom", Config{Method: MethodLogCustom, V0: 1500, K: 100}},
		{"rbf", Config{Method: MethodRBF, Kernel: rbf.KernelLinear}},
		{"two-step", Config{Method: MethodTwoStep, Kernel: rbf.KernelLinear}},
		{"rbf smoothed", Config{Method: MethodRBF, Kernel: rbf.KernelLinear, SmoothLevel: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Construct(context.Background(), testPicks, testGeom, tc.cfg)
			if err != nil {
				t.Fatal(err)
			}
			wantAx := testGeom.AxesFor(DefaultTimeStep)
			if g.Axes != wantAx {
				t.Fatalf("axes=%+v, want %+v", g.Axes, wantAx)
			}
			requirePopulated(t, g)
		})
	}
}

func TestConstructLinearMatchesScenario(t *testing.T) {
	// Four picks over six traces: velocity(100 ms) must match the
	// least-squares value 1550 on every trace.
	g, err := Construct(context.Background(), testPicks, testGeom, Config{Method: MethodLinearBestFit})
	if err != nil {
		t.Fatal(err)
	}

	s := 25 // 100 ms at 4 ms sampling
	for j := 0; j < g.Axes.NumTraces; j++ {
		if !core.NearlyEqual(g.At(s, j), 1550, 1e-3) {
			t.Fatalf("trace %d: velocity(100)=%v, want 1550", j, g.At(s, j))
		}
	}
}

func TestConstructRBFReproducesPicks(t *testing.T) {
	g, err := Construct(context.Background(), testPicks, testGeom,
		Config{Method: MethodRBF, Kernel: rbf.KernelLinear})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range testPicks {
		j := g.Axes.Column(p.Trace)
		s := int(p.Time / g.Axes.TimeStep)
		if !core.NearlyEqual(g.At(s, j), p.Velocity, 1e-4) {
			t.Fatalf("pick at (%d,%v): grid=%v, want %v", p.Trace, p.Time, g.At(s, j), p.Velocity)
		}
	}
}

func TestConstructWithoutGeometrySpansPicks(t *testing.T) {
	picks := []pick.Pick{
		{Trace: 10, Time: 200, Velocity: 1500},
		{Trace: 14, Time: 800, Velocity: 1900},
	}

	g, err := Construct(context.Background(), picks, nil, Config{Method: MethodLinearBestFit})
	if err != nil {
		t.Fatal(err)
	}
	if g.Axes.TraceStart != 10 || g.Axes.NumTraces != 5 {
		t.Fatalf("trace axis=%+v, want start 10 count 5", g.Axes)
	}
	if g.Axes.TimeEnd() < 800 {
		t.Fatalf("time axis ends at %v, must cover 800", g.Axes.TimeEnd())
	}
}

func TestConstructNoPicksNoGeometry(t *testing.T) {
	_, err := Construct(context.Background(), nil, nil, Config{Method: MethodLinearCustom, V0: 1500})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("err=%v, want ErrInsufficientData", err)
	}
}

func TestConstructCustomWithZeroPicks(t *testing.T) {
	// Custom variants may run with an empty pick set as long as a
	// geometry spans the grid.
	g, err := Construct(context.Background(), nil, testGeom,
		Config{Method: MethodLinearCustom, V0: 1480, K: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if !core.NearlyEqual(g.At(0, 0), 1480, 1e-3) {
		t.Fatalf("velocity(0)=%v, want 1480", g.At(0, 0))
	}
}

func TestConstructBestFitInsufficientData(t *testing.T) {
	one := testPicks[:1]
	for _, m := range []Method{MethodLinearBestFit, MethodLogBestFit} {
		_, err := Construct(context.Background(), one, testGeom, Config{Method: m})
		if !errors.Is(err, core.ErrInsufficientData) {
			t.Fatalf("%v: err=%v, want ErrInsufficientData", m, err)
		}
	}
}

func TestConstructCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, m := range []Method{MethodRBF, MethodTwoStep} {
		_, err := Construct(ctx, testPicks, testGeom, Config{Method: m, Kernel: rbf.KernelLinear})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("%v: err=%v, want context.Canceled", m, err)
		}
	}
}

func TestConcurrentConstructions(t *testing.T) {
	// Preview and final runs share nothing but their own snapshots.
	var wg sync.WaitGroup
	grids := make([]*core.Grid, 4)
	errs := make([]error, 4)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snapshot := append([]pick.Pick(nil), testPicks...)
			grids[i], errs[i] = Construct(context.Background(), snapshot, testGeom,
				Config{Method: MethodRBF, Kernel: rbf.KernelLinear, Workers: 2})
		}(i)
	}
	wg.Wait()

	for i := range grids {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		for c := range grids[i].Data {
			if grids[i].Data[c] != grids[0].Data[c] {
				t.Fatal("concurrent runs diverged on identical input")
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"zero value", Config{}, true},
		{"smoothing in range", Config{SmoothLevel: 100}, true},
		{"smoothing too high", Config{SmoothLevel: 101}, false},
		{"smoothing negative", Config{SmoothLevel: -1}, false},
		{"negative time step", Config{TimeStep: -4}, false},
		{"negative min picks", Config{MinTracePicks: -1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseMethodRoundTrip(t *testing.T) {
	methods := []Method{
		MethodLinearBestFit, MethodLinearCustom,
		MethodLogBestFit, MethodLogCustom,
		MethodRBF, MethodTwoStep,
	}
	for _, m := range methods {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMethod(%q)=%v,%v, want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMethod("kriging"); err == nil {
		t.Fatal("unknown method must fail")
	}
}

func TestProgressReported(t *testing.T) {
	var calls []int
	cfg := Config{
		Method: MethodLinearBestFit,
		Progress: func(percent int, _ string) {
			calls = append(calls, percent)
		},
	}

	if _, err := Construct(context.Background(), testPicks, testGeom, cfg); err != nil {
		t.Fatal(err)
	}
	if len(calls) == 0 || calls[len(calls)-1] != 100 {
		t.Fatalf("progress calls=%v, want trailing 100", calls)
	}
}
