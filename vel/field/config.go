package field

import (
	"fmt"

	"github.com/seisgo/velfield/vel/rbf"
	"github.com/seisgo/velfield/vel/smooth"
)

// Method selects the interpolation strategy.
type Method int

const (
	// MethodLinearBestFit fits V = V0 + k*t by least squares.
	MethodLinearBestFit Method = iota
	// MethodLinearCustom evaluates V = V0 + k*t with given coefficients.
	MethodLinearCustom
	// MethodLogBestFit fits V = V0 + k*ln(t) by least squares.
	MethodLogBestFit
	// MethodLogCustom evaluates V = V0 + k*ln(t) with given coefficients.
	MethodLogCustom
	// MethodRBF interpolates the full 2D scatter with a radial kernel.
	MethodRBF
	// MethodTwoStep interpolates per trace, then gap-fills and blends.
	MethodTwoStep
)

// String returns the method name used on the configuration surface.
func (m Method) String() string {
	switch m {
	case MethodLinearBestFit:
		return "linear"
	case MethodLinearCustom:
		return "linear-custom"
	case MethodLogBestFit:
		return "logarithmic"
	case MethodLogCustom:
		return "logarithmic-custom"
	case MethodRBF:
		return "rbf"
	case MethodTwoStep:
		return "two-step"
	default:
		return "unknown"
	}
}

// ParseMethod maps a configuration name to a method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "linear":
		return MethodLinearBestFit, nil
	case "linear-custom":
		return MethodLinearCustom, nil
	case "logarithmic", "log":
		return MethodLogBestFit, nil
	case "logarithmic-custom", "log-custom":
		return MethodLogCustom, nil
	case "rbf":
		return MethodRBF, nil
	case "two-step", "twostep":
		return MethodTwoStep, nil
	default:
		return 0, fmt.Errorf("field: unknown method %q", name)
	}
}

// DefaultTimeStep is the grid sampling interval in ms used when neither
// the geometry nor the configuration dictates one. It matches the usual
// seismic sample interval and is typically finer than the pick spacing.
const DefaultTimeStep = 4.0

// Progress receives coarse construction milestones as (percent,
// message). It is called from the construction goroutine only.
type Progress func(percent int, message string)

// Config is the full configuration surface of the engine. The zero
// value selects a best-fit linear model on a default-sampled grid with
// no smoothing.
type Config struct {
	Method Method

	// V0 and K feed the custom model variants.
	V0 float64
	K  float64

	// Kernel, Epsilon and RBFSmoothing shape the scattered
	// interpolation (Epsilon 0 keeps the kernel default; RBFSmoothing 0
	// keeps the interpolant exact at the picks).
	Kernel       rbf.Kernel
	Epsilon      float64
	RBFSmoothing float64

	// MinTracePicks is the two-step step-one threshold (0 = default).
	MinTracePicks int

	// SmoothLevel applies a final Gaussian blur: 0 disables, 1-100 maps
	// to sigma = level/10.
	SmoothLevel int

	// TimeStep overrides the grid time sampling (0 = DefaultTimeStep).
	TimeStep float64

	// Workers bounds parallel grid evaluation (0 = runtime default).
	Workers int

	// Progress, when set, receives construction milestones.
	Progress Progress
}

// Validate checks the parts of the configuration that have hard ranges.
func (c Config) Validate() error {
	if c.SmoothLevel != 0 && (c.SmoothLevel < smooth.MinLevel || c.SmoothLevel > smooth.MaxLevel) {
		return fmt.Errorf("field: smoothing level must be 0 or in [%d,%d]: %d",
			smooth.MinLevel, smooth.MaxLevel, c.SmoothLevel)
	}
	if c.TimeStep < 0 {
		return fmt.Errorf("field: time step must be >= 0: %f", c.TimeStep)
	}
	if c.MinTracePicks < 0 {
		return fmt.Errorf("field: min trace picks must be >= 0: %d", c.MinTracePicks)
	}
	return nil
}

func (c Config) timeStep() float64 {
	if c.TimeStep > 0 {
		return c.TimeStep
	}
	return DefaultTimeStep
}

func (c Config) progress(percent int, message string) {
	if c.Progress != nil {
		c.Progress(percent, message)
	}
}
