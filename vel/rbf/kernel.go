package rbf

import (
	"fmt"
	"math"
)

// Kernel selects the radial basis function.
type Kernel int

const (
	// KernelMultiquadric is the smooth default: sqrt(1 + (eps*r)^2).
	KernelMultiquadric Kernel = iota
	// KernelLinear is phi(r) = r, a piecewise-linear interpolant.
	KernelLinear
	// KernelThinPlate is phi(r) = r^2 * ln(r).
	KernelThinPlate
	// KernelGaussian is phi(r) = exp(-(eps*r)^2).
	KernelGaussian
)

// String returns the kernel name used on the configuration surface.
func (k Kernel) String() string {
	switch k {
	case KernelMultiquadric:
		return "multiquadric"
	case KernelLinear:
		return "linear"
	case KernelThinPlate:
		return "thin-plate"
	case KernelGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseKernel maps a configuration name to a kernel.
func ParseKernel(name string) (Kernel, error) {
	switch name {
	case "multiquadric", "":
		return KernelMultiquadric, nil
	case "linear":
		return KernelLinear, nil
	case "thin-plate", "thinplate":
		return KernelThinPlate, nil
	case "gaussian", "gauss":
		return KernelGaussian, nil
	default:
		return 0, fmt.Errorf("rbf: unknown kernel %q", name)
	}
}

// phi evaluates the basis function at distance r.
func (k Kernel) phi(r, eps float64) float64 {
	switch k {
	case KernelLinear:
		return r
	case KernelThinPlate:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	case KernelGaussian:
		e := eps * r
		return math.Exp(-e * e)
	default: // multiquadric
		e := eps * r
		return math.Sqrt(1 + e*e)
	}
}

// polyTerms returns the number of monomial terms appended to the
// collocation system. Conditionally positive definite kernels need a
// low-order polynomial tail to stay solvable: the linear and
// multiquadric kernels take a constant term, thin-plate takes a full
// linear polynomial, and the Gaussian kernel needs none.
func (k Kernel) polyTerms(dims int) int {
	switch k {
	case KernelThinPlate:
		return 1 + dims
	case KernelGaussian:
		return 0
	default:
		return 1
	}
}
