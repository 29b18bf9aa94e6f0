package core

import (
	"errors"
	"fmt"
)

// Errors shared by the interpolation strategies.
var (
	// ErrInsufficientData indicates fewer picks than a method requires,
	// or that no trace could be filled during two-step construction.
	ErrInsufficientData = errors.New("core: insufficient picks for method")

	// ErrSingularSystem indicates a degenerate scatter (for example
	// coincident duplicate picks) that defeats the dense kernel solve.
	ErrSingularSystem = errors.New("core: kernel system is singular")
)

func validateAxes(ax Axes) error {
	if ax.NumTraces <= 0 {
		return fmt.Errorf("core: trace count must be > 0: %d", ax.NumTraces)
	}
	if ax.NumSamples <= 0 {
		return fmt.Errorf("core: sample count must be > 0: %d", ax.NumSamples)
	}
	if ax.TimeStep <= 0 {
		return fmt.Errorf("core: time step must be > 0: %f", ax.TimeStep)
	}
	return nil
}
