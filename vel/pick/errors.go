package pick

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPick is wrapped by all pick validation failures.
	ErrInvalidPick = errors.New("pick: invalid pick")

	// ErrNotFound indicates an edit or delete on an unknown pick ID.
	ErrNotFound = errors.New("pick: no such pick")
)

func validate(time, velocity float64) error {
	if time < 0 {
		return fmt.Errorf("%w: time must be >= 0 ms: %f", ErrInvalidPick, time)
	}
	if velocity <= 0 {
		return fmt.Errorf("%w: velocity must be > 0 m/s: %f", ErrInvalidPick, velocity)
	}
	return nil
}

func validateTrace(trace int) error {
	if trace < 0 {
		return fmt.Errorf("%w: trace index must be >= 0: %d", ErrInvalidPick, trace)
	}
	return nil
}
