package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a parameter set that makes the
	// update mathematically ill-defined.
	ErrInvalidConfiguration = errors.New("sim: invalid configuration")

	// ErrNumericAnomaly indicates a NaN or Inf component survived the
	// floor/renormalize step.
	ErrNumericAnomaly = errors.New("sim: numeric anomaly (NaN or Inf in state)")
)

// StepError annotates a failure with the step index it occurred at.
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
