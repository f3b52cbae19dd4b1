package sim

import (
	"fmt"

	"infoflow/internal/model"
)

// Default returns the reference parameter set.
func Default() model.SimConfig {
	return model.SimConfig{
		NStates:     15,
		NSteps:      1000,
		DT:          0.12,
		AlphaInit:   3.5,
		AlphaFinal:  0.05,
		BetaInit:    0.1,
		BetaFinal:   18.0,
		Temperature: 0.008,
		RandomSeed:  42,
	}
}

// Validate rejects parameter sets that make the update ill-defined.
// DT may be zero (every step is then a no-op) but not negative.
func Validate(cfg model.SimConfig) error {
	if cfg.NStates <= 0 {
		return fmt.Errorf("%w: n_states must be positive, got %d", ErrInvalidConfiguration, cfg.NStates)
	}
	if cfg.NSteps <= 0 {
		return fmt.Errorf("%w: n_steps must be positive, got %d", ErrInvalidConfiguration, cfg.NSteps)
	}
	if cfg.DT < 0 {
		return fmt.Errorf("%w: dt must not be negative, got %g", ErrInvalidConfiguration, cfg.DT)
	}
	if cfg.Temperature < 0 {
		return fmt.Errorf("%w: temperature must not be negative, got %g", ErrInvalidConfiguration, cfg.Temperature)
	}
	return nil
}
