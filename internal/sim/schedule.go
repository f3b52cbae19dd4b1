package sim

import (
	"math"

	"infoflow/internal/model"
)

// sigmoidSteepness controls how sharply the annealing schedule flips from
// its early regime to its late regime around the midpoint of the run.
const sigmoidSteepness = 12.0

// Schedule computes the annealing coefficients for step t. The transition
// weight is a sigmoid centered at the midpoint of the configured run; t
// past NSteps extrapolates smoothly and stays numerically valid.
func Schedule(cfg model.SimConfig, t int) (alpha, beta, trans float64) {
	progress := float64(t) / float64(cfg.NSteps)
	trans = 1.0 / (1.0 + math.Exp(-sigmoidSteepness*(progress-0.5)))
	alpha = cfg.AlphaInit*(1-trans) + cfg.AlphaFinal*trans
	beta = cfg.BetaInit*(1-trans) + cfg.BetaFinal*trans
	return alpha, beta, trans
}
