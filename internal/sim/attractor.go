package sim

import "math"

// attractorDecayRate shapes the fixed exponential-decay target distribution.
const attractorDecayRate = 2.5

// NewAttractor returns the normalized exponential-decay target distribution
// over nStates states: dist[i] proportional to exp(-i/2.5).
func NewAttractor(nStates int) []float64 {
	dist := make([]float64, nStates)
	sum := 0.0
	for i := range dist {
		dist[i] = math.Exp(-float64(i) / attractorDecayRate)
		sum += dist[i]
	}
	for i := range dist {
		dist[i] /= sum
	}
	return dist
}
