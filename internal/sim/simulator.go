package sim

import (
	"math"
	"math/rand"

	"infoflow/internal/model"
)

// stateFloor keeps every component strictly positive so the log terms and
// divisions of later steps stay finite.
const stateFloor = 1e-12

// Result carries the committed state and the pre-update diagnostics of one
// step. State is a copy; mutating it does not affect the simulator.
type Result struct {
	State        []float64
	Entropy      float64
	KLDivergence float64
	Alpha        float64
	Beta         float64
}

// Simulator owns the evolving probability vector and the fixed target
// distribution. It is not safe for concurrent use: Step mutates the state
// and advances the random source, assuming one strictly sequential caller.
type Simulator struct {
	cfg    model.SimConfig
	rng    *rand.Rand
	target []float64
	state  []float64
}

// New validates cfg and builds a simulator with a uniform initial state.
// Identically configured simulators produce identical step sequences.
func New(cfg model.SimConfig) (*Simulator, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	state := make([]float64, cfg.NStates)
	for i := range state {
		state[i] = 1.0 / float64(cfg.NStates)
	}
	return &Simulator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.RandomSeed)),
		target: NewAttractor(cfg.NStates),
		state:  state,
	}, nil
}

func (s *Simulator) Config() model.SimConfig { return s.cfg }

// Target returns a copy of the fixed attractor distribution.
func (s *Simulator) Target() []float64 {
	return append([]float64(nil), s.target...)
}

// State returns a copy of the current state vector.
func (s *Simulator) State() []float64 {
	return append([]float64(nil), s.state...)
}

// Step advances the state by one Euler-Maruyama increment and returns the
// committed state together with the pre-update diagnostics. It draws
// exactly NStates normals from the random source on every call, so the
// stream position depends only on the number of calls made.
func (s *Simulator) Step(t int) (Result, error) {
	n := s.cfg.NStates
	alpha, beta, _ := Schedule(s.cfg, t)

	entropy := Entropy(s.state)
	klDiv := KLDivergence(s.state, s.target)

	// Gradient of the annealed potential in base-2 units. The sign
	// asymmetry between the alpha and beta terms is part of the dynamic;
	// the schedule endpoints depend on it.
	ln2Inv := 1.0 / math.Ln2
	grad := make([]float64, n)
	for i := 0; i < n; i++ {
		grad[i] = beta*(math.Log2(s.state[i]/s.target[i])+ln2Inv) -
			alpha*(-math.Log2(math.Max(s.state[i], stateFloor))-ln2Inv)
	}

	// Project onto the simplex tangent space: remove the component that
	// would change total mass.
	proj := 0.0
	for i := 0; i < n; i++ {
		proj += s.state[i] * grad[i]
	}
	for i := 0; i < n; i++ {
		grad[i] -= proj
	}

	// Multiplicative drift plus state-dependent diffusion noise; the
	// noise amplitude vanishes as a component approaches zero.
	noiseScale := math.Sqrt(2 * s.cfg.Temperature * s.cfg.DT)
	next := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		drift := -s.cfg.DT * s.state[i] * grad[i]
		noise := noiseScale * math.Sqrt(s.state[i]) * s.rng.NormFloat64()
		next[i] = math.Max(s.state[i]+drift+noise, stateFloor)
		sum += next[i]
	}
	for i := 0; i < n; i++ {
		next[i] /= sum
		if math.IsNaN(next[i]) || math.IsInf(next[i], 0) {
			return Result{}, &StepError{Step: t, Err: ErrNumericAnomaly}
		}
	}
	s.state = next

	return Result{
		State:        append([]float64(nil), next...),
		Entropy:      entropy,
		KLDivergence: klDiv,
		Alpha:        alpha,
		Beta:         beta,
	}, nil
}

// Entropy returns the base-2 Shannon entropy of dist. Exactly-zero
// components contribute nothing.
func Entropy(dist []float64) float64 {
	h := 0.0
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// KLDivergence returns the base-2 divergence of dist from target, with the
// same underflow floor the update uses.
func KLDivergence(dist, target []float64) float64 {
	kl := 0.0
	for i, p := range dist {
		kl += p * math.Log2(math.Max(p, stateFloor)/target[i])
	}
	return kl
}
