package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// SimConfig is the immutable parameter bundle consumed by the simulator.
// All fields are fixed at construction time.
type SimConfig struct {
	NStates     int     `json:"n_states" yaml:"n_states"`
	NSteps      int     `json:"n_steps" yaml:"n_steps"`
	DT          float64 `json:"dt" yaml:"dt"`
	AlphaInit   float64 `json:"alpha_init" yaml:"alpha_init"`
	AlphaFinal  float64 `json:"alpha_final" yaml:"alpha_final"`
	BetaInit    float64 `json:"beta_init" yaml:"beta_init"`
	BetaFinal   float64 `json:"beta_final" yaml:"beta_final"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	RandomSeed  int64   `json:"random_seed" yaml:"random_seed"`
}

// Preset is a named SimConfig stored in a preset store.
type Preset struct {
	VersionedRecord
	Name   string    `json:"name"`
	Config SimConfig `json:"config"`
}

// StepRecord is one row of per-step diagnostics. Entropy and KLDivergence
// describe the state before the step's update was applied.
type StepRecord struct {
	Step         int     `json:"step"`
	Entropy      float64 `json:"entropy"`
	KLDivergence float64 `json:"kl_divergence"`
	Alpha        float64 `json:"alpha"`
	Beta         float64 `json:"beta"`
}
