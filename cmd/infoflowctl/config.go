package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"infoflow/internal/model"
)

// fileConfig mirrors model.SimConfig with optional fields so that keys
// absent from the file keep their defaults.
type fileConfig struct {
	NStates     *int     `json:"n_states" yaml:"n_states"`
	NSteps      *int     `json:"n_steps" yaml:"n_steps"`
	DT          *float64 `json:"dt" yaml:"dt"`
	AlphaInit   *float64 `json:"alpha_init" yaml:"alpha_init"`
	AlphaFinal  *float64 `json:"alpha_final" yaml:"alpha_final"`
	BetaInit    *float64 `json:"beta_init" yaml:"beta_init"`
	BetaFinal   *float64 `json:"beta_final" yaml:"beta_final"`
	Temperature *float64 `json:"temperature" yaml:"temperature"`
	RandomSeed  *int64   `json:"random_seed" yaml:"random_seed"`
}

// loadConfigFile overlays the values present in path onto base. The format
// is chosen by extension: .json parses as JSON, .yaml/.yml as YAML.
func loadConfigFile(path string, base model.SimConfig) (model.SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SimConfig{}, err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return model.SimConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return model.SimConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return model.SimConfig{}, fmt.Errorf("unsupported config extension: %s", path)
	}

	return overlayConfig(base, fc), nil
}

func overlayConfig(base model.SimConfig, fc fileConfig) model.SimConfig {
	if fc.NStates != nil {
		base.NStates = *fc.NStates
	}
	if fc.NSteps != nil {
		base.NSteps = *fc.NSteps
	}
	if fc.DT != nil {
		base.DT = *fc.DT
	}
	if fc.AlphaInit != nil {
		base.AlphaInit = *fc.AlphaInit
	}
	if fc.AlphaFinal != nil {
		base.AlphaFinal = *fc.AlphaFinal
	}
	if fc.BetaInit != nil {
		base.BetaInit = *fc.BetaInit
	}
	if fc.BetaFinal != nil {
		base.BetaFinal = *fc.BetaFinal
	}
	if fc.Temperature != nil {
		base.Temperature = *fc.Temperature
	}
	if fc.RandomSeed != nil {
		base.RandomSeed = *fc.RandomSeed
	}
	return base
}
