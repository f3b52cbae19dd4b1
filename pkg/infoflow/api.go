// Package infoflow is the embedding API for the annealed information-flow
// diffusion simulator: it runs simulations to completion, reduces their
// diagnostics, and manages named parameter presets.
package infoflow

import (
	"context"
	"fmt"
	"sync"

	"infoflow/internal/model"
	"infoflow/internal/runner"
	"infoflow/internal/sim"
	"infoflow/internal/stats"
	"infoflow/internal/storage"
)

const defaultDBPath = "infoflow.db"

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store

	initOnce sync.Once
	initErr  error
}

func NewClient(opts Options) (*Client, error) {
	kind := opts.StoreKind
	if kind == "" {
		kind = storage.DefaultStoreKind()
	}
	path := opts.DBPath
	if path == "" {
		path = defaultDBPath
	}
	store, err := storage.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) ensureInit(ctx context.Context) error {
	c.initOnce.Do(func() {
		c.initErr = c.store.Init(ctx)
	})
	return c.initErr
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() model.SimConfig {
	return sim.Default()
}

type RunRequest struct {
	Config model.SimConfig
	// Steps overrides Config.NSteps as the number of steps actually
	// driven; the schedule midpoint stays tied to Config.NSteps.
	Steps    int
	Observer runner.Observer
}

type RunSummary struct {
	Steps   int
	Summary stats.Summary
	Target  []float64
}

// Run executes one simulation to completion and reduces its diagnostics.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = req.Config.NSteps
	}
	simulator, err := sim.New(req.Config)
	if err != nil {
		return RunSummary{}, err
	}
	series, err := runner.Run(ctx, simulator, steps, req.Observer)
	if err != nil {
		return RunSummary{}, err
	}
	summary, err := stats.Summarize(series)
	if err != nil {
		return RunSummary{}, err
	}
	return RunSummary{
		Steps:   series.Len(),
		Summary: summary,
		Target:  simulator.Target(),
	}, nil
}

func (c *Client) SavePreset(ctx context.Context, name string, cfg model.SimConfig) error {
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	if err := sim.Validate(cfg); err != nil {
		return err
	}
	if err := c.ensureInit(ctx); err != nil {
		return err
	}
	return c.store.SavePreset(ctx, model.Preset{
		VersionedRecord: storage.NewVersionedRecord(),
		Name:            name,
		Config:          cfg,
	})
}

func (c *Client) LoadPreset(ctx context.Context, name string) (model.SimConfig, error) {
	if err := c.ensureInit(ctx); err != nil {
		return model.SimConfig{}, err
	}
	preset, ok, err := c.store.GetPreset(ctx, name)
	if err != nil {
		return model.SimConfig{}, err
	}
	if !ok {
		return model.SimConfig{}, fmt.Errorf("preset not found: %s", name)
	}
	return preset.Config, nil
}

func (c *Client) ListPresets(ctx context.Context) ([]model.Preset, error) {
	if err := c.ensureInit(ctx); err != nil {
		return nil, err
	}
	return c.store.ListPresets(ctx)
}

func (c *Client) DeletePreset(ctx context.Context, name string) error {
	if err := c.ensureInit(ctx); err != nil {
		return err
	}
	return c.store.DeletePreset(ctx, name)
}
