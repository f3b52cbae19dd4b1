package storage

import (
	"context"

	"infoflow/internal/model"
)

// Store defines persistence operations for named simulation presets.
type Store interface {
	Init(ctx context.Context) error
	SavePreset(ctx context.Context, preset model.Preset) error
	GetPreset(ctx context.Context, name string) (model.Preset, bool, error)
	ListPresets(ctx context.Context) ([]model.Preset, error)
	DeletePreset(ctx context.Context, name string) error
}
