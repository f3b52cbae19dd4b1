package storage

import (
	"context"
	"sort"
	"sync"

	"infoflow/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string]model.Preset
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string]model.Preset)}
}

// Init resets the store to empty.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.presets = make(map[string]model.Preset)
	return nil
}

func (s *MemoryStore) SavePreset(_ context.Context, preset model.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.presets[preset.Name] = preset
	return nil
}

func (s *MemoryStore) GetPreset(_ context.Context, name string) (model.Preset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preset, ok := s.presets[name]
	return preset, ok, nil
}

func (s *MemoryStore) ListPresets(_ context.Context) ([]model.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Preset, 0, len(s.presets))
	for _, preset := range s.presets {
		out = append(out, preset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) DeletePreset(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.presets, name)
	return nil
}
