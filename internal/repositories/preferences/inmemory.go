package preferences

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
)

// InMemoryRepository implements Repository with in-process state; used in
// tests and by the CLI.
type InMemoryRepository struct {
	mu   sync.RWMutex
	blob []byte
}

// NewInMemory creates an empty in-memory repository.
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Get retrieves the stored preferences, or the defaults when nothing has
// been stored.
func (r *InMemoryRepository) Get(_ context.Context, _ GetInput) (*GetOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.blob == nil {
		return &GetOutput{Preferences: dnd5e.DefaultPreferences()}, nil
	}

	var prefs dnd5e.UserPreferences
	if err := json.Unmarshal(r.blob, &prefs); err != nil {
		return &GetOutput{Preferences: dnd5e.DefaultPreferences()}, nil
	}
	prefs.Normalize()
	return &GetOutput{Preferences: &prefs}, nil
}

// Set replaces the stored preferences.
func (r *InMemoryRepository) Set(_ context.Context, input SetInput) (*SetOutput, error) {
	if input.Preferences == nil {
		return nil, errors.InvalidArgument("preferences cannot be nil")
	}

	data, err := json.Marshal(input.Preferences)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preferences")
	}

	r.mu.Lock()
	r.blob = data
	r.mu.Unlock()

	return &SetOutput{}, nil
}
