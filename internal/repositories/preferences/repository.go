// Package preferences persists the user preferences blob, stored separately
// from the card list.
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/dmtoolbox/inserts-api/internal/repositories/preferences Repository

import (
	"context"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// Repository defines preferences persistence. Reads are best effort: a
// missing or unreadable blob yields the defaults rather than an error, so
// a stale cache never blocks rendering.
type Repository interface {
	// Get retrieves the stored preferences, normalized over the defaults.
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set replaces the stored preferences.
	// Returns errors.InvalidArgument for nil preferences
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput is empty; there is a single preferences blob.
type GetInput struct{}

// GetOutput holds the stored (or default) preferences.
type GetOutput struct {
	Preferences *dnd5e.UserPreferences
}

// SetInput holds the preferences to store.
type SetInput struct {
	Preferences *dnd5e.UserPreferences
}

// SetOutput is empty.
type SetOutput struct{}
