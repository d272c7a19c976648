// Package inserts provides persistence for the card list. Only InsertInputs
// shapes are stored; derived values are recomputed on every read and never
// touch storage.
package inserts

//go:generate mockgen -destination=mock/mock_repository.go -package=insertsmock github.com/dmtoolbox/inserts-api/internal/repositories/inserts Repository

import (
	"context"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// Repository defines card list persistence. Implementations keep insertion
// order, since the print layout follows the list.
type Repository interface {
	// Create stores a new card.
	// Returns errors.InvalidArgument for nil/id-less cards
	// Returns errors.AlreadyExists when the id is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a card by id.
	// Returns errors.InvalidArgument for an empty id
	// Returns errors.NotFound when the card does not exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored card.
	// Returns errors.InvalidArgument for nil/id-less cards
	// Returns errors.NotFound when the card does not exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a card by id.
	// Returns errors.InvalidArgument for an empty id
	// Returns errors.NotFound when the card does not exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every card in insertion order.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes every card.
	// Returns errors.Internal for storage failures
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// CreateInput holds the card to store.
type CreateInput struct {
	Card *dnd5e.InsertInputs
}

// CreateOutput echoes the stored card.
type CreateOutput struct {
	Card *dnd5e.InsertInputs
}

// GetInput identifies the card to fetch.
type GetInput struct {
	ID string
}

// GetOutput holds the fetched card.
type GetOutput struct {
	Card *dnd5e.InsertInputs
}

// UpdateInput holds the replacement card.
type UpdateInput struct {
	Card *dnd5e.InsertInputs
}

// UpdateOutput echoes the stored card.
type UpdateOutput struct {
	Card *dnd5e.InsertInputs
}

// DeleteInput identifies the card to remove.
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; present for forward compatibility.
type DeleteOutput struct{}

// ListInput is empty; the whole list is always small.
type ListInput struct{}

// ListOutput holds every stored card in insertion order.
type ListOutput struct {
	Cards []*dnd5e.InsertInputs
}

// ClearInput is empty.
type ClearInput struct{}

// ClearOutput reports how many cards were removed.
type ClearOutput struct {
	Removed int
}
