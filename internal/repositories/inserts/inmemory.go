package inserts

import (
	"context"
	"sync"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
)

// InMemoryRepository implements Repository with an in-process map; used in
// tests and by the CLI, which works on transient lists.
type InMemoryRepository struct {
	mu    sync.RWMutex
	cards map[string]*dnd5e.InsertInputs
	order []string
}

// NewInMemory creates an empty in-memory repository.
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{cards: make(map[string]*dnd5e.InsertInputs)}
}

// Create stores a new card.
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[input.Card.ID]; ok {
		return nil, errors.AlreadyExistsf("card with ID %s already exists", input.Card.ID)
	}

	r.cards[input.Card.ID] = input.Card.Clone()
	r.order = append(r.order, input.Card.ID)

	return &CreateOutput{Card: input.Card}, nil
}

// Get retrieves a card by id.
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[input.ID]
	if !ok {
		return nil, errors.NotFoundf("card with ID %s not found", input.ID)
	}

	// Copies keep callers from mutating the stored record.
	return &GetOutput{Card: card.Clone()}, nil
}

// Update replaces a stored card.
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[input.Card.ID]; !ok {
		return nil, errors.NotFoundf("card with ID %s not found", input.Card.ID)
	}

	r.cards[input.Card.ID] = input.Card.Clone()

	return &UpdateOutput{Card: input.Card}, nil
}

// Delete removes a card by id.
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[input.ID]; !ok {
		return nil, errors.NotFoundf("card with ID %s not found", input.ID)
	}

	delete(r.cards, input.ID)
	for i, id := range r.order {
		if id == input.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &DeleteOutput{}, nil
}

// List returns every card in insertion order.
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]*dnd5e.InsertInputs, 0, len(r.order))
	for _, id := range r.order {
		if card, ok := r.cards[id]; ok {
			cards = append(cards, card.Clone())
		}
	}

	return &ListOutput{Cards: cards}, nil
}

// Clear removes every card.
func (r *InMemoryRepository) Clear(_ context.Context, _ ClearInput) (*ClearOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.cards)
	r.cards = make(map[string]*dnd5e.InsertInputs)
	r.order = nil

	return &ClearOutput{Removed: removed}, nil
}
