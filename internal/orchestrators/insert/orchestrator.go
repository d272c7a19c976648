// Package insert orchestrates the card list: creation, editing through
// commands, import/export, and preferences. Derived values are computed
// fresh on every read and never written back to storage.
package insert

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmtoolbox/inserts-api/internal/cardio"
	"github.com/dmtoolbox/inserts-api/internal/engine"
	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	"github.com/dmtoolbox/inserts-api/internal/normalize"
	insertsrepo "github.com/dmtoolbox/inserts-api/internal/repositories/inserts"
	preferencesrepo "github.com/dmtoolbox/inserts-api/internal/repositories/preferences"
	"github.com/dmtoolbox/inserts-api/internal/statblock"
)

// Config holds the orchestrator dependencies.
type Config struct {
	CardRepo        insertsrepo.Repository
	PreferencesRepo preferencesrepo.Repository
	// Normalizer defaults to one with the stored-card id generator.
	Normalizer *normalize.Normalizer
}

// Validate ensures required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CardRepo == nil {
		vb.RequiredField("CardRepo")
	}
	if c.PreferencesRepo == nil {
		vb.RequiredField("PreferencesRepo")
	}
	return vb.Build()
}

// Orchestrator implements the card service.
type Orchestrator struct {
	cardRepo   insertsrepo.Repository
	prefsRepo  preferencesrepo.Repository
	normalizer *normalize.Normalizer
}

// New creates a card orchestrator.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	n := cfg.Normalizer
	if n == nil {
		n = normalize.New(nil)
	}

	return &Orchestrator{
		cardRepo:   cfg.CardRepo,
		prefsRepo:  cfg.PreferencesRepo,
		normalizer: n,
	}, nil
}

// CreateCard adds a fresh card built from the full-defaults template.
func (o *Orchestrator) CreateCard(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	raw := map[string]any{}
	if input.CardType != "" {
		raw["cardType"] = string(input.CardType)
	}
	if input.Size != "" {
		raw["size"] = string(input.Size)
	}
	if input.Name != "" {
		raw["name"] = input.Name
	}

	card := o.normalizer.Normalize(raw)

	if _, err := o.cardRepo.Create(ctx, insertsrepo.CreateInput{Card: card}); err != nil {
		return nil, errors.Wrapf(err, "failed to store card")
	}

	slog.InfoContext(ctx, "created card",
		"card_id", card.ID,
		"card_type", card.CardType)

	return &CreateCardOutput{Card: engine.Derive(card)}, nil
}

// GetCard fetches a card and derives its display values.
func (o *Orchestrator) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.cardRepo.Get(ctx, insertsrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetCardOutput{Card: engine.Derive(out.Card)}, nil
}

// ListCards lists cards in insertion order, each with derived values.
func (o *Orchestrator) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	if input == nil {
		input = &ListCardsInput{}
	}

	out, err := o.cardRepo.List(ctx, insertsrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	cards := make([]*dnd5e.Insert, 0, len(out.Cards))
	for _, card := range out.Cards {
		if input.SelectedOnly && !card.Selected {
			continue
		}
		cards = append(cards, engine.Derive(card))
	}

	return &ListCardsOutput{Cards: cards}, nil
}

// UpdateCard applies edit commands to a stored card. Commands are applied
// to a copy; nothing is stored unless every command succeeds.
func (o *Orchestrator) UpdateCard(ctx context.Context, input *UpdateCardInput) (*UpdateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if len(input.Commands) == 0 {
		vb.Field("commands", "at least one command is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.cardRepo.Get(ctx, insertsrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	card := got.Card.Clone()
	for _, cmd := range input.Commands {
		if err := cmd.Apply(card); err != nil {
			return nil, err
		}
	}
	// The id is immutable for the card's lifetime.
	card.ID = got.Card.ID

	if _, err := o.cardRepo.Update(ctx, insertsrepo.UpdateInput{Card: card}); err != nil {
		return nil, errors.Wrapf(err, "failed to store card")
	}

	return &UpdateCardOutput{Card: engine.Derive(card)}, nil
}

// DeleteCard removes a card.
func (o *Orchestrator) DeleteCard(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.cardRepo.Delete(ctx, insertsrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted card", "card_id", input.ID)

	return &DeleteCardOutput{}, nil
}

// ClearCards removes every card.
func (o *Orchestrator) ClearCards(ctx context.Context, _ *ClearCardsInput) (*ClearCardsOutput, error) {
	out, err := o.cardRepo.Clear(ctx, insertsrepo.ClearInput{})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "cleared cards", "removed", out.Removed)

	return &ClearCardsOutput{Removed: out.Removed}, nil
}

// ImportCards reads a JSON file of cards, normalizes each, and adds them to
// the list. Imported ids are kept unless they collide with a stored card,
// in which case the incoming card gets a fresh id rather than failing the
// import.
func (o *Orchestrator) ImportCards(ctx context.Context, input *ImportCardsInput) (*ImportCardsOutput, error) {
	if input == nil || input.Reader == nil {
		return nil, errors.InvalidArgument("reader is required")
	}

	cards, err := cardio.Import(input.Reader, o.normalizer)
	if err != nil {
		return nil, err
	}

	imported := make([]*dnd5e.Insert, 0, len(cards))
	for _, card := range cards {
		_, err := o.cardRepo.Create(ctx, insertsrepo.CreateInput{Card: card})
		if errors.IsAlreadyExists(err) {
			replacement := o.normalizer.Normalize(map[string]any{})
			card.ID = replacement.ID
			_, err = o.cardRepo.Create(ctx, insertsrepo.CreateInput{Card: card})
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to store imported card")
		}
		imported = append(imported, engine.Derive(card))
	}

	slog.InfoContext(ctx, "imported cards", "count", len(imported))

	return &ImportCardsOutput{Cards: imported}, nil
}

// ExportCards writes the card list as compacted JSON.
func (o *Orchestrator) ExportCards(ctx context.Context, input *ExportCardsInput) (*ExportCardsOutput, error) {
	if input == nil || input.Writer == nil {
		return nil, errors.InvalidArgument("writer is required")
	}

	out, err := o.cardRepo.List(ctx, insertsrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	cards := out.Cards
	if input.SelectedOnly {
		selected := make([]*dnd5e.InsertInputs, 0, len(cards))
		for _, card := range cards {
			if card.Selected {
				selected = append(selected, card)
			}
		}
		cards = selected
	}

	if err := cardio.Export(input.Writer, cards); err != nil {
		return nil, err
	}

	return &ExportCardsOutput{Count: len(cards)}, nil
}

// ParseStatBlock scrapes a monster stat block into a card and adds it to
// the list.
func (o *Orchestrator) ParseStatBlock(ctx context.Context, input *ParseStatBlockInput) (*ParseStatBlockOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("stat block text is required")
	}

	card := o.normalizer.Normalize(statblock.Parse(input.Text))

	if _, err := o.cardRepo.Create(ctx, insertsrepo.CreateInput{Card: card}); err != nil {
		return nil, errors.Wrapf(err, "failed to store card")
	}

	slog.InfoContext(ctx, "created card from stat block",
		"card_id", card.ID,
		"name", card.Name)

	return &ParseStatBlockOutput{Card: engine.Derive(card)}, nil
}

// GetPreferences returns the stored preferences, defaulted when absent.
func (o *Orchestrator) GetPreferences(ctx context.Context, _ *GetPreferencesInput) (*GetPreferencesOutput, error) {
	out, err := o.prefsRepo.Get(ctx, preferencesrepo.GetInput{})
	if err != nil {
		return nil, err
	}
	return &GetPreferencesOutput{Preferences: out.Preferences}, nil
}

// SetSkillVisibility toggles one skill row on the printed card.
func (o *Orchestrator) SetSkillVisibility(ctx context.Context, input *SetSkillVisibilityInput) (*SetSkillVisibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	known := false
	for _, name := range dnd5e.SkillNames {
		if name == input.Skill {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}

	got, err := o.prefsRepo.Get(ctx, preferencesrepo.GetInput{})
	if err != nil {
		return nil, err
	}

	prefs := got.Preferences
	prefs.SkillVisibility[input.Skill] = input.Visible

	if _, err := o.prefsRepo.Set(ctx, preferencesrepo.SetInput{Preferences: prefs}); err != nil {
		return nil, err
	}

	return &SetSkillVisibilityOutput{Preferences: prefs}, nil
}
