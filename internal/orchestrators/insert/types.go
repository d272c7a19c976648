package insert

import (
	"io"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// CreateCardInput describes the card to create. An empty card type creates
// the default player template.
type CreateCardInput struct {
	CardType dnd5e.CardType
	Size     dnd5e.Size
	Name     string
}

// CreateCardOutput holds the created card with derived values.
type CreateCardOutput struct {
	Card *dnd5e.Insert
}

// GetCardInput identifies the card to fetch.
type GetCardInput struct {
	ID string
}

// GetCardOutput holds the card with derived values.
type GetCardOutput struct {
	Card *dnd5e.Insert
}

// ListCardsInput filters the listing. SelectedOnly restricts to cards
// marked for printing.
type ListCardsInput struct {
	SelectedOnly bool
}

// ListCardsOutput holds the derived cards in insertion order.
type ListCardsOutput struct {
	Cards []*dnd5e.Insert
}

// UpdateCardInput applies edit commands to a card.
type UpdateCardInput struct {
	ID       string
	Commands []Command
}

// UpdateCardOutput holds the updated card with derived values.
type UpdateCardOutput struct {
	Card *dnd5e.Insert
}

// DeleteCardInput identifies the card to remove.
type DeleteCardInput struct {
	ID string
}

// DeleteCardOutput is empty.
type DeleteCardOutput struct{}

// ClearCardsInput is empty.
type ClearCardsInput struct{}

// ClearCardsOutput reports how many cards were removed.
type ClearCardsOutput struct {
	Removed int
}

// ImportCardsInput supplies the JSON to import.
type ImportCardsInput struct {
	Reader io.Reader
}

// ImportCardsOutput holds the imported cards with derived values.
type ImportCardsOutput struct {
	Cards []*dnd5e.Insert
}

// ExportCardsInput supplies the destination. SelectedOnly restricts the
// export to cards marked for printing.
type ExportCardsInput struct {
	Writer       io.Writer
	SelectedOnly bool
}

// ExportCardsOutput reports how many cards were written.
type ExportCardsOutput struct {
	Count int
}

// ParseStatBlockInput supplies the stat block text.
type ParseStatBlockInput struct {
	Text string
}

// ParseStatBlockOutput holds the created monster card with derived values.
type ParseStatBlockOutput struct {
	Card *dnd5e.Insert
}

// GetPreferencesInput is empty.
type GetPreferencesInput struct{}

// GetPreferencesOutput holds the current preferences.
type GetPreferencesOutput struct {
	Preferences *dnd5e.UserPreferences
}

// SetSkillVisibilityInput toggles a skill row on the printed card.
type SetSkillVisibilityInput struct {
	Skill   dnd5e.SkillName
	Visible bool
}

// SetSkillVisibilityOutput holds the updated preferences.
type SetSkillVisibilityOutput struct {
	Preferences *dnd5e.UserPreferences
}
