package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/normalize"
	"github.com/dmtoolbox/inserts-api/internal/pkg/idgen"
)

func newTestNormalizer() *normalize.Normalizer {
	return normalize.New(&normalize.Config{
		IDGen: idgen.NewSequential("card"),
	})
}

func TestNormalizeEmptyObject(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{})

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, dnd5e.CardTypePlayer, card.CardType)
	assert.Equal(t, dnd5e.SizeSmall, card.Size)
	assert.True(t, card.Selected)
	assert.Equal(t, "Human", card.Race)
	assert.Equal(t, "Fighter", card.Class)
	assert.Equal(t, 1, card.Level)
	assert.Equal(t, 2, card.ProficiencyBonus)
	assert.Equal(t, 10, card.Str)
	assert.Equal(t, 10, card.Dex)
	assert.Equal(t, 10, card.Con)
	assert.Equal(t, 10, card.Int)
	assert.Equal(t, 10, card.Wis)
	assert.Equal(t, 10, card.Cha)
	assert.Equal(t, dnd5e.MonsterSizeMedium, card.MonsterSize)
	assert.Len(t, card.Skills, 18)
	assert.NotNil(t, card.Senses)
	assert.Empty(t, card.Senses)
	assert.NotNil(t, card.Languages)
	assert.Empty(t, card.Languages)
	assert.Nil(t, card.SavingThrowStr)
}

func TestNormalizeNilMatchesEmpty(t *testing.T) {
	n := newTestNormalizer()
	fromNil := n.Normalize(nil)
	fromEmpty := n.Normalize(map[string]any{})

	// The generated ids differ; everything else matches.
	fromNil.ID = fromEmpty.ID
	assert.Equal(t, fromEmpty, fromNil)
}

func TestNormalizeNonObjectInput(t *testing.T) {
	n := newTestNormalizer()
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize("garbage").CardType)
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize(42).CardType)
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize([]any{"a"}).CardType)
}

func TestNormalizeKeepsID(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{"id": "existing-1"})
	assert.Equal(t, "existing-1", card.ID)
}

func TestNormalizeCardType(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, dnd5e.CardTypeMonster, n.Normalize(map[string]any{"cardType": "monster"}).CardType)
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize(map[string]any{"cardType": "player"}).CardType)

	// Anything but the exact monster spelling is a player.
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize(map[string]any{"cardType": "Monster"}).CardType)
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize(map[string]any{"cardType": "npc"}).CardType)
	assert.Equal(t, dnd5e.CardTypePlayer, n.Normalize(map[string]any{"cardType": 7}).CardType)
}

func TestNormalizeSize(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, dnd5e.SizeLarge, n.Normalize(map[string]any{"size": "large"}).Size)
	assert.Equal(t, dnd5e.SizeSmall, n.Normalize(map[string]any{"size": "Large"}).Size)
	assert.Equal(t, dnd5e.SizeSmall, n.Normalize(map[string]any{"size": "huge"}).Size)
}

func TestNormalizeSkillMode(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, dnd5e.SkillModeManual, n.Normalize(map[string]any{"skillMode": "manual"}).SkillMode)
	assert.Equal(t, dnd5e.SkillModeCalculated, n.Normalize(map[string]any{"skillMode": "calculated"}).SkillMode)
	assert.Equal(t, dnd5e.SkillModeUnset, n.Normalize(map[string]any{"skillMode": "auto"}).SkillMode)
	assert.Equal(t, dnd5e.SkillModeUnset, n.Normalize(map[string]any{}).SkillMode)
}

func TestNormalizeNumericCoercion(t *testing.T) {
	n := newTestNormalizer()

	card := n.Normalize(map[string]any{
		"str":   float64(18),
		"dex":   "14",
		"con":   " 12 ",
		"level": 5,
		"hp":    int64(44),
	})
	assert.Equal(t, 18, card.Str)
	assert.Equal(t, 14, card.Dex)
	assert.Equal(t, 12, card.Con)
	assert.Equal(t, 5, card.Level)
	assert.Equal(t, 44, card.HP)

	// Unparseable values fall back to the field default.
	card = n.Normalize(map[string]any{"str": "lots", "level": true})
	assert.Equal(t, 10, card.Str)
	assert.Equal(t, 1, card.Level)
}

func TestNormalizeSavingThrows(t *testing.T) {
	n := newTestNormalizer()

	card := n.Normalize(map[string]any{
		"savingThrowStr": float64(7),
		"savingThrowDex": nil,
		"savingThrowCon": "oops",
	})
	require.NotNil(t, card.SavingThrowStr)
	assert.Equal(t, 7, *card.SavingThrowStr)
	assert.Nil(t, card.SavingThrowDex)
	assert.Nil(t, card.SavingThrowCon)
	assert.Nil(t, card.SavingThrowWis)
}

func TestNormalizeStructuredSkills(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{
		"skills": map[string]any{
			"stealth":    map[string]any{"proficiency": "expert", "modifier": float64(2)},
			"perception": map[string]any{"proficiency": "proficient"},
			"arcana":     "not an object",
		},
	})

	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyExpert, Modifier: 2}, card.Skills[dnd5e.SkillStealth])
	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyProficient}, card.Skills[dnd5e.SkillPerception])
	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyNone}, card.Skills[dnd5e.SkillArcana])
	assert.Len(t, card.Skills, 18)
}

func TestNormalizeLegacySkillFields(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{
		"profPerception": "proficient",
		"modPerception":  float64(1),
		"modStealth":     float64(3),
	})

	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyProficient, Modifier: 1}, card.Skills[dnd5e.SkillPerception])
	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyNone, Modifier: 3}, card.Skills[dnd5e.SkillStealth])
}

func TestNormalizeStructuredSkillsWinOverLegacy(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{
		"profStealth": "expert",
		"skills": map[string]any{
			"stealth": map[string]any{"proficiency": "half", "modifier": float64(0)},
		},
	})

	assert.Equal(t, dnd5e.Skill{Proficiency: dnd5e.ProficiencyHalf}, card.Skills[dnd5e.SkillStealth])
}

func TestNormalizeDarkvisionMigration(t *testing.T) {
	n := newTestNormalizer()

	card := n.Normalize(map[string]any{"darkvision": float64(60)})
	assert.Equal(t, 60, card.Darkvision)
	assert.Equal(t, "60 ft.", card.Senses["darkvision"])

	// An existing senses entry wins over the numeric field.
	card = n.Normalize(map[string]any{
		"darkvision": float64(60),
		"senses":     map[string]any{"darkvision": "120 ft."},
	})
	assert.Equal(t, "120 ft.", card.Senses["darkvision"])

	card = n.Normalize(map[string]any{"darkvision": float64(0)})
	_, ok := card.Senses["darkvision"]
	assert.False(t, ok)
}

func TestNormalizeLanguages(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, []string{"Common", "Elvish"},
		n.Normalize(map[string]any{"languages": []any{"Common", "Elvish"}}).Languages)
	assert.Equal(t, []string{"Common", "Draconic"},
		n.Normalize(map[string]any{"languages": "Common, Draconic"}).Languages)
	assert.Equal(t, []string{"Abyssal", "telepathy 120 ft."},
		n.Normalize(map[string]any{"languages": "Abyssal; telepathy 120 ft."}).Languages)
	assert.Empty(t, n.Normalize(map[string]any{"languages": "—"}).Languages)
	assert.Empty(t, n.Normalize(map[string]any{"languages": "none"}).Languages)
	assert.Empty(t, n.Normalize(map[string]any{"languages": float64(3)}).Languages)
}

func TestNormalizeArrayFields(t *testing.T) {
	card := newTestNormalizer().Normalize(map[string]any{
		"damageImmunities":    []any{"fire", "poison"},
		"conditionImmunities": "charmed, frightened",
	})

	assert.Equal(t, []string{"fire", "poison"}, card.DamageImmunities)
	assert.Empty(t, card.ConditionImmunities, "strings are not accepted for list fields")
}

func TestNormalizeJSON(t *testing.T) {
	n := newTestNormalizer()

	card, err := n.NormalizeJSON([]byte(`{"name":"Bruenor","cardType":"monster"}`))
	require.NoError(t, err)
	assert.Equal(t, "Bruenor", card.Name)
	assert.Equal(t, dnd5e.CardTypeMonster, card.CardType)

	_, err = n.NormalizeJSON([]byte(`{broken`))
	assert.Error(t, err)
}
