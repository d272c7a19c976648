package insert

import (
	"strconv"
	"strings"

	"github.com/dmtoolbox/inserts-api/internal/engine"
	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
)

// Command is one edit to a card. Each logical field group gets its own
// variant, so coercion and splitting rules live with the command type
// instead of behind field-name string matching.
type Command interface {
	// Apply mutates the card in place. Returns errors.InvalidArgument for
	// unknown fields.
	Apply(card *dnd5e.InsertInputs) error
}

// TextField names a free-text field a SetText command may target.
type TextField string

// Text fields
const (
	TextName           TextField = "name"
	TextImage          TextField = "image"
	TextRace           TextField = "race"
	TextClass          TextField = "class"
	TextCR             TextField = "cr"
	TextSpeed          TextField = "speed"
	TextACType         TextField = "acType"
	TextHPFormula      TextField = "hpFormula"
	TextMonsterType    TextField = "monsterType"
	TextMonsterTypeTag TextField = "monsterTypeTag"
	TextTraits         TextField = "traits"
	TextActions        TextField = "actions"
	TextBonusActions   TextField = "bonusActions"
)

// SetText writes a free-text field.
type SetText struct {
	Field TextField
	Value string
}

// Apply implements Command.
func (c SetText) Apply(card *dnd5e.InsertInputs) error {
	switch c.Field {
	case TextName:
		card.Name = c.Value
	case TextImage:
		card.Image = c.Value
	case TextRace:
		card.Race = c.Value
	case TextClass:
		card.Class = c.Value
	case TextCR:
		card.CR = c.Value
	case TextSpeed:
		card.Speed = c.Value
	case TextACType:
		card.ACType = c.Value
	case TextHPFormula:
		card.HPFormula = c.Value
	case TextMonsterType:
		card.MonsterType = c.Value
	case TextMonsterTypeTag:
		card.MonsterTypeTag = c.Value
	case TextTraits:
		card.Traits = c.Value
	case TextActions:
		card.Actions = c.Value
	case TextBonusActions:
		card.BonusActions = c.Value
	default:
		return errors.InvalidArgumentf("unknown text field %q", c.Field)
	}
	return nil
}

// NumberField names a numeric field a SetNumber command may target.
type NumberField string

// Number fields
const (
	NumberAC               NumberField = "ac"
	NumberHP               NumberField = "hp"
	NumberLevel            NumberField = "level"
	NumberProficiencyBonus NumberField = "proficiencyBonus"
	NumberDarkvision       NumberField = "darkvision"
)

// SetNumber writes a numeric field.
type SetNumber struct {
	Field NumberField
	Value int
}

// Apply implements Command.
func (c SetNumber) Apply(card *dnd5e.InsertInputs) error {
	switch c.Field {
	case NumberAC:
		card.AC = c.Value
	case NumberHP:
		card.HP = c.Value
	case NumberLevel:
		card.Level = c.Value
	case NumberProficiencyBonus:
		card.ProficiencyBonus = c.Value
	case NumberDarkvision:
		card.Darkvision = c.Value
	default:
		return errors.InvalidArgumentf("unknown number field %q", c.Field)
	}
	return nil
}

// SetAbility writes one ability score.
type SetAbility struct {
	Ability dnd5e.Ability
	Score   int
}

// Apply implements Command.
func (c SetAbility) Apply(card *dnd5e.InsertInputs) error {
	switch c.Ability {
	case dnd5e.AbilityStrength, dnd5e.AbilityDexterity, dnd5e.AbilityConstitution,
		dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom, dnd5e.AbilityCharisma:
		card.SetAbilityScore(c.Ability, c.Score)
		return nil
	default:
		return errors.InvalidArgumentf("unknown ability %q", c.Ability)
	}
}

// SetSkill writes one skill's proficiency tier and manual modifier.
type SetSkill struct {
	Skill       dnd5e.SkillName
	Proficiency dnd5e.ProficiencyTier
	Modifier    int
}

// Apply implements Command.
func (c SetSkill) Apply(card *dnd5e.InsertInputs) error {
	if _, ok := card.Skills[c.Skill]; !ok {
		return errors.InvalidArgumentf("unknown skill %q", c.Skill)
	}
	switch c.Proficiency {
	case dnd5e.ProficiencyNone, dnd5e.ProficiencyHalf,
		dnd5e.ProficiencyProficient, dnd5e.ProficiencyExpert:
	default:
		return errors.InvalidArgumentf("unknown proficiency tier %q", c.Proficiency)
	}
	card.Skills[c.Skill] = dnd5e.Skill{Proficiency: c.Proficiency, Modifier: c.Modifier}
	return nil
}

// OverrideField names one of the player auto-calculation override flags.
type OverrideField string

// Override flags
const (
	OverrideProficiencyBonus OverrideField = "proficiencyBonus"
	OverrideMaxHP            OverrideField = "maxHP"
	OverrideDarkvision       OverrideField = "darkvision"
)

// SetOverride toggles a player override flag. While enabled, the matching
// stored manual value is displayed instead of the auto-calculated one.
type SetOverride struct {
	Field   OverrideField
	Enabled bool
}

// Apply implements Command.
func (c SetOverride) Apply(card *dnd5e.InsertInputs) error {
	switch c.Field {
	case OverrideProficiencyBonus:
		card.ProficiencyBonusOverride = c.Enabled
	case OverrideMaxHP:
		card.MaxHPOverride = c.Enabled
	case OverrideDarkvision:
		card.DarkvisionOverride = c.Enabled
	default:
		return errors.InvalidArgumentf("unknown override flag %q", c.Field)
	}
	return nil
}

// ListField names one of the damage/condition string-array fields.
type ListField string

// List fields
const (
	ListDamageImmunities      ListField = "damageImmunities"
	ListDamageResistances     ListField = "damageResistances"
	ListDamageVulnerabilities ListField = "damageVulnerabilities"
	ListConditionImmunities   ListField = "conditionImmunities"
	ListLanguages             ListField = "languages"
)

// SetList replaces a string-array field.
type SetList struct {
	Field  ListField
	Values []string
}

// Apply implements Command.
func (c SetList) Apply(card *dnd5e.InsertInputs) error {
	values := c.Values
	if values == nil {
		values = []string{}
	}
	return writeList(card, c.Field, values)
}

// SetListFromText replaces a string-array field from comma/semicolon
// separated text. Splitting lives here, on the edit path — the normalizer
// deliberately refuses to split these fields.
type SetListFromText struct {
	Field ListField
	Text  string
}

// Apply implements Command.
func (c SetListFromText) Apply(card *dnd5e.InsertInputs) error {
	parts := strings.FieldsFunc(c.Text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return writeList(card, c.Field, values)
}

func writeList(card *dnd5e.InsertInputs, field ListField, values []string) error {
	switch field {
	case ListDamageImmunities:
		card.DamageImmunities = values
	case ListDamageResistances:
		card.DamageResistances = values
	case ListDamageVulnerabilities:
		card.DamageVulnerabilities = values
	case ListConditionImmunities:
		card.ConditionImmunities = values
	case ListLanguages:
		card.Languages = values
	default:
		return errors.InvalidArgumentf("unknown list field %q", field)
	}
	return nil
}

// SetSense writes one sense range in feet; zero removes the sense.
type SetSense struct {
	Name      string
	RangeFeet int
}

// Apply implements Command.
func (c SetSense) Apply(card *dnd5e.InsertInputs) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.InvalidArgument("sense name cannot be empty")
	}
	if card.Senses == nil {
		card.Senses = map[string]string{}
	}
	if c.RangeFeet <= 0 {
		delete(card.Senses, c.Name)
		return nil
	}
	card.Senses[c.Name] = formatFeet(c.RangeFeet)
	return nil
}

// SetSavingThrow writes one saving throw bonus; nil clears it.
type SetSavingThrow struct {
	Ability dnd5e.Ability
	Bonus   *int
}

// Apply implements Command.
func (c SetSavingThrow) Apply(card *dnd5e.InsertInputs) error {
	switch c.Ability {
	case dnd5e.AbilityStrength:
		card.SavingThrowStr = c.Bonus
	case dnd5e.AbilityDexterity:
		card.SavingThrowDex = c.Bonus
	case dnd5e.AbilityConstitution:
		card.SavingThrowCon = c.Bonus
	case dnd5e.AbilityIntelligence:
		card.SavingThrowInt = c.Bonus
	case dnd5e.AbilityWisdom:
		card.SavingThrowWis = c.Bonus
	case dnd5e.AbilityCharisma:
		card.SavingThrowCha = c.Bonus
	default:
		return errors.InvalidArgumentf("unknown ability %q", c.Ability)
	}
	return nil
}

// SetSelected toggles print inclusion.
type SetSelected struct {
	Value bool
}

// Apply implements Command.
func (c SetSelected) Apply(card *dnd5e.InsertInputs) error {
	card.Selected = c.Value
	return nil
}

// SetSize switches the printed card size.
type SetSize struct {
	Value dnd5e.Size
}

// Apply implements Command.
func (c SetSize) Apply(card *dnd5e.InsertInputs) error {
	switch c.Value {
	case dnd5e.SizeSmall, dnd5e.SizeLarge:
		card.Size = c.Value
		return nil
	default:
		return errors.InvalidArgumentf("unknown size %q", c.Value)
	}
}

// SetMonsterSize switches a monster's size category.
type SetMonsterSize struct {
	Value dnd5e.MonsterSize
}

// Apply implements Command.
func (c SetMonsterSize) Apply(card *dnd5e.InsertInputs) error {
	for _, valid := range dnd5e.MonsterSizes {
		if c.Value == valid {
			card.MonsterSize = c.Value
			return nil
		}
	}
	return errors.InvalidArgumentf("unknown monster size %q", c.Value)
}

// SetSkillMode pins how a monster's skill values are produced; empty
// returns to inference.
type SetSkillMode struct {
	Value dnd5e.SkillMode
}

// Apply implements Command.
func (c SetSkillMode) Apply(card *dnd5e.InsertInputs) error {
	switch c.Value {
	case "", dnd5e.SkillModeManual, dnd5e.SkillModeCalculated:
		card.SkillMode = c.Value
		return nil
	default:
		return errors.InvalidArgumentf("unknown skill mode %q", c.Value)
	}
}

// SetHitDice fills a monster's HP and formula from a hit-dice count.
type SetHitDice struct {
	Count int
}

// Apply implements Command.
func (c SetHitDice) Apply(card *dnd5e.InsertInputs) error {
	engine.ApplyHitDice(card, c.Count)
	return nil
}

func formatFeet(feet int) string {
	return strconv.Itoa(feet) + " ft."
}
