// Package dnd5e defines the insert card entities shared across the service.
package dnd5e

// Skill is the stored per-skill state on a card. The displayed bonus is
// derived on every read and never persisted alongside these fields.
type Skill struct {
	Proficiency ProficiencyTier `json:"proficiency"`
	Modifier    int             `json:"modifier"`
}

// InsertInputs is the persisted shape of a single insert card. Every field
// the user can edit lives here; anything derivable from these fields is
// computed by the engine on read and excluded from serialization.
type InsertInputs struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	CardType CardType `json:"cardType"`
	Size     Size     `json:"size"`
	Selected bool     `json:"selected"`

	// Shared fields
	Race  string `json:"race"`
	Class string `json:"class"`
	AC    int    `json:"ac"`

	// Ability scores
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`

	// Player fields. The manual values are only authoritative while the
	// matching override flag is set; otherwise the engine recomputes them.
	Level                    int  `json:"level"`
	ProficiencyBonusOverride bool `json:"proficiencyBonusOverride"`
	MaxHPOverride            bool `json:"maxHPOverride"`
	DarkvisionOverride       bool `json:"darkvisionOverride"`
	ProficiencyBonus         int  `json:"proficiencyBonus"`
	HP                       int  `json:"hp"`
	Darkvision               int  `json:"darkvision"`

	Skills map[SkillName]Skill `json:"skills"`

	// Monster fields
	SkillMode      SkillMode   `json:"skillMode,omitempty"`
	MonsterSize    MonsterSize `json:"monsterSize"`
	MonsterType    string      `json:"monsterType"`
	MonsterTypeTag string      `json:"monsterTypeTag"`
	CR             string      `json:"cr"`
	Speed          string      `json:"speed"`
	ACType         string      `json:"acType"`
	HPFormula      string      `json:"hpFormula"`

	SavingThrowStr *int `json:"savingThrowStr"`
	SavingThrowDex *int `json:"savingThrowDex"`
	SavingThrowCon *int `json:"savingThrowCon"`
	SavingThrowInt *int `json:"savingThrowInt"`
	SavingThrowWis *int `json:"savingThrowWis"`
	SavingThrowCha *int `json:"savingThrowCha"`

	DamageImmunities      []string `json:"damageImmunities"`
	DamageResistances     []string `json:"damageResistances"`
	DamageVulnerabilities []string `json:"damageVulnerabilities"`
	ConditionImmunities   []string `json:"conditionImmunities"`

	Senses    map[string]string `json:"senses"`
	Languages []string          `json:"languages"`

	Traits       string `json:"traits"`
	Actions      string `json:"actions"`
	BonusActions string `json:"bonusActions"`
}

// AbilityScore returns the stored score for the given ability.
func (in *InsertInputs) AbilityScore(ability Ability) int {
	switch ability {
	case AbilityStrength:
		return in.Str
	case AbilityDexterity:
		return in.Dex
	case AbilityConstitution:
		return in.Con
	case AbilityIntelligence:
		return in.Int
	case AbilityWisdom:
		return in.Wis
	case AbilityCharisma:
		return in.Cha
	default:
		return 0
	}
}

// SetAbilityScore stores the score for the given ability. Unknown ability
// names are ignored.
func (in *InsertInputs) SetAbilityScore(ability Ability, score int) {
	switch ability {
	case AbilityStrength:
		in.Str = score
	case AbilityDexterity:
		in.Dex = score
	case AbilityConstitution:
		in.Con = score
	case AbilityIntelligence:
		in.Int = score
	case AbilityWisdom:
		in.Wis = score
	case AbilityCharisma:
		in.Cha = score
	}
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored record.
func (in *InsertInputs) Clone() *InsertInputs {
	if in == nil {
		return nil
	}
	out := *in

	if in.Skills != nil {
		out.Skills = make(map[SkillName]Skill, len(in.Skills))
		for name, skill := range in.Skills {
			out.Skills[name] = skill
		}
	}
	if in.Senses != nil {
		out.Senses = make(map[string]string, len(in.Senses))
		for name, rng := range in.Senses {
			out.Senses[name] = rng
		}
	}
	out.DamageImmunities = cloneStrings(in.DamageImmunities)
	out.DamageResistances = cloneStrings(in.DamageResistances)
	out.DamageVulnerabilities = cloneStrings(in.DamageVulnerabilities)
	out.ConditionImmunities = cloneStrings(in.ConditionImmunities)
	out.Languages = cloneStrings(in.Languages)

	out.SavingThrowStr = cloneInt(in.SavingThrowStr)
	out.SavingThrowDex = cloneInt(in.SavingThrowDex)
	out.SavingThrowCon = cloneInt(in.SavingThrowCon)
	out.SavingThrowInt = cloneInt(in.SavingThrowInt)
	out.SavingThrowWis = cloneInt(in.SavingThrowWis)
	out.SavingThrowCha = cloneInt(in.SavingThrowCha)

	return &out
}

// Insert is a card with its derived values filled in. It is produced by the
// engine on every read and is never the source of truth: SkillValues and the
// recomputed proficiency bonus / HP / darkvision live only for one render.
type Insert struct {
	InsertInputs

	// SkillValues holds the final per-skill number. For players and
	// calculated-mode monsters this is the raw skill bonus; display layers
	// add 10 for passive presentation. Never serialized.
	SkillValues map[SkillName]int `json:"-"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneInt(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
