// Package normalize turns untrusted, possibly-partial card data — storage
// reads, JSON imports, stat-block parses — into fully-populated
// InsertInputs records. Normalization is total: any input, including nil,
// produces a valid record with every field defaulted.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	"github.com/dmtoolbox/inserts-api/internal/pkg/idgen"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

// Field defaults. Ability scores default to the flat-array baseline; race
// and class default to the most common picks, which carry no mechanical
// weight beyond making a fresh card render sensibly.
const (
	defaultRace             = "Human"
	defaultClass            = "Fighter"
	defaultAbilityScore     = 10
	defaultLevel            = 1
	defaultProficiencyBonus = 2
	defaultMonsterType      = "Humanoid"
)

// Normalizer builds complete card records from raw data.
type Normalizer struct {
	idGen idgen.Generator
}

// Config holds the Normalizer dependencies.
type Config struct {
	// IDGen supplies ids for records that arrive without one. Defaults to
	// the stored-card timestamp-random generator.
	IDGen idgen.Generator
}

// New creates a Normalizer.
func New(cfg *Config) *Normalizer {
	if cfg == nil {
		cfg = &Config{}
	}
	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewInsert()
	}
	return &Normalizer{idGen: gen}
}

// Normalize produces a complete record from raw card data, typically a
// map[string]any decoded from JSON. Every field is defaulted independently;
// nil and non-object input yield a fresh player template. Generating an id
// for a record that lacks one is the only side effect.
func (n *Normalizer) Normalize(raw any) *dnd5e.InsertInputs {
	obj, _ := raw.(map[string]any)
	if obj == nil {
		obj = map[string]any{}
	}

	out := &dnd5e.InsertInputs{
		ID:       stringField(obj, "id", ""),
		Name:     stringField(obj, "name", ""),
		Image:    stringField(obj, "image", ""),
		Selected: boolField(obj, "selected", true),

		Race:  stringField(obj, "race", defaultRace),
		Class: stringField(obj, "class", defaultClass),
		AC:    intField(obj, "ac", 0),

		Str: intField(obj, "str", defaultAbilityScore),
		Dex: intField(obj, "dex", defaultAbilityScore),
		Con: intField(obj, "con", defaultAbilityScore),
		Int: intField(obj, "int", defaultAbilityScore),
		Wis: intField(obj, "wis", defaultAbilityScore),
		Cha: intField(obj, "cha", defaultAbilityScore),

		Level:                    intField(obj, "level", defaultLevel),
		ProficiencyBonusOverride: boolField(obj, "proficiencyBonusOverride", false),
		MaxHPOverride:            boolField(obj, "maxHPOverride", false),
		DarkvisionOverride:       boolField(obj, "darkvisionOverride", false),
		ProficiencyBonus:         intField(obj, "proficiencyBonus", defaultProficiencyBonus),
		HP:                       intField(obj, "hp", 0),
		Darkvision:               intField(obj, "darkvision", 0),

		MonsterType:    stringField(obj, "monsterType", defaultMonsterType),
		MonsterTypeTag: stringField(obj, "monsterTypeTag", ""),
		CR:             stringField(obj, "cr", ""),
		Speed:          stringField(obj, "speed", ""),
		ACType:         stringField(obj, "acType", ""),
		HPFormula:      stringField(obj, "hpFormula", ""),

		SavingThrowStr: optionalIntField(obj, "savingThrowStr"),
		SavingThrowDex: optionalIntField(obj, "savingThrowDex"),
		SavingThrowCon: optionalIntField(obj, "savingThrowCon"),
		SavingThrowInt: optionalIntField(obj, "savingThrowInt"),
		SavingThrowWis: optionalIntField(obj, "savingThrowWis"),
		SavingThrowCha: optionalIntField(obj, "savingThrowCha"),

		DamageImmunities:      arrayField(obj, "damageImmunities"),
		DamageResistances:     arrayField(obj, "damageResistances"),
		DamageVulnerabilities: arrayField(obj, "damageVulnerabilities"),
		ConditionImmunities:   arrayField(obj, "conditionImmunities"),

		Traits:       stringField(obj, "traits", ""),
		Actions:      stringField(obj, "actions", ""),
		BonusActions: stringField(obj, "bonusActions", ""),
	}

	if out.ID == "" {
		out.ID = n.idGen.Generate()
	}

	if cardType, _ := obj["cardType"].(string); cardType == string(dnd5e.CardTypeMonster) {
		out.CardType = dnd5e.CardTypeMonster
	} else {
		out.CardType = dnd5e.CardTypePlayer
	}

	if size, _ := obj["size"].(string); size == string(dnd5e.SizeLarge) {
		out.Size = dnd5e.SizeLarge
	} else {
		out.Size = dnd5e.SizeSmall
	}

	if mode, _ := obj["skillMode"].(string); mode == string(dnd5e.SkillModeManual) ||
		mode == string(dnd5e.SkillModeCalculated) {
		out.SkillMode = dnd5e.SkillMode(mode)
	}

	if size := stringField(obj, "monsterSize", ""); size != "" {
		out.MonsterSize = dnd5e.MonsterSize(size)
	} else {
		out.MonsterSize = dnd5e.MonsterSizeMedium
	}

	out.Skills = normalizeSkills(obj)

	// Senses accept either a structured map or legacy free text; a passive
	// Perception clause becomes a perception modifier override instead of
	// a sense entry.
	senses, passivePerception := normalizeSenses(obj["senses"])
	out.Senses = senses
	if passivePerception != nil {
		perception := out.Skills[dnd5e.SkillPerception]
		perception.Modifier = *passivePerception - 10
		out.Skills[dnd5e.SkillPerception] = perception
	}

	// Older records kept darkvision only as a number; surface it in the
	// senses map so monster stat blocks keep printing it.
	if out.Darkvision > 0 {
		if _, ok := out.Senses["darkvision"]; !ok {
			out.Senses["darkvision"] = strconv.Itoa(out.Darkvision) + " ft."
		}
	}

	out.Languages = normalizeLanguages(obj["languages"])

	return out
}

// NormalizeJSON decodes a single JSON object and normalizes it. The error
// covers malformed JSON only; any well-formed value normalizes.
func (n *Normalizer) NormalizeJSON(data []byte) (*dnd5e.InsertInputs, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed card JSON")
	}
	return n.Normalize(raw), nil
}

// normalizeSkills builds the complete 18-key skills map: defaults first,
// then any legacy flat prof<Skill>/mod<Skill> fields, then the structured
// skills object, later layers winning per key. A skills value that is not
// an object is discarded entirely.
func normalizeSkills(obj map[string]any) map[dnd5e.SkillName]dnd5e.Skill {
	skills := rules.DefaultSkills()

	applyLegacySkillFields(obj, skills)

	rawSkills, _ := obj["skills"].(map[string]any)
	for _, name := range dnd5e.SkillNames {
		entry, ok := rawSkills[string(name)].(map[string]any)
		if !ok {
			continue
		}
		skills[name] = dnd5e.Skill{
			Proficiency: tierValue(entry["proficiency"]),
			Modifier:    intValue(entry["modifier"], 0),
		}
	}

	return skills
}

// normalizeLanguages accepts an array or a comma/semicolon separated
// string. The placeholder spellings of "no languages" normalize to an
// empty list.
func normalizeLanguages(raw any) []string {
	switch v := raw.(type) {
	case []any:
		return stringSlice(v)
	case string:
		trimmed := strings.TrimSpace(v)
		switch {
		case trimmed == "", trimmed == "—", trimmed == "-",
			strings.EqualFold(trimmed, "none"):
			return []string{}
		}
		return splitList(trimmed)
	default:
		return []string{}
	}
}

// arrayField accepts only actual arrays for the damage/condition list
// fields. Comma-separated strings from older formats are an edit-path
// concern, not a normalization one, and drop to empty here.
func arrayField(obj map[string]any, key string) []string {
	items, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}
	return stringSlice(items)
}

func stringSlice(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// splitList splits on commas and semicolons, trimming and dropping empty
// segments.
func splitList(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func stringField(obj map[string]any, key, def string) string {
	if s, ok := obj[key].(string); ok && s != "" {
		return s
	}
	return def
}

func boolField(obj map[string]any, key string, def bool) bool {
	if b, ok := obj[key].(bool); ok {
		return b
	}
	return def
}

func intField(obj map[string]any, key string, def int) int {
	return intValue(obj[key], def)
}

func optionalIntField(obj map[string]any, key string) *int {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil
	}
	if n, ok := numericValue(v); ok {
		return &n
	}
	return nil
}

// intValue coerces finite numbers and numeric strings, falling back to the
// field default for anything else.
func intValue(v any, def int) int {
	if n, ok := numericValue(v); ok {
		return n
	}
	return def
}

func numericValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

func tierValue(v any) dnd5e.ProficiencyTier {
	s, _ := v.(string)
	switch tier := dnd5e.ProficiencyTier(s); tier {
	case dnd5e.ProficiencyHalf, dnd5e.ProficiencyProficient, dnd5e.ProficiencyExpert:
		return tier
	default:
		return dnd5e.ProficiencyNone
	}
}
