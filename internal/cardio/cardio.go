// Package cardio reads and writes card JSON files. Imports are untrusted:
// every element is routed through the normalizer, so missing fields and
// legacy formats come out as complete records. Exports are compacted —
// fields still at their defaults are dropped so files stay hand-editable.
package cardio

import (
	"encoding/json"
	"io"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	"github.com/dmtoolbox/inserts-api/internal/normalize"
)

// Import decodes a JSON file holding either a single card object or an
// array of them. Elements that are not card-shaped (no cardType key) are
// skipped; a file yielding no cards at all is an error.
func Import(r io.Reader, n *normalize.Normalizer) ([]*dnd5e.InsertInputs, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse JSON")
	}

	var elements []any
	switch v := raw.(type) {
	case []any:
		elements = v
	case map[string]any:
		elements = []any{v}
	default:
		return nil, errors.InvalidArgument("expected a card object or an array of cards")
	}

	cards := make([]*dnd5e.InsertInputs, 0, len(elements))
	for _, element := range elements {
		obj, ok := element.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := obj["cardType"]; !ok {
			continue
		}
		cards = append(cards, n.Normalize(obj))
	}

	if len(cards) == 0 {
		return nil, errors.InvalidArgument("no valid cards found in JSON")
	}

	return cards, nil
}

// Export writes cards as indented JSON, compacting each card first.
func Export(w io.Writer, cards []*dnd5e.InsertInputs) error {
	compacted := make([]map[string]any, 0, len(cards))
	for _, card := range cards {
		obj, err := compact(card)
		if err != nil {
			return err
		}
		compacted = append(compacted, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(compacted); err != nil {
		return errors.Wrapf(err, "failed to write cards")
	}
	return nil
}

// essentialFields are always exported even when empty.
var essentialFields = map[string]bool{
	"id":       true,
	"name":     true,
	"cardType": true,
}

var abilityFields = []string{"str", "dex", "con", "int", "wis", "cha"}

var savingThrowFields = []string{
	"savingThrowStr",
	"savingThrowDex",
	"savingThrowCon",
	"savingThrowInt",
	"savingThrowWis",
	"savingThrowCha",
}

var listFields = []string{
	"damageImmunities",
	"damageResistances",
	"damageVulnerabilities",
	"conditionImmunities",
	"languages",
}

// compact renders a card as a map with default-valued fields removed. The
// result re-imports identically because the normalizer restores every
// dropped default.
func compact(card *dnd5e.InsertInputs) (map[string]any, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal card")
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrapf(err, "failed to round-trip card")
	}

	for key, value := range obj {
		if value == "" && !essentialFields[key] {
			delete(obj, key)
		}
	}

	for _, key := range listFields {
		if items, ok := obj[key].([]any); ok && len(items) == 0 {
			delete(obj, key)
		}
	}
	if senses, ok := obj["senses"].(map[string]any); ok && len(senses) == 0 {
		delete(obj, "senses")
	}

	for _, key := range savingThrowFields {
		if obj[key] == nil {
			delete(obj, key)
		}
	}

	allDefaultAbilities := true
	for _, key := range abilityFields {
		if n, ok := obj[key].(float64); !ok || n != 10 {
			allDefaultAbilities = false
			break
		}
	}
	if allDefaultAbilities {
		for _, key := range abilityFields {
			delete(obj, key)
		}
	}

	compactSkills(obj, card)

	if card.CardType == dnd5e.CardTypePlayer {
		delete(obj, "monsterSize")
		delete(obj, "monsterType")
		delete(obj, "monsterTypeTag")
		delete(obj, "cr")
		delete(obj, "hpFormula")

		if card.Level == 1 {
			delete(obj, "level")
		}
		if card.ProficiencyBonus == 2 {
			delete(obj, "proficiencyBonus")
		}
		if card.AC == 0 {
			delete(obj, "ac")
		}
		if card.HP == 0 {
			delete(obj, "hp")
		}
	} else {
		delete(obj, "level")
		delete(obj, "race")
		delete(obj, "class")
		delete(obj, "proficiencyBonusOverride")
		delete(obj, "maxHPOverride")
	}

	if card.Selected {
		delete(obj, "selected")
	}
	if card.Size == dnd5e.SizeSmall {
		delete(obj, "size")
	}

	return obj, nil
}

// compactSkills keeps only skills that differ from the defaults, dropping
// the map entirely when none do.
func compactSkills(obj map[string]any, card *dnd5e.InsertInputs) {
	kept := make(map[string]any)
	for name, skill := range card.Skills {
		if skill.Proficiency != dnd5e.ProficiencyNone || skill.Modifier != 0 {
			kept[string(name)] = map[string]any{
				"proficiency": string(skill.Proficiency),
				"modifier":    skill.Modifier,
			}
		}
	}

	if len(kept) == 0 {
		delete(obj, "skills")
		return
	}
	obj["skills"] = kept
}
