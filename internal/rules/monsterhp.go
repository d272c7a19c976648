package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
)

// hitDieBySize maps a monster size category to its hit die size.
var hitDieBySize = map[dnd5e.MonsterSize]int{
	dnd5e.MonsterSizeTiny:       4,
	dnd5e.MonsterSizeSmall:      6,
	dnd5e.MonsterSizeMedium:     8,
	dnd5e.MonsterSizeLarge:      10,
	dnd5e.MonsterSizeHuge:       12,
	dnd5e.MonsterSizeGargantuan: 20,
}

// hitDicePattern matches the leading dice count of a formula like
// "33d20 + 330", tolerating surrounding whitespace.
var hitDicePattern = regexp.MustCompile(`^\s*(\d+)d\d+`)

// HitDieForMonsterSize returns the hit die size for a monster size
// category. Unknown sizes get a d8.
func HitDieForMonsterSize(size dnd5e.MonsterSize) int {
	if die, ok := hitDieBySize[size]; ok {
		return die
	}
	return 8
}

// EstimateMonsterHP computes average hit points from a hit-dice pool:
// floor(numDice * averageRoll) + numDice * conModifier, where the average
// roll of a die is size/2 + 0.5. The floor is applied once after summing
// the dice, not per die. Non-positive dice counts yield 0.
func EstimateMonsterHP(numDice, dieSize, conModifier int) int {
	if numDice <= 0 {
		return 0
	}

	// numDice * (dieSize/2 + 0.5) == numDice * (dieSize+1) / 2, floored.
	base := numDice * (dieSize + 1) / 2
	return base + numDice*conModifier
}

// HPFormula renders the dice formula for a hit-dice pool, e.g. "33d20 + 330"
// or "5d6 - 5". The modifier term is omitted when the total CON contribution
// is zero. Non-positive dice counts yield an empty string.
func HPFormula(numDice, dieSize, conModifier int) string {
	if numDice <= 0 {
		return ""
	}

	total := numDice * conModifier
	switch {
	case total > 0:
		return fmt.Sprintf("%dd%d + %d", numDice, dieSize, total)
	case total < 0:
		return fmt.Sprintf("%dd%d - %d", numDice, dieSize, -total)
	default:
		return fmt.Sprintf("%dd%d", numDice, dieSize)
	}
}

// ParseHitDiceCount recovers the dice count from a formula produced by
// HPFormula or typed by hand. Returns 0 when the string does not start with
// an NdM term.
func ParseHitDiceCount(formula string) int {
	match := hitDicePattern.FindStringSubmatch(formula)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}
