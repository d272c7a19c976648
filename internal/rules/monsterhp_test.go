package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/rules"
)

func TestHitDieForMonsterSize(t *testing.T) {
	tests := []struct {
		size dnd5e.MonsterSize
		want int
	}{
		{dnd5e.MonsterSizeTiny, 4},
		{dnd5e.MonsterSizeSmall, 6},
		{dnd5e.MonsterSizeMedium, 8},
		{dnd5e.MonsterSizeLarge, 10},
		{dnd5e.MonsterSizeHuge, 12},
		{dnd5e.MonsterSizeGargantuan, 20},
		{dnd5e.MonsterSize("Colossal"), 8},
		{dnd5e.MonsterSize(""), 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.HitDieForMonsterSize(tt.size), "size %q", tt.size)
	}
}

func TestEstimateMonsterHP(t *testing.T) {
	tests := []struct {
		name             string
		numDice, dieSize int
		conModifier      int
		want             int
	}{
		{"single d8 no con", 1, 8, 0, 4},
		{"owlbear 7d10+21", 7, 10, 3, 59},
		{"floor applied after summing", 3, 4, 0, 7},
		{"negative con", 5, 6, -1, 12},
		{"tarrasque scale", 33, 20, 10, 676},
		{"zero dice", 0, 10, 3, 0},
		{"negative dice", -2, 10, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.EstimateMonsterHP(tt.numDice, tt.dieSize, tt.conModifier))
		})
	}
}

func TestHPFormula(t *testing.T) {
	assert.Equal(t, "7d10 + 21", rules.HPFormula(7, 10, 3))
	assert.Equal(t, "5d6 - 5", rules.HPFormula(5, 6, -1))
	assert.Equal(t, "4d8", rules.HPFormula(4, 8, 0))
	assert.Equal(t, "", rules.HPFormula(0, 8, 2))
}

func TestParseHitDiceCount(t *testing.T) {
	assert.Equal(t, 7, rules.ParseHitDiceCount("7d10 + 21"))
	assert.Equal(t, 33, rules.ParseHitDiceCount("33d20 + 330"))
	assert.Equal(t, 4, rules.ParseHitDiceCount("  4d8"))
	assert.Equal(t, 0, rules.ParseHitDiceCount("d8 + 2"))
	assert.Equal(t, 0, rules.ParseHitDiceCount("not a formula"))
	assert.Equal(t, 0, rules.ParseHitDiceCount(""))
}

func TestHPFormulaRoundTrip(t *testing.T) {
	for _, numDice := range []int{1, 7, 33} {
		formula := rules.HPFormula(numDice, 10, 2)
		assert.Equal(t, numDice, rules.ParseHitDiceCount(formula))
	}
}
