// Package resolve implements the dice-pool resolution rules: attribute
// tests, attacks, weapon damage and resistance checks.
//
// Every test rolls a pool of d20s sized by the attribute and keeps one die.
// Positive pools keep the highest die. An empty pool rolls two dice and keeps
// the lowest. Negative pools roll their absolute size and keep the lowest.
//
// All randomness comes from the dice.Roller passed in, so callers decide
// whether rolls are real or scripted.
package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ordem-api/internal/errors"
)

const (
	// TestDie is the die used for every attribute test
	TestDie = 20

	// DefaultThreatRange is the lowest natural die that is a critical hit
	DefaultThreatRange = 20

	// DefaultCriticalMultiplier multiplies damage dice on a critical hit
	DefaultCriticalMultiplier = 2

	// MaxPoolDice is the largest test pool, and the largest dice adjustment
	// in either direction
	MaxPoolDice = 20

	// MaxDamageDice is the most damage dice one roll may throw, critical
	// multiplier included
	MaxDamageDice = 100

	// MaxDieSize is the largest die a damage formula may name
	MaxDieSize = 100

	// emptyPoolDice is the number of dice rolled when the pool is empty
	emptyPoolDice = 2
)

var formulaRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// RollResult is the outcome of a single dice-pool test
type RollResult struct {
	Dice         []int `json:"dice"`
	SelectedDie  int   `json:"selected_die"`
	Bonus        int   `json:"bonus"`
	Total        int   `json:"total"`
	Advantage    bool  `json:"advantage"`
	Disadvantage bool  `json:"disadvantage"`
}

// IsNatural reports whether the kept die shows the given face
func (r *RollResult) IsNatural(face int) bool {
	return r.SelectedDie == face
}

// AttackResult is the outcome of an attack test
type AttackResult struct {
	Roll        *RollResult `json:"roll"`
	Defense     int         `json:"defense"`
	ThreatRange int         `json:"threat_range"`
	Hit         bool        `json:"hit"`
	Critical    bool        `json:"critical"`
}

// DamageInput describes a weapon damage roll
type DamageInput struct {
	Formula        string
	AttributeValue int
	IsMelee        bool
	IsCritical     bool
	Multiplier     int
	SkillBonus     int
}

// DamageResult is the outcome of a damage roll
type DamageResult struct {
	Formula        string `json:"formula"`
	Dice           []int  `json:"dice"`
	DiceTotal      int    `json:"dice_total"`
	AttributeBonus int    `json:"attribute_bonus"`
	SkillBonus     int    `json:"skill_bonus"`
	Total          int    `json:"total"`
	IsCritical     bool   `json:"is_critical"`
	Multiplier     int    `json:"multiplier"`
}

// ResistanceResult is the outcome of a resistance check
type ResistanceResult struct {
	Roll       *RollResult `json:"roll"`
	Difficulty int         `json:"difficulty"`
	Success    bool        `json:"success"`
}

// PoolSize returns how many dice a test rolls and whether it keeps the
// highest die. The adjustment is applied before the empty-pool rule.
func PoolSize(attributeValue, diceAdjustment int) (count int, keepHighest bool) {
	n := attributeValue + diceAdjustment
	switch {
	case n > 0:
		return n, true
	case attributeValue < 0 && n < 0:
		return -n, false
	default:
		return emptyPoolDice, false
	}
}

// AttributeTest rolls an attribute test and adds the skill bonus
func AttributeTest(roller dice.Roller, attributeValue, skillBonus, diceAdjustment int) (*RollResult, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	if diceAdjustment > MaxPoolDice || diceAdjustment < -MaxPoolDice {
		return nil, errors.OutOfRangef("dice adjustment must be between %d and %d, got %d",
			-MaxPoolDice, MaxPoolDice, diceAdjustment)
	}

	count, keepHighest := PoolSize(attributeValue, diceAdjustment)
	if count > MaxPoolDice {
		return nil, errors.OutOfRangef("test pool of %d dice exceeds the limit of %d", count, MaxPoolDice)
	}

	rolled, err := roller.RollN(count, TestDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll test dice")
	}
	if len(rolled) == 0 {
		return nil, errors.Internalf("roller returned no dice for a pool of %d", count)
	}

	selected := rolled[0]
	for _, d := range rolled[1:] {
		if keepHighest && d > selected || !keepHighest && d < selected {
			selected = d
		}
	}

	return &RollResult{
		Dice:         rolled,
		SelectedDie:  selected,
		Bonus:        skillBonus,
		Total:        selected + skillBonus,
		Advantage:    keepHighest,
		Disadvantage: !keepHighest,
	}, nil
}

// Attack rolls an attack test against a defense. The critical check looks at
// the kept die only, and a critical always hits.
func Attack(
	roller dice.Roller,
	attributeValue, skillBonus, targetDefense, threatRange, diceAdjustment int,
) (*AttackResult, error) {
	if threatRange <= 0 {
		threatRange = DefaultThreatRange
	}

	roll, err := AttributeTest(roller, attributeValue, skillBonus, diceAdjustment)
	if err != nil {
		return nil, err
	}

	critical := roll.SelectedDie >= threatRange
	return &AttackResult{
		Roll:        roll,
		Defense:     targetDefense,
		ThreatRange: threatRange,
		Critical:    critical,
		Hit:         critical || roll.Total >= targetDefense,
	}, nil
}

// ParseFormula parses an "NdM" damage formula
func ParseFormula(formula string) (count, sides int, err error) {
	matches := formulaRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(formula)))
	if len(matches) != 3 {
		return 0, 0, errors.Formatf("invalid dice formula: %q (expected format: NdM)", formula)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.Formatf("invalid dice count in formula: %q", formula)
	}
	sides, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.Formatf("invalid die size in formula: %q", formula)
	}
	if count <= 0 || sides <= 0 {
		return 0, 0, errors.Formatf("dice count and size must be positive: %q", formula)
	}
	if count > MaxDamageDice || sides > MaxDieSize {
		return 0, 0, errors.Formatf("formula %q exceeds %dd%d", formula, MaxDamageDice, MaxDieSize)
	}

	return count, sides, nil
}

// Damage rolls weapon damage. A critical multiplies the number of dice, never
// the flat bonuses.
func Damage(roller dice.Roller, input DamageInput) (*DamageResult, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	count, sides, err := ParseFormula(input.Formula)
	if err != nil {
		return nil, err
	}

	multiplier := input.Multiplier
	if multiplier <= 0 {
		multiplier = DefaultCriticalMultiplier
	}
	if input.IsCritical {
		if multiplier > MaxDamageDice/count {
			return nil, errors.OutOfRangef("critical damage of %s x%d exceeds %d dice",
				input.Formula, multiplier, MaxDamageDice)
		}
		count *= multiplier
	}

	rolled, err := roller.RollN(count, sides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage dice")
	}

	result := &DamageResult{
		Formula:    input.Formula,
		Dice:       rolled,
		SkillBonus: input.SkillBonus,
		IsCritical: input.IsCritical,
		Multiplier: multiplier,
	}
	for _, d := range rolled {
		result.DiceTotal += d
	}
	if input.IsMelee {
		result.AttributeBonus = input.AttributeValue
	}
	result.Total = result.DiceTotal + result.AttributeBonus + result.SkillBonus

	return result, nil
}

// Resistance rolls a resistance check: an attribute test with no skill bonus
func Resistance(roller dice.Roller, attributeValue, difficulty, diceAdjustment int) (*ResistanceResult, error) {
	roll, err := AttributeTest(roller, attributeValue, 0, diceAdjustment)
	if err != nil {
		return nil, err
	}

	return &ResistanceResult{
		Roll:       roll,
		Difficulty: difficulty,
		Success:    roll.Total >= difficulty,
	}, nil
}
