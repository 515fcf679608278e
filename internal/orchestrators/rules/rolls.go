package rules

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resolve"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

// testModifiers is what a character brings to a test of one skill once
// conditions, training and kits are folded in
type testModifiers struct {
	attribute      ordem.Attribute
	attributeValue int
	skillBonus     int
	diceAdjustment int
}

// modifiersFor folds a character's penalties into the inputs of a skill test
func modifiersFor(c *ordem.Character, bundle *ordem.PenaltyBundle, skill ordem.Skill) (*testModifiers, error) {
	attr, err := resources.SkillAttribute(skill)
	if err != nil {
		return nil, errors.Wrap(err, "invalid skill")
	}

	return &testModifiers{
		attribute:      attr,
		attributeValue: c.Attributes.Get(attr) + bundle.AttributePenalties[attr],
		skillBonus: resources.SkillBonus(c.Training(skill)) +
			bundle.SkillPenalties[skill] +
			resources.KitPenalty(skill, c.HasKit(skill)),
		diceAdjustment: bundle.DicePenalty,
	}, nil
}

// RollSkillTest rolls a skill test for a character
func (o *Orchestrator) RollSkillTest(
	ctx context.Context, input *RollSkillTestInput,
) (_ *RollSkillTestOutput, err error) {
	defer o.observe(ctx, "RollSkillTest", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if err := requireAlive(c); err != nil {
		return nil, err
	}

	mods, err := modifiersFor(c, conditions.Penalties(c.Conditions), input.Skill)
	if err != nil {
		return nil, err
	}

	roll, err := resolve.AttributeTest(o.roller,
		mods.attributeValue,
		mods.skillBonus+input.Bonus,
		mods.diceAdjustment+input.DiceAdjustment)
	if err != nil {
		return nil, err
	}

	output := &RollSkillTestOutput{
		Skill:      input.Skill,
		Attribute:  mods.attribute,
		Roll:       roll,
		Difficulty: input.Difficulty,
	}

	outcome := "rolled"
	if input.Difficulty > 0 {
		output.Success = roll.Total >= input.Difficulty
		outcome = outcomeOf(output.Success)
	}
	o.metrics.RecordRoll(ctx, "skill", outcome)

	slog.Debug("skill test",
		"character_id", c.ID,
		"skill", input.Skill,
		"dice", roll.Dice,
		"total", roll.Total,
		"difficulty", input.Difficulty)

	return output, nil
}

// Attack rolls an attack and, on a hit, its damage
func (o *Orchestrator) Attack(ctx context.Context, input *AttackInput) (_ *AttackOutput, err error) {
	defer o.observe(ctx, "Attack", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skill := input.Skill
	if skill == "" {
		skill = ordem.SkillFighting
	}
	if skill != ordem.SkillFighting && skill != ordem.SkillMarksmanship {
		return nil, errors.InvalidArgumentf("attacks use %s or %s, got %s",
			ordem.SkillFighting, ordem.SkillMarksmanship, skill)
	}
	if input.Damage != nil {
		if _, _, err := resolve.ParseFormula(input.Damage.Formula); err != nil {
			return nil, err
		}
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	bundle := conditions.Penalties(c.Conditions)
	if err := requireAble(c, bundle); err != nil {
		return nil, err
	}

	mods, err := modifiersFor(c, bundle, skill)
	if err != nil {
		return nil, err
	}

	attack, err := resolve.Attack(o.roller,
		mods.attributeValue,
		mods.skillBonus,
		input.TargetDefense,
		input.ThreatRange,
		mods.diceAdjustment+input.DiceAdjustment)
	if err != nil {
		return nil, err
	}

	outcome := "miss"
	switch {
	case attack.Critical:
		outcome = "critical"
	case attack.Hit:
		outcome = "hit"
	}
	o.metrics.RecordRoll(ctx, "attack", outcome)

	output := &AttackOutput{Attack: attack}
	if !attack.Hit || input.Damage == nil {
		return output, nil
	}

	damage, err := resolve.Damage(o.roller, resolve.DamageInput{
		Formula:        input.Damage.Formula,
		AttributeValue: c.Attributes.Get(ordem.AttributeStrength) + bundle.AttributePenalties[ordem.AttributeStrength],
		IsMelee:        skill == ordem.SkillFighting,
		IsCritical:     attack.Critical,
		Multiplier:     input.Damage.Multiplier,
		SkillBonus:     input.Damage.Bonus,
	})
	if err != nil {
		return nil, err
	}
	o.metrics.RecordRoll(ctx, "damage", outcome)
	output.Damage = damage

	slog.Debug("attack",
		"character_id", c.ID,
		"skill", skill,
		"total", attack.Roll.Total,
		"defense", input.TargetDefense,
		"critical", attack.Critical,
		"damage", damage.Total)

	return output, nil
}

// RollResistance rolls a bare attribute test against a difficulty
func (o *Orchestrator) RollResistance(
	ctx context.Context, input *RollResistanceInput,
) (_ *RollResistanceOutput, err error) {
	defer o.observe(ctx, "RollResistance", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !isAttribute(input.Attribute) {
		return nil, errors.InvalidArgumentf("unknown attribute: %s", input.Attribute)
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if err := requireAlive(c); err != nil {
		return nil, err
	}

	bundle := conditions.Penalties(c.Conditions)
	result, err := resolve.Resistance(o.roller,
		c.Attributes.Get(input.Attribute)+bundle.AttributePenalties[input.Attribute],
		input.Difficulty,
		bundle.DicePenalty+input.DiceAdjustment)
	if err != nil {
		return nil, err
	}
	o.metrics.RecordRoll(ctx, "resistance", outcomeOf(result.Success))

	return &RollResistanceOutput{Result: result}, nil
}

func isAttribute(attr ordem.Attribute) bool {
	for _, a := range ordem.AllAttributes {
		if a == attr {
			return true
		}
	}
	return false
}

func outcomeOf(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
