package rules_test

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
	"github.com/KirkDiggler/ordem-api/internal/testutils/builders"
	"github.com/KirkDiggler/ordem-api/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestRollSkillTest_TrainedSkill() {
	o, roller := s.orchestrator(7, 14)
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{
		CharacterID: c.ID,
		Skill:       ordem.SkillFighting,
		Difficulty:  15,
	})
	s.Require().NoError(err)

	s.Equal(ordem.AttributeStrength, output.Attribute)
	s.Equal(14, output.Roll.SelectedDie)
	s.Equal(19, output.Roll.Total)
	s.True(output.Success)
	s.Equal([][2]int{{2, 20}}, roller.Requests)
	s.Equal(int64(1), s.counter("ordem.rolls"))
}

func (s *OrchestratorTestSuite) TestRollSkillTest_ConditionPenalties() {
	o, roller := s.orchestrator(12)
	c := builders.NewCharacterBuilder().
		WithConditions(ordem.ConditionShaken, ordem.ConditionBlind).
		Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{
		CharacterID: c.ID,
		Skill:       ordem.SkillPerception,
	})
	s.Require().NoError(err)

	s.Equal([][2]int{{1, 20}}, roller.Requests, "PRE 2 with a -1 dice penalty rolls one die")
	s.Equal(-2, output.Roll.Bonus)
	s.Equal(10, output.Roll.Total)
	s.False(output.Success, "no difficulty means no success")
}

func (s *OrchestratorTestSuite) TestRollSkillTest_KitPenalty() {
	without := builders.NewCharacterBuilder().Build()
	with := builders.NewCharacterBuilder().WithKit(ordem.SkillMedicine).Build()

	for _, tc := range []struct {
		character *ordem.Character
		total     int
	}{
		{without, 5},
		{with, 10},
	} {
		o, _ := s.orchestrator(10)
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, tc.character.ID, tc.character, nil)

		output, err := o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{
			CharacterID: tc.character.ID,
			Skill:       ordem.SkillMedicine,
		})
		s.Require().NoError(err)
		s.Equal(tc.total, output.Roll.Total)
	}
}

func (s *OrchestratorTestSuite) TestRollSkillTest_Rejections() {
	o, _ := s.orchestrator()

	_, err := o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{CharacterID: "char-test-123"})
	s.True(errors.IsInvalidArgument(err))

	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	_, err = o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{CharacterID: c.ID, Skill: "JUGGLING"})
	s.True(errors.IsNotFound(err))

	dead := builders.NewCharacterBuilder().WithPV(0, 28).WithConditions(ordem.ConditionDead).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, dead.ID, dead, nil)
	_, err = o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{CharacterID: dead.ID, Skill: ordem.SkillWill})
	s.Equal(errors.RuleCharacterDead, errors.GetRule(err))
}

func (s *OrchestratorTestSuite) TestRollSkillTest_OversizedPoolRejected() {
	o, roller := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	_, err := o.RollSkillTest(s.ctx, &rules.RollSkillTestInput{
		CharacterID:    c.ID,
		Skill:          ordem.SkillPerception,
		DiceAdjustment: 3_000_000,
	})
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
	s.Empty(roller.Requests)
}

func (s *OrchestratorTestSuite) TestAttack_MeleeHitRollsDamage() {
	o, roller := s.orchestrator(9, 12, 6)
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.Attack(s.ctx, &rules.AttackInput{
		CharacterID:   c.ID,
		TargetDefense: 15,
		Damage:        &rules.DamageSpec{Formula: "1d8"},
	})
	s.Require().NoError(err)

	s.True(output.Attack.Hit)
	s.False(output.Attack.Critical)
	s.Equal(17, output.Attack.Roll.Total)
	s.Require().NotNil(output.Damage)
	s.Equal(2, output.Damage.AttributeBonus)
	s.Equal(8, output.Damage.Total)
	s.Equal([][2]int{{2, 20}, {1, 8}}, roller.Requests)
}

func (s *OrchestratorTestSuite) TestAttack_CriticalMultipliesDice() {
	o, roller := s.orchestrator(20, 3, 5, 4)
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.Attack(s.ctx, &rules.AttackInput{
		CharacterID:   c.ID,
		TargetDefense: 40,
		Damage:        &rules.DamageSpec{Formula: "1d8"},
	})
	s.Require().NoError(err)

	s.True(output.Attack.Critical)
	s.True(output.Attack.Hit, "a critical hits any defense")
	s.Equal(11, output.Damage.Total)
	s.Equal([][2]int{{2, 20}, {2, 8}}, roller.Requests)
}

func (s *OrchestratorTestSuite) TestAttack_RangedIgnoresStrength() {
	o, _ := s.orchestrator(15, 4, 3, 3)
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.Attack(s.ctx, &rules.AttackInput{
		CharacterID:   c.ID,
		Skill:         ordem.SkillMarksmanship,
		TargetDefense: 15,
		Damage:        &rules.DamageSpec{Formula: "2d6"},
	})
	s.Require().NoError(err)

	s.True(output.Attack.Hit)
	s.Zero(output.Damage.AttributeBonus)
	s.Equal(6, output.Damage.Total)
}

func (s *OrchestratorTestSuite) TestAttack_MissSkipsDamage() {
	o, roller := s.orchestrator(3, 4)
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.Attack(s.ctx, &rules.AttackInput{
		CharacterID:   c.ID,
		TargetDefense: 15,
		Damage:        &rules.DamageSpec{Formula: "1d8"},
	})
	s.Require().NoError(err)

	s.False(output.Attack.Hit)
	s.Nil(output.Damage)
	s.Zero(roller.Remaining())
}

func (s *OrchestratorTestSuite) TestAttack_Rejections() {
	o, roller := s.orchestrator()

	_, err := o.Attack(s.ctx, &rules.AttackInput{CharacterID: "char-test-123", Skill: ordem.SkillAthletics})
	s.True(errors.IsInvalidArgument(err))

	_, err = o.Attack(s.ctx, &rules.AttackInput{
		CharacterID: "char-test-123",
		Damage:      &rules.DamageSpec{Formula: "d8"},
	})
	s.True(errors.IsFormat(err))

	stunned := builders.NewCharacterBuilder().WithConditions(ordem.ConditionStunned).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, stunned.ID, stunned, nil)
	_, err = o.Attack(s.ctx, &rules.AttackInput{CharacterID: stunned.ID, TargetDefense: 10})
	s.True(errors.IsRuleViolation(err))
	s.Equal(errors.RuleCannotAct, errors.GetRule(err))

	s.Empty(roller.Requests)
}

func (s *OrchestratorTestSuite) TestRollResistance_WeakenedRollsWithDisadvantage() {
	o, roller := s.orchestrator(15, 6)
	c := builders.NewCharacterBuilder().WithConditions(ordem.ConditionWeakened).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.RollResistance(s.ctx, &rules.RollResistanceInput{
		CharacterID: c.ID,
		Attribute:   ordem.AttributeVigor,
		Difficulty:  10,
	})
	s.Require().NoError(err)

	s.True(output.Result.Roll.Disadvantage)
	s.Equal(6, output.Result.Roll.Total)
	s.False(output.Result.Success)
	s.Equal([][2]int{{2, 20}}, roller.Requests)

	_, err = o.RollResistance(s.ctx, &rules.RollResistanceInput{CharacterID: c.ID, Attribute: "LUCK"})
	s.True(errors.IsInvalidArgument(err))
}
