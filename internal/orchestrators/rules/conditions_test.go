package rules_test

import (
	"github.com/KirkDiggler/ordem-api/internal/engine/turn"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
	"github.com/KirkDiggler/ordem-api/internal/testutils/builders"
	"github.com/KirkDiggler/ordem-api/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestApplyCondition_Escalates() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().WithConditions(ordem.ConditionShaken).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{
		CharacterID: c.ID,
		Condition:   ordem.ConditionShaken,
	})
	s.Require().NoError(err)

	s.Equal([]ordem.Condition{ordem.ConditionAfraid}, saved.Conditions)
	s.Contains(output.Transition.Removed, ordem.ConditionShaken)
	s.Equal(int64(2), s.counter("ordem.condition.changes"), "escalation and the derived AFRAID")
}

func (s *OrchestratorTestSuite) TestApplyCondition_DuplicateIsNotPersisted() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().WithConditions(ordem.ConditionBlind).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{
		CharacterID: c.ID,
		Condition:   ordem.ConditionBlind,
	})
	s.Require().NoError(err)

	s.False(output.Transition.Changed())
	s.Contains(output.Transition.Message, "already active")
}

func (s *OrchestratorTestSuite) TestApplyCondition_DyingStartsTimer() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	_, err := o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{
		CharacterID: c.ID,
		Condition:   ordem.ConditionDying,
	})
	s.Require().NoError(err)

	s.ElementsMatch([]ordem.Condition{
		ordem.ConditionDying,
		ordem.ConditionUnconscious,
		ordem.ConditionBleeding,
	}, saved.Conditions)
	s.Equal([]ordem.ConditionTimer{{Condition: ordem.ConditionDying, Rounds: 0}}, saved.Timers)
}

func (s *OrchestratorTestSuite) TestApplyCondition_Rejections() {
	o, _ := s.orchestrator()

	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	_, err := o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{CharacterID: c.ID, Condition: "HAUNTED"})
	s.True(errors.IsNotFound(err))

	dead := builders.NewCharacterBuilder().WithConditions(ordem.ConditionDead).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, dead.ID, dead, nil)
	_, err = o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{CharacterID: dead.ID, Condition: ordem.ConditionBlind})
	s.Equal(errors.RuleCharacterDead, errors.GetRule(err))

	_, err = o.ApplyCondition(s.ctx, &rules.ApplyConditionInput{CharacterID: c.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRemoveCondition_LeavesDerivedConditions() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().
		WithConditions(ordem.ConditionStunned, ordem.ConditionUnprepared).
		Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.RemoveCondition(s.ctx, &rules.RemoveConditionInput{
		CharacterID: c.ID,
		Condition:   ordem.ConditionStunned,
	})
	s.Require().NoError(err)

	s.True(output.Removed)
	s.Equal([]ordem.Condition{ordem.ConditionUnprepared}, saved.Conditions)
}

func (s *OrchestratorTestSuite) TestRemoveCondition_NotActive() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.RemoveCondition(s.ctx, &rules.RemoveConditionInput{
		CharacterID: c.ID,
		Condition:   ordem.ConditionBlind,
	})
	s.Require().NoError(err)
	s.False(output.Removed)

	_, err = o.RemoveCondition(s.ctx, &rules.RemoveConditionInput{CharacterID: c.ID, Condition: "HAUNTED"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestApplyDamage_MarksInjured() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ApplyDamage(s.ctx, &rules.ApplyDamageInput{CharacterID: c.ID, PVDamage: 15})
	s.Require().NoError(err)

	s.Equal(13, saved.PV)
	s.Equal([]ordem.Condition{ordem.ConditionInjured}, saved.Conditions)
	s.Equal([]string{"PV 13/28", "added INJURED"}, output.Changes)
	s.False(output.IsDying)
}

func (s *OrchestratorTestSuite) TestApplyDamage_ZeroPVStartsDying() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ApplyDamage(s.ctx, &rules.ApplyDamageInput{CharacterID: c.ID, PVDamage: 40})
	s.Require().NoError(err)

	s.Zero(saved.PV)
	s.True(output.IsDying)
	s.ElementsMatch([]ordem.Condition{
		ordem.ConditionDying,
		ordem.ConditionUnconscious,
		ordem.ConditionBleeding,
		ordem.ConditionInjured,
	}, saved.Conditions)
	s.Equal([]ordem.ConditionTimer{{Condition: ordem.ConditionDying, Rounds: 0}}, saved.Timers)
}

func (s *OrchestratorTestSuite) TestApplyDamage_HealingStabilises() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().
		WithPV(0, 28).
		WithConditions(ordem.ConditionDying, ordem.ConditionUnconscious, ordem.ConditionBleeding, ordem.ConditionInjured).
		WithTimer(ordem.ConditionDying, 1).
		Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ApplyDamage(s.ctx, &rules.ApplyDamageInput{CharacterID: c.ID, PVDamage: -5})
	s.Require().NoError(err)

	s.Equal(5, saved.PV)
	s.False(output.IsDying)
	s.ElementsMatch([]ordem.Condition{
		ordem.ConditionUnconscious,
		ordem.ConditionBleeding,
		ordem.ConditionInjured,
	}, saved.Conditions)
	s.Empty(saved.Timers)
}

func (s *OrchestratorTestSuite) TestApplyDamage_SanityLoss() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	_, err := o.ApplyDamage(s.ctx, &rules.ApplyDamageInput{CharacterID: c.ID, SANDamage: 20})
	s.Require().NoError(err)

	s.Zero(saved.SAN)
	s.ElementsMatch([]ordem.Condition{ordem.ConditionOverwhelmed, ordem.ConditionInsane}, saved.Conditions)
}

func (s *OrchestratorTestSuite) TestProcessTurn_Bleeding() {
	o, _ := s.orchestrator(4)
	c := builders.NewCharacterBuilder().WithConditions(ordem.ConditionBleeding).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ProcessTurn(s.ctx, &rules.ProcessTurnInput{CharacterID: c.ID})
	s.Require().NoError(err)

	s.Equal(24, saved.PV)
	s.Equal([]string{"bleeding: lost 4 PV (24/28)"}, output.Changes)
	s.False(output.IsDead)
}

func (s *OrchestratorTestSuite) TestProcessTurn_ThresholdReplacesNoChanges() {
	o, _ := s.orchestrator()
	c := builders.NewCharacterBuilder().WithPV(10, 28).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, nil)

	output, err := o.ProcessTurn(s.ctx, &rules.ProcessTurnInput{CharacterID: c.ID})
	s.Require().NoError(err)

	s.Equal([]string{"added INJURED"}, output.Changes)
	s.NotContains(output.Changes, turn.NoChanges)
}

func (s *OrchestratorTestSuite) TestProcessTurn_DyingCharacterDies() {
	o, _ := s.orchestrator(1)
	c := builders.NewCharacterBuilder().
		WithPV(0, 28).
		WithConditions(ordem.ConditionDying, ordem.ConditionUnconscious, ordem.ConditionBleeding).
		WithTimer(ordem.ConditionDying, 2).
		Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ProcessTurn(s.ctx, &rules.ProcessTurnInput{CharacterID: c.ID})
	s.Require().NoError(err)

	s.True(output.IsDead)
	s.Equal([]ordem.Condition{ordem.ConditionDead}, saved.Conditions)
	s.Empty(saved.Timers)
	s.Equal(int64(1), s.counter("ordem.deaths"))
}

func (s *OrchestratorTestSuite) TestProcessTurn_DeadIsNotPersisted() {
	o, roller := s.orchestrator()
	c := builders.NewCharacterBuilder().WithPV(0, 28).WithConditions(ordem.ConditionDead).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)

	output, err := o.ProcessTurn(s.ctx, &rules.ProcessTurnInput{CharacterID: c.ID})
	s.Require().NoError(err)

	s.True(output.IsDead)
	s.Empty(output.Changes)
	s.Empty(roller.Requests)
}
