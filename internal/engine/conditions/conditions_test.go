package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

type ConditionsTestSuite struct {
	suite.Suite
}

func TestConditionsTestSuite(t *testing.T) {
	suite.Run(t, new(ConditionsTestSuite))
}

func (s *ConditionsTestSuite) TestApplyAddsCondition() {
	t, err := conditions.Apply(ordem.ConditionFallen, nil)
	s.Require().NoError(err)

	s.Equal([]ordem.Condition{ordem.ConditionFallen}, t.Conditions)
	s.Empty(t.Added)
	s.Empty(t.Removed)
	s.Contains(t.Message, "FALLEN")
}

func (s *ConditionsTestSuite) TestShakenTwiceEscalatesToAfraid() {
	first, err := conditions.Apply(ordem.ConditionShaken, nil)
	s.Require().NoError(err)

	second, err := conditions.Apply(ordem.ConditionShaken, first.Conditions)
	s.Require().NoError(err)

	s.Contains(second.Conditions, ordem.ConditionAfraid)
	s.NotContains(second.Conditions, ordem.ConditionShaken)
	s.Contains(second.Removed, ordem.ConditionShaken)
	s.Contains(second.Added, ordem.ConditionAfraid)
}

func (s *ConditionsTestSuite) TestWeakenedTwiceEscalatesToUnconscious() {
	t, err := conditions.Apply(ordem.ConditionWeakened, []ordem.Condition{ordem.ConditionWeakened, ordem.ConditionBlind})
	s.Require().NoError(err)

	s.ElementsMatch([]ordem.Condition{ordem.ConditionBlind, ordem.ConditionUnconscious}, t.Conditions)
	s.Equal([]ordem.Condition{ordem.ConditionWeakened}, t.Removed)
	s.Equal([]ordem.Condition{ordem.ConditionUnconscious}, t.Added)
}

func (s *ConditionsTestSuite) TestEscalationIntoActiveConditionDoesNotDuplicate() {
	t, err := conditions.Apply(ordem.ConditionShaken, []ordem.Condition{ordem.ConditionShaken, ordem.ConditionAfraid})
	s.Require().NoError(err)

	s.Equal([]ordem.Condition{ordem.ConditionAfraid}, t.Conditions)
	s.Empty(t.Added)
	s.Equal([]ordem.Condition{ordem.ConditionShaken}, t.Removed)
}

func (s *ConditionsTestSuite) TestDuplicateIsNoop() {
	current := []ordem.Condition{ordem.ConditionBlind}

	t, err := conditions.Apply(ordem.ConditionBlind, current)
	s.Require().NoError(err)

	s.Equal(current, t.Conditions)
	s.False(t.Changed())
	s.Contains(t.Message, "already active")
}

func (s *ConditionsTestSuite) TestDyingCascades() {
	t, err := conditions.Apply(ordem.ConditionDying, nil)
	s.Require().NoError(err)

	s.ElementsMatch([]ordem.Condition{
		ordem.ConditionDying,
		ordem.ConditionUnconscious,
		ordem.ConditionBleeding,
	}, t.Conditions)
	s.ElementsMatch([]ordem.Condition{ordem.ConditionUnconscious, ordem.ConditionBleeding}, t.Added)
}

func (s *ConditionsTestSuite) TestDerivedAdditions() {
	testCases := []struct {
		condition ordem.Condition
		current   []ordem.Condition
		wantAdded []ordem.Condition
	}{
		{ordem.ConditionStunned, nil, []ordem.Condition{ordem.ConditionUnprepared}},
		{ordem.ConditionParalyzed, nil, []ordem.Condition{ordem.ConditionImmobile, ordem.ConditionDefenseless}},
		{ordem.ConditionExhausted, nil, []ordem.Condition{ordem.ConditionWeakened, ordem.ConditionSlowed}},
		{
			ordem.ConditionDying,
			[]ordem.Condition{ordem.ConditionBleeding},
			[]ordem.Condition{ordem.ConditionUnconscious},
		},
	}

	for _, tc := range testCases {
		s.Run(string(tc.condition), func() {
			t, err := conditions.Apply(tc.condition, tc.current)
			s.Require().NoError(err)
			s.Equal(tc.wantAdded, t.Added)

			seen := map[ordem.Condition]int{}
			for _, c := range t.Conditions {
				seen[c]++
				s.Equal(1, seen[c], "duplicate %s", c)
			}
		})
	}
}

func (s *ConditionsTestSuite) TestApplyUnknown() {
	_, err := conditions.Apply("HAUNTED", nil)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ConditionsTestSuite) TestApplyDoesNotMutateInput() {
	current := []ordem.Condition{ordem.ConditionShaken, ordem.ConditionBlind}

	_, err := conditions.Apply(ordem.ConditionShaken, current)
	s.Require().NoError(err)

	s.Equal([]ordem.Condition{ordem.ConditionShaken, ordem.ConditionBlind}, current)
}

func (s *ConditionsTestSuite) TestRemoveDoesNotCascade() {
	t, err := conditions.Apply(ordem.ConditionStunned, nil)
	s.Require().NoError(err)

	after := conditions.Remove(ordem.ConditionStunned, t.Conditions)
	s.Equal([]ordem.Condition{ordem.ConditionUnprepared}, after)

	after = conditions.Remove(ordem.ConditionUnprepared, t.Conditions)
	s.Equal([]ordem.Condition{ordem.ConditionStunned}, after)

	s.Empty(conditions.Remove(ordem.ConditionStunned, []ordem.Condition{ordem.ConditionStunned}))
	s.Equal(
		[]ordem.Condition{ordem.ConditionBlind},
		conditions.Remove(ordem.ConditionDeaf, []ordem.Condition{ordem.ConditionBlind}),
	)
}

func (s *ConditionsTestSuite) TestPenaltiesSingle() {
	shaken := conditions.Penalties([]ordem.Condition{ordem.ConditionShaken})
	s.Equal(-1, shaken.DicePenalty)

	afraid := conditions.Penalties([]ordem.Condition{ordem.ConditionAfraid})
	s.Equal(-2, afraid.DicePenalty)
	s.True(afraid.CannotApproach)
	s.True(afraid.MustFlee)

	blind := conditions.Penalties([]ordem.Condition{ordem.ConditionBlind})
	s.Equal(-2, blind.AttributePenalties[ordem.AttributeAgility])
	s.Equal(-2, blind.AttributePenalties[ordem.AttributeStrength])
	s.Equal(-2, blind.SkillPenalties[ordem.SkillPerception])
}

func (s *ConditionsTestSuite) TestPenaltiesSumOverlaps() {
	bundle := conditions.Penalties([]ordem.Condition{
		ordem.ConditionShaken,
		ordem.ConditionBlind,
		ordem.ConditionDeaf,
		ordem.ConditionWeakened,
		ordem.ConditionFallen,
		ordem.ConditionUnprepared,
	})

	s.Equal(-1, bundle.DicePenalty)
	s.Equal(-10, bundle.DefenseDelta)
	s.Equal(-4, bundle.AttributePenalties[ordem.AttributeAgility])
	s.Equal(-4, bundle.AttributePenalties[ordem.AttributeStrength])
	s.Equal(-2, bundle.AttributePenalties[ordem.AttributeVigor])
	s.Equal(-4, bundle.SkillPenalties[ordem.SkillPerception])
	s.Equal(-5, bundle.SkillPenalties[ordem.SkillInitiative])
	s.Equal(-5, bundle.SkillPenalties[ordem.SkillFighting])
	s.Equal(-5, bundle.SkillPenalties[ordem.SkillReflexes])
}

func (s *ConditionsTestSuite) TestPenaltiesFlags() {
	bundle := conditions.Penalties([]ordem.Condition{ordem.ConditionSurprised, ordem.ConditionGrappled})

	s.True(bundle.DefenseBaseOnly)
	s.True(bundle.CannotAct)
	s.True(bundle.CannotMove)
	s.False(bundle.CannotReact)
	s.False(bundle.OneActionPerTurn)
	s.Equal(-1, bundle.DicePenalty)
}

func (s *ConditionsTestSuite) TestPenaltiesIgnoreUnknownAndEmpty() {
	bundle := conditions.Penalties([]ordem.Condition{"HAUNTED"})
	s.Equal(ordem.NewPenaltyBundle(), bundle)

	s.Equal(ordem.NewPenaltyBundle(), conditions.Penalties(nil))
}

func (s *ConditionsTestSuite) TestPenaltiesArePure() {
	set := []ordem.Condition{ordem.ConditionBlind, ordem.ConditionDazzled, ordem.ConditionAfraid}

	first := conditions.Penalties(set)
	second := conditions.Penalties(set)
	s.Equal(first, second)

	first.SkillPenalties[ordem.SkillPerception] = 99
	third := conditions.Penalties(set)
	s.Equal(second, third)
}

func (s *ConditionsTestSuite) TestEveryConditionIsKnown() {
	all := []ordem.Condition{
		ordem.ConditionFallen, ordem.ConditionUnprepared, ordem.ConditionStunned,
		ordem.ConditionShaken, ordem.ConditionAfraid, ordem.ConditionBlind,
		ordem.ConditionDeaf, ordem.ConditionDying, ordem.ConditionBleeding,
		ordem.ConditionExhausted, ordem.ConditionOverloaded, ordem.ConditionWeakened,
		ordem.ConditionFatigued, ordem.ConditionSlowed, ordem.ConditionUnconscious,
		ordem.ConditionParalyzed, ordem.ConditionImmobile, ordem.ConditionDefenseless,
		ordem.ConditionGrappled, ordem.ConditionEntangled, ordem.ConditionConfused,
		ordem.ConditionDazzled, ordem.ConditionDazed, ordem.ConditionFascinated,
		ordem.ConditionFrustrated, ordem.ConditionBroken, ordem.ConditionNauseated,
		ordem.ConditionSick, ordem.ConditionPoisoned, ordem.ConditionVulnerable,
		ordem.ConditionInjured, ordem.ConditionSurprised, ordem.ConditionPetrified,
		ordem.ConditionOverwhelmed, ordem.ConditionInsane, ordem.ConditionDead,
	}
	for _, c := range all {
		s.True(conditions.IsKnown(c), c)
		s.NotEqual(string(c), conditions.Describe(c), c)
	}
	s.False(conditions.IsKnown(ordem.TimerInsanity))
}

func (s *ConditionsTestSuite) TestSyncThresholds() {
	t := conditions.SyncThresholds(nil, 10, 20, 4, 20)
	s.ElementsMatch([]ordem.Condition{ordem.ConditionInjured, ordem.ConditionOverwhelmed}, t.Added)
	s.True(t.Changed())

	t = conditions.SyncThresholds(t.Conditions, 20, 20, 0, 20)
	s.Equal([]ordem.Condition{ordem.ConditionInsane}, t.Added)
	s.Equal([]ordem.Condition{ordem.ConditionInjured}, t.Removed)
	s.ElementsMatch([]ordem.Condition{ordem.ConditionOverwhelmed, ordem.ConditionInsane}, t.Conditions)

	t = conditions.SyncThresholds(t.Conditions, 20, 20, 20, 20)
	s.ElementsMatch([]ordem.Condition{ordem.ConditionOverwhelmed, ordem.ConditionInsane}, t.Removed)
	s.Empty(t.Conditions)

	t = conditions.SyncThresholds([]ordem.Condition{ordem.ConditionBlind}, 20, 20, 20, 20)
	s.False(t.Changed())
	s.Equal("no threshold changes", t.Message)
}
