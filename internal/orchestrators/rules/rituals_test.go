package rules_test

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
	ritualrepo "github.com/KirkDiggler/ordem-api/internal/repositories/ritual"
	"github.com/KirkDiggler/ordem-api/internal/testutils"
	"github.com/KirkDiggler/ordem-api/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestConjureRitual_Success() {
	o, roller := s.orchestrator(5, 17, 2)
	c := testutils.CreateTestOccultist("player-1")
	r := testutils.CreateTestRitual()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	mocks.ExpectRitualGet(s.ctx, s.mockRitualRepo, r, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{
		CharacterID: c.ID,
		RitualID:    r.ID,
	})
	s.Require().NoError(err)

	s.True(output.Result.Success)
	s.Equal(21, output.Result.DT)
	s.Equal(22, output.Result.Roll.Total)
	s.Equal(48, saved.PE)
	s.Equal(50, saved.SAN)
	s.Equal([][2]int{{3, 20}}, roller.Requests)
	s.Equal(int64(1), s.counter("ordem.ritual.casts"))
}

func (s *OrchestratorTestSuite) TestConjureRitual_CriticalFailure() {
	o, _ := s.orchestrator(1, 1, 1)
	c := testutils.CreateTestOccultist("player-1")
	r := testutils.CreateTestRitual()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	mocks.ExpectRitualGet(s.ctx, s.mockRitualRepo, r, nil)

	var saved *ordem.Character
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo, &saved)

	output, err := o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{
		CharacterID: c.ID,
		RitualID:    r.ID,
		Mode:        ordem.CastModeDisciple,
	})
	s.Require().NoError(err)

	s.True(output.Result.CriticalFailure)
	s.Equal(3, output.Result.SANLost)
	s.Equal(46, saved.PE)
	s.Equal(47, saved.SAN)
	s.Equal(49, saved.MaxSAN)
	s.Equal(1, saved.MaxSANLoss)
}

func (s *OrchestratorTestSuite) TestConjureRitual_TurnLimitLeavesCharacterUntouched() {
	o, roller := s.orchestrator()
	c := testutils.CreateTestOccultist("player-1")
	r := testutils.CreateTestRitual()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	mocks.ExpectRitualGet(s.ctx, s.mockRitualRepo, r, nil)

	_, err := o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{
		CharacterID:     c.ID,
		RitualID:        r.ID,
		PESpentThisTurn: 4,
	})
	s.Require().Error(err)
	s.Equal(errors.RulePETurnLimit, errors.GetRule(err))
	s.Empty(roller.Requests)
}

func (s *OrchestratorTestSuite) TestConjureRitual_Rejections() {
	o, _ := s.orchestrator()
	c := testutils.CreateTestOccultist("player-1")

	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	mocks.ExpectRitualGet(s.ctx, s.mockRitualRepo, nil, errors.NotFound("ritual not found"))
	_, err := o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{CharacterID: c.ID, RitualID: "missing"})
	s.True(errors.IsNotFound(err))

	stunned := testutils.CreateTestOccultist("player-1")
	stunned.Conditions = []ordem.Condition{ordem.ConditionStunned}
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, stunned.ID, stunned, nil)
	_, err = o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{CharacterID: stunned.ID, RitualID: testutils.TestRitualID})
	s.Equal(errors.RuleCannotAct, errors.GetRule(err))

	_, err = o.ConjureRitual(s.ctx, &rules.ConjureRitualInput{CharacterID: c.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListRituals() {
	o, _ := s.orchestrator()
	r := testutils.CreateTestRitual()

	s.mockRitualRepo.EXPECT().
		List(s.ctx, ritualrepo.ListInput{Circle: 1}).
		Return(&ritualrepo.ListOutput{Rituals: []*ordem.Ritual{r}}, nil)

	output, err := o.ListRituals(s.ctx, &rules.ListRitualsInput{Circle: 1})
	s.Require().NoError(err)
	s.Equal([]*ordem.Ritual{r}, output.Rituals)
}
