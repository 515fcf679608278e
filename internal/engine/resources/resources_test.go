package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

type ResourcesTestSuite struct {
	suite.Suite
}

func TestResourcesTestSuite(t *testing.T) {
	suite.Run(t, new(ResourcesTestSuite))
}

func (s *ResourcesTestSuite) TestMaxima() {
	pv, err := resources.MaxPV(ordem.ClassCombatente, 2, 5)
	s.Require().NoError(err)
	s.Equal(28, pv)

	san, err := resources.MaxSAN(ordem.ClassOcultista, 20)
	s.Require().NoError(err)
	s.Equal(40, san)

	pe, err := resources.MaxPE(ordem.ClassEspecialista, 2, 10)
	s.Require().NoError(err)
	s.Equal(14, pe)
}

func (s *ResourcesTestSuite) TestMaximaAtNEXZero() {
	for class, want := range map[ordem.Class]resources.Maxima{
		ordem.ClassCombatente:   {PV: 21, SAN: 12, PE: 3},
		ordem.ClassEspecialista: {PV: 17, SAN: 16, PE: 3},
		ordem.ClassOcultista:    {PV: 13, SAN: 20, PE: 5},
	} {
		got, err := resources.MaximaFor(class, ordem.Attributes{Vigor: 1, Presence: 1}, 0, 0)
		s.Require().NoError(err, class)
		s.Equal(want, *got, class)
	}
}

func (s *ResourcesTestSuite) TestMaximaForSubtractsPermanentSANLoss() {
	got, err := resources.MaximaFor(ordem.ClassOcultista, ordem.Attributes{}, 20, 3)
	s.Require().NoError(err)
	s.Equal(37, got.SAN)

	got, err = resources.MaximaFor(ordem.ClassCombatente, ordem.Attributes{}, 0, 50)
	s.Require().NoError(err)
	s.Equal(0, got.SAN)
}

func (s *ResourcesTestSuite) TestUnknownClass() {
	_, err := resources.MaxPV("BARD", 1, 5)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ResourcesTestSuite) TestNEXOutOfRange() {
	for _, nex := range []int{-1, 100, 250} {
		_, err := resources.Level(nex)
		s.Require().Error(err)
		s.True(errors.IsOutOfRange(err))
		s.Equal(errors.RuleExposureRange, errors.GetRule(err))

		_, err = resources.MaxSAN(ordem.ClassOcultista, nex)
		s.True(errors.IsOutOfRange(err))

		_, err = resources.PETurnLimit(nex)
		s.True(errors.IsOutOfRange(err))
	}
}

func (s *ResourcesTestSuite) TestLevel() {
	for nex, want := range map[int]int{0: 0, 4: 0, 5: 1, 34: 6, 35: 7, 99: 19} {
		got, err := resources.Level(nex)
		s.Require().NoError(err)
		s.Equal(want, got, "nex %d", nex)
	}
}

func (s *ResourcesTestSuite) TestPETurnLimit() {
	testCases := map[int]int{
		0:  1,
		5:  1,
		9:  1,
		10: 2,
		19: 2,
		20: 3,
		35: 4,
		45: 5,
		50: 6,
		65: 7,
		70: 8,
		85: 9,
		89: 9,
		90: 10,
		94: 10,
		95: 10,
		98: 10,
		99: 20,
	}
	for nex, want := range testCases {
		got, err := resources.PETurnLimit(nex)
		s.Require().NoError(err)
		s.Equal(want, got, "nex %d", nex)
	}
}

func (s *ResourcesTestSuite) TestPETurnLimitIsMonotonic() {
	prev := 0
	for nex := 0; nex <= ordem.MaxNEX; nex++ {
		got, err := resources.PETurnLimit(nex)
		s.Require().NoError(err)
		s.GreaterOrEqual(got, prev, "nex %d", nex)
		prev = got
	}
}

func (s *ResourcesTestSuite) TestValidateTurnSpend() {
	s.NoError(resources.ValidateTurnSpend(20, 3))

	err := resources.ValidateTurnSpend(20, 4)
	s.Require().Error(err)
	s.True(errors.IsRuleViolation(err))
	s.Equal(errors.RulePETurnLimit, errors.GetRule(err))
}

func (s *ResourcesTestSuite) TestPERecoveryPerRest() {
	got, err := resources.PERecoveryPerRest(0)
	s.Require().NoError(err)
	s.Equal(1, got)

	got, err = resources.PERecoveryPerRest(50)
	s.Require().NoError(err)
	s.Equal(11, got)
}

func (s *ResourcesTestSuite) TestThresholds() {
	s.True(resources.IsInjured(10, 20))
	s.False(resources.IsInjured(11, 20))
	s.True(resources.IsInjured(5, 11))
	s.False(resources.IsInjured(6, 11))
	s.True(resources.IsDying(0))
	s.True(resources.IsDying(-3))
	s.False(resources.IsDying(1))
	s.True(resources.IsInsane(0))
	s.False(resources.IsInsane(1))
	s.True(resources.IsOverwhelmed(5, 20))
	s.False(resources.IsOverwhelmed(6, 20))
}

func (s *ResourcesTestSuite) TestSkillTrainingGate() {
	s.True(resources.CanUseSkillTraining(ordem.TrainingUntrained, 0))
	s.True(resources.CanUseSkillTraining(ordem.TrainingTrained, 0))
	s.False(resources.CanUseSkillTraining(ordem.TrainingCompetent, 34))
	s.True(resources.CanUseSkillTraining(ordem.TrainingCompetent, 35))
	s.False(resources.CanUseSkillTraining(ordem.TrainingExpert, 69))
	s.True(resources.CanUseSkillTraining(ordem.TrainingExpert, 70))
	s.False(resources.CanUseSkillTraining("MASTER", 99))
}

func (s *ResourcesTestSuite) TestSkillBonus() {
	s.Equal(0, resources.SkillBonus(ordem.TrainingUntrained))
	s.Equal(5, resources.SkillBonus(ordem.TrainingTrained))
	s.Equal(10, resources.SkillBonus(ordem.TrainingCompetent))
	s.Equal(15, resources.SkillBonus(ordem.TrainingExpert))
	s.Equal(0, resources.SkillBonus("MASTER"))
}

func (s *ResourcesTestSuite) TestDefense() {
	s.Equal(13, resources.Defense(2, 1))
	s.Equal(9, resources.Defense(-1, 0))
}

func TestEffectiveDefense(t *testing.T) {
	bundle := ordem.NewPenaltyBundle()
	assert.Equal(t, 15, resources.EffectiveDefense(15, bundle))

	bundle.DefenseDelta = -5
	assert.Equal(t, 10, resources.EffectiveDefense(15, bundle))

	bundle.DefenseBaseOnly = true
	assert.Equal(t, 5, resources.EffectiveDefense(18, bundle))

	bundle.DefenseDelta = -20
	assert.Equal(t, 0, resources.EffectiveDefense(18, bundle))

	assert.Equal(t, 12, resources.EffectiveDefense(12, nil))
}

func TestSkillAttribute(t *testing.T) {
	attr, err := resources.SkillAttribute(ordem.SkillOccultism)
	require.NoError(t, err)
	assert.Equal(t, ordem.AttributeIntellect, attr)

	attr, err = resources.SkillAttribute(ordem.SkillFighting)
	require.NoError(t, err)
	assert.Equal(t, ordem.AttributeStrength, attr)

	_, err = resources.SkillAttribute("JUGGLING")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestKitPenalty(t *testing.T) {
	assert.Equal(t, -5, resources.KitPenalty(ordem.SkillMedicine, false))
	assert.Equal(t, 0, resources.KitPenalty(ordem.SkillMedicine, true))
	assert.Equal(t, -5, resources.KitPenalty(ordem.SkillTechnology, false))
	assert.Equal(t, 0, resources.KitPenalty(ordem.SkillAthletics, false))
}

func TestValidateCreationAttributes(t *testing.T) {
	testCases := []struct {
		name       string
		attrs      ordem.Attributes
		wantFields []string
	}{
		{
			name:  "valid spread",
			attrs: ordem.Attributes{Agility: 2, Strength: 2, Intellect: 2, Presence: 2, Vigor: 1},
		},
		{
			name:  "one zero allowed",
			attrs: ordem.Attributes{Agility: 3, Strength: 3, Intellect: 0, Presence: 2, Vigor: 1},
		},
		{
			name:       "wrong sum",
			attrs:      ordem.Attributes{Agility: 1, Strength: 1, Intellect: 1, Presence: 1, Vigor: 1},
			wantFields: []string{"attributes"},
		},
		{
			name:       "above maximum",
			attrs:      ordem.Attributes{Agility: 4, Strength: 2, Intellect: 1, Presence: 1, Vigor: 1},
			wantFields: []string{"AGI"},
		},
		{
			name:       "violations are reported together",
			attrs:      ordem.Attributes{Agility: 5, Strength: 4, Intellect: 0, Presence: 0, Vigor: 1},
			wantFields: []string{"AGI", "STR", "attributes"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := resources.ValidateCreationAttributes(tc.attrs)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsOutOfRange(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			require.True(t, ok)
			for _, field := range tc.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}
