package resources

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

const (
	// KitPenaltyValue is the test penalty for using a kit skill without its kit
	KitPenaltyValue = -5

	creationAttributeSum = 9
	creationAttributeMax = 3
	creationMaxZeroes    = 1
)

var skillAttributes = map[ordem.Skill]ordem.Attribute{
	ordem.SkillAcrobatics:     ordem.AttributeAgility,
	ordem.SkillAnimalHandling: ordem.AttributePresence,
	ordem.SkillArts:           ordem.AttributePresence,
	ordem.SkillAthletics:      ordem.AttributeStrength,
	ordem.SkillCurrentEvents:  ordem.AttributeIntellect,
	ordem.SkillSciences:       ordem.AttributeIntellect,
	ordem.SkillCrime:          ordem.AttributeAgility,
	ordem.SkillDiplomacy:      ordem.AttributePresence,
	ordem.SkillDeception:      ordem.AttributePresence,
	ordem.SkillFortitude:      ordem.AttributeVigor,
	ordem.SkillStealth:        ordem.AttributeAgility,
	ordem.SkillInitiative:     ordem.AttributeAgility,
	ordem.SkillIntimidation:   ordem.AttributePresence,
	ordem.SkillInsight:        ordem.AttributePresence,
	ordem.SkillInvestigation:  ordem.AttributeIntellect,
	ordem.SkillFighting:       ordem.AttributeStrength,
	ordem.SkillMedicine:       ordem.AttributeIntellect,
	ordem.SkillOccultism:      ordem.AttributeIntellect,
	ordem.SkillPerception:     ordem.AttributePresence,
	ordem.SkillPiloting:       ordem.AttributeAgility,
	ordem.SkillMarksmanship:   ordem.AttributeAgility,
	ordem.SkillProfession:     ordem.AttributeIntellect,
	ordem.SkillReflexes:       ordem.AttributeAgility,
	ordem.SkillReligion:       ordem.AttributePresence,
	ordem.SkillSurvival:       ordem.AttributeIntellect,
	ordem.SkillTactics:        ordem.AttributeIntellect,
	ordem.SkillTechnology:     ordem.AttributeIntellect,
	ordem.SkillWill:           ordem.AttributePresence,
}

var kitSkills = map[ordem.Skill]bool{
	ordem.SkillMedicine:   true,
	ordem.SkillCrime:      true,
	ordem.SkillTechnology: true,
	ordem.SkillProfession: true,
}

// SkillAttribute returns the base attribute of a skill
func SkillAttribute(skill ordem.Skill) (ordem.Attribute, error) {
	attr, ok := skillAttributes[skill]
	if !ok {
		return "", errors.NotFoundf("unknown skill: %s", skill)
	}
	return attr, nil
}

// RequiresKit reports whether a skill is penalized without its kit
func RequiresKit(skill ordem.Skill) bool {
	return kitSkills[skill]
}

// KitPenalty returns the test penalty for a skill given whether the kit is
// carried
func KitPenalty(skill ordem.Skill, hasKit bool) int {
	if RequiresKit(skill) && !hasKit {
		return KitPenaltyValue
	}
	return 0
}

// ValidateCreationAttributes checks the starting attribute spread: a sum of
// 9, no attribute above 3 and at most one attribute at 0. Every violation is
// reported in a single range error.
func ValidateCreationAttributes(attrs ordem.Attributes) error {
	vb := errors.NewValidationBuilder()

	if sum := attrs.Sum(); sum != creationAttributeSum {
		vb.Fieldf("attributes", "must sum to %d, got %d", creationAttributeSum, sum)
	}

	zeroes := 0
	for _, attr := range ordem.AllAttributes {
		value := attrs.Get(attr)
		if value > creationAttributeMax {
			vb.Fieldf(string(attr), "must not exceed %d, got %d", creationAttributeMax, value)
		}
		if value == 0 {
			zeroes++
		}
	}
	if zeroes > creationMaxZeroes {
		vb.Fieldf("attributes", "at most %d attribute may be 0, got %d", creationMaxZeroes, zeroes)
	}

	return vb.BuildWithCode(errors.CodeOutOfRange)
}

// EffectiveDefense applies a penalty bundle to a defense value. A base-only
// bundle resets defense to 10 before the delta. The result never drops
// below 0.
func EffectiveDefense(defense int, bundle *ordem.PenaltyBundle) int {
	if bundle == nil {
		return defense
	}
	if bundle.DefenseBaseOnly {
		defense = BaseDefense
	}
	defense += bundle.DefenseDelta
	if defense < 0 {
		return 0
	}
	return defense
}
