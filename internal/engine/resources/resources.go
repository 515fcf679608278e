// Package resources derives the maximum PV, SAN, PE and defense of a
// character from class, attributes and exposure level (NEX), and holds the
// resource thresholds the condition engine reacts to.
package resources

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

const (
	// BaseDefense is the defense of an unarmored character with no agility
	BaseDefense = 10

	// nexPerLevel is the NEX width of one level
	nexPerLevel = 5

	competentMinNEX = 35
	expertMinNEX    = 70
)

// ClassConfig holds the resource constants of a class
type ClassConfig struct {
	PVInitial   int
	PVPerLevel  int
	SANInitial  int
	SANPerLevel int
	PEInitial   int
	PEPerLevel  int
}

var classConfigs = map[ordem.Class]ClassConfig{
	ordem.ClassCombatente: {
		PVInitial: 20, PVPerLevel: 4,
		SANInitial: 12, SANPerLevel: 3,
		PEInitial: 2, PEPerLevel: 2,
	},
	ordem.ClassEspecialista: {
		PVInitial: 16, PVPerLevel: 3,
		SANInitial: 16, SANPerLevel: 4,
		PEInitial: 2, PEPerLevel: 3,
	},
	ordem.ClassOcultista: {
		PVInitial: 12, PVPerLevel: 2,
		SANInitial: 20, SANPerLevel: 5,
		PEInitial: 4, PEPerLevel: 4,
	},
}

var trainingBonus = map[ordem.SkillTraining]int{
	ordem.TrainingUntrained: 0,
	ordem.TrainingTrained:   5,
	ordem.TrainingCompetent: 10,
	ordem.TrainingExpert:    15,
}

// peTurnLimits is indexed by NEX band (nex / 10) up to NEX 89
var peTurnLimits = [...]int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// ClassConfigFor returns the resource constants of a class
func ClassConfigFor(class ordem.Class) (ClassConfig, error) {
	cfg, ok := classConfigs[class]
	if !ok {
		return ClassConfig{}, errors.NotFoundf("unknown class: %s", class)
	}
	return cfg, nil
}

// ValidateNEX returns a range error when nex is outside [0, 99]
func ValidateNEX(nex int) error {
	if nex < 0 || nex > ordem.MaxNEX {
		return errors.OutOfRangef("NEX must be between 0 and %d, got %d", ordem.MaxNEX, nex).
			WithRule(errors.RuleExposureRange).
			WithMeta("nex", nex)
	}
	return nil
}

// Level returns nex / 5
func Level(nex int) (int, error) {
	if err := ValidateNEX(nex); err != nil {
		return 0, err
	}
	return nex / nexPerLevel, nil
}

func configAndLevel(class ordem.Class, nex int) (ClassConfig, int, error) {
	cfg, err := ClassConfigFor(class)
	if err != nil {
		return ClassConfig{}, 0, err
	}
	level, err := Level(nex)
	if err != nil {
		return ClassConfig{}, 0, err
	}
	return cfg, level, nil
}

// MaxPV returns pvInitial + vig + (pvPerLevel + vig) * level
func MaxPV(class ordem.Class, vigor, nex int) (int, error) {
	cfg, level, err := configAndLevel(class, nex)
	if err != nil {
		return 0, err
	}
	return cfg.PVInitial + vigor + (cfg.PVPerLevel+vigor)*level, nil
}

// MaxSAN returns sanInitial + sanPerLevel * level
func MaxSAN(class ordem.Class, nex int) (int, error) {
	cfg, level, err := configAndLevel(class, nex)
	if err != nil {
		return 0, err
	}
	return cfg.SANInitial + cfg.SANPerLevel*level, nil
}

// MaxPE returns peInitial + pre + (pePerLevel + pre) * level
func MaxPE(class ordem.Class, presence, nex int) (int, error) {
	cfg, level, err := configAndLevel(class, nex)
	if err != nil {
		return 0, err
	}
	return cfg.PEInitial + presence + (cfg.PEPerLevel+presence)*level, nil
}

// Maxima holds the three resource maxima of a character
type Maxima struct {
	PV  int
	SAN int
	PE  int
}

// MaximaFor computes every resource maximum at once. Permanent SAN loss is
// subtracted from the class maximum.
func MaximaFor(class ordem.Class, attrs ordem.Attributes, nex, maxSANLoss int) (*Maxima, error) {
	pv, err := MaxPV(class, attrs.Vigor, nex)
	if err != nil {
		return nil, err
	}
	san, err := MaxSAN(class, nex)
	if err != nil {
		return nil, err
	}
	pe, err := MaxPE(class, attrs.Presence, nex)
	if err != nil {
		return nil, err
	}

	san -= maxSANLoss
	if san < 0 {
		san = 0
	}

	return &Maxima{PV: pv, SAN: san, PE: pe}, nil
}

// Defense returns 10 + agility + equipment bonus
func Defense(agility, equipmentBonus int) int {
	return BaseDefense + agility + equipmentBonus
}

// SkillBonus returns the flat bonus granted by a training degree. Unknown
// degrees grant nothing.
func SkillBonus(training ordem.SkillTraining) int {
	return trainingBonus[training]
}

// CanUseSkillTraining reports whether a training degree is legal at a NEX
func CanUseSkillTraining(training ordem.SkillTraining, nex int) bool {
	switch training {
	case ordem.TrainingUntrained, ordem.TrainingTrained:
		return true
	case ordem.TrainingCompetent:
		return nex >= competentMinNEX
	case ordem.TrainingExpert:
		return nex >= expertMinNEX
	default:
		return false
	}
}

// PERecoveryPerRest returns the PE recovered by one rest: level + 1
func PERecoveryPerRest(nex int) (int, error) {
	level, err := Level(nex)
	if err != nil {
		return 0, err
	}
	return level + 1, nil
}

// PETurnLimit returns the most PE a character may spend in a single turn
func PETurnLimit(nex int) (int, error) {
	if err := ValidateNEX(nex); err != nil {
		return 0, err
	}

	switch {
	case nex < 90:
		return peTurnLimits[nex/10], nil
	case nex < 95:
		return 10, nil
	case nex == ordem.MaxNEX:
		return 20, nil
	default:
		return 10 + 2*((nex-95)/5), nil
	}
}

// ValidateTurnSpend returns a rule violation when spending cost PE in one
// turn exceeds the NEX limit
func ValidateTurnSpend(nex, cost int) error {
	limit, err := PETurnLimit(nex)
	if err != nil {
		return err
	}
	if cost > limit {
		return errors.RuleViolationf(errors.RulePETurnLimit,
			"spending %d PE exceeds the turn limit of %d at NEX %d", cost, limit, nex).
			WithMeta("cost", cost).
			WithMeta("limit", limit)
	}
	return nil
}

// IsInjured reports whether PV is at or below half the maximum
func IsInjured(pv, maxPV int) bool {
	return 2*pv <= maxPV
}

// IsDying reports whether PV has dropped to zero
func IsDying(pv int) bool {
	return pv <= 0
}

// IsInsane reports whether SAN has dropped to zero
func IsInsane(san int) bool {
	return san <= 0
}

// IsOverwhelmed reports whether SAN is at or below a quarter of the maximum.
// The insanity timer runs while this holds.
func IsOverwhelmed(san, maxSAN int) bool {
	return 4*san <= maxSAN
}

// Clamp bounds a current resource value to [0, max]
func Clamp(current, maxValue int) int {
	if current > maxValue {
		current = maxValue
	}
	if current < 0 {
		return 0
	}
	return current
}
