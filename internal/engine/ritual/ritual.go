// Package ritual resolves ritual casting: the exposure and affinity gates,
// the PE cost of each cast mode, the per-turn spend ceiling and the secret
// casting test whose failure drains sanity.
//
// Conjure computes the mutation and returns it. Nothing is applied in place,
// so a rejected cast leaves the caster untouched.
package ritual

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ordem-api/internal/engine/resolve"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

const (
	// BaseDifficulty is added to the PE cost to get the casting test DT
	BaseDifficulty = 20

	// CriticalFailureFace is the kept die that turns a failed cast into a
	// critical failure
	CriticalFailureFace = 1

	minCircle = 1
	maxCircle = 4
)

// circleMinNEX is indexed by circle
var circleMinNEX = [...]int{0, 0, 25, 55, 85}

// Caster is the part of a character snapshot a cast reads
type Caster struct {
	NEX            int
	PE             int
	SAN            int
	MaxSAN         int
	Intellect      int
	OccultismBonus int
	Affinity       ordem.Element
}

// CasterOf builds a caster from a character and its Occultism bonus
func CasterOf(c *ordem.Character, occultismBonus int) Caster {
	return Caster{
		NEX:            c.NEX,
		PE:             c.PE,
		SAN:            c.SAN,
		MaxSAN:         c.MaxSAN,
		Intellect:      c.Attributes.Intellect,
		OccultismBonus: occultismBonus,
		Affinity:       c.Affinity,
	}
}

// CastInput describes a single cast
type CastInput struct {
	Caster          Caster
	Ritual          *ordem.Ritual
	Mode            ordem.CastMode
	PESpentThisTurn int
	DiceAdjustment  int
}

// CastResult is the outcome of a cast and the mutation the caller applies
type CastResult struct {
	Cost            int                 `json:"cost"`
	DT              int                 `json:"dt"`
	Roll            *resolve.RollResult `json:"roll,omitempty"`
	Success         bool                `json:"success"`
	CriticalFailure bool                `json:"critical_failure"`
	PEAfter         int                 `json:"pe_after"`
	SANAfter        int                 `json:"san_after"`
	MaxSANAfter     int                 `json:"max_san_after"`
	SANLost         int                 `json:"san_lost"`
	MaxSANLost      int                 `json:"max_san_lost"`
	Message         string              `json:"message"`
}

// RequiredNEX returns the minimum NEX to cast a ritual of the given circle
func RequiredNEX(circle int) (int, error) {
	if circle < minCircle || circle > maxCircle {
		return 0, errors.RuleViolationf(errors.RuleUnknownRitualCircle,
			"ritual circle must be between %d and %d, got %d", minCircle, maxCircle, circle)
	}
	return circleMinNEX[circle], nil
}

// Cost returns the PE cost of casting a ritual in a mode. An empty mode is
// a normal cast.
func Cost(r *ordem.Ritual, mode ordem.CastMode) (int, error) {
	switch mode {
	case ordem.CastModeNormal, "":
		return r.Cost.BasePE, nil
	case ordem.CastModeDisciple:
		return r.Cost.BasePE + r.Cost.DiscipleExtraPE, nil
	case ordem.CastModeTrue:
		return r.Cost.BasePE + r.Cost.TrueExtraPE, nil
	default:
		return 0, errors.RuleViolationf(errors.RuleUnknownCastMode, "unknown cast mode: %s", mode)
	}
}

// Validate runs the gates that precede any PE spend
func Validate(input *CastInput) error {
	if input == nil || input.Ritual == nil {
		return errors.InvalidArgument("ritual is required")
	}

	if err := resources.ValidateNEX(input.Caster.NEX); err != nil {
		return err
	}

	required, err := RequiredNEX(input.Ritual.Circle)
	if err != nil {
		return err
	}
	if input.Caster.NEX < required {
		return errors.RuleViolationf(errors.RuleCircleGate,
			"circle %d rituals require NEX %d, caster has %d", input.Ritual.Circle, required, input.Caster.NEX).
			WithMeta("ritual_id", input.Ritual.ID)
	}

	if input.Mode == ordem.CastModeTrue && !input.Ritual.AcceptsAffinity(input.Caster.Affinity) {
		return errors.RuleViolationf(errors.RuleAffinityGate,
			"true form of %s requires %s affinity", input.Ritual.Name, input.Ritual.Element).
			WithMeta("ritual_id", input.Ritual.ID).
			WithMeta("affinity", string(input.Caster.Affinity))
	}

	return nil
}

// Conjure validates and resolves a cast. Every rejection happens before the
// casting test is rolled.
func Conjure(roller dice.Roller, input *CastInput) (*CastResult, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	if err := Validate(input); err != nil {
		return nil, err
	}

	caster := input.Caster
	cost, err := Cost(input.Ritual, input.Mode)
	if err != nil {
		return nil, err
	}

	if caster.PE < cost {
		return nil, errors.RuleViolationf(errors.RuleInsufficientPE,
			"casting %s costs %d PE, caster has %d", input.Ritual.Name, cost, caster.PE).
			WithMeta("cost", cost).
			WithMeta("pe", caster.PE)
	}

	if err := resources.ValidateTurnSpend(caster.NEX, cost+input.PESpentThisTurn); err != nil {
		return nil, err
	}

	dt := BaseDifficulty + cost
	roll, err := resolve.AttributeTest(roller, caster.Intellect, caster.OccultismBonus, input.DiceAdjustment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll casting test")
	}

	result := &CastResult{
		Cost:        cost,
		DT:          dt,
		Roll:        roll,
		Success:     roll.Total >= dt,
		PEAfter:     caster.PE - cost,
		SANAfter:    caster.SAN,
		MaxSANAfter: caster.MaxSAN,
	}

	if result.Success {
		result.Message = fmt.Sprintf("%s takes effect", input.Ritual.Name)
		return result, nil
	}

	result.SANLost = cost
	result.SANAfter = max(caster.SAN-cost, 0)
	result.Message = fmt.Sprintf("%s failed: lost %d SAN", input.Ritual.Name, cost)

	if roll.IsNatural(CriticalFailureFace) {
		result.CriticalFailure = true
		result.MaxSANLost = 1
		result.MaxSANAfter = max(caster.MaxSAN-1, 0)
		result.SANAfter = min(result.SANAfter, result.MaxSANAfter)
		result.Message += " and 1 maximum SAN permanently"
	}

	return result, nil
}
