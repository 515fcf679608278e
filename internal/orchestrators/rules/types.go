package rules

import (
	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resolve"
	"github.com/KirkDiggler/ordem-api/internal/engine/ritual"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
)

// Sheet holds the values derived from a character snapshot
type Sheet struct {
	Level       int                  `json:"level"`
	BaseDefense int                  `json:"base_defense"`
	Defense     int                  `json:"defense"`
	Penalties   *ordem.PenaltyBundle `json:"penalties"`
	PETurnLimit int                  `json:"pe_turn_limit"`
	PERecovery  int                  `json:"pe_recovery"`
	Injured     bool                 `json:"injured"`
	Dying       bool                 `json:"dying"`
	Overwhelmed bool                 `json:"overwhelmed"`
	Insane      bool                 `json:"insane"`
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID         string
	Name             string
	Class            ordem.Class
	NEX              int
	Attributes       ordem.Attributes
	Skills           map[ordem.Skill]ordem.SkillTraining
	Affinity         ordem.Element
	Kits             []ordem.Skill
	EquipmentDefense int
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *ordem.Character
	Sheet     *Sheet
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *ordem.Character
	Sheet     *Sheet
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*ordem.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// SetNEXInput defines the request for changing a character's exposure
type SetNEXInput struct {
	CharacterID string
	NEX         int
}

// SetNEXOutput defines the response for changing exposure
type SetNEXOutput struct {
	Character   *ordem.Character
	Sheet       *Sheet
	PreviousNEX int
}

// RestInput defines the request for a rest
type RestInput struct {
	CharacterID string
}

// RestOutput defines the response for a rest
type RestOutput struct {
	Character   *ordem.Character
	PERecovered int
}

// RollSkillTestInput defines the request for a skill test.
// Difficulty 0 means the test is rolled without a DT.
type RollSkillTestInput struct {
	CharacterID    string
	Skill          ordem.Skill
	Difficulty     int
	DiceAdjustment int
	Bonus          int
}

// RollSkillTestOutput defines the response for a skill test
type RollSkillTestOutput struct {
	Skill      ordem.Skill
	Attribute  ordem.Attribute
	Roll       *resolve.RollResult
	Difficulty int
	Success    bool
}

// DamageSpec describes the weapon damage rolled when an attack hits
type DamageSpec struct {
	Formula    string
	Multiplier int
	Bonus      int
}

// AttackInput defines the request for an attack. Skill defaults to FIGHTING;
// MARKSMANSHIP attacks are ranged.
type AttackInput struct {
	CharacterID    string
	Skill          ordem.Skill
	TargetDefense  int
	ThreatRange    int
	DiceAdjustment int
	Damage         *DamageSpec
}

// AttackOutput defines the response for an attack. Damage is nil on a miss
// or when no damage was requested.
type AttackOutput struct {
	Attack *resolve.AttackResult
	Damage *resolve.DamageResult
}

// RollResistanceInput defines the request for a resistance test
type RollResistanceInput struct {
	CharacterID    string
	Attribute      ordem.Attribute
	Difficulty     int
	DiceAdjustment int
}

// RollResistanceOutput defines the response for a resistance test
type RollResistanceOutput struct {
	Result *resolve.ResistanceResult
}

// ApplyConditionInput defines the request for applying a condition
type ApplyConditionInput struct {
	CharacterID string
	Condition   ordem.Condition
}

// ApplyConditionOutput defines the response for applying a condition
type ApplyConditionOutput struct {
	Character  *ordem.Character
	Transition *conditions.Transition
}

// RemoveConditionInput defines the request for removing a condition
type RemoveConditionInput struct {
	CharacterID string
	Condition   ordem.Condition
}

// RemoveConditionOutput defines the response for removing a condition
type RemoveConditionOutput struct {
	Character *ordem.Character
	Removed   bool
}

// ApplyDamageInput defines the request for changing PV and SAN. Negative
// values heal.
type ApplyDamageInput struct {
	CharacterID string
	PVDamage    int
	SANDamage   int
}

// ApplyDamageOutput defines the response for applying damage
type ApplyDamageOutput struct {
	Character *ordem.Character
	Changes   []string
	IsDying   bool
}

// ProcessTurnInput defines the request for running a character's turn effects
type ProcessTurnInput struct {
	CharacterID string
}

// ProcessTurnOutput defines the response for a processed turn
type ProcessTurnOutput struct {
	Character *ordem.Character
	Changes   []string
	IsDead    bool
}

// ListRitualsInput defines the request for listing the ritual catalog
type ListRitualsInput struct {
	Circle  int
	Element ordem.Element
}

// ListRitualsOutput defines the response for listing rituals
type ListRitualsOutput struct {
	Rituals []*ordem.Ritual
}

// ConjureRitualInput defines the request for casting a ritual.
// PESpentThisTurn is the PE the caster already spent this turn.
type ConjureRitualInput struct {
	CharacterID     string
	RitualID        string
	Mode            ordem.CastMode
	PESpentThisTurn int
	DiceAdjustment  int
}

// ConjureRitualOutput defines the response for a cast
type ConjureRitualOutput struct {
	Character *ordem.Character
	Ritual    *ordem.Ritual
	Result    *ritual.CastResult
}
