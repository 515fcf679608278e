package v1alpha1

import (
	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resolve"
	"github.com/KirkDiggler/ordem-api/internal/engine/ritual"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
)

// CreateCharacterRequest creates a character
type CreateCharacterRequest struct {
	PlayerID         string                              `json:"player_id"`
	Name             string                              `json:"name"`
	Class            ordem.Class                         `json:"class"`
	NEX              int                                 `json:"nex"`
	Attributes       ordem.Attributes                    `json:"attributes"`
	Skills           map[ordem.Skill]ordem.SkillTraining `json:"skills,omitempty"`
	Affinity         ordem.Element                       `json:"affinity,omitempty"`
	Kits             []ordem.Skill                       `json:"kits,omitempty"`
	EquipmentDefense int                                 `json:"equipment_defense,omitempty"`
}

// CharacterResponse carries a character and its derived sheet
type CharacterResponse struct {
	Character *ordem.Character `json:"character"`
	Sheet     *rules.Sheet     `json:"sheet,omitempty"`
}

// GetCharacterRequest fetches a character
type GetCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// ListCharactersRequest lists a player's characters
type ListCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

// ListCharactersResponse lists characters
type ListCharactersResponse struct {
	Characters []*ordem.Character `json:"characters"`
}

// DeleteCharacterRequest deletes a character
type DeleteCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// DeleteCharacterResponse is empty
type DeleteCharacterResponse struct{}

// SetNEXRequest changes a character's exposure
type SetNEXRequest struct {
	CharacterID string `json:"character_id"`
	NEX         int    `json:"nex"`
}

// SetNEXResponse carries the updated character
type SetNEXResponse struct {
	Character   *ordem.Character `json:"character"`
	Sheet       *rules.Sheet     `json:"sheet"`
	PreviousNEX int              `json:"previous_nex"`
}

// RestRequest rests a character
type RestRequest struct {
	CharacterID string `json:"character_id"`
}

// RestResponse carries the rested character
type RestResponse struct {
	Character   *ordem.Character `json:"character"`
	PERecovered int              `json:"pe_recovered"`
}

// RollSkillTestRequest rolls a skill test
type RollSkillTestRequest struct {
	CharacterID    string      `json:"character_id"`
	Skill          ordem.Skill `json:"skill"`
	Difficulty     int         `json:"difficulty,omitempty"`
	DiceAdjustment int         `json:"dice_adjustment,omitempty"`
	Bonus          int         `json:"bonus,omitempty"`
}

// RollSkillTestResponse carries the test outcome
type RollSkillTestResponse struct {
	Skill      ordem.Skill         `json:"skill"`
	Attribute  ordem.Attribute     `json:"attribute"`
	Roll       *resolve.RollResult `json:"roll"`
	Difficulty int                 `json:"difficulty,omitempty"`
	Success    bool                `json:"success"`
}

// DamageSpec is the weapon damage of an attack
type DamageSpec struct {
	Formula    string `json:"formula"`
	Multiplier int    `json:"multiplier,omitempty"`
	Bonus      int    `json:"bonus,omitempty"`
}

// AttackRequest rolls an attack
type AttackRequest struct {
	CharacterID    string      `json:"character_id"`
	Skill          ordem.Skill `json:"skill,omitempty"`
	TargetDefense  int         `json:"target_defense"`
	ThreatRange    int         `json:"threat_range,omitempty"`
	DiceAdjustment int         `json:"dice_adjustment,omitempty"`
	Damage         *DamageSpec `json:"damage,omitempty"`
}

// AttackResponse carries the attack outcome
type AttackResponse struct {
	Attack *resolve.AttackResult `json:"attack"`
	Damage *resolve.DamageResult `json:"damage,omitempty"`
}

// RollResistanceRequest rolls a resistance test
type RollResistanceRequest struct {
	CharacterID    string          `json:"character_id"`
	Attribute      ordem.Attribute `json:"attribute"`
	Difficulty     int             `json:"difficulty"`
	DiceAdjustment int             `json:"dice_adjustment,omitempty"`
}

// RollResistanceResponse carries the resistance outcome
type RollResistanceResponse struct {
	Result *resolve.ResistanceResult `json:"result"`
}

// ApplyConditionRequest applies a condition
type ApplyConditionRequest struct {
	CharacterID string          `json:"character_id"`
	Condition   ordem.Condition `json:"condition"`
}

// ApplyConditionResponse carries the transition
type ApplyConditionResponse struct {
	Character  *ordem.Character       `json:"character"`
	Transition *conditions.Transition `json:"transition"`
}

// RemoveConditionRequest removes a condition
type RemoveConditionRequest struct {
	CharacterID string          `json:"character_id"`
	Condition   ordem.Condition `json:"condition"`
}

// RemoveConditionResponse carries the updated character
type RemoveConditionResponse struct {
	Character *ordem.Character `json:"character"`
	Removed   bool             `json:"removed"`
}

// ApplyDamageRequest changes PV and SAN. Negative values heal.
type ApplyDamageRequest struct {
	CharacterID string `json:"character_id"`
	PVDamage    int    `json:"pv_damage,omitempty"`
	SANDamage   int    `json:"san_damage,omitempty"`
}

// ApplyDamageResponse carries the damaged character
type ApplyDamageResponse struct {
	Character *ordem.Character `json:"character"`
	Changes   []string         `json:"changes"`
	IsDying   bool             `json:"is_dying"`
}

// ProcessTurnRequest runs a character's turn effects
type ProcessTurnRequest struct {
	CharacterID string `json:"character_id"`
}

// ProcessTurnResponse carries the turn outcome
type ProcessTurnResponse struct {
	Character *ordem.Character `json:"character"`
	Changes   []string         `json:"changes"`
	IsDead    bool             `json:"is_dead"`
}

// ListRitualsRequest lists the ritual catalog
type ListRitualsRequest struct {
	Circle  int           `json:"circle,omitempty"`
	Element ordem.Element `json:"element,omitempty"`
}

// ListRitualsResponse lists rituals
type ListRitualsResponse struct {
	Rituals []*ordem.Ritual `json:"rituals"`
}

// ConjureRitualRequest casts a ritual. RevealSecret returns the casting test
// roll and DT, which only the GM sees.
type ConjureRitualRequest struct {
	CharacterID     string         `json:"character_id"`
	RitualID        string         `json:"ritual_id"`
	Mode            ordem.CastMode `json:"mode,omitempty"`
	PESpentThisTurn int            `json:"pe_spent_this_turn,omitempty"`
	DiceAdjustment  int            `json:"dice_adjustment,omitempty"`
	RevealSecret    bool           `json:"reveal_secret,omitempty"`
}

// ConjureRitualResponse carries the cast outcome
type ConjureRitualResponse struct {
	Character *ordem.Character   `json:"character"`
	Ritual    *ordem.Ritual      `json:"ritual"`
	Result    *ritual.CastResult `json:"result"`
}
