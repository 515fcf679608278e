// Package v1alpha1 handles the Ordem rules gRPC service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
)

// HandlerConfig holds dependencies for the rules handler
type HandlerConfig struct {
	RulesService rules.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.RulesService == nil {
		return errors.InvalidArgument("rules service is required")
	}
	return nil
}

// Handler implements RulesServiceServer
type Handler struct {
	rulesService rules.Service
}

var _ RulesServiceServer = (*Handler)(nil)

// NewHandler creates a new rules handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		rulesService: cfg.RulesService,
	}, nil
}

// CreateCharacter creates a character at full resources
func (h *Handler) CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*CharacterResponse, error) {
	output, err := h.rulesService.CreateCharacter(ctx, &rules.CreateCharacterInput{
		PlayerID:         req.PlayerID,
		Name:             req.Name,
		Class:            req.Class,
		NEX:              req.NEX,
		Attributes:       req.Attributes,
		Skills:           req.Skills,
		Affinity:         req.Affinity,
		Kits:             req.Kits,
		EquipmentDefense: req.EquipmentDefense,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{Character: output.Character, Sheet: output.Sheet}, nil
}

// GetCharacter returns a character and its sheet
func (h *Handler) GetCharacter(ctx context.Context, req *GetCharacterRequest) (*CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.rulesService.GetCharacter(ctx, &rules.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{Character: output.Character, Sheet: output.Sheet}, nil
}

// ListCharacters lists a player's characters
func (h *Handler) ListCharacters(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.rulesService.ListCharacters(ctx, &rules.ListCharactersInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListCharactersResponse{Characters: output.Characters}, nil
}

// DeleteCharacter deletes a character
func (h *Handler) DeleteCharacter(ctx context.Context, req *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	if _, err := h.rulesService.DeleteCharacter(ctx, &rules.DeleteCharacterInput{CharacterID: req.CharacterID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// SetNEX changes a character's exposure
func (h *Handler) SetNEX(ctx context.Context, req *SetNEXRequest) (*SetNEXResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.rulesService.SetNEX(ctx, &rules.SetNEXInput{CharacterID: req.CharacterID, NEX: req.NEX})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetNEXResponse{
		Character:   output.Character,
		Sheet:       output.Sheet,
		PreviousNEX: output.PreviousNEX,
	}, nil
}

// Rest recovers PE
func (h *Handler) Rest(ctx context.Context, req *RestRequest) (*RestResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.rulesService.Rest(ctx, &rules.RestInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RestResponse{Character: output.Character, PERecovered: output.PERecovered}, nil
}

// RollSkillTest rolls a skill test
func (h *Handler) RollSkillTest(ctx context.Context, req *RollSkillTestRequest) (*RollSkillTestResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.rulesService.RollSkillTest(ctx, &rules.RollSkillTestInput{
		CharacterID:    req.CharacterID,
		Skill:          req.Skill,
		Difficulty:     req.Difficulty,
		DiceAdjustment: req.DiceAdjustment,
		Bonus:          req.Bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollSkillTestResponse{
		Skill:      output.Skill,
		Attribute:  output.Attribute,
		Roll:       output.Roll,
		Difficulty: output.Difficulty,
		Success:    output.Success,
	}, nil
}

// Attack rolls an attack and its damage
func (h *Handler) Attack(ctx context.Context, req *AttackRequest) (*AttackResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	input := &rules.AttackInput{
		CharacterID:    req.CharacterID,
		Skill:          req.Skill,
		TargetDefense:  req.TargetDefense,
		ThreatRange:    req.ThreatRange,
		DiceAdjustment: req.DiceAdjustment,
	}
	if req.Damage != nil {
		input.Damage = &rules.DamageSpec{
			Formula:    req.Damage.Formula,
			Multiplier: req.Damage.Multiplier,
			Bonus:      req.Damage.Bonus,
		}
	}

	output, err := h.rulesService.Attack(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AttackResponse{Attack: output.Attack, Damage: output.Damage}, nil
}

// RollResistance rolls a resistance test
func (h *Handler) RollResistance(ctx context.Context, req *RollResistanceRequest) (*RollResistanceResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Attribute == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attribute is required"))
	}

	output, err := h.rulesService.RollResistance(ctx, &rules.RollResistanceInput{
		CharacterID:    req.CharacterID,
		Attribute:      req.Attribute,
		Difficulty:     req.Difficulty,
		DiceAdjustment: req.DiceAdjustment,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResistanceResponse{Result: output.Result}, nil
}

// ApplyCondition applies a condition
func (h *Handler) ApplyCondition(ctx context.Context, req *ApplyConditionRequest) (*ApplyConditionResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Condition == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("condition is required"))
	}

	output, err := h.rulesService.ApplyCondition(ctx, &rules.ApplyConditionInput{
		CharacterID: req.CharacterID,
		Condition:   req.Condition,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyConditionResponse{Character: output.Character, Transition: output.Transition}, nil
}

// RemoveCondition removes a condition
func (h *Handler) RemoveCondition(ctx context.Context, req *RemoveConditionRequest) (*RemoveConditionResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Condition == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("condition is required"))
	}

	output, err := h.rulesService.RemoveCondition(ctx, &rules.RemoveConditionInput{
		CharacterID: req.CharacterID,
		Condition:   req.Condition,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemoveConditionResponse{Character: output.Character, Removed: output.Removed}, nil
}

// ApplyDamage changes PV and SAN
func (h *Handler) ApplyDamage(ctx context.Context, req *ApplyDamageRequest) (*ApplyDamageResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.rulesService.ApplyDamage(ctx, &rules.ApplyDamageInput{
		CharacterID: req.CharacterID,
		PVDamage:    req.PVDamage,
		SANDamage:   req.SANDamage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyDamageResponse{
		Character: output.Character,
		Changes:   output.Changes,
		IsDying:   output.IsDying,
	}, nil
}

// ProcessTurn runs a character's automatic turn effects
func (h *Handler) ProcessTurn(ctx context.Context, req *ProcessTurnRequest) (*ProcessTurnResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.rulesService.ProcessTurn(ctx, &rules.ProcessTurnInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ProcessTurnResponse{
		Character: output.Character,
		Changes:   output.Changes,
		IsDead:    output.IsDead,
	}, nil
}

// ListRituals lists the ritual catalog
func (h *Handler) ListRituals(ctx context.Context, req *ListRitualsRequest) (*ListRitualsResponse, error) {
	output, err := h.rulesService.ListRituals(ctx, &rules.ListRitualsInput{
		Circle:  req.Circle,
		Element: req.Element,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListRitualsResponse{Rituals: output.Rituals}, nil
}

// ConjureRitual casts a ritual. The casting test is secret: the roll and DT
// are cleared unless the caller asks for them.
func (h *Handler) ConjureRitual(ctx context.Context, req *ConjureRitualRequest) (*ConjureRitualResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.RitualID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ritual_id is required"))
	}

	output, err := h.rulesService.ConjureRitual(ctx, &rules.ConjureRitualInput{
		CharacterID:     req.CharacterID,
		RitualID:        req.RitualID,
		Mode:            req.Mode,
		PESpentThisTurn: req.PESpentThisTurn,
		DiceAdjustment:  req.DiceAdjustment,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result := *output.Result
	if !req.RevealSecret {
		result.Roll = nil
		result.DT = 0
		result.CriticalFailure = false
	}

	return &ConjureRitualResponse{
		Character: output.Character,
		Ritual:    output.Ritual,
		Result:    &result,
	}, nil
}
