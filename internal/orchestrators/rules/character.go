package rules

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	characterrepo "github.com/KirkDiggler/ordem-api/internal/repositories/character"
)

// CreateCharacter validates a new character and stores it at full resources
func (o *Orchestrator) CreateCharacter(
	ctx context.Context, input *CreateCharacterInput,
) (_ *CreateCharacterOutput, err error) {
	defer o.observe(ctx, "CreateCharacter", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Affinity != "" && !input.Affinity.IsValid() {
		vb.Fieldf("affinity", "unknown element %q", input.Affinity)
	}
	for skill, training := range input.Skills {
		if _, err := resources.SkillAttribute(skill); err != nil {
			vb.Fieldf("skills", "unknown skill %q", skill)
			continue
		}
		switch training {
		case ordem.TrainingUntrained, ordem.TrainingTrained, ordem.TrainingCompetent, ordem.TrainingExpert:
		default:
			vb.Fieldf(string(skill), "unknown training %q", training)
		}
	}
	for _, kit := range input.Kits {
		if !resources.RequiresKit(kit) {
			vb.Fieldf("kits", "%s does not use a kit", kit)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := resources.ClassConfigFor(input.Class); err != nil {
		return nil, err
	}
	if err := resources.ValidateNEX(input.NEX); err != nil {
		return nil, err
	}
	if err := resources.ValidateCreationAttributes(input.Attributes); err != nil {
		return nil, err
	}
	for skill, training := range input.Skills {
		if !resources.CanUseSkillTraining(training, input.NEX) {
			return nil, errors.RuleViolationf(errors.RuleSkillTraining,
				"%s training in %s is not available at NEX %d", training, skill, input.NEX).
				WithMeta("skill", string(skill))
		}
	}

	maxima, err := resources.MaximaFor(input.Class, input.Attributes, input.NEX, 0)
	if err != nil {
		return nil, err
	}

	skills := make(map[ordem.Skill]ordem.SkillTraining, len(input.Skills))
	for skill, training := range input.Skills {
		if training != ordem.TrainingUntrained {
			skills[skill] = training
		}
	}

	c := &ordem.Character{
		ID:               o.idGen.Generate(),
		PlayerID:         input.PlayerID,
		Name:             input.Name,
		Class:            input.Class,
		NEX:              input.NEX,
		Attributes:       input.Attributes,
		Skills:           skills,
		Affinity:         input.Affinity,
		Kits:             append([]ordem.Skill(nil), input.Kits...),
		EquipmentDefense: input.EquipmentDefense,
		PV:               maxima.PV,
		MaxPV:            maxima.PV,
		SAN:              maxima.SAN,
		MaxSAN:           maxima.SAN,
		PE:               maxima.PE,
		MaxPE:            maxima.PE,
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.Info("character created",
		"character_id", out.Character.ID,
		"player_id", out.Character.PlayerID,
		"class", out.Character.Class,
		"nex", out.Character.NEX)

	sheet, err := SheetFor(out.Character)
	if err != nil {
		return nil, err
	}

	return &CreateCharacterOutput{Character: out.Character, Sheet: sheet}, nil
}

// GetCharacter returns a character with its derived sheet
func (o *Orchestrator) GetCharacter(
	ctx context.Context, input *GetCharacterInput,
) (_ *GetCharacterOutput, err error) {
	defer o.observe(ctx, "GetCharacter", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	sheet, err := SheetFor(c)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: c, Sheet: sheet}, nil
}

// ListCharacters returns every character owned by a player
func (o *Orchestrator) ListCharacters(
	ctx context.Context, input *ListCharactersInput,
) (_ *ListCharactersOutput, err error) {
	defer o.observe(ctx, "ListCharacters", time.Now(), &err)

	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for player %s", input.PlayerID)
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context, input *DeleteCharacterInput,
) (_ *DeleteCharacterOutput, err error) {
	defer o.observe(ctx, "DeleteCharacter", time.Now(), &err)

	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	slog.Info("character deleted", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

// SetNEX changes a character's exposure. Maxima are recomputed; a raised
// maximum grants its increase to the current value, and every current value
// is clamped to its new maximum.
func (o *Orchestrator) SetNEX(ctx context.Context, input *SetNEXInput) (_ *SetNEXOutput, err error) {
	defer o.observe(ctx, "SetNEX", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := resources.ValidateNEX(input.NEX); err != nil {
		return nil, err
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	maxima, err := resources.MaximaFor(c.Class, c.Attributes, input.NEX, c.MaxSANLoss)
	if err != nil {
		return nil, err
	}

	previous := c.NEX
	c.NEX = input.NEX
	c.PV = resources.Clamp(c.PV+max(maxima.PV-c.MaxPV, 0), maxima.PV)
	c.SAN = resources.Clamp(c.SAN+max(maxima.SAN-c.MaxSAN, 0), maxima.SAN)
	c.PE = resources.Clamp(c.PE+max(maxima.PE-c.MaxPE, 0), maxima.PE)
	c.MaxPV, c.MaxSAN, c.MaxPE = maxima.PV, maxima.SAN, maxima.PE
	if !c.HasCondition(ordem.ConditionDead) {
		o.syncThresholds(ctx, c)
	}

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.Info("exposure changed",
		"character_id", saved.ID,
		"previous_nex", previous,
		"nex", saved.NEX)

	sheet, err := SheetFor(saved)
	if err != nil {
		return nil, err
	}

	return &SetNEXOutput{Character: saved, Sheet: sheet, PreviousNEX: previous}, nil
}

// Rest recovers PE by the rest amount for the character's NEX
func (o *Orchestrator) Rest(ctx context.Context, input *RestInput) (_ *RestOutput, err error) {
	defer o.observe(ctx, "Rest", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if err := requireAlive(c); err != nil {
		return nil, err
	}

	recovery, err := resources.PERecoveryPerRest(c.NEX)
	if err != nil {
		return nil, err
	}

	before := c.PE
	c.PE = resources.Clamp(c.PE+recovery, c.MaxPE)

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	return &RestOutput{Character: saved, PERecovered: saved.PE - before}, nil
}

// SheetFor derives the sheet values of a character
func SheetFor(c *ordem.Character) (*Sheet, error) {
	level, err := resources.Level(c.NEX)
	if err != nil {
		return nil, err
	}
	limit, err := resources.PETurnLimit(c.NEX)
	if err != nil {
		return nil, err
	}
	recovery, err := resources.PERecoveryPerRest(c.NEX)
	if err != nil {
		return nil, err
	}

	penalties := conditions.Penalties(c.Conditions)
	base := resources.Defense(c.Attributes.Agility, c.EquipmentDefense)

	return &Sheet{
		Level:       level,
		BaseDefense: base,
		Defense:     resources.EffectiveDefense(base, penalties),
		Penalties:   penalties,
		PETurnLimit: limit,
		PERecovery:  recovery,
		Injured:     c.MaxPV > 0 && resources.IsInjured(c.PV, c.MaxPV),
		Dying:       resources.IsDying(c.PV),
		Overwhelmed: c.MaxSAN > 0 && resources.IsOverwhelmed(c.SAN, c.MaxSAN),
		Insane:      resources.IsInsane(c.SAN),
	}, nil
}
