// Package rules implements the rules orchestrator. Every operation loads a
// character snapshot, runs the pure engine packages against it, clamps the
// resulting resources and persists the mutation.
package rules

//go:generate mockgen -destination=mock/mock_service.go -package=rulesmock github.com/KirkDiggler/ordem-api/internal/orchestrators/rules Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/observe"
	"github.com/KirkDiggler/ordem-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/ordem-api/internal/repositories/character"
	ritualrepo "github.com/KirkDiggler/ordem-api/internal/repositories/ritual"
)

// Service defines the rules operations exposed to the transport layer
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	SetNEX(ctx context.Context, input *SetNEXInput) (*SetNEXOutput, error)
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// Tests
	RollSkillTest(ctx context.Context, input *RollSkillTestInput) (*RollSkillTestOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	RollResistance(ctx context.Context, input *RollResistanceInput) (*RollResistanceOutput, error)

	// Conditions and resources
	ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error)
	RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error)
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	ProcessTurn(ctx context.Context, input *ProcessTurnInput) (*ProcessTurnOutput, error)

	// Rituals
	ListRituals(ctx context.Context, input *ListRitualsInput) (*ListRitualsOutput, error)
	ConjureRitual(ctx context.Context, input *ConjureRitualInput) (*ConjureRitualOutput, error)
}

// Config holds the dependencies for the rules orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	RitualRepo    ritualrepo.Repository
	DiceRoller    dice.Roller
	IDGenerator   idgen.Generator

	// Metrics is optional and defaults to the global meter provider
	Metrics *observe.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RitualRepo == nil {
		vb.RequiredField("RitualRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	characterRepo characterrepo.Repository
	ritualRepo    ritualrepo.Repository
	roller        dice.Roller
	idGen         idgen.Generator
	metrics       *observe.Metrics
}

var _ Service = (*Orchestrator)(nil)

// New creates a new rules orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observe.DefaultMetrics()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		ritualRepo:    cfg.RitualRepo,
		roller:        cfg.DiceRoller,
		idGen:         cfg.IDGenerator,
		metrics:       metrics,
	}, nil
}

// load fetches a character by id
func (o *Orchestrator) load(ctx context.Context, id string) (*ordem.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return out.Character, nil
}

// save persists a mutated character and returns the stored copy
func (o *Orchestrator) save(ctx context.Context, c *ordem.Character) (*ordem.Character, error) {
	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", c.ID)
	}
	return out.Character, nil
}

// requireAlive rejects any action by a dead character
func requireAlive(c *ordem.Character) error {
	if c.HasCondition(ordem.ConditionDead) {
		return errors.RuleViolationf(errors.RuleCharacterDead, "%s is dead", c.Name).
			WithMeta("character_id", c.ID)
	}
	return nil
}

// requireAble rejects actions by a character whose conditions forbid acting
func requireAble(c *ordem.Character, bundle *ordem.PenaltyBundle) error {
	if err := requireAlive(c); err != nil {
		return err
	}
	if bundle.CannotAct {
		return errors.RuleViolationf(errors.RuleCannotAct, "%s cannot act", c.Name).
			WithMeta("character_id", c.ID).
			WithMeta("conditions", c.Conditions)
	}
	return nil
}

// recordTransition counts and logs the outcome of applying a condition
func (o *Orchestrator) recordTransition(
	ctx context.Context, characterID string, requested ordem.Condition, before []ordem.Condition, t *conditions.Transition,
) {
	if !ordem.ContainsCondition(before, requested) && ordem.ContainsCondition(t.Conditions, requested) {
		o.metrics.RecordConditionChange(ctx, string(requested), "applied")
	}
	for _, c := range t.Removed {
		if c == requested {
			o.metrics.RecordConditionChange(ctx, string(c), "escalated")
		}
	}
	for _, c := range t.Added {
		o.metrics.RecordConditionChange(ctx, string(c), "derived")
	}

	slog.Info("condition applied",
		"character_id", characterID,
		"condition", requested,
		"added", t.Added,
		"removed", t.Removed,
		"message", t.Message)
}

// syncThresholds keeps the resource marker conditions in step with PV and SAN
func (o *Orchestrator) syncThresholds(ctx context.Context, c *ordem.Character) *conditions.Transition {
	t := conditions.SyncThresholds(c.Conditions, c.PV, c.MaxPV, c.SAN, c.MaxSAN)
	c.Conditions = t.Conditions
	for _, added := range t.Added {
		o.metrics.RecordConditionChange(ctx, string(added), "applied")
	}
	for _, removed := range t.Removed {
		o.metrics.RecordConditionChange(ctx, string(removed), "removed")
	}
	return t
}

// observe records the latency of an operation. errp points at the
// operation's named error result so it is read when the defer runs.
func (o *Orchestrator) observe(ctx context.Context, operation string, start time.Time, errp *error) {
	o.metrics.ObserveOperation(ctx, operation, start, *errp)
}
