package rules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/engine/turn"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

// ApplyCondition adds a condition to a character, running escalations and
// derived additions
func (o *Orchestrator) ApplyCondition(
	ctx context.Context, input *ApplyConditionInput,
) (_ *ApplyConditionOutput, err error) {
	defer o.observe(ctx, "ApplyCondition", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Condition == "" {
		return nil, errors.InvalidArgument("condition is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if err := requireAlive(c); err != nil {
		return nil, err
	}

	before := c.Conditions
	t, err := conditions.Apply(input.Condition, c.Conditions)
	if err != nil {
		return nil, err
	}
	if !t.Changed() && ordem.ContainsCondition(before, input.Condition) {
		return &ApplyConditionOutput{Character: c, Transition: t}, nil
	}

	c.Conditions = t.Conditions
	if _, running := c.Timer(ordem.ConditionDying); c.HasCondition(ordem.ConditionDying) && !running {
		c.Timers = ordem.SetTimer(c.Timers, ordem.ConditionDying, 0)
	}

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}
	o.recordTransition(ctx, saved.ID, input.Condition, before, t)

	return &ApplyConditionOutput{Character: saved, Transition: t}, nil
}

// RemoveCondition takes a single condition off a character. Conditions that
// were derived from it stay active.
func (o *Orchestrator) RemoveCondition(
	ctx context.Context, input *RemoveConditionInput,
) (_ *RemoveConditionOutput, err error) {
	defer o.observe(ctx, "RemoveCondition", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !conditions.IsKnown(input.Condition) {
		return nil, errors.NotFoundf("unknown condition: %s", input.Condition)
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !c.HasCondition(input.Condition) {
		return &RemoveConditionOutput{Character: c}, nil
	}

	c.Conditions = conditions.Remove(input.Condition, c.Conditions)
	c.Timers = ordem.DropTimer(c.Timers, input.Condition)

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	o.metrics.RecordConditionChange(ctx, string(input.Condition), "removed")
	slog.Info("condition removed",
		"character_id", saved.ID,
		"condition", input.Condition)

	return &RemoveConditionOutput{Character: saved, Removed: true}, nil
}

// ApplyDamage subtracts PV and SAN, clamps both to their maxima and brings
// the threshold conditions in line. PV reaching 0 applies DYING; healing a
// dying character back above 0 stabilises it.
func (o *Orchestrator) ApplyDamage(
	ctx context.Context, input *ApplyDamageInput,
) (_ *ApplyDamageOutput, err error) {
	defer o.observe(ctx, "ApplyDamage", time.Now(), &err)

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

	var changes []string
	if input.PVDamage != 0 {
		c.PV = resources.Clamp(c.PV-input.PVDamage, c.MaxPV)
		changes = append(changes, fmt.Sprintf("PV %d/%d", c.PV, c.MaxPV))
	}
	if input.SANDamage != 0 {
		c.SAN = resources.Clamp(c.SAN-input.SANDamage, c.MaxSAN)
		changes = append(changes, fmt.Sprintf("SAN %d/%d", c.SAN, c.MaxSAN))
	}

	switch {
	case resources.IsDying(c.PV) && !c.HasCondition(ordem.ConditionDying):
		before := c.Conditions
		t, err := conditions.Apply(ordem.ConditionDying, c.Conditions)
		if err != nil {
			return nil, err
		}
		c.Conditions = t.Conditions
		c.Timers = ordem.SetTimer(c.Timers, ordem.ConditionDying, 0)
		o.recordTransition(ctx, c.ID, ordem.ConditionDying, before, t)
		changes = append(changes, "PV reached 0, now dying")
	case !resources.IsDying(c.PV) && c.HasCondition(ordem.ConditionDying):
		c.Conditions = conditions.Remove(ordem.ConditionDying, c.Conditions)
		c.Timers = ordem.DropTimer(c.Timers, ordem.ConditionDying)
		o.metrics.RecordConditionChange(ctx, string(ordem.ConditionDying), "removed")
		changes = append(changes, "stabilised, no longer dying")
	}

	if t := o.syncThresholds(ctx, c); t.Changed() {
		changes = append(changes, t.Message)
	}

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.Info("damage applied",
		"character_id", saved.ID,
		"pv_damage", input.PVDamage,
		"san_damage", input.SANDamage,
		"pv", saved.PV,
		"san", saved.SAN)

	return &ApplyDamageOutput{
		Character: saved,
		Changes:   changes,
		IsDying:   saved.HasCondition(ordem.ConditionDying),
	}, nil
}

// ProcessTurn runs the automatic effects of a character's conditions for one
// turn and persists the result
func (o *Orchestrator) ProcessTurn(
	ctx context.Context, input *ProcessTurnInput,
) (_ *ProcessTurnOutput, err error) {
	defer o.observe(ctx, "ProcessTurn", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if c.HasCondition(ordem.ConditionDead) {
		return &ProcessTurnOutput{Character: c, IsDead: true}, nil
	}

	result, err := turn.Process(o.roller, turn.SnapshotOf(c))
	if err != nil {
		return nil, err
	}

	snap := result.Snapshot
	c.PV, c.SAN = snap.PV, snap.SAN
	c.Conditions = snap.Conditions
	c.Timers = snap.Timers

	changes := result.Changes
	if !result.IsDead {
		if t := o.syncThresholds(ctx, c); t.Changed() {
			if len(changes) == 1 && changes[0] == turn.NoChanges {
				changes = nil
			}
			changes = append(changes, t.Message)
		}
	}

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	if result.IsDead {
		o.metrics.RecordDeath(ctx)
		slog.Info("character died", "character_id", saved.ID, "name", saved.Name)
	}
	slog.Debug("turn processed", "character_id", saved.ID, "changes", changes)

	return &ProcessTurnOutput{
		Character: saved,
		Changes:   changes,
		IsDead:    result.IsDead,
	}, nil
}
