package rules

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/engine/ritual"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	ritualrepo "github.com/KirkDiggler/ordem-api/internal/repositories/ritual"
)

// ListRituals returns the catalog, optionally filtered by circle and element
func (o *Orchestrator) ListRituals(
	ctx context.Context, input *ListRitualsInput,
) (_ *ListRitualsOutput, err error) {
	defer o.observe(ctx, "ListRituals", time.Now(), &err)

	if input == nil {
		input = &ListRitualsInput{}
	}

	out, err := o.ritualRepo.List(ctx, ritualrepo.ListInput{
		Circle:  input.Circle,
		Element: input.Element,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rituals")
	}

	return &ListRitualsOutput{Rituals: out.Rituals}, nil
}

// ConjureRitual casts a catalog ritual. A rejected cast changes nothing; a
// resolved cast persists the PE spent and any sanity lost.
func (o *Orchestrator) ConjureRitual(
	ctx context.Context, input *ConjureRitualInput,
) (_ *ConjureRitualOutput, err error) {
	defer o.observe(ctx, "ConjureRitual", time.Now(), &err)

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RitualID == "" {
		return nil, errors.InvalidArgument("ritual ID is required")
	}
	if input.PESpentThisTurn < 0 {
		return nil, errors.InvalidArgument("PE spent this turn cannot be negative")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	bundle := conditions.Penalties(c.Conditions)
	if err := requireAble(c, bundle); err != nil {
		return nil, err
	}

	found, err := o.ritualRepo.Get(ctx, ritualrepo.GetInput{ID: input.RitualID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ritual %s", input.RitualID)
	}

	mods, err := modifiersFor(c, bundle, ordem.SkillOccultism)
	if err != nil {
		return nil, err
	}

	caster := ritual.CasterOf(c, mods.skillBonus)
	caster.Intellect = mods.attributeValue

	result, err := ritual.Conjure(o.roller, &ritual.CastInput{
		Caster:          caster,
		Ritual:          found.Ritual,
		Mode:            input.Mode,
		PESpentThisTurn: input.PESpentThisTurn,
		DiceAdjustment:  mods.diceAdjustment + input.DiceAdjustment,
	})
	if err != nil {
		return nil, err
	}

	c.PE = result.PEAfter
	c.SAN = result.SANAfter
	c.MaxSAN = result.MaxSANAfter
	c.MaxSANLoss += result.MaxSANLost
	c.SAN = resources.Clamp(c.SAN, c.MaxSAN)
	o.syncThresholds(ctx, c)

	saved, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = ordem.CastModeNormal
	}
	outcome := "success"
	switch {
	case result.CriticalFailure:
		outcome = "critical_failure"
	case !result.Success:
		outcome = "failure"
	}
	o.metrics.RecordRitualCast(ctx, string(mode), outcome)

	slog.Info("ritual conjured",
		"character_id", saved.ID,
		"ritual_id", found.Ritual.ID,
		"mode", mode,
		"cost", result.Cost,
		"outcome", outcome,
		"san_lost", result.SANLost)

	return &ConjureRitualOutput{
		Character: saved,
		Ritual:    found.Ritual,
		Result:    result,
	}, nil
}
