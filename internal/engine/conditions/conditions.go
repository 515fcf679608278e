// Package conditions is the status condition state machine. It applies and
// removes condition tags against a current set, runs escalations and derived
// additions from static tables, and folds the active set into a penalty
// bundle.
//
// The set passed in is never modified; every call returns a new slice.
package conditions

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

// Transition is the result of changing a condition set
type Transition struct {
	Conditions []ordem.Condition `json:"conditions"`
	Message    string            `json:"message"`

	// Added lists conditions added as a consequence of the change, beyond the
	// condition that was asked for
	Added []ordem.Condition `json:"added,omitempty"`

	// Removed lists conditions taken away as a consequence of the change
	Removed []ordem.Condition `json:"removed,omitempty"`
}

// Changed reports whether the transition altered the set
func (t *Transition) Changed() bool {
	return len(t.Added) > 0 || len(t.Removed) > 0
}

// Apply adds a condition to the current set. Re-applying a condition with an
// escalation replaces it with the escalated form. Re-applying any other
// active condition is a no-op.
func Apply(condition ordem.Condition, current []ordem.Condition) (*Transition, error) {
	if !IsKnown(condition) {
		return nil, errors.NotFoundf("unknown condition: %s", condition)
	}

	set := clone(current)

	if ordem.ContainsCondition(set, condition) {
		escalated, ok := escalations[condition]
		if !ok {
			return &Transition{
				Conditions: set,
				Message:    fmt.Sprintf("%s is already active", condition),
			}, nil
		}

		set = without(set, condition)
		t := &Transition{
			Removed: []ordem.Condition{condition},
		}
		if !ordem.ContainsCondition(set, escalated) {
			set = append(set, escalated)
			t.Added = append(t.Added, escalated)
		}
		set, t.Added = addDerived(set, escalated, t.Added)
		t.Conditions = set
		t.Message = fmt.Sprintf("%s escalated to %s: %s", condition, escalated, Describe(escalated))
		return t, nil
	}

	set = append(set, condition)
	t := &Transition{}
	set, t.Added = addDerived(set, condition, nil)
	t.Conditions = set

	msg := fmt.Sprintf("%s applied: %s", condition, Describe(condition))
	if len(t.Added) > 0 {
		msg = fmt.Sprintf("%s (also %s)", msg, joinConditions(t.Added))
	}
	t.Message = msg

	return t, nil
}

// Remove returns the set without the condition. Conditions that were added
// alongside it stay active.
func Remove(condition ordem.Condition, current []ordem.Condition) []ordem.Condition {
	return without(clone(current), condition)
}

// Penalties folds every active condition into a fresh penalty bundle.
// Overlapping contributions are summed and unknown tags are skipped.
func Penalties(current []ordem.Condition) *ordem.PenaltyBundle {
	bundle := ordem.NewPenaltyBundle()
	seen := make(map[ordem.Condition]bool, len(current))

	for _, condition := range current {
		if seen[condition] {
			continue
		}
		seen[condition] = true

		e, ok := effects[condition]
		if !ok {
			continue
		}

		bundle.DefenseDelta += e.defenseDelta
		bundle.DicePenalty += e.dicePenalty
		bundle.DefenseBaseOnly = bundle.DefenseBaseOnly || e.defenseBaseOnly
		bundle.CannotAct = bundle.CannotAct || e.cannotAct
		bundle.CannotReact = bundle.CannotReact || e.cannotReact
		bundle.CannotMove = bundle.CannotMove || e.cannotMove
		bundle.OneActionPerTurn = bundle.OneActionPerTurn || e.oneActionPerTurn
		bundle.CannotApproach = bundle.CannotApproach || e.cannotApproach
		bundle.MustFlee = bundle.MustFlee || e.mustFlee

		for attr, delta := range e.attributes {
			bundle.AttributePenalties[attr] += delta
		}
		for skill, delta := range e.skills {
			bundle.SkillPenalties[skill] += delta
		}
	}

	return bundle
}

// SyncThresholds adds or removes INJURED, OVERWHELMED and INSANE so they
// match the current PV and SAN. DYING is left to Apply since it cascades.
func SyncThresholds(current []ordem.Condition, pv, maxPV, san, maxSAN int) *Transition {
	set := clone(current)
	t := &Transition{}

	track := func(condition ordem.Condition, active bool) {
		has := ordem.ContainsCondition(set, condition)
		switch {
		case active && !has:
			set = append(set, condition)
			t.Added = append(t.Added, condition)
		case !active && has:
			set = without(set, condition)
			t.Removed = append(t.Removed, condition)
		}
	}

	track(ordem.ConditionInjured, maxPV > 0 && resources.IsInjured(pv, maxPV))
	track(ordem.ConditionOverwhelmed, maxSAN > 0 && resources.IsOverwhelmed(san, maxSAN))
	track(ordem.ConditionInsane, resources.IsInsane(san))

	t.Conditions = set
	if !t.Changed() {
		t.Message = "no threshold changes"
		return t
	}

	var parts []string
	if len(t.Added) > 0 {
		parts = append(parts, "added "+joinConditions(t.Added))
	}
	if len(t.Removed) > 0 {
		parts = append(parts, "removed "+joinConditions(t.Removed))
	}
	t.Message = strings.Join(parts, "; ")

	return t
}

func addDerived(set []ordem.Condition, condition ordem.Condition, added []ordem.Condition) ([]ordem.Condition, []ordem.Condition) {
	for _, d := range derived[condition] {
		if ordem.ContainsCondition(set, d) {
			continue
		}
		set = append(set, d)
		added = append(added, d)
	}
	return set, added
}

func clone(set []ordem.Condition) []ordem.Condition {
	out := make([]ordem.Condition, 0, len(set)+3)
	for _, c := range set {
		if !ordem.ContainsCondition(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func without(set []ordem.Condition, condition ordem.Condition) []ordem.Condition {
	out := set[:0]
	for _, c := range set {
		if c != condition {
			out = append(out, c)
		}
	}
	return out
}

func joinConditions(set []ordem.Condition) string {
	names := make([]string, len(set))
	for i, c := range set {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
