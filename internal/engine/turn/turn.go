// Package turn advances the automatic per-turn effects of active conditions:
// bleeding damage, the dying countdown and the insanity timer.
package turn

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ordem-api/internal/engine/conditions"
	"github.com/KirkDiggler/ordem-api/internal/engine/resources"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
)

const (
	// BleedingDie is the die rolled for bleeding damage each turn
	BleedingDie = 6

	// DyingRounds is how many rounds a dying character lasts
	DyingRounds = 3

	// NoChanges is reported when no effect fired
	NoChanges = "no changes"
)

// insanityReports are the insanity timer values worth reporting
var insanityReports = map[int]bool{1: true, 5: true, 10: true}

// Snapshot is the slice of character state the processor reads and writes
type Snapshot struct {
	PV         int                    `json:"pv"`
	MaxPV      int                    `json:"max_pv"`
	SAN        int                    `json:"san"`
	MaxSAN     int                    `json:"max_san"`
	Conditions []ordem.Condition      `json:"conditions"`
	Timers     []ordem.ConditionTimer `json:"timers"`
}

// SnapshotOf copies the per-turn state out of a character
func SnapshotOf(c *ordem.Character) Snapshot {
	return Snapshot{
		PV:         c.PV,
		MaxPV:      c.MaxPV,
		SAN:        c.SAN,
		MaxSAN:     c.MaxSAN,
		Conditions: append([]ordem.Condition(nil), c.Conditions...),
		Timers:     append([]ordem.ConditionTimer(nil), c.Timers...),
	}
}

// Result is the outcome of processing one turn
type Result struct {
	Snapshot *Snapshot `json:"snapshot"`
	Changes  []string  `json:"changes"`
	IsDead   bool      `json:"is_dead"`
}

// Timer returns the rounds counted for a timer, and whether it is running
func (s *Snapshot) Timer(condition ordem.Condition) (int, bool) {
	return ordem.TimerRounds(s.Timers, condition)
}

// Process runs one turn of automatic condition effects against a copy of the
// snapshot. Dead characters are returned untouched.
func Process(roller dice.Roller, in Snapshot) (*Result, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	s := in
	s.Conditions = append([]ordem.Condition(nil), in.Conditions...)
	s.Timers = append([]ordem.ConditionTimer(nil), in.Timers...)

	if ordem.ContainsCondition(s.Conditions, ordem.ConditionDead) {
		return &Result{Snapshot: &s, IsDead: true}, nil
	}

	var changes []string
	dyingAtStart := ordem.ContainsCondition(s.Conditions, ordem.ConditionDying)

	if ordem.ContainsCondition(s.Conditions, ordem.ConditionBleeding) {
		damage, err := roller.Roll(BleedingDie)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll bleeding damage")
		}

		s.PV -= damage
		if s.PV < 0 {
			s.PV = 0
		}
		changes = append(changes, fmt.Sprintf("bleeding: lost %d PV (%d/%d)", damage, s.PV, s.MaxPV))

		if resources.IsDying(s.PV) && !ordem.ContainsCondition(s.Conditions, ordem.ConditionDying) {
			t, err := conditions.Apply(ordem.ConditionDying, s.Conditions)
			if err != nil {
				return nil, err
			}
			s.Conditions = t.Conditions
			s.Timers = ordem.SetTimer(s.Timers, ordem.ConditionDying, 0)
			changes = append(changes, "bleeding: PV reached 0, now dying")
		}
	}

	isDead := false
	if dyingAtStart {
		rounds, _ := s.Timer(ordem.ConditionDying)
		rounds++

		if rounds >= DyingRounds {
			for _, c := range []ordem.Condition{
				ordem.ConditionDying,
				ordem.ConditionUnconscious,
				ordem.ConditionBleeding,
			} {
				s.Conditions = conditions.Remove(c, s.Conditions)
			}
			s.Conditions = append(s.Conditions, ordem.ConditionDead)
			s.Timers = ordem.DropTimer(s.Timers, ordem.ConditionDying)
			isDead = true
			changes = append(changes, fmt.Sprintf("dying: %d/%d, character died", rounds, DyingRounds))
		} else {
			s.Timers = ordem.SetTimer(s.Timers, ordem.ConditionDying, rounds)
			changes = append(changes, fmt.Sprintf("dying: %d/%d", rounds, DyingRounds))
		}
	}

	if !isDead {
		if change := advanceInsanity(&s); change != "" {
			changes = append(changes, change)
		}
	}

	if len(changes) == 0 {
		changes = []string{NoChanges}
	}

	return &Result{
		Snapshot: &s,
		Changes:  changes,
		IsDead:   isDead,
	}, nil
}

// advanceInsanity counts rounds spent at a quarter of SAN or less and clears
// the timer once SAN recovers
func advanceInsanity(s *Snapshot) string {
	low := resources.IsInsane(s.SAN) || (s.MaxSAN > 0 && resources.IsOverwhelmed(s.SAN, s.MaxSAN))
	rounds, running := s.Timer(ordem.TimerInsanity)

	if !low {
		if running {
			s.Timers = ordem.DropTimer(s.Timers, ordem.TimerInsanity)
			return "insanity: sanity recovered, timer cleared"
		}
		return ""
	}

	rounds++
	s.Timers = ordem.SetTimer(s.Timers, ordem.TimerInsanity, rounds)
	if insanityReports[rounds] {
		return fmt.Sprintf("insanity: %d rounds at low sanity", rounds)
	}
	return ""
}
