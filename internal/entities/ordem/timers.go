package ordem

// TimerRounds returns the rounds counted by a condition's timer, and whether
// the timer is running
func TimerRounds(timers []ConditionTimer, condition Condition) (int, bool) {
	for _, t := range timers {
		if t.Condition == condition {
			return t.Rounds, true
		}
	}
	return 0, false
}

// SetTimer returns a copy of timers with the condition's timer set to rounds,
// starting it when it is not running
func SetTimer(timers []ConditionTimer, condition Condition, rounds int) []ConditionTimer {
	out := make([]ConditionTimer, 0, len(timers)+1)
	found := false
	for _, t := range timers {
		if t.Condition == condition {
			t.Rounds = rounds
			found = true
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, ConditionTimer{Condition: condition, Rounds: rounds})
	}
	return out
}

// DropTimer returns a copy of timers without the condition's timer
func DropTimer(timers []ConditionTimer, condition Condition) []ConditionTimer {
	var out []ConditionTimer
	for _, t := range timers {
		if t.Condition != condition {
			out = append(out, t)
		}
	}
	return out
}

// Timer returns the rounds counted by one of the character's timers
func (c *Character) Timer(condition Condition) (int, bool) {
	return TimerRounds(c.Timers, condition)
}
