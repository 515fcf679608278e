package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns a fixed sequence of values.
// It fails the roll once the script runs out so tests notice unexpected dice.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	pos    int

	// Requests records every (count, size) pair that was asked for
	Requests [][2]int
}

// NewScriptedRoller returns a roller that yields values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	results, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return results[0], nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Requests = append(r.Requests, [2]int{count, size})
	if r.pos+count > len(r.values) {
		return nil, fmt.Errorf("scripted roller exhausted: wanted %d values, %d left", count, len(r.values)-r.pos)
	}

	results := make([]int, count)
	copy(results, r.values[r.pos:r.pos+count])
	r.pos += count
	return results, nil
}

// Remaining returns how many scripted values have not been used
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values) - r.pos
}
