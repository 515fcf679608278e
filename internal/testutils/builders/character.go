// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *ordem.Character
}

// NewCharacterBuilder starts from a healthy NEX 5 combatant with a legal
// attribute spread and full resources
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Now().Unix()
	return &CharacterBuilder{
		character: &ordem.Character{
			ID:       "char-test-123",
			PlayerID: "player-test-123",
			Name:     "Arnaldo Fritz",
			Class:    ordem.ClassCombatente,
			NEX:      5,
			Attributes: ordem.Attributes{
				Agility:   2,
				Strength:  2,
				Intellect: 1,
				Presence:  2,
				Vigor:     2,
			},
			Skills: map[ordem.Skill]ordem.SkillTraining{
				ordem.SkillFighting: ordem.TrainingTrained,
			},
			PV:        28,
			MaxPV:     28,
			SAN:       15,
			MaxSAN:    15,
			PE:        8,
			MaxPE:     8,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(class ordem.Class) *CharacterBuilder {
	b.character.Class = class
	return b
}

// WithNEX sets the exposure level
func (b *CharacterBuilder) WithNEX(nex int) *CharacterBuilder {
	b.character.NEX = nex
	return b
}

// WithAttributes sets all five attributes
func (b *CharacterBuilder) WithAttributes(attrs ordem.Attributes) *CharacterBuilder {
	b.character.Attributes = attrs
	return b
}

// WithSkill sets the training in a skill
func (b *CharacterBuilder) WithSkill(skill ordem.Skill, training ordem.SkillTraining) *CharacterBuilder {
	if b.character.Skills == nil {
		b.character.Skills = make(map[ordem.Skill]ordem.SkillTraining)
	}
	b.character.Skills[skill] = training
	return b
}

// WithKit marks the kit for a skill as carried
func (b *CharacterBuilder) WithKit(skill ordem.Skill) *CharacterBuilder {
	b.character.Kits = append(b.character.Kits, skill)
	return b
}

// WithAffinity sets the paranormal affinity
func (b *CharacterBuilder) WithAffinity(element ordem.Element) *CharacterBuilder {
	b.character.Affinity = element
	return b
}

// WithPV sets current and maximum PV
func (b *CharacterBuilder) WithPV(pv, maxPV int) *CharacterBuilder {
	b.character.PV, b.character.MaxPV = pv, maxPV
	return b
}

// WithSAN sets current and maximum SAN
func (b *CharacterBuilder) WithSAN(san, maxSAN int) *CharacterBuilder {
	b.character.SAN, b.character.MaxSAN = san, maxSAN
	return b
}

// WithPE sets current and maximum PE
func (b *CharacterBuilder) WithPE(pe, maxPE int) *CharacterBuilder {
	b.character.PE, b.character.MaxPE = pe, maxPE
	return b
}

// WithConditions replaces the active conditions
func (b *CharacterBuilder) WithConditions(conditions ...ordem.Condition) *CharacterBuilder {
	b.character.Conditions = conditions
	return b
}

// WithTimer adds a running condition timer
func (b *CharacterBuilder) WithTimer(condition ordem.Condition, rounds int) *CharacterBuilder {
	b.character.Timers = append(b.character.Timers, ordem.ConditionTimer{Condition: condition, Rounds: rounds})
	return b
}

// WithEquipmentDefense sets the defense bonus from equipment
func (b *CharacterBuilder) WithEquipmentDefense(bonus int) *CharacterBuilder {
	b.character.EquipmentDefense = bonus
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *ordem.Character {
	return b.character
}
