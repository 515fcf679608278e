package testutils

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/testutils/builders"
)

// Test fixture names
const (
	TestCharacterName = "Arnaldo Fritz"
	TestOccultistName = "Dante Ferreira"
	TestRitualID      = "decadencia"
)

// CreateTestCharacter returns a healthy combatant owned by the player
func CreateTestCharacter(playerID string) *ordem.Character {
	return builders.NewCharacterBuilder().
		WithPlayerID(playerID).
		WithName(TestCharacterName).
		Build()
}

// CreateTestOccultist returns a NEX 30 occultist with a Death affinity and
// trained Occultism
func CreateTestOccultist(playerID string) *ordem.Character {
	return builders.NewCharacterBuilder().
		WithID("char-test-occultist").
		WithPlayerID(playerID).
		WithName(TestOccultistName).
		WithClass(ordem.ClassOcultista).
		WithNEX(30).
		WithAttributes(ordem.Attributes{Agility: 1, Strength: 1, Intellect: 3, Presence: 3, Vigor: 1}).
		WithSkill(ordem.SkillOccultism, ordem.TrainingTrained).
		WithAffinity(ordem.ElementDeath).
		WithPV(31, 31).
		WithSAN(50, 50).
		WithPE(49, 49).
		Build()
}

// CreateTestRitual returns a first circle Death ritual
func CreateTestRitual() *ordem.Ritual {
	return &ordem.Ritual{
		ID:      TestRitualID,
		Name:    "Decadência",
		Circle:  1,
		Element: ordem.ElementDeath,
		Cost: ordem.RitualCost{
			BasePE:          1,
			DiscipleExtraPE: 2,
			TrueExtraPE:     5,
		},
	}
}
