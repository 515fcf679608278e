// Package ordem holds the Ordem Paranormal entities shared by the rules
// engine and the service layer.
package ordem

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the rpg-toolkit entity type of a character
const EntityTypeCharacter = "character"

// Attributes are the five character attributes. The engine does not bound
// them; creation rules are checked separately.
type Attributes struct {
	Agility   int `json:"agility"`
	Strength  int `json:"strength"`
	Intellect int `json:"intellect"`
	Presence  int `json:"presence"`
	Vigor     int `json:"vigor"`
}

// Get returns the value of a single attribute
func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case AttributeAgility:
		return a.Agility
	case AttributeStrength:
		return a.Strength
	case AttributeIntellect:
		return a.Intellect
	case AttributePresence:
		return a.Presence
	case AttributeVigor:
		return a.Vigor
	default:
		return 0
	}
}

// Sum returns the total of all five attributes
func (a Attributes) Sum() int {
	return a.Agility + a.Strength + a.Intellect + a.Presence + a.Vigor
}

// ConditionTimer counts rounds elapsed for a condition with a multi-round effect
type ConditionTimer struct {
	Condition Condition `json:"condition"`
	Rounds    int       `json:"rounds"`
}

// Character is a full character snapshot as stored by the service layer.
// NOTE: data only. Every derived value is computed by the engine packages.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Class    Class  `json:"class"`
	NEX      int    `json:"nex"`

	Attributes Attributes              `json:"attributes"`
	Skills     map[Skill]SkillTraining `json:"skills,omitempty"`
	Affinity   Element                 `json:"affinity,omitempty"`

	// Kits lists the skills whose kit the character carries
	Kits []Skill `json:"kits,omitempty"`

	// EquipmentDefense is the defense bonus supplied by worn equipment
	EquipmentDefense int `json:"equipment_defense"`

	PV     int `json:"pv"`
	MaxPV  int `json:"max_pv"`
	SAN    int `json:"san"`
	MaxSAN int `json:"max_san"`
	PE     int `json:"pe"`
	MaxPE  int `json:"max_pe"`

	// MaxSANLoss is the permanent reduction applied to the class maximum
	MaxSANLoss int `json:"max_san_loss,omitempty"`

	Conditions []Condition      `json:"conditions,omitempty"`
	Timers     []ConditionTimer `json:"timers,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*Character)(nil)

// Training returns the character's training in a skill
func (c *Character) Training(skill Skill) SkillTraining {
	if training, ok := c.Skills[skill]; ok {
		return training
	}
	return TrainingUntrained
}

// HasKit reports whether the character carries the kit for a skill
func (c *Character) HasKit(skill Skill) bool {
	for _, k := range c.Kits {
		if k == skill {
			return true
		}
	}
	return false
}

// HasCondition reports whether a condition is active
func (c *Character) HasCondition(condition Condition) bool {
	return ContainsCondition(c.Conditions, condition)
}

// ContainsCondition reports whether a condition is in the set
func ContainsCondition(set []Condition, condition Condition) bool {
	for _, c := range set {
		if c == condition {
			return true
		}
	}
	return false
}
