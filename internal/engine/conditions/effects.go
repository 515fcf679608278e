package conditions

import (
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
)

// effect is the fixed contribution of one condition to the penalty bundle
type effect struct {
	defenseDelta     int
	defenseBaseOnly  bool
	dicePenalty      int
	cannotAct        bool
	cannotReact      bool
	cannotMove       bool
	oneActionPerTurn bool
	cannotApproach   bool
	mustFlee         bool
	attributes       map[ordem.Attribute]int
	skills           map[ordem.Skill]int
}

var effects = map[ordem.Condition]effect{
	ordem.ConditionFallen: {
		defenseDelta: -5,
		skills:       map[ordem.Skill]int{ordem.SkillFighting: -5},
	},
	ordem.ConditionUnprepared: {
		defenseDelta: -5,
		skills:       map[ordem.Skill]int{ordem.SkillReflexes: -5},
	},
	ordem.ConditionStunned: {cannotAct: true},
	ordem.ConditionShaken:  {dicePenalty: -1},
	ordem.ConditionAfraid: {
		dicePenalty:    -2,
		cannotApproach: true,
		mustFlee:       true,
	},
	ordem.ConditionBlind: {
		attributes: map[ordem.Attribute]int{
			ordem.AttributeAgility:  -2,
			ordem.AttributeStrength: -2,
		},
		skills: map[ordem.Skill]int{ordem.SkillPerception: -2},
	},
	ordem.ConditionDeaf: {
		skills: map[ordem.Skill]int{
			ordem.SkillInitiative: -5,
			ordem.SkillPerception: -2,
		},
	},
	ordem.ConditionDying:    {cannotAct: true, cannotMove: true},
	ordem.ConditionBleeding: {},
	ordem.ConditionExhausted: {
		defenseDelta: -5,
	},
	ordem.ConditionOverloaded: {
		defenseDelta:     -5,
		oneActionPerTurn: true,
	},
	ordem.ConditionWeakened: {
		attributes: map[ordem.Attribute]int{
			ordem.AttributeAgility:  -2,
			ordem.AttributeStrength: -2,
			ordem.AttributeVigor:    -2,
		},
	},
	ordem.ConditionFatigued: {
		attributes: map[ordem.Attribute]int{
			ordem.AttributeAgility:  -1,
			ordem.AttributeStrength: -1,
			ordem.AttributeVigor:    -1,
		},
	},
	ordem.ConditionSlowed:      {oneActionPerTurn: true},
	ordem.ConditionUnconscious: {cannotAct: true, cannotReact: true, cannotMove: true},
	ordem.ConditionParalyzed:   {cannotAct: true, cannotMove: true},
	ordem.ConditionImmobile:    {cannotMove: true},
	ordem.ConditionDefenseless: {defenseDelta: -10, cannotReact: true},
	ordem.ConditionGrappled:    {dicePenalty: -1, cannotMove: true},
	ordem.ConditionEntangled:   {dicePenalty: -1, oneActionPerTurn: true},
	ordem.ConditionConfused:    {oneActionPerTurn: true, cannotReact: true},
	ordem.ConditionDazzled: {
		skills: map[ordem.Skill]int{
			ordem.SkillPerception:   -2,
			ordem.SkillFighting:     -2,
			ordem.SkillMarksmanship: -2,
		},
	},
	ordem.ConditionDazed: {cannotAct: true},
	ordem.ConditionFascinated: {
		cannotAct: true,
		skills:    map[ordem.Skill]int{ordem.SkillPerception: -5},
	},
	ordem.ConditionFrustrated: {dicePenalty: -1},
	ordem.ConditionBroken: {
		attributes: map[ordem.Attribute]int{ordem.AttributePresence: -1},
	},
	ordem.ConditionNauseated: {oneActionPerTurn: true},
	ordem.ConditionSick: {
		attributes: map[ordem.Attribute]int{ordem.AttributeVigor: -1},
	},
	ordem.ConditionPoisoned:    {},
	ordem.ConditionVulnerable:  {defenseDelta: -5},
	ordem.ConditionInjured:     {},
	ordem.ConditionSurprised:   {defenseBaseOnly: true, cannotAct: true},
	ordem.ConditionPetrified:   {cannotAct: true, cannotReact: true, cannotMove: true},
	ordem.ConditionOverwhelmed: {skills: map[ordem.Skill]int{ordem.SkillWill: -5}},
	ordem.ConditionInsane:      {cannotAct: true},
	ordem.ConditionDead:        {cannotAct: true, cannotReact: true, cannotMove: true},
}

// escalations maps a condition to what it becomes when applied again
var escalations = map[ordem.Condition]ordem.Condition{
	ordem.ConditionShaken:   ordem.ConditionAfraid,
	ordem.ConditionWeakened: ordem.ConditionUnconscious,
}

// derived lists the conditions added alongside a newly applied condition
var derived = map[ordem.Condition][]ordem.Condition{
	ordem.ConditionDying:     {ordem.ConditionUnconscious, ordem.ConditionBleeding},
	ordem.ConditionStunned:   {ordem.ConditionUnprepared},
	ordem.ConditionParalyzed: {ordem.ConditionImmobile, ordem.ConditionDefenseless},
	ordem.ConditionExhausted: {ordem.ConditionWeakened, ordem.ConditionSlowed},
}

var descriptions = map[ordem.Condition]string{
	ordem.ConditionFallen:      "lying on the ground",
	ordem.ConditionUnprepared:  "caught off guard",
	ordem.ConditionStunned:     "unable to act",
	ordem.ConditionShaken:      "shaken by fear",
	ordem.ConditionAfraid:      "must flee from the source of fear",
	ordem.ConditionBlind:       "cannot see",
	ordem.ConditionDeaf:        "cannot hear",
	ordem.ConditionDying:       "bleeding out",
	ordem.ConditionBleeding:    "loses 1d6 PV every turn",
	ordem.ConditionExhausted:   "at the limit of endurance",
	ordem.ConditionOverloaded:  "carrying too much",
	ordem.ConditionWeakened:    "physically weakened",
	ordem.ConditionFatigued:    "tired",
	ordem.ConditionSlowed:      "moving slowly",
	ordem.ConditionUnconscious: "unconscious",
	ordem.ConditionParalyzed:   "cannot move a muscle",
	ordem.ConditionImmobile:    "cannot move",
	ordem.ConditionDefenseless: "cannot defend",
	ordem.ConditionGrappled:    "held in place",
	ordem.ConditionEntangled:   "tangled up",
	ordem.ConditionConfused:    "acting erratically",
	ordem.ConditionDazzled:     "vision blurred",
	ordem.ConditionDazed:       "dazed",
	ordem.ConditionFascinated:  "entranced",
	ordem.ConditionFrustrated:  "frustrated",
	ordem.ConditionBroken:      "spirit broken",
	ordem.ConditionNauseated:   "nauseated",
	ordem.ConditionSick:        "sick",
	ordem.ConditionPoisoned:    "poisoned",
	ordem.ConditionVulnerable:  "exposed to attacks",
	ordem.ConditionInjured:     "at half PV or less",
	ordem.ConditionSurprised:   "surprised",
	ordem.ConditionPetrified:   "turned to stone",
	ordem.ConditionOverwhelmed: "mind at the breaking point",
	ordem.ConditionInsane:      "lost to madness",
	ordem.ConditionDead:        "dead",
}

// IsKnown reports whether a condition tag is in the effect table
func IsKnown(condition ordem.Condition) bool {
	_, ok := effects[condition]
	return ok
}

// Describe returns a short human readable description of a condition
func Describe(condition ordem.Condition) string {
	if d, ok := descriptions[condition]; ok {
		return d
	}
	return string(condition)
}
