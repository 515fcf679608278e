package ordem

// Class identifies a character class
type Class string

// Class constants
const (
	ClassCombatente   Class = "COMBATENTE"
	ClassEspecialista Class = "ESPECIALISTA"
	ClassOcultista    Class = "OCULTISTA"
)

// Attribute identifies one of the five attributes
type Attribute string

// Attribute constants
const (
	AttributeAgility   Attribute = "AGI"
	AttributeStrength  Attribute = "STR"
	AttributeIntellect Attribute = "INT"
	AttributePresence  Attribute = "PRE"
	AttributeVigor     Attribute = "VIG"
)

// AllAttributes lists the attributes in sheet order
var AllAttributes = []Attribute{
	AttributeAgility,
	AttributeStrength,
	AttributeIntellect,
	AttributePresence,
	AttributeVigor,
}

// SkillTraining is the training degree in a skill. Values are ordered.
type SkillTraining string

// Training constants
const (
	TrainingUntrained SkillTraining = "UNTRAINED"
	TrainingTrained   SkillTraining = "TRAINED"
	TrainingCompetent SkillTraining = "COMPETENT"
	TrainingExpert    SkillTraining = "EXPERT"
)

// Skill identifies a skill
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "ACROBATICS"
	SkillAnimalHandling Skill = "ANIMAL_HANDLING"
	SkillArts           Skill = "ARTS"
	SkillAthletics      Skill = "ATHLETICS"
	SkillCurrentEvents  Skill = "CURRENT_EVENTS"
	SkillSciences       Skill = "SCIENCES"
	SkillCrime          Skill = "CRIME"
	SkillDiplomacy      Skill = "DIPLOMACY"
	SkillDeception      Skill = "DECEPTION"
	SkillFortitude      Skill = "FORTITUDE"
	SkillStealth        Skill = "STEALTH"
	SkillInitiative     Skill = "INITIATIVE"
	SkillIntimidation   Skill = "INTIMIDATION"
	SkillInsight        Skill = "INSIGHT"
	SkillInvestigation  Skill = "INVESTIGATION"
	SkillFighting       Skill = "FIGHTING"
	SkillMedicine       Skill = "MEDICINE"
	SkillOccultism      Skill = "OCCULTISM"
	SkillPerception     Skill = "PERCEPTION"
	SkillPiloting       Skill = "PILOTING"
	SkillMarksmanship   Skill = "MARKSMANSHIP"
	SkillProfession     Skill = "PROFESSION"
	SkillReflexes       Skill = "REFLEXES"
	SkillReligion       Skill = "RELIGION"
	SkillSurvival       Skill = "SURVIVAL"
	SkillTactics        Skill = "TACTICS"
	SkillTechnology     Skill = "TECHNOLOGY"
	SkillWill           Skill = "WILL"
)

// Condition is a status condition tag
type Condition string

// Condition constants
const (
	ConditionFallen      Condition = "FALLEN"
	ConditionUnprepared  Condition = "UNPREPARED"
	ConditionStunned     Condition = "STUNNED"
	ConditionShaken      Condition = "SHAKEN"
	ConditionAfraid      Condition = "AFRAID"
	ConditionBlind       Condition = "BLIND"
	ConditionDeaf        Condition = "DEAF"
	ConditionDying       Condition = "DYING"
	ConditionBleeding    Condition = "BLEEDING"
	ConditionExhausted   Condition = "EXHAUSTED"
	ConditionOverloaded  Condition = "OVERLOADED"
	ConditionWeakened    Condition = "WEAKENED"
	ConditionFatigued    Condition = "FATIGUED"
	ConditionSlowed      Condition = "SLOWED"
	ConditionUnconscious Condition = "UNCONSCIOUS"
	ConditionParalyzed   Condition = "PARALYZED"
	ConditionImmobile    Condition = "IMMOBILE"
	ConditionDefenseless Condition = "DEFENSELESS"
	ConditionGrappled    Condition = "GRAPPLED"
	ConditionEntangled   Condition = "ENTANGLED"
	ConditionConfused    Condition = "CONFUSED"
	ConditionDazzled     Condition = "DAZZLED"
	ConditionDazed       Condition = "DAZED"
	ConditionFascinated  Condition = "FASCINATED"
	ConditionFrustrated  Condition = "FRUSTRATED"
	ConditionBroken      Condition = "BROKEN"
	ConditionNauseated   Condition = "NAUSEATED"
	ConditionSick        Condition = "SICK"
	ConditionPoisoned    Condition = "POISONED"
	ConditionVulnerable  Condition = "VULNERABLE"
	ConditionInjured     Condition = "INJURED"
	ConditionSurprised   Condition = "SURPRISED"
	ConditionPetrified   Condition = "PETRIFIED"
	ConditionOverwhelmed Condition = "OVERWHELMED"
	ConditionInsane      Condition = "INSANE"
	ConditionDead        Condition = "DEAD"
)

// TimerInsanity is the timer tag tracking rounds spent at low sanity. It is
// not a condition.
const TimerInsanity Condition = "INSANITY"

// Element is a paranormal element
type Element string

// Element constants
const (
	ElementBlood     Element = "BLOOD"
	ElementDeath     Element = "DEATH"
	ElementKnowledge Element = "KNOWLEDGE"
	ElementEnergy    Element = "ENERGY"
	ElementFear      Element = "FEAR"
)

// IsValid reports whether the element is one of the five elements
func (e Element) IsValid() bool {
	switch e {
	case ElementBlood, ElementDeath, ElementKnowledge, ElementEnergy, ElementFear:
		return true
	}
	return false
}

// CastMode is the mode a ritual is conjured in
type CastMode string

// Cast mode constants
const (
	CastModeNormal   CastMode = "NORMAL"
	CastModeDisciple CastMode = "DISCIPLE"
	CastModeTrue     CastMode = "TRUE"
)

// MaxNEX is the highest exposure level a character can reach
const MaxNEX = 99
