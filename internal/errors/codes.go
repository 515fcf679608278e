package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Rule names attached to rule violations under the "rule" meta key
const (
	RuleDiceFormat          = "dice_format"
	RuleExposureRange       = "exposure_range"
	RuleCreationAttributes  = "creation_attributes"
	RuleSkillTraining       = "skill_training"
	RuleCircleGate          = "circle_gate"
	RuleAffinityGate        = "affinity_gate"
	RuleInsufficientPE      = "insufficient_pe"
	RulePETurnLimit         = "pe_turn_limit"
	RuleCannotAct           = "cannot_act"
	RuleCharacterDead       = "character_dead"
	RuleUnknownCastMode     = "unknown_cast_mode"
	RuleUnknownRitualCircle = "ritual_circle"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
