package ordem

// PenaltyBundle is the folded effect of every active condition. It is
// derived on demand and never stored.
type PenaltyBundle struct {
	DefenseDelta     int  `json:"defense_delta"`
	DefenseBaseOnly  bool `json:"defense_base_only"`
	DicePenalty      int  `json:"dice_penalty"`
	CannotAct        bool `json:"cannot_act"`
	CannotReact      bool `json:"cannot_react"`
	CannotMove       bool `json:"cannot_move"`
	OneActionPerTurn bool `json:"one_action_per_turn"`
	CannotApproach   bool `json:"cannot_approach"`
	MustFlee         bool `json:"must_flee"`

	AttributePenalties map[Attribute]int `json:"attribute_penalties"`
	SkillPenalties     map[Skill]int     `json:"skill_penalties"`
}

// NewPenaltyBundle returns an empty bundle with its maps allocated
func NewPenaltyBundle() *PenaltyBundle {
	return &PenaltyBundle{
		AttributePenalties: make(map[Attribute]int),
		SkillPenalties:     make(map[Skill]int),
	}
}
