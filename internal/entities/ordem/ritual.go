package ordem

// RitualCost is the PE cost of a ritual per cast mode
type RitualCost struct {
	BasePE          int `json:"base_pe" yaml:"base_pe"`
	DiscipleExtraPE int `json:"disciple_extra_pe" yaml:"disciple_extra_pe"`
	TrueExtraPE     int `json:"true_extra_pe" yaml:"true_extra_pe"`
}

// Ritual is a single ritual definition
type Ritual struct {
	ID      string     `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	Circle  int        `json:"circle" yaml:"circle"`
	Element Element    `json:"element" yaml:"element"`
	Cost    RitualCost `json:"cost" yaml:"cost"`

	// AllowedAffinities extends the affinities that may cast the ritual in
	// its true form beyond the ritual's own element
	AllowedAffinities []Element `json:"allowed_affinities,omitempty" yaml:"allowed_affinities,omitempty"`
}

// AcceptsAffinity reports whether a caster with the given affinity may use
// the ritual's true form
func (r *Ritual) AcceptsAffinity(affinity Element) bool {
	if affinity == "" {
		return false
	}
	if affinity == r.Element {
		return true
	}
	for _, allowed := range r.AllowedAffinities {
		if allowed == affinity {
			return true
		}
	}
	return false
}
