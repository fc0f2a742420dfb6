package profile

import "fmt"

// RoleUsageTag marks which bidding role a subprofile was authored for
// (surfaced to diagnostics; not consulted by the matcher).
type RoleUsageTag string

const (
	RoleOpener     RoleUsageTag = "Opener"
	RoleOvercaller RoleUsageTag = "Overcaller"
)

// Subprofile is one alternative a seat may be dealt to: its standard
// aggregate constraints, an optional extra constraint (RS/PC/OC, at most
// one), a selection weight, and role tags.
type Subprofile struct {
	Standard      StandardConstraints
	Extra         ExtraConstraint
	WeightPercent float64
	RoleUsageTags []RoleUsageTag
}

// RandomSuit returns the subprofile's RS constraint and whether it is set.
func (s Subprofile) RandomSuit() (RandomSuitConstraint, bool) {
	rs, ok := s.Extra.(RandomSuitConstraint)
	return rs, ok
}

// Partner returns the subprofile's PC constraint and whether it is set.
func (s Subprofile) Partner() (PartnerContingent, bool) {
	pc, ok := s.Extra.(PartnerContingent)
	return pc, ok
}

// Opponent returns the subprofile's OC constraint and whether it is set.
func (s Subprofile) Opponent() (OpponentContingent, bool) {
	oc, ok := s.Extra.(OpponentContingent)
	return oc, ok
}

// Validate checks the standard constraints, the extra constraint (if any),
// and the weight bound.
func (s Subprofile) Validate() error {
	if err := s.Standard.Validate(); err != nil {
		return fmt.Errorf("standard: %w", err)
	}
	if s.WeightPercent < 0 {
		return fmt.Errorf("weight_percent %.1f must be non-negative", s.WeightPercent)
	}
	switch extra := s.Extra.(type) {
	case RandomSuitConstraint:
		return extra.Validate()
	case PartnerContingent:
		return extra.Validate()
	case OpponentContingent:
		return extra.Validate()
	case NoExtraConstraint, nil:
		return nil
	default:
		return fmt.Errorf("unknown extra constraint type %T", extra)
	}
}

// SeatProfile is the ordered list of subprofiles available to one seat.
type SeatProfile struct {
	Subprofiles []Subprofile
}

// Validate checks each subprofile and the seat's weight sum, normalising a
// near-miss sum to exactly 100 in place.
func (sp *SeatProfile) Validate() error {
	if len(sp.Subprofiles) == 0 {
		return fmt.Errorf("seat profile has no subprofiles")
	}
	for i := range sp.Subprofiles {
		if err := sp.Subprofiles[i].Validate(); err != nil {
			return fmt.Errorf("subprofile[%d]: %w", i, err)
		}
	}

	sum := 0.0
	for _, s := range sp.Subprofiles {
		sum += s.WeightPercent
	}
	const tolerance = 2.0
	if sum < 100-tolerance || sum > 100+tolerance {
		return fmt.Errorf("subprofile weights sum to %.1f, want 100 +/- %.1f", sum, tolerance)
	}
	if sum != 100 {
		scale := 100 / sum
		for i := range sp.Subprofiles {
			sp.Subprofiles[i].WeightPercent *= scale
		}
	}
	return nil
}
