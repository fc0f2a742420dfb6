package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// LoadHandProfile is the profile-store collaborator spec.md describes at
// the system boundary: it parses an HCL file into an in-memory
// profile.HandProfile and runs Validate before handing it back, so every
// profile the generator ever sees has already passed the invariant checks.
func LoadHandProfile(filename string) (*profile.HandProfile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw hclHandProfile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	p, err := raw.toDomain()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", filename, err)
	}
	return p, nil
}

// hclHandProfile and its children mirror profile.HandProfile's shape with
// hcl struct tags. Keeping the wire schema separate from the domain types
// means profile.HandProfile stays free of parsing concerns, the same
// separation internal/server/config.go draws between ServerConfig (wire)
// and the types the game engine actually consumes.
type hclHandProfile struct {
	ProfileName          string           `hcl:"profile_name"`
	Dealer               string           `hcl:"dealer"`
	DealingOrder         []string         `hcl:"dealing_order"`
	Tag                  string           `hcl:"tag,optional"`
	Author               string           `hcl:"author,optional"`
	Version              string           `hcl:"version,optional"`
	RotateByDefault      bool             `hcl:"rotate_by_default,optional"`
	NSRoleMode           string           `hcl:"ns_role_mode,optional"`
	EWRoleMode           string           `hcl:"ew_role_mode,optional"`
	IsInvariantsSafety   bool             `hcl:"is_invariants_safety_profile,optional"`
	UseRSWOnlyPath       bool             `hcl:"use_rsw_only_path,optional"`
	Seats                []hclSeatProfile `hcl:"seat,block"`
	SubprofileExclusions []hclExclusion   `hcl:"exclusion,block"`
}

type hclSeatProfile struct {
	Seat        string          `hcl:"seat,label"`
	Subprofiles []hclSubprofile `hcl:"subprofile,block"`
}

type hclSuitRange struct {
	MinCards int `hcl:"min_cards,optional"`
	MaxCards int `hcl:"max_cards,optional"`
	MinHCP   int `hcl:"min_hcp,optional"`
	MaxHCP   int `hcl:"max_hcp,optional"`
}

type hclSubprofile struct {
	Weight      float64        `hcl:"weight"`
	Spades      *hclSuitRange  `hcl:"spades,block"`
	Hearts      *hclSuitRange  `hcl:"hearts,block"`
	Diamonds    *hclSuitRange  `hcl:"diamonds,block"`
	Clubs       *hclSuitRange  `hcl:"clubs,block"`
	TotalMinHCP int            `hcl:"total_min_hcp,optional"`
	TotalMaxHCP int            `hcl:"total_max_hcp,optional"`
	RandomSuit  *hclRandomSuit `hcl:"random_suit,block"`
	Partner     *hclContingent `hcl:"partner_contingent,block"`
	Opponent    *hclContingent `hcl:"opponent_contingent,block"`
}

type hclRandomSuit struct {
	AllowedSuits       []string       `hcl:"allowed_suits"`
	RequiredSuitsCount int            `hcl:"required_suits_count"`
	SuitRanges         []hclSuitRange `hcl:"suit_range,block"`
}

type hclContingent struct {
	Seat             string       `hcl:"seat"`
	SuitRange        hclSuitRange `hcl:"suit_range,block"`
	UseNonChosenSuit bool         `hcl:"use_non_chosen_suit,optional"`
}

type hclExclusion struct {
	Seat            string          `hcl:"seat"`
	SubprofileIndex int             `hcl:"subprofile_index"`
	ShapePatterns   []string        `hcl:"shape_patterns,optional"`
	Clauses         []hclExclClause `hcl:"clause,block"`
}

type hclExclClause struct {
	Group    string `hcl:"group"`
	LengthEq int    `hcl:"length_eq"`
	Count    int    `hcl:"count"`
}

func parseSeat(s string) (deck.Seat, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	seat, ok := deck.ParseSeat(s[0])
	if !ok {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	return seat, nil
}

func parseSuit(s string) (deck.Suit, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid suit %q", s)
	}
	suit, ok := deck.ParseSuit(s[0])
	if !ok {
		return 0, fmt.Errorf("invalid suit %q", s)
	}
	return suit, nil
}

func parseCouplingMode(s string) profile.CouplingMode {
	switch s {
	case "north_drives":
		return profile.CouplingNorthDrives
	case "south_drives":
		return profile.CouplingSouthDrives
	default:
		return profile.CouplingDisabled
	}
}

func (sr hclSuitRange) toDomain() profile.SuitRange {
	return profile.SuitRange{MinCards: sr.MinCards, MaxCards: sr.MaxCards, MinHCP: sr.MinHCP, MaxHCP: sr.MaxHCP}
}

func rangeOrWide(sr *hclSuitRange) profile.SuitRange {
	if sr == nil {
		return profile.SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	}
	return sr.toDomain()
}

func (rs hclRandomSuit) toDomain() (profile.RandomSuitConstraint, error) {
	allowed := make([]deck.Suit, 0, len(rs.AllowedSuits))
	for _, s := range rs.AllowedSuits {
		suit, err := parseSuit(s)
		if err != nil {
			return profile.RandomSuitConstraint{}, err
		}
		allowed = append(allowed, suit)
	}
	ranges := make([]profile.SuitRange, 0, len(rs.SuitRanges))
	for _, r := range rs.SuitRanges {
		ranges = append(ranges, r.toDomain())
	}
	return profile.RandomSuitConstraint{
		AllowedSuits:       allowed,
		RequiredSuitsCount: rs.RequiredSuitsCount,
		SuitRanges:         ranges,
	}, nil
}

func (c hclContingent) toDomainPartner() (profile.PartnerContingent, error) {
	seat, err := parseSeat(c.Seat)
	if err != nil {
		return profile.PartnerContingent{}, err
	}
	return profile.PartnerContingent{PartnerSeat: seat, SuitRange: c.SuitRange.toDomain(), UseNonChosenSuit: c.UseNonChosenSuit}, nil
}

func (c hclContingent) toDomainOpponent() (profile.OpponentContingent, error) {
	seat, err := parseSeat(c.Seat)
	if err != nil {
		return profile.OpponentContingent{}, err
	}
	return profile.OpponentContingent{OpponentSeat: seat, SuitRange: c.SuitRange.toDomain(), UseNonChosenSuit: c.UseNonChosenSuit}, nil
}

func (s hclSubprofile) toDomain() (profile.Subprofile, error) {
	sub := profile.Subprofile{
		Standard: profile.StandardConstraints{
			Spades:      rangeOrWide(s.Spades),
			Hearts:      rangeOrWide(s.Hearts),
			Diamonds:    rangeOrWide(s.Diamonds),
			Clubs:       rangeOrWide(s.Clubs),
			TotalMinHCP: s.TotalMinHCP,
			TotalMaxHCP: s.TotalMaxHCP,
		},
		Extra:         profile.NoExtraConstraint{},
		WeightPercent: s.Weight,
	}

	set := 0
	if s.RandomSuit != nil {
		set++
		rs, err := s.RandomSuit.toDomain()
		if err != nil {
			return profile.Subprofile{}, err
		}
		sub.Extra = rs
	}
	if s.Partner != nil {
		set++
		pc, err := s.Partner.toDomainPartner()
		if err != nil {
			return profile.Subprofile{}, err
		}
		sub.Extra = pc
	}
	if s.Opponent != nil {
		set++
		oc, err := s.Opponent.toDomainOpponent()
		if err != nil {
			return profile.Subprofile{}, err
		}
		sub.Extra = oc
	}
	if set > 1 {
		return profile.Subprofile{}, fmt.Errorf("subprofile carries more than one of random_suit/partner_contingent/opponent_contingent")
	}

	return sub, nil
}

func (raw hclHandProfile) toDomain() (*profile.HandProfile, error) {
	dealer, err := parseSeat(raw.Dealer)
	if err != nil {
		return nil, fmt.Errorf("dealer: %w", err)
	}

	if len(raw.DealingOrder) != 4 {
		return nil, fmt.Errorf("dealing_order must list exactly 4 seats")
	}
	var order [4]deck.Seat
	for i, s := range raw.DealingOrder {
		seat, err := parseSeat(s)
		if err != nil {
			return nil, fmt.Errorf("dealing_order[%d]: %w", i, err)
		}
		order[i] = seat
	}

	p := &profile.HandProfile{
		ProfileName:               raw.ProfileName,
		Dealer:                    dealer,
		DealingOrder:              order,
		Tag:                       profile.Tag(raw.Tag),
		Author:                    raw.Author,
		Version:                   raw.Version,
		RotateByDefault:           raw.RotateByDefault,
		NSRoleMode:                parseCouplingMode(raw.NSRoleMode),
		EWRoleMode:                parseCouplingMode(raw.EWRoleMode),
		IsInvariantsSafetyProfile: raw.IsInvariantsSafety,
		UseRSWOnlyPath:            raw.UseRSWOnlyPath,
		SeatProfiles:              make(map[deck.Seat]*profile.SeatProfile, len(raw.Seats)),
	}

	for _, seatBlock := range raw.Seats {
		seat, err := parseSeat(seatBlock.Seat)
		if err != nil {
			return nil, fmt.Errorf("seat block: %w", err)
		}
		subs := make([]profile.Subprofile, 0, len(seatBlock.Subprofiles))
		for i, s := range seatBlock.Subprofiles {
			sub, err := s.toDomain()
			if err != nil {
				return nil, fmt.Errorf("seat %s subprofile[%d]: %w", seat, i, err)
			}
			subs = append(subs, sub)
		}
		p.SeatProfiles[seat] = &profile.SeatProfile{Subprofiles: subs}
	}

	for i, e := range raw.SubprofileExclusions {
		seat, err := parseSeat(e.Seat)
		if err != nil {
			return nil, fmt.Errorf("exclusion[%d]: %w", i, err)
		}
		clauses := make([]profile.ExclusionClause, 0, len(e.Clauses))
		for _, c := range e.Clauses {
			clauses = append(clauses, profile.ExclusionClause{
				Group:    profile.ExclusionGroup(c.Group),
				LengthEq: c.LengthEq,
				Count:    c.Count,
			})
		}
		p.SubprofileExclusions = append(p.SubprofileExclusions, profile.SubprofileExclusion{
			Seat:            seat,
			SubprofileIndex: e.SubprofileIndex,
			ShapePatterns:   e.ShapePatterns,
			Clauses:         clauses,
		})
	}

	return p, nil
}
