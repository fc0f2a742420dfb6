package profile

import (
	"fmt"

	"github.com/lox/bridgedeal/deck"
)

// ExtraConstraint is the tagged union of the at-most-one extra constraint a
// subprofile may carry beyond its StandardConstraints: none, Random Suit,
// Partner-Contingent, or Opponent-Contingent. The unexported method closes
// the type set to this package's three implementations, mirroring a sum
// type in Go.
type ExtraConstraint interface {
	isExtraConstraint()
}

// NoExtraConstraint is the zero value of ExtraConstraint: a standard-only
// subprofile.
type NoExtraConstraint struct{}

func (NoExtraConstraint) isExtraConstraint() {}

// SuitPairOverride replaces the default per-suit ranges when a Random Suit
// constraint's two chosen suits match an unordered pair.
type SuitPairOverride struct {
	Suits       [2]deck.Suit
	FirstRange  SuitRange
	SecondRange SuitRange
}

// RandomSuitConstraint lets the generator choose RequiredSuitsCount suits
// from AllowedSuits and apply SuitRanges (or a PairOverride) to them.
type RandomSuitConstraint struct {
	AllowedSuits       []deck.Suit
	RequiredSuitsCount int
	SuitRanges         []SuitRange
	PairOverrides      []SuitPairOverride
}

func (RandomSuitConstraint) isExtraConstraint() {}

// Validate checks RS field relationships: required count within bounds,
// enough ranges supplied, each range internally consistent.
func (rs RandomSuitConstraint) Validate() error {
	if rs.RequiredSuitsCount != 1 && rs.RequiredSuitsCount != 2 {
		return fmt.Errorf("random suit: required_suits_count must be 1 or 2, got %d", rs.RequiredSuitsCount)
	}
	if rs.RequiredSuitsCount > len(rs.AllowedSuits) {
		return fmt.Errorf("random suit: required_suits_count %d > len(allowed_suits) %d", rs.RequiredSuitsCount, len(rs.AllowedSuits))
	}
	if len(rs.SuitRanges) < rs.RequiredSuitsCount {
		return fmt.Errorf("random suit: %d suit_ranges supplied, need at least %d", len(rs.SuitRanges), rs.RequiredSuitsCount)
	}
	for i, sr := range rs.SuitRanges {
		if err := sr.Validate(); err != nil {
			return fmt.Errorf("random suit: suit_ranges[%d]: %w", i, err)
		}
	}
	for i, po := range rs.PairOverrides {
		if err := po.FirstRange.Validate(); err != nil {
			return fmt.Errorf("random suit: pair_overrides[%d].first_range: %w", i, err)
		}
		if err := po.SecondRange.Validate(); err != nil {
			return fmt.Errorf("random suit: pair_overrides[%d].second_range: %w", i, err)
		}
	}
	return nil
}

// OverrideFor returns the pair override matching the unordered pair {a, b},
// if any.
func (rs RandomSuitConstraint) OverrideFor(a, b deck.Suit) (SuitPairOverride, bool) {
	for _, po := range rs.PairOverrides {
		if (po.Suits[0] == a && po.Suits[1] == b) || (po.Suits[0] == b && po.Suits[1] == a) {
			return po, true
		}
	}
	return SuitPairOverride{}, false
}

// PartnerContingent constrains this seat based on the partner's RS choice.
type PartnerContingent struct {
	PartnerSeat      deck.Seat
	SuitRange        SuitRange
	UseNonChosenSuit bool
}

func (PartnerContingent) isExtraConstraint() {}

// Validate checks the embedded suit range.
func (pc PartnerContingent) Validate() error {
	if err := pc.SuitRange.Validate(); err != nil {
		return fmt.Errorf("partner contingent: %w", err)
	}
	return nil
}

// OpponentContingent constrains this seat based on an opponent's RS choice.
type OpponentContingent struct {
	OpponentSeat     deck.Seat
	SuitRange        SuitRange
	UseNonChosenSuit bool
}

func (OpponentContingent) isExtraConstraint() {}

// Validate checks the embedded suit range.
func (oc OpponentContingent) Validate() error {
	if err := oc.SuitRange.Validate(); err != nil {
		return fmt.Errorf("opponent contingent: %w", err)
	}
	return nil
}
