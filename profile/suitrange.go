// Package profile holds the in-memory, immutable representation of a hand
// profile: per-seat constraints, subprofiles, random-suit/partner/opponent
// contingencies, and subprofile exclusions. Profiles are constructed and
// validated once at load and never mutated afterward.
package profile

import (
	"fmt"

	"github.com/lox/bridgedeal/deck"
)

// SuitRange constrains the count and HCP of one suit in one hand.
type SuitRange struct {
	MinCards int
	MaxCards int
	MinHCP   int
	MaxHCP   int
}

// Validate reports whether the range's bounds are internally consistent.
func (sr SuitRange) Validate() error {
	if sr.MinCards > sr.MaxCards {
		return fmt.Errorf("suit range: min_cards %d > max_cards %d", sr.MinCards, sr.MaxCards)
	}
	if sr.MinHCP > sr.MaxHCP {
		return fmt.Errorf("suit range: min_hcp %d > max_hcp %d", sr.MinHCP, sr.MaxHCP)
	}
	return nil
}

// Contains reports whether a suit holding of count cards and hcp high-card
// points satisfies the range.
func (sr SuitRange) Contains(count, hcp int) bool {
	return count >= sr.MinCards && count <= sr.MaxCards && hcp >= sr.MinHCP && hcp <= sr.MaxHCP
}

// StandardConstraints is the per-hand aggregate constraint: one SuitRange
// per suit plus a total HCP band.
type StandardConstraints struct {
	Spades      SuitRange
	Hearts      SuitRange
	Diamonds    SuitRange
	Clubs       SuitRange
	TotalMinHCP int
	TotalMaxHCP int
}

// Validate checks internal consistency of every suit range and the total
// HCP band.
func (sc StandardConstraints) Validate() error {
	for _, pair := range []struct {
		name string
		sr   SuitRange
	}{
		{"spades", sc.Spades},
		{"hearts", sc.Hearts},
		{"diamonds", sc.Diamonds},
		{"clubs", sc.Clubs},
	} {
		if err := pair.sr.Validate(); err != nil {
			return fmt.Errorf("%s: %w", pair.name, err)
		}
	}
	if sc.TotalMinHCP > sc.TotalMaxHCP {
		return fmt.Errorf("total_min_hcp %d > total_max_hcp %d", sc.TotalMinHCP, sc.TotalMaxHCP)
	}
	return nil
}

// Range returns the SuitRange for the given suit.
func (sc StandardConstraints) Range(s deck.Suit) SuitRange {
	switch s {
	case deck.Spades:
		return sc.Spades
	case deck.Hearts:
		return sc.Hearts
	case deck.Diamonds:
		return sc.Diamonds
	case deck.Clubs:
		return sc.Clubs
	default:
		return SuitRange{}
	}
}

// SumMinCards returns the sum of per-suit minimum card counts, used by the
// light viability check.
func (sc StandardConstraints) SumMinCards() int {
	return sc.Spades.MinCards + sc.Hearts.MinCards + sc.Diamonds.MinCards + sc.Clubs.MinCards
}

// SumMaxCards returns the sum of per-suit maximum card counts.
func (sc StandardConstraints) SumMaxCards() int {
	return sc.Spades.MaxCards + sc.Hearts.MaxCards + sc.Diamonds.MaxCards + sc.Clubs.MaxCards
}
