package profile

import (
	"fmt"

	"github.com/lox/bridgedeal/deck"
)

// ExclusionGroup names which suits an ExclusionClause counts over.
type ExclusionGroup string

const (
	GroupAny   ExclusionGroup = "ANY"
	GroupMajor ExclusionGroup = "MAJOR"
	GroupMinor ExclusionGroup = "MINOR"
)

// Suits returns the suits that belong to this group.
func (g ExclusionGroup) Suits() []deck.Suit {
	switch g {
	case GroupMajor:
		return []deck.Suit{deck.Spades, deck.Hearts}
	case GroupMinor:
		return []deck.Suit{deck.Diamonds, deck.Clubs}
	case GroupAny:
		return []deck.Suit{deck.Spades, deck.Hearts, deck.Diamonds, deck.Clubs}
	default:
		return nil
	}
}

// ExclusionClause requires exactly Count suits within Group to hold exactly
// LengthEq cards.
type ExclusionClause struct {
	Group    ExclusionGroup
	LengthEq int
	Count    int
}

// SubprofileExclusion rejects a matched hand for (Seat, SubprofileIndex)
// when any ShapePattern matches (4-digit S-H-D-C string, digits 0-9 plus
// the 'x' wildcard for "any length 0-9"; see ShapeDigits in package match
// for why lengths are matched as an int array rather than by string
// comparison) or when all Clauses hold simultaneously.
type SubprofileExclusion struct {
	Seat            deck.Seat
	SubprofileIndex int // 1-based, matching the profile's authoring convention
	ShapePatterns   []string
	Clauses         []ExclusionClause
}

// Validate checks that shape patterns are well-formed (4 characters, each a
// digit 0-9 or the 'x' wildcard) and clauses reference a known group.
func (e SubprofileExclusion) Validate() error {
	for _, pat := range e.ShapePatterns {
		if len(pat) != 4 {
			return fmt.Errorf("shape pattern %q must be exactly 4 characters", pat)
		}
		for _, c := range pat {
			switch {
			case c >= '0' && c <= '9':
			case c == 'x':
			default:
				return fmt.Errorf("shape pattern %q has invalid character %q", pat, c)
			}
		}
	}
	for _, cl := range e.Clauses {
		switch cl.Group {
		case GroupAny, GroupMajor, GroupMinor:
		default:
			return fmt.Errorf("exclusion clause has unknown group %q", cl.Group)
		}
	}
	if len(e.Clauses) > 2 {
		return fmt.Errorf("exclusion has %d clauses, at most 2 allowed", len(e.Clauses))
	}
	return nil
}
