// Package match implements the hand matcher: evaluating one dealt 13-card
// hand against one subprofile's standard, random-suit, partner-contingent,
// opponent-contingent, and exclusion constraints.
package match

import (
	"github.com/lox/bridgedeal/deck"
)

// SuitAnalysis is the per-suit breakdown of one hand, computed once per
// match attempt.
type SuitAnalysis struct {
	CardsBySuit map[deck.Suit][]deck.Card
	HCPBySuit   map[deck.Suit]int
	TotalHCP    int
}

// AnalyzeHand computes a SuitAnalysis for a 13-card hand. O(13).
func AnalyzeHand(hand []deck.Card) SuitAnalysis {
	analysis := SuitAnalysis{
		CardsBySuit: map[deck.Suit][]deck.Card{
			deck.Spades: nil, deck.Hearts: nil, deck.Diamonds: nil, deck.Clubs: nil,
		},
		HCPBySuit: map[deck.Suit]int{
			deck.Spades: 0, deck.Hearts: 0, deck.Diamonds: 0, deck.Clubs: 0,
		},
	}
	for _, c := range hand {
		analysis.CardsBySuit[c.Suit] = append(analysis.CardsBySuit[c.Suit], c)
		v := c.HCP()
		analysis.HCPBySuit[c.Suit] += v
		analysis.TotalHCP += v
	}
	return analysis
}

// SuitCount returns the number of cards held in suit.
func (a SuitAnalysis) SuitCount(s deck.Suit) int {
	return len(a.CardsBySuit[s])
}

// ShapeLengths returns the per-suit card counts in S,H,D,C order, the
// canonical "shape" of the hand.
func (a SuitAnalysis) ShapeLengths() [4]int {
	return [4]int{
		a.SuitCount(deck.Spades),
		a.SuitCount(deck.Hearts),
		a.SuitCount(deck.Diamonds),
		a.SuitCount(deck.Clubs),
	}
}
