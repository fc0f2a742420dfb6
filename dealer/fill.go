package dealer

import (
	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// effectiveSuitMax returns the tightest applicable max card count for suit
// in this subprofile: the standard max, intersected with the RS suit's max
// when suit was RS pre-selected for this seat.
func effectiveSuitMax(sub profile.Subprofile, suit deck.Suit, rsSuits []deck.Suit, rsRanges map[deck.Suit]profile.SuitRange) int {
	max := sub.Standard.Range(suit).MaxCards
	for _, s := range rsSuits {
		if s == suit {
			if sr, ok := rsRanges[suit]; ok && sr.MaxCards < max {
				max = sr.MaxCards
			}
		}
	}
	return max
}

// rsHCPCap returns the RS suit's HCP cap for suit, if it was RS
// pre-selected for this seat and the RS constraint caps that suit's HCP.
func rsHCPCap(suit deck.Suit, rsSuits []deck.Suit, rsRanges map[deck.Suit]profile.SuitRange) (int, bool) {
	for _, s := range rsSuits {
		if s == suit {
			if sr, ok := rsRanges[suit]; ok {
				return sr.MaxHCP, true
			}
		}
	}
	return 0, false
}

// ConstrainedFill deals the remaining deck to dealingOrder, front to back,
// topping each non-last seat up to 13 cards from the preallocated start
// while skipping any card that would push the seat's effective suit max,
// total HCP max, or an RS suit's HCP cap. Skipped cards remain in the deck
// for later seats. The last seat in dealingOrder receives whatever remains.
func ConstrainedFill(
	dealingOrder [4]deck.Seat,
	chosen map[deck.Seat]profile.Subprofile,
	rsPreSelections map[deck.Seat][]deck.Suit,
	preAlloc PreAllocation,
	d *deck.Deck,
) map[deck.Seat][]deck.Card {
	hands := make(map[deck.Seat][]deck.Card, 4)
	for seat, cards := range preAlloc.Cards {
		hands[seat] = append(hands[seat], cards...)
	}

	for i, seat := range dealingOrder {
		isLast := i == len(dealingOrder)-1
		sub, constrained := chosen[seat]

		if isLast {
			hands[seat] = append(hands[seat], d.DrainAll()...)
			continue
		}

		if !constrained {
			for len(hands[seat]) < 13 {
				c, ok := d.Deal()
				if !ok {
					break
				}
				hands[seat] = append(hands[seat], c)
			}
			continue
		}

		rsSuits := rsPreSelections[seat]
		var rsRanges map[deck.Suit]profile.SuitRange
		if rs, ok := sub.RandomSuit(); ok {
			rsRanges = resolvedRanges(rs, rsSuits)
		}

		hand := hands[seat]
		totalHCP := sumHCP(hand)
		suitCounts := countsBySuit(hand)
		suitHCP := hcpBySuit(hand)

		var skipped []deck.Card
		for len(hand) < 13 {
			c, ok := d.Deal()
			if !ok {
				break
			}

			if suitCounts[c.Suit]+1 > effectiveSuitMax(sub, c.Suit, rsSuits, rsRanges) {
				skipped = append(skipped, c)
				continue
			}
			if totalHCP+c.HCP() > sub.Standard.TotalMaxHCP {
				skipped = append(skipped, c)
				continue
			}
			if cap, ok := rsHCPCap(c.Suit, rsSuits, rsRanges); ok && suitHCP[c.Suit]+c.HCP() > cap {
				skipped = append(skipped, c)
				continue
			}

			hand = append(hand, c)
			totalHCP += c.HCP()
			suitCounts[c.Suit]++
			suitHCP[c.Suit] += c.HCP()
		}

		// Return skipped cards to the front of the deck for later seats.
		if len(skipped) > 0 {
			d.Requeue(skipped)
		}
		hands[seat] = hand
	}

	return hands
}

func countsBySuit(cards []deck.Card) map[deck.Suit]int {
	out := map[deck.Suit]int{deck.Spades: 0, deck.Hearts: 0, deck.Diamonds: 0, deck.Clubs: 0}
	for _, c := range cards {
		out[c.Suit]++
	}
	return out
}

func hcpBySuit(cards []deck.Card) map[deck.Suit]int {
	out := map[deck.Suit]int{deck.Spades: 0, deck.Hearts: 0, deck.Diamonds: 0, deck.Clubs: 0}
	for _, c := range cards {
		out[c.Suit] += c.HCP()
	}
	return out
}
