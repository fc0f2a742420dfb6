package dealer

import (
	"math"
	"math/rand"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/feasibility"
	"github.com/lox/bridgedeal/profile"
)

// PreAllocateFraction is the fraction of a standard suit's minimum
// reserved ahead of the shuffled deal for a tight seat.
const PreAllocateFraction = feasibility.PreAllocateFraction

// RSPreAllocateFraction is the fraction of an RS suit's minimum reserved;
// the spec defaults this to 1.0 (reserve the full minimum), unlike the
// 0.75 used for standard suits, since the RS suit is the entire reason the
// seat was pre-selected to need one.
const RSPreAllocateFraction = 1.0

// HCPRetryBudget bounds the rejection-sampling attempts used to find a
// pre-allocated RS-suit sample whose HCP lands in its pro-rated target
// window before falling back to accepting the last sample tried.
const HCPRetryBudget = 10

// byCardSuit partitions cards by suit.
func byCardSuit(cards []deck.Card) map[deck.Suit][]deck.Card {
	out := map[deck.Suit][]deck.Card{deck.Spades: nil, deck.Hearts: nil, deck.Diamonds: nil, deck.Clubs: nil}
	for _, c := range cards {
		out[c.Suit] = append(out[c.Suit], c)
	}
	return out
}

// reserveRandomCards removes count random cards of suit from the deck and
// returns them. Returns fewer than count if the suit doesn't hold that many.
func reserveRandomCards(d *deck.Deck, suit deck.Suit, count int, rng *rand.Rand) []deck.Card {
	bySuit := byCardSuit(d.Cards())
	pool := bySuit[suit]
	if count > len(pool) {
		count = len(pool)
	}
	perm := rng.Perm(len(pool))[:count]
	reserved := make([]deck.Card, 0, count)
	for _, i := range perm {
		card := pool[i]
		d.Remove(card)
		reserved = append(reserved, card)
	}
	return reserved
}

// sumHCP totals the HCP of a card slice.
func sumHCP(cards []deck.Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.HCP()
	}
	return sum
}

// reserveHCPTargeted performs HCP-targeted rejection sampling for an RS
// suit: resample up to HCPRetryBudget times, keeping the last sample if
// none lands inside the pro-rated target window. The target window scales
// the suit range's HCP bounds by the ratio of reserved count to the range's
// minimum card count.
func reserveHCPTargeted(d *deck.Deck, suit deck.Suit, count int, sr profile.SuitRange, rng *rand.Rand) []deck.Card {
	if sr.MinCards <= 0 || count <= 0 {
		return reserveRandomCards(d, suit, count, rng)
	}
	scale := float64(count) / float64(sr.MinCards)
	targetMin := int(float64(sr.MinHCP) * scale)
	targetMax := int(math.Ceil(float64(sr.MaxHCP) * scale))

	bySuit := byCardSuit(d.Cards())
	pool := bySuit[suit]
	if count > len(pool) {
		count = len(pool)
	}
	if count == 0 {
		return nil
	}

	var lastSample []deck.Card
	for attempt := 0; attempt < HCPRetryBudget; attempt++ {
		perm := rng.Perm(len(pool))[:count]
		sample := make([]deck.Card, count)
		for i, idx := range perm {
			sample[i] = pool[idx]
		}
		lastSample = sample
		hcp := sumHCP(sample)
		if hcp >= targetMin && hcp <= targetMax {
			break
		}
	}
	for _, c := range lastSample {
		d.Remove(c)
	}
	return lastSample
}

// PreAllocation holds, per tight seat, the cards reserved ahead of the
// shuffled deal and the subprofile used to derive it.
type PreAllocation struct {
	Cards map[deck.Seat][]deck.Card
}

// PreAllocate reserves cards from d for every tight seat (in dealingOrder):
// floor(m*0.75) cards per standard suit with min_cards=m>0, plus
// floor(m*1.0) HCP-targeted cards per RS pre-selected suit. Cards are
// removed from d as they're reserved.
func PreAllocate(
	dealingOrder [4]deck.Seat,
	tightSeats []deck.Seat,
	chosen map[deck.Seat]profile.Subprofile,
	rsPreSelections map[deck.Seat][]deck.Suit,
	d *deck.Deck,
	rng *rand.Rand,
) PreAllocation {
	result := PreAllocation{Cards: make(map[deck.Seat][]deck.Card)}
	tightSet := make(map[deck.Seat]bool, len(tightSeats))
	for _, s := range tightSeats {
		tightSet[s] = true
	}

	for _, seat := range dealingOrder {
		if !tightSet[seat] {
			continue
		}
		sub := chosen[seat]
		var reserved []deck.Card

		for _, suit := range deck.Suits {
			sr := sub.Standard.Range(suit)
			if sr.MinCards <= 0 {
				continue
			}
			n := int(float64(sr.MinCards) * PreAllocateFraction)
			if n <= 0 {
				continue
			}
			reserved = append(reserved, reserveRandomCards(d, suit, n, rng)...)
		}

		if rs, ok := sub.RandomSuit(); ok {
			rsSuits := rsPreSelections[seat]
			ranges := resolvedRanges(rs, rsSuits)
			for _, suit := range rsSuits {
				sr, ok := ranges[suit]
				if !ok || sr.MinCards <= 0 {
					continue
				}
				n := int(float64(sr.MinCards) * RSPreAllocateFraction)
				if n <= 0 {
					continue
				}
				reserved = append(reserved, reserveHCPTargeted(d, suit, n, sr, rng)...)
			}
		}

		result.Cards[seat] = reserved
	}
	return result
}

// FeasibilityGate checks every pre-allocated seat's drawn HCP against the
// remaining deck's aggregate stats, using the hypergeometric mean/variance
// formula with finite-population correction. The remaining deck's stats are
// the full-deck constants minus the HCP of every pre-allocated card, so d
// must be the full deck PreAllocate removed those cards from. Returns the
// first seat whose confidence band falls entirely outside its standard
// total HCP range, or ok=true if all pre-allocated seats remain plausible.
func FeasibilityGate(chosen map[deck.Seat]profile.Subprofile, preAlloc PreAllocation, d *deck.Deck) (culprit deck.Seat, ok bool) {
	var removed []int
	for _, cards := range preAlloc.Cards {
		for _, c := range cards {
			removed = append(removed, c.HCP())
		}
	}
	removedSum, removedSumSq := feasibility.DeckHCPStats(removed)
	deckHCPSum := deck.FullDeckHCPSum - removedSum
	deckHCPSumSq := deck.FullDeckHCPSumSq - removedSumSq
	deckSize := d.Len()

	for seat, cards := range preAlloc.Cards {
		sub := chosen[seat]
		drawnHCP := sumHCP(cards)
		cardsRemaining := 13 - len(cards)

		feasible := feasibility.CheckHCPFeasibility(
			drawnHCP, cardsRemaining, deckSize, deckHCPSum, deckHCPSumSq,
			sub.Standard.TotalMinHCP, sub.Standard.TotalMaxHCP,
			feasibility.HCPFeasibilityNumSD,
		)
		if !feasible {
			return seat, false
		}
	}
	return 0, true
}
