package dealer

import (
	"math/rand"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// Result is the outcome of one shape-help deal: either a complete set of
// 13-card hands plus the RS suits pre-selected per seat, or a rejection
// naming the seat whose pre-allocation the HCP feasibility gate found
// implausible.
type Result struct {
	Hands        map[deck.Seat][]deck.Card
	RSChoices    map[deck.Seat][]deck.Suit
	HelpSeats    []deck.Seat
	RejectedSeat deck.Seat
	OK           bool
}

// Deal builds a fresh shuffled deck and runs the full shape-help pipeline:
// RS pre-selection, dispersion check, pre-allocation, the HCP feasibility
// gate, and constrained fill.
func Deal(dealingOrder [4]deck.Seat, chosen map[deck.Seat]profile.Subprofile, rng *rand.Rand) Result {
	rsChoices := PreSelectRS(dealingOrder, chosen, rng)
	return DealWithRS(dealingOrder, chosen, rsChoices, rng)
}

// DealWithRS runs the same pipeline as Deal but takes the RS pre-selection
// as an argument instead of sampling a fresh one, so the board builder can
// keep RS choices stable across attempts between its own RS reroll interval.
func DealWithRS(dealingOrder [4]deck.Seat, chosen map[deck.Seat]profile.Subprofile, rsChoices map[deck.Seat][]deck.Suit, rng *rand.Rand) Result {
	tight := TightSeats(dealingOrder, chosen, rsChoices)

	d := deck.NewDeck()
	d.Shuffle(rng)

	preAlloc := PreAllocate(dealingOrder, tight, chosen, rsChoices, d, rng)

	if culprit, ok := FeasibilityGate(chosen, preAlloc, d); !ok {
		return Result{HelpSeats: tight, RejectedSeat: culprit, OK: false}
	}

	hands := ConstrainedFill(dealingOrder, chosen, rsChoices, preAlloc, d)
	return Result{Hands: hands, RSChoices: rsChoices, HelpSeats: tight, OK: true}
}
