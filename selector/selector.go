// Package selector chooses, for one board attempt, which subprofile each
// constrained seat will be dealt to, applying NS/EW index coupling and
// retrying against cross-seat viability.
package selector

import (
	"math/rand"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/feasibility"
	"github.com/lox/bridgedeal/profile"
)

// CrossSeatViabilityRetries bounds how many times SelectBoard re-rolls the
// full selection in search of a cross-seat-viable combination before giving
// up and returning the last attempt regardless.
const CrossSeatViabilityRetries = 8

// Selection is the result of choosing one subprofile per constrained seat
// for a board attempt.
type Selection struct {
	ChosenSubprofile map[deck.Seat]profile.Subprofile
	ChosenIndex      map[deck.Seat]int // 0-based index into that seat's subprofiles
}

// weightedChoiceIndex picks an index according to non-negative weights,
// scaled to integers to avoid floating-point boundary drift (the weights
// have already been normalised to sum to 100 by profile.Validate).
func weightedChoiceIndex(rng *rand.Rand, weights []float64) int {
	scaled := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		scaled[i] = int(w*10 + 0.5)
		total += scaled[i]
	}
	if total <= 0 {
		return len(weights) - 1
	}

	threshold := rng.Intn(total)
	cumulative := 0
	for i, w := range scaled {
		cumulative += w
		if threshold < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// chooseIndexForSeat picks a subprofile index for one seat's profile.
func chooseIndexForSeat(rng *rand.Rand, sp *profile.SeatProfile) int {
	if len(sp.Subprofiles) <= 1 {
		return 0
	}
	weights := make([]float64, len(sp.Subprofiles))
	for i, s := range sp.Subprofiles {
		weights[i] = s.WeightPercent
	}
	return weightedChoiceIndex(rng, weights)
}

// SelectBoard picks one subprofile per constrained seat, applying NS/EW
// coupling, then retries up to CrossSeatViabilityRetries times against
// feasibility.CrossSeatViable before accepting the last attempt regardless
// (the board builder's attempt loop still gets a chance to fail cleanly).
func SelectBoard(p *profile.HandProfile, rng *rand.Rand, cache *feasibility.ViabilityCache) Selection {
	var sel Selection
	for attempt := 0; attempt < CrossSeatViabilityRetries; attempt++ {
		sel = selectOnce(p, rng)
		if len(sel.ChosenSubprofile) == 0 {
			return sel
		}
		key := indexKey(sel.ChosenIndex)
		ok, _ := cache.Check(key, func() (bool, string) {
			return feasibility.CrossSeatViable(sel.ChosenSubprofile)
		})
		if ok {
			return sel
		}
	}
	return sel
}

func selectOnce(p *profile.HandProfile, rng *rand.Rand) Selection {
	sel := Selection{
		ChosenSubprofile: make(map[deck.Seat]profile.Subprofile),
		ChosenIndex:      make(map[deck.Seat]int),
	}

	seats := p.ConstrainedSeats()
	for _, seat := range seats {
		sp := p.SeatProfiles[seat]
		idx := chooseIndexForSeat(rng, sp)
		sel.ChosenIndex[seat] = idx
		sel.ChosenSubprofile[seat] = sp.Subprofiles[idx]
	}

	// NS coupling is opt-in via ns_role_mode, with the driver named by the
	// mode itself.
	if driver, follower, ok := nsDriver(p.NSRoleMode); ok {
		applyCoupling(p, sel, driver, follower)
	}

	// EW coupling is always applied when both seats have matching
	// subprofile counts; the driver is whichever of E/W comes first in
	// dealing_order.
	if driver, follower, ok := ewDriver(p.DealingOrder); ok {
		applyCoupling(p, sel, driver, follower)
	}

	return sel
}

func nsDriver(mode profile.CouplingMode) (driver, follower deck.Seat, ok bool) {
	switch mode {
	case profile.CouplingNorthDrives:
		return deck.North, deck.South, true
	case profile.CouplingSouthDrives:
		return deck.South, deck.North, true
	default:
		return 0, 0, false
	}
}

func ewDriver(dealingOrder [4]deck.Seat) (driver, follower deck.Seat, ok bool) {
	for _, seat := range dealingOrder {
		if seat == deck.East {
			return deck.East, deck.West, true
		}
		if seat == deck.West {
			return deck.West, deck.East, true
		}
	}
	return 0, 0, false
}

// applyCoupling forces the follower seat's index to match the driver's
// whenever both seats are constrained and have the same subprofile count.
func applyCoupling(p *profile.HandProfile, sel Selection, driver, follower deck.Seat) {
	spDriver, okD := p.SeatProfiles[driver]
	spFollower, okF := p.SeatProfiles[follower]
	if !okD || !okF || spDriver == nil || spFollower == nil {
		return
	}
	if len(spDriver.Subprofiles) != len(spFollower.Subprofiles) || len(spDriver.Subprofiles) <= 1 {
		return
	}

	idx := sel.ChosenIndex[driver]
	sel.ChosenIndex[follower] = idx
	sel.ChosenSubprofile[follower] = spFollower.Subprofiles[idx]
}

// indexKey encodes a chosen-index map into a stable string key for the
// viability cache.
func indexKey(idx map[deck.Seat]int) string {
	buf := make([]byte, 0, 16)
	for _, seat := range deck.Seats {
		if v, ok := idx[seat]; ok {
			buf = append(buf, byte(seat), '=', byte('0'+v%10), ';')
		}
	}
	return string(buf)
}
