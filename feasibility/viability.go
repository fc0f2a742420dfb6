package feasibility

import (
	"fmt"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// SubprofileViableLight runs cheap, deal-independent feasibility checks on
// a single subprofile: can its standard suit-count range possibly sum to
// 13, and does its HCP band fall within the 0-37 range a 13-card hand can
// ever hold. It never deals cards.
func SubprofileViableLight(sub profile.Subprofile) (bool, string) {
	std := sub.Standard

	mins := std.SumMinCards()
	maxs := std.SumMaxCards()
	if mins > 13 {
		return false, fmt.Sprintf("standard mins sum to %d > 13", mins)
	}
	if maxs < 13 {
		return false, fmt.Sprintf("standard maxs sum to %d < 13", maxs)
	}

	if std.TotalMinHCP > 37 {
		return false, fmt.Sprintf("total_min_hcp %d > 37", std.TotalMinHCP)
	}
	if std.TotalMaxHCP < 0 {
		return false, fmt.Sprintf("total_max_hcp %d < 0", std.TotalMaxHCP)
	}

	return true, "ok"
}

// ValidateProfileViabilityLight ensures every constrained seat has at least
// one subprofile that passes SubprofileViableLight.
func ValidateProfileViabilityLight(p *profile.HandProfile) error {
	for _, seat := range p.ConstrainedSeats() {
		sp := p.SeatProfiles[seat]
		anyOK := false
		lastReason := "no subprofiles checked"
		for _, sub := range sp.Subprofiles {
			ok, reason := SubprofileViableLight(sub)
			if ok {
				anyOK = true
				break
			}
			lastReason = reason
		}
		if !anyOK {
			return fmt.Errorf("seat %s has no viable subprofiles (light): %s", seat, lastReason)
		}
	}
	return nil
}

// CrossSeatViable checks a chosen set of per-seat subprofiles for combined
// feasibility: the sum of per-suit minimums across seats must not exceed 13
// for any suit (a suit only has 13 cards to divide up), the combined HCP
// minimums must not exceed the deck's 40, and the combined maximums must
// reach at least 40 (otherwise no valid deal could ever sum to 40 HCP
// across the four hands).
func CrossSeatViable(chosen map[deck.Seat]profile.Subprofile) (bool, string) {
	var suitMinSum [4]int
	hcpMinSum := 0
	hcpMaxSum := 0

	for _, sub := range chosen {
		std := sub.Standard
		for i, suit := range deck.Suits {
			suitMinSum[i] += std.Range(suit).MinCards
		}
		hcpMinSum += std.TotalMinHCP
		hcpMaxSum += std.TotalMaxHCP
	}

	for i, suit := range deck.Suits {
		if suitMinSum[i] > 13 {
			return false, fmt.Sprintf("%s minimums sum to %d > 13 across seats", suit, suitMinSum[i])
		}
	}
	if hcpMinSum > deck.FullDeckHCPSum {
		return false, fmt.Sprintf("combined HCP minimums sum to %d > %d", hcpMinSum, deck.FullDeckHCPSum)
	}
	if hcpMaxSum < deck.FullDeckHCPSum {
		return false, fmt.Sprintf("combined HCP maximums sum to %d < %d", hcpMaxSum, deck.FullDeckHCPSum)
	}
	return true, "ok"
}
