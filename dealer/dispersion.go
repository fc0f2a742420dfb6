// Package dealer implements the shape-help dealer: the dispersion check
// that flags statistically tight seats, RS pre-selection, pre-allocation
// with HCP-targeted rejection sampling, the HCP feasibility gate, and
// constrained fill of the remaining deck.
package dealer

import (
	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/feasibility"
	"github.com/lox/bridgedeal/profile"
)

// TightSeats returns the subset of dealingOrder whose chosen subprofile (for
// standard ranges) or pre-selected RS suit ranges have a minimum card count
// tight enough (per feasibility.IsTight) to warrant pre-allocation help.
func TightSeats(dealingOrder [4]deck.Seat, chosen map[deck.Seat]profile.Subprofile, rsPreSelections map[deck.Seat][]deck.Suit) []deck.Seat {
	var tight []deck.Seat
	for _, seat := range dealingOrder {
		sub, ok := chosen[seat]
		if !ok {
			continue
		}
		if seatIsTight(sub, rsPreSelections[seat]) {
			tight = append(tight, seat)
		}
	}
	return tight
}

func seatIsTight(sub profile.Subprofile, rsSuits []deck.Suit) bool {
	for _, suit := range deck.Suits {
		if feasibility.IsTight(sub.Standard.Range(suit).MinCards) {
			return true
		}
	}
	if rs, ok := sub.RandomSuit(); ok {
		ranges := resolvedRanges(rs, rsSuits)
		for _, suit := range rsSuits {
			if sr, ok := ranges[suit]; ok && feasibility.IsTight(sr.MinCards) {
				return true
			}
		}
	}
	return false
}

// resolvedRanges maps each chosen RS suit to its effective range, applying
// a pair override when the chosen pair matches one.
func resolvedRanges(rs profile.RandomSuitConstraint, chosen []deck.Suit) map[deck.Suit]profile.SuitRange {
	out := make(map[deck.Suit]profile.SuitRange, len(chosen))
	if len(chosen) == 2 {
		if po, ok := rs.OverrideFor(chosen[0], chosen[1]); ok {
			out[po.Suits[0]] = po.FirstRange
			out[po.Suits[1]] = po.SecondRange
			return out
		}
	}
	for i, s := range chosen {
		if i < len(rs.SuitRanges) {
			out[s] = rs.SuitRanges[i]
		}
	}
	return out
}
