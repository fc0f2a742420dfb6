package match

import (
	"math/rand"
	"sort"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// FailReason classifies why a match attempt failed, used for diagnostics
// and failure-taxonomy counters.
type FailReason string

const (
	FailNone  FailReason = ""
	FailHCP   FailReason = "hcp"
	FailShape FailReason = "shape"
	FailOther FailReason = "other"
)

// matchStandard checks the hand against a subprofile's aggregate standard
// constraints, returning the first failure reason encountered: total HCP
// first, then each suit's count and HCP in S,H,D,C order.
func matchStandard(analysis SuitAnalysis, std profile.StandardConstraints) (bool, FailReason) {
	if analysis.TotalHCP < std.TotalMinHCP || analysis.TotalHCP > std.TotalMaxHCP {
		return false, FailHCP
	}
	for _, suit := range deck.Suits {
		sr := std.Range(suit)
		count := analysis.SuitCount(suit)
		if count < sr.MinCards || count > sr.MaxCards {
			return false, FailShape
		}
		hcp := analysis.HCPBySuit[suit]
		if hcp < sr.MinHCP || hcp > sr.MaxHCP {
			return false, FailHCP
		}
	}
	return true, FailNone
}

// matchRandomSuit resolves RS suit choices (using preSelected if supplied,
// else sampling uniformly via rng) and checks each chosen suit's range,
// applying pair overrides when required_suits_count is 2 and the chosen
// pair matches one. Returns the suits it attempted even on failure, so the
// caller can still record which suits were seen.
func matchRandomSuit(analysis SuitAnalysis, rs profile.RandomSuitConstraint, rng *rand.Rand, preSelected []deck.Suit) (bool, []deck.Suit) {
	if len(rs.AllowedSuits) == 0 || rs.RequiredSuitsCount <= 0 {
		return false, nil
	}
	if rs.RequiredSuitsCount > len(rs.AllowedSuits) {
		return false, nil
	}

	var chosen []deck.Suit
	if preSelected != nil {
		chosen = append(chosen, preSelected...)
	} else {
		chosen = sampleSuits(rng, rs.AllowedSuits, rs.RequiredSuitsCount)
	}

	ranges := make(map[deck.Suit]profile.SuitRange, len(chosen))
	if rs.RequiredSuitsCount == 2 && len(chosen) == 2 && len(rs.PairOverrides) > 0 {
		if po, ok := rs.OverrideFor(chosen[0], chosen[1]); ok {
			ranges[po.Suits[0]] = po.FirstRange
			ranges[po.Suits[1]] = po.SecondRange
		}
	}
	if len(ranges) == 0 {
		for i, s := range chosen {
			if i >= len(rs.SuitRanges) {
				return false, chosen
			}
			ranges[s] = rs.SuitRanges[i]
		}
	}

	for _, s := range chosen {
		sr := ranges[s]
		count := analysis.SuitCount(s)
		hcp := analysis.HCPBySuit[s]
		if !sr.Contains(count, hcp) {
			return false, chosen
		}
	}
	return true, chosen
}

// sampleSuits picks n distinct suits uniformly from allowed without
// replacement.
func sampleSuits(rng *rand.Rand, allowed []deck.Suit, n int) []deck.Suit {
	idx := rng.Perm(len(allowed))[:n]
	sort.Ints(idx)
	out := make([]deck.Suit, n)
	for i, j := range idx {
		out[i] = allowed[j]
	}
	return out
}

// contingentSuit selects the contingent suit for a PC/OC constraint: the
// reference seat's first RS-chosen suit, or (when useNonChosen is set) the
// first allowed-but-unchosen suit from that seat's RS constraint. The
// latter requires the caller to pass the full allowed-suit list alongside
// the chosen suits; callers that only have the chosen list pass a nil
// allowed slice, in which case useNonChosen can't be honored and the first
// chosen suit is used instead.
func contingentSuit(chosenByRef []deck.Suit, allowedByRef []deck.Suit, useNonChosen bool) (deck.Suit, bool) {
	if len(chosenByRef) == 0 {
		return 0, false
	}
	if !useNonChosen || allowedByRef == nil {
		return chosenByRef[0], true
	}
	chosenSet := make(map[deck.Suit]bool, len(chosenByRef))
	for _, s := range chosenByRef {
		chosenSet[s] = true
	}
	for _, s := range allowedByRef {
		if !chosenSet[s] {
			return s, true
		}
	}
	return chosenByRef[0], true
}

// MatchSubprofile matches one hand against one subprofile's standard
// constraints followed by at most one of RS/PC/OC. sharedRSChoices is the
// board's accumulated map of seat -> chosen RS suits, consulted for PC/OC
// resolution. allowedByRef, when non-nil, is the referenced seat's RS
// allowed-suits list (needed only for UseNonChosenSuit).
func MatchSubprofile(
	analysis SuitAnalysis,
	sub profile.Subprofile,
	sharedRSChoices map[deck.Seat][]deck.Suit,
	allowedByRef map[deck.Seat][]deck.Suit,
	rng *rand.Rand,
	preSelectedRS []deck.Suit,
) (bool, []deck.Suit, FailReason) {
	matched, reason := matchStandard(analysis, sub.Standard)
	if !matched {
		return false, nil, reason
	}

	if rs, ok := sub.RandomSuit(); ok {
		matched, chosen := matchRandomSuit(analysis, rs, rng, preSelectedRS)
		if !matched {
			return false, chosen, FailOther
		}
		return true, chosen, FailNone
	}

	if pc, ok := sub.Partner(); ok {
		partnerChoices, ok := sharedRSChoices[pc.PartnerSeat]
		if !ok || len(partnerChoices) == 0 {
			return false, nil, FailOther
		}
		suit, ok := contingentSuit(partnerChoices, allowedByRef[pc.PartnerSeat], pc.UseNonChosenSuit)
		if !ok {
			return false, nil, FailOther
		}
		count := analysis.SuitCount(suit)
		hcp := analysis.HCPBySuit[suit]
		if !pc.SuitRange.Contains(count, hcp) {
			return false, nil, FailOther
		}
		return true, nil, FailNone
	}

	if oc, ok := sub.Opponent(); ok {
		oppChoices, ok := sharedRSChoices[oc.OpponentSeat]
		if !ok || len(oppChoices) == 0 {
			return false, nil, FailOther
		}
		suit, ok := contingentSuit(oppChoices, allowedByRef[oc.OpponentSeat], oc.UseNonChosenSuit)
		if !ok {
			return false, nil, FailOther
		}
		count := analysis.SuitCount(suit)
		hcp := analysis.HCPBySuit[suit]
		if !oc.SuitRange.Contains(count, hcp) {
			return false, nil, FailOther
		}
		return true, nil, FailNone
	}

	return true, nil, FailNone
}

// MatchSeat matches a dealt hand against the chosen subprofile for seat,
// then applies subprofile exclusions on success. chosenIndex1Based
// identifies which subprofile was chosen, for exclusion lookup; pass 0 when
// unknown (exclusions never match index 0 since the authoring convention is
// 1-based).
func MatchSeat(
	seat deck.Seat,
	hand []deck.Card,
	seatProfile *profile.SeatProfile,
	chosenSub profile.Subprofile,
	chosenIndex1Based int,
	exclusions []profile.SubprofileExclusion,
	sharedRSChoices map[deck.Seat][]deck.Suit,
	allowedByRef map[deck.Seat][]deck.Suit,
	rng *rand.Rand,
	preSelectedRS []deck.Suit,
) (bool, []deck.Suit, FailReason) {
	if seatProfile == nil {
		return true, nil, FailNone
	}

	analysis := AnalyzeHand(hand)
	matched, chosen, reason := MatchSubprofile(analysis, chosenSub, sharedRSChoices, allowedByRef, rng, preSelectedRS)
	if !matched {
		return false, chosen, reason
	}

	if IsExcluded(exclusions, seat, chosenIndex1Based, analysis) {
		return false, chosen, FailOther
	}
	return true, chosen, FailNone
}
