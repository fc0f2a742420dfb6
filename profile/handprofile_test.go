package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bridgedeal/deck"
)

func wideRange() SuitRange {
	return SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
}

func wideStandard() StandardConstraints {
	return StandardConstraints{
		Spades:      wideRange(),
		Hearts:      wideRange(),
		Diamonds:    wideRange(),
		Clubs:       wideRange(),
		TotalMinHCP: 0,
		TotalMaxHCP: 37,
	}
}

func basicProfile() *HandProfile {
	return &HandProfile{
		ProfileName:  "basic",
		Dealer:       deck.North,
		DealingOrder: [4]deck.Seat{deck.North, deck.East, deck.South, deck.West},
		Tag:          TagOpener,
		SeatProfiles: map[deck.Seat]*SeatProfile{
			deck.North: {Subprofiles: []Subprofile{{Standard: wideStandard(), WeightPercent: 100}}},
		},
	}
}

func TestSuitRangeValidate(t *testing.T) {
	assert.Error(t, (SuitRange{MinCards: 5, MaxCards: 3}).Validate(), "min_cards > max_cards should be rejected")
	assert.Error(t, (SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 10, MaxHCP: 5}).Validate(), "min_hcp > max_hcp should be rejected")
	assert.NoError(t, wideRange().Validate())
}

func TestHandProfileValidateOK(t *testing.T) {
	p := basicProfile()
	require.NoError(t, p.Validate())
}

func TestHandProfileValidateBadDealingOrder(t *testing.T) {
	p := basicProfile()
	p.DealingOrder = [4]deck.Seat{deck.North, deck.North, deck.South, deck.West}
	assert.Error(t, p.Validate(), "duplicate seat in dealing_order should be rejected")
}

func TestSeatProfileWeightNormalization(t *testing.T) {
	sp := &SeatProfile{Subprofiles: []Subprofile{
		{Standard: wideStandard(), WeightPercent: 50},
		{Standard: wideStandard(), WeightPercent: 51},
	}}
	require.NoError(t, sp.Validate(), "near-miss sum should normalise rather than be rejected")

	sum := 0.0
	for _, s := range sp.Subprofiles {
		sum += s.WeightPercent
	}
	assert.InDelta(t, 100.0, sum, 0.01, "normalised weights should sum to 100")
}

func TestSeatProfileWeightSumTooFarRejected(t *testing.T) {
	sp := &SeatProfile{Subprofiles: []Subprofile{
		{Standard: wideStandard(), WeightPercent: 50},
		{Standard: wideStandard(), WeightPercent: 30},
	}}
	assert.Error(t, sp.Validate(), "weight sum far from 100 should be rejected")
}

func TestRandomSuitValidateRequiredCountExceedsAllowed(t *testing.T) {
	rs := RandomSuitConstraint{
		AllowedSuits:       []deck.Suit{deck.Spades},
		RequiredSuitsCount: 2,
		SuitRanges:         []SuitRange{wideRange(), wideRange()},
	}
	assert.Error(t, rs.Validate(), "required_suits_count > len(allowed_suits) should be rejected")
}

func TestPartnerContingentRequiresPartnerRS(t *testing.T) {
	p := basicProfile()
	p.SeatProfiles[deck.South] = &SeatProfile{Subprofiles: []Subprofile{
		{
			Standard: wideStandard(),
			Extra: PartnerContingent{
				PartnerSeat: deck.North,
				SuitRange:   wideRange(),
			},
			WeightPercent: 100,
		},
	}}
	assert.Error(t, p.Validate(), "South's PC references North, which has no RS subprofile")
}

func TestExclusionValidateShapePatternLength(t *testing.T) {
	exc := SubprofileExclusion{
		Seat:            deck.North,
		SubprofileIndex: 1,
		ShapePatterns:   []string{"444"},
	}
	assert.Error(t, exc.Validate(), "shape pattern shorter than 4 characters should be rejected")
}

func TestExclusionValidateTooManyClauses(t *testing.T) {
	exc := SubprofileExclusion{
		Seat:            deck.North,
		SubprofileIndex: 1,
		Clauses: []ExclusionClause{
			{Group: GroupMajor, LengthEq: 4, Count: 2},
			{Group: GroupMinor, LengthEq: 4, Count: 1},
			{Group: GroupAny, LengthEq: 4, Count: 1},
		},
	}
	assert.Error(t, exc.Validate(), "more than 2 clauses should be rejected")
}
