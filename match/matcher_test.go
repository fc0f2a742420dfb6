package match

import (
	"math/rand"
	"testing"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

func hand(cards ...deck.Card) []deck.Card {
	return cards
}

func wideRange() profile.SuitRange {
	return profile.SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
}

func wideStandard() profile.StandardConstraints {
	w := wideRange()
	return profile.StandardConstraints{Spades: w, Hearts: w, Diamonds: w, Clubs: w, TotalMinHCP: 0, TotalMaxHCP: 37}
}

func TestAnalyzeHandTotals(t *testing.T) {
	h := hand(
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Spades, deck.King),
		deck.NewCard(deck.Hearts, deck.Queen),
	)
	a := AnalyzeHand(h)
	if a.TotalHCP != 9 {
		t.Errorf("TotalHCP = %d, want 9", a.TotalHCP)
	}
	if a.SuitCount(deck.Spades) != 2 {
		t.Errorf("SuitCount(Spades) = %d, want 2", a.SuitCount(deck.Spades))
	}
	if a.HCPBySuit[deck.Hearts] != 2 {
		t.Errorf("HCPBySuit[Hearts] = %d, want 2", a.HCPBySuit[deck.Hearts])
	}
}

func thirteenCardHandWithSpadeHCP(spadeCards int, extraHCP int) []deck.Card {
	var cards []deck.Card
	ranksByHCP := []deck.Rank{deck.Ace, deck.King, deck.Queen, deck.Jack}
	hcpUsed := 0
	for i := 0; i < spadeCards; i++ {
		if i < len(ranksByHCP) && hcpUsed < extraHCP {
			cards = append(cards, deck.NewCard(deck.Spades, ranksByHCP[i]))
			hcpUsed += ranksByHCP[i].HCP()
		} else {
			cards = append(cards, deck.NewCard(deck.Spades, deck.Rank(2+i)))
		}
	}
	for len(cards) < 13 {
		cards = append(cards, deck.NewCard(deck.Hearts, deck.Rank(2+len(cards)-spadeCards)))
	}
	return cards[:13]
}

func TestMatchStandardHCPFailureTakesPriority(t *testing.T) {
	std := wideStandard()
	std.TotalMinHCP = 20
	h := thirteenCardHandWithSpadeHCP(5, 0) // 0 HCP hand
	a := AnalyzeHand(h)
	matched, reason := matchStandard(a, std)
	if matched {
		t.Fatal("expected match failure on low HCP")
	}
	if reason != FailHCP {
		t.Errorf("reason = %q, want %q", reason, FailHCP)
	}
}

func TestMatchStandardShapeFailure(t *testing.T) {
	std := wideStandard()
	std.Spades = profile.SuitRange{MinCards: 6, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	h := thirteenCardHandWithSpadeHCP(2, 0)
	a := AnalyzeHand(h)
	matched, reason := matchStandard(a, std)
	if matched {
		t.Fatal("expected match failure on spade count")
	}
	if reason != FailShape {
		t.Errorf("reason = %q, want %q", reason, FailShape)
	}
}

func TestMatchRandomSuitPreSelected(t *testing.T) {
	rs := profile.RandomSuitConstraint{
		AllowedSuits:       []deck.Suit{deck.Spades, deck.Hearts},
		RequiredSuitsCount: 1,
		SuitRanges:         []profile.SuitRange{{MinCards: 5, MaxCards: 13, MinHCP: 0, MaxHCP: 37}},
	}
	h := thirteenCardHandWithSpadeHCP(6, 0)
	a := AnalyzeHand(h)
	rng := rand.New(rand.NewSource(1))

	matched, chosen := matchRandomSuit(a, rs, rng, []deck.Suit{deck.Spades})
	if !matched {
		t.Fatal("expected RS match with pre-selected spades (6 cards >= 5 minimum)")
	}
	if len(chosen) != 1 || chosen[0] != deck.Spades {
		t.Errorf("chosen = %v, want [Spades]", chosen)
	}
}

func TestMatchRandomSuitPairOverride(t *testing.T) {
	defaultRange := profile.SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	overrideRange := profile.SuitRange{MinCards: 5, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	rs := profile.RandomSuitConstraint{
		AllowedSuits:       []deck.Suit{deck.Spades, deck.Hearts},
		RequiredSuitsCount: 2,
		SuitRanges:         []profile.SuitRange{defaultRange, defaultRange},
		PairOverrides: []profile.SuitPairOverride{
			{Suits: [2]deck.Suit{deck.Spades, deck.Hearts}, FirstRange: overrideRange, SecondRange: defaultRange},
		},
	}
	h := thirteenCardHandWithSpadeHCP(5, 0)
	a := AnalyzeHand(h)
	rng := rand.New(rand.NewSource(1))

	matched, _ := matchRandomSuit(a, rs, rng, []deck.Suit{deck.Spades, deck.Hearts})
	if !matched {
		t.Fatal("expected match: pair override gives spades a 5-card minimum, satisfied")
	}
}

func TestMatchSeatUnconstrainedAlwaysMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	matched, _, reason := MatchSeat(deck.North, thirteenCardHandWithSpadeHCP(0, 0), nil, profile.Subprofile{}, 0, nil, nil, nil, rng, nil)
	if !matched || reason != FailNone {
		t.Fatalf("expected unconstrained seat to match, got matched=%v reason=%q", matched, reason)
	}
}

func TestShapeMatchesPatternExactAndWildcard(t *testing.T) {
	excls := []profile.SubprofileExclusion{
		{Seat: deck.North, SubprofileIndex: 1, ShapePatterns: []string{"4333"}},
	}
	lengths := ShapeDigits{4, 3, 3, 3}
	if !ShapeMatchesPattern(lengths, "4333") {
		t.Fatal("expected exact shape pattern to match")
	}
	if !ShapeMatchesPattern(lengths, "4x3x") {
		t.Fatal("expected wildcard pattern to match")
	}
	_ = excls
}

func TestClauseHoldsMajorTwoSuitsEqualFour(t *testing.T) {
	lengths := ShapeDigits{4, 4, 3, 2}
	clause := profile.ExclusionClause{Group: profile.GroupMajor, LengthEq: 4, Count: 2}
	if !ClauseHolds(lengths, clause) {
		t.Fatal("expected both majors at length 4 to satisfy the clause")
	}
	clause.Count = 1
	if ClauseHolds(lengths, clause) {
		t.Fatal("expected count mismatch to fail the clause")
	}
}
