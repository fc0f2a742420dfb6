package feasibility

import (
	"testing"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

func wideSub() profile.Subprofile {
	wide := profile.SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	return profile.Subprofile{
		Standard: profile.StandardConstraints{
			Spades: wide, Hearts: wide, Diamonds: wide, Clubs: wide,
			TotalMinHCP: 0, TotalMaxHCP: 37,
		},
		WeightPercent: 100,
	}
}

func TestSubprofileViableLightWideIsViable(t *testing.T) {
	ok, reason := SubprofileViableLight(wideSub())
	if !ok {
		t.Fatalf("expected viable, got reason %q", reason)
	}
}

func TestSubprofileViableLightImpossibleMinSum(t *testing.T) {
	sub := wideSub()
	tight := profile.SuitRange{MinCards: 8, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	sub.Standard.Spades = tight
	sub.Standard.Hearts = tight
	ok, _ := SubprofileViableLight(sub)
	if ok {
		t.Fatal("expected infeasible: spades+hearts minimums alone sum to 16 > 13")
	}
}

func TestCrossSeatViableSuitOverAllocated(t *testing.T) {
	tightSpades := profile.SuitRange{MinCards: 7, MaxCards: 13, MinHCP: 0, MaxHCP: 37}
	wide := profile.SuitRange{MinCards: 0, MaxCards: 13, MinHCP: 0, MaxHCP: 37}

	n := wideSub()
	n.Standard.Spades = tightSpades
	s := wideSub()
	s.Standard.Spades = tightSpades
	_ = wide

	chosen := map[deck.Seat]profile.Subprofile{
		deck.North: n,
		deck.South: s,
	}
	ok, reason := CrossSeatViable(chosen)
	if ok {
		t.Fatalf("expected infeasible (spades minimums sum to 14 > 13), got viable")
	}
	if reason == "" {
		t.Error("expected a non-empty reason")
	}
}

func TestCrossSeatViableOK(t *testing.T) {
	chosen := map[deck.Seat]profile.Subprofile{
		deck.North: wideSub(),
		deck.East:  wideSub(),
		deck.South: wideSub(),
		deck.West:  wideSub(),
	}
	ok, reason := CrossSeatViable(chosen)
	if !ok {
		t.Fatalf("expected viable, got reason %q", reason)
	}
}

func TestViabilityCacheMemoizes(t *testing.T) {
	c := NewViabilityCache(8)
	calls := 0
	compute := func() (bool, string) {
		calls++
		return true, "ok"
	}

	ok1, _ := c.Check("k1", compute)
	ok2, _ := c.Check("k1", compute)
	if !ok1 || !ok2 {
		t.Fatal("expected both checks to report true")
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1 (second lookup should hit cache)", calls)
	}
}
