package feasibility

import (
	"testing"

	"github.com/lox/bridgedeal/deck"
)

func TestCheckHCPFeasibilityCompleteHandReducesToRangeCheck(t *testing.T) {
	ok := CheckHCPFeasibility(15, 0, 10, 20, 50, 10, 20, HCPFeasibilityNumSD)
	if !ok {
		t.Error("complete hand (cards_remaining=0) with drawnHCP in range should be feasible")
	}
	ok = CheckHCPFeasibility(25, 0, 10, 20, 50, 10, 20, HCPFeasibilityNumSD)
	if ok {
		t.Error("complete hand with drawnHCP out of range should be infeasible")
	}
}

func TestCheckHCPFeasibilitySingleCardRemainingDeterministic(t *testing.T) {
	// deck_size == 1: no variance. The single remaining card is a known
	// ace (4 HCP), so the final total is deterministically 36+4=40, which
	// is outside [0,37].
	ok := CheckHCPFeasibility(36, 1, 1, 4, 16, 0, 37, HCPFeasibilityNumSD)
	if ok {
		t.Error("expected infeasible: deterministic total of 40 lies outside [0,37]")
	}

	// Same setup but a wide enough target that the deterministic 40 fits.
	ok = CheckHCPFeasibility(36, 1, 1, 4, 16, 0, 40, HCPFeasibilityNumSD)
	if !ok {
		t.Error("expected feasible: deterministic total of 40 lies within [0,40]")
	}
}

func TestCheckHCPFeasibilityFullDeckWideTargetNeverRejects(t *testing.T) {
	ok := CheckHCPFeasibility(0, 13, 52, deck.FullDeckHCPSum, deck.FullDeckHCPSumSq, 0, 37, HCPFeasibilityNumSD)
	if !ok {
		t.Error("a full deck with a wide [0,37] target should never be rejected")
	}
}

func TestCheckHCPFeasibilityFarTargetRejects(t *testing.T) {
	// With 13 cards remaining from a full deck (mean ~10), a target far
	// from the expectation with a tight band should reject.
	ok := CheckHCPFeasibility(0, 13, 52, deck.FullDeckHCPSum, deck.FullDeckHCPSumSq, 35, 37, 0.1)
	if ok {
		t.Error("expected rejection: target [35,37] is far from the expected ~10 HCP")
	}
}

func TestDeckHCPStatsFullDeck(t *testing.T) {
	hcps := make([]int, 0, 52)
	for _, c := range deck.MasterDeck {
		hcps = append(hcps, c.HCP())
	}
	sum, sumSq := DeckHCPStats(hcps)
	if sum != deck.FullDeckHCPSum {
		t.Errorf("sum = %d, want %d", sum, deck.FullDeckHCPSum)
	}
	if sumSq != deck.FullDeckHCPSumSq {
		t.Errorf("sumSq = %d, want %d", sumSq, deck.FullDeckHCPSumSq)
	}
}

func TestVarianceOfFullHandMatchesKnownBridgeConstant(t *testing.T) {
	// Var(HCP in a 13-card hand dealt from a full 52-card deck) is the
	// well-known bridge constant 290/17 ~= 17.059. Reconstruct it from the
	// same mean/variance path CheckHCPFeasibility uses, starting from 0
	// drawn and 13 remaining.
	deckSize := 52
	mu := float64(deck.FullDeckHCPSum) / float64(deckSize)
	sigmaSq := float64(deck.FullDeckHCPSumSq)/float64(deckSize) - mu*mu
	cardsRemaining := 13
	fpc := float64(deckSize-cardsRemaining) / float64(deckSize-1)
	varHCP := float64(cardsRemaining) * sigmaSq * fpc

	want := 290.0 / 17.0
	if diff := varHCP - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("Var(HCP) = %.4f, want %.4f", varHCP, want)
	}
}
