// Package feasibility provides the statistical and combinatorial gates used
// to reject doomed attempts before the expensive matching pass: HCP
// feasibility under a hypergeometric model, cheap per-subprofile
// structural checks, and cross-seat viability across a selected set of
// subprofiles.
package feasibility

import "math"

// HCPFeasibilityNumSD is the number of standard deviations used for the
// confidence band in CheckHCPFeasibility. At 1.0 SD roughly 68% of
// outcomes fall within the band.
const HCPFeasibilityNumSD = 1.0

// CheckHCPFeasibility reports whether a target HCP range [targetMin,
// targetMax] is still statistically plausible given drawnHCP already
// committed to a hand, cardsRemaining still to be dealt to it, and the
// aggregate composition (deckSize, deckHCPSum, deckHCPSumSq) of the
// remaining deck it will draw from.
//
// The remaining deck is modeled as a finite population; the additional HCP
// drawn has mean cardsRemaining*mu and variance under the standard
// hypergeometric finite-population-correction formula. The range is
// rejected only when even the favourable end of the numSD-wide confidence
// band can't reach the target.
func CheckHCPFeasibility(drawnHCP, cardsRemaining, deckSize, deckHCPSum, deckHCPSumSq, targetMin, targetMax int, numSD float64) bool {
	if cardsRemaining <= 0 {
		return drawnHCP >= targetMin && drawnHCP <= targetMax
	}
	if deckSize <= 0 {
		return drawnHCP >= targetMin && drawnHCP <= targetMax
	}

	mu := float64(deckHCPSum) / float64(deckSize)
	sigmaSq := float64(deckHCPSumSq)/float64(deckSize) - mu*mu

	expectedAdditional := float64(cardsRemaining) * mu
	expectedTotal := float64(drawnHCP) + expectedAdditional

	var varAdditional float64
	if deckSize > 1 {
		fpc := float64(deckSize-cardsRemaining) / float64(deckSize-1)
		varAdditional = float64(cardsRemaining) * sigmaSq * fpc
	}
	sdAdditional := math.Sqrt(math.Max(0, varAdditional))

	expDown := expectedTotal - numSD*sdAdditional
	expUp := expectedTotal + numSD*sdAdditional

	if expDown > float64(targetMax) {
		return false
	}
	if expUp < float64(targetMin) {
		return false
	}
	return true
}

// DeckHCPStats computes the (sum, sumSquared) HCP aggregate of a slice of
// cards in a single pass, used to derive remaining-deck stats incrementally
// by subtracting a pre-allocated seat's contribution from the full-deck
// constants rather than rescanning the deck.
func DeckHCPStats(hcps []int) (sum int, sumSq int) {
	for _, v := range hcps {
		sum += v
		sumSq += v * v
	}
	return sum, sumSq
}
