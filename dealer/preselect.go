package dealer

import (
	"math/rand"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// PreSelectRS samples, for every seat whose chosen subprofile carries a
// Random Suit constraint, required_suits_count distinct suits from
// allowed_suits without replacement. The result seeds both shape
// pre-allocation and the matcher's shared RS choices.
func PreSelectRS(dealingOrder [4]deck.Seat, chosen map[deck.Seat]profile.Subprofile, rng *rand.Rand) map[deck.Seat][]deck.Suit {
	out := make(map[deck.Seat][]deck.Suit)
	for _, seat := range dealingOrder {
		sub, ok := chosen[seat]
		if !ok {
			continue
		}
		rs, ok := sub.RandomSuit()
		if !ok {
			continue
		}
		out[seat] = sampleDistinctSuits(rng, rs.AllowedSuits, rs.RequiredSuitsCount)
	}
	return out
}

func sampleDistinctSuits(rng *rand.Rand, allowed []deck.Suit, n int) []deck.Suit {
	if n <= 0 || n > len(allowed) {
		return nil
	}
	perm := rng.Perm(len(allowed))
	out := make([]deck.Suit, n)
	for i := 0; i < n; i++ {
		out[i] = allowed[perm[i]]
	}
	return out
}
