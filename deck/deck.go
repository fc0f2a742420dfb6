package deck

import (
	"math/rand"

	"github.com/lox/bridgedeal/internal/fastrand"
)

// Deck is a mutable, shuffleable sequence of cards, used as per-attempt
// scratch state inside the board builder. It is never shared across boards.
type Deck struct {
	cards []Card
}

// NewDeck returns a fresh, unshuffled 52-card deck.
func NewDeck() *Deck {
	cards := make([]Card, 52)
	copy(cards, MasterDeck[:])
	return &Deck{cards: cards}
}

// Shuffle randomizes the deck in place using the supplied RNG (the board
// builder's per-attempt source, typically seeded from fastrand).
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// ShuffleFast is a convenience wrapper that builds a fastrand-backed source
// from seed and shuffles with it.
func (d *Deck) ShuffleFast(seed int64) {
	d.Shuffle(fastrand.New(seed))
}

// Deal removes and returns the top card from the deck.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN removes and returns up to n cards from the top of the deck.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// Remove deletes the first occurrence of card from the deck, used by the
// shape-help dealer to pull pre-allocated cards out of the shuffled buffer
// before constrained fill runs. Reports whether the card was present.
func (d *Deck) Remove(card Card) bool {
	for i, c := range d.cards {
		if c == card {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Requeue returns previously-dealt cards to the front of the deck, in the
// order given, so a later seat can still draw them. Used by constrained
// fill to put back cards skipped for one seat.
func (d *Deck) Requeue(cards []Card) {
	d.cards = append(append([]Card{}, cards...), d.cards...)
}

// DrainAll removes and returns every remaining card in front-to-back order.
func (d *Deck) DrainAll() []Card {
	all := d.cards
	d.cards = nil
	return all
}

// Cards returns the deck's remaining cards without consuming them.
func (d *Deck) Cards() []Card {
	return d.cards
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}
