// Package render writes a finished deal set out in the two text formats a
// human or downstream dealing-machine tool expects: a columnar hand-by-hand
// listing and a minimal LIN container. Persistence format is outside the
// core's concerns; this package is the one place that cares about bytes on
// disk.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/lox/bridgedeal/builder"
	"github.com/lox/bridgedeal/deck"
)

// suitLine renders one seat's holding in one suit, highest rank first,
// "-" for a void.
func suitLine(hand []deck.Card, suit deck.Suit) string {
	var ranks []deck.Rank
	for _, c := range hand {
		if c.Suit == suit {
			ranks = append(ranks, c.Rank)
		}
	}
	if len(ranks) == 0 {
		return "-"
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	s := ""
	for _, r := range ranks {
		s += r.String()
	}
	return s
}

// WriteTXT writes one board per paragraph: header line (board number,
// dealer, vulnerability) followed by one line per seat in N, E, S, W order,
// each listing the seat's spades, hearts, diamonds and clubs separated by
// dots.
func WriteTXT(w io.Writer, deals []builder.Deal) error {
	for _, d := range deals {
		if _, err := fmt.Fprintf(w, "Board %d  Dealer %s  Vul %s\n", d.BoardNumber, d.Dealer, d.Vulnerability); err != nil {
			return err
		}
		for _, seat := range deck.Seats {
			hand := d.Hands[seat]
			if _, err := fmt.Fprintf(w, "%s: %s.%s.%s.%s\n", seat,
				suitLine(hand, deck.Spades), suitLine(hand, deck.Hearts),
				suitLine(hand, deck.Diamonds), suitLine(hand, deck.Clubs)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
