package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/lox/bridgedeal/builder"
	"github.com/lox/bridgedeal/deck"
)

// linDealerDigit maps a dealer seat to the BBO LIN md-field convention:
// South=1, West=2, North=3, East=4.
func linDealerDigit(s deck.Seat) int {
	switch s {
	case deck.South:
		return 1
	case deck.West:
		return 2
	case deck.North:
		return 3
	case deck.East:
		return 4
	default:
		return 1
	}
}

// linVulnCode maps Vulnerability to the LIN sv-field code.
func linVulnCode(v deck.Vulnerability) string {
	switch v {
	case deck.VulnNone:
		return "0"
	case deck.VulnNS:
		return "n"
	case deck.VulnEW:
		return "e"
	case deck.VulnBoth:
		return "b"
	default:
		return "o"
	}
}

// linHand renders one seat's 13 cards as a contiguous suit-letter-prefixed
// run, e.g. "SAKQJT98765432".
func linHand(hand []deck.Card) string {
	out := ""
	for _, suit := range deck.Suits {
		var ranks []deck.Rank
		for _, c := range hand {
			if c.Suit == suit {
				ranks = append(ranks, c.Rank)
			}
		}
		if len(ranks) == 0 {
			continue
		}
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
		out += suit.String()
		for _, r := range ranks {
			out += r.String()
		}
	}
	return out
}

// WriteLIN writes one LIN line per board: the md field lists the dealer
// digit followed by South/West/North/East hands (BBO's convention omits
// the fourth hand since it is the complement of the other three, but we
// emit it explicitly for a self-contained record).
func WriteLIN(w io.Writer, deals []builder.Deal) error {
	for _, d := range deals {
		md := fmt.Sprintf("%d%s,%s,%s,%s", linDealerDigit(d.Dealer),
			linHand(d.Hands[deck.South]), linHand(d.Hands[deck.West]),
			linHand(d.Hands[deck.North]), linHand(d.Hands[deck.East]))
		line := fmt.Sprintf("qx|o%d|md|%s|ah|Board %d|sv|%s|pg||",
			d.BoardNumber, md, d.BoardNumber, linVulnCode(d.Vulnerability))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
