// Package builder assembles one fully-matched Deal for a single board
// number: select subprofiles, deal via the shape-help dealer, match every
// constrained seat, and retry on failure up to a bounded attempt budget.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/dealer"
	"github.com/lox/bridgedeal/feasibility"
	"github.com/lox/bridgedeal/match"
	"github.com/lox/bridgedeal/observer"
	"github.com/lox/bridgedeal/profile"
	"github.com/lox/bridgedeal/selector"
)

// Tuning constants for the attempt loop, named after the reference
// implementation's module-level defaults.
const (
	MaxBoardAttempts         = 10000
	SubprofileRerollInterval = 1000
	RSRerollInterval         = 500

	UnviableMinAttempts    = 100
	UnviableSuccessRateMax = 0.1
	UnviableMinFailures    = 5
)

// Deal is one fully matched board: 13 cards per seat, a dealer, and a
// vulnerability.
type Deal struct {
	BoardNumber   int
	Dealer        deck.Seat
	Vulnerability deck.Vulnerability
	Hands         map[deck.Seat][]deck.Card
}

// DealGenerationError is the single domain error kind raised by the builder
// on attempt exhaustion or unviable-profile determination.
type DealGenerationError struct {
	Msg string
}

func (e *DealGenerationError) Error() string {
	return e.Msg
}

func generationErrorf(format string, args ...any) *DealGenerationError {
	return &DealGenerationError{Msg: fmt.Sprintf(format, args...)}
}

// processingOrder returns the profile's constrained seats with RS seats
// first, independent of dealing_order, so PC/OC resolution always sees its
// referenced seat's RS choice already recorded.
func processingOrder(p *profile.HandProfile, sel selector.Selection) []deck.Seat {
	var rsSeats, otherSeats []deck.Seat
	for _, seat := range p.ConstrainedSeats() {
		if _, ok := sel.ChosenSubprofile[seat].RandomSuit(); ok {
			rsSeats = append(rsSeats, seat)
		} else {
			otherSeats = append(otherSeats, seat)
		}
	}
	return append(rsSeats, otherSeats...)
}

// allowedSuitsByRef maps every RS-carrying seat to its allowed_suits list,
// for PC/OC UseNonChosenSuit resolution.
func allowedSuitsByRef(sel selector.Selection) map[deck.Seat][]deck.Suit {
	out := make(map[deck.Seat][]deck.Suit, len(sel.ChosenSubprofile))
	for seat, sub := range sel.ChosenSubprofile {
		if rs, ok := sub.RandomSuit(); ok {
			out[seat] = rs.AllowedSuits
		}
	}
	return out
}

// recordFailure applies the §4.7 taxonomy for one failing attempt: seats
// processed before the culprit get GlobalOther, the culprit gets AsSeat plus
// an HCP/Shape bucket when classified, and seats never reached get
// GlobalUnchecked.
func recordFailure(counters map[deck.Seat]observer.SeatCounters, order []deck.Seat, culprit deck.Seat, reason match.FailReason) {
	reachedCulprit := false
	for _, seat := range order {
		c := counters[seat]
		switch {
		case seat == culprit:
			c.AsSeat++
			switch reason {
			case match.FailHCP:
				c.HCP++
			case match.FailShape:
				c.Shape++
			}
			reachedCulprit = true
		case !reachedCulprit:
			c.GlobalOther++
		default:
			c.GlobalUnchecked++
		}
		counters[seat] = c
	}
}

// recordGateRejection applies the §4.7 taxonomy for a dealer-level HCP
// feasibility gate rejection: since that gate runs before the matcher is
// ever invoked, no seat "passed" a match this attempt. The culprit gets
// AsSeat plus HCP; every other constrained seat is GlobalUnchecked.
func recordGateRejection(counters map[deck.Seat]observer.SeatCounters, order []deck.Seat, culprit deck.Seat) {
	for _, seat := range order {
		c := counters[seat]
		if seat == culprit {
			c.AsSeat++
			c.HCP++
		} else {
			c.GlobalUnchecked++
		}
		counters[seat] = c
	}
}

// reachedSeats returns the seats whose outcome actually counts as an
// evaluated attempt, for unviableSeats' success-rate denominator: a
// gate-rejected attempt only ever evaluates its culprit (the matcher never
// runs), a matching attempt evaluates every seat in order, and a failing
// attempt evaluates the order-prefix up to and including the culprit —
// seats after it are GlobalUnchecked and must not inflate their attempt
// count.
func reachedSeats(order []deck.Seat, outcome attemptOutcome) []deck.Seat {
	if outcome.ok {
		return order
	}
	if outcome.gateRejected {
		return []deck.Seat{outcome.culprit}
	}
	var reached []deck.Seat
	for _, seat := range order {
		reached = append(reached, seat)
		if seat == outcome.culprit {
			break
		}
	}
	return reached
}

// earlyHCPCheck is the cheap O(13) total-HCP pre-check the main loop runs
// before the full matcher, so an out-of-range hand never pays for per-suit
// analysis.
func earlyHCPCheck(hand []deck.Card, sub profile.Subprofile) bool {
	total := 0
	for _, c := range hand {
		total += c.HCP()
	}
	return total >= sub.Standard.TotalMinHCP && total <= sub.Standard.TotalMaxHCP
}

// attemptOutcome is the result of one dealt-and-matched attempt.
type attemptOutcome struct {
	ok           bool
	gateRejected bool
	culprit      deck.Seat
	reason       match.FailReason
	hands        map[deck.Seat][]deck.Card
}

func runAttempt(
	p *profile.HandProfile,
	order []deck.Seat,
	sel selector.Selection,
	rsChoices map[deck.Seat][]deck.Suit,
	allowedByRef map[deck.Seat][]deck.Suit,
	rng *rand.Rand,
	boardNumber, attempt int,
	obs observer.Observer,
) attemptOutcome {
	result := dealer.DealWithRS(p.DealingOrder, sel.ChosenSubprofile, rsChoices, rng)
	for _, seat := range result.HelpSeats {
		obs.OnHelpApplied(boardNumber, attempt, seat)
	}
	if !result.OK {
		return attemptOutcome{ok: false, gateRejected: true, culprit: result.RejectedSeat, reason: match.FailHCP}
	}

	sharedRSChoices := make(map[deck.Seat][]deck.Suit, len(result.RSChoices))
	for seat, suits := range result.RSChoices {
		sharedRSChoices[seat] = suits
	}

	for _, seat := range order {
		sub := sel.ChosenSubprofile[seat]
		hand := result.Hands[seat]

		if !earlyHCPCheck(hand, sub) {
			return attemptOutcome{ok: false, culprit: seat, reason: match.FailHCP, hands: result.Hands}
		}

		sp := p.SeatProfiles[seat]
		preSelected := rsChoices[seat]
		matched, chosen, reason := match.MatchSeat(seat, hand, sp, sub, sel.ChosenIndex[seat]+1, p.SubprofileExclusions, sharedRSChoices, allowedByRef, rng, preSelected)
		if !matched {
			return attemptOutcome{ok: false, culprit: seat, reason: reason, hands: result.Hands}
		}
		if chosen != nil {
			sharedRSChoices[seat] = chosen
		}
	}

	return attemptOutcome{ok: true, hands: result.Hands}
}

// fastPath builds a board with no constraint checking at all: shuffle and
// slice 13 per seat in dealing order. Used for profiles tagged
// is_invariants_safety_profile, for smoke-testing invariants without
// exercising the matcher.
func fastPath(p *profile.HandProfile, boardNumber int, rng *rand.Rand) Deal {
	d := deck.NewDeck()
	d.Shuffle(rng)
	hands := make(map[deck.Seat][]deck.Card, 4)
	for _, seat := range p.DealingOrder {
		hands[seat] = d.DealN(13)
	}
	return Deal{
		BoardNumber:   boardNumber,
		Dealer:        p.Dealer,
		Vulnerability: deck.VulnerabilityForBoard(boardNumber, 0),
		Hands:         hands,
	}
}

// BuildBoard runs the full attempt loop for one board number: subprofile
// selection, dealing, matching, periodic rerolls, and unviable early
// termination. p must already have passed Validate.
func BuildBoard(p *profile.HandProfile, boardNumber int, rng *rand.Rand, cache *feasibility.ViabilityCache, obs observer.Observer) (Deal, error) {
	if obs == nil {
		obs = observer.NoopObserver{}
	}

	if p.IsInvariantsSafetyProfile {
		return fastPath(p, boardNumber, rng), nil
	}

	constrained := p.ConstrainedSeats()
	counters := make(map[deck.Seat]observer.SeatCounters, len(constrained))
	attempts := make(map[deck.Seat]int, len(constrained))
	successes := make(map[deck.Seat]int, len(constrained))
	for _, seat := range constrained {
		counters[seat] = observer.SeatCounters{}
	}

	sel := selector.SelectBoard(p, rng, cache)
	order := processingOrder(p, sel)
	allowedByRef := allowedSuitsByRef(sel)
	rsChoices := dealer.PreSelectRS(p.DealingOrder, sel.ChosenSubprofile, rng)

	for attempt := 1; attempt <= MaxBoardAttempts; attempt++ {
		if attempt > 1 && attempt%SubprofileRerollInterval == 1 {
			sel = selector.SelectBoard(p, rng, cache)
			order = processingOrder(p, sel)
			allowedByRef = allowedSuitsByRef(sel)
			rsChoices = dealer.PreSelectRS(p.DealingOrder, sel.ChosenSubprofile, rng)
		} else if attempt > 1 && attempt%RSRerollInterval == 1 {
			rsChoices = dealer.PreSelectRS(p.DealingOrder, sel.ChosenSubprofile, rng)
		}

		outcome := runAttempt(p, order, sel, rsChoices, allowedByRef, rng, boardNumber, attempt, obs)

		for _, seat := range reachedSeats(order, outcome) {
			attempts[seat]++
		}

		if outcome.ok {
			for _, seat := range order {
				successes[seat]++
			}
			obs.OnAttempt(boardNumber, attempt, counters)
			return Deal{
				BoardNumber:   boardNumber,
				Dealer:        p.Dealer,
				Vulnerability: deck.VulnerabilityForBoard(boardNumber, 0),
				Hands:         outcome.hands,
			}, nil
		}

		if outcome.gateRejected {
			recordGateRejection(counters, order, outcome.culprit)
		} else {
			recordFailure(counters, order, outcome.culprit, outcome.reason)
		}
		obs.OnAttempt(boardNumber, attempt, counters)

		if attempt >= UnviableMinAttempts {
			if culpable := unviableSeats(attempts, successes); len(culpable) > 0 {
				obs.OnExhausted(boardNumber, attempt, counters, culpable)
				return Deal{}, generationErrorf("unviable profile on board %d: seat(s) %v have empirical success rate <= %.0f%% with >= %d failures", boardNumber, culpable, UnviableSuccessRateMax*100, UnviableMinFailures)
			}
		}
	}

	obs.OnExhausted(boardNumber, MaxBoardAttempts, counters, nil)
	return Deal{}, generationErrorf("board %d exhausted %d attempts without a match", boardNumber, MaxBoardAttempts)
}

// unviableSeats returns the seats whose empirical success rate is at or
// below UnviableSuccessRateMax with at least UnviableMinFailures failures.
func unviableSeats(attempts, successes map[deck.Seat]int) []deck.Seat {
	var out []deck.Seat
	for seat, n := range attempts {
		failures := n - successes[seat]
		if failures < UnviableMinFailures {
			continue
		}
		rate := float64(successes[seat]) / float64(n)
		if rate <= UnviableSuccessRateMax {
			out = append(out, seat)
		}
	}
	return out
}
