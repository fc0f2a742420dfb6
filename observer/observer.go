// Package observer defines the diagnostic callback interface threaded
// through the board builder and deal-set driver, replacing the reference
// implementation's mutable module-level debug hooks with an explicit
// parameter so multiple concurrent runs never share hook state.
package observer

import "github.com/lox/bridgedeal/deck"

// SeatCounters is the per-seat failure-taxonomy tally the board builder
// maintains across one board's attempts.
type SeatCounters struct {
	AsSeat          int // this seat was the first to fail the attempt
	GlobalOther     int // this seat passed, but a later seat failed
	GlobalUnchecked int // this seat was never reached (an earlier seat failed first)
	HCP             int // first-failure cause classified as HCP
	Shape           int // first-failure cause classified as shape
}

// ViabilitySummary classifies a seat's empirical success rate for
// diagnostics: "unknown", "unviable", "unlikely", or "likely".
type ViabilitySummary struct {
	Attempts    int
	Successes   int
	Failures    int
	SuccessRate float64
	Viability   string
}

// Observer receives progress and diagnostic events from board generation.
// All methods must tolerate being called frequently and must not block;
// implementations that need to do expensive work should hand events off
// asynchronously themselves.
type Observer interface {
	// OnAttempt fires after every attempt within BuildBoard, successful or
	// not, with the current per-seat counters.
	OnAttempt(boardNumber, attempt int, counters map[deck.Seat]SeatCounters)

	// OnExhausted fires when a board's attempt budget is exhausted without
	// a match, or when unviable early termination triggers.
	OnExhausted(boardNumber, attempts int, counters map[deck.Seat]SeatCounters, culpable []deck.Seat)

	// OnHelpApplied fires when the shape-help dealer's pre-allocation path
	// is used for a seat on a given attempt.
	OnHelpApplied(boardNumber, attempt int, seat deck.Seat)

	// OnReseed fires when the deal-set driver replaces the RNG for a board
	// whose wall time exceeded the adaptive re-seed threshold.
	OnReseed(boardNumber int, elapsedSeconds float64)
}

// NoopObserver implements Observer with no-op methods, the default when a
// caller doesn't need diagnostics.
type NoopObserver struct{}

func (NoopObserver) OnAttempt(boardNumber, attempt int, counters map[deck.Seat]SeatCounters) {}
func (NoopObserver) OnExhausted(boardNumber, attempts int, counters map[deck.Seat]SeatCounters, culpable []deck.Seat) {
}
func (NoopObserver) OnHelpApplied(boardNumber, attempt int, seat deck.Seat) {}
func (NoopObserver) OnReseed(boardNumber int, elapsedSeconds float64)       {}

// ClassifyViability mirrors the reference implementation's simple,
// side-effect-free viability classification: not enough data below 10
// attempts with zero successes, "unviable" at 10+ attempts with zero
// successes, "unlikely" below a 10% success rate, "likely" otherwise.
func ClassifyViability(successes, attempts int) string {
	if attempts <= 0 {
		return "unknown"
	}
	if successes <= 0 {
		if attempts < 10 {
			return "unknown"
		}
		return "unviable"
	}
	rate := float64(successes) / float64(attempts)
	if rate < 0.1 {
		return "unlikely"
	}
	return "likely"
}
