// Package dealset drives whole-session deal generation: per-board retries
// with a single advancing RNG, adaptive re-seeding on slow boards, and
// vulnerability/rotation post-processing across the finished set.
package dealset

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"

	"github.com/coder/quartz"

	"github.com/lox/bridgedeal/builder"
	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/feasibility"
	"github.com/lox/bridgedeal/internal/fastrand"
	"github.com/lox/bridgedeal/observer"
	"github.com/lox/bridgedeal/profile"
)

// MaxBoardRetries bounds how many times GenerateDeals re-invokes BuildBoard
// for a single board before giving up, named after the reference
// implementation's default.
const MaxBoardRetries = 50

// ReseedThresholdSeconds is the wall-time budget for one board's retry
// window before the RNG is replaced with a fresh OS-entropy seed. A var,
// not a const, so tests can adjust it to exercise the reseed path under a
// quartz.Mock without waiting on real wall-clock time. Exactly 0 disables
// adaptive re-seeding entirely, making GenerateDeals a pure function of
// (profile, n, seed, rotate) per spec.md §8 — a negative value instead
// forces a reseed on every retry (elapsed time is never negative), which
// is how tests exercise the reseed path without a clock that ticks on its
// own.
var ReseedThresholdSeconds = 1.75

// DealSet is the complete output of one generation run.
type DealSet struct {
	Deals       []builder.Deal
	BoardTimes  []float64
	ReseedCount int
	Viability   SeatViabilityReport
}

// SeatViabilityReport summarizes, per seat, how often that seat's
// constraint was the attributed cause of a failed attempt across the whole
// run, classified with observer.ClassifyViability. This supplements
// spec.md's per-board diagnostics with a whole-run rollup, the way the
// reference implementation's CLI prints a final viability table after a
// batch run.
type SeatViabilityReport map[deck.Seat]observer.ViabilitySummary

// freshSeed draws a seed from OS entropy, used by adaptive re-seeding when
// a board's wall time runs long enough to suspect the RNG stream is stuck
// in an unproductive region.
func freshSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand failure is exceptionally rare (kernel entropy source
		// gone); fall back to a fixed but distinct seed rather than panic,
		// since a reseed is a best-effort recovery step, not a correctness
		// requirement.
		return 0x5bd1e995
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// collectingObserver wraps a caller-supplied Observer and additionally
// accumulates per-seat failure totals across every board in the run, for
// SeatViabilityReport.
type collectingObserver struct {
	inner    observer.Observer
	lastSeen map[deck.Seat]observer.SeatCounters
	asSeat   map[deck.Seat]int
	boards   map[deck.Seat]int
}

func newCollectingObserver(inner observer.Observer) *collectingObserver {
	return &collectingObserver{
		inner:  inner,
		asSeat: make(map[deck.Seat]int),
		boards: make(map[deck.Seat]int),
	}
}

func (c *collectingObserver) OnAttempt(boardNumber, attempt int, counters map[deck.Seat]observer.SeatCounters) {
	c.lastSeen = counters
	c.inner.OnAttempt(boardNumber, attempt, counters)
}

func (c *collectingObserver) OnExhausted(boardNumber, attempts int, counters map[deck.Seat]observer.SeatCounters, culpable []deck.Seat) {
	c.inner.OnExhausted(boardNumber, attempts, counters, culpable)
}

func (c *collectingObserver) OnHelpApplied(boardNumber, attempt int, seat deck.Seat) {
	c.inner.OnHelpApplied(boardNumber, attempt, seat)
}

func (c *collectingObserver) OnReseed(boardNumber int, elapsedSeconds float64) {
	c.inner.OnReseed(boardNumber, elapsedSeconds)
}

// recordBoard folds the last-seen counters snapshot for one completed board
// attempt into the running per-seat totals, then clears the snapshot so the
// next board starts clean.
func (c *collectingObserver) recordBoard() {
	for seat, counters := range c.lastSeen {
		c.boards[seat]++
		c.asSeat[seat] += counters.AsSeat
	}
	c.lastSeen = nil
}

func (c *collectingObserver) report(n int) SeatViabilityReport {
	out := make(SeatViabilityReport, len(c.boards))
	for seat, boards := range c.boards {
		failures := c.asSeat[seat]
		successes := boards
		if successes > n {
			successes = n
		}
		out[seat] = observer.ViabilitySummary{
			Attempts:    successes + failures,
			Successes:   successes,
			Failures:    failures,
			SuccessRate: float64(successes) / float64(successes+failures+1e-9),
			Viability:   observer.ClassifyViability(successes, successes+failures),
		}
	}
	return out
}

// GenerateDeals produces n deals for p, starting from seed and advancing a
// single fastrand-backed RNG across boards and retries. clock drives
// adaptive re-seeding; pass quartz.NewReal() in production and a
// quartz.Mock in tests. When rotate is true, each deal independently has a
// 50% chance of N<->S/E<->W seat rotation after vulnerability assignment.
func GenerateDeals(p *profile.HandProfile, n int, rotate bool, seed int64, clock quartz.Clock, obs observer.Observer) (DealSet, error) {
	if obs == nil {
		obs = observer.NoopObserver{}
	}
	co := newCollectingObserver(obs)

	rng := fastrand.New(seed)
	cache := feasibility.NewViabilityCache(feasibility.ViabilityCacheSize)

	deals := make([]builder.Deal, 0, n)
	boardTimes := make([]float64, 0, n)
	reseedCount := 0

	for boardNumber := 1; boardNumber <= n; boardNumber++ {
		boardStart := clock.Now()
		windowStart := boardStart

		var deal builder.Deal
		var lastErr error
		succeeded := false

		for retry := 0; retry < MaxBoardRetries; retry++ {
			if elapsed := clock.Now().Sub(windowStart).Seconds(); ReseedThresholdSeconds != 0 && elapsed > ReseedThresholdSeconds {
				rng = fastrand.New(freshSeed())
				windowStart = clock.Now()
				reseedCount++
				obs.OnReseed(boardNumber, elapsed)
			}

			d, err := builder.BuildBoard(p, boardNumber, rng, cache, co)
			co.recordBoard()
			if err == nil {
				deal = d
				succeeded = true
				break
			}
			lastErr = err
		}

		if !succeeded {
			return DealSet{}, fmt.Errorf("board %d: exhausted %d retries: %w", boardNumber, MaxBoardRetries, lastErr)
		}

		deals = append(deals, deal)
		boardTimes = append(boardTimes, clock.Now().Sub(boardStart).Seconds())
	}

	applyPostProcessing(deals, rotate, rng)

	return DealSet{
		Deals:       deals,
		BoardTimes:  boardTimes,
		ReseedCount: reseedCount,
		Viability:   co.report(n),
	}, nil
}

// applyPostProcessing assigns a shared cyclic vulnerability starting from a
// random offset, then optionally rotates each deal independently.
func applyPostProcessing(deals []builder.Deal, rotate bool, rng *mrand.Rand) {
	offset := rng.Intn(4)
	for i := range deals {
		deals[i].Vulnerability = deck.VulnerabilityForBoard(deals[i].BoardNumber, offset)
		if rotate && rng.Intn(2) == 0 {
			rotateDeal(&deals[i])
		}
	}
}

// rotateDeal swaps N<->S and E<->W in both the hands and the dealer seat,
// leaving vulnerability untouched.
func rotateDeal(d *builder.Deal) {
	d.Dealer = d.Dealer.Partner()
	hands := d.Hands
	hands[deck.North], hands[deck.South] = hands[deck.South], hands[deck.North]
	hands[deck.East], hands[deck.West] = hands[deck.West], hands[deck.East]
}
