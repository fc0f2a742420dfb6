package observer

import (
	"testing"

	"github.com/lox/bridgedeal/deck"
)

func TestClassifyViabilityUnknownBelowThreshold(t *testing.T) {
	if got := ClassifyViability(0, 3); got != "unknown" {
		t.Fatalf("ClassifyViability(0, 3) = %q, want unknown", got)
	}
}

func TestClassifyViabilityUnviableAfterTenFailures(t *testing.T) {
	if got := ClassifyViability(0, 10); got != "unviable" {
		t.Fatalf("ClassifyViability(0, 10) = %q, want unviable", got)
	}
}

func TestClassifyViabilityUnlikelyLowRate(t *testing.T) {
	if got := ClassifyViability(1, 20); got != "unlikely" {
		t.Fatalf("ClassifyViability(1, 20) = %q, want unlikely", got)
	}
}

func TestClassifyViabilityLikelyHighRate(t *testing.T) {
	if got := ClassifyViability(8, 10); got != "likely" {
		t.Fatalf("ClassifyViability(8, 10) = %q, want likely", got)
	}
}

func TestNoopObserverDoesNotPanic(t *testing.T) {
	var o Observer = NoopObserver{}
	o.OnAttempt(1, 1, nil)
	o.OnExhausted(1, 10, nil, nil)
	o.OnHelpApplied(1, 1, deck.North)
	o.OnReseed(1, 2.0)
}
