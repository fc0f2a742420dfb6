package deck

import "testing"

func TestSeatPartner(t *testing.T) {
	tests := map[Seat]Seat{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for seat, want := range tests {
		if got := seat.Partner(); got != want {
			t.Errorf("%s.Partner() = %s, want %s", seat, got, want)
		}
	}
}

func TestSeatOpponents(t *testing.T) {
	if North.LeftOpponent() != East {
		t.Errorf("North.LeftOpponent() = %s, want E", North.LeftOpponent())
	}
	if North.RightOpponent() != West {
		t.Errorf("North.RightOpponent() = %s, want W", North.RightOpponent())
	}
}

func TestParseSeat(t *testing.T) {
	for _, c := range []byte{'N', 'e', 'S', 'w'} {
		if _, ok := ParseSeat(c); !ok {
			t.Errorf("ParseSeat(%q) failed, expected success", c)
		}
	}
	if _, ok := ParseSeat('X'); ok {
		t.Error("ParseSeat('X') succeeded, expected failure")
	}
}

func TestVulnerabilityForBoard(t *testing.T) {
	tests := []struct {
		board int
		want  Vulnerability
	}{
		{1, VulnNone},
		{2, VulnNS},
		{3, VulnEW},
		{4, VulnBoth},
		{5, VulnNone},
		{8, VulnBoth},
	}
	for _, tt := range tests {
		if got := VulnerabilityForBoard(tt.board, 0); got != tt.want {
			t.Errorf("VulnerabilityForBoard(%d, 0) = %s, want %s", tt.board, got, tt.want)
		}
	}
}

func TestVulnerabilityForBoardWithOffset(t *testing.T) {
	// An offset of 1 shifts board 1 to what board 2 would otherwise be.
	if got, want := VulnerabilityForBoard(1, 1), VulnerabilityForBoard(2, 0); got != want {
		t.Errorf("offset-shifted board 1 = %s, want %s", got, want)
	}
}
