package fastrand

import "testing"

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		va := a.Intn(1000)
		vb := b.Intn(1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestNewDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to diverge within 20 draws")
	}
}

func TestPCG32IntnRange(t *testing.T) {
	r := NewPCG32(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(13)
		if v < 0 || v >= 13 {
			t.Fatalf("Intn(13) out of range: %d", v)
		}
	}
}
