package random

import "testing"

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		if got, want := a.IntN(100), b.IntN(100); got != want {
			t.Fatalf("sequence diverged at draw %d: %d != %d", i, got, want)
		}
	}
}

func TestBetweenBounds(t *testing.T) {
	src := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v := Between(src, 1, 3)
		if v < 1 || v > 2 {
			t.Fatalf("Between(1,3) out of range: %d", v)
		}
	}

	if got := Between(src, 5, 5); got != 5 {
		t.Fatalf("empty range should return lo, got %d", got)
	}
}

func TestPercentEdges(t *testing.T) {
	src := NewSeeded(7)
	if Percent(src, 0) {
		t.Fatal("0% chance should never pass")
	}
	if !Percent(src, 100) {
		t.Fatal("100% chance should always pass")
	}
}
