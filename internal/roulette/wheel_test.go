package roulette

import "testing"

func TestColorOfZero(t *testing.T) {
	if c := ColorOf(0); c != Green {
		t.Fatalf("zero should be green; got %s", c)
	}
}

func TestColorOfPartition(t *testing.T) {
	reds, blacks := 0, 0
	for n := 1; n <= 36; n++ {
		switch ColorOf(n) {
		case Red:
			reds++
		case Black:
			blacks++
		default:
			t.Fatalf("number %d has color %s; want red or black", n, ColorOf(n))
		}
	}
	if reds != 18 || blacks != 18 {
		t.Fatalf("want 18 red and 18 black; got %d red %d black", reds, blacks)
	}
}

func TestColorOfKnownPockets(t *testing.T) {
	cases := map[int]Color{
		1: Red, 3: Red, 18: Red, 19: Red, 32: Red, 36: Red,
		2: Black, 4: Black, 10: Black, 17: Black, 28: Black, 35: Black,
	}
	for n, want := range cases {
		if got := ColorOf(n); got != want {
			t.Fatalf("ColorOf(%d)=%s; want %s", n, got, want)
		}
	}
}

func TestNumberSets(t *testing.T) {
	reds := RedNumbers()
	blacks := BlackNumbers()
	if len(reds) != 18 || len(blacks) != 18 {
		t.Fatalf("want 18+18 pockets; got %d red %d black", len(reds), len(blacks))
	}
	seen := make(map[int]bool)
	for _, n := range reds {
		if ColorOf(n) != Red {
			t.Fatalf("RedNumbers contains non-red %d", n)
		}
		seen[n] = true
	}
	for _, n := range blacks {
		if ColorOf(n) != Black {
			t.Fatalf("BlackNumbers contains non-black %d", n)
		}
		if seen[n] {
			t.Fatalf("number %d in both sets", n)
		}
		seen[n] = true
	}
	for n := 1; n <= 36; n++ {
		if !seen[n] {
			t.Fatalf("number %d missing from both sets", n)
		}
	}
}

func TestRangeSets(t *testing.T) {
	for _, n := range evenNumbers() {
		if n%2 != 0 || n < 2 || n > 36 {
			t.Fatalf("evenNumbers contains %d", n)
		}
	}
	for _, n := range oddNumbers() {
		if n%2 != 1 || n < 1 || n > 35 {
			t.Fatalf("oddNumbers contains %d", n)
		}
	}
	low, high := lowNumbers(), highNumbers()
	if len(low) != 18 || low[0] != 1 || low[17] != 18 {
		t.Fatalf("lowNumbers wrong: %v", low)
	}
	if len(high) != 18 || high[0] != 19 || high[17] != 36 {
		t.Fatalf("highNumbers wrong: %v", high)
	}
}
