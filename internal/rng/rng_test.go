package rng

import "testing"

func TestRandBelowStaysInRange(t *testing.T) {
	src := New(42)
	for i := 0; i < 1000; i++ {
		v := src.RandBelow(7)
		if v >= 7 {
			t.Fatalf("RandBelow(7) returned %d, out of range", v)
		}
	}
}

func TestRandBelowZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RandBelow(0) should panic")
		}
	}()
	New(1).RandBelow(0)
}

func TestSeedIsReproducible(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 50; i++ {
		va := a.RandBelow(1000)
		vb := b.RandBelow(1000)
		if va != vb {
			t.Fatalf("same seed diverged at draw %d: %d != %d", i, va, vb)
		}
	}
}

func TestZeroSeedDoesNotPanic(t *testing.T) {
	src := New(0)
	_ = src.RandBelow(10)
}

func TestChanceBounds(t *testing.T) {
	src := New(7)
	alwaysFalse := 0
	alwaysTrue := 0
	for i := 0; i < 200; i++ {
		if src.Chance(0, 100) {
			alwaysTrue++
		}
		if src.Chance(100, 100) {
			alwaysFalse++
		}
	}
	if alwaysTrue != 0 {
		t.Errorf("Chance(0,100) should never succeed, succeeded %d times", alwaysTrue)
	}
	if alwaysFalse != 200 {
		t.Errorf("Chance(100,100) should always succeed, only did %d/200", alwaysFalse)
	}
}
