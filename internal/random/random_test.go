package random

import (
	"errors"
	"testing"
)

func TestResetReproducesSequence(t *testing.T) {
	r := New(0xdeadbeef)

	var first [64]float64
	for i := range first {
		v, err := r.Float(0, 1)
		if err != nil {
			t.Fatalf("Float: %v", err)
		}
		first[i] = v
	}

	if err := r.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for i := range first {
		v, _ := r.Float(0, 1)
		if v != first[i] {
			t.Fatalf("sequence diverged after Reset at %d: %f != %f", i, v, first[i])
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		va, _ := a.Unsigned(0, 1000)
		vb, _ := b.Unsigned(0, 1000)
		if va != vb {
			t.Fatalf("draw %d differs: %d != %d", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	different := false
	for i := 0; i < 100; i++ {
		va, _ := a.Float(0, 1)
		vb, _ := b.Float(0, 1)
		if va != vb {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different sequences")
	}
}

func TestRanges(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		f, err := r.Float(-1, 1)
		if err != nil || f < -1 || f >= 1 {
			t.Fatalf("Float(-1,1) = %f, %v", f, err)
		}
		s, err := r.Signed(-3, 3)
		if err != nil || s < -3 || s > 3 {
			t.Fatalf("Signed(-3,3) = %d, %v", s, err)
		}
		u, err := r.Unsigned(2, 5)
		if err != nil || u < 2 || u > 5 {
			t.Fatalf("Unsigned(2,5) = %d, %v", u, err)
		}
	}
}

func TestIntegerBoundsInclusive(t *testing.T) {
	r := New(99)
	seen := map[uint32]bool{}
	for i := 0; i < 1000; i++ {
		u, _ := r.Unsigned(0, 1)
		seen[u] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("Expected both bounds to be drawn, got %v", seen)
	}
}

func TestFullWidthRanges(t *testing.T) {
	r := New(5)
	if _, err := r.Unsigned(0, ^uint32(0)); err != nil {
		t.Errorf("Unsigned full range: %v", err)
	}
	if _, err := r.Signed(-1<<31, 1<<31-1); err != nil {
		t.Errorf("Signed full range: %v", err)
	}
}

func TestInvalidRange(t *testing.T) {
	r := New(1)
	cases := []struct {
		name string
		call func() error
	}{
		{"float equal", func() error { _, err := r.Float(1, 1); return err }},
		{"float inverted", func() error { _, err := r.Float(2, 1); return err }},
		{"signed equal", func() error { _, err := r.Signed(0, 0); return err }},
		{"unsigned inverted", func() error { _, err := r.Unsigned(5, 4); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestLifecycleErrors(t *testing.T) {
	var r Random
	if _, err := r.Float(0, 1); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized, got %v", err)
	}
	if err := r.Reset(); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized from Reset, got %v", err)
	}
	if err := r.Initialize(3); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := r.Initialize(4); !errors.Is(err, ErrInitialized) {
		t.Errorf("Expected ErrInitialized, got %v", err)
	}
	if r.Seed() != 3 {
		t.Errorf("Expected seed 3, got %d", r.Seed())
	}
}

func TestString(t *testing.T) {
	r := New(0xdeadbeef)
	want := "<RANDOM> (INITIALIZED, SEED. 0xdeadbeef)"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
