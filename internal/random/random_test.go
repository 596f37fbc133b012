package random_test

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/internal/random"
)

func TestZeroSeedIsReproducible(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true
	b := random.NewRandom()
	b.ZeroSeed = true

	for i := 0; i < 10; i++ {
		if got, want := a.Intn(1000), b.Intn(1000); got != want {
			t.Fatalf("draw %d: %d != %d, want equal sequences from a zeroed seed", i, got, want)
		}
	}
}

func TestIntnRange(t *testing.T) {
	r := random.NewRandom()
	for i := 0; i < 100; i++ {
		if v := r.Intn(8); v < 0 || v >= 8 {
			t.Fatalf("Intn(8) = %d, want [0,8)", v)
		}
	}
}
