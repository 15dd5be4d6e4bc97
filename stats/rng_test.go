package stats

import "testing"

// TestTrialRNG_SeedPolicy checks seed==0 maps to defaultRNGSeed and that
// neighboring trials get different streams.
func TestTrialRNG_SeedPolicy(t *testing.T) {
	a := trialRNG(0, 3).Int63()
	b := trialRNG(defaultRNGSeed, 3).Int63()
	if a != b {
		t.Fatalf("seed 0 stream = %d; want default seed stream %d", a, b)
	}
	if trialRNG(5, 0).Int63() == trialRNG(5, 1).Int63() {
		t.Error("trials 0 and 1 share a stream")
	}
	if deriveSeed(1, 0) == deriveSeed(1, 1) {
		t.Error("deriveSeed collides on neighboring streams")
	}
}
