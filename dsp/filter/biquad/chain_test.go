package biquad

import (
	"math"
	"testing"
)

func TestChainSingleSectionMatchesSection(t *testing.T) {
	c := Coefficients{B0: 0.4, B1: 0.1, B2: -0.2, A1: -0.3, A2: 0.1}
	chain := NewChain([]Coefficients{c})
	section := NewSection(c)

	for i := 0; i < 32; i++ {
		x := math.Cos(float64(i) * 0.21)
		if got, want := chain.ProcessSample(x), section.ProcessSample(x); !almostEqual(got, want, 1e-15) {
			t.Fatalf("sample %d: chain %v != section %v", i, got, want)
		}
	}
}

func TestChainCascadeOrderIndependentForLTI(t *testing.T) {
	a := Coefficients{B0: 0.5, B1: 0.5, A1: -0.2}
	b := Coefficients{B0: 0.7, B1: -0.3, A1: 0.1}

	ir1 := NewChain([]Coefficients{a, b}).ImpulseResponse(32)
	ir2 := NewChain([]Coefficients{b, a}).ImpulseResponse(32)

	for i := range ir1 {
		if !almostEqual(ir1[i], ir2[i], 1e-12) {
			t.Fatalf("index %d: %v != %v", i, ir1[i], ir2[i])
		}
	}
}

func TestChainEmpty(t *testing.T) {
	chain := NewChain(nil)
	if chain.NumSections() != 0 {
		t.Fatalf("NumSections = %d, want 0", chain.NumSections())
	}
	if got := chain.ProcessSample(0.7); got != 0.7 {
		t.Fatalf("empty chain: got %v, want passthrough", got)
	}
}

func TestChainProcessBlockMatchesPerSample(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.3, B1: 0.2, B2: 0.1, A1: -0.4, A2: 0.2},
		{B0: 0.9, B1: -0.1, A1: 0.05},
	}

	input := make([]float64, 48)
	for i := range input {
		input[i] = math.Sin(float64(i) * 0.5)
	}

	perSample := NewChain(coeffs)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewChain(coeffs)
	got := make([]float64, len(input))
	copy(got, input)
	block.ProcessBlock(got)

	for i := range want {
		if !almostEqual(got[i], want[i], 1e-15) {
			t.Fatalf("index %d: block %v != sample %v", i, got[i], want[i])
		}
	}
}

func TestChainReset(t *testing.T) {
	chain := NewChain([]Coefficients{{B0: 1, A1: -0.9}, {B0: 1, A1: -0.8}})
	chain.ProcessSample(1)
	chain.Reset()

	if got := chain.ProcessSample(0); got != 0 {
		t.Fatalf("after reset: got %v, want 0", got)
	}
}

func TestChainImpulseResponseLeavesStateClean(t *testing.T) {
	chain := NewChain([]Coefficients{{B0: 1, A1: -0.5}})
	chain.ImpulseResponse(16)

	if got := chain.ProcessSample(0); got != 0 {
		t.Fatalf("state not clean after ImpulseResponse: got %v", got)
	}
}
