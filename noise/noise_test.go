package noise

import (
	"math"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(6, 0.6, 1082)
	b := NewNoise(6, 0.6, 1082)
	for x := 0.0; x < 10; x += 0.7 {
		for y := 0.0; y < 10; y += 0.7 {
			if a.Eval2(x, y) != b.Eval2(x, y) {
				t.Fatalf("same seed produced different values at (%f, %f)", x, y)
			}
		}
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise(6, 0.6, 1082)
	for x := -50.0; x < 50; x += 1.3 {
		for y := -50.0; y < 50; y += 1.3 {
			v := n.Eval2(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("value %f at (%f, %f) out of [0,1]", v, x, y)
			}
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(1082)
	b := NewSampler(1082)
	for x := -100.0; x < 100; x += 7.3 {
		for y := -100.0; y < 100; y += 7.3 {
			ha, ga := a.Sample2(x, y)
			hb, gb := b.Sample2(x, y)
			if ha != hb || ga != gb {
				t.Fatalf("same seed produced different samples at (%f, %f)", x, y)
			}
		}
	}
}

func TestSamplerHeightRange(t *testing.T) {
	s := NewSampler(1082)
	for x := -500.0; x < 500; x += 13.7 {
		for y := -500.0; y < 500; y += 13.7 {
			h := s.Height(x, y)
			if math.IsNaN(h) || h < 0 || h > 1 {
				t.Fatalf("height %f at (%f, %f) out of [0,1]", h, x, y)
			}
		}
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	a := NewSampler(1)
	b := NewSampler(2)
	for x := 0.0; x < 200; x += 11.1 {
		for y := 0.0; y < 200; y += 11.1 {
			if a.Height(x, y) != b.Height(x, y) {
				return
			}
		}
	}
	t.Fatal("different seeds produced identical height fields")
}

func TestSample2HeightMatchesHeight(t *testing.T) {
	s := NewSampler(1082)
	for x := 0.0; x < 100; x += 9.9 {
		for y := 0.0; y < 100; y += 9.9 {
			h, _ := s.Sample2(x, y)
			if h != s.Height(x, y) {
				t.Fatalf("Sample2 height disagrees with Height at (%f, %f)", x, y)
			}
		}
	}
}
