package charts

import (
	"testing"
)

func TestPalette_BaseColorsFixed(t *testing.T) {
	p := NewPalette(1)
	first := p.Color(0)
	if first.R != 0x3a || first.G != 0x86 || first.B != 0xff {
		t.Errorf("color 0 = %+v, want #3a86ff", first)
	}
	if got := p.Color(7); got != basePalette[7] {
		t.Errorf("color 7 = %+v, want %+v", got, basePalette[7])
	}
}

func TestPalette_SeededOverflowReproducible(t *testing.T) {
	a := NewPalette(42)
	b := NewPalette(42)
	for i := 8; i < 16; i++ {
		if a.Color(i) != b.Color(i) {
			t.Errorf("color %d differs across palettes with same seed", i)
		}
	}

	// same instance is stable across repeated lookups
	first := a.Color(10)
	if a.Color(10) != first {
		t.Error("color 10 changed between lookups")
	}
}

func TestPalette_DifferentSeedsDiverge(t *testing.T) {
	a := NewPalette(1)
	b := NewPalette(2)
	same := true
	for i := 8; i < 12; i++ {
		if a.Color(i) != b.Color(i) {
			same = false
		}
	}
	if same {
		t.Error("overflow colors identical across different seeds")
	}
}

func TestCorrelationColor(t *testing.T) {
	if got := CorrelationColor(1); got != corrIdentity {
		t.Errorf("diagonal color = %+v", got)
	}

	pos := CorrelationColor(0.5)
	if pos.R != corrPositive.R || pos.A == 0 || pos.A == 255 {
		t.Errorf("positive color = %+v, want blue with scaled alpha", pos)
	}

	neg := CorrelationColor(-1)
	if neg.R != corrNegative.R || neg.A != 255 {
		t.Errorf("negative color = %+v, want fully opaque red", neg)
	}

	strong := CorrelationColor(0.9)
	weak := CorrelationColor(0.1)
	if strong.A <= weak.A {
		t.Errorf("alpha should scale with |v|: 0.9 -> %d, 0.1 -> %d", strong.A, weak.A)
	}
}

func TestCorrelationBand(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.9, "strong positive"},
		{0.5, "moderate positive"},
		{0.1, "weak positive"},
		{0, "weak positive"},
		{-0.1, "weak negative"},
		{-0.5, "moderate negative"},
		{-0.9, "strong negative"},
	}
	for _, tt := range tests {
		if got := CorrelationBand(tt.v); got != tt.want {
			t.Errorf("CorrelationBand(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestHSLToColor_PrimaryHues(t *testing.T) {
	red := hslToColor(0, 1, 0.5)
	if red.R != 255 || red.G != 0 || red.B != 0 {
		t.Errorf("hsl(0,100%%,50%%) = %+v, want pure red", red)
	}
	green := hslToColor(120, 1, 0.5)
	if green.G != 255 || green.R != 0 {
		t.Errorf("hsl(120,100%%,50%%) = %+v, want pure green", green)
	}
}
