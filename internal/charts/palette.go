// Package charts renders the analysis views as PNG images
package charts

import (
	"math"
	"math/rand"
	"sync"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// basePalette is the fixed 8-color series palette. Series beyond the
// eighth get generated HSL colors.
var basePalette = []drawing.Color{
	drawing.ColorFromHex("3a86ff"),
	drawing.ColorFromHex("ff6b6b"),
	drawing.ColorFromHex("10b981"),
	drawing.ColorFromHex("8b5cf6"),
	drawing.ColorFromHex("f59e0b"),
	drawing.ColorFromHex("64748b"),
	drawing.ColorFromHex("ec4899"),
	drawing.ColorFromHex("06b6d4"),
}

// Correlation matrix colors.
var (
	corrIdentity = drawing.Color{R: 16, G: 185, B: 129, A: 255}
	corrPositive = drawing.Color{R: 58, G: 134, B: 255}
	corrNegative = drawing.Color{R: 239, G: 68, B: 68}
)

// Palette hands out series colors: the fixed base palette first, then
// seeded random HSL colors (hue 0-359, saturation 50-80%, lightness
// 45-65%). Generated colors are memoized per index, so the same
// palette instance gives a stable color per series for its lifetime,
// and the same seed reproduces the sequence across runs.
type Palette struct {
	mu        sync.Mutex
	rng       *rand.Rand
	generated []drawing.Color
}

// NewPalette creates a palette whose overflow colors derive from seed.
func NewPalette(seed int64) *Palette {
	return &Palette{rng: rand.New(rand.NewSource(seed))}
}

// Color returns the color for series index i.
func (p *Palette) Color(i int) drawing.Color {
	if i < len(basePalette) {
		return basePalette[i]
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.generated) <= i-len(basePalette) {
		h := float64(p.rng.Intn(360))
		s := 0.50 + p.rng.Float64()*0.30
		l := 0.45 + p.rng.Float64()*0.20
		p.generated = append(p.generated, hslToColor(h, s, l))
	}
	return p.generated[i-len(basePalette)]
}

// Colors returns the first n series colors.
func (p *Palette) Colors(n int) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		out[i] = p.Color(i)
	}
	return out
}

// CorrelationColor maps a correlation coefficient to a cell color:
// the diagonal (v == 1) uses a fixed identity color, positive values a
// blue scaled by v, negative values a red scaled by |v|.
func CorrelationColor(v float64) drawing.Color {
	switch {
	case v == 1:
		return corrIdentity
	case v > 0:
		c := corrPositive
		c.A = uint8(math.Round(v * 255))
		return c
	case v < 0:
		c := corrNegative
		c.A = uint8(math.Round(-v * 255))
		return c
	default:
		return drawing.Color{R: 255, G: 255, B: 255, A: 255}
	}
}

// hslToColor converts HSL (h in degrees, s and l in [0,1]) to RGB.
func hslToColor(h, s, l float64) drawing.Color {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return drawing.Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
