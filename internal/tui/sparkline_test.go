package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSparklineAlwaysExactWidth(t *testing.T) {
	const width = 10

	for n := 0; n <= 15; n++ {
		samples := make([]int, n)
		for i := range samples {
			samples[i] = i * 7
		}
		got := Sparkline(samples, width)
		assert.Equal(t, width, lipgloss.Width(got), "with %d samples", n)
	}
}

func TestSparklineGrowsLeftToRight(t *testing.T) {
	got := Sparkline([]int{80, 90}, 5)

	// Two glyph cells, then three blank slots.
	assert.Equal(t, 5, lipgloss.Width(got))
	assert.Equal(t, "   ", got[len(got)-3:])
}

func TestSparklineDropsOldestBeyondWidth(t *testing.T) {
	full := Sparkline([]int{0, 0, 0, 100, 100, 100}, 3)
	recent := Sparkline([]int{100, 100, 100}, 3)

	assert.Equal(t, recent, full)
}

func TestSparkGlyphScale(t *testing.T) {
	assert.Equal(t, '▁', sparkGlyph(0))
	assert.Equal(t, '█', sparkGlyph(100))
	assert.Equal(t, '▁', sparkGlyph(-5))
	assert.Equal(t, '█', sparkGlyph(250))

	// Monotone in signal.
	prev := sparkGlyph(0)
	for s := 0; s <= 100; s += 5 {
		g := sparkGlyph(s)
		assert.GreaterOrEqual(t, g, prev)
		prev = g
	}
}
