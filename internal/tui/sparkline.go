package tui

import "strings"

// sparkGlyphs are the bar heights, weakest to strongest.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders signal samples as a fixed-width line of colored bar
// glyphs, oldest sample on the left. The result is always exactly width
// cells: unfilled slots render as blank space, so the line grows rightward
// as samples accumulate. Excess samples beyond width are dropped from the
// oldest end.
func Sparkline(samples []int, width int) string {
	if width <= 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	var b strings.Builder
	for _, s := range samples {
		b.WriteString(BandFor(s).Style().Render(string(sparkGlyph(s))))
	}
	if pad := width - len(samples); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// sparkGlyph maps a 0-100 signal onto a bar height.
func sparkGlyph(signal int) rune {
	if signal < 0 {
		signal = 0
	}
	if signal > 100 {
		signal = 100
	}
	idx := signal * (len(sparkGlyphs) - 1) / 100
	return sparkGlyphs[idx]
}
