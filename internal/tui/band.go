package tui

import "github.com/charmbracelet/lipgloss"

// Band classifies a signal percentage for coloring. Thresholds are strict
// greater-than, checked strongest first: >70 strong, >50 good, >30 fair,
// everything else weak.
type Band int

const (
	BandWeak Band = iota
	BandFair
	BandGood
	BandStrong
)

// BandFor returns the band for a signal percentage.
func BandFor(signal int) Band {
	switch {
	case signal > 70:
		return BandStrong
	case signal > 50:
		return BandGood
	case signal > 30:
		return BandFair
	default:
		return BandWeak
	}
}

// Collapse folds fair into weak, the three-band scheme used by the
// one-shot listing.
func (b Band) Collapse() Band {
	if b == BandFair {
		return BandWeak
	}
	return b
}

// Style returns the lipgloss style for the band's color.
func (b Band) Style() lipgloss.Style {
	switch b {
	case BandStrong:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case BandGood:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case BandFair:
		return lipgloss.NewStyle().Foreground(colorOrange)
	default:
		return lipgloss.NewStyle().Foreground(colorRed)
	}
}

func (b Band) String() string {
	switch b {
	case BandStrong:
		return "strong"
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	default:
		return "weak"
	}
}
