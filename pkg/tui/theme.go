package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the planner UI.
type Theme struct {
	Header      lipgloss.Style
	HeaderLit   lipgloss.Style
	Card        lipgloss.Style
	Placeholder lipgloss.Style
	Ghost       lipgloss.Style
	Action      lipgloss.Style
	ActionLit   lipgloss.Style
	Rule        lipgloss.Style
	Status      lipgloss.Style
	Today       lipgloss.Style
}

const (
	primaryHex   = "#7C3AED"
	secondaryHex = "#0E7490"
	darkBgHex    = "#1E1E2E"
	lightBgHex   = "#F5F5F5"
)

// highlight blends the primary colour toward the background, the terminal
// stand-in for a translucent hover fill.
func highlight(dark bool) string {
	primary, _ := colorful.Hex(primaryHex)
	bgHex := lightBgHex
	if dark {
		bgHex = darkBgHex
	}
	bg, _ := colorful.Hex(bgHex)
	return primary.BlendLab(bg, 0.55).Clamped().Hex()
}

// NewTheme builds the palette for a dark or light terminal background.
func NewTheme(dark bool) Theme {
	fg := lipgloss.Color("#1E1E2E")
	if dark {
		fg = lipgloss.Color("#F5F5F5")
	}
	primary := lipgloss.Color(primaryHex)
	secondary := lipgloss.Color(secondaryHex)
	lit := lipgloss.Color(highlight(dark))

	header := lipgloss.NewStyle().Bold(true).Foreground(secondary)
	action := lipgloss.NewStyle().Bold(true).Foreground(fg).Background(secondary).Padding(0, 1)

	return Theme{
		Header:      header,
		HeaderLit:   header.Foreground(fg).Background(lit),
		Card:        lipgloss.NewStyle().Foreground(fg),
		Placeholder: lipgloss.NewStyle().Foreground(primary).Faint(true),
		Ghost:       lipgloss.NewStyle().Foreground(fg).Faint(true).Italic(true),
		Action:      action,
		ActionLit:   action.Background(primary).Underline(true),
		Rule:        lipgloss.NewStyle().Foreground(secondary).Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Today:       header.Underline(true),
	}
}

// Default picks the palette from the terminal's background.
func Default() Theme {
	return NewTheme(termenv.HasDarkBackground())
}
