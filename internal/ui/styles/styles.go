package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/satchel-hb/satchel/internal/ui"
)

// Fixed colors for chrome that stays outside the custom scheme
var (
	AccentAlt = lipgloss.Color("178") // Darker gold - section headers
	TextMuted = lipgloss.Color("250") // Lighter gray - status and hints
)

var (
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentAlt)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Set is the scheme-derived style group applied across the app
type Set struct {
	Screen   lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Focused  lipgloss.Style
	HelpText lipgloss.Style
}

// FromScheme derives the application style set from a four-color scheme
func FromScheme(scheme ui.ColorScheme) Set {
	return Set{
		Screen: lipgloss.NewStyle().
			Background(scheme.Background.Lip()).
			Foreground(scheme.Text.Lip()),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.BaseFocus.Lip()),
		Item: lipgloss.NewStyle().
			Foreground(scheme.Text.Lip()),
		Focused: lipgloss.NewStyle().
			Bold(true).
			Background(scheme.Base.Lip()).
			Foreground(scheme.Text.Lip()),
		HelpText: lipgloss.NewStyle().
			Faint(true).
			Foreground(scheme.Text.Lip()),
	}
}
