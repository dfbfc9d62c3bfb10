package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color is a 4-component RGBA color, each channel 0-255
type Color struct {
	R, G, B, A uint8
}

// Hex serializes the color to its 8-hex-digit "#RRGGBBAA" form, the format
// used in the settings file.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Lip converts the color to a lipgloss color for terminal styling. The alpha
// channel is dropped since terminals have no alpha.
func (c Color) Lip() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// ColorFromHex parses "#RRGGBBAA" or "#RRGGBB" (alpha defaults to 255).
// The leading '#' is optional.
func ColorFromHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var c Color
	switch len(s) {
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c.A = 0xFF
	default:
		return Color{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	return c, nil
}

// ColorScheme is the four-color palette driving the whole UI
type ColorScheme struct {
	Background Color
	Base       Color
	BaseFocus  Color
	Text       Color
}
