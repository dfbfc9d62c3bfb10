package ui

import (
	"math/rand"

	"github.com/muesli/termenv"
)

// GenerateRandomScheme builds a random but readable four-color scheme. The
// base is a random mid-range color, the focus variant is a lightened base,
// and the text color is black or white depending on background luminance.
// The background range follows the terminal's reported darkness so a fresh
// scheme doesn't fight the terminal.
func GenerateRandomScheme() ColorScheme {
	base := Color{
		R: uint8(64 + rand.Intn(128)),
		G: uint8(64 + rand.Intn(128)),
		B: uint8(64 + rand.Intn(128)),
		A: 0xFF,
	}

	var bg Color
	if termenv.HasDarkBackground() {
		bg = Color{
			R: base.R / 4,
			G: base.G / 4,
			B: base.B / 4,
			A: 0xFF,
		}
	} else {
		bg = Color{
			R: lighten(base.R, 96),
			G: lighten(base.G, 96),
			B: lighten(base.B, 96),
			A: 0xFF,
		}
	}

	scheme := ColorScheme{
		Background: bg,
		Base:       base,
		BaseFocus: Color{
			R: lighten(base.R, 48),
			G: lighten(base.G, 48),
			B: lighten(base.B, 48),
			A: 0xFF,
		},
	}

	if luminance(bg) < 128 {
		scheme.Text = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	} else {
		scheme.Text = Color{A: 0xFF}
	}
	return scheme
}

// lighten adds delta to a channel, saturating at 255
func lighten(v, delta uint8) uint8 {
	if int(v)+int(delta) > 0xFF {
		return 0xFF
	}
	return v + delta
}

// luminance approximates perceived brightness (ITU-R BT.601 weights)
func luminance(c Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
