package ui

import "testing"

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}

	hex := c.Hex()
	if hex != "#0A141EFF" {
		t.Errorf("Hex() = %q, want %q", hex, "#0A141EFF")
	}

	parsed, err := ColorFromHex(hex)
	if err != nil {
		t.Fatalf("ColorFromHex: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %+v, want %+v", parsed, c)
	}
}

func TestColorFromHexShortForm(t *testing.T) {
	c, err := ColorFromHex("#336699")
	if err != nil {
		t.Fatalf("ColorFromHex: %v", err)
	}
	want := Color{R: 0x33, G: 0x66, B: 0x99, A: 0xFF}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestColorFromHexInvalid(t *testing.T) {
	for _, s := range []string{"", "#12345", "#GGGGGGGG", "not a color"} {
		if _, err := ColorFromHex(s); err == nil {
			t.Errorf("ColorFromHex(%q) should fail", s)
		}
	}
}

func TestGenerateRandomSchemeIsOpaque(t *testing.T) {
	for i := 0; i < 10; i++ {
		scheme := GenerateRandomScheme()
		for name, c := range map[string]Color{
			"background": scheme.Background,
			"base":       scheme.Base,
			"baseFocus":  scheme.BaseFocus,
			"text":       scheme.Text,
		} {
			if c.A != 0xFF {
				t.Errorf("%s alpha = %d, want 255", name, c.A)
			}
		}
	}
}

func TestGenerateRandomSchemeTextContrast(t *testing.T) {
	for i := 0; i < 20; i++ {
		scheme := GenerateRandomScheme()
		bgLum := luminance(scheme.Background)
		textLum := luminance(scheme.Text)
		if bgLum < 128 && textLum != 255 {
			t.Errorf("dark background %v should get white text, got %v", scheme.Background, scheme.Text)
		}
		if bgLum >= 128 && textLum != 0 {
			t.Errorf("light background %v should get black text, got %v", scheme.Background, scheme.Text)
		}
	}
}
