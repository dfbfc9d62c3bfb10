package styles

import (
	"testing"

	"github.com/satchel-hb/satchel/internal/ui"
)

func TestFromSchemeDerivesEveryField(t *testing.T) {
	scheme := ui.ColorScheme{
		Background: ui.Color{R: 1, G: 2, B: 3, A: 255},
		Base:       ui.Color{R: 4, G: 5, B: 6, A: 255},
		BaseFocus:  ui.Color{R: 7, G: 8, B: 9, A: 255},
		Text:       ui.Color{R: 10, G: 11, B: 12, A: 255},
	}
	set := FromScheme(scheme)

	if got := set.Screen.GetBackground(); got != scheme.Background.Lip() {
		t.Errorf("Screen background = %v, want %v", got, scheme.Background.Lip())
	}
	if got := set.Screen.GetForeground(); got != scheme.Text.Lip() {
		t.Errorf("Screen foreground = %v, want %v", got, scheme.Text.Lip())
	}
	if got := set.Title.GetForeground(); got != scheme.BaseFocus.Lip() {
		t.Errorf("Title foreground = %v, want %v", got, scheme.BaseFocus.Lip())
	}
	if got := set.Item.GetForeground(); got != scheme.Text.Lip() {
		t.Errorf("Item foreground = %v, want %v", got, scheme.Text.Lip())
	}
	if got := set.Focused.GetBackground(); got != scheme.Base.Lip() {
		t.Errorf("Focused background = %v, want %v", got, scheme.Base.Lip())
	}
	if !set.Focused.GetBold() {
		t.Error("Focused should be bold")
	}
	if got := set.HelpText.GetForeground(); got != scheme.Text.Lip() {
		t.Errorf("HelpText foreground = %v, want %v", got, scheme.Text.Lip())
	}
}
