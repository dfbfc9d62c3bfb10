package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// ErrUnavailable indicates no clipboard utility was found
var ErrUnavailable = errors.New("clipboard unavailable - install xclip, xsel, or wl-clipboard")

// IsAvailable returns true if clipboard operations are supported
func IsAvailable() bool {
	return !clipboard.Unsupported
}

// SetText copies raw text to the clipboard
func SetText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// SetPath copies a mount-prefixed or host path to the clipboard
func SetPath(path string) error {
	return SetText(path)
}

// SetLines copies rendered lines, stripping ANSI styling so the clipboard
// gets plain text rather than escape codes.
func SetLines(lines []string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if len(lines) == 0 {
		return nil // nothing to copy, not an error
	}

	clean := make([]string, len(lines))
	for i, line := range lines {
		clean[i] = ansi.Strip(line)
	}
	return clipboard.WriteAll(strings.Join(clean, "\n"))
}
