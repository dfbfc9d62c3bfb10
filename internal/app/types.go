package app

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/fsnotify/fsnotify"
	"github.com/satchel-hb/satchel/internal/cfg"
	"github.com/satchel-hb/satchel/internal/fsx"
	"github.com/satchel-hb/satchel/internal/ui"
	"github.com/satchel-hb/satchel/internal/ui/styles"
)

// Screen identifies which view is active
type Screen int

const (
	ScreenSections Screen = iota
	ScreenGeneral
	ScreenUI
	ScreenInstalls
	ScreenExport
	ScreenBookmarks
	ScreenFileView
	ScreenHelp
)

// Model is the application state
type Model struct {
	settings *cfg.Settings
	sd       *fsx.SdCardExplorer
	romfs    *fsx.RomFsExplorer

	screen Screen
	width  int
	height int

	// Section navigation
	sections ui.Menu
	section  ui.Menu // entries of the currently open section

	// Bookmark browsing
	bookmarkMenu ui.Menu
	filtering    bool
	filterInput  textinput.Model
	filtered     []int // indices into settings.Bookmarks with the filter applied

	// Inline bookmark editing: first the name, then the url
	editing    bool
	editField  int // 0 = name, 1 = url
	editInput  textinput.Model
	editName   string
	editTarget int // bookmark index being edited, -1 for a new one

	// Raw settings file view
	fileView viewport.Model

	helpView viewport.Model

	saveBar     progress.Model
	labels      cfg.Strings
	styleSet    styles.Set
	status      string
	watcher     *fsnotify.Watcher
	powerPrompt bool // run the power dialog after quitting
}

// FsEventMsg signals that the settings file changed on disk
type FsEventMsg struct{}

// savedMsg reports the outcome of a save
type savedMsg struct {
	err error
}

// PowerPromptRequested reports whether the user quit through the power menu
// key, so the caller can run the blocking power dialog after the program
// exits.
func (m Model) PowerPromptRequested() bool {
	return m.powerPrompt
}

// Settings exposes the current settings, mainly so the caller can act on
// them after the program exits.
func (m Model) Settings() *cfg.Settings {
	return m.settings
}

// Close releases the file watcher
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}
