package app

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/satchel-hb/satchel/internal/cfg"
	"github.com/satchel-hb/satchel/internal/fsx"
	"github.com/satchel-hb/satchel/internal/ui"
	"github.com/satchel-hb/satchel/internal/ui/styles"
)

// NewModel creates and initializes the settings browser model
func NewModel(settings *cfg.Settings, sd *fsx.SdCardExplorer, romfs *fsx.RomFsExplorer) Model {
	// Filter input for the bookmark list
	fi := textinput.New()
	fi.Placeholder = "Filter bookmarks..."
	fi.CharLimit = 100
	fi.Width = 40

	ei := textinput.New()
	ei.CharLimit = ui.MaxKeyboardTextLength
	ei.Width = 60

	saveBar := progress.New(progress.WithDefaultGradient())
	settings.ApplyProgressBarColor(&saveBar)

	sections := ui.NewMenu(sectionItems(), settings.MenuItemSize)
	settings.ApplyScrollBarColor(&sections)

	// Watch the settings file's directory so external edits reload the model
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("watcher unavailable: %v", err)
		watcher = nil
	}
	if watcher != nil {
		dir := filepath.Dir(sd.HostPath(cfg.SettingsPath))
		if err := watcher.Add(dir); err != nil {
			log.Printf("watching %s: %v", dir, err)
		}
	}

	m := Model{
		settings:    settings,
		sd:          sd,
		romfs:       romfs,
		screen:      ScreenSections,
		sections:    sections,
		filterInput: fi,
		editInput:   ei,
		editTarget:  -1,
		saveBar:     saveBar,
		labels:      settings.LoadStrings(),
		styleSet:    styles.FromScheme(settings.CustomScheme),
		fileView:    viewport.New(80, 20),
		helpView:    viewport.New(80, 20),
		watcher:     watcher,
	}
	m.applyMenuStyles(&m.sections)
	m.rebuildBookmarkMenu("")
	return m
}

// applyMenuStyles pushes the scheme-derived row styles into a menu
func (m *Model) applyMenuStyles(menu *ui.Menu) {
	menu.SetItemStyles(m.styleSet.Item, m.styleSet.Focused)
}

func sectionItems() []ui.MenuItem {
	return []ui.MenuItem{
		{Title: "General", Desc: "language, external romfs, time, hidden files"},
		{Title: "UI", Desc: "colors, menu sizing"},
		{Title: "Installs", Desc: "firmware checks, copy buffer"},
		{Title: "Export", Desc: "decrypt buffer"},
		{Title: "Bookmarks", Desc: "web bookmarks"},
		{Title: "Settings file", Desc: "view the raw JSON"},
		{Title: "Help", Desc: "usage notes"},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.waitForFsEvent()
}

// waitForFsEvent returns a command that waits for the next settings-file
// change on disk
func (m Model) waitForFsEvent() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	settingsHost := m.sd.HostPath(cfg.SettingsPath)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if ev.Name != settingsHost {
					continue
				}
				// Drain rapid follow-up events before reloading
				for {
					select {
					case <-m.watcher.Events:
					default:
						return FsEventMsg{}
					}
				}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("watcher: %v", err)
			}
		}
	}
}

// reload re-reads the settings file and rebuilds everything derived from it
func (m *Model) reload() {
	m.settings = cfg.ProcessSettings(m.sd, m.romfs)
	m.labels = m.settings.LoadStrings()
	m.styleSet = styles.FromScheme(m.settings.CustomScheme)
	m.sections = ui.NewMenu(sectionItems(), m.settings.MenuItemSize)
	m.settings.ApplyScrollBarColor(&m.sections)
	m.applyMenuStyles(&m.sections)
	m.settings.ApplyProgressBarColor(&m.saveBar)
	m.rebuildBookmarkMenu(m.filterInput.Value())
	m.status = "settings reloaded from disk"
	log.Printf("settings reloaded: menuItemSize=%d bookmarks=%d",
		m.settings.MenuItemSize, len(m.settings.Bookmarks))
}

// languageLabel shows the effective language for the General section
func (m Model) languageLabel() string {
	if m.settings.CustomLanguage != nil {
		return m.settings.CustomLanguage.Code()
	}
	lang, err := m.settings.GetLanguage()
	if err != nil {
		return "system (unavailable)"
	}
	return fmt.Sprintf("system (%s)", lang.Code())
}
