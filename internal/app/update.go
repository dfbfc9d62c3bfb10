package app

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/satchel-hb/satchel/internal/cfg"
	"github.com/satchel-hb/satchel/internal/clipboard"
	"github.com/satchel-hb/satchel/internal/ui"
	"github.com/satchel-hb/satchel/internal/ui/styles"
)

// copyBufferSizes and decryptBufferSizes are the values the size entries
// cycle through, in bytes
var copyBufferSizes = []int64{
	1 * 1024 * 1024,
	4 * 1024 * 1024,
	8 * 1024 * 1024,
	16 * 1024 * 1024,
}

var decryptBufferSizes = []int64{
	4 * 1024 * 1024,
	8 * 1024 * 1024,
	16 * 1024 * 1024,
	32 * 1024 * 1024,
}

var menuItemSizes = []uint32{40, 56, 80, 112, 140}

// clipboardAvailable is swappable so tests can exercise the copy paths
// without a system clipboard
var clipboardAvailable = clipboard.IsAvailable

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileView.Width = msg.Width - 4
		m.fileView.Height = msg.Height - 6
		m.helpView.Width = msg.Width - 4
		m.helpView.Height = msg.Height - 6
		m.saveBar.Width = msg.Width - 10
		return m, nil

	case FsEventMsg:
		m.reload()
		return m, m.waitForFsEvent()

	case savedMsg:
		if msg.err != nil {
			m.status = ui.FormatResult(msg.err, "saving settings")
			return m, nil
		}
		m.status = m.labels.Get("settings_saved")
		return m, m.saveBar.SetPercent(1.0)

	case progress.FrameMsg:
		bar, cmd := m.saveBar.Update(msg)
		m.saveBar = bar.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Inline text entry captures everything except its own terminators
	if m.editing {
		return m.updateBookmarkEdit(msg)
	}
	if m.filtering {
		return m.updateFilter(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "p":
		m.powerPrompt = true
		return m, tea.Quit
	case "s":
		return m, m.saveCmd()
	}

	switch m.screen {
	case ScreenSections:
		return m.updateSections(msg)
	case ScreenGeneral, ScreenUI, ScreenInstalls, ScreenExport:
		return m.updateSection(msg)
	case ScreenBookmarks:
		return m.updateBookmarks(msg)
	case ScreenFileView:
		return m.updateFileView(msg)
	case ScreenHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m Model) saveCmd() tea.Cmd {
	s := m.settings
	return func() tea.Msg {
		return savedMsg{err: s.Save()}
	}
}

// ── Section list ─────────────────────────────────────────────

func (m Model) updateSections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.sections.MoveUp()
	case "down", "j":
		m.sections.MoveDown()
	case "enter":
		switch m.sections.Cursor {
		case 0:
			m.screen = ScreenGeneral
		case 1:
			m.screen = ScreenUI
		case 2:
			m.screen = ScreenInstalls
		case 3:
			m.screen = ScreenExport
		case 4:
			m.screen = ScreenBookmarks
		case 5:
			m.screen = ScreenFileView
			m.fileView.SetContent(m.fileViewContent())
			m.fileView.GotoTop()
		case 6:
			m.screen = ScreenHelp
			m.helpView.SetContent(m.helpContent())
			m.helpView.GotoTop()
		}
		if m.screen >= ScreenGeneral && m.screen <= ScreenExport {
			m.section.Cursor = 0
			m.rebuildSectionMenu()
		}
	}
	return m, nil
}

func (m *Model) rebuildSectionMenu() {
	var items []ui.MenuItem
	s := m.settings

	switch m.screen {
	case ScreenGeneral:
		ext := "(none)"
		if s.ExternalRomFs != nil {
			ext = *s.ExternalRomFs
		}
		items = []ui.MenuItem{
			{Title: "Language", Desc: m.languageLabel()},
			{Title: "External romfs", Desc: ext},
			{Title: "12-hour time", Desc: onOff(s.Use12hTime)},
			{Title: "Ignore hidden files", Desc: onOff(s.IgnoreHidden)},
		}
	case ScreenUI:
		items = []ui.MenuItem{
			{Title: "Color scheme", Desc: schemeLabel(s)},
			{Title: "Menu item size", Desc: fmt.Sprintf("%d", s.MenuItemSize)},
			{Title: "Scrollbar color", Desc: colorLabel(s.ScrollBarColor)},
			{Title: "Progress bar color", Desc: colorLabel(s.ProgressBarColor)},
		}
	case ScreenInstalls:
		items = []ui.MenuItem{
			{Title: "Ignore required firmware version", Desc: onOff(s.IgnoreRequiredFwVersion)},
			{Title: "Deletion prompt after install", Desc: onOff(s.ShowDeletionPromptAfterInstall)},
			{Title: "Copy buffer size", Desc: sizeLabel(s.CopyBufferMaxSize)},
		}
	case ScreenExport:
		items = []ui.MenuItem{
			{Title: "Decrypt buffer size", Desc: sizeLabel(s.DecryptBufferMaxSize)},
		}
	}

	cursor := m.section.Cursor
	m.section = ui.NewMenu(items, s.MenuItemSize)
	s.ApplyScrollBarColor(&m.section)
	m.applyMenuStyles(&m.section)
	m.section.Cursor = cursor
	m.section.SetItems(items) // reclamps the restored cursor
}

func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = ScreenSections
	case "up", "k":
		m.section.MoveUp()
	case "down", "j":
		m.section.MoveDown()
	case "enter", "right", "l":
		m.activateSectionEntry()
		m.rebuildSectionMenu()
	}
	return m, nil
}

// activateSectionEntry toggles or cycles the selected entry
func (m *Model) activateSectionEntry() {
	s := m.settings
	switch m.screen {
	case ScreenGeneral:
		switch m.section.Cursor {
		case 0:
			s.CustomLanguage = nextLanguage(s.CustomLanguage)
		case 1:
			m.status = "edit the external romfs path from the command line (satchel --external-romfs)"
		case 2:
			s.Use12hTime = !s.Use12hTime
		case 3:
			s.IgnoreHidden = !s.IgnoreHidden
		}
	case ScreenUI:
		switch m.section.Cursor {
		case 0:
			s.CustomScheme = ui.GenerateRandomScheme()
			s.HasCustomScheme = true
			m.styleSet = styles.FromScheme(s.CustomScheme)
			m.applyMenuStyles(&m.sections)
		case 1:
			s.MenuItemSize = nextMenuItemSize(s.MenuItemSize)
		case 2:
			s.ScrollBarColor = nextAccentColor(s.ScrollBarColor)
		case 3:
			s.ProgressBarColor = nextAccentColor(s.ProgressBarColor)
			s.ApplyProgressBarColor(&m.saveBar)
		}
	case ScreenInstalls:
		switch m.section.Cursor {
		case 0:
			s.IgnoreRequiredFwVersion = !s.IgnoreRequiredFwVersion
		case 1:
			s.ShowDeletionPromptAfterInstall = !s.ShowDeletionPromptAfterInstall
		case 2:
			s.CopyBufferMaxSize = nextSize(copyBufferSizes, s.CopyBufferMaxSize)
		}
	case ScreenExport:
		if m.section.Cursor == 0 {
			s.DecryptBufferMaxSize = nextSize(decryptBufferSizes, s.DecryptBufferMaxSize)
		}
	}
}

// ── Bookmarks ────────────────────────────────────────────────

func (m Model) updateBookmarks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = ScreenSections
	case "up", "k":
		m.bookmarkMenu.MoveUp()
	case "down", "j":
		m.bookmarkMenu.MoveDown()
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, nil
	case "a":
		m.editing = true
		m.editField = 0
		m.editTarget = -1
		m.editInput.Placeholder = "Bookmark name"
		m.editInput.SetValue("")
		m.editInput.Focus()
	case "e":
		if idx, ok := m.selectedBookmark(); ok {
			bmk := m.settings.Bookmarks[idx]
			m.editing = true
			m.editField = 0
			m.editTarget = idx
			m.editInput.Placeholder = "Bookmark name"
			m.editInput.SetValue(bmk.Name)
			m.editInput.Focus()
		}
	case "d":
		if idx, ok := m.selectedBookmark(); ok {
			name := m.settings.Bookmarks[idx].Name
			m.settings.Bookmarks = append(
				m.settings.Bookmarks[:idx], m.settings.Bookmarks[idx+1:]...)
			m.rebuildBookmarkMenu(m.filterInput.Value())
			m.status = fmt.Sprintf("removed bookmark %q", name)
		}
	case "c":
		if idx, ok := m.selectedBookmark(); ok {
			if !clipboardAvailable() {
				m.status = ui.FormatResult(clipboard.ErrUnavailable, "copying url")
				return m, nil
			}
			url := m.settings.Bookmarks[idx].URL
			if err := clipboard.SetText(url); err != nil {
				m.status = ui.FormatResult(err, "copying url")
			} else {
				m.status = "url copied"
			}
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.rebuildBookmarkMenu("")
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.rebuildBookmarkMenu(m.filterInput.Value())
	return m, cmd
}

func (m Model) updateBookmarkEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editInput.Blur()
		return m, nil
	case "enter":
		value := m.editInput.Value()
		if m.editField == 0 {
			if value == "" {
				m.status = "bookmark name cannot be empty"
				return m, nil
			}
			m.editName = value
			m.editField = 1
			m.editInput.Placeholder = "Bookmark url"
			if m.editTarget >= 0 {
				m.editInput.SetValue(m.settings.Bookmarks[m.editTarget].URL)
			} else {
				m.editInput.SetValue("")
			}
			return m, nil
		}
		if value == "" {
			m.status = "bookmark url cannot be empty"
			return m, nil
		}
		bmk := cfg.Bookmark{Name: m.editName, URL: value}
		if m.editTarget >= 0 {
			m.settings.Bookmarks[m.editTarget] = bmk
		} else {
			m.settings.Bookmarks = append(m.settings.Bookmarks, bmk)
		}
		m.editing = false
		m.editInput.Blur()
		m.rebuildBookmarkMenu(m.filterInput.Value())
		m.status = fmt.Sprintf("bookmark %q set", bmk.Name)
		log.Printf("bookmark set: name=%q url=%q", bmk.Name, bmk.URL)
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// rebuildBookmarkMenu filters bookmarks with the given query and rebuilds
// the visible list
func (m *Model) rebuildBookmarkMenu(query string) {
	bookmarks := m.settings.Bookmarks

	m.filtered = m.filtered[:0]
	if query == "" {
		for i := range bookmarks {
			m.filtered = append(m.filtered, i)
		}
	} else {
		haystack := make([]string, len(bookmarks))
		for i, bmk := range bookmarks {
			haystack[i] = bmk.Name + " " + bmk.URL
		}
		for _, match := range fuzzy.Find(query, haystack) {
			m.filtered = append(m.filtered, match.Index)
		}
	}

	items := make([]ui.MenuItem, len(m.filtered))
	for i, idx := range m.filtered {
		items[i] = ui.MenuItem{
			Title: bookmarks[idx].Name,
			Desc:  bookmarks[idx].URL,
		}
	}
	m.bookmarkMenu = ui.NewMenu(items, m.settings.MenuItemSize)
	m.settings.ApplyScrollBarColor(&m.bookmarkMenu)
	m.applyMenuStyles(&m.bookmarkMenu)
}

// selectedBookmark maps the menu cursor back to a settings bookmark index
func (m Model) selectedBookmark() (int, bool) {
	if m.bookmarkMenu.Cursor < 0 || m.bookmarkMenu.Cursor >= len(m.filtered) {
		return 0, false
	}
	return m.filtered[m.bookmarkMenu.Cursor], true
}

// ── File and help views ──────────────────────────────────────

func (m Model) updateFileView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = ScreenSections
		return m, nil
	case "c":
		if !clipboardAvailable() {
			m.status = ui.FormatResult(clipboard.ErrUnavailable, "copying settings")
			return m, nil
		}
		lines := splitViewLines(m.fileView.View())
		if err := clipboard.SetLines(lines); err != nil {
			m.status = ui.FormatResult(err, "copying settings")
		} else {
			m.status = "visible settings copied"
		}
		return m, nil
	case "y":
		if !clipboardAvailable() {
			m.status = ui.FormatResult(clipboard.ErrUnavailable, "copying path")
			return m, nil
		}
		if err := clipboard.SetPath(cfg.SettingsPath); err != nil {
			m.status = ui.FormatResult(err, "copying path")
		} else {
			m.status = "settings path copied"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.fileView, cmd = m.fileView.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = ScreenSections
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

// ── Value cycling helpers ────────────────────────────────────

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func sizeLabel(bytes int64) string {
	return fmt.Sprintf("%d MiB", bytes/(1024*1024))
}

func colorLabel(c *ui.Color) string {
	if c == nil {
		return "(default)"
	}
	return c.Hex()
}

func schemeLabel(s *cfg.Settings) string {
	if s.HasCustomScheme {
		return "custom " + s.CustomScheme.Base.Hex()
	}
	return "random " + s.CustomScheme.Base.Hex()
}

// nextLanguage cycles absent -> en -> ... -> ru -> absent
func nextLanguage(current *cfg.Language) *cfg.Language {
	if current == nil {
		lang := cfg.LanguageEnglish
		return &lang
	}
	next := *current + 1
	if next > cfg.LanguageRussian {
		return nil
	}
	return &next
}

func nextMenuItemSize(current uint32) uint32 {
	for i, size := range menuItemSizes {
		if size == current {
			return menuItemSizes[(i+1)%len(menuItemSizes)]
		}
	}
	return menuItemSizes[0]
}

func nextSize(sizes []int64, current int64) int64 {
	for i, size := range sizes {
		if size == current {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}

// accentColors are the presets the bar color entries cycle through, ending
// back at "no override"
var accentColors = []ui.Color{
	{R: 0xE6, G: 0xB4, B: 0x22, A: 0xFF}, // gold
	{R: 0x3C, G: 0xB4, B: 0x4B, A: 0xFF}, // green
	{R: 0x46, G: 0x82, B: 0xD7, A: 0xFF}, // blue
	{R: 0xD7, G: 0x46, B: 0x5A, A: 0xFF}, // red
}

func nextAccentColor(current *ui.Color) *ui.Color {
	if current == nil {
		c := accentColors[0]
		return &c
	}
	for i, c := range accentColors {
		if c == *current {
			if i == len(accentColors)-1 {
				return nil // back to no override
			}
			next := accentColors[i+1]
			return &next
		}
	}
	c := accentColors[0]
	return &c
}
