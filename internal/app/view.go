package app

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/satchel-hb/satchel/internal/cfg"
	"github.com/satchel-hb/satchel/internal/ui/styles"
)

// helpResource is the bundled help document, shadowable by an external
// romfs copy
const helpResource = "help.md"

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styleSet.Title.Render(m.labels.Get("app_name") + " settings"))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenSections:
		b.WriteString(m.sections.View())
		b.WriteString("\n\n")
		b.WriteString(m.styleSet.HelpText.Render("enter: open · s: save · p: power · q: quit"))

	case ScreenGeneral, ScreenUI, ScreenInstalls, ScreenExport:
		b.WriteString(styles.SectionHeader.Render(m.sectionTitle()))
		b.WriteString("\n\n")
		b.WriteString(m.section.View())
		b.WriteString("\n\n")
		b.WriteString(m.styleSet.HelpText.Render("enter: change · esc: back · s: save"))

	case ScreenBookmarks:
		b.WriteString(styles.SectionHeader.Render("Bookmarks"))
		b.WriteString("\n\n")
		if m.filtering || m.filterInput.Value() != "" {
			b.WriteString(m.filterInput.View())
			b.WriteString("\n\n")
		}
		if m.editing {
			field := "name"
			if m.editField == 1 {
				field = "url"
			}
			b.WriteString(styles.Muted.Render("editing bookmark " + field))
			b.WriteString("\n")
			b.WriteString(m.editInput.View())
			b.WriteString("\n\n")
		}
		b.WriteString(m.bookmarkMenu.View())
		b.WriteString("\n\n")
		b.WriteString(m.styleSet.HelpText.Render("a: add · e: edit · d: delete · c: copy url · /: filter · esc: back"))

	case ScreenFileView:
		b.WriteString(styles.SectionHeader.Render(cfg.SettingsPath))
		b.WriteString("\n\n")
		b.WriteString(m.fileView.View())
		b.WriteString("\n")
		b.WriteString(m.styleSet.HelpText.Render("c: copy visible · y: copy path · esc: back"))

	case ScreenHelp:
		b.WriteString(m.helpView.View())
		b.WriteString("\n")
		b.WriteString(m.styleSet.HelpText.Render("esc: back"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(m.status))
	}
	if m.saveBar.Percent() > 0 {
		b.WriteString("\n")
		b.WriteString(m.saveBar.View())
	}
	return m.styleSet.Screen.Render(b.String())
}

func (m Model) sectionTitle() string {
	switch m.screen {
	case ScreenGeneral:
		return "General"
	case ScreenUI:
		return "UI"
	case ScreenInstalls:
		return "Installs"
	case ScreenExport:
		return "Export"
	}
	return ""
}

// fileViewContent loads the raw settings file and syntax-highlights it
func (m Model) fileViewContent() string {
	data, err := os.ReadFile(m.sd.HostPath(cfg.SettingsPath))
	if err != nil {
		return styles.Muted.Render("no settings file on disk yet - press s to create one")
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(data), "settings.json", "terminal256", "monokai"); err != nil {
		return string(data) // plain text fallback
	}
	return buf.String()
}

// helpContent renders the bundled help markdown, honoring external romfs
// shadowing
func (m Model) helpContent() string {
	data, err := m.readResource(helpResource)
	if err != nil {
		return styles.Muted.Render(fmt.Sprintf("help unavailable: %v", err))
	}

	width := m.helpView.Width
	if width <= 0 {
		width = 76
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return string(data)
	}
	rendered, err := renderer.Render(string(data))
	if err != nil {
		return string(data)
	}
	return rendered
}

// readResource fetches a resource through the settings shadowing rules,
// whichever tier wins
func (m Model) readResource(path string) ([]byte, error) {
	abs := m.settings.PathForResource(path)
	if strings.HasPrefix(abs, m.sd.MountName()+":") {
		return os.ReadFile(m.sd.HostPath(abs))
	}
	return m.romfs.ReadFile(abs)
}

func splitViewLines(view string) []string {
	return strings.Split(view, "\n")
}
