package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultMenuHeight is the reference height the item count calculation is
// based on.
const DefaultMenuHeight = 560

// ComputeDefaultMenuItemCount returns how many items fit in the default menu
// height given the configured per-item size. A zero size yields one row.
func ComputeDefaultMenuItemCount(menuItemSize uint32) uint32 {
	if menuItemSize == 0 {
		return 1
	}
	return DefaultMenuHeight / menuItemSize
}

// MenuItem is a single selectable row
type MenuItem struct {
	Title string
	Desc  string
}

// Menu is a scrollable list with a scrollbar column. The scrollbar color is
// a styling hook the settings layer pushes overrides into.
type Menu struct {
	Items  []MenuItem
	Cursor int

	// visible window
	offset  int
	visible int

	scrollbarStyle lipgloss.Style
	selectedStyle  lipgloss.Style
	normalStyle    lipgloss.Style
	descStyle      lipgloss.Style
}

// NewMenu creates a menu sized from the configured menu item size
func NewMenu(items []MenuItem, menuItemSize uint32) Menu {
	visible := int(ComputeDefaultMenuItemCount(menuItemSize))
	if visible < 1 {
		visible = 1
	}
	return Menu{
		Items:          items,
		visible:        visible,
		scrollbarStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		selectedStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		normalStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		descStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// SetScrollbarColor overrides the scrollbar column color
func (m *Menu) SetScrollbarColor(c Color) {
	m.scrollbarStyle = m.scrollbarStyle.Foreground(c.Lip())
}

// SetItemStyles overrides the row styles for normal and selected items
func (m *Menu) SetItemStyles(normal, selected lipgloss.Style) {
	m.normalStyle = normal
	m.selectedStyle = selected
}

// SetItems replaces the menu contents and clamps the cursor
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Cursor >= len(items) {
		m.Cursor = len(items) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.ensureVisible()
}

// MoveUp moves the selection up one row
func (m *Menu) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
	m.ensureVisible()
}

// MoveDown moves the selection down one row
func (m *Menu) MoveDown() {
	if m.Cursor < len(m.Items)-1 {
		m.Cursor++
	}
	m.ensureVisible()
}

// Selected returns the item under the cursor, or false for an empty menu
func (m Menu) Selected() (MenuItem, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Cursor], true
}

func (m *Menu) ensureVisible() {
	if m.Cursor < m.offset {
		m.offset = m.Cursor
	}
	if m.Cursor >= m.offset+m.visible {
		m.offset = m.Cursor - m.visible + 1
	}
	maxOffset := len(m.Items) - m.visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the visible window with a scrollbar column on the right edge
func (m Menu) View() string {
	if len(m.Items) == 0 {
		return m.descStyle.Render("(empty)")
	}

	end := m.offset + m.visible
	if end > len(m.Items) {
		end = len(m.Items)
	}

	// Scrollbar thumb position within the visible rows
	thumb := -1
	if len(m.Items) > m.visible {
		thumb = m.Cursor * (m.visible - 1) / (len(m.Items) - 1)
	}

	var b strings.Builder
	for row, i := 0, m.offset; i < end; row, i = row+1, i+1 {
		item := m.Items[i]

		var line string
		if i == m.Cursor {
			line = m.selectedStyle.Render("> " + item.Title)
		} else {
			line = "  " + m.normalStyle.Render(item.Title)
		}
		if item.Desc != "" {
			line += "  " + m.descStyle.Render(item.Desc)
		}

		bar := " "
		if thumb >= 0 {
			if row == thumb {
				bar = m.scrollbarStyle.Render("█")
			} else {
				bar = m.scrollbarStyle.Render("░")
			}
		}
		b.WriteString(bar + " " + line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
