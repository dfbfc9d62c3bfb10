package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxKeyboardTextLength caps keyboard input length
const MaxKeyboardTextLength = 500

// ErrCancelled is returned when the user backs out of a modal helper
var ErrCancelled = errors.New("cancelled by user")

type keyboardModel struct {
	guide string
	input textinput.Model

	done      bool
	cancelled bool
}

func (m keyboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m keyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m keyboardModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(m.guide)
	help := lipgloss.NewStyle().Faint(true).Render("enter: accept · esc: cancel")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, m.input.View(), help)
}

// ShowKeyboard blocks on a modal text entry and returns the typed text.
// maxLen bounds the input and is capped at MaxKeyboardTextLength; zero or
// negative means the cap itself. Returns ErrCancelled when the user backs
// out.
func ShowKeyboard(guideText, initialText string, maxLen int) (string, error) {
	if maxLen <= 0 || maxLen > MaxKeyboardTextLength {
		maxLen = MaxKeyboardTextLength
	}

	ti := textinput.New()
	ti.Placeholder = guideText
	ti.SetValue(initialText)
	ti.CharLimit = maxLen
	ti.Width = 40
	ti.Focus()

	m := keyboardModel{guide: guideText, input: ti}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("keyboard: %w", err)
	}

	result := final.(keyboardModel)
	if result.cancelled {
		return "", ErrCancelled
	}
	return result.input.Value(), nil
}
