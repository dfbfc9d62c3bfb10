package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// PowerAction is the user's choice in the power tasks dialog
type PowerAction int

const (
	PowerActionNone PowerAction = iota
	PowerActionShutdown
	PowerActionReboot
)

var powerOptions = []struct {
	label  string
	action PowerAction
}{
	{"Shut down", PowerActionShutdown},
	{"Reboot", PowerActionReboot},
	{"Cancel", PowerActionNone},
}

type powerDialogModel struct {
	title  string
	msg    string
	cursor int

	chosen    PowerAction
	cancelled bool
}

func (m powerDialogModel) Init() tea.Cmd {
	return nil
}

func (m powerDialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(powerOptions)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = powerOptions[m.cursor].action
			return m, tea.Quit
		case "esc", "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m powerDialogModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.title)
	body := wordwrap.String(m.msg, 60)

	var options string
	for i, opt := range powerOptions {
		if i == m.cursor {
			options += lipgloss.NewStyle().Bold(true).Render("> "+opt.label) + "\n"
		} else {
			options += "  " + opt.label + "\n"
		}
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, options)
}

// ShowPowerTasksDialog blocks on a modal shutdown/reboot choice. Cancelling
// (or picking Cancel) returns PowerActionNone with ErrCancelled.
func ShowPowerTasksDialog(title, msg string) (PowerAction, error) {
	m := powerDialogModel{title: title, msg: msg}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return PowerActionNone, fmt.Errorf("power dialog: %w", err)
	}

	result := final.(powerDialogModel)
	if result.cancelled || result.chosen == PowerActionNone {
		return PowerActionNone, ErrCancelled
	}
	return result.chosen, nil
}
