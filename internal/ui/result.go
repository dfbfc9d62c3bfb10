package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// FormatResult translates an error into a user-facing message. Well-known
// failures get friendlier wording; anything else is shown verbatim.
func FormatResult(err error, context string) string {
	if err == nil {
		return ""
	}

	var detail string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		detail = "The file could not be found."
	case errors.Is(err, fs.ErrPermission):
		detail = "Permission was denied."
	case errors.Is(err, ErrCancelled):
		detail = "The operation was cancelled."
	default:
		detail = err.Error()
	}

	if context == "" {
		return detail
	}
	return fmt.Sprintf("%s: %s", context, detail)
}

type resultModel struct {
	message string
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m resultModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Render("Error")
	body := wordwrap.String(m.message, 60)
	help := lipgloss.NewStyle().Faint(true).Render("press any key to continue")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, body, help)
}

// HandleResult shows a non-nil error to the user as a blocking message.
// Cancellations are logged but not surfaced; they are a normal outcome of
// modal helpers, not failures.
func HandleResult(err error, context string) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrCancelled) {
		log.Printf("%s: cancelled", context)
		return
	}

	msg := FormatResult(err, context)
	log.Printf("error shown to user: %s", msg)
	if _, runErr := tea.NewProgram(resultModel{message: msg}).Run(); runErr != nil {
		log.Printf("result dialog: %v", runErr)
	}
}
