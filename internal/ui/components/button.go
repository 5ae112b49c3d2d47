package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrun/internal/ui/theme"
)

// Button is a styled, non-interactive button label. Screens map keys to
// the action; the button only shows whether it is available.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, enabled bool) Button {
	return Button{Label: label, Key: key, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow joins buttons horizontally with a gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, strings.Repeat(" ", 2))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
