package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that show their own key
// bindings in the footer.
type KeyHintProvider interface {
	KeyHints() []key.Binding
}

// StatusProvider is implemented by screens that show a status, such as
// the running score, at the right of the header.
type StatusProvider interface {
	Status() string
}
