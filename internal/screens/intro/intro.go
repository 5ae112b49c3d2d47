// Package intro is the start screen: bank title, question count, and a
// menu to begin.
package intro

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrun/internal/router"
	"github.com/abhisek/quizrun/internal/screen"
	"github.com/abhisek/quizrun/internal/ui/components"
	"github.com/abhisek/quizrun/internal/ui/theme"
)

// Info is what the intro shows about the loaded bank.
type Info struct {
	Title       string
	Description string
	Questions   int
	Categories  []string
	Source      string
}

// IntroScreen shows the bank and starts quizzes.
type IntroScreen struct {
	info    Info
	start   func() (screen.Screen, error)
	menu    components.Menu
	errMsg  string
	started int
}

var (
	_ screen.Screen          = (*IntroScreen)(nil)
	_ screen.KeyHintProvider = (*IntroScreen)(nil)
)

// New creates an intro screen. start builds a fresh quiz screen each time
// the user begins.
func New(info Info, start func() (screen.Screen, error)) *IntroScreen {
	s := &IntroScreen{info: info, start: start}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start quiz", Action: s.begin},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) KeyHints() []key.Binding {
	return []key.Binding{
		s.menu.Keys.Up,
		s.menu.Keys.Choose,
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Started reports how many quizzes were launched from this screen.
func (s *IntroScreen) Started() int {
	return s.started
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(kmsg)
		return s, cmd
	}
	return s, nil
}

func (s *IntroScreen) begin() tea.Cmd {
	next, err := s.start()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.started++
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	inner := min(width-8, 72)
	var sections []string

	sections = append(sections, theme.Title.Render(components.Sanitize(s.info.Title)))
	if s.info.Description != "" {
		sections = append(sections, "",
			theme.Subtitle.Width(inner).Render(components.Sanitize(s.info.Description)))
	}

	stats := fmt.Sprintf("%d questions", s.info.Questions)
	if n := len(s.info.Categories); n > 0 {
		stats += fmt.Sprintf("  ·  %d topics", n)
	}
	sections = append(sections, "", theme.Body.Render(stats))

	if len(s.info.Categories) > 0 {
		cats := make([]string, len(s.info.Categories))
		for i, c := range s.info.Categories {
			cats[i] = components.Sanitize(c)
		}
		sections = append(sections,
			theme.Hint.Width(inner).Align(lipgloss.Center).Render(strings.Join(cats, ", ")))
	}
	if s.info.Source != "" {
		sections = append(sections, theme.Hint.Render("from "+s.info.Source))
	}

	sections = append(sections, "", s.menu.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
