// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizrun/internal/bank"
	"github.com/abhisek/quizrun/internal/router"
	"github.com/abhisek/quizrun/internal/screen"
	"github.com/abhisek/quizrun/internal/screens/intro"
	quizscreen "github.com/abhisek/quizrun/internal/screens/quiz"
	"github.com/abhisek/quizrun/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Bank   *bank.File
	Source string
	Logger logrus.FieldLogger
}

var (
	quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	backKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    logrus.FieldLogger
	width  int
	height int
}

// newAppModel creates an AppModel showing the intro for the bank.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Bank == nil {
		return AppModel{}, fmt.Errorf("no question bank")
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	b := opts.Bank
	start := func() (screen.Screen, error) {
		return quizscreen.New(quizscreen.Config{
			Title:     b.Title,
			Questions: b.Quiz(),
			Messages:  b.ResultMessages(),
			Logger:    log,
		})
	}

	home := intro.New(intro.Info{
		Title:       b.Title,
		Description: b.Description,
		Questions:   len(b.Questions),
		Categories:  categories(b),
		Source:      opts.Source,
	}, start)

	return AppModel{
		router: router.New(home, log),
		log:    log,
	}, nil
}

// categories lists the distinct question categories in bank order.
func categories(b *bank.File) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.Questions {
		if q.Category == "" || seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
	}
	return out
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, backKey):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen, and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var hints []key.Binding
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = []key.Binding{quitKey}
	}
	if m.router.Depth() > 1 {
		hints = append(hints, backKey)
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
