// Package quiz is the interactive quiz screen. It maps key presses to
// controller transitions and draws whatever the controller last rendered.
package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	qz "github.com/abhisek/quizrun/internal/quiz"
	"github.com/abhisek/quizrun/internal/router"
	"github.com/abhisek/quizrun/internal/screen"
	"github.com/abhisek/quizrun/internal/ui/components"
)

// Config describes one quiz run.
type Config struct {
	Title     string
	Questions []qz.Question
	Messages  qz.Messages
	Logger    logrus.FieldLogger
}

// QuizScreen implements screen.Screen for a quiz in progress.
type QuizScreen struct {
	title    string
	ctrl     *qz.Controller
	renderer *termRenderer
	keys     keyMap
	log      logrus.FieldLogger

	options components.OptionList
	menu    components.Menu
	review  bool
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
)

// New starts a quiz and returns its screen. It fails when the quiz has no
// questions.
func New(cfg Config) (*QuizScreen, error) {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	r := &termRenderer{}
	s := &QuizScreen{
		title:    cfg.Title,
		renderer: r,
		keys:     defaultKeys(),
		log:      log,
		ctrl: qz.NewController(r,
			qz.WithLogger(log),
			qz.WithMessages(cfg.Messages),
		),
	}
	if err := s.ctrl.Initialize(cfg.Questions); err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	s.menu = s.resultsMenu()
	s.sync()
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.title == "" {
		return "Quiz"
	}
	return s.title
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.ctrl.Score(), s.ctrl.Total())
}

func (s *QuizScreen) KeyHints() []key.Binding {
	if s.renderer.finished() {
		m := s.menu.Keys
		return []key.Binding{m.Up, m.Choose, s.keys.Restart}
	}
	k := s.keys
	next := k.Next
	next.SetEnabled(s.ctrl.IsLocked(s.ctrl.CurrentIndex()))
	prev := k.Prev
	prev.SetEnabled(s.ctrl.CurrentIndex() > 0)
	return []key.Binding{k.Answer, k.Up, k.Confirm, next, prev, k.Restart}
}

// Controller exposes the underlying state machine.
func (s *QuizScreen) Controller() *qz.Controller {
	return s.ctrl
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if key.Matches(kmsg, s.keys.Restart) {
		s.restart()
		return s, nil
	}

	if s.renderer.finished() {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(kmsg)
		if !s.renderer.finished() {
			// A menu action restarted the quiz.
			s.menu = s.resultsMenu()
		}
		return s, cmd
	}

	return s, s.handleQuestionKey(kmsg)
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyPressMsg) tea.Cmd {
	locked := s.ctrl.IsLocked(s.ctrl.CurrentIndex())

	switch {
	case key.Matches(msg, s.keys.Answer):
		idx, _ := optionIndex(msg.String())
		s.selectOption(idx)
	case key.Matches(msg, s.keys.Up):
		s.options = s.options.Up()
	case key.Matches(msg, s.keys.Down):
		s.options = s.options.Down()
	case key.Matches(msg, s.keys.Confirm):
		if locked {
			s.advance()
		} else {
			s.selectOption(s.options.Cursor)
		}
	case key.Matches(msg, s.keys.Next):
		s.advance()
	case key.Matches(msg, s.keys.Prev):
		if s.ctrl.Retreat() {
			s.sync()
		}
	}
	return nil
}

func (s *QuizScreen) selectOption(idx int) {
	err := s.ctrl.SelectOption(idx)
	if errors.Is(err, qz.ErrOptionOutOfRange) {
		s.log.WithField("option", idx).Debug("ignored out of range option")
		return
	}
	if err != nil {
		s.log.WithError(err).Warn("select option failed")
		return
	}
	s.sync()
}

func (s *QuizScreen) advance() {
	if s.ctrl.Advance() {
		s.review = false
		s.sync()
	}
}

func (s *QuizScreen) restart() {
	if err := s.ctrl.Restart(); err != nil {
		s.log.WithError(err).Warn("restart failed")
		return
	}
	s.menu = s.resultsMenu()
	s.review = false
	s.sync()
}

// sync rebuilds the option cursor from the latest question view.
func (s *QuizScreen) sync() {
	if q := s.renderer.question; q != nil && !s.renderer.finished() {
		s.options = components.NewOptionList(*q)
	}
}

func (s *QuizScreen) resultsMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "Review answers", Action: func() tea.Cmd {
			s.review = !s.review
			return nil
		}},
		{Label: "Restart quiz", Action: func() tea.Cmd {
			s.restart()
			return nil
		}},
		{Label: "Back to start", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
}
