package quiz

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoQuestions is returned when a quiz is started without questions.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrOptionOutOfRange is returned when a selection names an option the
	// current question does not have.
	ErrOptionOutOfRange = errors.New("option index out of range")

	// ErrNotStarted is returned by operations called before Initialize.
	ErrNotStarted = errors.New("quiz not started")
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition logs.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMessages overrides the tier messages shown on the results view.
// Empty messages fall back to the defaults.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		c.messages = m.WithDefaults()
	}
}

// WithSessionIDs sets the generator for session IDs. Defaults to random
// UUIDs.
func WithSessionIDs(next func() string) Option {
	return func(c *Controller) {
		if next != nil {
			c.nextID = next
		}
	}
}

// Controller is the quiz state machine. It owns one Session at a time and
// pushes a view model to its Renderer after every transition.
//
// A Controller is not safe for concurrent use; callers serialise input
// events.
type Controller struct {
	renderer Renderer
	log      logrus.FieldLogger
	messages Messages
	nextID   func() string

	questions []Question
	session   *Session
}

// NewController creates a controller that renders to r.
func NewController(r Renderer, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		renderer: r,
		log:      discard,
		messages: DefaultMessages(),
		nextID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize starts a fresh session over questions and renders question 0.
func (c *Controller) Initialize(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	c.questions = questions
	c.reset()
	c.log.WithFields(logrus.Fields{
		"session_id": c.session.ID,
		"questions":  len(questions),
	}).Info("quiz started")
	c.renderQuestion()
	return nil
}

// Restart discards the current session and starts over at question 0.
func (c *Controller) Restart() error {
	if c.questions == nil {
		return ErrNotStarted
	}
	prev := c.session.ID
	c.reset()
	c.log.WithFields(logrus.Fields{
		"session_id":  c.session.ID,
		"previous_id": prev,
	}).Info("quiz restarted")
	c.renderQuestion()
	return nil
}

// SelectOption records the user's choice for the current question.
//
// Choices on a locked question and calls after the quiz finished are
// ignored. An index outside the current question's options returns
// ErrOptionOutOfRange and leaves the session unchanged.
func (c *Controller) SelectOption(index int) error {
	if c.session == nil {
		return ErrNotStarted
	}
	return c.selectOption(index, false)
}

func (c *Controller) selectOption(index int, restoring bool) error {
	s := c.session
	if s.Finished {
		return nil
	}
	wasLocked := s.Locked[s.CurrentIndex]
	if wasLocked && !restoring {
		return nil
	}

	q := s.Current()
	if !q.HasOption(index) {
		return ErrOptionOutOfRange
	}

	s.Selected[s.CurrentIndex] = index

	correct := q.IsCorrect(index)
	if !wasLocked && !s.Scored[s.CurrentIndex] && correct {
		s.Score++
		s.Scored[s.CurrentIndex] = true
	}
	if !restoring {
		s.Locked[s.CurrentIndex] = true
		c.log.WithFields(logrus.Fields{
			"session_id": s.ID,
			"question":   s.CurrentIndex + 1,
			"option":     index,
			"correct":    correct,
			"score":      s.Score,
		}).Debug("answer locked")
	}

	c.renderQuestion()
	return nil
}

// Advance moves to the next question, or to the results after the last
// one. It does nothing until the current question is locked and reports
// whether the state changed.
func (c *Controller) Advance() bool {
	s := c.session
	if s == nil || s.Finished || !s.Locked[s.CurrentIndex] {
		return false
	}

	if s.IsLast() {
		s.Finished = true
		result := buildResultView(s, c.messages)
		c.log.WithFields(logrus.Fields{
			"session_id": s.ID,
			"score":      result.Score,
			"total":      result.Total,
			"percentage": result.Percentage,
			"tier":       result.Tier.String(),
		}).Info("quiz finished")
		c.renderer.RenderResults(result)
		return true
	}

	s.CurrentIndex++
	c.show()
	return true
}

// Retreat moves back one question. It does nothing on the first question
// or after the quiz finished, and reports whether the state changed.
func (c *Controller) Retreat() bool {
	s := c.session
	if s == nil || s.Finished || s.CurrentIndex == 0 {
		return false
	}
	s.CurrentIndex--
	c.show()
	return true
}

// show renders the current question, replaying any prior selection.
func (c *Controller) show() {
	s := c.session
	if idx, ok := s.SelectedAt(s.CurrentIndex); ok {
		// Restoring re-renders the locked state; it never scores.
		_ = c.selectOption(idx, true)
		return
	}
	c.renderQuestion()
}

func (c *Controller) reset() {
	c.session = NewSession(c.questions, c.nextID())
}

func (c *Controller) renderQuestion() {
	c.renderer.RenderQuestion(buildQuestionView(c.session))
}

// Phase returns the current state machine phase. Before Initialize it
// reports PhasePresenting.
func (c *Controller) Phase() Phase {
	if c.session == nil {
		return PhasePresenting
	}
	return c.session.Phase()
}

// CurrentIndex returns the index of the question being shown.
func (c *Controller) CurrentIndex() int {
	if c.session == nil {
		return 0
	}
	return c.session.CurrentIndex
}

// Score returns the current score.
func (c *Controller) Score() int {
	if c.session == nil {
		return 0
	}
	return c.session.Score
}

// Total returns the number of questions.
func (c *Controller) Total() int {
	return len(c.questions)
}

// SessionID returns the ID of the current attempt.
func (c *Controller) SessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.ID
}

// Selected returns the option chosen for question i, if any.
func (c *Controller) Selected(i int) (int, bool) {
	if c.session == nil {
		return 0, false
	}
	return c.session.SelectedAt(i)
}

// IsLocked reports whether question i has been answered.
func (c *Controller) IsLocked(i int) bool {
	return c.session != nil && c.session.Locked[i]
}

// IsScored reports whether question i contributed to the score.
func (c *Controller) IsScored(i int) bool {
	return c.session != nil && c.session.Scored[i]
}

// Question returns the current question view model.
func (c *Controller) Question() (QuestionView, error) {
	if c.session == nil {
		return QuestionView{}, ErrNotStarted
	}
	return buildQuestionView(c.session), nil
}

// Result returns the results summary for the current session. It can be
// called at any point; unanswered questions count as wrong.
func (c *Controller) Result() (ResultView, error) {
	if c.session == nil {
		return ResultView{}, ErrNotStarted
	}
	return buildResultView(c.session, c.messages), nil
}
