package render

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizrun/internal/quiz"
)

// Document describes the quiz an answer key is produced for.
type Document struct {
	Title       string
	Description string
	Questions   []quiz.Question
	Messages    quiz.Messages
}

// ExportAnswerKey writes a standalone HTML page showing every question
// with its correct option selected and explained, followed by the results
// panel. It drives a quiz.Controller through the whole quiz so the page
// reflects exactly what a player who answered everything correctly sees.
func ExportAnswerKey(w io.Writer, doc Document, log logrus.FieldLogger) error {
	if err := templates.ExecuteTemplate(w, "page_start", doc); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	r := NewHTML(w)
	opts := []quiz.Option{quiz.WithMessages(doc.Messages)}
	if log != nil {
		opts = append(opts, quiz.WithLogger(log))
	}
	c := quiz.NewController(lockedOnly{r}, opts...)
	if err := c.Initialize(doc.Questions); err != nil {
		return err
	}

	for i, q := range doc.Questions {
		if err := c.SelectOption(q.CorrectIndex); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if !c.Advance() {
			return fmt.Errorf("question %d: could not advance", i+1)
		}
		if err := r.Err(); err != nil {
			return err
		}
	}

	if c.Phase() != quiz.PhaseFinished {
		return fmt.Errorf("answer key incomplete: quiz in phase %s", c.Phase())
	}
	if err := r.Err(); err != nil {
		return err
	}

	if err := templates.ExecuteTemplate(w, "page_end", nil); err != nil {
		return fmt.Errorf("render footer: %w", err)
	}
	return nil
}

// lockedOnly drops the unanswered render of each question so the key
// shows every question once, with its answer revealed.
type lockedOnly struct {
	*HTML
}

func (l lockedOnly) RenderQuestion(v quiz.QuestionView) {
	if v.Locked {
		l.HTML.RenderQuestion(v)
	}
}
