package quiz

import (
	qz "github.com/abhisek/quizrun/internal/quiz"
	"github.com/abhisek/quizrun/internal/ui/components"
)

// termRenderer keeps the latest view model for the screen to draw. Every
// untrusted string is sanitized on the way in so nothing in a bank can
// move the cursor or restyle the terminal.
type termRenderer struct {
	question *qz.QuestionView
	result   *qz.ResultView
	renders  int
}

var _ qz.Renderer = (*termRenderer)(nil)

func (r *termRenderer) RenderQuestion(v qz.QuestionView) {
	v.Question = sanitizeQuestion(v.Question)
	for i := range v.Options {
		v.Options[i].Text = components.Sanitize(v.Options[i].Text)
	}
	r.question = &v
	r.result = nil
	r.renders++
}

func (r *termRenderer) RenderResults(v qz.ResultView) {
	answers := make([]qz.AnswerReview, len(v.Answers))
	for i, a := range v.Answers {
		a.Question = sanitizeQuestion(a.Question)
		answers[i] = a
	}
	v.Answers = answers
	r.result = &v
	r.renders++
}

func (r *termRenderer) finished() bool {
	return r.result != nil
}

// sanitizeQuestion returns a copy of q with display fields cleaned. The
// options slice is copied so the caller's question is never modified.
func sanitizeQuestion(q qz.Question) qz.Question {
	q.Text = components.Sanitize(q.Text)
	q.Explanation = components.Sanitize(q.Explanation)
	q.Category = components.Sanitize(q.Category)
	q.Code = components.Sanitize(q.Code)
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = components.Sanitize(o)
	}
	q.Options = opts
	return q
}
