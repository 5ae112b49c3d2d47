package quiz

import "fmt"

// Advance control labels.
const (
	NextLabel   = "Next Question"
	FinishLabel = "Finish Quiz"
)

// Renderer draws the controller's view models. It is the single place
// responsible for escaping question content for its output medium.
type Renderer interface {
	RenderQuestion(v QuestionView)
	RenderResults(v ResultView)
}

// OptionView is the display state of one option.
type OptionView struct {
	Label     string // "A.", "B.", ...
	Text      string
	Selected  bool
	Correct   bool // Only set once the question has a selection
	Incorrect bool // Chosen and wrong
}

// QuestionView is everything a renderer needs to draw the question panel
// and the surrounding counters and controls.
type QuestionView struct {
	Question Question
	Index    int
	Number   int // Index + 1
	Total    int
	Score    int
	MaxScore int

	// Progress is (Index+1)/Total in [0, 1].
	Progress float64

	Options []OptionView

	// Selected is the chosen option index, or -1.
	Selected int
	Locked   bool

	ExplanationVisible bool

	PrevEnabled bool
	NextEnabled bool
	NextLabel   string
}

// AnswerReview summarises one question on the results view.
type AnswerReview struct {
	Number   int
	Question Question
	Selected int // -1 when never answered
	Correct  bool
	Scored   bool
}

// ResultView is the final summary.
type ResultView struct {
	Score      int
	Total      int
	Percentage int
	Tier       Tier
	Message    string
	Answers    []AnswerReview
}

// FormattedScore returns "score/total".
func (r ResultView) FormattedScore() string {
	return fmt.Sprintf("%d/%d", r.Score, r.Total)
}

// buildQuestionView derives the question view model from the session.
func buildQuestionView(s *Session) QuestionView {
	q := s.Current()
	total := len(s.Questions)
	selected, hasSelection := s.SelectedAt(s.CurrentIndex)
	if !hasSelection {
		selected = -1
	}
	locked := s.Locked[s.CurrentIndex]

	opts := make([]OptionView, len(q.Options))
	for i, text := range q.Options {
		ov := OptionView{Label: OptionLabel(i), Text: text}
		if hasSelection {
			ov.Selected = i == selected
			ov.Correct = q.IsCorrect(i)
			ov.Incorrect = i == selected && !q.IsCorrect(i)
		}
		opts[i] = ov
	}

	label := NextLabel
	if s.IsLast() {
		label = FinishLabel
	}

	return QuestionView{
		Question:           q,
		Index:              s.CurrentIndex,
		Number:             s.CurrentIndex + 1,
		Total:              total,
		Score:              s.Score,
		MaxScore:           total,
		Progress:           float64(s.CurrentIndex+1) / float64(total),
		Options:            opts,
		Selected:           selected,
		Locked:             locked,
		ExplanationVisible: hasSelection,
		PrevEnabled:        s.CurrentIndex > 0,
		NextEnabled:        locked,
		NextLabel:          label,
	}
}

// buildResultView computes the results summary for the session.
func buildResultView(s *Session, msgs Messages) ResultView {
	total := len(s.Questions)
	pct := Percentage(s.Score, total)
	tier := TierFor(pct)

	answers := make([]AnswerReview, total)
	for i, q := range s.Questions {
		sel, ok := s.SelectedAt(i)
		if !ok {
			sel = -1
		}
		answers[i] = AnswerReview{
			Number:   i + 1,
			Question: q,
			Selected: sel,
			Correct:  ok && q.IsCorrect(sel),
			Scored:   s.Scored[i],
		}
	}

	return ResultView{
		Score:      s.Score,
		Total:      total,
		Percentage: pct,
		Tier:       tier,
		Message:    msgs.For(tier),
		Answers:    answers,
	}
}
