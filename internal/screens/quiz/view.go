package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	qz "github.com/abhisek/quizrun/internal/quiz"
	"github.com/abhisek/quizrun/internal/ui/components"
	"github.com/abhisek/quizrun/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.renderer.finished() {
		return s.renderResults(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion draws the question panel from the last question view.
func (s *QuizScreen) renderQuestion(width int) string {
	v := s.renderer.question
	if v == nil {
		return ""
	}
	inner := max(width-4, 20)

	var b strings.Builder

	// Counter, badges, and progress.
	info := theme.Hint.Render(fmt.Sprintf("  Question %d of %d", v.Number, v.Total))
	if v.Question.Category != "" {
		info += "  " + theme.Badge.Render(v.Question.Category)
	}
	if d := v.Question.Difficulty; d != qz.DifficultyNone {
		info += "  " + theme.DifficultyBadge(d).Render(d.DisplayName())
	}
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString("  " + components.NewProgressBar("", v.Progress, true, inner-2).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Width(inner).PaddingLeft(2).Render(v.Question.Text))
	b.WriteString("\n\n")

	if v.Question.Code != "" {
		b.WriteString(indent(theme.Code.Render(v.Question.Code), 2))
		b.WriteString("\n\n")
	}

	b.WriteString(s.options.View(inner))

	if v.ExplanationVisible {
		verdict := theme.Correct.Render("Correct!")
		if v.Selected != v.Question.CorrectIndex {
			verdict = theme.Incorrect.Render(fmt.Sprintf("Incorrect. The answer is %s", qz.OptionLabel(v.Question.CorrectIndex)))
		}
		b.WriteString("\n")
		b.WriteString(indent(theme.Explanation.Width(inner-2).Render(verdict+"\n"+v.Question.Explanation), 2))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + components.ButtonRow(
		components.NewButton("Previous", "p", v.PrevEnabled),
		components.NewButton(v.NextLabel, "n", v.NextEnabled),
	))
	return b.String()
}

// renderResults draws the final score, tier message, and the action menu.
func (s *QuizScreen) renderResults(width int) string {
	r := s.renderer.result
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title.Render("Quiz complete!")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body.Bold(true).Render(
		fmt.Sprintf("Final score: %s   (%d%%)", r.FormattedScore(), r.Percentage))))
	b.WriteString("\n\n")
	b.WriteString(center(theme.TierStyle(r.Tier).Render(r.Message)))
	b.WriteString("\n\n")

	if s.review {
		b.WriteString(renderReview(r, width))
		b.WriteString("\n")
	}

	b.WriteString(center(s.menu.View()))
	return b.String()
}

func renderReview(r *qz.ResultView, width int) string {
	textWidth := max(width-24, 20)
	var b strings.Builder
	for _, a := range r.Answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		chosen := "-"
		if a.Selected >= 0 {
			chosen = strings.TrimSuffix(qz.OptionLabel(a.Selected), ".")
		}
		answer := strings.TrimSuffix(qz.OptionLabel(a.Question.CorrectIndex), ".")

		text := ansi.Truncate(firstLine(a.Question.Text), textWidth, "…")
		b.WriteString(fmt.Sprintf("  %s %2d. %-*s  %s → %s\n",
			mark, a.Number, textWidth, text, chosen, answer))
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
