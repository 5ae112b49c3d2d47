package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrun/internal/quiz"
	"github.com/abhisek/quizrun/internal/ui/theme"
)

// OptionList draws the options of one question with a keyboard cursor.
// Once the question is locked the cursor is hidden and the correct and
// chosen options are coloured instead.
type OptionList struct {
	Options []quiz.OptionView
	Cursor  int
	Locked  bool
}

// NewOptionList creates an option list with the cursor on the selected
// option, or the first one.
func NewOptionList(v quiz.QuestionView) OptionList {
	cursor := 0
	if v.Selected >= 0 {
		cursor = v.Selected
	}
	return OptionList{
		Options: v.Options,
		Cursor:  cursor,
		Locked:  v.Locked,
	}
}

// Up moves the cursor up one option.
func (l OptionList) Up() OptionList {
	if !l.Locked && l.Cursor > 0 {
		l.Cursor--
	}
	return l
}

// Down moves the cursor down one option.
func (l OptionList) Down() OptionList {
	if !l.Locked && l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
	return l
}

// View renders the options wrapped to width.
func (l OptionList) View(width int) string {
	textWidth := max(width-6, 10)

	var b strings.Builder
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor && !l.Locked {
			prefix = "▸ "
		}

		mark := " "
		switch {
		case opt.Incorrect:
			mark = "✗"
		case opt.Correct:
			mark = "✓"
		}

		body := lipgloss.NewStyle().Width(textWidth).Render(Sanitize(opt.Text))
		line := prefix + opt.Label + " " + indentTail(body, len(prefix)+len(opt.Label)+1) + " " + mark

		style := theme.Unselected
		switch {
		case opt.Incorrect:
			style = theme.Incorrect
		case opt.Correct:
			style = theme.Correct
		case l.Locked:
			style = theme.Revealed
		case i == l.Cursor:
			style = theme.Cursor
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// indentTail indents every line after the first by n spaces so wrapped
// option text lines up under its first line.
func indentTail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, " \n"), "\n")
	pad := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
