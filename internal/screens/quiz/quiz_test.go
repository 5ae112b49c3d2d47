package quiz

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	qz "github.com/abhisek/quizrun/internal/quiz"
	"github.com/abhisek/quizrun/internal/router"
)

func press(s *QuizScreen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "up":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		_, cmd = s.Update(msg)
	}
	return cmd
}

func sampleQuestions() []qz.Question {
	return []qz.Question{
		{Text: "First?", Options: []string{"w", "x", "y", "z"}, CorrectIndex: 1, Explanation: "x wins.", Difficulty: qz.DifficultyEasy},
		{Text: "Second?", Options: []string{"yes", "no"}, CorrectIndex: 0, Explanation: "yes.", Code: "a < b"},
		{Text: "Third?", Options: []string{"1", "2", "3"}, CorrectIndex: 2, Explanation: "3."},
	}
}

func newScreen(t *testing.T) *QuizScreen {
	t.Helper()
	s, err := New(Config{Title: "Sample", Questions: sampleQuestions()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func plainView(s *QuizScreen) string {
	return ansi.Strip(s.View(100, 40))
}

func TestNew_NoQuestions(t *testing.T) {
	_, err := New(Config{Title: "empty"})
	if !errors.Is(err, qz.ErrNoQuestions) {
		t.Fatalf("got %v, want ErrNoQuestions", err)
	}
}

func TestInitialView(t *testing.T) {
	s := newScreen(t)
	out := plainView(s)

	for _, want := range []string{"Question 1 of 3", "First?", "A. w", "D. z", "Easy", "Next Question"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "x wins.") {
		t.Error("explanation visible before answering")
	}
	if s.Status() != "Score 0/3" {
		t.Errorf("status = %q", s.Status())
	}
}

func TestNumberKeySelectsAndLocks(t *testing.T) {
	s := newScreen(t)
	press(s, "2")

	c := s.Controller()
	if !c.IsLocked(0) || c.Score() != 1 {
		t.Fatalf("locked=%v score=%d, want locked with score 1", c.IsLocked(0), c.Score())
	}
	out := plainView(s)
	if !strings.Contains(out, "Correct!") || !strings.Contains(out, "x wins.") {
		t.Errorf("feedback missing:\n%s", out)
	}

	press(s, "1")
	if sel, _ := c.Selected(0); sel != 1 {
		t.Errorf("locked question changed selection to %d", sel)
	}
}

func TestLetterKeyAndWrongAnswer(t *testing.T) {
	s := newScreen(t)
	press(s, "c")

	c := s.Controller()
	if sel, ok := c.Selected(0); !ok || sel != 2 {
		t.Fatalf("selected = %d,%v; want 2", sel, ok)
	}
	if c.Score() != 0 {
		t.Errorf("score = %d, want 0", c.Score())
	}
	if !strings.Contains(plainView(s), "Incorrect. The answer is B.") {
		t.Error("missing incorrect verdict")
	}
}

func TestArrowsAndEnter(t *testing.T) {
	s := newScreen(t)
	press(s, "down", "down", "up", "enter")

	c := s.Controller()
	if sel, _ := c.Selected(0); sel != 1 {
		t.Fatalf("selected = %d, want 1", sel)
	}

	// Enter on a locked question advances.
	press(s, "enter")
	if c.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", c.CurrentIndex())
	}
}

func TestOutOfRangeKeyIgnored(t *testing.T) {
	s := newScreen(t)
	press(s, "right", "9")
	if s.Controller().IsLocked(0) {
		t.Error("out of range key locked the question")
	}
	if s.Controller().CurrentIndex() != 0 {
		t.Error("advanced before answering")
	}
}

func TestRetreatRestoresSelection(t *testing.T) {
	s := newScreen(t)
	press(s, "3", "n")
	if s.Controller().CurrentIndex() != 1 {
		t.Fatalf("did not advance")
	}
	if !strings.Contains(plainView(s), "a < b") {
		t.Error("code sample not shown literally")
	}

	press(s, "left")
	c := s.Controller()
	if c.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0", c.CurrentIndex())
	}
	if !s.options.Locked || s.options.Cursor != 2 {
		t.Errorf("options not restored: %+v", s.options)
	}
	if c.Score() != 0 {
		t.Errorf("restore changed score to %d", c.Score())
	}
}

func TestFinishAndResults(t *testing.T) {
	s := newScreen(t)
	press(s, "2", "n", "1", "n", "1")
	if !strings.Contains(plainView(s), "Finish Quiz") {
		t.Error("last question should offer Finish Quiz")
	}
	press(s, "n")

	if s.Controller().Phase() != qz.PhaseFinished {
		t.Fatalf("phase = %v", s.Controller().Phase())
	}
	out := plainView(s)
	for _, want := range []string{"Quiz complete!", "2/3", "67%", qz.DefaultMessages().Fair} {
		if !strings.Contains(out, want) {
			t.Errorf("results missing %q:\n%s", want, out)
		}
	}

	// Review toggles the per-question list.
	press(s, "enter")
	if !strings.Contains(plainView(s), "A → C") {
		t.Errorf("review missing:\n%s", plainView(s))
	}

	// Back to start pops the screen.
	cmd := press(s, "down", "down", "enter")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg")
	}
}

func TestRestartKey(t *testing.T) {
	s := newScreen(t)
	first := s.Controller().SessionID()
	press(s, "2", "n", "1", "n", "3", "n")
	press(s, "r")

	c := s.Controller()
	if c.Phase() != qz.PhasePresenting || c.CurrentIndex() != 0 || c.Score() != 0 {
		t.Fatalf("restart did not reset: phase=%v idx=%d score=%d", c.Phase(), c.CurrentIndex(), c.Score())
	}
	if c.SessionID() == first {
		t.Error("restart reused the session id")
	}
	if !strings.Contains(plainView(s), "First?") {
		t.Error("question view not shown after restart")
	}
}

func TestControlSequencesStripped(t *testing.T) {
	qs := sampleQuestions()
	qs[0].Text = "\x1b[2J\x1b[31mEvil\x1b[0m\a?"
	qs[0].Options[0] = "\x1b]0;title\x07opt"
	s, err := New(Config{Questions: qs})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw := s.View(100, 40)
	if strings.Contains(raw, "\x1b[2J") || strings.Contains(raw, "\x1b]0;") || strings.Contains(raw, "\a") {
		t.Errorf("control sequences leaked into view: %q", raw)
	}
	if !strings.Contains(ansi.Strip(raw), "Evil?") {
		t.Errorf("text lost while sanitising")
	}
	if qs[0].Options[0] != "\x1b]0;title\x07opt" {
		t.Error("caller's question was modified")
	}
}

func TestKeyHints(t *testing.T) {
	s := newScreen(t)
	enabled := func() []string {
		var out []string
		for _, b := range s.KeyHints() {
			if b.Enabled() {
				out = append(out, b.Help().Desc)
			}
		}
		return out
	}

	if strings.Contains(strings.Join(enabled(), ","), "next") {
		t.Error("next hinted before answering")
	}
	press(s, "1")
	if !strings.Contains(strings.Join(enabled(), ","), "next") {
		t.Error("next not hinted after answering")
	}
}
