package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/quizrun/internal/quiz"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "List<String> a = b && c;", "List<String> a = b && c;"},
		{"color codes", "\x1b[31mred\x1b[0m", "red"},
		{"clear screen", "a\x1b[2Jb", "ab"},
		{"bell and cr", "x\ay\r\nz", "xy\nz"},
		{"tabs", "\tif (x) {}", "    if (x) {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOptionList_Cursor(t *testing.T) {
	l := NewOptionList(quiz.QuestionView{
		Options:  []quiz.OptionView{{Label: "A.", Text: "one"}, {Label: "B.", Text: "two"}},
		Selected: -1,
	})
	if l.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", l.Cursor)
	}
	l = l.Up()
	if l.Cursor != 0 {
		t.Errorf("Up at top moved cursor to %d", l.Cursor)
	}
	l = l.Down().Down()
	if l.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", l.Cursor)
	}

	l.Locked = true
	if l.Up().Cursor != 1 {
		t.Error("locked list should not move")
	}
}

func TestOptionList_ViewMarks(t *testing.T) {
	l := OptionList{
		Locked: true,
		Options: []quiz.OptionView{
			{Label: "A.", Text: "wrong", Selected: true, Incorrect: true},
			{Label: "B.", Text: "right", Correct: true},
		},
	}
	out := ansi.Strip(l.View(60))
	if !strings.Contains(out, "A. wrong") || !strings.Contains(out, "✗") {
		t.Errorf("missing incorrect mark:\n%s", out)
	}
	if !strings.Contains(out, "B. right") || !strings.Contains(out, "✓") {
		t.Errorf("missing correct mark:\n%s", out)
	}
	if strings.Contains(out, "▸") {
		t.Errorf("cursor shown on locked list")
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	p := NewProgressBar("", 1.5, true, 20)
	if p.Percent != 1 {
		t.Errorf("percent = %v, want 1", p.Percent)
	}
	if !strings.Contains(ansi.Strip(p.View()), "100%") {
		t.Errorf("missing percent label")
	}
}

func TestMenu(t *testing.T) {
	chosen := ""
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "Restart", Action: func() tea.Cmd { chosen = "restart"; return nil }},
		{Label: "Quit", Action: func() tea.Cmd { chosen = "quit"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("moved onto disabled item")
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "quit" {
		t.Errorf("chosen = %q, want quit", chosen)
	}
}
