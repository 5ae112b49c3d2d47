package quiz

import "strings"

// Difficulty is the optional difficulty badge of a question.
type Difficulty string

const (
	DifficultyNone   Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties (or unset).
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyNone, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DisplayName returns the capitalised badge label, e.g. "Medium".
func (d Difficulty) DisplayName() string {
	if d == DifficultyNone {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Question is a single multiple-choice question. Questions are supplied by
// the caller and never modified by the controller.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string

	// Optional metadata.
	Category   string
	Difficulty Difficulty

	// Code is a verbatim code sample. Renderers must display it as literal
	// text.
	Code string
}

// IsCorrect reports whether option index i is the correct answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}

// HasOption reports whether i is a valid option index for q.
func (q Question) HasOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// OptionLabel returns the letter label for option i ("A.", "B.", ...).
func OptionLabel(i int) string {
	return string(rune('A'+i)) + "."
}
