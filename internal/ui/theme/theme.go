package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrun/internal/quiz"
)

// Color palette, muted study-desk tones
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#E5E7EB") // Light gray
	TextDim   = lipgloss.Color("#9CA3AF") // Gray
	BgDark    = lipgloss.Color("#111827") // Near black
	BgCard    = lipgloss.Color("#1F2937") // Charcoal
	BgCode    = lipgloss.Color("#0B1220") // Ink
	Border    = lipgloss.Color("#374151") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Question = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Blocks
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Code = lipgloss.NewStyle().
		Background(BgCode).
		Foreground(Text).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Secondary).
		Padding(0, 1)

	Explanation = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)
)

// Option states
var (
	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Revealed = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(TextDim).
		Padding(0, 1)
)

// DifficultyBadge returns the badge style for d.
func DifficultyBadge(d quiz.Difficulty) lipgloss.Style {
	switch d {
	case quiz.DifficultyEasy:
		return Badge.Background(Success)
	case quiz.DifficultyMedium:
		return Badge.Background(Accent)
	case quiz.DifficultyHard:
		return Badge.Background(Error)
	default:
		return Badge
	}
}

// TierStyle returns the accent style for a result tier.
func TierStyle(t quiz.Tier) lipgloss.Style {
	switch t {
	case quiz.TierExamReady:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case quiz.TierGood:
		return lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	case quiz.TierFair:
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Error).Bold(true)
	}
}
