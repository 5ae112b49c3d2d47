package quiz

// Tier is the qualitative band a final percentage falls into.
type Tier int

const (
	TierNeedsImprovement Tier = iota
	TierFair
	TierGood
	TierExamReady
)

func (t Tier) String() string {
	switch t {
	case TierExamReady:
		return "exam-ready"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	default:
		return "needs-improvement"
	}
}

// Tier lower bounds, inclusive.
const (
	examReadyThreshold = 90
	goodThreshold      = 75
	fairThreshold      = 60
)

// Percentage returns round-half-up(score/total*100). Returns 0 when total
// is not positive.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	// Integer form of floor(score*100/total + 0.5).
	return (score*200 + total) / (2 * total)
}

// TierFor maps a rounded percentage to its tier.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= examReadyThreshold:
		return TierExamReady
	case percentage >= goodThreshold:
		return TierGood
	case percentage >= fairThreshold:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// Messages holds the feedback shown for each tier on the results view.
type Messages struct {
	ExamReady        string `json:"exam_ready,omitempty" yaml:"exam_ready,omitempty"`
	Good             string `json:"good,omitempty" yaml:"good,omitempty"`
	Fair             string `json:"fair,omitempty" yaml:"fair,omitempty"`
	NeedsImprovement string `json:"needs_improvement,omitempty" yaml:"needs_improvement,omitempty"`
}

// DefaultMessages returns the built-in tier messages.
func DefaultMessages() Messages {
	return Messages{
		ExamReady:        "Excellent! You're ready for the exam!",
		Good:             "Good job! Review the topics you missed and you'll be ready!",
		Fair:             "Not bad! Study more and practice additional questions.",
		NeedsImprovement: "Keep studying! Focus on the fundamentals and try again.",
	}
}

// WithDefaults fills empty messages from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	if m.ExamReady == "" {
		m.ExamReady = d.ExamReady
	}
	if m.Good == "" {
		m.Good = d.Good
	}
	if m.Fair == "" {
		m.Fair = d.Fair
	}
	if m.NeedsImprovement == "" {
		m.NeedsImprovement = d.NeedsImprovement
	}
	return m
}

// For returns the message for tier t.
func (m Messages) For(t Tier) string {
	switch t {
	case TierExamReady:
		return m.ExamReady
	case TierGood:
		return m.Good
	case TierFair:
		return m.Fair
	default:
		return m.NeedsImprovement
	}
}
