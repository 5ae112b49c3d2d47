package quiz

import "github.com/google/uuid"

// Phase is the state of the quiz state machine.
type Phase int

const (
	PhasePresenting Phase = iota // Current question shown, no answer yet
	PhaseLocked                  // Current question answered; advance enabled
	PhaseFinished                // Results shown
)

func (p Phase) String() string {
	switch p {
	case PhasePresenting:
		return "presenting"
	case PhaseLocked:
		return "locked"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one quiz attempt. It is owned by a
// Controller and replaced wholesale on restart.
type Session struct {
	// ID identifies this attempt in logs.
	ID string

	// Questions is fixed for the lifetime of the session.
	Questions []Question

	// CurrentIndex is the index of the question being shown.
	CurrentIndex int

	// Score is the number of questions answered correctly on first choice.
	Score int

	// Finished is true once the results have been shown.
	Finished bool

	// Locked marks questions that have been answered. A locked question
	// accepts no further choices and enables advancing.
	Locked map[int]bool

	// Scored marks questions that have contributed to Score. Tracked
	// separately from Locked so restores never re-score.
	Scored map[int]bool

	// Selected holds the option chosen for each answered question.
	Selected map[int]int
}

// NewSession creates a session at question 0 with empty answer maps.
func NewSession(questions []Question, id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}
	return &Session{
		ID:        id,
		Questions: questions,
		Locked:    make(map[int]bool),
		Scored:    make(map[int]bool),
		Selected:  make(map[int]int),
	}
}

// Current returns the question at CurrentIndex.
func (s *Session) Current() Question {
	return s.Questions[s.CurrentIndex]
}

// IsLast reports whether the current question is the last one.
func (s *Session) IsLast() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Phase derives the state machine phase from the session fields.
func (s *Session) Phase() Phase {
	switch {
	case s.Finished:
		return PhaseFinished
	case s.Locked[s.CurrentIndex]:
		return PhaseLocked
	default:
		return PhasePresenting
	}
}

// SelectedAt returns the option chosen for question i, if any.
func (s *Session) SelectedAt(i int) (int, bool) {
	idx, ok := s.Selected[i]
	return idx, ok
}
