package bank

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/quizrun/internal/quiz"
)

// SupportedMajor is the bank format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for banks written for a different
// major format version.
var ErrUnsupportedVersion = errors.New("unsupported bank version")

// Problem is one defect found in a bank.
type Problem struct {
	Path    string // e.g. "questions[3].correct"
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// ValidationError lists every problem found in a bank.
type ValidationError struct {
	Problems []Problem
	Err      error
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid bank: " + e.Problems[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid bank: %d problems", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p.String())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the invariants the schema cannot express: the version
// major, that every correct index names an option, and that no option is
// blank.
func Validate(f *File) error {
	if f == nil {
		return &ValidationError{Problems: []Problem{{Message: "bank is nil"}}}
	}

	if !semver.IsValid(f.Version) {
		return &ValidationError{Problems: []Problem{{
			Path:    "version",
			Message: fmt.Sprintf("%q is not a semantic version", f.Version),
		}}}
	}
	if major := semver.Major(f.Version); major != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, f.Version, SupportedMajor)
	}

	var problems []Problem
	add := func(path, format string, args ...any) {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(f.Title) == "" {
		add("title", "must not be empty")
	}
	if len(f.Questions) == 0 {
		add("questions", "at least one question is required")
	}

	for i, q := range f.Questions {
		path := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			add(path+".text", "must not be empty")
		}
		if len(q.Options) < 2 {
			add(path+".options", "need at least 2 options, got %d", len(q.Options))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				add(fmt.Sprintf("%s.options[%d]", path, j), "must not be blank")
			}
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			add(path+".correct", "index %d out of range for %d options", q.Correct, len(q.Options))
		}
		if !quiz.Difficulty(q.Difficulty).Valid() {
			add(path+".difficulty", "unknown difficulty %q", q.Difficulty)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
