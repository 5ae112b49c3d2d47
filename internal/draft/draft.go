// Package draft writes new question banks with an LLM.
//
// A draft is only returned once it passes the same validation as a bank
// loaded from disk, so it can be written out and played directly.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizrun/internal/bank"
	"github.com/abhisek/quizrun/internal/llm"
	"github.com/abhisek/quizrun/internal/logging"
	"github.com/abhisek/quizrun/internal/quiz"
)

// Version is the bank format version stamped on drafted banks.
const Version = "v1.0.0"

var (
	// ErrNoTopic is returned when Input.Topic is blank.
	ErrNoTopic = errors.New("draft topic is required")

	// ErrBadCount is returned when Input.Count is out of range.
	ErrBadCount = errors.New("question count out of range")

	// ErrEmptyDraft is returned when no usable questions came back.
	ErrEmptyDraft = errors.New("draft contains no usable questions")
)

// Input describes the bank to draft.
type Input struct {
	Topic      string
	Count      int
	Difficulty quiz.Difficulty // Empty asks for a mix.
	Title      string          // Optional; the model picks one otherwise.

	// Avoid lists existing question texts the draft must not repeat.
	Avoid []string
}

// Drafter produces banks from an llm.Provider.
type Drafter struct {
	provider llm.Provider
	config   Config
	log      logrus.FieldLogger
}

// New creates a Drafter. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log logrus.FieldLogger) *Drafter {
	if log == nil {
		log = logging.Discard()
	}
	return &Drafter{provider: provider, config: cfg, log: log}
}

// draftOutput is the raw LLM response before validation.
type draftOutput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []bank.Question `json:"questions"`
}

// Draft asks the provider for a bank matching in and validates the result.
func (d *Drafter) Draft(ctx context.Context, in Input) (*bank.File, error) {
	if err := d.checkInput(in); err != nil {
		return nil, err
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "draft-bank")

	log := d.log.WithFields(logrus.Fields{
		"topic": in.Topic,
		"count": in.Count,
		"model": d.provider.ModelID(),
	})
	log.Info("drafting bank")

	resp, err := d.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in, d.config)}},
		Schema:      BankSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	f := &bank.File{
		Version:     Version,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Questions:   d.cleanQuestions(raw.Questions, in, log),
	}
	if in.Title != "" {
		f.Title = in.Title
	}
	if f.Title == "" {
		f.Title = in.Topic
	}
	if len(f.Questions) == 0 {
		return nil, ErrEmptyDraft
	}
	if len(f.Questions) < in.Count {
		log.WithField("got", len(f.Questions)).Warn("draft returned fewer questions than requested")
	}

	if err := bank.Validate(f); err != nil {
		return nil, fmt.Errorf("drafted bank failed validation: %w", err)
	}

	log.WithField("questions", len(f.Questions)).Info("bank drafted")
	return f, nil
}

func (d *Drafter) checkInput(in Input) error {
	if strings.TrimSpace(in.Topic) == "" {
		return ErrNoTopic
	}
	if in.Count < 1 || (d.config.MaxQuestions > 0 && in.Count > d.config.MaxQuestions) {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrBadCount, in.Count, d.config.MaxQuestions)
	}
	if !in.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", in.Difficulty)
	}
	return nil
}

// cleanQuestions trims fields, drops duplicates of each other and of
// in.Avoid, enforces the requested difficulty, and caps the list at
// in.Count.
func (d *Drafter) cleanQuestions(qs []bank.Question, in Input, log logrus.FieldLogger) []bank.Question {
	seen := make(map[string]bool, len(qs)+len(in.Avoid))
	for _, t := range in.Avoid {
		seen[normalizeText(t)] = true
	}

	out := make([]bank.Question, 0, len(qs))
	for _, q := range qs {
		if len(out) == in.Count {
			break
		}

		q.Text = strings.TrimSpace(q.Text)
		q.Explanation = strings.TrimSpace(q.Explanation)
		q.Category = strings.TrimSpace(q.Category)
		q.Code = strings.Trim(q.Code, "\n")
		for i := range q.Options {
			q.Options[i] = strings.TrimSpace(q.Options[i])
		}
		if in.Difficulty != "" {
			q.Difficulty = string(in.Difficulty)
		}

		key := normalizeText(q.Text)
		if seen[key] {
			log.WithField("question", firstLine(q.Text)).Debug("dropping duplicate question")
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
