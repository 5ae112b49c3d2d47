package draft

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write multiple-choice certification exam questions.

Rules:
- Every question has exactly one correct option. "correct" is its zero-based index.
- Write 4 options unless the question naturally has fewer. Never prefix options with letters or numbers.
- Distractors should reflect real misconceptions, not obviously wrong filler.
- Vary the position of the correct option across questions.
- When a question refers to code, put the code verbatim in "code" with normal indentation and keep "text" free of code blocks. Otherwise set "code" to "".
- The explanation says why the answer is right and why the tempting distractors are wrong.
- Plain text only. No Markdown, no HTML.
- Do not repeat or paraphrase any question from the "avoid" list.`

// buildUserMessage constructs the user message for in.
func buildUserMessage(in Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", in.Count)
	if in.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s for every question\n", in.Difficulty)
	} else {
		b.WriteString("Difficulty: mix easy, medium and hard\n")
	}
	if in.Title != "" {
		fmt.Fprintf(&b, "Quiz title: %s\n", in.Title)
	}

	b.WriteString("\nAvoid these existing questions:\n")
	b.WriteString(buildAvoid(in.Avoid, cfg.MaxAvoid))

	return b.String()
}

// buildAvoid formats existing question texts for the prompt, keeping the
// most recent max entries.
func buildAvoid(texts []string, max int) string {
	if len(texts) == 0 {
		return "None"
	}
	if max > 0 && len(texts) > max {
		texts = texts[len(texts)-max:]
	}

	var b strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, firstLine(t))
	}
	return strings.TrimRight(b.String(), "\n")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
