package draft

import "github.com/abhisek/quizrun/internal/llm"

// BankSchema is the structured-output schema for a drafted bank. Every
// property is required and additionalProperties is false so the same
// definition works with OpenAI strict mode; optional fields come back as
// empty strings.
var BankSchema = &llm.Schema{
	Name:        "quiz-bank",
	Description: "A titled set of multiple-choice exam questions with explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the quiz, e.g. 'Java SE 17: Generics'",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One sentence describing what the quiz covers",
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    questionSchema,
			},
		},
		"required":             []any{"title", "description", "questions"},
		"additionalProperties": false,
	},
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{
			"type":        "string",
			"description": "The question prompt, plain text without markup",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    2,
			"maxItems":    6,
			"description": "Answer options in display order, without letter prefixes",
		},
		"correct": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"description": "Zero-based index of the single correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct option is right and the common distractors are wrong",
		},
		"category": map[string]any{
			"type":        "string",
			"description": "Short topic label for the question",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"code": map[string]any{
			"type":        "string",
			"description": "Verbatim code sample the question refers to, or an empty string",
		},
	},
	"required":             []any{"text", "options", "correct", "explanation", "category", "difficulty", "code"},
	"additionalProperties": false,
}
