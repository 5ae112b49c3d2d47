package draft

import "time"

// Config controls the behavior of a Drafter.
type Config struct {
	// MaxTokens is the token budget for the whole bank response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds one Draft call, retries included. Zero means no
	// limit beyond the caller's context.
	Timeout time.Duration

	// MaxQuestions caps Input.Count.
	MaxQuestions int

	// MaxAvoid is the maximum number of existing question texts quoted in
	// the prompt for deduplication.
	MaxAvoid int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    8192,
		Temperature:  0.7,
		Timeout:      90 * time.Second,
		MaxQuestions: 40,
		MaxAvoid:     30,
	}
}
