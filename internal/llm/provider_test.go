package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "draft-bank")
	if p := PurposeFrom(ctx); p != "draft-bank" {
		t.Fatalf("expected 'draft-bank', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Provider: "mock", Timeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"text":"Q?"}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: questionSchema()})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUIZRUN_LLM_PROVIDER", "QUIZRUN_LLM_TIMEOUT",
		"QUIZRUN_ANTHROPIC_API_KEY", "QUIZRUN_ANTHROPIC_MODEL", "QUIZRUN_ANTHROPIC_BASE_URL",
		"QUIZRUN_OPENAI_API_KEY", "QUIZRUN_OPENAI_MODEL", "QUIZRUN_OPENAI_BASE_URL",
		"QUIZRUN_GEMINI_API_KEY", "QUIZRUN_GEMINI_MODEL",
		"QUIZRUN_OPENROUTER_API_KEY", "QUIZRUN_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("explicit provider", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("QUIZRUN_LLM_PROVIDER", "openai")
		t.Setenv("QUIZRUN_OPENAI_API_KEY", "sk-test")
		t.Setenv("QUIZRUN_OPENAI_BASE_URL", "http://localhost:11434/v1")
		t.Setenv("QUIZRUN_LLM_TIMEOUT", "2m")

		cfg := ConfigFromEnv()
		if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.OpenAI.BaseURL != "http://localhost:11434/v1" {
			t.Fatalf("base URL = %q", cfg.OpenAI.BaseURL)
		}
		if cfg.Timeout != 2*time.Minute {
			t.Fatalf("timeout = %s", cfg.Timeout)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() = %v", err)
		}
	})

	t.Run("discovers standard keys", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

		cfg := ConfigFromEnv()
		if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("defaults without keys", func(t *testing.T) {
		clearLLMEnv(t)
		cfg := ConfigFromEnv()
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "QUIZRUN_ANTHROPIC_API_KEY") {
			t.Fatalf("expected missing key error, got %v", err)
		}
	})
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock provider, got %q", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "anthropic"}, nil); err == nil {
		t.Fatal("expected error for missing key")
	}

	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err = NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry decorator, got %T", p)
	}
	if p.ModelID() != "google/gemini-2.5-flash" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestLoggingProvider(t *testing.T) {
	var buf strings.Builder
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 1000, OutputTokens: 500}},
		MockResponse{Err: &ErrRejected{StatusCode: 401, Err: errors.New("bad key")}},
	)
	p := WithLogging(mock, log)
	ctx := WithPurpose(context.Background(), "draft-bank")

	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	out := buf.String()
	for _, want := range []string{`"purpose":"draft-bank"`, `"input_tokens":1000`, `"msg":"llm request"`, `"msg":"llm request failed"`, `"level":"warning"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "llm exchange") {
		t.Errorf("debug exchange logged at info level")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-haiku-4-5")
	if c == nil {
		t.Fatal("expected pricing for claude-haiku-4-5")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 6 {
		t.Fatalf("Cost() = %v, want 6", got)
	}
	if LookupCost("mock") != nil {
		t.Fatal("expected no pricing for mock")
	}
}
