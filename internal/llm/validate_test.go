package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":       map[string]any{"type": "string", "minLength": 1},
				"options":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
				"correct":    map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"text", "options", "correct"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"text":"Q?","options":["a","b"],"correct":1,"difficulty":"easy"}`, false},
		{"optional omitted", `{"text":"Q?","options":["a","b"],"correct":0}`, false},
		{"missing required", `{"text":"Q?","options":["a","b"]}`, true},
		{"wrong type", `{"text":"Q?","options":["a","b"],"correct":"one"}`, true},
		{"bad enum", `{"text":"Q?","options":["a","b"],"correct":0,"difficulty":"brutal"}`, true},
		{"too few options", `{"text":"Q?","options":["a"],"correct":0}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestTrimJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"whitespace", "\n  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(trimJSON(json.RawMessage(tt.in))); got != tt.want {
				t.Errorf("trimJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFinishResponse(t *testing.T) {
	req := Request{Schema: questionSchema()}

	t.Run("fenced content is trimmed and validated", func(t *testing.T) {
		resp, err := finishResponse(req, &Response{
			Content:    json.RawMessage("```json\n{\"text\":\"Q?\",\"options\":[\"a\",\"b\"],\"correct\":0}\n```"),
			StopReason: "end",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !json.Valid(resp.Content) {
			t.Fatalf("content not trimmed: %s", resp.Content)
		}
	})

	t.Run("truncated structured output", func(t *testing.T) {
		_, err := finishResponse(req, &Response{Content: json.RawMessage(`{"text":`), StopReason: "max_tokens"})
		var maxTok *ErrMaxTokensExceeded
		if !errors.As(err, &maxTok) {
			t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
		}
	})

	t.Run("unstructured passes through", func(t *testing.T) {
		resp, err := finishResponse(Request{}, &Response{Content: json.RawMessage("hello"), StopReason: "max_tokens"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Content) != "hello" {
			t.Fatalf("content changed: %s", resp.Content)
		}
	})
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		status    int
		retryable bool
		check     func(error) bool
	}{
		{429, true, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{500, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{503, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{408, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{0, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{400, false, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) && e.StatusCode == 400 }},
		{401, false, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) && e.StatusCode == 401 }},
		{404, false, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, base)
		if !tt.check(err) {
			t.Errorf("classifyStatus(%d) = %T", tt.status, err)
		}
		if !errors.Is(err, base) {
			t.Errorf("classifyStatus(%d) lost the cause", tt.status)
		}
		if got := isRetryable(err); got != tt.retryable {
			t.Errorf("isRetryable(classifyStatus(%d)) = %v, want %v", tt.status, got, tt.retryable)
		}
	}
}
