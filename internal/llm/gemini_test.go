package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":       map[string]any{"type": "string", "minLength": 1},
			"correct":    map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": float64(6),
			},
		},
		"required": []any{"text", "options"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	text := schema.Properties["text"]
	if text.Type != "STRING" || text.MinLength == nil || *text.MinLength != 1 {
		t.Fatalf("unexpected text schema: %+v", text)
	}
	if schema.Properties["correct"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for correct, got %s", schema.Properties["correct"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	options := schema.Properties["options"]
	if options.Type != "ARRAY" || options.Items.Type != "STRING" {
		t.Fatalf("unexpected options schema: %+v", options)
	}
	if options.MinItems == nil || *options.MinItems != 2 {
		t.Fatalf("expected minItems 2, got %v", options.MinItems)
	}
	if options.MaxItems == nil || *options.MaxItems != 6 {
		t.Fatalf("expected maxItems 6, got %v", options.MaxItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(Request{
		System:      "You write exam questions.",
		MaxTokens:   512,
		Temperature: 0.5,
		Schema:      questionSchema(),
	})

	if cfg.MaxOutputTokens != 512 {
		t.Errorf("MaxOutputTokens = %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.5 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "You write exam questions." {
		t.Errorf("SystemInstruction = %+v", cfg.SystemInstruction)
	}
	if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
		t.Fatalf("structured output not configured: %q %v", cfg.ResponseMIMEType, cfg.ResponseSchema)
	}

	plain := geminiConfig(Request{MaxTokens: 10})
	if plain.Temperature != nil || plain.ResponseSchema != nil || plain.SystemInstruction != nil {
		t.Errorf("unexpected fields on plain config: %+v", plain)
	}
}
