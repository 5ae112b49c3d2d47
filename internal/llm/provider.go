// Package llm talks to hosted language models through one small interface.
//
// Providers return structured JSON validated against a caller-supplied
// schema. Decorators add retries and request logging; NewProvider wires
// them together from a Config.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set, the provider's native structured-output mode is used and the
	// returned Content has already been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider sends requests to.
	ModelID() string
}

// Request is a single generation request.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON conforming to it. Without a schema
	// Content is whatever text the model produced.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is sent as the OpenAI schema name, so keep it kebab-case.
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the model output for one request.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // the model that actually served the request
	StopReason string // StopEnd or StopMaxTokens
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
