package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quiz-bank.json"

// SchemaDefinition is the JSON schema every bank document must satisfy.
var SchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+(\.[0-9]+){0,2}$`,
		},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"messages": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exam_ready":        map[string]any{"type": "string"},
				"good":              map[string]any{"type": "string"},
				"fair":              map[string]any{"type": "string"},
				"needs_improvement": map[string]any{"type": "string"},
			},
			"additionalProperties": false,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"correct":     map[string]any{"type": "integer", "minimum": 0},
					"explanation": map[string]any{"type": "string"},
					"category":    map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"", "easy", "medium", "hard"},
					},
					"code": map[string]any{"type": "string"},
				},
				"required":             []any{"text", "options", "correct", "explanation"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "title", "questions"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(SchemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks a canonical JSON document against SchemaDefinition.
func validateSchema(doc []byte) error {
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	s, err := bankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := s.Validate(parsed); err != nil {
		return &ValidationError{
			Problems: []Problem{{Path: "", Message: err.Error()}},
			Err:      err,
		}
	}
	return nil
}
