// Package bank loads and validates question bank files.
//
// A bank is a JSON or YAML document holding a title, an optional set of
// result messages, and the ordered list of questions for one quiz.
package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizrun/internal/quiz"
)

// Format is the on-disk encoding of a bank file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is a decoded bank file.
type File struct {
	Version     string         `json:"version" yaml:"version"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Messages    *quiz.Messages `json:"messages,omitempty" yaml:"messages,omitempty"`
	Questions   []Question     `json:"questions" yaml:"questions"`
}

// Question is the file representation of a quiz question.
type Question struct {
	Text        string   `json:"text" yaml:"text"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Code        string   `json:"code,omitempty" yaml:"code,omitempty"`
}

// Quiz converts the bank questions to quiz questions, preserving order.
func (f *File) Quiz() []quiz.Question {
	out := make([]quiz.Question, len(f.Questions))
	for i, q := range f.Questions {
		out[i] = quiz.Question{
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.Correct,
			Explanation:  q.Explanation,
			Category:     q.Category,
			Difficulty:   quiz.Difficulty(q.Difficulty),
			Code:         q.Code,
		}
	}
	return out
}

// ResultMessages returns the bank's tier messages, falling back to the
// defaults for any that are unset.
func (f *File) ResultMessages() quiz.Messages {
	if f.Messages == nil {
		return quiz.DefaultMessages()
	}
	return f.Messages.WithDefaults()
}

// FormatForPath picks a format from the file extension. Unknown extensions
// return the empty Format so Parse sniffs the content.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Load reads, decodes, and validates the bank at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	f, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a bank document. An empty format sniffs
// JSON by a leading '{' and treats anything else as YAML.
func Parse(data []byte, format Format) (*File, error) {
	if format == "" {
		format = sniff(data)
	}

	doc, err := normalize(data, format)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// normalize converts the document to canonical JSON so schema validation
// and decoding see the same values for both formats.
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			var v any
			err := json.Unmarshal(data, &v)
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if v == nil {
			return nil, errors.New("empty bank document")
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown bank format %q", format)
	}
}

func sniff(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}

// Marshal encodes f in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown bank format %q", format)
	}
}

// Write validates f and writes it to path in the format implied by the
// extension (YAML when unknown).
func Write(path string, f *File) error {
	if err := Validate(f); err != nil {
		return err
	}
	data, err := Marshal(f, FormatForPath(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bank dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}
