// Package render draws quiz view models as HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/abhisek/quizrun/internal/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"percent": func(f float64) int { return int(f*100 + 0.5) },
		"letter":  func(i int) string { return strings.TrimSuffix(quiz.OptionLabel(i), ".") },
	}).ParseFS(templateFS, "templates/*.html"),
)

// HTML is a quiz.Renderer that writes markup for every rendered view to
// its writer. Templates escape all question content, so code samples and
// option text always appear as literal text.
type HTML struct {
	w   io.Writer
	err error

	// Last holds the markup of the most recent render.
	Last string
}

// NewHTML returns a renderer writing to w. A nil w only records Last.
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// RenderQuestion implements quiz.Renderer.
func (h *HTML) RenderQuestion(v quiz.QuestionView) {
	h.execute("question", v)
}

// RenderResults implements quiz.Renderer.
func (h *HTML) RenderResults(v quiz.ResultView) {
	h.execute("results", v)
}

// Err returns the first write or template error, if any.
func (h *HTML) Err() error {
	return h.err
}

func (h *HTML) execute(name string, data any) {
	if h.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.err = fmt.Errorf("render %s: %w", name, err)
		return
	}
	h.Last = buf.String()
	if h.w == nil {
		return
	}
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		h.err = fmt.Errorf("write %s: %w", name, err)
	}
}
