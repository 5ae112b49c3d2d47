package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that writes one structured log entry per
// LLM request.
type LoggingProvider struct {
	inner Provider
	log   logrus.FieldLogger
}

// WithLogging wraps a Provider with request logging. A nil logger
// discards output.
func WithLogging(p Provider, log logrus.FieldLogger) Provider {
	if log == nil {
		log = discardLogger()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := l.log.WithFields(logrus.Fields{
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if req.Schema != nil {
		entry = entry.WithField("schema", req.Schema.Name)
	}

	if resp != nil {
		fields := logrus.Fields{
			"model":         resp.Model,
			"input_tokens":  resp.Usage.InputTokens,
			"output_tokens": resp.Usage.OutputTokens,
			"stop_reason":   resp.StopReason,
		}
		if cost := LookupCost(resp.Model); cost != nil {
			fields["cost_usd"] = fmt.Sprintf("%.6f", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
		entry = entry.WithFields(fields)
	}

	if err != nil {
		entry.WithError(err).WithField("request", serializeRequest(req)).Warn("llm request failed")
		return resp, err
	}

	entry.Info("llm request")
	entry.WithFields(logrus.Fields{
		"request":  serializeRequest(req),
		"response": string(resp.Content),
	}).Debug("llm exchange")
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders a request as readable text for debug logs.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
