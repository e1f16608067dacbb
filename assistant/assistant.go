package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pverdi/omniassist/core/extract"
	"github.com/pverdi/omniassist/core/render"
	"github.com/pverdi/omniassist/providers/ai"
	"github.com/pverdi/omniassist/providers/history"
	"github.com/pverdi/omniassist/providers/observability"
)

// NotJSONError reports a model response that contained no recoverable JSON.
// Raw holds the complete response text so callers can show it as a
// fallback. It unwraps to [extract.ErrNotJSON].
type NotJSONError struct {
	Raw string
}

func (e *NotJSONError) Error() string {
	return "model response contained no valid JSON"
}

func (e *NotJSONError) Unwrap() error {
	return extract.ErrNotJSON
}

// Answer is the result of a completed exchange: the raw model output, the
// structured value extracted from it, and the display directives derived
// from that value.
type Answer struct {
	Raw        string
	Value      extract.Value
	Directives []render.Directive
	Model      string
	Usage      *ai.Usage
}

// Assistant turns free-form requests into structured answers. It prompts a
// provider for a JSON response, extracts and renders the result, and
// records the exchange in history.
type Assistant struct {
	provider    ai.Provider
	history     history.Store
	model       string
	observer    observability.Observer
	repair      bool
	recentLimit int
	now         func() time.Time
}

// New creates an assistant backed by provider. History recording,
// model selection, and parsing behavior are configured through options.
func New(provider ai.Provider, opts ...Option) *Assistant {
	a := &Assistant{
		provider:    provider,
		recentLimit: history.DefaultRecentLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask sends request to the provider and returns the structured answer.
//
// The provider is asked for a JSON object response. The response text goes
// through extraction and rendering; a response with no recoverable JSON
// yields a [NotJSONError] carrying the raw text. A successful exchange is
// appended to history when a store is configured; history failures are
// logged and do not fail the call.
func (a *Assistant) Ask(ctx context.Context, request string) (*Answer, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, errors.New("request must not be blank")
	}

	if a.observer != nil {
		ctx = observability.ContextWithObserver(ctx, a.observer)
	}
	observer := observability.ObserverFromContext(ctx)

	if observer != nil {
		observer.Info("assistant request",
			observability.String(observability.AttrModel, a.model),
			observability.Int(observability.AttrRequestLength, len(request)),
		)
	}

	resp, err := a.provider.SendMessage(ctx, ai.ChatRequest{
		Model:          a.model,
		SystemPrompt:   systemPrompt,
		Messages:       []ai.Message{{Role: ai.RoleUser, Content: request}},
		ResponseFormat: &ai.ResponseFormat{Type: ai.FormatJSONObject},
	})
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}

	var extractOpts []extract.Option
	if a.repair {
		extractOpts = append(extractOpts, extract.WithRepair())
	}

	value, err := extract.Extract(resp.Content, extractOpts...)
	if err != nil {
		if errors.Is(err, extract.ErrNotJSON) {
			if observer != nil {
				observer.Warn("response contained no valid JSON",
					observability.String(observability.AttrModel, resp.Model),
					observability.Int(observability.AttrResponseLength, len(resp.Content)),
				)
			}
			return nil, &NotJSONError{Raw: resp.Content}
		}
		return nil, err
	}

	directives, err := render.Render(value)
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		Raw:        resp.Content,
		Value:      value,
		Directives: directives,
		Model:      resp.Model,
		Usage:      resp.Usage,
	}

	if a.history != nil {
		entry := history.Entry{
			Timestamp: a.now(),
			Request:   request,
			Response:  value,
			Model:     resp.Model,
		}
		if err := a.history.Append(ctx, entry); err != nil && observer != nil {
			observer.Warn("history append failed",
				observability.Error(err),
			)
		}
	}

	if observer != nil {
		observer.Info("assistant answer",
			observability.String(observability.AttrModel, resp.Model),
			observability.String(observability.AttrFinishReason, resp.FinishReason),
			observability.Int("answer.directives", len(directives)),
		)
	}

	return answer, nil
}

// Recent returns the most recent history entries, newest first. The count
// defaults to [history.DefaultRecentLimit] and is adjustable through
// [WithHistoryLimit]. It returns an empty slice when no history store is
// configured.
func (a *Assistant) Recent(ctx context.Context) ([]history.Entry, error) {
	if a.history == nil {
		return []history.Entry{}, nil
	}
	if a.observer != nil {
		ctx = observability.ContextWithObserver(ctx, a.observer)
	}
	return a.history.Recent(ctx, a.recentLimit)
}
