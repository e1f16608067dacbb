package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNotJSON is returned when no parseable JSON value could be located in
// the input text.
var ErrNotJSON = errors.New("no valid JSON found in text")

// spanPattern locates the first JSON-object-looking span in prose. The
// doubly-nested alternative comes first so a wrapper object containing a
// nested object wins over the bare single-object match. This is a bounded
// heuristic for stripping prose like "Here is your JSON:" around an object,
// not a general JSON recovery mechanism.
var spanPattern = regexp.MustCompile(`(?s)\{[^{}]*\{.*\}[^{}]*\}|\{.*\}`)

type options struct {
	repair bool
}

// Option configures the behaviour of [Extract].
type Option func(*options)

// WithRepair enables a third extraction stage: when both the strict parse
// and the carved-span parse fail, the text is run through jsonrepair and
// parsed once more. Off by default; the default contract is strictly
// two-stage.
func WithRepair() Option {
	return func(o *options) { o.repair = true }
}

// Extract interprets raw completion-provider output as a structured value.
//
// It first attempts a strict parse of the entire text. On failure it carves
// the first object-shaped span out of the surrounding prose and strict-parses
// that. When the text contains multiple independent JSON objects only the
// first matched span is attempted; later objects are ignored.
//
// Returns a [Value] on success and an error wrapping [ErrNotJSON] when no
// JSON value could be recovered. Empty or blank input is ErrNotJSON.
func Extract(text string, opts ...Option) (Value, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(text) == "" {
		return Value{}, fmt.Errorf("empty input: %w", ErrNotJSON)
	}

	// Fast path: the provider followed instructions and returned pure JSON.
	if v, err := parseStrict(strings.TrimSpace(text)); err == nil {
		return v, nil
	}

	// Heuristic path: carve the first object span out of surrounding prose.
	span := spanPattern.FindString(text)
	if span != "" {
		if v, err := parseStrict(span); err == nil {
			return v, nil
		}
	}

	if o.repair {
		candidate := span
		if candidate == "" {
			candidate = text
		}
		if repaired, err := jsonrepair.JSONRepair(candidate); err == nil {
			if v, parseErr := parseStrict(repaired); parseErr == nil {
				return v, nil
			}
		}
	}

	return Value{}, fmt.Errorf("text of %d bytes: %w", len(text), ErrNotJSON)
}

// ParseAs parses provider output into a concrete type T via JSON
// unmarshaling. When the strict unmarshal fails the content is repaired with
// jsonrepair and retried once. Use this instead of [Extract] when the caller
// knows the expected shape.
func ParseAs[T any](content string) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
	}
	return result, nil
}
