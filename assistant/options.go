package assistant

import (
	"time"

	"github.com/pverdi/omniassist/providers/history"
	"github.com/pverdi/omniassist/providers/observability"
)

// Option configures an [Assistant].
type Option func(*Assistant)

// WithHistory records completed exchanges in store.
func WithHistory(store history.Store) Option {
	return func(a *Assistant) {
		a.history = store
	}
}

// WithModel selects the model requested from the provider. When unset, the
// provider's default model is used.
func WithModel(model string) Option {
	return func(a *Assistant) {
		a.model = model
	}
}

// WithHistoryLimit sets how many entries [Assistant.Recent] returns.
// Values below 1 are ignored and the default of
// [history.DefaultRecentLimit] stays in effect.
func WithHistoryLimit(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.recentLimit = n
		}
	}
}

// WithObserver attaches an observer that receives log events for every
// exchange. The observer is also propagated to the provider and the
// history store through the request context.
func WithObserver(observer observability.Observer) Option {
	return func(a *Assistant) {
		a.observer = observer
	}
}

// WithLenientParsing enables a repair pass on malformed JSON responses, so
// near-JSON output (single quotes, trailing commas, unclosed braces) still
// produces a structured answer.
func WithLenientParsing() Option {
	return func(a *Assistant) {
		a.repair = true
	}
}

// WithClock replaces the time source used to stamp history entries.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}
