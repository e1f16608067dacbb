// Package assistant orchestrates the full exchange pipeline: prompting a
// provider for a JSON response, extracting a structured value from the
// response text, rendering display directives, and recording the exchange
// in history.
//
// The primary entry point is [New], which wraps an [ai.Provider] and is
// configured through functional options such as [WithHistory],
// [WithModel], [WithObserver], and [WithLenientParsing]. A single request
// flows through [Assistant.Ask] and comes back as an [Answer].
package assistant
