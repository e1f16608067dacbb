// Package observability defines the logging surface shared by the assistant
// and its providers.
//
// Components accept an [Observer] through context
// ([ContextWithObserver]/[ObserverFromContext]) so that library code stays
// silent unless the host wires a sink in. The slogobs subpackage adapts
// Go's standard log/slog.
package observability
