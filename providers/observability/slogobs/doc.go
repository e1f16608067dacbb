// Package slogobs adapts Go's standard log/slog to the
// [observability.Observer] interface.
package slogobs
