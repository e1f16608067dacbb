package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pverdi/omniassist/providers/history"
	"github.com/pverdi/omniassist/providers/observability"
)

// ArrayStore is a simple, concurrency-safe in-memory history store.
// It uses RWMutex to guard access and is efficient for read-heavy workloads.
type ArrayStore struct {
	mu      sync.RWMutex
	entries []history.Entry
}

// New returns a new, empty [ArrayStore] ready for immediate use.
func New() *ArrayStore {
	return &ArrayStore{
		entries: []history.Entry{},
	}
}

// Ensure ArrayStore implements history.Store at compile time.
var _ history.Store = (*ArrayStore)(nil)

// Append stores entry at the end of the history. A blank ID is replaced
// with a generated UUID and a zero timestamp with the current time.
// When an observer is present in ctx, the running entry count is logged so
// callers can track history growth.
func (s *ArrayStore) Append(ctx context.Context, entry history.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	total := len(s.entries)
	s.mu.Unlock()

	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Debug("history entry appended",
			observability.String(observability.AttrModel, entry.Model),
			observability.Int(observability.AttrHistoryEntries, total),
		)
	}

	return nil
}

// Recent returns up to n entries as a new, independent slice, most recent
// first. If n exceeds the number of stored entries, all entries are
// returned. Returns an empty, non-nil slice when n is zero or negative, or
// when the store is empty.
// The context parameter is accepted for interface compliance but is not
// used by the in-memory implementation. The returned error is always nil.
func (s *ArrayStore) Recent(_ context.Context, n int) ([]history.Entry, error) {
	if n <= 0 {
		return []history.Entry{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return []history.Entry{}, nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]history.Entry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Count returns the number of stored entries.
// The context parameter is accepted for interface compliance but is not
// used by the in-memory implementation. The returned error is always nil.
func (s *ArrayStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n, nil
}

// Clear removes all entries while retaining the underlying slice capacity,
// so subsequent appends do not immediately trigger a reallocation.
func (s *ArrayStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.entries = s.entries[:0]
	s.mu.Unlock()

	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Debug("history cleared")
	}

	return nil
}
