package history

import (
	"context"
	"time"

	"github.com/pverdi/omniassist/core/extract"
)

// DefaultRecentLimit is the number of entries shown when callers do not ask
// for a specific amount.
const DefaultRecentLimit = 3

// Entry records a single completed exchange: the request that was sent, the
// structured value extracted from the response, and the model that produced
// it.
type Entry struct {
	ID        string
	Timestamp time.Time
	Request   string
	Response  extract.Value
	Model     string
}

// Store persists exchange history. Implementations must be safe for
// concurrent use.
type Store interface {
	// Append stores entry at the end of the history. A blank entry ID is
	// filled in by the implementation.
	Append(ctx context.Context, entry Entry) error

	// Recent returns up to n entries, most recent first. It returns an
	// empty, non-nil slice when the store is empty or n is not positive.
	Recent(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
