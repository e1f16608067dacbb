package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pverdi/omniassist/core/extract"
	"github.com/pverdi/omniassist/providers/history"
)

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 1; i <= 5; i++ {
		err := store.Append(ctx, history.Entry{
			Request:  fmt.Sprintf("request %d", i),
			Response: extract.NewString(fmt.Sprintf("response %d", i)),
			Model:    "gemini-2.0-flash",
		})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	recent, err := store.Recent(ctx, history.DefaultRecentLimit)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(recent))
	}

	// Most recent first.
	wantRequests := []string{"request 5", "request 4", "request 3"}
	for i, entry := range recent {
		if entry.Request != wantRequests[i] {
			t.Errorf("recent[%d].Request = %q, want %q", i, entry.Request, wantRequests[i])
		}
		if entry.ID == "" {
			t.Errorf("recent[%d].ID is empty, want generated", i)
		}
		if entry.Timestamp.IsZero() {
			t.Errorf("recent[%d].Timestamp is zero, want filled in", i)
		}
	}
}

func TestAppend_PreservesExplicitFields(t *testing.T) {
	ctx := context.Background()
	store := New()

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := store.Append(ctx, history.Entry{
		ID:        "fixed-id",
		Timestamp: ts,
		Request:   "hello",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	recent, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if recent[0].ID != "fixed-id" {
		t.Errorf("ID = %q, want fixed-id", recent[0].ID)
	}
	if !recent[0].Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", recent[0].Timestamp, ts)
	}
}

func TestRecent_Empty(t *testing.T) {
	ctx := context.Background()
	store := New()

	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if recent == nil || len(recent) != 0 {
		t.Errorf("Recent() on empty store = %v, want empty non-nil slice", recent)
	}

	recent, err = store.Recent(ctx, -1)
	if err != nil {
		t.Fatalf("Recent(-1) error = %v", err)
	}
	if recent == nil || len(recent) != 0 {
		t.Errorf("Recent(-1) = %v, want empty non-nil slice", recent)
	}
}

func TestCountAndClear(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 0; i < 4; i++ {
		if err := store.Append(ctx, history.Entry{Request: "r"}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	n, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() after clear error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() after clear = %d, want 0", n)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, history.Entry{Request: "r"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Recent(ctx, 3)
		}()
	}
	wg.Wait()

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 10 {
		t.Errorf("Count() = %d, want 10", n)
	}
}
