package repository_test

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
)

func event(orderID string, at time.Time) outbox.Entry {
	return outbox.Entry{
		EventName:  "order.placed",
		EntityName: "order",
		EventData:  []byte(`{"order_id":"` + orderID + `"}`),
		CreatedAt:  at,
	}
}

func TestOutboxRepository_FetchPending(t *testing.T) {
	repo := repository.NewOutboxRepository(isolatedDB(t))
	ctx := context.Background()

	t.Run("empty outbox", func(t *testing.T) {
		entries, err := repo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected 0 entries, got %d", len(entries))
		}
	})

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, id := range []string{"o-3", "o-1", "o-2"} {
		offset := map[string]time.Duration{"o-1": 0, "o-2": time.Second, "o-3": 2 * time.Second}[id]
		if err := repo.Insert(ctx, event(id, base.Add(offset))); err != nil {
			t.Fatalf("insert %d: expected no error, got %v", i, err)
		}
	}

	t.Run("oldest first", func(t *testing.T) {
		entries, err := repo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{`{"order_id":"o-1"}`, `{"order_id":"o-2"}`, `{"order_id":"o-3"}`}
		if len(entries) != len(want) {
			t.Fatalf("expected %d entries, got %d", len(want), len(entries))
		}
		for i, e := range entries {
			if string(e.EventData) != want[i] {
				t.Fatalf("entry[%d]: expected %s, got %s", i, want[i], e.EventData)
			}
			if e.ID == "" || e.EventName != "order.placed" || e.EntityName != "order" {
				t.Fatalf("entry[%d] incomplete: %+v", i, e)
			}
		}
		if !entries[0].CreatedAt.Equal(base) {
			t.Fatalf("expected created_at %s, got %s", base, entries[0].CreatedAt)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := repo.FetchPending(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})
}

func TestOutboxRepository_Delete(t *testing.T) {
	repo := repository.NewOutboxRepository(isolatedDB(t))
	ctx := context.Background()

	if err := repo.Insert(ctx, event("o-1", time.Time{})); err != nil {
		t.Fatalf("setup: %v", err)
	}
	entries, _ := repo.FetchPending(ctx, 10)
	if len(entries) != 1 {
		t.Fatalf("setup: expected 1 entry, got %d", len(entries))
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("expected insert to stamp created_at")
	}

	t.Run("removes the entry", func(t *testing.T) {
		if err := repo.Delete(ctx, entries[0].ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		remaining, _ := repo.FetchPending(ctx, 10)
		if len(remaining) != 0 {
			t.Fatalf("expected 0 entries after delete, got %d", len(remaining))
		}
	})

	t.Run("already relayed entry", func(t *testing.T) {
		if err := repo.Delete(ctx, primitive.NewObjectID().Hex()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		if err := repo.Delete(ctx, "bad-id"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
