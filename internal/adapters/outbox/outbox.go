package outbox

import (
	"context"
	"time"
)

// Entry is an event persisted in the same transaction as the state change it
// describes. EventData is the JSON body handed to the broker unchanged.
type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	CreatedAt  time.Time
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	// FetchPending returns the oldest entries first.
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
