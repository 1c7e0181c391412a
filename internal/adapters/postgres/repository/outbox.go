package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
)

type OutboxRepository struct {
	db *postgres.DB
}

func NewOutboxRepository(db *postgres.DB) outbox.Repository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	query := r.db.QueryBuilder.Insert("outbox").
		Columns("id", "event_name", "entity_name", "event_data", "created_at").
		Values(uuid.NewString(), entry.EventName, entry.EntityName, string(entry.EventData), createdAt(entry))
	_, err := exec(ctx, r.db, query)
	return err
}

func createdAt(entry outbox.Entry) time.Time {
	if entry.CreatedAt.IsZero() {
		return time.Now().UTC()
	}
	return entry.CreatedAt
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	query := r.db.QueryBuilder.Select("id", "event_name", "entity_name", "event_data::text", "created_at").
		From("outbox").
		OrderBy("created_at", "id").
		Limit(uint64(limit))

	entries := []outbox.Entry{}
	err := queryRows(ctx, r.db, query, func(rows pgx.Rows) error {
		var (
			entry outbox.Entry
			data  string
		)
		if err := rows.Scan(&entry.ID, &entry.EventName, &entry.EntityName, &data, &entry.CreatedAt); err != nil {
			return err
		}
		entry.EventData = []byte(data)
		entry.CreatedAt = entry.CreatedAt.UTC()
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	_, err := exec(ctx, r.db, r.db.QueryBuilder.Delete("outbox").Where(squirrel.Eq{"id": id}))
	return err
}
