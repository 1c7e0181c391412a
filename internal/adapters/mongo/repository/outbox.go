package repository

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
}

func NewOutboxRepository(db *mongo.Database) outbox.Repository {
	repo := &OutboxRepository{NewBaseRepository[document.OutboxDocument](db)}
	repo.ensureIndexes(mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
	})
	return repo
}

// Insert joins the caller's session when ctx carries one, so the entry commits
// with the order that produced it.
func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	_, err := r.BaseRepository.Insert(ctx, document.ToOutboxDocument(entry))
	return err
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i := range docs {
		entries[i] = docs[i].ToEntry()
	}
	return entries, nil
}

// Delete is a no-op for an entry that is already gone.
func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}
	_, err = r.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
