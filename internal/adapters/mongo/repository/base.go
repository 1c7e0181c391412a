package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
}

func NewBaseRepository[T document.Document](db *mongo.Database) *BaseRepository[T] {
	var doc T
	return &BaseRepository[T]{
		collection: db.Collection(doc.CollectionName()),
	}
}

func (r *BaseRepository[T]) ensureIndexes(indexes ...mongo.IndexModel) {
	ctx := context.Background()
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error(ctx, "failed to create indexes", err, map[string]any{
			"collection": r.collection.Name(),
		})
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, parseError(err)
	}

	return r.FindOne(ctx, bson.M{"_id": objectID})
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, parseError(err)
	}

	return entities, nil
}

func (r *BaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		return nil, parseError(err)
	}

	return &entity, nil
}

// Insert stores entity and returns the generated ObjectID hex, or "" when the
// document carries its own non-ObjectID key.
func (r *BaseRepository[T]) Insert(ctx context.Context, entity *T) (string, error) {
	result, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return "", parseError(err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

// UpdateVersioned applies update to the document only while its version is
// still expected, bumping the version on success.
func (r *BaseRepository[T]) UpdateVersioned(ctx context.Context, id string, expected int64, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return parseError(err)
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID, "version": expected},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return parseError(err)
	}

	if result.MatchedCount == 0 {
		return serviceerrors.NewConflictError("entity was modified concurrently")
	}

	return nil
}

func (r *BaseRepository[T]) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, parseError(err)
	}
	return result.DeletedCount, nil
}

func (r *BaseRepository[T]) Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, parseError(err)
	}
	return n, nil
}

func parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	if isInvalidObjectIDError(err) {
		return serviceerrors.NewInvalidRequestError("invalid ID format")
	}
	return err
}

func isInvalidObjectIDError(err error) bool {
	return err != nil && (errors.Is(err, primitive.ErrInvalidHex) || strings.Contains(err.Error(), "not a valid ObjectID"))
}
