package repository

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LikeRepository struct {
	*BaseRepository[document.LikeDocument]
}

func NewLikeRepository(db *mongo.Database) port.LikePort {
	repo := &LikeRepository{
		BaseRepository: NewBaseRepository[document.LikeDocument](db),
	}
	repo.ensureIndexes(
		mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "product_id", Value: 1}},
		},
	)
	return repo
}

// Add is idempotent: liking the same product twice keeps a single like.
func (r *LikeRepository) Add(ctx context.Context, like *domain.Like) error {
	productID, err := primitive.ObjectIDFromHex(string(like.ProductID))
	if err != nil {
		return parseError(err)
	}

	_, err = r.collection.UpdateOne(ctx,
		bson.M{"user_id": string(like.UserID), "product_id": productID},
		bson.M{"$setOnInsert": bson.M{"created_at": like.CreatedAt}},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return parseError(err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, userID domain.UserID, productID domain.ID) error {
	oid, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return parseError(err)
	}
	_, err = r.DeleteOne(ctx, bson.M{"user_id": string(userID), "product_id": oid})
	return err
}

func (r *LikeRepository) CountByProduct(ctx context.Context, productID domain.ID) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return 0, parseError(err)
	}
	return r.Count(ctx, bson.M{"product_id": oid})
}

func (r *LikeRepository) CountByProducts(ctx context.Context, productIDs []domain.ID) (map[domain.ID]int64, error) {
	counts := make(map[domain.ID]int64, len(productIDs))
	oids := document.ObjectIDsFromHex(productIDs)
	if len(oids) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": bson.M{"$in": oids}}}},
		{{Key: "$group", Value: bson.M{"_id": "$product_id", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ProductID primitive.ObjectID `bson:"_id"`
		Count     int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, parseError(err)
	}

	for _, row := range rows {
		counts[domain.ID(row.ProductID.Hex())] = row.Count
	}
	return counts, nil
}
