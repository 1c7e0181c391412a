package repository

import (
	"context"
	"time"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PointRepository struct {
	*BaseRepository[document.PointDocument]
}

func NewPointRepository(db *mongo.Database) port.PointPort {
	repo := &PointRepository{
		BaseRepository: NewBaseRepository[document.PointDocument](db),
	}
	repo.ensureIndexes(mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return repo
}

func (r *PointRepository) Create(ctx context.Context, point *domain.Point) error {
	id, err := r.Insert(ctx, document.ToPointDocument(point))
	if err != nil {
		return err
	}
	point.ID = domain.ID(id)
	return nil
}

func (r *PointRepository) GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Point, error) {
	doc, err := r.FindOne(ctx, bson.M{"user_id": string(userID)})
	if err != nil {
		return nil, err
	}
	return doc.ToDomain()
}

func (r *PointRepository) Update(ctx context.Context, point *domain.Point) error {
	now := time.Now()
	err := r.UpdateVersioned(ctx, string(point.ID), point.Version, bson.M{
		"balance":    point.Balance.Int64(),
		"updated_at": now,
	})
	if err != nil {
		return err
	}
	point.Version++
	point.UpdatedAt = now
	return nil
}
