package repository

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BrandRepository struct {
	*BaseRepository[document.BrandDocument]
}

func NewBrandRepository(db *mongo.Database) port.BrandPort {
	repo := &BrandRepository{
		BaseRepository: NewBaseRepository[document.BrandDocument](db),
	}
	repo.ensureIndexes(mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return repo
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	id, err := r.Insert(ctx, document.ToBrandDocument(brand))
	if err != nil {
		return err
	}
	brand.ID = domain.ID(id)
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}
