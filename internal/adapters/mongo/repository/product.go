package repository

import (
	"context"
	"time"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db),
	}
	repo.ensureIndexes(mongo.IndexModel{
		Keys: bson.D{{Key: "brand_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return repo
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	id, err := r.Insert(ctx, document.ToProductDocument(product))
	if err != nil {
		return err
	}
	product.ID = domain.ID(id)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain()
}

func (r *ProductRepository) GetAllByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	oids := document.ObjectIDsFromHex(ids)
	if len(oids) == 0 {
		return []*domain.Product{}, nil
	}

	docs, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	return toProducts(docs)
}

func (r *ProductRepository) List(ctx context.Context, brandID *domain.ID) ([]*domain.Product, error) {
	filter := bson.M{}
	if brandID != nil {
		oid, err := primitive.ObjectIDFromHex(string(*brandID))
		if err != nil {
			return []*domain.Product{}, nil
		}
		filter["brand_id"] = oid
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return toProducts(docs)
}

func (r *ProductRepository) UpdateStock(ctx context.Context, product *domain.Product) error {
	now := time.Now()
	err := r.UpdateVersioned(ctx, string(product.ID), product.Version, bson.M{
		"stock":      product.Stock.Int(),
		"updated_at": now,
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			return serviceerrors.NewConflictError("product stock was modified concurrently")
		}
		return err
	}
	product.Version++
	product.UpdatedAt = now
	return nil
}

func toProducts(docs []document.ProductDocument) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(docs))
	for i := range docs {
		p, err := docs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
