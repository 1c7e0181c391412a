package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	BrandID     primitive.ObjectID `bson:"brand_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int64              `bson:"price"`
	Stock       int                `bson:"stock"`
	Version     int64              `bson:"version"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (ProductDocument) CollectionName() string { return "products" }

func (doc *ProductDocument) ToDomain() (*domain.Product, error) {
	price, err := domain.NewAmount(doc.Price)
	if err != nil {
		return nil, err
	}
	stock, err := domain.NewStock(doc.Stock)
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		ID:          domain.ID(doc.ID.Hex()),
		BrandID:     domain.ID(doc.BrandID.Hex()),
		Name:        doc.Name,
		Description: doc.Description,
		Price:       price,
		Stock:       stock,
		Version:     doc.Version,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Int64(),
		Stock:       p.Stock.Int(),
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if brandID, err := primitive.ObjectIDFromHex(string(p.BrandID)); err == nil {
		doc.BrandID = brandID
	}
	return doc
}
