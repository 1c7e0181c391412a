package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BrandDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (BrandDocument) CollectionName() string { return "brands" }

func (doc *BrandDocument) ToDomain() *domain.Brand {
	return &domain.Brand{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
	}
}

func ToBrandDocument(b *domain.Brand) *BrandDocument {
	return &BrandDocument{
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
