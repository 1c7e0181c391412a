package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PointDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Balance   int64              `bson:"balance"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (PointDocument) CollectionName() string { return "points" }

func (doc *PointDocument) ToDomain() (*domain.Point, error) {
	balance, err := domain.NewPointBalance(doc.Balance)
	if err != nil {
		return nil, err
	}
	return &domain.Point{
		ID:        domain.ID(doc.ID.Hex()),
		UserID:    domain.UserID(doc.UserID),
		Balance:   balance,
		Version:   doc.Version,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func ToPointDocument(p *domain.Point) *PointDocument {
	return &PointDocument{
		UserID:    string(p.UserID),
		Balance:   p.Balance.Int64(),
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
