package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	// GetAllByIDs returns the products that exist; missing ids are simply absent.
	GetAllByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error)
	List(ctx context.Context, brandID *domain.ID) ([]*domain.Product, error)
	// UpdateStock persists product.Stock if product.Version is still current.
	UpdateStock(ctx context.Context, product *domain.Product) error
}
