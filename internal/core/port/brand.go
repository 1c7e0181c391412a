package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type BrandPort interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error)
}
