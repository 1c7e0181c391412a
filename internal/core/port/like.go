package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type LikePort interface {
	Add(ctx context.Context, like *domain.Like) error
	Remove(ctx context.Context, userID domain.UserID, productID domain.ID) error
	CountByProduct(ctx context.Context, productID domain.ID) (int64, error)
	CountByProducts(ctx context.Context, productIDs []domain.ID) (map[domain.ID]int64, error)
}
