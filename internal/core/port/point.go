package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// PointPort stores point balances. Inside a transaction GetByUserID locks the
// account until commit; Update fails with a conflict when Version is stale.
type PointPort interface {
	Create(ctx context.Context, point *domain.Point) error
	GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Point, error)
	Update(ctx context.Context, point *domain.Point) error
}
