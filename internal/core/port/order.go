package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderPort interface {
	// CreateWithOutbox stores the order with its items and an order.placed outbox entry.
	CreateWithOutbox(ctx context.Context, order *domain.Order) error
	GetByIDAndUser(ctx context.Context, id domain.ID, userID domain.UserID) (*domain.Order, error)
	GetAllByUser(ctx context.Context, userID domain.UserID) ([]*domain.Order, error)
}
