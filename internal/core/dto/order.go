package dto

import "github.com/rafaelleal24/commerce/internal/core/domain"

type OrderItem struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrderRequest carries the line items in the order the buyer listed them.
// UserID is taken from the X-USER-ID header.
type PlaceOrderRequest struct {
	UserID domain.UserID `json:"-"`
	Items  []OrderItem   `json:"items"`
}

// idempotencyPayload keeps the user in the hash so two users cannot share a key.
type idempotencyPayload struct {
	UserID domain.UserID `json:"user_id"`
	Items  []OrderItem   `json:"items"`
}

func (r *PlaceOrderRequest) IdempotencyPayload() any {
	return idempotencyPayload{UserID: r.UserID, Items: r.Items}
}
