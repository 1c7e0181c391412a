package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CachePort is a typed key/value store with expiry. Get reports a miss as
// (nil, nil). SetNX is the primitive the idempotency claim is built on.
type CachePort[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value *T, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}
