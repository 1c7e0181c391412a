package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager runs fn atomically. fn may be invoked more than once when
// the store retries a transient conflict, so it must not leak partial state.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
