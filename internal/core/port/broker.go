package port

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort delivers domain events to consumers outside the service. A nil
// error means the broker acknowledged the message; only then may the outbox
// forget it.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	// PublishRaw sends an already encoded event body, as stored in the outbox.
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
