package port

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type MetricsPort interface {
	OrderPlaced(total domain.Amount, duration time.Duration)
	OrderRejected(reason string)
}
