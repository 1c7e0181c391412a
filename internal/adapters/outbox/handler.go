package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

// Observer is told how each relay attempt went. stage is "publish" or "delete".
type Observer interface {
	EventRelayed(entity string, lag time.Duration)
	RelayFailed(entity, stage string)
}

type noopObserver struct{}

func (noopObserver) EventRelayed(string, time.Duration) {}
func (noopObserver) RelayFailed(string, string)         {}

// Handler relays outbox entries to the broker. An entry is deleted only after
// the broker confirmed it, so delivery is at least once.
type Handler struct {
	outbox   Repository
	broker   port.BrokerPort
	observer Observer
	interval time.Duration
	batch    int
}

const (
	minBatch        = 1
	defaultInterval = time.Second
)

// NewHandler builds a relay. A nil observer discards relay telemetry. A batch
// below one is raised to one so Flush can tell when the outbox is drained.
func NewHandler(outbox Repository, broker port.BrokerPort, observer Observer, config config.OutboxConfig) *Handler {
	if observer == nil {
		observer = noopObserver{}
	}
	interval := config.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Handler{
		outbox:   outbox,
		broker:   broker,
		observer: observer,
		interval: interval,
		batch:    max(config.BatchSize, minBatch),
	}
}

// Start flushes once right away and then on every tick until ctx is done.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Flush(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Flush(ctx)
		}
	}
}

// Flush publishes pending entries batch by batch. It keeps going while full
// batches go through cleanly and returns how many entries were relayed.
func (h *Handler) Flush(ctx context.Context) int {
	relayed := 0
	for ctx.Err() == nil {
		entries, err := h.outbox.FetchPending(ctx, h.batch)
		if err != nil {
			logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
				"batch": h.batch,
			})
			return relayed
		}

		done, failed := h.relay(ctx, entries)
		relayed += done
		if failed > 0 || len(entries) < h.batch {
			return relayed
		}
	}
	return relayed
}

func (h *Handler) relay(ctx context.Context, entries []Entry) (done, failed int) {
	for _, entry := range entries {
		if ctx.Err() != nil {
			return done, failed + 1
		}

		attrs := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, attrs)
			h.observer.RelayFailed(entry.EntityName, "publish")
			failed++
			continue
		}

		var lag time.Duration
		if !entry.CreatedAt.IsZero() {
			lag = time.Since(entry.CreatedAt)
			attrs["lag_ms"] = lag.Milliseconds()
		}
		logger.Debug(ctx, "outbox: event published", attrs)

		// the event is out; a failed delete only means it will be sent again
		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, attrs)
			h.observer.RelayFailed(entry.EntityName, "delete")
			failed++
			continue
		}
		h.observer.EventRelayed(entry.EntityName, lag)
		done++
	}
	return done, failed
}
