package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
	"github.com/rafaelleal24/commerce/internal/core/utils"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyEntry is what the cache holds under a scoped key. Result is only
// set once Status is completed.
type IdempotencyEntry[T any] struct {
	Status      IdempotencyStatus `json:"status"`
	PayloadHash string            `json:"payload_hash"`
	ClaimedAt   time.Time         `json:"claimed_at"`
	Result      *T                `json:"result,omitempty"`
}

type IdempotencyOptions struct {
	// TTL is how long a completed result is replayed.
	TTL time.Duration
	// LeaseTTL bounds a processing claim so a crashed holder frees the key.
	LeaseTTL     time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// errClaimUnavailable marks a claim that could not reach the cache at all.
var errClaimUnavailable = errors.New("idempotency claim failed")

type IdempotencyService[T any] struct {
	cache port.CachePort[IdempotencyEntry[T]]
	opts  IdempotencyOptions
}

func NewIdempotencyService[T any](cache port.CachePort[IdempotencyEntry[T]], opts IdempotencyOptions) *IdempotencyService[T] {
	if opts.LeaseTTL <= 0 || opts.LeaseTTL > opts.TTL {
		opts.LeaseTTL = opts.TTL
	}
	return &IdempotencyService[T]{cache: cache, opts: opts}
}

// ScopedKey namespaces a client key by owner so two owners never share an entry.
func ScopedKey(owner, key string) string {
	return fmt.Sprintf("%s:%s", owner, key)
}

// Do runs fn at most once per scoped key and payload. A duplicate waits for the
// first call and gets its result; a reused key with another payload is rejected.
func (s *IdempotencyService[T]) Do(ctx context.Context, key string, payload any, fn func(context.Context) (*T, error)) (*T, error) {
	payloadHash, err := utils.Fingerprint(payload)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError("request payload cannot be fingerprinted")
	}

	existing, err := s.Claim(ctx, key, payloadHash)
	if errors.Is(err, errClaimUnavailable) {
		logger.Warn(ctx, "idempotency: cache unavailable, running without deduplication", map[string]any{
			"idempotency_key": key,
			"error":           err.Error(),
		})
		return fn(ctx)
	}
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Debug(ctx, "idempotency: replaying stored result", map[string]any{
			"idempotency_key": key,
		})
		return existing, nil
	}

	result, err := fn(ctx)
	if err != nil {
		s.Release(ctx, key)
		return nil, err
	}

	s.Complete(ctx, key, payloadHash, result)
	return result, nil
}

// Claim returns (nil, nil) when the caller now owns key and must do the work.
func (s *IdempotencyService[T]) Claim(ctx context.Context, key, payloadHash string) (*T, error) {
	claimed, err := s.cache.SetNX(ctx, key, &IdempotencyEntry[T]{
		Status:      IdempotencyProcessing,
		PayloadHash: payloadHash,
		ClaimedAt:   time.Now().UTC(),
	}, s.opts.LeaseTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errClaimUnavailable, err)
	}
	if claimed {
		return nil, nil
	}

	return s.awaitResult(ctx, key, payloadHash)
}

// Complete and Release outlive the request so a client hang-up does not leave
// the key locked until the lease expires.
func (s *IdempotencyService[T]) Complete(ctx context.Context, key, payloadHash string, result *T) {
	err := s.cache.Set(context.WithoutCancel(ctx), key, &IdempotencyEntry[T]{
		Status:      IdempotencyCompleted,
		PayloadHash: payloadHash,
		ClaimedAt:   time.Now().UTC(),
		Result:      result,
	}, s.opts.TTL)
	if err != nil {
		logger.Error(ctx, "idempotency: store result failed", err, map[string]any{
			"idempotency_key": key,
		})
	}
}

func (s *IdempotencyService[T]) Release(ctx context.Context, key string) {
	if err := s.cache.Del(context.WithoutCancel(ctx), key); err != nil {
		logger.Error(ctx, "idempotency: release failed", err, map[string]any{
			"idempotency_key": key,
		})
	}
}

// inspect reports done=true once the entry settles into a result or an error.
func (s *IdempotencyService[T]) inspect(ctx context.Context, key, payloadHash string) (result *T, done bool, err error) {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, true, fmt.Errorf("idempotency lookup failed: %w", err)
	}
	switch {
	case entry == nil:
		return nil, true, serviceerrors.NewConflictError("previous request failed, retry with the same key")
	case entry.PayloadHash != payloadHash:
		return nil, true, serviceerrors.NewUnprocessableEntityError("idempotency key already used with a different payload")
	case entry.Status == IdempotencyCompleted:
		return entry.Result, true, nil
	}
	return nil, false, nil
}

func (s *IdempotencyService[T]) awaitResult(ctx context.Context, key, payloadHash string) (*T, error) {
	if result, done, err := s.inspect(ctx, key, payloadHash); done {
		return result, err
	}

	deadline := time.NewTimer(s.opts.PollTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, serviceerrors.NewConflictError("request with this idempotency key is still in progress")
		case <-ticker.C:
			if result, done, err := s.inspect(ctx, key, payloadHash); done {
				return result, err
			}
		}
	}
}
