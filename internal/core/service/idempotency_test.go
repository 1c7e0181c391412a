package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/commerce/internal/core/port/mock"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
	"github.com/rafaelleal24/commerce/internal/core/utils"
	"go.uber.org/mock/gomock"
)

type receipt struct {
	OrderID string `json:"order_id"`
}

const (
	idemKey   = "user1:checkout-1"
	idemTTL   = 15 * time.Minute
	idemLease = time.Minute
)

func newIdempotency(t *testing.T, pollInterval, pollTimeout time.Duration) (*IdempotencyService[receipt], *mock.MockCachePort[IdempotencyEntry[receipt]]) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCachePort[IdempotencyEntry[receipt]](ctrl)
	svc := NewIdempotencyService[receipt](cache, IdempotencyOptions{
		TTL:          idemTTL,
		LeaseTTL:     idemLease,
		PollInterval: pollInterval,
		PollTimeout:  pollTimeout,
	})
	return svc, cache
}

func processing(hash string) *IdempotencyEntry[receipt] {
	return &IdempotencyEntry[receipt]{Status: IdempotencyProcessing, PayloadHash: hash}
}

func completed(hash, orderID string) *IdempotencyEntry[receipt] {
	return &IdempotencyEntry[receipt]{Status: IdempotencyCompleted, PayloadHash: hash, Result: &receipt{OrderID: orderID}}
}

func TestScopedKey(t *testing.T) {
	if got := ScopedKey("user1", "k"); got != "user1:k" {
		t.Fatalf("expected user1:k, got %s", got)
	}
	if ScopedKey("a", "k") == ScopedKey("b", "k") {
		t.Fatal("expected owners to get distinct keys")
	}
}

func TestNewIdempotencyService_LeaseDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCachePort[IdempotencyEntry[receipt]](ctrl)

	svc := NewIdempotencyService[receipt](cache, IdempotencyOptions{TTL: time.Minute})
	if svc.opts.LeaseTTL != time.Minute {
		t.Fatalf("expected lease to fall back to ttl, got %s", svc.opts.LeaseTTL)
	}

	svc = NewIdempotencyService[receipt](cache, IdempotencyOptions{TTL: time.Minute, LeaseTTL: time.Hour})
	if svc.opts.LeaseTTL != time.Minute {
		t.Fatalf("expected lease capped at ttl, got %s", svc.opts.LeaseTTL)
	}
}

func TestIdempotencyService_Do(t *testing.T) {
	payload := map[string]int{"qty": 2}
	hash, _ := utils.Fingerprint(payload)

	t.Run("first call runs fn and stores the result", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().
			SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).
			DoAndReturn(func(_ context.Context, _ string, entry *IdempotencyEntry[receipt], _ time.Duration) (bool, error) {
				if entry.Status != IdempotencyProcessing {
					t.Fatalf("expected processing claim, got %q", entry.Status)
				}
				if entry.PayloadHash != hash {
					t.Fatalf("expected hash %q, got %q", hash, entry.PayloadHash)
				}
				return true, nil
			})
		cache.EXPECT().
			Set(gomock.Any(), idemKey, gomock.Any(), idemTTL).
			DoAndReturn(func(_ context.Context, _ string, entry *IdempotencyEntry[receipt], _ time.Duration) error {
				if entry.Status != IdempotencyCompleted || entry.Result.OrderID != "o-1" {
					t.Fatalf("expected completed entry for o-1, got %+v", entry)
				}
				return nil
			})

		calls := 0
		got, err := svc.Do(context.Background(), idemKey, payload, func(context.Context) (*receipt, error) {
			calls++
			return &receipt{OrderID: "o-1"}, nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if calls != 1 || got.OrderID != "o-1" {
			t.Fatalf("expected one call returning o-1, got %d calls and %+v", calls, got)
		}
	})

	t.Run("duplicate replays without running fn", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		cache.EXPECT().Get(gomock.Any(), idemKey).Return(completed(hash, "o-1"), nil)

		got, err := svc.Do(context.Background(), idemKey, payload, func(context.Context) (*receipt, error) {
			t.Fatal("fn must not run for a duplicate")
			return nil, nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.OrderID != "o-1" {
			t.Fatalf("expected o-1, got %s", got.OrderID)
		}
	})

	t.Run("failure releases the key", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)
		boom := serviceerrors.NewInsufficientBalanceError("not enough points")

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(true, nil)
		cache.EXPECT().Del(gomock.Any(), idemKey).Return(nil)

		_, err := svc.Do(context.Background(), idemKey, payload, func(context.Context) (*receipt, error) {
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected fn error, got %v", err)
		}
	})

	t.Run("unreachable cache runs fn without deduplication", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, errors.New("redis down"))

		calls := 0
		got, err := svc.Do(context.Background(), idemKey, payload, func(context.Context) (*receipt, error) {
			calls++
			return &receipt{OrderID: "o-2"}, nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if calls != 1 || got.OrderID != "o-2" {
			t.Fatalf("expected one call returning o-2, got %d calls and %+v", calls, got)
		}
	})

	t.Run("release survives a cancelled request", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(true, nil)
		cache.EXPECT().
			Del(gomock.Any(), idemKey).
			DoAndReturn(func(ctx context.Context, _ string) error {
				if ctx.Err() != nil {
					t.Fatalf("expected a live context for release, got %v", ctx.Err())
				}
				return nil
			})

		_, err := svc.Do(ctx, idemKey, payload, func(context.Context) (*receipt, error) {
			cancel()
			return nil, context.Canceled
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	})

	t.Run("result is stored even if the caller hung up", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(true, nil)
		cache.EXPECT().
			Set(gomock.Any(), idemKey, gomock.Any(), idemTTL).
			DoAndReturn(func(ctx context.Context, _ string, _ *IdempotencyEntry[receipt], _ time.Duration) error {
				if ctx.Err() != nil {
					t.Fatalf("expected a live context for complete, got %v", ctx.Err())
				}
				return nil
			})

		if _, err := svc.Do(ctx, idemKey, payload, func(context.Context) (*receipt, error) {
			cancel()
			return &receipt{OrderID: "o-3"}, nil
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("unencodable payload is rejected before claiming", func(t *testing.T) {
		svc, _ := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		_, err := svc.Do(context.Background(), idemKey, make(chan int), func(context.Context) (*receipt, error) {
			t.Fatal("fn must not run")
			return nil, nil
		})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestIdempotencyService_Claim(t *testing.T) {
	const hash = "hash-1"

	t.Run("reused key with another payload", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		cache.EXPECT().Get(gomock.Any(), idemKey).Return(completed("other-hash", "o-1"), nil)

		_, err := svc.Claim(context.Background(), idemKey, hash)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
	})

	t.Run("entry vanished after a failed first attempt", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		cache.EXPECT().Get(gomock.Any(), idemKey).Return(nil, nil)

		_, err := svc.Claim(context.Background(), idemKey, hash)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})

	t.Run("cache unavailable", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, errors.New("redis down"))

		_, err := svc.Claim(context.Background(), idemKey, hash)
		if !errors.Is(err, errClaimUnavailable) {
			t.Fatalf("expected errClaimUnavailable, got %v", err)
		}
	})

	t.Run("waits for an in-flight request", func(t *testing.T) {
		svc, cache := newIdempotency(t, 10*time.Millisecond, time.Second)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), idemKey).Return(processing(hash), nil),
			cache.EXPECT().Get(gomock.Any(), idemKey).Return(processing(hash), nil),
			cache.EXPECT().Get(gomock.Any(), idemKey).Return(completed(hash, "o-9"), nil),
		)

		got, err := svc.Claim(context.Background(), idemKey, hash)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got == nil || got.OrderID != "o-9" {
			t.Fatalf("expected o-9, got %+v", got)
		}
	})

	t.Run("gives up after the poll timeout", func(t *testing.T) {
		svc, cache := newIdempotency(t, 20*time.Millisecond, 80*time.Millisecond)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		cache.EXPECT().Get(gomock.Any(), idemKey).Return(processing(hash), nil).AnyTimes()

		_, err := svc.Claim(context.Background(), idemKey, hash)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})

	t.Run("stops when the caller goes away", func(t *testing.T) {
		svc, cache := newIdempotency(t, 20*time.Millisecond, 5*time.Second)

		cache.EXPECT().SetNX(gomock.Any(), idemKey, gomock.Any(), idemLease).Return(false, nil)
		cache.EXPECT().Get(gomock.Any(), idemKey).Return(processing(hash), nil).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := svc.Claim(ctx, idemKey, hash)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})
}

func TestIdempotencyService_CacheErrorsAreSwallowed(t *testing.T) {
	svc, cache := newIdempotency(t, 10*time.Millisecond, 100*time.Millisecond)

	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis error"))
	cache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(errors.New("redis error"))

	svc.Complete(context.Background(), idemKey, "hash", &receipt{})
	svc.Release(context.Background(), idemKey)
}
