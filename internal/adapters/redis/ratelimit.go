package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/commerce/internal/adapters/http/middleware"
)

// fixed window counter; returns the hit count and the window's remaining ms
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (middleware.RateDecision, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	res, err := r.client.Run(ctx, rateLimitScript, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return middleware.RateDecision{}, err
	}

	count, ttl := res[0], res[1]
	if ttl < 0 {
		ttl = window.Milliseconds()
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return middleware.RateDecision{
		Allowed:    count <= int64(limit),
		Remaining:  remaining,
		ResetAfter: time.Duration(ttl) * time.Millisecond,
	}, nil
}
