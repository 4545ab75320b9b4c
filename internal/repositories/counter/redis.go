// Package counter implements the keyed atomic counter service backing the
// rate-limit admission layer. Each key holds a Redis sorted set of request
// timestamps; a Lua script prunes, counts and records in a single atomic
// round trip so concurrent checks cannot overshoot the limit.
package counter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Usage is the state of one identifier's sliding window after a check.
type Usage struct {
	// Admitted reports whether the current request was recorded, i.e. the
	// window still had capacity.
	Admitted bool
	// Count includes the current request when it was recorded.
	Count int64
	// OldestAt is the timestamp of the oldest request still inside the
	// window, zero when the window is empty.
	OldestAt time.Time
}

// Store is the narrow interface the admission controller depends on.
type Store interface {
	// IncrementAndGet records the current request against key if the window
	// still has capacity, and returns the resulting usage. Requests beyond
	// the limit are counted as observed but not recorded, so a rejected
	// burst does not push the window's reset time forward.
	IncrementAndGet(ctx context.Context, key string, window time.Duration, limit int64) (Usage, error)
}

// KEYS[1] = window key, ARGV[1] = now (ms), ARGV[2] = window (ms),
// ARGV[3] = limit, ARGV[4] = member. Returns {admitted, count, oldest score}.
var slidingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1] - ARGV[2])
local count = redis.call('ZCARD', KEYS[1])
local admitted = 0
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], ARGV[1], ARGV[4])
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
	count = count + 1
	admitted = 1
end
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
if #oldest == 0 then
	return {admitted, count, 0}
end
return {admitted, count, tonumber(oldest[2])}
`)

type redisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a sliding-window counter store on the given client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

func (s *redisStore) IncrementAndGet(ctx context.Context, key string, window time.Duration, limit int64) (Usage, error) {
	now := s.now()
	res, err := slidingWindowScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		now.UnixMilli(),
		window.Milliseconds(),
		limit,
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return Usage{}, fmt.Errorf("rate counter unavailable: %w", err)
	}
	if len(res) != 3 {
		return Usage{}, fmt.Errorf("rate counter returned malformed reply: %v", res)
	}

	usage := Usage{Admitted: res[0] == 1, Count: res[1]}
	if res[2] > 0 {
		usage.OldestAt = time.UnixMilli(res[2])
	}
	return usage, nil
}
