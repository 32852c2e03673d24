// Package ratelimit limits how often a caller may build mazes, using a redis sorted set
// per key as a sliding window log.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "maze:ratelimit"
	windowKeyFmt  = "%s:%s"
)

var (
	ErrInvalidLimit = errors.New("rate limit must allow at least one request per positive window")
)

var _ i.RateLimiter = &RedisLimiter{}

// RedisLimiter allows at most limit requests per key in any window-long interval.
type RedisLimiter struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter initializes a RedisLimiter with the provided Redis client.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) (*RedisLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, ErrInvalidLimit
	}
	limiter := &RedisLimiter{
		client: client,
		prefix: defaultPrefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
	pool := goredis.NewPool(client)
	limiter.locker = redsync.New(pool)
	return limiter, nil
}

// Allow records a request for key when the window has room for it.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key)
	mutex := l.locker.NewMutex(windowKey + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return false, fmt.Errorf("obtaining rate limit lock: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	now := l.now()
	oldest := strconv.FormatInt(now.Add(-l.window).UnixNano(), 10)
	if err := l.client.ZRemRangeByScore(ctx, windowKey, "-inf", "("+oldest).Err(); err != nil {
		return false, err
	}

	count, err := l.client.ZCard(ctx, windowKey).Result()
	if err != nil {
		return false, err
	}
	if count >= l.limit {
		return false, nil
	}

	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, windowKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
		pipe.Expire(ctx, windowKey, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *RedisLimiter) windowKey(key string) string {
	return fmt.Sprintf(windowKeyFmt, l.prefix, key)
}
