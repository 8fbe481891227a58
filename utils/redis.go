package utils

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(ctx context.Context, dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Cache stores rendered list responses per scope ("events", "tasks", ...).
// Every scope has a generation counter; bumping it orphans all entries of
// the previous generation, which then expire on their own.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func generationKey(scope string) string {
	return "cache:" + scope + ":gen"
}

func entryKey(scope, gen, key string) string {
	return "cache:" + scope + ":" + gen + ":" + key
}

func (c *Cache) generation(ctx context.Context, scope string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey(scope)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

// Get looks key up under the current generation of scope and returns that
// generation for the matching Set. It reports a miss on any redis error; an
// empty generation means the lookup itself failed.
func (c *Cache) Get(ctx context.Context, scope, key string) ([]byte, string, bool) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	gen, err := c.generation(ctx, scope)
	if err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("cache generation lookup failed")
		return nil, "", false
	}
	val, err := c.client.Get(ctx, entryKey(scope, gen, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("scope", scope).Msg("cache read failed")
		}
		return nil, gen, false
	}
	return val, gen, true
}

// Set stores val under the generation an earlier Get returned. A write that
// lands after an Invalidate goes to the orphaned generation and is never read.
func (c *Cache) Set(ctx context.Context, scope, gen, key string, val []byte) {
	if gen == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := c.client.Set(ctx, entryKey(scope, gen, key), val, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, scope string) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := c.client.Incr(ctx, generationKey(scope)).Err(); err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("cache invalidation failed")
	}
}

// Limiter is a fixed-window request counter.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	bucket := time.Now().UnixNano() / int64(l.window)
	k := "ratelimit:" + key + ":" + strconv.FormatInt(bucket, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return incr.Val() <= int64(l.limit), nil
}
