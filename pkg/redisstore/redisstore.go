// Package redisstore keeps the short-lived authentication state of the
// registry in Redis: email verification codes, revoked token ids and failed
// login counters. Every key carries a TTL so nothing has to be cleaned up.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	// URL is a redis:// connection string.
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Connect parses opts, opens a client and pings the server.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		redisOpts.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		redisOpts.WriteTimeout = opts.WriteTimeout
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

const (
	otpKeyPrefix         = "lr:otp:"
	otpAttemptsKeyPrefix = "lr:otp-attempts:"
	revokedKeyPrefix     = "lr:revoked:"
	loginFailKeyPrefix   = "lr:login-fail:"
)

// Store implements the authentication state stores on top of a Redis client.
type Store struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}
