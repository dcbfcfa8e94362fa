package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func loginFailKey(email string) string { return loginFailKeyPrefix + strings.ToLower(email) }

// recordFailure increments the counter and (re)starts its window on the
// first failure and again once the limit is reached, so a lock always lasts
// the full window.
var recordFailure = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or n >= tonumber(ARGV[2]) then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`) //nolint: gochecknoglobals

// RecordLoginFailure counts a failed login for email. The counter window
// starts at the first failure. Reaching maxFailures locks email for a full
// window from that failure.
func (s *Store) RecordLoginFailure(ctx context.Context,
	email string,
	maxFailures int,
	window time.Duration) (int64, error) {
	n, err := recordFailure.Run(ctx, s.client, []string{loginFailKey(email)},
		window.Milliseconds(), maxFailures).Int64()
	if err != nil {
		return 0, fmt.Errorf("could not count login failure: %w", err)
	}

	return n, nil
}

// LockedOut reports whether email reached maxFailures and for how long the
// lock still holds.
func (s *Store) LockedOut(ctx context.Context, email string, maxFailures int) (bool, time.Duration, error) {
	key := loginFailKey(email)
	n, err := s.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("could not read login failures: %w", err)
	}
	if n < int64(maxFailures) {
		return false, 0, nil
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return true, 0, fmt.Errorf("could not read lockout ttl: %w", err)
	}

	return true, ttl, nil
}

// ResetLoginFailures clears the failure counter after a successful login.
func (s *Store) ResetLoginFailures(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, loginFailKey(email)).Err(); err != nil {
		return fmt.Errorf("could not reset login failures: %w", err)
	}

	return nil
}
