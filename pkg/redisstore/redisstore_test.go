package redisstore_test

import (
	"context"
	"fmt"
	"landregistry/pkg/redisstore"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T) (*redisstore.Store, *redis.Client) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := redisstore.Connect(ctx, redisstore.Options{
		URL:      fmt.Sprintf("redis://%s:%d/0", host, port.Int()),
		PoolSize: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.New(client), client
}

func TestConnect_BadURL(t *testing.T) {
	_, err := redisstore.Connect(context.Background(), redisstore.Options{URL: "::not a url"})
	require.Error(t, err)
}

func TestStore_OTP(t *testing.T) {
	t.Parallel()

	store, _ := setupTestRedis(t)
	ctx := context.Background()

	t.Run("valid code is consumed", func(t *testing.T) {
		require.NoError(t, store.SaveOTP(ctx, "John@Example.com", "123456", time.Minute))

		res, err := store.CheckOTP(ctx, "john@example.com", "123456", 5)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPValid, res)

		res, err = store.CheckOTP(ctx, "john@example.com", "123456", 5)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPExpired, res)
	})

	t.Run("attempts are limited", func(t *testing.T) {
		require.NoError(t, store.SaveOTP(ctx, "alice@example.com", "654321", time.Minute))

		for range 2 {
			res, err := store.CheckOTP(ctx, "alice@example.com", "000000", 3)
			require.NoError(t, err)
			require.Equal(t, redisstore.OTPInvalid, res)
		}

		res, err := store.CheckOTP(ctx, "alice@example.com", "000000", 3)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPExhausted, res)

		res, err = store.CheckOTP(ctx, "alice@example.com", "654321", 3)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPExpired, res)
	})

	t.Run("resend resets attempts", func(t *testing.T) {
		require.NoError(t, store.SaveOTP(ctx, "bob@example.com", "111111", time.Minute))
		res, err := store.CheckOTP(ctx, "bob@example.com", "999999", 2)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPInvalid, res)

		require.NoError(t, store.SaveOTP(ctx, "bob@example.com", "222222", time.Minute))
		res, err = store.CheckOTP(ctx, "bob@example.com", "999999", 2)
		require.NoError(t, err)
		require.Equal(t, redisstore.OTPInvalid, res)
	})
}

func TestStore_Revocation(t *testing.T) {
	t.Parallel()

	store, client := setupTestRedis(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	ttl, err := client.TTL(ctx, "lr:revoked:jti-1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	// expired tokens need no entry
	require.NoError(t, store.Revoke(ctx, "jti-2", 0))
	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestStore_Lockout(t *testing.T) {
	t.Parallel()

	store, client := setupTestRedis(t)
	ctx := context.Background()
	email := "locked@example.com"
	window := 15 * time.Minute

	for i := 1; i <= 4; i++ {
		n, err := store.RecordLoginFailure(ctx, email, 5, window)
		require.NoError(t, err)
		require.EqualValues(t, i, n)
	}

	locked, _, err := store.LockedOut(ctx, email, 5)
	require.NoError(t, err)
	require.False(t, locked)

	// most of the window has already passed when the last failure arrives
	require.NoError(t, client.Expire(ctx, "lr:login-fail:"+email, time.Minute).Err())

	_, err = store.RecordLoginFailure(ctx, email, 5, window)
	require.NoError(t, err)

	locked, ttl, err := store.LockedOut(ctx, email, 5)
	require.NoError(t, err)
	require.True(t, locked)
	require.Greater(t, ttl, 14*time.Minute)

	require.NoError(t, store.ResetLoginFailures(ctx, email))
	locked, _, err = store.LockedOut(ctx, email, 5)
	require.NoError(t, err)
	require.False(t, locked)
}

func TestStore_LockoutCounterAlwaysExpires(t *testing.T) {
	t.Parallel()

	store, client := setupTestRedis(t)
	ctx := context.Background()
	email := "Mixed.Case@Example.com"

	_, err := store.RecordLoginFailure(ctx, email, 5, time.Minute)
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, "lr:login-fail:mixed.case@example.com").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)
}
