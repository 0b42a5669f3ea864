package guard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionGuard(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	g := NewSubmissionGuard(client, 30*time.Second)
	ctx := context.Background()
	start := time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)

	t.Run("SecondSubmissionRejected", func(t *testing.T) {
		ok, err := g.Acquire(ctx, "7156991258", start)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = g.Acquire(ctx, "7156991258", start)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = g.Acquire(ctx, "7156991258", start.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		other := start.Add(24 * time.Hour)
		ok, _ := g.Acquire(ctx, "5550001111", other)
		require.True(t, ok)

		s.FastForward(31 * time.Second)

		ok, err := g.Acquire(ctx, "5550001111", other)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Release", func(t *testing.T) {
		other := start.Add(48 * time.Hour)
		ok, _ := g.Acquire(ctx, "5550002222", other)
		require.True(t, ok)

		require.NoError(t, g.Release(ctx, "5550002222", other))

		ok, err := g.Acquire(ctx, "5550002222", other)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("RedisDown", func(t *testing.T) {
		broken := NewSubmissionGuard(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Second)
		_, err := broken.Acquire(ctx, "5550003333", start)
		assert.Error(t, err)
	})
}

func TestDisabledGuard(t *testing.T) {
	var nilGuard *SubmissionGuard
	for _, g := range []*SubmissionGuard{nilGuard, NewSubmissionGuard(nil, 0)} {
		ok, err := g.Acquire(context.Background(), "7156991258", time.Now())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, g.Release(context.Background(), "7156991258", time.Now()))
	}
}

func TestNewRedisClient(t *testing.T) {
	c, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Options().DB)
	_ = c.Close()

	_, err = NewRedisClient("http://nope")
	assert.Error(t, err)
}
