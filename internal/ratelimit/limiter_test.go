package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketLimiter_Burst(t *testing.T) {
	l := NewTokenBucketLimiter(0.001, 2)

	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow(), "burst exhausted")
}

func TestTokenBucketLimiter_WaitWithoutMaxWait(t *testing.T) {
	l := NewTokenBucketLimiter(0.001, 1)

	require.NoError(t, l.Wait(context.Background()))
	assert.ErrorIs(t, l.Wait(context.Background()), ErrLimitExceeded)
}

func TestTokenBucketLimiter_WaitRefills(t *testing.T) {
	l := NewTokenBucketLimiter(100, 1, WithMaxWaitTime(time.Second))

	require.NoError(t, l.Wait(context.Background()))
	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestTokenBucketLimiter_WaitTooLong(t *testing.T) {
	l := NewTokenBucketLimiter(0.001, 1, WithMaxWaitTime(10*time.Millisecond))

	require.NoError(t, l.Wait(context.Background()))
	err := l.Wait(context.Background())
	assert.Error(t, err)
	assert.True(t, err == ErrLimitExceeded || err == ErrWaitTimeout, "unexpected error %v", err)
}

func TestKeyedLimiter_IndependentKeys(t *testing.T) {
	k := NewKeyedLimiter(0.001, 1)

	assert.True(t, k.Allow("10.0.0.1"))
	assert.False(t, k.Allow("10.0.0.1"))
	assert.True(t, k.Allow("10.0.0.2"), "other clients keep their own budget")
	assert.Equal(t, 2, k.Len())
}

func TestKeyedLimiter_Sweep(t *testing.T) {
	k := NewKeyedLimiter(1, 1)
	k.Allow("a")
	k.Allow("b")

	assert.Equal(t, 0, k.Sweep(time.Hour))
	assert.Equal(t, 2, k.Sweep(-time.Second))
	assert.Equal(t, 0, k.Len())
}
