package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(capacity int, window time.Duration, clock *time.Time) *RateLimiter {
	rl := NewRateLimiter(capacity, window)
	rl.now = func() time.Time { return *clock }
	return rl
}

func TestRateLimiter_Allow(t *testing.T) {
	clock := time.Date(2024, 11, 16, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(2, time.Minute, &clock)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, rl.Allow("10.0.0.2"))

	clock = clock.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := time.Date(2024, 11, 16, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, time.Minute, &clock)
	defer rl.Stop()

	rl.Allow("old")
	clock = clock.Add(clientIdleThreshold + time.Second)
	rl.Allow("fresh")

	rl.cleanup()
	assert.Equal(t, 1, rl.clientCount())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
