package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestMessageRateLimiter(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewMessageRateLimiter(DefaultMessageLimit, DefaultMessageWindow)
	rl.now = clock.now

	for i := 0; i < DefaultMessageLimit; i++ {
		allowed, _ := rl.Allow("1.2.3.4")
		assert.True(t, allowed, "request %d", i+1)
	}

	clock.t = clock.t.Add(20 * time.Second)
	allowed, wait := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, wait)

	other, _ := rl.Allow("5.6.7.8")
	assert.True(t, other, "keys are limited independently")

	clock.t = clock.t.Add(41 * time.Second)
	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed, "window resets")
}

func TestMessageRateLimiterReset(t *testing.T) {
	rl := NewMessageRateLimiter(1, time.Minute)

	allowed, _ := rl.Allow("k")
	assert.True(t, allowed)
	allowed, wait := rl.Allow("k")
	assert.False(t, allowed)
	assert.LessOrEqual(t, wait, time.Minute)

	rl.Reset("k")
	allowed, _ = rl.Allow("k")
	assert.True(t, allowed)
}

func TestMessageRateLimiterStats(t *testing.T) {
	rl := NewMessageRateLimiter(0, 0)
	rl.Allow("a")
	rl.Allow("b")

	stats := rl.GetStats()
	assert.Equal(t, 2, stats["active_clients"])
	assert.Equal(t, DefaultMessageLimit, stats["limit"])
	assert.Equal(t, 60.0, stats["window_seconds"])
}
