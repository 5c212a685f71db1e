package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	// Other clients are counted separately.
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	l := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	time.Sleep(15 * time.Millisecond)
	assert.True(t, l.Allow("10.0.0.1"))
}
