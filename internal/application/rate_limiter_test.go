package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(1*time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many requests")
}

func TestRateLimiter_TracksIdentifiersSeparately(t *testing.T) {
	rl := NewRateLimiter(1*time.Minute, 1)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)
}

func TestRateLimiter_EmptyIdentifierIsAnonymous(t *testing.T) {
	rl := NewRateLimiter(1*time.Minute, 1)

	ok, _ := rl.Allow("")
	assert.True(t, ok)
	ok, _ = rl.Allow("anonymous")
	assert.False(t, ok)
}

func TestRateLimiter_WindowExpiryResetsCount(t *testing.T) {
	rl := NewRateLimiter(20*time.Millisecond, 1)

	ok, _ := rl.Allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	require.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_Reset(t *testing.T) {
	rl := NewRateLimiter(1*time.Minute, 1)

	ok, _ := rl.Allow("10.0.0.1")
	require.True(t, ok)
	rl.Reset("10.0.0.1")
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}
