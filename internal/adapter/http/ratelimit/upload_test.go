package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, d time.Duration, clock *time.Time) *UploadLimiter {
	l := NewUploadLimiter(limit, d)
	l.now = func() time.Time { return *clock }
	return l
}

func TestUploadLimiter_AllowsUpToLimit(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(3, time.Hour, &clock)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("owner")
		assert.True(t, allowed, "upload %d should be allowed", i+1)
	}

	clock = clock.Add(20 * time.Minute)
	allowed, retryAfter := l.Allow("owner")
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Minute, retryAfter)
}

func TestUploadLimiter_WindowResets(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(1, time.Hour, &clock)
	defer l.Stop()

	allowed, _ := l.Allow("owner")
	assert.True(t, allowed)
	allowed, _ = l.Allow("owner")
	assert.False(t, allowed)

	clock = clock.Add(time.Hour)
	allowed, _ = l.Allow("owner")
	assert.True(t, allowed)
}

func TestUploadLimiter_OwnersAreIndependent(t *testing.T) {
	clock := time.Now()
	l := newTestLimiter(1, time.Hour, &clock)
	defer l.Stop()

	allowed, _ := l.Allow("alice")
	assert.True(t, allowed)
	allowed, _ = l.Allow("bob")
	assert.True(t, allowed)
	allowed, _ = l.Allow("alice")
	assert.False(t, allowed)
}

func TestUploadLimiter_Disabled(t *testing.T) {
	l := NewUploadLimiter(0, time.Hour)
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("owner")
		assert.True(t, allowed)
	}
}

func TestUploadLimiter_EvictExpired(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(5, time.Hour, &clock)
	defer l.Stop()

	l.Allow("old")
	clock = clock.Add(30 * time.Minute)
	l.Allow("recent")
	clock = clock.Add(45 * time.Minute)

	l.evictExpired()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.windows, "old")
	assert.Contains(t, l.windows, "recent")
}

func TestUploadLimiter_Concurrent(t *testing.T) {
	l := NewUploadLimiter(50, time.Hour)
	defer l.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("owner"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
