package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// UploadLimiter allows each owner a fixed number of uploads per window.
type UploadLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewUploadLimiter returns a limiter; limit <= 0 disables limiting.
func NewUploadLimiter(limit int, duration time.Duration) *UploadLimiter {
	l := &UploadLimiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	if limit > 0 {
		go l.cleanup()
	}

	return l
}

// Allow counts one upload for ownerID. When refused, it returns how long
// until the owner's window resets.
func (l *UploadLimiter) Allow(ownerID string) (bool, time.Duration) {
	if l.limit <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.windows[ownerID]
	if !exists || now.Sub(w.start) >= l.duration {
		w = &window{start: now}
		l.windows[ownerID] = w
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.duration).Sub(now)
	}

	w.count++
	return true, 0
}

func (l *UploadLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *UploadLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictExpired()
		}
	}
}

func (l *UploadLimiter) evictExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for ownerID, w := range l.windows {
		if now.Sub(w.start) >= l.duration {
			delete(l.windows, ownerID)
		}
	}
}
