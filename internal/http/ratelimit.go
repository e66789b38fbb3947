package http

import (
	"sync"
	"sync/atomic"
	"time"
)

// visitorIdleEviction is how long a client IP may sit idle before its
// window state is dropped by the background sweep.
const visitorIdleEviction = 10 * time.Minute

// rateLimiter caps requests per client IP over a fixed window. State
// is in-memory only; restarting the server resets every window.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration

	rejected atomic.Int64

	done      chan struct{}
	closeOnce sync.Once
}

type visitor struct {
	windowStart time.Time
	seen        int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		done:     make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// allow records a request from ip and reports whether it fits the
// current window. A fresh or expired window starts counting anew.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[ip]
	if !ok || now.Sub(v.windowStart) > rl.window {
		rl.visitors[ip] = &visitor{windowStart: now, seen: 1}
		return true
	}

	v.seen++
	if v.seen > rl.limit {
		rl.rejected.Add(1)
		return false
	}
	return true
}

// Rejected returns how many requests have been turned away so far.
func (rl *rateLimiter) Rejected() int64 {
	return rl.rejected.Load()
}

func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(visitorIdleEviction / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.done:
			return
		}
	}
}

func (rl *rateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-visitorIdleEviction)
	for ip, v := range rl.visitors {
		if v.windowStart.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// stop ends the sweep goroutine. Safe to call more than once.
func (rl *rateLimiter) stop() {
	rl.closeOnce.Do(func() { close(rl.done) })
}
