package http

import (
	"sync"
	"time"
)

const cleanupInterval = 30 * time.Minute

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. A bucket refills completely once
// refill has elapsed since its last refill; idle buckets are dropped.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refill      time.Duration
	idleTTL     time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refill time.Duration) *RateLimiter {
	if capacity <= 0 {
		capacity = 1
	}
	if refill <= 0 {
		refill = time.Minute
	}
	rl := &RateLimiter{
		capacity:    capacity,
		refill:      refill,
		idleTTL:     max(time.Hour, 2*refill),
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > r.idleTTL {
			delete(r.clients, client)
			removed++
		}
	}
	return removed
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow spends one token for client and reports whether one was available.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{tokens: r.capacity - 1, lastRefill: now}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refill {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}
	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

// RetryAfter is how long client must wait for its bucket to refill.
func (r *RateLimiter) RetryAfter(client string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.clients[client]
	if !ok {
		return 0
	}
	wait := r.refill - r.now().Sub(bucket.lastRefill)
	if wait < 0 {
		return 0
	}
	return wait
}
