package token_bucket

import (
	"context"
	"sync"
	"time"
)

/*
токены копятся со скоростью refillRate в секунду, но не больше capacity.
Allow - неблокирующая попытка взять токен (входящий rate limit),
Wait - ждет токен или отмену контекста (исходящий троттлинг к бэкенду).
*/

type Limiter interface {
	Allow() bool
	Wait(ctx context.Context) error
}

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

// NewTokenBucketWithClock нужен тестам, чтобы не спать.
func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return newTokenBucket(capacity, refillRate, now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) Wait(ctx context.Context) error {
	for {
		delay, ok := t.reserve()
		if ok {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve берет токен, либо возвращает сколько ждать до следующего.
func (t *TokenBucket) reserve() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return 0, true
	}
	if t.refillRate <= 0 {
		// пополнения не будет, ждем хотя бы секунду между проверками
		return time.Second, false
	}

	missing := 1 - t.tokens
	return time.Duration(missing / t.refillRate * float64(time.Second)), false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
