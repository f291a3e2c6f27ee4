package token_bucket

import (
	"sync"
	"time"
)

/*
Allow либо пропускает вызов (забирая токен), либо отклоняет его.
Токены копятся дробно, поэтому медленная скорость пополнения (например,
один publish раз в 3 секунды) не теряет накопленное время между вызовами.
*/

type Limiter interface {
	Allow() bool
}

type Clock func() time.Time

type Option func(*TokenBucket)

// WithClock подменяет источник времени, используется в тестах.
func WithClock(clock Clock) Option {
	return func(t *TokenBucket) {
		t.now = clock
	}
}

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

// NewTokenBucket создает полное ведро: capacity - размер burst, refillRate - токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastRefill = t.now()
	return t
}

// NewPerInterval - ведро, пропускающее burst вызовов и затем один вызов на interval.
func NewPerInterval(burst int, interval time.Duration, opts ...Option) *TokenBucket {
	rate := 0.0
	if interval > 0 {
		rate = float64(time.Second) / float64(interval)
	}
	return NewTokenBucket(burst, rate, opts...)
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
