package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrLimitExceeded 当请求超过限流限制时返回
	ErrLimitExceeded = errors.New("request rate limit exceeded")

	// ErrWaitTimeout 当等待令牌超过最大等待时间时返回
	ErrWaitTimeout = errors.New("wait for rate limit timed out")
)

// Limiter 提供请求限流功能
type Limiter interface {
	// Allow 检查是否允许新的请求，不等待
	Allow() bool

	// Wait 等待直到允许新的请求或上下文取消
	Wait(ctx context.Context) error
}

var _ Limiter = (*TokenBucketLimiter)(nil)

// TokenBucketLimiter 使用令牌桶算法实现限流
type TokenBucketLimiter struct {
	limiter     *rate.Limiter
	maxWaitTime time.Duration
}

// TokenBucketOption 是令牌桶限流器的配置选项
type TokenBucketOption func(*TokenBucketLimiter)

// WithMaxWaitTime 设置最大等待时间，0表示只尝试一次不等待
func WithMaxWaitTime(d time.Duration) TokenBucketOption {
	return func(l *TokenBucketLimiter) {
		l.maxWaitTime = d
	}
}

// NewTokenBucketLimiter 创建一个新的令牌桶限流器
// 参数:
// - r: 每秒允许的请求数
// - burst: 允许的最大突发请求数
func NewTokenBucketLimiter(r float64, burst int, opts ...TokenBucketOption) *TokenBucketLimiter {
	l := &TokenBucketLimiter{
		limiter: rate.NewLimiter(rate.Limit(r), burst),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow 立即检查是否允许新的请求
func (l *TokenBucketLimiter) Allow() bool {
	return l.limiter.Allow()
}

// Wait 等待直到允许新的请求或上下文取消
func (l *TokenBucketLimiter) Wait(ctx context.Context) error {
	if l.maxWaitTime <= 0 {
		if l.limiter.Allow() {
			return nil
		}
		return ErrLimitExceeded
	}

	ctx, cancel := context.WithTimeout(ctx, l.maxWaitTime)
	defer cancel()

	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return ErrWaitTimeout
		}
		// 需要等待的时间超过了上下文期限
		return ErrLimitExceeded
	}
	return nil
}

// KeyedLimiter 为每个键（例如客户端IP）维护独立的令牌桶
type KeyedLimiter struct {
	mu       sync.Mutex
	rate     float64
	burst    int
	opts     []TokenBucketOption
	limiters map[string]*keyedEntry
}

type keyedEntry struct {
	limiter  *TokenBucketLimiter
	lastSeen time.Time
}

// NewKeyedLimiter 创建一个按键限流的限流器，每个键的参数相同
func NewKeyedLimiter(r float64, burst int, opts ...TokenBucketOption) *KeyedLimiter {
	return &KeyedLimiter{
		rate:     r,
		burst:    burst,
		opts:     opts,
		limiters: make(map[string]*keyedEntry),
	}
}

// get 返回键对应的限流器，不存在时创建
func (k *KeyedLimiter) get(key string) *TokenBucketLimiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, exists := k.limiters[key]
	if !exists {
		entry = &keyedEntry{
			limiter: NewTokenBucketLimiter(k.rate, k.burst, k.opts...),
		}
		k.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// Allow 检查指定键是否允许新的请求
func (k *KeyedLimiter) Allow(key string) bool {
	return k.get(key).Allow()
}

// Wait 等待直到指定键允许新的请求
func (k *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return k.get(key).Wait(ctx)
}

// Sweep 删除空闲超过idle的键，返回删除的数量
func (k *KeyedLimiter) Sweep(idle time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := time.Now().Add(-idle)
	removed := 0
	for key, entry := range k.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

// Len 返回当前跟踪的键数量
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}
