package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/redisclient"
	"go.uber.org/zap"
)

// RateLimiter implements a token bucket rate limiter
type RateLimiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
	logger     *logging.SafeLogger
	now        func() time.Time
}

// NewRateLimiter creates a new token bucket rate limiter
func NewRateLimiter(maxTokens int, refillRate time.Duration, logger *logging.SafeLogger) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
		logger:     logger,
		now:        time.Now,
	}
}

// Allow checks if a request should be allowed based on rate limiting
func (rl *RateLimiter) Allow(ctx context.Context, operation string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	rl.refill(operation)

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	rl.logger.Warn("rate limiter rejected request",
		zap.String("operation", operation),
		zap.Int("max_tokens", rl.maxTokens))
	return false
}

func (rl *RateLimiter) refill(operation string) {
	now := rl.now()
	tokensToAdd := int(now.Sub(rl.lastRefill) / rl.refillRate)
	if tokensToAdd <= 0 {
		return
	}
	rl.tokens += tokensToAdd
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	rl.logger.Debug("rate limiter tokens refilled",
		zap.String("operation", operation),
		zap.Int("tokens_added", tokensToAdd),
		zap.Int("current_tokens", rl.tokens))
}

// Full reports whether the bucket is back to its maximum
func (rl *RateLimiter) Full() bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	rl.refill("status")
	return rl.tokens >= rl.maxTokens
}

// GetStatus returns the current status of the rate limiter
func (rl *RateLimiter) GetStatus() (int, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return rl.tokens, rl.maxTokens
}

// LoginThrottle limits login attempts per e-mail. Attempts are counted in
// Redis so every API replica sees them; when Redis fails the per-process
// token buckets are used instead.
type LoginThrottle struct {
	redis      *redisclient.Client
	maxTokens  int
	refillRate time.Duration
	buckets    sync.Map // map[string]*RateLimiter
	logger     *logging.SafeLogger
}

// NewLoginThrottle allows maxAttempts per e-mail, recovering one attempt
// every refillRate
func NewLoginThrottle(redis *redisclient.Client, maxAttempts int, refillRate time.Duration, logger *logging.SafeLogger) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if refillRate <= 0 {
		refillRate = time.Minute
	}
	return &LoginThrottle{
		redis:      redis,
		maxTokens:  maxAttempts,
		refillRate: refillRate,
		logger:     logger,
	}
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

// Allow records one attempt for email and reports whether it may proceed
func (t *LoginThrottle) Allow(ctx context.Context, email string) bool {
	if t.redis != nil {
		allowed, err := t.allowRedis(ctx, email)
		if err == nil {
			return allowed
		}
		t.logger.Warn("login throttle falling back to in-process buckets", zap.Error(err))
	}
	return t.bucket(email).Allow(ctx, "login")
}

// allowRedis counts attempts in a fixed window that holds maxTokens
// attempts and lasts long enough to refill all of them
func (t *LoginThrottle) allowRedis(ctx context.Context, email string) (bool, error) {
	key := loginAttemptsKey(email)
	count, err := t.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	window := t.refillRate * time.Duration(t.maxTokens)
	if count == 1 {
		err = t.redis.Expire(ctx, key, window).Err()
	} else if ttl, ttlErr := t.redis.TTL(ctx, key).Result(); ttlErr == nil && ttl < 0 {
		// An earlier EXPIRE was lost; the window must still close
		err = t.redis.Expire(ctx, key, window).Err()
	}
	if err != nil {
		return false, err
	}
	return count <= int64(t.maxTokens), nil
}

// Reset clears the attempts of email after a successful login
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t.redis != nil {
		if err := t.redis.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
			t.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}
	t.buckets.Delete(loginAttemptsKey(email))
}

func (t *LoginThrottle) bucket(email string) *RateLimiter {
	key := loginAttemptsKey(email)
	if existing, ok := t.buckets.Load(key); ok {
		return existing.(*RateLimiter)
	}
	limiter, _ := t.buckets.LoadOrStore(key, NewRateLimiter(t.maxTokens, t.refillRate, t.logger))
	return limiter.(*RateLimiter)
}

// CleanupOldEntries drops in-process buckets that have fully refilled
func (t *LoginThrottle) CleanupOldEntries() int {
	removed := 0
	t.buckets.Range(func(key, value interface{}) bool {
		if value.(*RateLimiter).Full() {
			t.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// StartCleanup periodically removes idle buckets until ctx is done
func (t *LoginThrottle) StartCleanup(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := t.CleanupOldEntries(); removed > 0 {
					t.logger.Debug("cleaned up login throttle buckets", zap.Int("removed", removed))
				}
			}
		}
	}()
}
