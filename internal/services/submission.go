package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/redisclient"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SubmissionState is the state of one form instance's submit attempt
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// SubmitFunc performs the actual submission and reports its outcome
type SubmitFunc func(ctx context.Context) error

// errSubmissionLockLost means the attempt's lock expired and was taken by
// a newer attempt, so its outcome was not recorded
var errSubmissionLockLost = errors.New("submission lock held by another attempt")

// SubmissionGuard stores submission state per form instance so that only
// one attempt runs at a time, across requests and API replicas.
type SubmissionGuard interface {
	// Begin moves the instance from Idle or Failed to Submitting and
	// returns the token that owns the attempt. It fails with
	// ErrSubmissionInFlight or ErrSubmissionDone otherwise.
	Begin(ctx context.Context, instance string) (string, error)
	// Complete ends the attempt owned by token: success makes the instance
	// terminal, failure marks it Failed until the next Begin.
	Complete(ctx context.Context, instance, token string, succeeded bool) error
	// State reports the current state of the instance
	State(ctx context.Context, instance string) (SubmissionState, error)
}

// SubmissionControl runs submit attempts through the state machine
// Idle -> Submitting -> Succeeded | Failed, Failed -> Submitting.
type SubmissionControl struct {
	guard    SubmissionGuard
	fallback SubmissionGuard
	logger   *logging.SafeLogger
}

// NewSubmissionControl creates a control backed by guard. When guard itself
// fails (e.g. Redis is down) the in-process fallback is used.
func NewSubmissionControl(guard, fallback SubmissionGuard, logger *logging.SafeLogger) *SubmissionControl {
	if fallback == nil {
		fallback = NewMemorySubmissionGuard(30*time.Second, time.Hour)
	}
	if guard == nil {
		guard = fallback
	}
	return &SubmissionControl{guard: guard, fallback: fallback, logger: logger}
}

// Run executes fn unless another attempt for instance is in flight or has
// already succeeded. The attempt is never cancelled once started.
func (c *SubmissionControl) Run(ctx context.Context, instance string, fn SubmitFunc) error {
	guard := c.guard
	token, err := guard.Begin(ctx, instance)
	if err != nil && !isSubmissionConflict(err) && guard != c.fallback {
		c.logger.Warn("submission guard unavailable, using in-process guard",
			zap.String("instance", instance),
			zap.Error(err))
		guard = c.fallback
		token, err = guard.Begin(ctx, instance)
	}
	if err != nil {
		if isSubmissionConflict(err) {
			return models.NewSubmissionError(err)
		}
		return models.NewSubmissionError(fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
	}

	// The outcome must be recorded even if the caller's context is done
	completeCtx := context.WithoutCancel(ctx)

	runErr := fn(ctx)
	if err := guard.Complete(completeCtx, instance, token, runErr == nil); err != nil {
		if errors.Is(err, errSubmissionLockLost) {
			c.logger.Warn("submission lock expired before the attempt finished",
				zap.String("instance", instance),
				zap.Bool("succeeded", runErr == nil))
		} else {
			c.logger.Error("failed to record submission outcome",
				zap.String("instance", instance),
				zap.Bool("succeeded", runErr == nil),
				zap.Error(err))
		}
	}

	if runErr != nil {
		c.logger.Info("submission failed",
			zap.String("instance", instance),
			zap.String("state", string(SubmissionFailed)),
			zap.Error(runErr))
	}
	return runErr
}

// State reports the state of instance. While the guard is unavailable the
// in-process fallback answers, since that is where attempts are held.
func (c *SubmissionControl) State(ctx context.Context, instance string) (SubmissionState, error) {
	state, err := c.guard.State(ctx, instance)
	if err != nil && c.guard != c.fallback {
		c.logger.Warn("submission guard unavailable, reading in-process state",
			zap.String("instance", instance),
			zap.Error(err))
		return c.fallback.State(ctx, instance)
	}
	return state, err
}

func isSubmissionConflict(err error) bool {
	return errors.Is(err, models.ErrSubmissionInFlight) || errors.Is(err, models.ErrSubmissionDone)
}

const submittingPrefix = string(SubmissionSubmitting) + ":"

// beginScript takes the lock when the instance is idle or failed.
// Returns 1 when acquired, 2 when already succeeded, 0 when in flight.
const beginScript = `
local current = redis.call('GET', KEYS[1])
if not current or current == ARGV[3] then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
	return 1
end
if current == ARGV[4] then
	return 2
end
return 0
`

// completeScript records the outcome only while ARGV[1] still owns the lock
const completeScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
end
return 0
`

// RedisSubmissionGuard keeps submission state in Redis. The Submitting
// marker holds the attempt token and expires after lockTTL so a crashed
// attempt cannot block the form forever; outcomes are kept for doneTTL.
type RedisSubmissionGuard struct {
	client  *redisclient.Client
	lockTTL time.Duration
	doneTTL time.Duration
}

// NewRedisSubmissionGuard creates a Redis backed guard
func NewRedisSubmissionGuard(client *redisclient.Client, lockTTL, doneTTL time.Duration) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{client: client, lockTTL: lockTTL, doneTTL: doneTTL}
}

func submissionKey(instance string) string {
	return "submission:" + instance
}

func (g *RedisSubmissionGuard) Begin(ctx context.Context, instance string) (string, error) {
	token := uuid.NewString()
	result, err := g.client.Eval(ctx, beginScript, []string{submissionKey(instance)},
		submittingPrefix+token,
		g.lockTTL.Milliseconds(),
		string(SubmissionFailed),
		string(SubmissionSucceeded),
	).Int64()
	if err != nil {
		return "", fmt.Errorf("failed to acquire submission lock: %w", err)
	}

	switch result {
	case 1:
		return token, nil
	case 2:
		return "", models.ErrSubmissionDone
	default:
		return "", models.ErrSubmissionInFlight
	}
}

func (g *RedisSubmissionGuard) Complete(ctx context.Context, instance, token string, succeeded bool) error {
	outcome := SubmissionFailed
	if succeeded {
		outcome = SubmissionSucceeded
	}
	recorded, err := g.client.Eval(ctx, completeScript, []string{submissionKey(instance)},
		submittingPrefix+token,
		string(outcome),
		g.doneTTL.Milliseconds(),
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to record submission outcome: %w", err)
	}
	if recorded == 0 {
		return errSubmissionLockLost
	}
	return nil
}

func (g *RedisSubmissionGuard) State(ctx context.Context, instance string) (SubmissionState, error) {
	state, err := g.client.Get(ctx, submissionKey(instance)).Result()
	if errors.Is(err, redis.Nil) {
		return SubmissionIdle, nil
	}
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(state, submittingPrefix) {
		return SubmissionSubmitting, nil
	}
	return SubmissionState(state), nil
}

// MemorySubmissionGuard is the in-process guard, used in tests and when
// Redis is unavailable
type MemorySubmissionGuard struct {
	mu      sync.Mutex
	entries map[string]submissionEntry
	lockTTL time.Duration
	doneTTL time.Duration
	now     func() time.Time
}

type submissionEntry struct {
	state     SubmissionState
	token     string
	expiresAt time.Time
}

// NewMemorySubmissionGuard creates an in-process guard
func NewMemorySubmissionGuard(lockTTL, doneTTL time.Duration) *MemorySubmissionGuard {
	return &MemorySubmissionGuard{
		entries: make(map[string]submissionEntry),
		lockTTL: lockTTL,
		doneTTL: doneTTL,
		now:     time.Now,
	}
}

func (g *MemorySubmissionGuard) current(instance string) (submissionEntry, bool) {
	entry, ok := g.entries[instance]
	if !ok {
		return submissionEntry{}, false
	}
	if g.now().After(entry.expiresAt) {
		delete(g.entries, instance)
		return submissionEntry{}, false
	}
	return entry, true
}

func (g *MemorySubmissionGuard) Begin(_ context.Context, instance string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if entry, ok := g.current(instance); ok {
		switch entry.state {
		case SubmissionSubmitting:
			return "", models.ErrSubmissionInFlight
		case SubmissionSucceeded:
			return "", models.ErrSubmissionDone
		}
	}
	token := uuid.NewString()
	g.entries[instance] = submissionEntry{state: SubmissionSubmitting, token: token, expiresAt: g.now().Add(g.lockTTL)}
	return token, nil
}

func (g *MemorySubmissionGuard) Complete(_ context.Context, instance, token string, succeeded bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.current(instance)
	if !ok || entry.state != SubmissionSubmitting || entry.token != token {
		return errSubmissionLockLost
	}

	outcome := SubmissionFailed
	if succeeded {
		outcome = SubmissionSucceeded
	}
	g.entries[instance] = submissionEntry{state: outcome, expiresAt: g.now().Add(g.doneTTL)}
	return nil
}

func (g *MemorySubmissionGuard) State(_ context.Context, instance string) (SubmissionState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.current(instance)
	if !ok {
		return SubmissionIdle, nil
	}
	return entry.state, nil
}
