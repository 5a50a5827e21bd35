package redisclient

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const clientName = "app-inscricao"

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
	closer  func() error
}

// NewClient creates a new traced Redis client for single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client, closer: client.Close}
}

// NewClusterClient creates a new traced Redis client for Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client, closer: client.Close}
}

// startSpan opens a span for a single Redis command
func startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span, time.Time) {
	attrs = append(attrs,
		attribute.String("redis.operation", operation),
		attribute.String("redis.client", clientName),
	)
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+operation, trace.WithAttributes(attrs...))
	return ctx, span, time.Now()
}

// endSpan records the outcome of a command. redis.Nil is a cache miss, not an error.
func endSpan(span trace.Span, start time.Time, err error) {
	duration := time.Since(start)
	span.SetAttributes(
		attribute.Int64("redis.duration_ms", duration.Milliseconds()),
		attribute.String("redis.duration", duration.String()),
	)
	if err != nil && !errors.Is(err, redis.Nil) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("redis.error", err.Error()))
	} else {
		span.SetStatus(codes.Ok, "success")
	}
	span.End()
}

// Get wraps Redis Get with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, span, start := startSpan(ctx, "get", attribute.String("redis.key", key))
	cmd := c.cmdable.Get(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Set wraps Redis Set with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, span, start := startSpan(ctx, "set",
		attribute.String("redis.key", key),
		attribute.String("redis.expiration", expiration.String()),
	)
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	endSpan(span, start, cmd.Err())
	return cmd
}

// SetNX wraps Redis SetNX with tracing. It is the primitive behind the
// submission lock and token revocation.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	ctx, span, start := startSpan(ctx, "setnx",
		attribute.String("redis.key", key),
		attribute.String("redis.expiration", expiration.String()),
	)
	cmd := c.cmdable.SetNX(ctx, key, value, expiration)
	if cmd.Err() == nil {
		span.SetAttributes(attribute.Bool("redis.acquired", cmd.Val()))
	}
	endSpan(span, start, cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	ctx, span, start := startSpan(ctx, "del",
		attribute.StringSlice("redis.keys", keys),
		attribute.Int("redis.key_count", len(keys)),
	)
	cmd := c.cmdable.Del(ctx, keys...)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Exists wraps Redis Exists with tracing
func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	ctx, span, start := startSpan(ctx, "exists",
		attribute.StringSlice("redis.keys", keys),
		attribute.Int("redis.key_count", len(keys)),
	)
	cmd := c.cmdable.Exists(ctx, keys...)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Incr wraps Redis Incr with tracing
func (c *Client) Incr(ctx context.Context, key string) *redis.IntCmd {
	ctx, span, start := startSpan(ctx, "incr", attribute.String("redis.key", key))
	cmd := c.cmdable.Incr(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Expire wraps Redis Expire with tracing
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	ctx, span, start := startSpan(ctx, "expire",
		attribute.String("redis.key", key),
		attribute.String("redis.expiration", expiration.String()),
	)
	cmd := c.cmdable.Expire(ctx, key, expiration)
	endSpan(span, start, cmd.Err())
	return cmd
}

// TTL wraps Redis TTL with tracing
func (c *Client) TTL(ctx context.Context, key string) *redis.DurationCmd {
	ctx, span, start := startSpan(ctx, "ttl", attribute.String("redis.key", key))
	cmd := c.cmdable.TTL(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Eval wraps Redis Eval with tracing. Scripts run atomically on the server.
func (c *Client) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	ctx, span, start := startSpan(ctx, "eval",
		attribute.StringSlice("redis.keys", keys),
		attribute.Int("redis.key_count", len(keys)),
	)
	cmd := c.cmdable.Eval(ctx, script, keys, args...)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, span, start := startSpan(ctx, "ping")
	cmd := c.cmdable.Ping(ctx)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Close releases the underlying connection pool
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
