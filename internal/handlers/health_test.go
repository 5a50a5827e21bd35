package handlers

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_NoDependencies(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/v1/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	decode(t, w, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "disabled", health.Services["mongodb"])
	assert.Equal(t, "disabled", health.Services["redis"])
}

func TestHealthCheck_CachesInRedis(t *testing.T) {
	env := setupTestEnv(t)
	mr := miniredis.RunT(t)
	config.Redis = redisclient.NewClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	w := env.do(http.MethodGet, "/v1/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	decode(t, w, &health)
	assert.Equal(t, "healthy", health.Services["redis"])
	assert.True(t, mr.Exists(healthCacheKey))

	w = env.do(http.MethodGet, "/v1/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &health)
	assert.Equal(t, "healthy", health.Status)
}

func TestHealthCheck_RedisDownIsDegraded(t *testing.T) {
	env := setupTestEnv(t)
	mr := miniredis.RunT(t)
	config.Redis = redisclient.NewClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	mr.Close()

	w := env.do(http.MethodGet, "/v1/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	decode(t, w, &health)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "unhealthy", health.Services["redis"])
}
