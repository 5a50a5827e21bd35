package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	healthCacheKey = "health:status"

	healthHealthy   = "healthy"
	healthDegraded  = "degraded"
	healthUnhealthy = "unhealthy"
	serviceDisabled = "disabled"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e suas dependências (MongoDB e Redis). Sem Redis a API continua funcionando em modo degradado.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "API disponível"
// @Failure 503 {object} HealthResponse "MongoDB indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)
	logger := observability.Logger()

	if config.Redis != nil {
		cacheCtx, cacheSpan := utils.TraceCacheGet(ctx, healthCacheKey)
		cached, err := config.Redis.Get(cacheCtx, healthCacheKey).Result()
		if err == nil {
			var health HealthResponse
			if err := json.Unmarshal([]byte(cached), &health); err == nil {
				utils.AddSpanAttribute(cacheSpan, "cache.hit", true)
				cacheSpan.End()
				observability.CacheHits.WithLabelValues("health_check").Inc()
				writeHealth(c, health)
				return
			}
			logger.Warn("failed to unmarshal cached health data", zap.Error(err))
		}
		utils.AddSpanAttribute(cacheSpan, "cache.hit", false)
		cacheSpan.End()
	}

	health := HealthResponse{
		Status:    healthHealthy,
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if config.MongoDB == nil {
		health.Services["mongodb"] = serviceDisabled
	} else {
		_, mongoSpan := utils.TraceExternalService(ctx, "mongodb", "ping")
		if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
			utils.RecordErrorInSpan(mongoSpan, err, nil)
			health.Status = healthUnhealthy
			health.Services["mongodb"] = healthUnhealthy
		} else {
			health.Services["mongodb"] = healthHealthy
		}
		mongoSpan.End()
	}

	if config.Redis == nil {
		health.Services["redis"] = serviceDisabled
	} else {
		_, redisSpan := utils.TraceExternalService(ctx, "redis", "ping")
		if err := config.Redis.Ping(ctx).Err(); err != nil {
			utils.RecordErrorInSpan(redisSpan, err, nil)
			health.Services["redis"] = healthUnhealthy
			if health.Status == healthHealthy {
				health.Status = healthDegraded
			}
		} else {
			health.Services["redis"] = healthHealthy
		}
		redisSpan.End()
	}

	if config.Redis != nil && health.Services["redis"] == healthHealthy {
		ttl := 5 * time.Second
		if health.Status != healthHealthy {
			ttl = time.Second
		}
		_, cacheSetSpan := utils.TraceCacheSet(ctx, healthCacheKey, ttl)
		if payload, err := json.Marshal(health); err == nil {
			if err := config.Redis.Set(ctx, healthCacheKey, payload, ttl).Err(); err != nil {
				utils.RecordErrorInSpan(cacheSetSpan, err, nil)
				logger.Warn("failed to cache health status", zap.Error(err))
			}
		}
		cacheSetSpan.End()
	}

	span.SetAttributes(
		attribute.String("health.status", health.Status),
		attribute.String("health.mongodb", health.Services["mongodb"]),
		attribute.String("health.redis", health.Services["redis"]),
	)
	writeHealth(c, health)

	logger.Debug("HealthCheck completed",
		zap.String("status", health.Status),
		zap.Duration("total_duration", time.Since(startTime)))
}

func writeHealth(c *gin.Context, health HealthResponse) {
	if health.Status == healthUnhealthy {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
