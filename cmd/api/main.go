package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/handlers"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/middleware"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/concurso-rubens-artero/app-inscricao/docs"
)

// @title           Concurso de Fotografia API
// @version         1.0
// @description     API de inscrição e área do participante do concurso de fotografia. Valida e registra inscrições, autentica participantes com a senha provisória enviada por e-mail e gerencia o envio e a avaliação das fotos.

// @contact.name   Organização do Concurso
// @contact.email  inscricoes@concurso.local

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token no formato "Bearer {token}" obtido em /auth/login

// @tag.name registrations
// @tag.description Formulário público de inscrição

// @tag.name auth
// @tag.description Sessão do participante

// @tag.name workspace
// @tag.description Área do participante

// @tag.name photos
// @tag.description Fotos enviadas pelo participante

// @tag.name admin
// @tag.description Avaliação das fotos pela organização

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	production := config.AppConfig.Environment == "production"

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize observability
	observability.InitTracer(ctx)
	defer observability.ShutdownTracer()

	// Initialize database connections
	var (
		participants services.ParticipantStore
		photos       services.PhotoStore
	)
	if err := config.InitMongoDB(); err != nil {
		if production {
			logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
		}
		logging.Logger.Warn("MongoDB unavailable, using in-memory stores", zap.Error(err))
		participants = services.NewMemoryParticipantStore()
		photos = services.NewMemoryPhotoStore()
	} else {
		participants = services.NewMongoParticipantStore(config.MongoDB, config.AppConfig.ParticipantCollection)
		photos = services.NewMongoPhotoStore(config.MongoDB, config.AppConfig.PhotoCollection)
	}
	config.InitRedis()

	storage := initObjectStorage(ctx, production)
	notifier := services.NewNotifierFromConfig(config.AppConfig, logging.Logger.Named("notifier"))

	// Initialize services
	services.InitRegistrationService(participants, notifier)
	services.InitAuthService(participants)
	services.InitPhotoService(photos, participants, storage, notifier)
	services.InitWorkspaceService(participants, services.PhotoServiceInstance)

	services.AuthServiceInstance.Throttle().StartCleanup(ctx, 10*time.Minute)

	// Set Gin mode
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.CORS(),
		middleware.AuditMiddleware(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	handlers.RegisterRoutes(router.Group("/v1"), services.AuthServiceInstance)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts. Uploads need a longer read timeout.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if config.MongoDB != nil {
		if err := config.MongoDB.Client().Disconnect(shutdownCtx); err != nil {
			logging.Logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}
	if config.Redis != nil {
		if err := config.Redis.Close(); err != nil {
			logging.Logger.Error("failed to close Redis client", zap.Error(err))
		}
	}

	logging.Logger.Info("server exited gracefully")
}

// initObjectStorage connects to MinIO when configured. Outside production
// an in-memory bucket keeps uploads working locally; in production uploads
// are refused until storage is configured.
func initObjectStorage(ctx context.Context, production bool) services.ObjectStorage {
	if config.AppConfig.MinIOEnabled() {
		storage, err := services.NewMinIOStorage(config.AppConfig)
		if err == nil {
			err = storage.EnsureBucket(ctx)
		}
		if err == nil {
			logging.Logger.Info("photo storage ready",
				zap.String("endpoint", config.AppConfig.MinIOEndpoint),
				zap.String("bucket", config.AppConfig.PhotoBucket))
			return storage
		}
		logging.Logger.Error("failed to initialize photo storage", zap.Error(err))
	}

	if production {
		logging.Logger.Warn("photo storage not configured, uploads are disabled")
		return nil
	}
	logging.Logger.Warn("using in-memory photo storage")
	return services.NewMemoryStorage(config.AppConfig.PhotoBucket)
}
