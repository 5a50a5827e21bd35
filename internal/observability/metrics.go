package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_inscricao_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// RegistrationSubmissions counts submission outcomes: succeeded,
	// invalid, duplicate, in_flight, failed
	RegistrationSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_registration_submissions_total",
			Help: "Number of registration submissions by outcome",
		},
		[]string{"outcome"},
	)

	// FieldValidationFailures counts rejected fields per form
	FieldValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_field_validation_failures_total",
			Help: "Number of field validation failures",
		},
		[]string{"form", "field"},
	)

	// LoginAttempts tracks login outcomes
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_login_attempts_total",
			Help: "Number of login attempts",
		},
		[]string{"status"},
	)

	// PhotoOperations tracks workspace photo operations
	PhotoOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_photo_operations_total",
			Help: "Number of photo operations",
		},
		[]string{"operation", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_inscricao_active_connections",
			Help: "Number of active connections",
		},
	)
)
