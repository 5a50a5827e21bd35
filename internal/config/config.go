package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Contest
	ContestTitle string `json:"contest_title"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Collection names
	ParticipantCollection string `json:"mongo_participant_collection"`
	PhotoCollection       string `json:"mongo_photo_collection"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Authentication
	JWTSecret   string        `json:"-"`
	JWTIssuer   string        `json:"jwt_issuer"`
	JWTTTL      time.Duration `json:"jwt_ttl"`
	AdminEmails []string      `json:"admin_emails"`

	// Login throttling: LoginRateLimit attempts, one refilled every LoginRateRefill
	LoginRateLimit  int           `json:"login_rate_limit"`
	LoginRateRefill time.Duration `json:"login_rate_refill"`

	// Registration
	SubmissionLockTTL time.Duration `json:"submission_lock_ttl"`
	CPFCheckDigits    bool          `json:"cpf_check_digits"`

	// Photo storage (MinIO / S3)
	MinIOEndpoint  string `json:"minio_endpoint"`
	MinIOAccessKey string `json:"-"`
	MinIOSecretKey string `json:"-"`
	MinIOUseSSL    bool   `json:"minio_use_ssl"`
	PhotoBucket    string `json:"photo_bucket"`
	PhotoMaxBytes  int64  `json:"photo_max_bytes"`
	PhotoLimit     int    `json:"photo_limit"`

	// Confirmation e-mail
	SMTPEnabled   bool   `json:"smtp_enabled"`
	SMTPHost      string `json:"smtp_host"`
	SMTPPort      int    `json:"smtp_port"`
	SMTPUsername  string `json:"smtp_username"`
	SMTPPassword  string `json:"-"`
	SMTPFromEmail string `json:"smtp_from_email"`
	SMTPFromName  string `json:"smtp_from_name"`
	PortalBaseURL string `json:"portal_base_url"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
func LoadConfig() error {
	_ = godotenv.Load()

	port, err := getEnvAsIntOrDefault("PORT", 8080)
	if err != nil {
		return err
	}

	redisDB, err := getEnvAsIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return err
	}

	redisTTL, err := getEnvAsDurationOrDefault("REDIS_TTL", 60*time.Minute)
	if err != nil {
		return err
	}

	jwtTTL, err := getEnvAsDurationOrDefault("JWT_TTL", 12*time.Hour)
	if err != nil {
		return err
	}

	loginRateLimit, err := getEnvAsIntOrDefault("LOGIN_RATE_LIMIT", 5)
	if err != nil {
		return err
	}

	loginRateRefill, err := getEnvAsDurationOrDefault("LOGIN_RATE_REFILL", time.Minute)
	if err != nil {
		return err
	}

	submissionLockTTL, err := getEnvAsDurationOrDefault("SUBMISSION_LOCK_TTL", 30*time.Second)
	if err != nil {
		return err
	}

	photoMaxBytes, err := getEnvAsIntOrDefault("PHOTO_MAX_BYTES", 15*1024*1024)
	if err != nil {
		return err
	}

	photoLimit, err := getEnvAsIntOrDefault("PHOTO_LIMIT", 10)
	if err != nil {
		return err
	}

	smtpPort, err := getEnvAsIntOrDefault("SMTP_PORT", 587)
	if err != nil {
		return err
	}

	environment := getEnvOrDefault("ENVIRONMENT", "development")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if environment == "production" {
			return fmt.Errorf("JWT_SECRET environment variable is required in production")
		}
		jwtSecret = "development-only-secret"
	}

	AppConfig = &Config{
		// Server configuration
		Port:         port,
		Environment:  environment,
		ContestTitle: getEnvOrDefault("CONTEST_TITLE", "1ª Edição do Concurso de Fotografia Rubens Artero"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "concurso"),

		// Collection names
		ParticipantCollection: getEnvOrDefault("MONGODB_PARTICIPANT_COLLECTION", "participants"),
		PhotoCollection:       getEnvOrDefault("MONGODB_PHOTO_COLLECTION", "photos"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Tracing configuration
		TracingEnabled:  getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		// Authentication
		JWTSecret:   jwtSecret,
		JWTIssuer:   getEnvOrDefault("JWT_ISSUER", "app-inscricao"),
		JWTTTL:      jwtTTL,
		AdminEmails: getEnvAsSlice("ADMIN_EMAILS"),

		LoginRateLimit:  loginRateLimit,
		LoginRateRefill: loginRateRefill,

		// Registration
		SubmissionLockTTL: submissionLockTTL,
		CPFCheckDigits:    getEnvAsBoolOrDefault("CPF_CHECK_DIGITS", false),

		// Photo storage
		MinIOEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnvOrDefault("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnvOrDefault("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:    getEnvAsBoolOrDefault("MINIO_USE_SSL", false),
		PhotoBucket:    getEnvOrDefault("PHOTO_BUCKET", "contest-photos"),
		PhotoMaxBytes:  int64(photoMaxBytes),
		PhotoLimit:     photoLimit,

		// Confirmation e-mail
		SMTPEnabled:   getEnvAsBoolOrDefault("SMTP_ENABLED", false),
		SMTPHost:      getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:      smtpPort,
		SMTPUsername:  getEnvOrDefault("SMTP_USERNAME", ""),
		SMTPPassword:  getEnvOrDefault("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnvOrDefault("SMTP_FROM_EMAIL", "inscricoes@concurso.local"),
		SMTPFromName:  getEnvOrDefault("SMTP_FROM_NAME", "Concurso de Fotografia"),
		PortalBaseURL: getEnvOrDefault("PORTAL_BASE_URL", "http://localhost:5173"),
	}

	return nil
}

// IsAdminEmail reports whether the e-mail belongs to a contest organizer.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

// MinIOEnabled reports whether object storage credentials are configured.
func (c *Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault parses an integer environment variable
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvAsDurationOrDefault parses a duration environment variable
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvAsBoolOrDefault parses a boolean environment variable; unparseable
// values fall back to the default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsSlice splits a comma separated environment variable, lower-casing
// and dropping empty entries
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
