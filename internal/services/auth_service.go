package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/redisclient"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	workspaceRedirect      = "/workspace"
	passwordChangeRedirect = "/workspace/senha"
)

// AuthSettings configures token issuing
type AuthSettings struct {
	Secret  string
	Issuer  string
	TTL     time.Duration
	IsAdmin func(email string) bool
}

// AuthService logs participants in and manages their sessions
type AuthService struct {
	participants ParticipantStore
	throttle     *LoginThrottle
	redis        *redisclient.Client
	settings     AuthSettings
	loginForm    *FormValidator[models.LoginRequest]
	passwordForm *FormValidator[models.PasswordChangeRequest]
	logger       *logging.SafeLogger

	// revoked token ids when Redis is unavailable, jti -> expiry
	revoked sync.Map

	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates a new auth service. redis may be nil.
func NewAuthService(participants ParticipantStore, throttle *LoginThrottle, redis *redisclient.Client, settings AuthSettings, logger *logging.SafeLogger) *AuthService {
	if settings.IsAdmin == nil {
		settings.IsAdmin = func(string) bool { return false }
	}
	return &AuthService{
		participants: participants,
		throttle:     throttle,
		redis:        redis,
		settings:     settings,
		loginForm:    NewFormValidator("login", LoginRules()),
		passwordForm: NewFormValidator("password_change", PasswordChangeRules()),
		logger:       logger,
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// Global auth service instance
var AuthServiceInstance *AuthService

// InitAuthService initializes the global auth service
func InitAuthService(participants ParticipantStore) {
	logger := logging.Logger.Named("auth_service")
	cfg := config.AppConfig

	throttle := NewLoginThrottle(config.Redis, cfg.LoginRateLimit, cfg.LoginRateRefill, logger)
	AuthServiceInstance = NewAuthService(participants, throttle, config.Redis, AuthSettings{
		Secret:  cfg.JWTSecret,
		Issuer:  cfg.JWTIssuer,
		TTL:     cfg.JWTTTL,
		IsAdmin: cfg.IsAdminEmail,
	}, logger)

	logger.Info("auth service initialized",
		zap.Duration("token_ttl", cfg.JWTTTL),
		zap.Int("admin_count", len(cfg.AdminEmails)))
}

// Throttle exposes the login throttle so its cleanup can be scheduled
func (s *AuthService) Throttle() *LoginThrottle {
	return s.throttle
}

// Login checks the credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "login")
	defer span.End()

	form, fields := s.loginForm.Validate(req)
	if len(fields) > 0 {
		recordFieldFailures(s.loginForm.Name(), fields)
		observability.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	if !s.throttle.Allow(ctx, form.Email) {
		observability.LoginAttempts.WithLabelValues("throttled").Inc()
		return nil, models.ErrTooManyAttempts
	}

	participant, err := s.participants.FindByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, models.ErrParticipantNotFound) {
			observability.LoginAttempts.WithLabelValues("failure").Inc()
			return nil, models.ErrInvalidCredentials
		}
		utils.RecordErrorInSpan(span, err, nil)
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(participant.PasswordHash), []byte(form.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("email", observability.MaskEmail(form.Email)))
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.ErrInvalidCredentials
	}

	s.throttle.Reset(ctx, form.Email)

	token, err := s.issueToken(participant)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, err
	}
	observability.LoginAttempts.WithLabelValues("success").Inc()

	redirect := workspaceRedirect
	if participant.MustChangePassword {
		redirect = passwordChangeRedirect
	}

	return &models.LoginResponse{
		AccessToken:        token,
		TokenType:          "Bearer",
		ExpiresIn:          int64(s.settings.TTL.Seconds()),
		MustChangePassword: participant.MustChangePassword,
		RedirectTo:         redirect,
	}, nil
}

func (s *AuthService) issueToken(participant *models.Participant) (string, error) {
	now := s.now()
	role := models.RoleParticipant
	if s.settings.IsAdmin(participant.Email) {
		role = models.RoleAdmin
	}

	claims := models.JWTClaims{
		Email:              participant.Email,
		Name:               participant.FullName,
		Role:               role,
		RegistrationNumber: participant.RegistrationNumber,
		MustChangePassword: participant.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   participant.ID,
			Issuer:    s.settings.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.settings.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.settings.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature, expiry and revocation of a token
func (s *AuthService) ParseToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.settings.Secret), nil
	},
		jwt.WithIssuer(s.settings.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if s.IsRevoked(ctx, claims.ID) {
		return nil, models.ErrTokenRevoked
	}
	return claims, nil
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}

// Logout revokes the token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, claims *models.JWTClaims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}

	if s.redis != nil {
		err := s.redis.Set(ctx, revokedKey(claims.ID), "1", ttl).Err()
		if err == nil {
			return nil
		}
		s.logger.Warn("failed to revoke token in redis, keeping it in process", zap.Error(err))
	}
	s.revoked.Store(claims.ID, s.now().Add(ttl))
	return nil
}

// IsRevoked reports whether the token id was logged out
func (s *AuthService) IsRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	if value, ok := s.revoked.Load(jti); ok {
		if s.now().Before(value.(time.Time)) {
			return true
		}
		s.revoked.Delete(jti)
	}
	if s.redis == nil {
		return false
	}
	count, err := s.redis.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		s.logger.Warn("failed to check token revocation", zap.Error(err))
		return false
	}
	return count > 0
}

// ChangePassword replaces the participant's password and clears the
// first-login flag
func (s *AuthService) ChangePassword(ctx context.Context, participantID string, req models.PasswordChangeRequest) error {
	ctx, span := utils.TraceBusinessLogic(ctx, "change_password")
	defer span.End()

	form, fields := s.passwordForm.Validate(req)
	if len(fields) > 0 {
		recordFieldFailures(s.passwordForm.Name(), fields)
		return models.NewFieldValidationError(fields)
	}
	if form.CurrentPassword == form.NewPassword {
		return models.NewFieldValidationError(models.FieldErrors{
			"new_password": "A nova senha deve ser diferente da atual",
		})
	}

	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(participant.PasswordHash), []byte(form.CurrentPassword)); err != nil {
		return models.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.participants.UpdatePassword(ctx, participant.ID, string(hash), false); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return err
	}

	s.logger.Info("password changed",
		zap.String("participant_id", participant.ID),
		zap.Bool("first_login", participant.MustChangePassword))
	return nil
}
