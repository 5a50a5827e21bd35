package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	registrationNumberDigits   = 8
	provisionalPasswordPrefix  = "INS"
	provisionalPasswordDigits  = 7
	maxRegistrationNumberTries = 5

	confirmationRedirect        = "/login"
	confirmationRedirectSeconds = 10
	confirmationMessage         = "Inscrição realizada com sucesso!"
)

// RegistrationSettings are the contest values the registration flow needs
type RegistrationSettings struct {
	ContestTitle  string
	PortalBaseURL string
	StrictCPF     bool
}

// RegistrationService validates and stores contest registrations
type RegistrationService struct {
	participants ParticipantStore
	validator    *RegistrationValidator
	control      *SubmissionControl
	notifier     Notifier
	settings     RegistrationSettings
	logger       *logging.SafeLogger

	random     io.Reader
	bcryptCost int
	now        func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(participants ParticipantStore, control *SubmissionControl, notifier Notifier, settings RegistrationSettings, logger *logging.SafeLogger) *RegistrationService {
	return &RegistrationService{
		participants: participants,
		validator:    NewRegistrationValidator(settings.StrictCPF),
		control:      control,
		notifier:     notifier,
		settings:     settings,
		logger:       logger,
		random:       rand.Reader,
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// Global registration service instance
var RegistrationServiceInstance *RegistrationService

// InitRegistrationService initializes the global registration service
func InitRegistrationService(participants ParticipantStore, notifier Notifier) {
	logger := logging.Logger.Named("registration_service")

	var guard SubmissionGuard
	if config.Redis != nil {
		guard = NewRedisSubmissionGuard(config.Redis, config.AppConfig.SubmissionLockTTL, config.AppConfig.RedisTTL)
	}
	fallback := NewMemorySubmissionGuard(config.AppConfig.SubmissionLockTTL, config.AppConfig.RedisTTL)

	RegistrationServiceInstance = NewRegistrationService(
		participants,
		NewSubmissionControl(guard, fallback, logger),
		notifier,
		RegistrationSettings{
			ContestTitle:  config.AppConfig.ContestTitle,
			PortalBaseURL: config.AppConfig.PortalBaseURL,
			StrictCPF:     config.AppConfig.CPFCheckDigits,
		},
		logger,
	)

	logger.Info("registration service initialized",
		zap.Bool("cpf_check_digits", config.AppConfig.CPFCheckDigits),
		zap.Bool("redis_guard", guard != nil))
}

// Validate checks a candidate without storing anything
func (s *RegistrationService) Validate(candidate models.RegistrationRecord) (*models.RegistrationRecord, error) {
	record, fields := s.validator.Validate(candidate)
	if len(fields) > 0 {
		recordFieldFailures(s.validator.form.Name(), fields)
		return nil, models.NewFieldValidationError(fields)
	}
	return record, nil
}

// Register validates candidate and, when valid, submits it under the
// single-flight guard of the form instance. An empty instance falls back
// to the CPF digits.
func (s *RegistrationService) Register(ctx context.Context, instance string, candidate models.RegistrationRecord) (*models.RegistrationReceipt, error) {
	record, err := s.Validate(candidate)
	if err != nil {
		observability.RegistrationSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if instance == "" {
		instance = "cpf:" + utils.CleanCPF(record.CPF)
	}

	var receipt *models.RegistrationReceipt
	err = s.control.Run(ctx, instance, func(ctx context.Context) error {
		var submitErr error
		receipt, submitErr = s.Submit(ctx, *record)
		return submitErr
	})
	observability.RegistrationSubmissions.WithLabelValues(submissionOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func submissionOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrDuplicateCPF), errors.Is(err, models.ErrDuplicateEmail):
		return "duplicate"
	case errors.Is(err, models.ErrSubmissionInFlight):
		return "in_flight"
	case errors.Is(err, models.ErrSubmissionDone):
		return "already_submitted"
	default:
		return "error"
	}
}

// Submit stores an already validated record and issues the provisional
// credential
func (s *RegistrationService) Submit(ctx context.Context, record models.RegistrationRecord) (*models.RegistrationReceipt, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "submit_registration")
	defer span.End()

	cpfDigits := utils.CleanCPF(record.CPF)
	email := strings.ToLower(record.Email)

	if exists, err := s.participants.ExistsByCPF(ctx, cpfDigits); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, models.NewSubmissionError(fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
	} else if exists {
		return nil, models.NewSubmissionError(models.ErrDuplicateCPF)
	}
	if exists, err := s.participants.ExistsByEmail(ctx, email); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, models.NewSubmissionError(fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
	} else if exists {
		return nil, models.NewSubmissionError(models.ErrDuplicateEmail)
	}

	password, err := s.provisionalPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate provisional password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash provisional password: %w", err)
	}

	record.Email = email
	now := s.now().UTC()

	var participant *models.Participant
	for attempt := 1; ; attempt++ {
		number, err := s.randomDigits(registrationNumberDigits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate registration number: %w", err)
		}
		participant = models.NewParticipant(uuid.NewString(), number, cpfDigits, string(hash), record, now)

		err = s.participants.Insert(ctx, participant)
		if err == nil {
			break
		}
		if errors.Is(err, errRegistrationNumberTaken) && attempt < maxRegistrationNumberTries {
			s.logger.Debug("registration number collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, models.ErrDuplicateCPF) || errors.Is(err, models.ErrDuplicateEmail) {
			return nil, models.NewSubmissionError(err)
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"attempt": attempt})
		return nil, models.NewSubmissionError(fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
	}

	s.logger.Info("registration stored",
		zap.String("participant_id", participant.ID),
		zap.String("registration_number", participant.RegistrationNumber),
		zap.String("cpf", observability.MaskCPF(cpfDigits)),
		zap.String("category", participant.Category))

	msg := ConfirmationMessage{
		ToEmail:             participant.Email,
		Name:                participant.FullName,
		ContestTitle:        s.settings.ContestTitle,
		RegistrationNumber:  participant.RegistrationNumber,
		ProvisionalPassword: password,
		LoginURL:            s.loginURL(),
	}
	if err := s.notifier.SendConfirmation(ctx, msg); err != nil {
		s.logger.Error("failed to send confirmation e-mail",
			zap.String("registration_number", participant.RegistrationNumber),
			zap.String("email", observability.MaskEmail(participant.Email)),
			zap.Error(err))
	}

	return &models.RegistrationReceipt{
		ParticipantID:       participant.ID,
		RegistrationNumber:  participant.RegistrationNumber,
		Login:               participant.Email,
		ProvisionalPassword: password,
		MustChangePassword:  true,
		ConfirmationURL:     "/v1/registrations/" + participant.RegistrationNumber + "/confirmation",
		CreatedAt:           participant.CreatedAt,
	}, nil
}

// Confirmation returns the post-submission screen data. The password is
// never part of it.
func (s *RegistrationService) Confirmation(ctx context.Context, registrationNumber string) (*models.Confirmation, error) {
	participant, err := s.participants.FindByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		return nil, err
	}
	return &models.Confirmation{
		ContestTitle:         s.settings.ContestTitle,
		RegistrationNumber:   participant.RegistrationNumber,
		FullName:             participant.FullName,
		Email:                participant.Email,
		Category:             participant.Category,
		CategoryLabel:        models.CategoryOptions.Label(participant.Category),
		Message:              confirmationMessage,
		RedirectTo:           confirmationRedirect,
		RedirectAfterSeconds: confirmationRedirectSeconds,
	}, nil
}

// SubmissionState reports the state of a form instance
func (s *RegistrationService) SubmissionState(ctx context.Context, instance string) (SubmissionState, error) {
	return s.control.State(ctx, instance)
}

func (s *RegistrationService) loginURL() string {
	return strings.TrimRight(s.settings.PortalBaseURL, "/") + confirmationRedirect
}

func (s *RegistrationService) provisionalPassword() (string, error) {
	digits, err := s.randomDigits(provisionalPasswordDigits)
	if err != nil {
		return "", err
	}
	return provisionalPasswordPrefix + digits, nil
}

// randomDigits draws n decimal digits from the service's random source.
// Bytes >= 250 are skipped so every digit is equally likely.
func (s *RegistrationService) randomDigits(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, 1)
	for b.Len() < n {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", err
		}
		if buf[0] >= 250 {
			continue
		}
		b.WriteByte('0' + buf[0]%10)
	}
	return b.String(), nil
}

func recordFieldFailures(form string, fields models.FieldErrors) {
	for field := range fields {
		observability.FieldValidationFailures.WithLabelValues(form, field).Inc()
	}
}
