package services

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// recordingNotifier keeps every message it is asked to send
type recordingNotifier struct {
	mu            sync.Mutex
	confirmations []ConfirmationMessage
	reviews       []PhotoReviewMessage
	err           error
}

func (n *recordingNotifier) SendConfirmation(_ context.Context, msg ConfirmationMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = append(n.confirmations, msg)
	return n.err
}

func (n *recordingNotifier) SendPhotoReview(_ context.Context, msg PhotoReviewMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reviews = append(n.reviews, msg)
	return n.err
}

func newTestRegistrationService(t *testing.T) (*RegistrationService, *MemoryParticipantStore, *recordingNotifier) {
	t.Helper()
	store := NewMemoryParticipantStore()
	notifier := &recordingNotifier{}
	control := NewSubmissionControl(NewMemorySubmissionGuard(time.Minute, time.Hour), nil, testLogger())
	svc := NewRegistrationService(store, control, notifier, RegistrationSettings{
		ContestTitle:  "Concurso de Fotografia",
		PortalBaseURL: "https://portal.example.com/",
	}, testLogger())
	svc.bcryptCost = bcrypt.MinCost
	return svc, store, notifier
}

func TestRegistrationService_Register(t *testing.T) {
	svc, store, notifier := newTestRegistrationService(t)
	ctx := context.Background()

	receipt, err := svc.Register(ctx, "form-1", validRegistration())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^INS\d{7}$`), receipt.ProvisionalPassword)
	assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), receipt.RegistrationNumber)
	assert.Equal(t, "ana@example.com", receipt.Login)
	assert.True(t, receipt.MustChangePassword)
	assert.Equal(t, "/v1/registrations/"+receipt.RegistrationNumber+"/confirmation", receipt.ConfirmationURL)

	stored, err := store.FindByRegistrationNumber(ctx, receipt.RegistrationNumber)
	require.NoError(t, err)
	assert.Equal(t, "11122233344", stored.CPF)
	assert.True(t, stored.MustChangePassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(receipt.ProvisionalPassword)))

	require.Len(t, notifier.confirmations, 1)
	msg := notifier.confirmations[0]
	assert.Equal(t, receipt.ProvisionalPassword, msg.ProvisionalPassword)
	assert.Equal(t, "https://portal.example.com/login", msg.LoginURL)
	assert.Equal(t, receipt.RegistrationNumber, msg.RegistrationNumber)

	state, err := svc.SubmissionState(ctx, "form-1")
	require.NoError(t, err)
	assert.Equal(t, SubmissionSucceeded, state)
}

func TestRegistrationService_Register_InvalidRecord(t *testing.T) {
	svc, store, notifier := newTestRegistrationService(t)

	candidate := validRegistration()
	candidate.Email = "not-an-email"
	candidate.PrivacyTerms = false

	_, err := svc.Register(context.Background(), "form-1", candidate)

	var fieldErr *models.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, []string{"email", "privacyTerms"}, fieldErr.Fields.Fields())
	assert.Empty(t, notifier.confirmations)

	exists, _ := store.ExistsByCPF(context.Background(), "11122233344")
	assert.False(t, exists, "invalid records are never submitted")

	state, _ := svc.SubmissionState(context.Background(), "form-1")
	assert.Equal(t, SubmissionIdle, state)
}

func TestRegistrationService_Register_DuplicateCPF(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "form-1", validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Email = "outra@example.com"
	_, err = svc.Register(ctx, "form-2", second)

	var subErr *models.SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.ErrorIs(t, err, models.ErrDuplicateCPF)

	state, _ := svc.SubmissionState(ctx, "form-2")
	assert.Equal(t, SubmissionFailed, state, "a failed attempt is reported until the form is submitted again")
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "form-1", validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.CPF = "999.888.777-66"
	second.Email = "ANA@example.com"
	_, err = svc.Register(ctx, "form-2", second)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestRegistrationService_Register_SameInstanceAfterSuccess(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "form-1", validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, "form-1", validRegistration())
	assert.ErrorIs(t, err, models.ErrSubmissionDone)
}

func TestRegistrationService_Register_DefaultInstanceIsCPF(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", validRegistration())
	require.NoError(t, err)

	state, _ := svc.SubmissionState(ctx, "cpf:11122233344")
	assert.Equal(t, SubmissionSucceeded, state)
}

func TestRegistrationService_Register_NotifierFailureIsNotFatal(t *testing.T) {
	svc, _, notifier := newTestRegistrationService(t)
	notifier.err = errors.New("smtp down")

	receipt, err := svc.Register(context.Background(), "form-1", validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ProvisionalPassword)
}

func TestRegistrationService_Submit_RetriesRegistrationNumber(t *testing.T) {
	svc, store, _ := newTestRegistrationService(t)
	ctx := context.Background()

	taken := validRegistration()
	taken.CPF = "999.888.777-66"
	taken.Email = "outra@example.com"
	require.NoError(t, store.Insert(ctx, models.NewParticipant("p-0", "00000000", "99988877766", "hash", taken, time.Now())))

	// one byte per digit: password digits, a colliding number, a free number
	seq := append(bytes.Repeat([]byte{1}, 7), bytes.Repeat([]byte{0}, 8)...)
	seq = append(seq, bytes.Repeat([]byte{2}, 8)...)
	svc.random = bytes.NewReader(seq)

	record, err := svc.Validate(validRegistration())
	require.NoError(t, err)

	receipt, err := svc.Submit(ctx, *record)
	require.NoError(t, err)
	assert.Equal(t, "INS1111111", receipt.ProvisionalPassword)
	assert.Equal(t, "22222222", receipt.RegistrationNumber)
}

func TestRegistrationService_Submit_GivesUpAfterCollisions(t *testing.T) {
	svc, store, _ := newTestRegistrationService(t)
	ctx := context.Background()

	taken := validRegistration()
	taken.CPF = "999.888.777-66"
	taken.Email = "outra@example.com"
	require.NoError(t, store.Insert(ctx, models.NewParticipant("p-0", "00000000", "99988877766", "hash", taken, time.Now())))

	svc.random = bytes.NewReader(make([]byte, 7+8*maxRegistrationNumberTries))

	record, err := svc.Validate(validRegistration())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, *record)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestRegistrationService_Confirmation(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	receipt, err := svc.Register(ctx, "form-1", validRegistration())
	require.NoError(t, err)

	confirmation, err := svc.Confirmation(ctx, receipt.RegistrationNumber)
	require.NoError(t, err)
	assert.Equal(t, "Concurso de Fotografia", confirmation.ContestTitle)
	assert.Equal(t, "Ana Souza", confirmation.FullName)
	assert.Equal(t, "/login", confirmation.RedirectTo)
	assert.Equal(t, 10, confirmation.RedirectAfterSeconds)
	assert.Equal(t, models.CategoryOptions.Label(confirmation.Category), confirmation.CategoryLabel)

	_, err = svc.Confirmation(ctx, "00000000")
	assert.ErrorIs(t, err, models.ErrParticipantNotFound)
}
