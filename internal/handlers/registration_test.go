package handlers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRegistration(t *testing.T) {
	env := setupTestEnv(t)

	receipt := env.register(t, validRecord())

	assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), receipt.RegistrationNumber)
	assert.Regexp(t, regexp.MustCompile(`^INS\d{7}$`), receipt.ProvisionalPassword)
	assert.Equal(t, "ana@example.com", receipt.Login)
	assert.True(t, receipt.MustChangePassword)
	assert.Equal(t, "/v1/registrations/"+receipt.RegistrationNumber+"/confirmation", receipt.ConfirmationURL)
}

func TestCreateRegistration_InvalidBody(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodPost, "/v1/registrations", "not an object", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRegistration_FieldErrors(t *testing.T) {
	env := setupTestEnv(t)
	record := validRecord()
	record.CPF = "123"
	record.Email = "ana@"
	record.PrivacyTerms = false

	w := env.do(http.MethodPost, "/v1/registrations", record, "")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp ValidationErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, "CPF inválido", resp.Fields["cpf"])
	assert.Equal(t, "E-mail inválido", resp.Fields["email"])
	assert.Contains(t, resp.Fields, "privacyTerms")
	assert.Equal(t, 0, env.participants.Len())
}

func TestCreateRegistration_Duplicates(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, validRecord())

	sameCPF := validRecord()
	sameCPF.Email = "outra@example.com"
	w := env.do(http.MethodPost, "/v1/registrations", sameCPF, "", formInstanceHeader, "form-2")
	require.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, models.ErrDuplicateCPF.Error(), resp.Error)

	sameEmail := validRecord()
	sameEmail.CPF = "555.666.777-88"
	w = env.do(http.MethodPost, "/v1/registrations", sameEmail, "", formInstanceHeader, "form-3")
	require.Equal(t, http.StatusConflict, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, models.ErrDuplicateEmail.Error(), resp.Error)
}

func TestCreateRegistration_FormAlreadySubmitted(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodPost, "/v1/registrations", validRecord(), "", formInstanceHeader, "form-1")
	require.Equal(t, http.StatusCreated, w.Code)

	other := validRecord()
	other.CPF = "555.666.777-88"
	other.Email = "bia@example.com"
	w = env.do(http.MethodPost, "/v1/registrations", other, "", formInstanceHeader, "form-1")

	require.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, models.ErrSubmissionDone.Error(), resp.Error)
	assert.Equal(t, 1, env.participants.Len())
}

func TestCreateRegistration_ServiceUnavailable(t *testing.T) {
	env := setupTestEnv(t)
	services.RegistrationServiceInstance = nil

	w := env.do(http.MethodPost, "/v1/registrations", validRecord(), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestValidateRegistration(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("valid record is normalized", func(t *testing.T) {
		record := validRecord()
		record.CPF = "11122233344"
		record.Email = " ANA@Example.com "

		w := env.do(http.MethodPost, "/v1/registrations/validate", record, "")

		require.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		decode(t, w, &result)
		assert.True(t, result.Valid)
		require.NotNil(t, result.Record)
		assert.Equal(t, "111.222.333-44", result.Record.CPF)
		assert.Equal(t, "ana@example.com", result.Record.Email)
	})

	t.Run("invalid record lists fields", func(t *testing.T) {
		record := validRecord()
		record.FullName = "A"

		w := env.do(http.MethodPost, "/v1/registrations/validate", record, "")

		require.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		decode(t, w, &result)
		assert.False(t, result.Valid)
		assert.Equal(t, "Nome completo é obrigatório", result.Fields["fullName"])
	})

	assert.Equal(t, 0, env.participants.Len())
}

func TestGetRegistrationOptions(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/v1/registrations/options", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var options models.RegistrationOptions
	decode(t, w, &options)
	assert.Equal(t, models.AllRegistrationOptions(), options)
}

func TestGetRegistrationConfirmation(t *testing.T) {
	env := setupTestEnv(t)
	receipt := env.register(t, validRecord())

	w := env.do(http.MethodGet, receipt.ConfirmationURL, nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var confirmation models.Confirmation
	decode(t, w, &confirmation)
	assert.Equal(t, receipt.RegistrationNumber, confirmation.RegistrationNumber)
	assert.Equal(t, "/login", confirmation.RedirectTo)
	assert.Equal(t, 10, confirmation.RedirectAfterSeconds)
	assert.NotContains(t, w.Body.String(), receipt.ProvisionalPassword)
}

func TestGetRegistrationConfirmation_Errors(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/v1/registrations/12ab/confirmation", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/v1/registrations/00000000/confirmation", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSubmissionState(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/v1/registrations/submissions/form-9", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var state SubmissionStateResponse
	decode(t, w, &state)
	assert.Equal(t, string(services.SubmissionIdle), state.State)

	env.do(http.MethodPost, "/v1/registrations", validRecord(), "", formInstanceHeader, "form-9")

	w = env.do(http.MethodGet, "/v1/registrations/submissions/form-9", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &state)
	assert.Equal(t, string(services.SubmissionSucceeded), state.State)

	w = env.do(http.MethodPost, "/v1/registrations", validRecord(), "", formInstanceHeader, "form-10")
	require.Equal(t, http.StatusConflict, w.Code)

	w = env.do(http.MethodGet, "/v1/registrations/submissions/form-10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &state)
	assert.Equal(t, string(services.SubmissionFailed), state.State)
}
