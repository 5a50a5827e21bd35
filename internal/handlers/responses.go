package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the fields that failed validation, each
// with the message to show next to it
type ValidationErrorResponse struct {
	Error  string             `json:"error" example:"Validation failed"`
	Fields models.FieldErrors `json:"fields"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// errorStatuses maps domain errors to HTTP statuses, first match wins
var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{models.ErrSubmissionInFlight, http.StatusConflict},
	{models.ErrSubmissionDone, http.StatusConflict},
	{models.ErrDuplicateCPF, http.StatusConflict},
	{models.ErrDuplicateEmail, http.StatusConflict},
	{models.ErrPhotoLimitReached, http.StatusConflict},
	{models.ErrPhotoNotEditable, http.StatusConflict},
	{models.ErrPhotoNotDeletable, http.StatusConflict},
	{models.ErrParticipantNotFound, http.StatusNotFound},
	{models.ErrPhotoNotFound, http.StatusNotFound},
	{models.ErrInvalidCredentials, http.StatusUnauthorized},
	{models.ErrTokenRevoked, http.StatusUnauthorized},
	{models.ErrTooManyAttempts, http.StatusTooManyRequests},
	{models.ErrInvalidPhotoType, http.StatusUnsupportedMediaType},
	{models.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge},
	{models.ErrInvalidPhotoStatus, http.StatusBadRequest},
	{models.ErrStorageNotAvailable, http.StatusServiceUnavailable},
}

// statusForError returns the HTTP status and public message of err
func statusForError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError writes err as a JSON error response
func respondError(c *gin.Context, err error, logger *logging.SafeLogger) {
	var fieldErr *models.FieldValidationError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: fieldErr.Fields,
		})
		return
	}

	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: message})
}
