package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{models.ErrDuplicateCPF, http.StatusConflict},
		{models.NewSubmissionError(models.ErrDuplicateEmail), http.StatusConflict},
		{fmt.Errorf("insert: %w", models.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{models.ErrPhotoNotFound, http.StatusNotFound},
		{models.ErrTooManyAttempts, http.StatusTooManyRequests},
		{models.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge},
		{models.ErrInvalidPhotoType, http.StatusUnsupportedMediaType},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := statusForError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStatusForError_HidesInternalDetails(t *testing.T) {
	_, message := statusForError(fmt.Errorf("mongo: connection refused to 10.0.0.3"))
	assert.Equal(t, "Internal server error", message)
}
