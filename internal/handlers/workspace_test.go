package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// upload posts a multipart photo with the given form fields
func (e *testEnv) upload(t *testing.T, token string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if content != nil {
		part, err := writer.CreateFormFile("file", "foto.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/workspace/photos", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// uploadPhoto uploads a valid photo and returns it
func (e *testEnv) uploadPhoto(t *testing.T, token, title string) models.PhotoResponse {
	t.Helper()
	w := e.upload(t, token, pngHeader, map[string]string{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var photo models.PhotoResponse
	decode(t, w, &photo)
	return photo
}

func adminRecord() models.RegistrationRecord {
	record := validRecord()
	record.CPF = "999.888.777-66"
	record.Email = testAdminEmail
	record.FullName = "Júri do Concurso"
	return record
}

func TestGetProfile(t *testing.T) {
	env := setupTestEnv(t)
	token, receipt := env.participantToken(t, validRecord())

	w := env.do(http.MethodGet, "/v1/workspace/profile", nil, token)

	require.Equal(t, http.StatusOK, w.Code)
	var profile models.ParticipantProfile
	decode(t, w, &profile)
	assert.Equal(t, receipt.RegistrationNumber, profile.RegistrationNumber)
	assert.Equal(t, "Ana Souza", profile.Name)
	assert.Equal(t, "Retrato", profile.CategoryLabel)
	assert.NotContains(t, profile.CPF, "222")
	assert.Equal(t, 2, profile.PhotoLimit)
	assert.True(t, profile.MustChangePassword)
}

func TestUploadPhoto(t *testing.T) {
	env := setupTestEnv(t)
	token, receipt := env.participantToken(t, validRecord())

	photo := env.uploadPhoto(t, token, "Pôr do sol")

	assert.Equal(t, receipt.ParticipantID, photo.ParticipantID)
	assert.Equal(t, "retrato", photo.Category)
	assert.Equal(t, models.PhotoStatusPending, photo.Status)
	assert.Equal(t, "Pendente", photo.StatusLabel)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.NotEmpty(t, photo.URL)
	assert.Equal(t, 1, env.storage.Len())
}

func TestUploadPhoto_Rejections(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.participantToken(t, validRecord())

	tests := []struct {
		name    string
		content []byte
		fields  map[string]string
		status  int
	}{
		{"missing file", nil, map[string]string{"title": "Sem arquivo"}, http.StatusBadRequest},
		{"not an image", []byte("just some text, not a photo"), map[string]string{"title": "Texto"}, http.StatusUnsupportedMediaType},
		{"too large", append(append([]byte{}, pngHeader...), make([]byte, 4096)...), map[string]string{"title": "Grande"}, http.StatusRequestEntityTooLarge},
		{"invalid title", pngHeader, map[string]string{"title": "A"}, http.StatusUnprocessableEntity},
		{"invalid category", pngHeader, map[string]string{"title": "Foto", "category": "selfie"}, http.StatusUnprocessableEntity},
		{"invalid date", pngHeader, map[string]string{"title": "Foto", "date": "15/03/2026"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.upload(t, token, tt.content, tt.fields)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
	assert.Equal(t, 0, env.storage.Len())
}

func TestUploadPhoto_LimitReached(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.participantToken(t, validRecord())

	env.uploadPhoto(t, token, "Primeira")
	env.uploadPhoto(t, token, "Segunda")

	w := env.upload(t, token, pngHeader, map[string]string{"title": "Terceira"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 2, env.storage.Len())
}

func TestListPhotosAndOverview(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.participantToken(t, validRecord())
	env.uploadPhoto(t, token, "Primeira")

	w := env.do(http.MethodGet, "/v1/workspace/photos?view=list", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.PhotoListResponse
	decode(t, w, &list)
	assert.Equal(t, "list", list.View)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, 2, list.Limit)

	w = env.do(http.MethodGet, "/v1/workspace?view=unknown", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var overview models.WorkspaceOverview
	decode(t, w, &overview)
	require.NotNil(t, overview.Profile)
	require.NotNil(t, overview.Photos)
	assert.Equal(t, "grid", overview.Photos.View)
	assert.Equal(t, int64(1), overview.Profile.PhotoCount)
}

func TestPhotoOwnership(t *testing.T) {
	env := setupTestEnv(t)
	ownerToken, _ := env.participantToken(t, validRecord())
	photo := env.uploadPhoto(t, ownerToken, "Minha foto")

	other := validRecord()
	other.CPF = "555.666.777-88"
	other.Email = "bia@example.com"
	otherToken, _ := env.participantToken(t, other)

	path := "/v1/workspace/photos/" + photo.ID
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, path, nil, otherToken).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, path, nil, otherToken).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, path, nil, ownerToken).Code)
}

func TestUpdateAndDeletePhoto(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.participantToken(t, validRecord())
	photo := env.uploadPhoto(t, token, "Antes")
	path := "/v1/workspace/photos/" + photo.ID

	title := "Depois"
	w := env.do(http.MethodPatch, path, models.PhotoUpdate{Title: &title}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.PhotoResponse
	decode(t, w, &updated)
	assert.Equal(t, "Depois", updated.Title)
	assert.Equal(t, "retrato", updated.Category)

	bad := "x"
	w = env.do(http.MethodPatch, path, models.PhotoUpdate{Title: &bad}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, env.storage.Len())

	w = env.do(http.MethodGet, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewPhoto(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.participantToken(t, validRecord())
	photo := env.uploadPhoto(t, token, "Para o júri")
	adminToken, _ := env.participantToken(t, adminRecord())
	reviewPath := "/v1/admin/photos/" + photo.ID + "/status"

	t.Run("participants cannot review", func(t *testing.T) {
		w := env.do(http.MethodPut, reviewPath, models.PhotoReview{Status: models.PhotoStatusApproved}, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("pending is not a review decision", func(t *testing.T) {
		w := env.do(http.MethodPut, reviewPath, models.PhotoReview{Status: models.PhotoStatusPending}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("approve", func(t *testing.T) {
		w := env.do(http.MethodPut, reviewPath, models.PhotoReview{Status: models.PhotoStatusApproved, Note: " Ótima luz "}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reviewed models.PhotoResponse
		decode(t, w, &reviewed)
		assert.Equal(t, models.PhotoStatusApproved, reviewed.Status)
		assert.Equal(t, "Aprovada", reviewed.StatusLabel)
		assert.Equal(t, "Ótima luz", reviewed.ReviewNote)
	})

	t.Run("approved photos are locked", func(t *testing.T) {
		path := "/v1/workspace/photos/" + photo.ID
		title := "Outro título"
		assert.Equal(t, http.StatusConflict, env.do(http.MethodPatch, path, models.PhotoUpdate{Title: &title}, token).Code)
		assert.Equal(t, http.StatusConflict, env.do(http.MethodDelete, path, nil, token).Code)
	})

	t.Run("unknown photo", func(t *testing.T) {
		w := env.do(http.MethodPut, "/v1/admin/photos/missing/status", models.PhotoReview{Status: models.PhotoStatusRejected}, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
