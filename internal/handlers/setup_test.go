package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret     = "handlers-test-secret"
	testAdminEmail = "juri@example.com"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires every service to in-memory stores and mounts the routes
type testEnv struct {
	participants *services.MemoryParticipantStore
	photos       *services.MemoryPhotoStore
	storage      *services.MemoryStorage
	router       *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := logging.NewSafeLogger(zap.NewNop())

	prevMongo, prevRedis := config.MongoDB, config.Redis
	config.MongoDB, config.Redis = nil, nil

	env := &testEnv{
		participants: services.NewMemoryParticipantStore(),
		photos:       services.NewMemoryPhotoStore(),
		storage:      services.NewMemoryStorage("test-photos"),
	}
	notifier := services.NewLogNotifier(logger)

	control := services.NewSubmissionControl(services.NewMemorySubmissionGuard(time.Minute, time.Hour), nil, logger)
	services.RegistrationServiceInstance = services.NewRegistrationService(env.participants, control, notifier,
		services.RegistrationSettings{ContestTitle: "Concurso de Fotografia", PortalBaseURL: "https://portal.example.com"}, logger)

	services.AuthServiceInstance = services.NewAuthService(env.participants,
		services.NewLoginThrottle(nil, 3, time.Minute, logger), nil,
		services.AuthSettings{
			Secret:  testSecret,
			Issuer:  "app-inscricao-test",
			TTL:     time.Hour,
			IsAdmin: func(email string) bool { return email == testAdminEmail },
		}, logger)

	services.PhotoServiceInstance = services.NewPhotoService(env.photos, env.participants, env.storage, notifier,
		services.PhotoSettings{MaxBytes: 2048, Limit: 2, ContestTitle: "Concurso de Fotografia"}, logger)
	services.WorkspaceServiceInstance = services.NewWorkspaceService(env.participants, services.PhotoServiceInstance, logger)

	env.router = gin.New()
	RegisterRoutes(env.router.Group("/v1"), services.AuthServiceInstance)

	t.Cleanup(func() {
		services.RegistrationServiceInstance = nil
		services.AuthServiceInstance = nil
		services.PhotoServiceInstance = nil
		services.WorkspaceServiceInstance = nil
		config.MongoDB, config.Redis = prevMongo, prevRedis
	})
	return env
}

// do sends a JSON request and returns the recorder
func (e *testEnv) do(method, path string, body interface{}, token string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register submits a valid registration and returns its receipt
func (e *testEnv) register(t *testing.T, record models.RegistrationRecord) models.RegistrationReceipt {
	t.Helper()
	w := e.do(http.MethodPost, "/v1/registrations", record, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var receipt models.RegistrationReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	return receipt
}

// login returns a session token for email and password
func (e *testEnv) login(t *testing.T, email, password string) models.LoginResponse {
	t.Helper()
	w := e.do(http.MethodPost, "/v1/auth/login", models.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// participantToken registers a participant and logs in with the
// provisional password
func (e *testEnv) participantToken(t *testing.T, record models.RegistrationRecord) (string, models.RegistrationReceipt) {
	t.Helper()
	receipt := e.register(t, record)
	return e.login(t, receipt.Login, receipt.ProvisionalPassword).AccessToken, receipt
}

func validRecord() models.RegistrationRecord {
	return models.RegistrationRecord{
		Category:      "retrato",
		CPF:           "111.222.333-44",
		FullName:      "Ana Souza",
		BirthDate:     "01/01/1990",
		MotherName:    "Maria Souza",
		Gender:        "feminino",
		Email:         "ana@example.com",
		Phone:         "(11) 99988-7766",
		HowDidYouKnow: "instagram",
		CEP:           "01001-000",
		Address:       "Praça da Sé",
		AddressNumber: "100",
		Neighborhood:  "Sé",
		City:          "São Paulo",
		Bank:          "341",
		AccountType:   "corrente",
		Agency:        "1234",
		Account:       "56789-0",
		ImageRights:   true,
		PrivacyTerms:  true,
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
