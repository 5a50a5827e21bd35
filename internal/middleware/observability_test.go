package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req, _ := http.NewRequest("GET", "/test?cpf=11122233344", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestTracker_RecordsDuration(t *testing.T) {
	router := gin.New()
	router.Use(RequestTracker())
	router.GET("/tracked/:id", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	before := testutil.CollectAndCount(observability.RequestDuration)

	req, _ := http.NewRequest("GET", "/tracked/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.CollectAndCount(observability.RequestDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(observability.ActiveConnections))
}

func TestRequestTracker_Unmatched(t *testing.T) {
	router := gin.New()
	router.Use(RequestTracker())

	req, _ := http.NewRequest("GET", "/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("RequestID"))
	})

	t.Run("generated", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("unique", func(t *testing.T) {
		ids := map[string]bool{}
		for i := 0; i < 50; i++ {
			req, _ := http.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			ids[w.Header().Get("X-Request-ID")] = true
		}
		assert.Len(t, ids, 50)
	})
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.POST("/v1/registrations", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req, _ := http.NewRequest(http.MethodOptions, "/v1/registrations", nil)
	req.Header.Set("Origin", "https://concurso.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "X-Form-Instance")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Form-Instance")
}
