package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuditMiddleware_PassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(AuditMiddleware())
	router.POST("/v1/registrations", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.GET("/v1/registrations/options", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, tc := range []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/v1/registrations", http.StatusCreated},
		{http.MethodGet, "/v1/registrations/options", http.StatusOK},
	} {
		req, _ := http.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code)
	}
}

func TestMapHTTPMethodToAction(t *testing.T) {
	assert.Equal(t, "create", mapHTTPMethodToAction(http.MethodPost))
	assert.Equal(t, "update", mapHTTPMethodToAction(http.MethodPut))
	assert.Equal(t, "update", mapHTTPMethodToAction(http.MethodPatch))
	assert.Equal(t, "delete", mapHTTPMethodToAction(http.MethodDelete))
	assert.Equal(t, "unknown", mapHTTPMethodToAction(http.MethodGet))
}

func TestExtractResourceFromPath(t *testing.T) {
	tests := map[string]string{
		"/v1/registrations":           "registrations",
		"/v1/workspace/photos/abc":    "workspace",
		"/v1/admin/photos/abc/status": "admin_photos",
		"/v1/auth/login":              "auth",
		"/":                           "unknown",
		"/v1":                         "unknown",
	}
	for path, want := range tests {
		assert.Equal(t, want, extractResourceFromPath(path), path)
	}
}
