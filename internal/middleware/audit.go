package middleware

import (
	"net/http"
	"strings"

	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditMiddleware logs every write request with who made it and how it
// ended. Request bodies are never logged; they carry CPF, bank and
// password fields.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if !isWriteMethod(method) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/v1/health") || strings.HasPrefix(path, "/metrics") {
			c.Next()
			return
		}

		c.Next()

		fields := []zap.Field{
			zap.String("action", mapHTTPMethodToAction(method)),
			zap.String("resource", extractResourceFromPath(path)),
			zap.String("endpoint", path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip_address", c.ClientIP()),
			zap.String("request_id", c.GetString("RequestID")),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("resource_id", id))
		}
		if claims, err := GetClaims(c); err == nil {
			fields = append(fields,
				zap.String("actor", claims.Subject),
				zap.String("role", claims.Role))
		}

		observability.Logger().Info("audit", fields...)
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// mapHTTPMethodToAction maps HTTP methods to audit actions
func mapHTTPMethodToAction(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// extractResourceFromPath returns the first path segment after the version
func extractResourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 0 && parts[0] == "v1" {
		parts = parts[1:]
	}
	if len(parts) == 0 || parts[0] == "" {
		return "unknown"
	}
	if parts[0] == "admin" && len(parts) > 1 {
		return "admin_" + parts[1]
	}
	return parts[0]
}
