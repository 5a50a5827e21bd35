package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the registration site and the participant portal to call
// the API from the browser
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "X-Form-Instance", requestIDHeader)
	config.ExposeHeaders = []string{requestIDHeader}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
