package handlers

import (
	"github.com/concurso-rubens-artero/app-inscricao/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under group. verifier checks the bearer
// token of the workspace and admin routes.
func RegisterRoutes(group *gin.RouterGroup, verifier middleware.TokenVerifier) {
	group.GET("/health", HealthCheck)

	registrations := group.Group("/registrations")
	{
		registrations.POST("", CreateRegistration)
		registrations.POST("/validate", ValidateRegistration)
		registrations.GET("/options", GetRegistrationOptions)
		registrations.GET("/submissions/:instance", GetSubmissionState)
		registrations.GET("/:number/confirmation", GetRegistrationConfirmation)
	}

	group.POST("/auth/login", Login)

	authed := group.Group("")
	authed.Use(middleware.AuthMiddleware(verifier))
	{
		authed.POST("/auth/logout", Logout)
		authed.PUT("/auth/password", ChangePassword)

		authed.GET("/workspace", GetOverview)
		authed.GET("/workspace/profile", GetProfile)
		authed.GET("/workspace/photos", ListPhotos)
		authed.POST("/workspace/photos", UploadPhoto)
		authed.GET("/workspace/photos/:id", GetPhoto)
		authed.PATCH("/workspace/photos/:id", UpdatePhoto)
		authed.DELETE("/workspace/photos/:id", DeletePhoto)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.PUT("/photos/:id/status", ReviewPhoto)
	}
}
