package handlers

import (
	"net/http"

	"github.com/concurso-rubens-artero/app-inscricao/internal/middleware"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ReviewPhoto godoc
// @Summary Avaliar foto
// @Description Aprova ou reprova uma foto. O participante é avisado por e-mail.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da foto"
// @Param data body models.PhotoReview true "Decisão do júri"
// @Success 200 {object} models.PhotoResponse "Foto avaliada"
// @Failure 400 {object} ErrorResponse "Status inválido"
// @Failure 403 {object} ErrorResponse "Acesso restrito à organização"
// @Failure 404 {object} ErrorResponse "Foto não encontrada"
// @Router /admin/photos/{id}/status [put]
func ReviewPhoto(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ReviewPhoto")
	defer span.End()

	var review models.PhotoReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	photoID := c.Param("id")
	photo, err := services.PhotoServiceInstance.Review(ctx, photoID, review)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"photo_id": photoID})
		respondError(c, err, observability.Logger())
		return
	}

	reviewer := ""
	if claims, err := middleware.GetClaims(c); err == nil {
		reviewer = claims.Email
	}
	observability.Logger().Info("photo reviewed",
		zap.String("photo_id", photoID),
		zap.String("status", string(photo.Status)),
		zap.String("reviewer", observability.MaskEmail(reviewer)))

	c.JSON(http.StatusOK, photo)
}
