package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/middleware"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// multipartOverhead is the room left for form fields around the file part
const multipartOverhead = 1 << 20

// participantFromContext returns the participant id of the session or writes
// a 401 response
func participantFromContext(c *gin.Context) (string, bool) {
	participantID, err := middleware.ParticipantID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return "", false
	}
	return participantID, true
}

// GetProfile godoc
// @Summary Perfil do participante
// @Description Dados somente leitura do participante logado, com CPF mascarado e contagem de fotos.
// @Tags workspace
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ParticipantProfile "Perfil"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} ErrorResponse "Participante não encontrado"
// @Router /workspace/profile [get]
func GetProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetProfile")
	defer span.End()

	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("participant_id", participantID))

	if services.WorkspaceServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Workspace service unavailable"})
		return
	}

	profile, err := services.WorkspaceServiceInstance.Profile(ctx, participantID)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetOverview godoc
// @Summary Painel do participante
// @Description Perfil e galeria de fotos do participante logado em uma única chamada.
// @Tags workspace
// @Produce json
// @Security BearerAuth
// @Param view query string false "Modo de exibição (grid ou list)" default(grid)
// @Success 200 {object} models.WorkspaceOverview "Painel"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} ErrorResponse "Participante não encontrado"
// @Router /workspace [get]
func GetOverview(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetOverview")
	defer span.End()

	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}

	if services.WorkspaceServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Workspace service unavailable"})
		return
	}

	overview, err := services.WorkspaceServiceInstance.Overview(ctx, participantID, c.Query("view"))
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		respondError(c, err, observability.Logger())
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, overview)
	responseSpan.End()

	observability.Logger().Debug("GetOverview completed",
		zap.String("participant_id", participantID),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ListPhotos godoc
// @Summary Listar fotos
// @Description Fotos enviadas pelo participante, da mais recente para a mais antiga.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param view query string false "Modo de exibição (grid ou list)" default(grid)
// @Success 200 {object} models.PhotoListResponse "Galeria"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Router /workspace/photos [get]
func ListPhotos(c *gin.Context) {
	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	list, err := services.PhotoServiceInstance.List(c.Request.Context(), participantID, c.Query("view"))
	if err != nil {
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, list)
}

// UploadPhoto godoc
// @Summary Enviar foto
// @Description Envia uma foto (JPEG, PNG ou WebP) com seus metadados. Equipamento e data são preenchidos pelo EXIF quando ausentes.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Arquivo da foto"
// @Param title formData string true "Título"
// @Param description formData string false "Descrição"
// @Param category formData string false "Categoria (padrão: a da inscrição)"
// @Param location formData string false "Local"
// @Param equipment formData string false "Equipamento"
// @Param date formData string false "Data da foto (AAAA-MM-DD)"
// @Success 201 {object} models.PhotoResponse "Foto enviada"
// @Failure 400 {object} ErrorResponse "Formulário inválido"
// @Failure 409 {object} ErrorResponse "Limite de fotos atingido"
// @Failure 413 {object} ErrorResponse "Foto maior que o permitido"
// @Failure 415 {object} ErrorResponse "Tipo de imagem não suportado"
// @Failure 422 {object} ValidationErrorResponse "Campos inválidos"
// @Failure 503 {object} ErrorResponse "Armazenamento de fotos indisponível"
// @Router /workspace/photos [post]
func UploadPhoto(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UploadPhoto")
	defer span.End()

	logger := observability.Logger()

	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("participant_id", participantID))

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.PhotoServiceInstance.MaxBytes()+multipartOverhead)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "multipart_photo")
	header, err := c.FormFile("file")
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: models.ErrPhotoTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Photo file is required"})
		return
	}

	var meta models.PhotoMetadata
	if err := c.ShouldBind(&meta); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid photo metadata"})
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read photo file"})
		return
	}
	defer file.Close()
	parseSpan.End()

	photo, err := services.PhotoServiceInstance.Upload(ctx, participantID, meta, services.PhotoFile{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		respondError(c, err, logger)
		return
	}

	c.JSON(http.StatusCreated, photo)
	logger.Info("UploadPhoto completed",
		zap.String("participant_id", participantID),
		zap.String("photo_id", photo.ID),
		zap.Duration("total_duration", time.Since(startTime)))
}

// GetPhoto godoc
// @Summary Detalhes da foto
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da foto"
// @Success 200 {object} models.PhotoResponse "Foto"
// @Failure 404 {object} ErrorResponse "Foto não encontrada"
// @Router /workspace/photos/{id} [get]
func GetPhoto(c *gin.Context) {
	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	photo, err := services.PhotoServiceInstance.Get(c.Request.Context(), participantID, c.Param("id"))
	if err != nil {
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, photo)
}

// UpdatePhoto godoc
// @Summary Editar metadados da foto
// @Description Altera os metadados enquanto a foto aguarda avaliação. Campos omitidos não são alterados.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da foto"
// @Param data body models.PhotoUpdate true "Campos a alterar"
// @Success 200 {object} models.PhotoResponse "Foto atualizada"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Failure 404 {object} ErrorResponse "Foto não encontrada"
// @Failure 409 {object} ErrorResponse "Foto já avaliada"
// @Failure 422 {object} ValidationErrorResponse "Campos inválidos"
// @Router /workspace/photos/{id} [patch]
func UpdatePhoto(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePhoto")
	defer span.End()

	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}

	var update models.PhotoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	photo, err := services.PhotoServiceInstance.Update(ctx, participantID, c.Param("id"), update)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"photo_id": c.Param("id")})
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, photo)
}

// DeletePhoto godoc
// @Summary Excluir foto
// @Description Exclui a foto e o arquivo armazenado. Fotos aprovadas não podem ser excluídas.
// @Tags photos
// @Security BearerAuth
// @Param id path string true "ID da foto"
// @Success 204 "Foto excluída"
// @Failure 404 {object} ErrorResponse "Foto não encontrada"
// @Failure 409 {object} ErrorResponse "Foto aprovada"
// @Router /workspace/photos/{id} [delete]
func DeletePhoto(c *gin.Context) {
	participantID, ok := participantFromContext(c)
	if !ok {
		return
	}

	if services.PhotoServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Photo service unavailable"})
		return
	}

	if err := services.PhotoServiceInstance.Delete(c.Request.Context(), participantID, c.Param("id")); err != nil {
		respondError(c, err, observability.Logger())
		return
	}
	c.Status(http.StatusNoContent)
}
