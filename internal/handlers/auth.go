package handlers

import (
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

// Login godoc
// @Summary Entrar na área do participante
// @Description Autentica com e-mail e senha. No primeiro acesso a resposta indica que a senha provisória deve ser trocada.
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.LoginResponse "Sessão criada"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Failure 401 {object} ErrorResponse "E-mail ou senha inválidos"
// @Failure 422 {object} ValidationErrorResponse "Campos inválidos"
// @Failure 429 {object} ErrorResponse "Muitas tentativas, aguarde"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Login")
	defer span.End()

	logger := observability.Logger()
	span.SetAttributes(attribute.String("operation", "login"))

	ctx, parseSpan := utils.TraceInputParsing(ctx, "login_request")
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	parseSpan.End()

	if services.AuthServiceInstance == nil {
		logger.Error("auth service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication unavailable"})
		return
	}

	resp, err := services.AuthServiceInstance.Login(ctx, req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		respondError(c, err, logger)
		return
	}

	c.JSON(http.StatusOK, resp)
	logger.Debug("Login completed",
		zap.Bool("must_change_password", resp.MustChangePassword),
		zap.Duration("total_duration", time.Since(startTime)))
}

// Logout godoc
// @Summary Encerrar sessão
// @Description Revoga o token atual até o fim da sua validade.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "Sessão encerrada"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	if services.AuthServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication unavailable"})
		return
	}

	if err := services.AuthServiceInstance.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// ChangePassword godoc
// @Summary Trocar senha
// @Description Troca a senha do participante. Obrigatório no primeiro acesso com a senha provisória.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.PasswordChangeRequest true "Senha atual e nova senha"
// @Success 200 {object} MessageResponse "Senha alterada"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Failure 401 {object} ErrorResponse "Senha atual incorreta"
// @Failure 422 {object} ValidationErrorResponse "Campos inválidos"
// @Router /auth/password [put]
func ChangePassword(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ChangePassword")
	defer span.End()

	participantID, err := middleware.ParticipantID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if services.AuthServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication unavailable"})
		return
	}

	if err := services.AuthServiceInstance.ChangePassword(ctx, participantID, req); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"participant_id": participantID})
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed"})
}
