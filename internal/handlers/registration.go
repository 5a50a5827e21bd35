package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/services"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const formInstanceHeader = "X-Form-Instance"

// CreateRegistration godoc
// @Summary Enviar inscrição
// @Description Valida e registra a inscrição no concurso. Campos inválidos retornam 422 com a mensagem de cada campo. Apenas um envio por formulário (cabeçalho X-Form-Instance) é processado por vez.
// @Tags registrations
// @Accept json
// @Produce json
// @Param X-Form-Instance header string false "Identificador do formulário no cliente (padrão: CPF)"
// @Param data body models.RegistrationRecord true "Dados da inscrição"
// @Success 201 {object} models.RegistrationReceipt "Inscrição realizada com sucesso"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Failure 409 {object} ErrorResponse "CPF ou e-mail já inscritos, ou envio em andamento"
// @Failure 422 {object} ValidationErrorResponse "Campos inválidos"
// @Failure 503 {object} ErrorResponse "Armazenamento indisponível, tente novamente"
// @Router /registrations [post]
func CreateRegistration(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateRegistration")
	defer span.End()

	logger := observability.Logger()
	span.SetAttributes(
		attribute.String("operation", "create_registration"),
		attribute.String("service", "registration"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "registration_record")
	var candidate models.RegistrationRecord
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	parseSpan.End()

	if services.RegistrationServiceInstance == nil {
		logger.Error("registration service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Registration service unavailable"})
		return
	}

	instance := c.GetHeader(formInstanceHeader)
	receipt, err := services.RegistrationServiceInstance.Register(ctx, instance, candidate)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"form_instance": instance})
		respondError(c, err, logger)
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusCreated, receipt)
	responseSpan.End()

	logger.Info("CreateRegistration completed",
		zap.String("registration_number", receipt.RegistrationNumber),
		zap.Duration("total_duration", time.Since(startTime)),
		zap.String("status", "success"))
}

// ValidateRegistration godoc
// @Summary Validar inscrição
// @Description Valida os campos da inscrição sem registrá-la, retornando o registro normalizado ou as mensagens por campo.
// @Tags registrations
// @Accept json
// @Produce json
// @Param data body models.RegistrationRecord true "Dados da inscrição"
// @Success 200 {object} models.ValidationResult "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Corpo da requisição inválido"
// @Router /registrations/validate [post]
func ValidateRegistration(c *gin.Context) {
	var candidate models.RegistrationRecord
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if services.RegistrationServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Registration service unavailable"})
		return
	}

	record, err := services.RegistrationServiceInstance.Validate(candidate)
	if err != nil {
		var fieldErr *models.FieldValidationError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusOK, models.ValidationResult{Valid: false, Fields: fieldErr.Fields})
			return
		}
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, models.ValidationResult{Valid: true, Record: record})
}

// GetRegistrationOptions godoc
// @Summary Opções dos campos de seleção
// @Description Retorna os valores aceitos, com rótulos, de cada campo de seleção do formulário.
// @Tags registrations
// @Produce json
// @Success 200 {object} models.RegistrationOptions "Opções disponíveis"
// @Router /registrations/options [get]
func GetRegistrationOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllRegistrationOptions())
}

// GetRegistrationConfirmation godoc
// @Summary Confirmação da inscrição
// @Description Dados da tela de confirmação exibida após o envio. Nunca inclui a senha provisória.
// @Tags registrations
// @Produce json
// @Param number path string true "Número de inscrição (8 dígitos)"
// @Success 200 {object} models.Confirmation "Dados da confirmação"
// @Failure 400 {object} ErrorResponse "Número de inscrição inválido"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Router /registrations/{number}/confirmation [get]
func GetRegistrationConfirmation(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetRegistrationConfirmation")
	defer span.End()

	number := c.Param("number")
	if len(number) != 8 || utils.OnlyDigits(number) != number {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid registration number"})
		return
	}

	if services.RegistrationServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Registration service unavailable"})
		return
	}

	confirmation, err := services.RegistrationServiceInstance.Confirmation(ctx, number)
	if err != nil {
		respondError(c, err, observability.Logger())
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// SubmissionStateResponse is the state of a form instance
type SubmissionStateResponse struct {
	Instance string `json:"instance"`
	State    string `json:"state" example:"idle"`
}

// GetSubmissionState godoc
// @Summary Estado do envio
// @Description Informa se o formulário está livre, com envio em andamento ou já enviado.
// @Tags registrations
// @Produce json
// @Param instance path string true "Identificador do formulário"
// @Success 200 {object} SubmissionStateResponse "Estado atual"
// @Failure 503 {object} ErrorResponse "Armazenamento indisponível"
// @Router /registrations/submissions/{instance} [get]
func GetSubmissionState(c *gin.Context) {
	if services.RegistrationServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Registration service unavailable"})
		return
	}

	instance := c.Param("instance")
	state, err := services.RegistrationServiceInstance.SubmissionState(c.Request.Context(), instance)
	if err != nil {
		observability.Logger().Warn("failed to read submission state", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: models.ErrStoreUnavailable.Error()})
		return
	}
	c.JSON(http.StatusOK, SubmissionStateResponse{Instance: instance, State: string(state)})
}
