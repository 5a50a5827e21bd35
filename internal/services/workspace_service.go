package services

import (
	"context"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WorkspaceService builds the participant area views
type WorkspaceService struct {
	participants ParticipantStore
	photos       *PhotoService
	logger       *logging.SafeLogger
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(participants ParticipantStore, photos *PhotoService, logger *logging.SafeLogger) *WorkspaceService {
	return &WorkspaceService{participants: participants, photos: photos, logger: logger}
}

// Global workspace service instance
var WorkspaceServiceInstance *WorkspaceService

// InitWorkspaceService initializes the global workspace service
func InitWorkspaceService(participants ParticipantStore, photos *PhotoService) {
	logger := logging.Logger.Named("workspace_service")
	WorkspaceServiceInstance = NewWorkspaceService(participants, photos, logger)
	logger.Info("workspace service initialized")
}

// Profile returns the read-only registration data of the participant
func (s *WorkspaceService) Profile(ctx context.Context, participantID string) (*models.ParticipantProfile, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "workspace_profile")
	defer span.End()

	var (
		participant *models.Participant
		count       int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participant, err = s.participants.FindByID(gctx, participantID)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.photos.Count(gctx, participantID)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"participant_id": participantID})
		return nil, err
	}

	return s.profile(participant, count), nil
}

func (s *WorkspaceService) profile(p *models.Participant, photoCount int64) *models.ParticipantProfile {
	return &models.ParticipantProfile{
		ParticipantID:      p.ID,
		RegistrationNumber: p.RegistrationNumber,
		Name:               p.FullName,
		Email:              p.Email,
		Phone:              p.Phone,
		Category:           p.Category,
		CategoryLabel:      models.CategoryOptions.Label(p.Category),
		CPF:                observability.MaskCPF(p.CPF),
		City:               p.Address.City,
		RegistrationDate:   p.CreatedAt.Format("02/01/2006"),
		PhotoCount:         photoCount,
		PhotoLimit:         s.photos.Limit(),
		MustChangePassword: p.MustChangePassword,
	}
}

// Overview returns the profile and the photo list in one call
func (s *WorkspaceService) Overview(ctx context.Context, participantID, view string) (*models.WorkspaceOverview, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "workspace_overview")
	defer span.End()

	var (
		participant *models.Participant
		photos      *models.PhotoListResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participant, err = s.participants.FindByID(gctx, participantID)
		return err
	})
	g.Go(func() error {
		var err error
		photos, err = s.photos.List(gctx, participantID, view)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Debug("workspace overview failed",
			zap.String("participant_id", participantID),
			zap.Error(err))
		return nil, err
	}

	return &models.WorkspaceOverview{
		Profile: s.profile(participant, int64(photos.Count)),
		Photos:  photos,
	}, nil
}
