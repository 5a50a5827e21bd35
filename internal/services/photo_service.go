package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
)

const (
	PhotoViewGrid = "grid"
	PhotoViewList = "list"

	photoURLExpiry = 15 * time.Minute
)

// allowedPhotoTypes maps the sniffed content type to the stored extension
var allowedPhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// PhotoSettings configures photo handling
type PhotoSettings struct {
	MaxBytes      int64
	Limit         int
	ContestTitle  string
	PortalBaseURL string
}

// PhotoFile is an uploaded file
type PhotoFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// PhotoService manages the photos of each participant
type PhotoService struct {
	photos       PhotoStore
	participants ParticipantStore
	storage      ObjectStorage
	notifier     Notifier
	form         *FormValidator[models.PhotoMetadata]
	settings     PhotoSettings
	logger       *logging.SafeLogger
	now          func() time.Time
}

// NewPhotoService creates a new photo service. storage may be nil, in
// which case uploads fail with ErrStorageNotAvailable.
func NewPhotoService(photos PhotoStore, participants ParticipantStore, storage ObjectStorage, notifier Notifier, settings PhotoSettings, logger *logging.SafeLogger) *PhotoService {
	if settings.Limit <= 0 {
		settings.Limit = 10
	}
	if settings.MaxBytes <= 0 {
		settings.MaxBytes = 15 << 20
	}
	return &PhotoService{
		photos:       photos,
		participants: participants,
		storage:      storage,
		notifier:     notifier,
		form:         NewFormValidator("photo", PhotoMetadataRules()),
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// Global photo service instance
var PhotoServiceInstance *PhotoService

// InitPhotoService initializes the global photo service
func InitPhotoService(photos PhotoStore, participants ParticipantStore, storage ObjectStorage, notifier Notifier) {
	logger := logging.Logger.Named("photo_service")
	cfg := config.AppConfig

	PhotoServiceInstance = NewPhotoService(photos, participants, storage, notifier, PhotoSettings{
		MaxBytes:      cfg.PhotoMaxBytes,
		Limit:         cfg.PhotoLimit,
		ContestTitle:  cfg.ContestTitle,
		PortalBaseURL: cfg.PortalBaseURL,
	}, logger)

	logger.Info("photo service initialized",
		zap.Int("photo_limit", cfg.PhotoLimit),
		zap.Int64("max_bytes", cfg.PhotoMaxBytes),
		zap.Bool("storage_enabled", storage != nil))
}

// Limit returns the maximum number of photos per participant
func (s *PhotoService) Limit() int {
	return s.settings.Limit
}

// MaxBytes returns the largest accepted photo size
func (s *PhotoService) MaxBytes() int64 {
	return s.settings.MaxBytes
}

// Upload stores a new photo in pending status
func (s *PhotoService) Upload(ctx context.Context, participantID string, meta models.PhotoMetadata, file PhotoFile) (*models.PhotoResponse, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "upload_photo")
	defer span.End()

	if s.storage == nil {
		return nil, models.ErrStorageNotAvailable
	}

	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	if file.Size > s.settings.MaxBytes {
		s.photoOp("upload", "too_large")
		return nil, models.ErrPhotoTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file.Content, s.settings.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if int64(len(data)) > s.settings.MaxBytes {
		s.photoOp("upload", "too_large")
		return nil, models.ErrPhotoTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		s.photoOp("upload", "invalid_type")
		return nil, models.ErrInvalidPhotoType
	}

	if meta.Category == "" {
		meta.Category = participant.Category
	}
	fillFromExif(&meta, data)

	form, fields := s.form.Validate(meta)
	if len(fields) > 0 {
		recordFieldFailures(s.form.Name(), fields)
		return nil, models.NewFieldValidationError(fields)
	}

	count, err := s.photos.CountByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.settings.Limit) {
		s.photoOp("upload", "limit_reached")
		return nil, models.ErrPhotoLimitReached
	}

	id := uuid.NewString()
	key := fmt.Sprintf("participants/%s/%s.%s", participantID, id, ext)
	if err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		s.photoOp("upload", "error")
		return nil, err
	}

	now := s.now().UTC()
	photo := &models.Photo{
		ID:            id,
		ParticipantID: participantID,
		Title:         form.Title,
		Description:   form.Description,
		Category:      form.Category,
		Location:      form.Location,
		Equipment:     form.Equipment,
		Date:          form.Date,
		ObjectKey:     key,
		ContentType:   contentType,
		SizeBytes:     int64(len(data)),
		Status:        models.PhotoStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.photos.Insert(ctx, photo); err != nil {
		s.removeObject(ctx, key)
		s.photoOp("upload", "error")
		return nil, err
	}

	// Concurrent uploads may both pass the first count
	if count, err := s.photos.CountByParticipant(ctx, participantID); err == nil && count > int64(s.settings.Limit) {
		if err := s.photos.Delete(ctx, photo.ID); err != nil {
			s.logger.Error("failed to roll back photo over the limit", zap.String("photo_id", photo.ID), zap.Error(err))
		}
		s.removeObject(ctx, key)
		s.photoOp("upload", "limit_reached")
		return nil, models.ErrPhotoLimitReached
	}

	s.photoOp("upload", "success")
	s.logger.Info("photo uploaded",
		zap.String("participant_id", participantID),
		zap.String("photo_id", photo.ID),
		zap.String("content_type", contentType),
		zap.Int64("size_bytes", photo.SizeBytes))

	return s.toResponse(ctx, photo), nil
}

// fillFromExif defaults equipment and date from the camera metadata
func fillFromExif(meta *models.PhotoMetadata, data []byte) {
	if meta.Equipment != "" && meta.Date != "" {
		return
	}
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	if strings.TrimSpace(meta.Equipment) == "" {
		var parts []string
		for _, field := range []exif.FieldName{exif.Make, exif.Model} {
			if tag, err := x.Get(field); err == nil {
				if value, err := tag.StringVal(); err == nil && strings.TrimSpace(value) != "" {
					parts = append(parts, strings.TrimSpace(value))
				}
			}
		}
		meta.Equipment = strings.Join(parts, " ")
	}
	if strings.TrimSpace(meta.Date) == "" {
		if taken, err := x.DateTime(); err == nil {
			meta.Date = taken.Format("2006-01-02")
		}
	}
}

// List returns the participant's photos, newest first
func (s *PhotoService) List(ctx context.Context, participantID, view string) (*models.PhotoListResponse, error) {
	photos, err := s.photos.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	if view != PhotoViewList {
		view = PhotoViewGrid
	}

	responses := make([]models.PhotoResponse, 0, len(photos))
	for i := range photos {
		responses = append(responses, *s.toResponse(ctx, &photos[i]))
	}

	return &models.PhotoListResponse{
		View:   view,
		Photos: responses,
		Count:  len(responses),
		Limit:  s.settings.Limit,
	}, nil
}

// Count returns how many photos the participant has
func (s *PhotoService) Count(ctx context.Context, participantID string) (int64, error) {
	return s.photos.CountByParticipant(ctx, participantID)
}

// Get returns one of the participant's photos
func (s *PhotoService) Get(ctx context.Context, participantID, photoID string) (*models.PhotoResponse, error) {
	photo, err := s.owned(ctx, participantID, photoID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, photo), nil
}

func (s *PhotoService) owned(ctx context.Context, participantID, photoID string) (*models.Photo, error) {
	photo, err := s.photos.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo.ParticipantID != participantID {
		return nil, models.ErrPhotoNotFound
	}
	return photo, nil
}

// Update changes the metadata of a photo still pending review
func (s *PhotoService) Update(ctx context.Context, participantID, photoID string, update models.PhotoUpdate) (*models.PhotoResponse, error) {
	photo, err := s.owned(ctx, participantID, photoID)
	if err != nil {
		return nil, err
	}
	if photo.Status != models.PhotoStatusPending {
		return nil, models.ErrPhotoNotEditable
	}

	meta := models.PhotoMetadata{
		Title:       photo.Title,
		Description: photo.Description,
		Category:    photo.Category,
		Location:    photo.Location,
		Equipment:   photo.Equipment,
		Date:        photo.Date,
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&meta.Title, update.Title)
	apply(&meta.Description, update.Description)
	apply(&meta.Category, update.Category)
	apply(&meta.Location, update.Location)
	apply(&meta.Equipment, update.Equipment)
	apply(&meta.Date, update.Date)

	form, fields := s.form.Validate(meta)
	if len(fields) > 0 {
		recordFieldFailures(s.form.Name(), fields)
		return nil, models.NewFieldValidationError(fields)
	}

	photo.Title = form.Title
	photo.Description = form.Description
	photo.Category = form.Category
	photo.Location = form.Location
	photo.Equipment = form.Equipment
	photo.Date = form.Date
	photo.UpdatedAt = s.now().UTC()

	if err := s.photos.Update(ctx, photo); err != nil {
		s.photoOp("update", "error")
		return nil, err
	}
	s.photoOp("update", "success")
	return s.toResponse(ctx, photo), nil
}

// Delete removes a photo that has not been approved
func (s *PhotoService) Delete(ctx context.Context, participantID, photoID string) error {
	photo, err := s.owned(ctx, participantID, photoID)
	if err != nil {
		return err
	}
	if photo.Status == models.PhotoStatusApproved {
		return models.ErrPhotoNotDeletable
	}

	if err := s.photos.Delete(ctx, photo.ID); err != nil {
		s.photoOp("delete", "error")
		return err
	}
	s.removeObject(ctx, photo.ObjectKey)
	s.photoOp("delete", "success")

	s.logger.Info("photo deleted",
		zap.String("participant_id", participantID),
		zap.String("photo_id", photo.ID))
	return nil
}

// Review records the jury decision on a photo and notifies its author
func (s *PhotoService) Review(ctx context.Context, photoID string, review models.PhotoReview) (*models.PhotoResponse, error) {
	if review.Status != models.PhotoStatusApproved && review.Status != models.PhotoStatusRejected {
		return nil, models.ErrInvalidPhotoStatus
	}

	photo, err := s.photos.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	photo.Status = review.Status
	photo.ReviewNote = strings.TrimSpace(review.Note)
	photo.UpdatedAt = s.now().UTC()
	if err := s.photos.Update(ctx, photo); err != nil {
		s.photoOp("review", "error")
		return nil, err
	}
	s.photoOp("review", string(review.Status))

	participant, err := s.participants.FindByID(ctx, photo.ParticipantID)
	if err != nil {
		s.logger.Warn("photo reviewed but participant not found",
			zap.String("photo_id", photo.ID),
			zap.Error(err))
	} else {
		msg := PhotoReviewMessage{
			ToEmail:      participant.Email,
			Name:         participant.FullName,
			ContestTitle: s.settings.ContestTitle,
			PhotoTitle:   photo.Title,
			StatusLabel:  photo.Status.Label(),
			Note:         photo.ReviewNote,
			WorkspaceURL: strings.TrimRight(s.settings.PortalBaseURL, "/") + "/workspace",
		}
		if err := s.notifier.SendPhotoReview(ctx, msg); err != nil {
			s.logger.Error("failed to send photo review e-mail",
				zap.String("photo_id", photo.ID),
				zap.Error(err))
		}
	}

	return s.toResponse(ctx, photo), nil
}

func (s *PhotoService) toResponse(ctx context.Context, photo *models.Photo) *models.PhotoResponse {
	resp := &models.PhotoResponse{
		Photo:         *photo,
		StatusLabel:   photo.Status.Label(),
		CategoryLabel: models.CategoryOptions.Label(photo.Category),
	}
	if s.storage != nil && photo.ObjectKey != "" {
		url, err := s.storage.URL(ctx, photo.ObjectKey, photoURLExpiry)
		if err != nil {
			s.logger.Warn("failed to generate photo URL",
				zap.String("photo_id", photo.ID),
				zap.Error(err))
		} else {
			resp.URL = url
		}
	}
	return resp
}

func (s *PhotoService) removeObject(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Remove(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Error("failed to remove photo object", zap.String("key", key), zap.Error(err))
	}
}

func (s *PhotoService) photoOp(operation, status string) {
	observability.PhotoOperations.WithLabelValues(operation, status).Inc()
}
