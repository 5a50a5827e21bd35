package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PhotoStore persists photo metadata
type PhotoStore interface {
	Insert(ctx context.Context, photo *models.Photo) error
	FindByID(ctx context.Context, id string) (*models.Photo, error)
	ListByParticipant(ctx context.Context, participantID string) ([]models.Photo, error)
	CountByParticipant(ctx context.Context, participantID string) (int64, error)
	Update(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id string) error
}

// MongoPhotoStore is the MongoDB implementation of PhotoStore
type MongoPhotoStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoPhotoStore creates a store over the given collection
func NewMongoPhotoStore(db *mongo.Database, collection string) *MongoPhotoStore {
	return &MongoPhotoStore{
		collection: db.Collection(collection),
		timeout:    10 * time.Second,
	}
}

func (s *MongoPhotoStore) Insert(ctx context.Context, photo *models.Photo) error {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "insert", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, photo); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "insert_photo"})
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return fmt.Errorf("failed to insert photo: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	return nil
}

func (s *MongoPhotoStore) FindByID(ctx context.Context, id string) (*models.Photo, error) {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "find_one", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var photo models.Photo
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrPhotoNotFound
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "find_photo"})
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to find photo: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return &photo, nil
}

func (s *MongoPhotoStore) ListByParticipant(ctx context.Context, participantID string) ([]models.Photo, error) {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "find", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"participant_id": participantID}, opts)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "list_photos"})
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []models.Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	utils.AddSpanAttribute(span, "photos_found", len(photos))
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return photos, nil
}

func (s *MongoPhotoStore) CountByParticipant(ctx context.Context, participantID string) (int64, error) {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "count", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx, bson.M{"participant_id": participantID})
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "count_photos"})
		observability.DatabaseOperations.WithLabelValues("count", "error").Inc()
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("count", "success").Inc()
	return count, nil
}

func (s *MongoPhotoStore) Update(ctx context.Context, photo *models.Photo) error {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "update", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": photo.ID}, photo)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "update_photo"})
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrPhotoNotFound
	}
	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()
	return nil
}

func (s *MongoPhotoStore) Delete(ctx context.Context, id string) error {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "delete", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "delete_photo"})
		observability.DatabaseOperations.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrPhotoNotFound
	}
	observability.DatabaseOperations.WithLabelValues("delete", "success").Inc()
	return nil
}
