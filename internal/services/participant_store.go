package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// errRegistrationNumberTaken signals a registration number collision; the
// caller draws a new number and retries
var errRegistrationNumberTaken = errors.New("registration number already in use")

// ParticipantStore persists participants. Insert reports uniqueness
// violations as ErrDuplicateCPF, ErrDuplicateEmail or
// errRegistrationNumberTaken.
type ParticipantStore interface {
	Insert(ctx context.Context, participant *models.Participant) error
	FindByID(ctx context.Context, id string) (*models.Participant, error)
	FindByEmail(ctx context.Context, email string) (*models.Participant, error)
	FindByRegistrationNumber(ctx context.Context, number string) (*models.Participant, error)
	ExistsByCPF(ctx context.Context, cpfDigits string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error
}

// MongoParticipantStore is the MongoDB implementation of ParticipantStore
type MongoParticipantStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoParticipantStore creates a store over the given collection
func NewMongoParticipantStore(db *mongo.Database, collection string) *MongoParticipantStore {
	return &MongoParticipantStore{
		collection: db.Collection(collection),
		timeout:    10 * time.Second,
	}
}

func (s *MongoParticipantStore) Insert(ctx context.Context, participant *models.Participant) error {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "insert", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, participant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			observability.DatabaseOperations.WithLabelValues("insert", "conflict").Inc()
			return duplicateParticipantError(err)
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "insert_participant"})
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	return nil
}

// duplicateParticipantError maps a duplicate key error to the violated index
func duplicateParticipantError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "cpf_1"):
		return models.ErrDuplicateCPF
	case strings.Contains(msg, "email_1"):
		return models.ErrDuplicateEmail
	case strings.Contains(msg, "registration_number_1"):
		return errRegistrationNumberTaken
	default:
		return fmt.Errorf("duplicate participant: %w", err)
	}
}

func (s *MongoParticipantStore) findOne(ctx context.Context, filter bson.M) (*models.Participant, error) {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "find_one", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var participant models.Participant
	err := s.collection.FindOne(ctx, filter).Decode(&participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			observability.DatabaseOperations.WithLabelValues("find", "not_found").Inc()
			return nil, models.ErrParticipantNotFound
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "find_participant"})
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return &participant, nil
}

func (s *MongoParticipantStore) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoParticipantStore) FindByEmail(ctx context.Context, email string) (*models.Participant, error) {
	return s.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (s *MongoParticipantStore) FindByRegistrationNumber(ctx context.Context, number string) (*models.Participant, error) {
	return s.findOne(ctx, bson.M{"registration_number": number})
}

func (s *MongoParticipantStore) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "count", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "count_participants"})
		observability.DatabaseOperations.WithLabelValues("count", "error").Inc()
		return false, fmt.Errorf("failed to count participants: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("count", "success").Inc()
	return count > 0, nil
}

func (s *MongoParticipantStore) ExistsByCPF(ctx context.Context, cpfDigits string) (bool, error) {
	return s.exists(ctx, bson.M{"cpf": cpfDigits})
}

func (s *MongoParticipantStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, bson.M{"email": strings.ToLower(email)})
}

func (s *MongoParticipantStore) UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error {
	ctx, span, end := utils.TraceDatabaseOperation(ctx, "update", s.collection.Name())
	defer end()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"password_hash":        passwordHash,
			"must_change_password": mustChange,
			"updated_at":           time.Now().UTC(),
		},
	})
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "update_password"})
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrParticipantNotFound
	}
	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()
	return nil
}
