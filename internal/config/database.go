package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB database handle
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection and makes sure the
// registration indexes exist
func InitMongoDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(context.Background(), MongoDB); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// InitRedis initializes the Redis connection. A failed ping is logged but not
// fatal; the API degrades to the in-memory submission guard.
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI hides the credentials part of a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// EnsureIndexes creates the unique and lookup indexes the registration flow
// relies on. Uniqueness of cpf, email and registration number is enforced
// here rather than in application code.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	logger := logging.Logger.Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	participantIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "cpf", Value: 1}},
			Options: options.Index().SetName("cpf_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "registration_number", Value: 1}},
			Options: options.Index().SetName("registration_number_1").SetUnique(true),
		},
	}
	if err := ensureCollectionIndexes(ctx, logger, db.Collection(AppConfig.ParticipantCollection), participantIndexes); err != nil {
		return err
	}

	photoIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participant_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("participant_id_1_created_at_-1"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
	}
	if err := ensureCollectionIndexes(ctx, logger, db.Collection(AppConfig.PhotoCollection), photoIndexes); err != nil {
		return err
	}

	logger.Info("all required indexes verified")
	return nil
}

// ensureCollectionIndexes creates the indexes whose names are not present yet
func ensureCollectionIndexes(ctx context.Context, logger *logging.SafeLogger, collection *mongo.Collection, wanted []mongo.IndexModel) error {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", collection.Name()), zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	created := 0
	for _, model := range wanted {
		name := ""
		if model.Options != nil && model.Options.Name != nil {
			name = *model.Options.Name
		}
		if existing[name] {
			continue
		}
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			// Another instance may have created it concurrently
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("index already exists (created by another instance)",
					zap.String("collection", collection.Name()),
					zap.String("index", name))
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", collection.Name()),
				zap.String("index", name),
				zap.Error(err))
			return err
		}
		created++
	}

	if created > 0 {
		logger.Info("created collection indexes",
			zap.String("collection", collection.Name()),
			zap.Int("count", created))
	} else {
		logger.Debug("collection indexes already exist",
			zap.String("collection", collection.Name()))
	}
	return nil
}
