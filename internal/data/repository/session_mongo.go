package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type sessionMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewSessionMongoRepository(db *mongo.Database, log *zap.Logger) SessionRepository {
	return &sessionMongoRepository{
		coll: db.Collection(database.CollectionSessions),
		log:  log.With(zap.String("repository", "session"), zap.String("store", "mongo")),
	}
}

func (r *sessionMongoRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionMongoRepository) FindActive(ctx context.Context, token uuid.UUID, at time.Time) (*entity.Session, error) {
	filter := bson.M{
		"token":      token,
		"revoked_at": nil,
		"expires_at": bson.M{"$gt": at},
	}

	session, err := findOne[entity.Session](ctx, r.coll, filter)
	if err != nil {
		r.log.Error("Failed to look up session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

func (r *sessionMongoRepository) Revoke(ctx context.Context, token uuid.UUID, at time.Time) (bool, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"token": token, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": at}},
	)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return false, fmt.Errorf("revoke session: %w", err)
	}
	return result.ModifiedCount > 0, nil
}
