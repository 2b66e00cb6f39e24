package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type userMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &userMongoRepository{
		coll: db.Collection(database.CollectionUsers),
		log:  log.With(zap.String("repository", "user"), zap.String("store", "mongo")),
	}
}

func (r *userMongoRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "id", id.String())
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "email", email)
}

func (r *userMongoRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username}, "username", username)
}

func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M, field, value string) (*entity.User, error) {
	user, err := findOne[entity.User](ctx, r.coll, withNotDeleted(filter))
	if err != nil {
		r.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(field, value),
		)
		return nil, fmt.Errorf("failed to find user by %s: %w", field, err)
	}
	return user, nil
}
