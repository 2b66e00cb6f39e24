package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type tourMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewTourMongoRepository(db *mongo.Database, log *zap.Logger) TourRepository {
	return &tourMongoRepository{
		coll: db.Collection(database.CollectionTours),
		log:  log.With(zap.String("repository", "tour"), zap.String("store", "mongo")),
	}
}

func (r *tourMongoRepository) Create(ctx context.Context, tour *entity.Tour) error {
	if _, err := r.coll.InsertOne(ctx, tour); err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("name", tour.Name),
		)
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

func (r *tourMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, err := findOne[entity.Tour](ctx, r.coll, withNotDeleted(bson.M{"_id": id}))
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}
	return tour, nil
}

func (r *tourMongoRepository) FindAll(ctx context.Context, status *entity.TourStatus) ([]*entity.Tour, error) {
	filter := bson.M{}
	if status != nil && *status != "" {
		filter["status"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})

	tours, err := findMany[entity.Tour](ctx, r.coll, withNotDeleted(filter), opts)
	if err != nil {
		r.log.Error("Failed to find all tours", zap.Error(err))
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}

	r.log.Debug("Tours found", zap.Int("count", len(tours)))
	return tours, nil
}

func (r *tourMongoRepository) Update(ctx context.Context, tour *entity.Tour) error {
	result, err := r.coll.ReplaceOne(ctx, withNotDeleted(bson.M{"_id": tour.ID}), tour)
	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("failed to update tour: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}
	return nil
}

func (r *tourMongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"deleted_at": time.Now()}},
	)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}

	r.log.Info("Tour soft deleted", zap.String("tour_id", id.String()))
	return nil
}

func (r *tourMongoRepository) AddGuests(ctx context.Context, id uuid.UUID, count int) error {
	result, err := r.coll.UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{
			"$inc": bson.M{"current_guests": count},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		r.log.Error("Failed to add tour guests",
			zap.Error(err),
			zap.String("tour_id", id.String()),
			zap.Int("count", count),
		)
		return fmt.Errorf("failed to add guests: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("tour not found")
	}
	return nil
}
