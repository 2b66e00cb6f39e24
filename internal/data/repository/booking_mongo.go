package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type bookingMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingMongoRepository(db *mongo.Database, log *zap.Logger) BookingRepository {
	return &bookingMongoRepository{
		coll: db.Collection(database.CollectionBookings),
		log:  log.With(zap.String("repository", "booking"), zap.String("store", "mongo")),
	}
}

func (r *bookingMongoRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}
	return nil
}

func (r *bookingMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := findOne[entity.Booking](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}
	return booking, nil
}

func (r *bookingMongoRepository) FindByUserID(ctx context.Context, userID uuid.UUID, category *entity.BookingCategory, limit, offset int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	bookings, err := findMany[entity.Booking](ctx, r.coll, userBookingsFilter(userID, category), opts)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) CountByUserID(ctx context.Context, userID uuid.UUID, category *entity.BookingCategory) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, userBookingsFilter(userID, category))
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}
	return count, nil
}

func userBookingsFilter(userID uuid.UUID, category *entity.BookingCategory) bson.M {
	filter := bson.M{"user_id": userID}
	if c := categoryArg(category); c != nil {
		filter["category"] = *c
	}
	return filter
}
