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

type hotelMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewHotelMongoRepository(db *mongo.Database, log *zap.Logger) HotelRepository {
	return &hotelMongoRepository{
		coll: db.Collection(database.CollectionHotels),
		log:  log.With(zap.String("repository", "hotel"), zap.String("store", "mongo")),
	}
}

func (r *hotelMongoRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}
	return nil
}

func (r *hotelMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := findOne[entity.Hotel](ctx, r.coll, withNotDeleted(bson.M{"_id": id}))
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}
	return hotel, nil
}

func (r *hotelMongoRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	hotels, err := findMany[entity.Hotel](ctx, r.coll, notDeleted, opts)
	if err != nil {
		r.log.Error("Failed to find all hotels", zap.Error(err))
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	return hotels, nil
}

type roomMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRoomMongoRepository(db *mongo.Database, log *zap.Logger) RoomRepository {
	return &roomMongoRepository{
		coll: db.Collection(database.CollectionRooms),
		log:  log.With(zap.String("repository", "room"), zap.String("store", "mongo")),
	}
}

func (r *roomMongoRepository) Create(ctx context.Context, room *entity.Room) error {
	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}
	return nil
}

func (r *roomMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := findOne[entity.Room](ctx, r.coll, withNotDeleted(bson.M{"_id": id}))
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}
	return room, nil
}

func (r *roomMongoRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "price_per_night", Value: 1}})

	rooms, err := findMany[entity.Room](ctx, r.coll, withNotDeleted(bson.M{"hotel_id": hotelID}), opts)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %s: %w", hotelID.String(), err)
	}
	return rooms, nil
}
