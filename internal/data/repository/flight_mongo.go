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

type flightMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewFlightMongoRepository(db *mongo.Database, log *zap.Logger) FlightRepository {
	return &flightMongoRepository{
		coll: db.Collection(database.CollectionFlights),
		log:  log.With(zap.String("repository", "flight"), zap.String("store", "mongo")),
	}
}

func (r *flightMongoRepository) Create(ctx context.Context, flight *entity.Flight) error {
	if _, err := r.coll.InsertOne(ctx, flight); err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}
	return nil
}

func (r *flightMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	flight, err := findOne[entity.Flight](ctx, r.coll, withNotDeleted(bson.M{"_id": id}))
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}
	return flight, nil
}

func (r *flightMongoRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "depart_at", Value: 1}})

	flights, err := findMany[entity.Flight](ctx, r.coll, notDeleted, opts)
	if err != nil {
		r.log.Error("Failed to find all flights", zap.Error(err))
		return nil, fmt.Errorf("find flights: %w", err)
	}

	r.log.Debug("Flights loaded", zap.Int("count", len(flights)))
	return flights, nil
}
