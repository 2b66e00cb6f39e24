package repository

import (
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"travel-booking/pkg/database"
	"travel-booking/pkg/utils"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Flight  FlightRepository
	Hotel   HotelRepository
	Room    RoomRepository
	Tour    TourRepository
	Booking BookingRepository

	Cache SnapshotCache
	Guard SubmissionGuard
}

// NewRepository builds the Postgres backed repositories. rdb may be nil.
func NewRepository(db database.PgxIface, rdb *redis.Client, cfg utils.BookingConfig, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Flight:  NewFlightRepository(db, log),
		Hotel:   NewHotelRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Tour:    NewTourRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Cache:   NewSnapshotCache(rdb, cfg.CacheTTL, log),
		Guard:   NewSubmissionGuard(rdb, log),
	}
}

// NewMongoRepository builds the MongoDB backed repositories. rdb may be nil.
func NewMongoRepository(db *mongo.Database, rdb *redis.Client, cfg utils.BookingConfig, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserMongoRepository(db, log),
		Session: NewSessionMongoRepository(db, log),
		Flight:  NewFlightMongoRepository(db, log),
		Hotel:   NewHotelMongoRepository(db, log),
		Room:    NewRoomMongoRepository(db, log),
		Tour:    NewTourMongoRepository(db, log),
		Booking: NewBookingMongoRepository(db, log),
		Cache:   NewSnapshotCache(rdb, cfg.CacheTTL, log),
		Guard:   NewSubmissionGuard(rdb, log),
	}
}
