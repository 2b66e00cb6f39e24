package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"travel-booking/cmd"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/wire"
	"travel-booking/pkg/database"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

func main() {
	config, err := utils.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.String("timezone", config.App.Location().String()),
		zap.Bool("debug", config.App.Debug),
	)

	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	} else {
		logger.Info("Redis not configured, using in-process submission guard")
	}

	var repos *repository.Repository
	switch config.Store.Driver {
	case utils.StoreDriverMongo:
		db, err := database.InitMongo(config.Mongo)
		if err != nil {
			logger.Fatal("Failed to connect to mongo", zap.Error(err))
		}
		defer db.Client().Disconnect(context.Background())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = database.EnsureMongoIndexes(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to create mongo indexes", zap.Error(err))
		}

		logger.Info("Mongo connected successfully", zap.String("database", config.Mongo.Database))
		repos = repository.NewMongoRepository(db, rdb, config.Booking, logger)

	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, rdb, config.Booking, logger)
	}

	hub := sessionhub.New(logger)

	app, err := wire.Wiring(repos, hub, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Closing the hub ends open event streams so shutdown can drain
	if err := cmd.APIServer(app.Router, config.App.Port, logger, hub.Close); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
