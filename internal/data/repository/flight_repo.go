package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	// FindAll returns the whole collection; filtering happens in the search engine
	FindAll(ctx context.Context) ([]*entity.Flight, error)
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, airline, flight_number, from_place, to_place, depart_at, arrive_at,
	price, duration, created_at, updated_at`

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, airline, flight_number, from_place, to_place, depart_at,
		                     arrive_at, price, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.Airline,
		flight.FlightNumber,
		flight.From,
		flight.To,
		flight.DepartAt,
		flight.ArriveAt,
		flight.Price,
		flight.Duration,
		flight.CreatedAt,
		flight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1 AND deleted_at IS NULL`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE deleted_at IS NULL ORDER BY depart_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all flights", zap.Error(err))
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	r.log.Debug("Flights loaded", zap.Int("count", len(flights)))
	return flights, nil
}

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var flight entity.Flight
	err := row.Scan(
		&flight.ID,
		&flight.Airline,
		&flight.FlightNumber,
		&flight.From,
		&flight.To,
		&flight.DepartAt,
		&flight.ArriveAt,
		&flight.Price,
		&flight.Duration,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &flight, nil
}
