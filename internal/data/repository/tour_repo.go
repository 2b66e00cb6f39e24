package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindAll(ctx context.Context, status *entity.TourStatus) ([]*entity.Tour, error)
	// Update replaces the whole document
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddGuests(ctx context.Context, id uuid.UUID, count int) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

const tourColumns = `id, name, location, description, price, duration_days, start_date, end_date,
	max_guests, current_guests, itinerary, included, status, created_at, updated_at`

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (id, name, location, description, price, duration_days, start_date,
		                   end_date, max_guests, current_guests, itinerary, included, status,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Name,
		tour.Location,
		tour.Description,
		tour.Price,
		tour.DurationDays,
		tour.StartDate,
		tour.EndDate,
		tour.MaxGuests,
		tour.CurrentGuests,
		tour.Itinerary,
		tour.Included,
		tour.Status,
		tour.CreatedAt,
		tour.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("name", tour.Name),
		)
		return fmt.Errorf("failed to create tour: %w", err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1 AND deleted_at IS NULL`

	tour, err := scanTour(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}

	return tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context, status *entity.TourStatus) ([]*entity.Tour, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + tourColumns + ` FROM tours WHERE deleted_at IS NULL`)

	args := []interface{}{}
	if status != nil && *status != "" {
		queryBuilder.WriteString(" AND status = $1")
		args = append(args, *status)
	}
	queryBuilder.WriteString(" ORDER BY start_date")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all tours", zap.Error(err))
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Tours found", zap.Int("count", len(tours)))
	return tours, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET name = $2, location = $3, description = $4, price = $5, duration_days = $6,
		    start_date = $7, end_date = $8, max_guests = $9, current_guests = $10,
		    itinerary = $11, included = $12, status = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Name,
		tour.Location,
		tour.Description,
		tour.Price,
		tour.DurationDays,
		tour.StartDate,
		tour.EndDate,
		tour.MaxGuests,
		tour.CurrentGuests,
		tour.Itinerary,
		tour.Included,
		tour.Status,
		tour.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("failed to update tour: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tours SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}

	r.log.Info("Tour soft deleted", zap.String("tour_id", id.String()))
	return nil
}

func (r *tourRepository) AddGuests(ctx context.Context, id uuid.UUID, count int) error {
	query := `UPDATE tours SET current_guests = current_guests + $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, count)
	if err != nil {
		r.log.Error("Failed to add tour guests",
			zap.Error(err),
			zap.String("tour_id", id.String()),
			zap.Int("count", count),
		)
		return fmt.Errorf("failed to add guests: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found")
	}

	return nil
}

func scanTour(row pgx.Row) (*entity.Tour, error) {
	var tour entity.Tour
	err := row.Scan(
		&tour.ID,
		&tour.Name,
		&tour.Location,
		&tour.Description,
		&tour.Price,
		&tour.DurationDays,
		&tour.StartDate,
		&tour.EndDate,
		&tour.MaxGuests,
		&tour.CurrentGuests,
		&tour.Itinerary,
		&tour.Included,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tour, nil
}
