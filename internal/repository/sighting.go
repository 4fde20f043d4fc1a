package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service"
)

type SightingRepository struct {
	db *pgxpool.Pool
}

func NewSightingRepository(db *pgxpool.Pool) service.SightingRepository {
	return &SightingRepository{db: db}
}

// Create создает новую запись о наблюдении в бд
func (r *SightingRepository) Create(ctx context.Context, sighting *models.Sighting) error {
	query := `
		INSERT INTO sightings (mission_id, name, sterilized, location)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326))
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		sighting.MissionID,
		sighting.Name,
		sighting.Sterilized,
		sighting.Longitude,
		sighting.Latitude,
	).Scan(&sighting.ID, &sighting.CreatedAt, &sighting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sighting: %w", err)
	}
	return nil
}

// GetByID возвращает наблюдение по его UUID
func (r *SightingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sighting, error) {
	sighting := &models.Sighting{}
	query := `
		SELECT
			id,
			mission_id,
			name,
			sterilized,
			ST_X(location) as longitude,
			ST_Y(location) as latitude,
			created_at,
			updated_at
		FROM sightings
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sighting.ID,
		&sighting.MissionID,
		&sighting.Name,
		&sighting.Sterilized,
		&sighting.Longitude,
		&sighting.Latitude,
		&sighting.CreatedAt,
		&sighting.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sighting by id: %w", err)
	}
	return sighting, nil
}

func (r *SightingRepository) Update(ctx context.Context, sighting *models.Sighting) error {
	query := `
		UPDATE sightings SET
			mission_id = $1,
			name = $2,
			sterilized = $3,
			location = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		sighting.MissionID,
		sighting.Name,
		sighting.Sterilized,
		sighting.Longitude,
		sighting.Latitude,
		sighting.ID,
	).Scan(&sighting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("sighting with id %s: %w", sighting.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update sighting: %w", err)
	}
	return nil
}

// Delete удаляет наблюдение
func (r *SightingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sightings WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sighting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListSightings возвращает список наблюдений с пагинацией, новые первыми
func (r *SightingRepository) ListSightings(ctx context.Context, page, pageSize int) ([]*models.Sighting, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			mission_id,
			name,
			sterilized,
			ST_X(location) as longitude,
			ST_Y(location) as latitude,
			created_at,
			updated_at
		FROM sightings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sightings: %w", err)
	}
	defer rows.Close()

	sightings := make([]*models.Sighting, 0)
	for rows.Next() {
		sighting := &models.Sighting{}
		err := rows.Scan(
			&sighting.ID,
			&sighting.MissionID,
			&sighting.Name,
			&sighting.Sterilized,
			&sighting.Longitude,
			&sighting.Latitude,
			&sighting.CreatedAt,
			&sighting.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sighting row: %w", err)
		}
		sightings = append(sightings, sighting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return sightings, nil
}
