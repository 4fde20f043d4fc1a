package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service"
)

type MissionRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewMissionRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.MissionRepository {
	return &MissionRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// geoJSONPolygon - промежуточная структура для разбора ST_AsGeoJSON
type geoJSONPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// parsePolygon разбирает GeoJSON из PostGIS во внешнее кольцо полигона
func parsePolygon(raw *string) (models.Polygon, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var gj geoJSONPolygon
	if err := json.Unmarshal([]byte(*raw), &gj); err != nil {
		return nil, fmt.Errorf("failed to parse polygon geojson: %w", err)
	}
	if len(gj.Coordinates) == 0 {
		return nil, nil
	}
	return models.Polygon(gj.Coordinates[0]), nil
}

// Create создает новую запись о миссии в бд
func (r *MissionRepository) Create(ctx context.Context, mission *models.Mission) error {
	query := `
		INSERT INTO missions (title, description, date, city, area, center, polygon)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5,
			ST_SetSRID(ST_MakePoint($6, $7), 4326),
			CASE WHEN $8 = '' THEN NULL ELSE ST_GeomFromText($8, 4326) END)
		RETURNING id, created_at, updated_at,
			COALESCE(ST_Area(ST_Transform(polygon, 3857)) / 1000000, 0);
	`
	err := r.db.QueryRow(ctx, query,
		mission.Title,
		mission.Description,
		mission.Date,
		mission.City,
		mission.Area,
		mission.CenterLon,
		mission.CenterLat,
		mission.Polygon.WKT(),
	).Scan(&mission.ID, &mission.CreatedAt, &mission.UpdatedAt, &mission.AreaCoverageKm2)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}
	return nil
}

// GetByID возвращает миссию по ее UUID
func (r *MissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	mission := &models.Mission{}
	query := `
		SELECT
			id,
			title,
			COALESCE(description, ''),
			date,
			city,
			area,
			ST_Y(center) as center_lat,
			ST_X(center) as center_lon,
			ST_AsGeoJSON(polygon),
			COALESCE(ST_Area(ST_Transform(polygon, 3857)) / 1000000, 0) as area_coverage_km2,
			created_at,
			updated_at
		FROM missions
		WHERE id = $1;
	`
	var rawPolygon *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mission.ID,
		&mission.Title,
		&mission.Description,
		&mission.Date,
		&mission.City,
		&mission.Area,
		&mission.CenterLat,
		&mission.CenterLon,
		&rawPolygon,
		&mission.AreaCoverageKm2,
		&mission.CreatedAt,
		&mission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mission with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mission by id: %w", err)
	}

	mission.Polygon, err = parsePolygon(rawPolygon)
	if err != nil {
		return nil, err
	}
	return mission, nil
}

func (r *MissionRepository) Update(ctx context.Context, mission *models.Mission) error {
	query := `
		UPDATE missions SET
			title = $1,
			description = NULLIF($2, ''),
			date = $3,
			city = $4,
			area = $5,
			center = ST_SetSRID(ST_MakePoint($6, $7), 4326),
			polygon = CASE WHEN $8 = '' THEN NULL ELSE ST_GeomFromText($8, 4326) END,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at,
			COALESCE(ST_Area(ST_Transform(polygon, 3857)) / 1000000, 0);
	`
	err := r.db.QueryRow(ctx, query,
		mission.Title,
		mission.Description,
		mission.Date,
		mission.City,
		mission.Area,
		mission.CenterLon,
		mission.CenterLat,
		mission.Polygon.WKT(),
		mission.ID,
	).Scan(&mission.UpdatedAt, &mission.AreaCoverageKm2)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("mission with id %s: %w", mission.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update mission: %w", err)
	}
	return nil
}

// Delete удаляет миссию. Наблюдения удаляются каскадно на уровне бд.
func (r *MissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM missions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("mission with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListMissions возвращает список миссий с пагинацией, новые первыми
func (r *MissionRepository) ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			title,
			COALESCE(description, ''),
			date,
			city,
			area,
			ST_Y(center) as center_lat,
			ST_X(center) as center_lon,
			ST_AsGeoJSON(polygon),
			COALESCE(ST_Area(ST_Transform(polygon, 3857)) / 1000000, 0) as area_coverage_km2,
			created_at,
			updated_at
		FROM missions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	missions := make([]*models.Mission, 0)
	for rows.Next() {
		mission := &models.Mission{}
		var rawPolygon *string
		err := rows.Scan(
			&mission.ID,
			&mission.Title,
			&mission.Description,
			&mission.Date,
			&mission.City,
			&mission.Area,
			&mission.CenterLat,
			&mission.CenterLon,
			&rawPolygon,
			&mission.AreaCoverageKm2,
			&mission.CreatedAt,
			&mission.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission row: %w", err)
		}
		mission.Polygon, err = parsePolygon(rawPolygon)
		if err != nil {
			return nil, err
		}
		missions = append(missions, mission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return missions, nil
}

// GetStatistics возвращает счетчики наблюдений и площадь покрытия миссии.
// Площадь считается в проекции 3857 и переводится в км².
func (r *MissionRepository) GetStatistics(ctx context.Context, id uuid.UUID) (*models.MissionStatistics, error) {
	stats := &models.MissionStatistics{}
	query := `
		SELECT
			COUNT(s.id),
			COUNT(s.id) FILTER (WHERE s.sterilized),
			COALESCE(ST_Area(ST_Transform(m.polygon, 3857)) / 1000000, 0)
		FROM missions m
		LEFT JOIN sightings s ON s.mission_id = m.id
		WHERE m.id = $1
		GROUP BY m.id;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&stats.TotalSightings,
		&stats.SterilizedCount,
		&stats.AreaCoveredKm2,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mission with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mission statistics: %w", err)
	}
	return stats, nil
}

// ListSightings возвращает наблюдения миссии. Если у миссии задан полигон,
// остаются только точки строго внутри него (ST_Within).
func (r *MissionRepository) ListSightings(ctx context.Context, missionID uuid.UUID) ([]*models.Sighting, error) {
	query := `
		SELECT
			s.id,
			s.mission_id,
			s.name,
			s.sterilized,
			ST_X(s.location) as longitude,
			ST_Y(s.location) as latitude,
			s.created_at,
			s.updated_at
		FROM sightings s
		JOIN missions m ON m.id = s.mission_id
		WHERE s.mission_id = $1
			AND (m.polygon IS NULL OR ST_Within(s.location, m.polygon))
		ORDER BY s.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission sightings: %w", err)
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
		return nil, fmt.Errorf("error list iteration in ListSightings: %w", err)
	}
	return sightings, nil
}

// ContainsPoint проверяет, попадает ли точка в полигон миссии.
// Для миссии без полигона всегда true.
func (r *MissionRepository) ContainsPoint(ctx context.Context, missionID uuid.UUID, lng, lat float64) (bool, error) {
	query := `
		SELECT m.polygon IS NULL OR ST_Within(ST_SetSRID(ST_MakePoint($2, $3), 4326), m.polygon)
		FROM missions m
		WHERE m.id = $1;
	`
	var inside bool
	err := r.db.QueryRow(ctx, query, missionID, lng, lat).Scan(&inside)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("mission with id %s: %w", missionID, models.ErrNotFound)
		}
		return false, fmt.Errorf("failed to check point containment: %w", err)
	}
	return inside, nil
}

// GetMissionFromCache пытается получить миссию из Redis
func (r *MissionRepository) GetMissionFromCache(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	key := fmt.Sprintf("mission:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission from cache: %w", err)
	}

	mission := &models.Mission{}
	if err := json.Unmarshal(val, mission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission from cache: %w", err)
	}
	return mission, nil
}

// SetMissionCache сохраняет миссию в Redis
func (r *MissionRepository) SetMissionCache(ctx context.Context, mission *models.Mission) error {
	key := fmt.Sprintf("mission:%s", mission.ID.String())
	val, err := json.Marshal(mission)
	if err != nil {
		return fmt.Errorf("failed to marshal mission for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set mission in cache: %w", err)
	}
	return nil
}

// InvalidateMissionCache удаляет миссию из Redis кэша
func (r *MissionRepository) InvalidateMissionCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("mission:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate mission cache: %w", err)
	}
	return nil
}
