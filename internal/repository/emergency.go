package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service"
)

type EmergencyRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyRepository(db *pgxpool.Pool) service.EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Базовая выборка происшествия вместе с репортером и исполнителем
const emergencySelect = `
	SELECT
		e.id,
		e.title,
		e.description,
		e.lat,
		e.lng,
		e.severity,
		e.status,
		COALESCE(e.photo_url, ''),
		e.reporter_id,
		e.assigned_to,
		e.created_at,
		e.updated_at,
		e.resolved_at,
		r.username,
		r.first_name,
		r.last_name,
		a.username,
		a.first_name,
		a.last_name
	FROM emergencies e
	JOIN users r ON r.id = e.reporter_id
	LEFT JOIN users a ON a.id = e.assigned_to
`

type emergencyScanner interface {
	Scan(dest ...any) error
}

func scanEmergency(row emergencyScanner) (*models.Emergency, error) {
	emergency := &models.Emergency{}
	var (
		reporterUsername, reporterFirst, reporterLast string
		assigneeUsername, assigneeFirst, assigneeLast *string
	)
	err := row.Scan(
		&emergency.ID,
		&emergency.Title,
		&emergency.Description,
		&emergency.Lat,
		&emergency.Lng,
		&emergency.Severity,
		&emergency.Status,
		&emergency.PhotoURL,
		&emergency.ReporterID,
		&emergency.AssignedTo,
		&emergency.CreatedAt,
		&emergency.UpdatedAt,
		&emergency.ResolvedAt,
		&reporterUsername,
		&reporterFirst,
		&reporterLast,
		&assigneeUsername,
		&assigneeFirst,
		&assigneeLast,
	)
	if err != nil {
		return nil, err
	}

	emergency.Reporter = &models.User{
		ID:        emergency.ReporterID,
		Username:  reporterUsername,
		FirstName: reporterFirst,
		LastName:  reporterLast,
	}
	if emergency.AssignedTo != nil && assigneeUsername != nil {
		emergency.Assignee = &models.User{
			ID:        *emergency.AssignedTo,
			Username:  *assigneeUsername,
			FirstName: *assigneeFirst,
			LastName:  *assigneeLast,
		}
	}
	return emergency, nil
}

// Create создает новую запись о происшествии в бд
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (title, description, lat, lng, severity, status, photo_url, reporter_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Title,
		emergency.Description,
		emergency.Lat,
		emergency.Lng,
		emergency.Severity,
		emergency.Status,
		emergency.PhotoURL,
		emergency.ReporterID,
	).Scan(&emergency.ID, &emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", err)
	}
	return nil
}

// GetByID возвращает происшествие по его UUID вместе с данными пользователей
func (r *EmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	emergency, err := scanEmergency(r.db.QueryRow(ctx, emergencySelect+` WHERE e.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency by id: %w", err)
	}
	return emergency, nil
}

func (r *EmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	query := `
		UPDATE emergencies SET
			title = $1,
			description = $2,
			lat = $3,
			lng = $4,
			severity = $5,
			status = $6,
			photo_url = NULLIF($7, ''),
			assigned_to = $8,
			resolved_at = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Title,
		emergency.Description,
		emergency.Lat,
		emergency.Lng,
		emergency.Severity,
		emergency.Status,
		emergency.PhotoURL,
		emergency.AssignedTo,
		emergency.ResolvedAt,
		emergency.ID,
	).Scan(&emergency.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("emergency with id %s: %w", emergency.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update emergency: %w", err)
	}
	return nil
}

// Delete удаляет происшествие
func (r *EmergencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergencies WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete emergency: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListEmergencies возвращает происшествия по составному фильтру, новые первыми.
// Условия фильтра добавляются в WHERE только когда заданы.
func (r *EmergencyRepository) ListEmergencies(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	addCondition := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Severity != "" {
		addCondition("e.severity = $%d", filter.Severity)
	}
	if filter.Status != "" {
		addCondition("e.status = $%d", filter.Status)
	}
	if len(filter.ExcludeStatuses) > 0 {
		addCondition("NOT (e.status = ANY($%d))", filter.ExcludeStatuses)
	}
	if filter.LatMin != nil && filter.LatMax != nil {
		addCondition("e.lat >= $%d", *filter.LatMin)
		addCondition("e.lat <= $%d", *filter.LatMax)
	}
	if filter.LngMin != nil && filter.LngMax != nil {
		addCondition("e.lng >= $%d", *filter.LngMin)
		addCondition("e.lng <= $%d", *filter.LngMax)
	}
	if filter.CreatedAfter != nil {
		addCondition("e.created_at >= $%d", *filter.CreatedAfter)
	}

	query := emergencySelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency, err := scanEmergency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return emergencies, nil
}

// GetStatistics возвращает агрегированные счетчики одним запросом.
// dayStart - начало текущего календарного дня для resolved_today.
func (r *EmergencyRepository) GetStatistics(ctx context.Context, dayStart time.Time) (*models.EmergencyStatistics, error) {
	stats := &models.EmergencyStatistics{}
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE severity = 'critical'),
			COUNT(*) FILTER (WHERE severity = 'high'),
			COUNT(*) FILTER (WHERE status NOT IN ('resolved', 'closed')),
			COUNT(*) FILTER (WHERE status = 'resolved' AND resolved_at >= $1)
		FROM emergencies;
	`
	err := r.db.QueryRow(ctx, query, dayStart).Scan(
		&stats.Total,
		&stats.Critical,
		&stats.High,
		&stats.Active,
		&stats.ResolvedToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get emergency statistics: %w", err)
	}
	return stats, nil
}
