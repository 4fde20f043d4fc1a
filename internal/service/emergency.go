package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/webhook"
)

// EmergencyRepository определяет контракт для работы с бд происшествий
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	Update(ctx context.Context, emergency *models.Emergency) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListEmergencies(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error)
	GetStatistics(ctx context.Context, dayStart time.Time) (*models.EmergencyStatistics, error)
}

// UserRepository определяет контракт для поиска пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
}

// EmergencyService определяет контракт для бизнес-логики происшествий
type EmergencyService interface {
	CreateEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergency(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	UpdateEmergency(ctx context.Context, emergency *models.Emergency) error
	DeleteEmergency(ctx context.Context, id uuid.UUID) error
	ListEmergencies(ctx context.Context, params models.EmergencyListParams) ([]*models.Emergency, error)
	AssignEmergency(ctx context.Context, id, userID uuid.UUID) (*models.Emergency, error)
	UpdateEmergencyStatus(ctx context.Context, id uuid.UUID, status string) (*models.Emergency, error)
	GetStatistics(ctx context.Context) (*models.EmergencyStatistics, error)
}

type emergencyService struct {
	repo      EmergencyRepository
	userRepo  UserRepository
	logger    *logrus.Logger
	publisher webhook.EmergencyPublisher
	// now подменяется в тестах
	now func() time.Time
}

func NewEmergencyService(repo EmergencyRepository, userRepo UserRepository, logger *logrus.Logger, publisher webhook.EmergencyPublisher) EmergencyService {
	return &emergencyService{
		repo:      repo,
		userRepo:  userRepo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateEmergency создает происшествие. Репортер берется из аутентифицированного
// пользователя, статус всегда reported, severity по умолчанию medium.
func (s *emergencyService) CreateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "emergency",
		"method":   "CreateEmergency",
		"title":    emergency.Title,
		"reporter": emergency.ReporterID,
	})
	log.Info("Attempting to create a new emergency")

	emergency.Status = models.StatusReported
	if emergency.Severity == "" {
		emergency.Severity = models.SeverityMedium
	}

	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	event := webhook.EmergencyEvent{
		EmergencyID: emergency.ID,
		Title:       emergency.Title,
		Severity:    emergency.Severity,
		Status:      emergency.Status,
		Lat:         emergency.Lat,
		Lng:         emergency.Lng,
		Critical:    emergency.Severity == models.SeverityCritical,
		ReportedAt:  emergency.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Доставка вебхука не должна ломать создание происшествия
		log.WithError(err).Error("Failed to publish emergency event")
	}

	log.WithField("emergency_id", emergency.ID).Info("Emergency created successfully")
	return nil
}

// GetEmergency получает происшествие по ID
func (s *emergencyService) GetEmergency(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "GetEmergency",
		"emergency_id": id,
	})

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	return emergency, nil
}

// UpdateEmergency обновляет поля происшествия. Репортер не изменяется.
func (s *emergencyService) UpdateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateEmergency",
		"emergency_id": emergency.ID,
	})
	log.Info("Attempting to update emergency")

	if emergency.Severity != "" && !models.ValidSeverities[emergency.Severity] {
		log.WithField("severity", emergency.Severity).Warn("Rejected unknown severity value")
		return fmt.Errorf("service: %w: unknown severity %q", models.ErrInvalidStatus, emergency.Severity)
	}

	existing, err := s.repo.GetByID(ctx, emergency.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent emergency")
		return fmt.Errorf("service: emergency not found for update: %w", err)
	}

	existing.Title = emergency.Title
	existing.Description = emergency.Description
	existing.Lat = emergency.Lat
	existing.Lng = emergency.Lng
	if emergency.Severity != "" {
		existing.Severity = emergency.Severity
	}
	existing.PhotoURL = emergency.PhotoURL

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update emergency in repository")
		return fmt.Errorf("service: could not update emergency: %w", err)
	}

	*emergency = *existing
	log.Info("Emergency updated successfully")
	return nil
}

// DeleteEmergency удаляет происшествие
func (s *emergencyService) DeleteEmergency(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "DeleteEmergency",
		"emergency_id": id,
	})
	log.Info("Attempting to delete emergency")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete emergency in repository")
		return fmt.Errorf("service: could not delete emergency: %w", err)
	}

	log.Info("Emergency deleted successfully")
	return nil
}

// ListEmergencies возвращает происшествия по составному фильтру.
// Все условия опциональны и комбинируются через AND.
func (s *emergencyService) ListEmergencies(ctx context.Context, params models.EmergencyListParams) ([]*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListEmergencies",
	})

	filter := s.buildFilter(params)

	emergencies, err := s.repo.ListEmergencies(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}

	log.WithField("count", len(emergencies)).Info("Emergencies listed successfully")
	return emergencies, nil
}

// buildFilter превращает query-параметры в фильтр репозитория.
// Радиусный поиск - прямоугольная аппроксимация: 1 градус широты ~ 111 км,
// долгота масштабируется как radius/(111*|lat|). На экваторе долготная
// дельта вырождается, как и в исходной реализации.
func (s *emergencyService) buildFilter(params models.EmergencyListParams) models.EmergencyFilter {
	filter := models.EmergencyFilter{
		Severity: params.Severity,
		Status:   params.Status,
	}

	if params.CriticalOnly {
		filter.Severity = models.SeverityCritical
	}
	if params.ActiveOnly {
		filter.ExcludeStatuses = []string{models.StatusResolved, models.StatusClosed}
	}

	if params.Lat != nil && params.Lng != nil && params.RadiusKm != nil {
		lat, lng, radius := *params.Lat, *params.Lng, *params.RadiusKm
		latDelta := radius / 111
		lngDelta := radius / (111 * math.Abs(lat))

		latMin, latMax := lat-latDelta, lat+latDelta
		lngMin, lngMax := lng-lngDelta, lng+lngDelta
		filter.LatMin, filter.LatMax = &latMin, &latMax
		filter.LngMin, filter.LngMax = &lngMin, &lngMax
	}

	if d, ok := timeRanges[params.TimeRange]; ok {
		after := s.now().Add(-d)
		filter.CreatedAfter = &after
	}

	return filter
}

// Поддерживаемые окна фильтра time_range
var timeRanges = map[string]time.Duration{
	"1h":  time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
}

// AssignEmergency назначает исполнителя и переводит происшествие в статус assigned
func (s *emergencyService) AssignEmergency(ctx context.Context, id, userID uuid.UUID) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "AssignEmergency",
		"emergency_id": id,
		"user_id":      userID,
	})
	log.Info("Attempting to assign emergency")

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent emergency")
		return nil, fmt.Errorf("service: emergency not found for assign: %w", err)
	}

	assignee, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign emergency to a non-existent user")
		return nil, fmt.Errorf("service: assignee not found: %w", err)
	}

	emergency.AssignedTo = &assignee.ID
	emergency.Assignee = assignee
	emergency.Status = models.StatusAssigned

	if err := s.repo.Update(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to assign emergency in repository")
		return nil, fmt.Errorf("service: could not assign emergency: %w", err)
	}

	log.Info("Emergency assigned successfully")
	return emergency, nil
}

// UpdateEmergencyStatus применяет новый статус. Переходы не ограничены:
// допускается любой из пяти статусов в любом порядке. Переход в resolved
// проставляет resolved_at, обратные переходы его не сбрасывают.
func (s *emergencyService) UpdateEmergencyStatus(ctx context.Context, id uuid.UUID, status string) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateEmergencyStatus",
		"emergency_id": id,
		"status":       status,
	})
	log.Info("Attempting to update emergency status")

	if !models.ValidStatuses[status] {
		log.Warn("Rejected unknown status value")
		return nil, fmt.Errorf("service: %w: unknown status %q", models.ErrInvalidStatus, status)
	}

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent emergency")
		return nil, fmt.Errorf("service: emergency not found for status update: %w", err)
	}

	emergency.Status = status
	if status == models.StatusResolved {
		resolvedAt := s.now()
		emergency.ResolvedAt = &resolvedAt
	}

	if err := s.repo.Update(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to update emergency status in repository")
		return nil, fmt.Errorf("service: could not update emergency status: %w", err)
	}

	log.Info("Emergency status updated successfully")
	return emergency, nil
}

// GetStatistics возвращает агрегированные счетчики. resolved_today считается
// от начала текущего календарного дня в локальном времени сервера.
func (s *emergencyService) GetStatistics(ctx context.Context) (*models.EmergencyStatistics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "GetStatistics",
	})

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.repo.GetStatistics(ctx, dayStart)
	if err != nil {
		log.WithError(err).Error("Failed to get emergency statistics from repository")
		return nil, fmt.Errorf("service: could not get emergency statistics: %w", err)
	}

	return stats, nil
}
