package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tmorozova/animal_rescue_system/internal/models"
)

// MissionRepository определяет контракт для работы с бд миссий
type MissionRepository interface {
	Create(ctx context.Context, mission *models.Mission) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	Update(ctx context.Context, mission *models.Mission) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error)
	GetStatistics(ctx context.Context, id uuid.UUID) (*models.MissionStatistics, error)
	ListSightings(ctx context.Context, missionID uuid.UUID) ([]*models.Sighting, error)
	ContainsPoint(ctx context.Context, missionID uuid.UUID, lng, lat float64) (bool, error)
	GetMissionFromCache(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	SetMissionCache(ctx context.Context, mission *models.Mission) error
	InvalidateMissionCache(ctx context.Context, id uuid.UUID) error
}

// MissionService определяет контракт для бизнес-логики управления миссиями
type MissionService interface {
	CreateMission(ctx context.Context, mission *models.Mission) error
	GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	UpdateMission(ctx context.Context, mission *models.Mission) error
	DeleteMission(ctx context.Context, id uuid.UUID) error
	ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error)
	GetStatistics(ctx context.Context, id uuid.UUID) (*models.MissionStatistics, error)
	ListMissionSightings(ctx context.Context, id uuid.UUID) ([]*models.Sighting, error)
	GetDashboard(ctx context.Context, id uuid.UUID) (*models.MissionDashboard, error)
}

type missionService struct {
	repo   MissionRepository
	logger *logrus.Logger
}

func NewMissionService(repo MissionRepository, logger *logrus.Logger) MissionService {
	return &missionService{
		repo:   repo,
		logger: logger,
	}
}

// CreateMission создает миссию
func (s *missionService) CreateMission(ctx context.Context, mission *models.Mission) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mission",
		"method":  "CreateMission",
		"title":   mission.Title,
	})
	log.Info("Attempting to create a new mission")

	if err := mission.Polygon.Validate(); err != nil {
		log.WithError(err).Warn("Mission polygon is not a valid closed ring")
		return fmt.Errorf("service: %w", err)
	}

	if err := s.repo.Create(ctx, mission); err != nil {
		log.WithError(err).Error("Failed to create mission in repository")
		return fmt.Errorf("service: could not create mission: %w", err)
	}

	log.WithField("mission_id", mission.ID).Info("Mission created successfully")
	return nil
}

// GetMission получает миссию по ID, сначала из кеша, затем из бд
func (s *missionService) GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetMission",
		"mission_id": id,
	})

	cached, err := s.repo.GetMissionFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read mission from cache")
	}
	if cached != nil {
		log.Debug("Mission served from cache")
		return cached, nil
	}

	mission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get mission from repository")
		return nil, fmt.Errorf("service: could not get mission: %w", err)
	}

	if err := s.repo.SetMissionCache(ctx, mission); err != nil {
		log.WithError(err).Warn("Failed to cache mission")
	}

	return mission, nil
}

// UpdateMission обновляет существующую миссию
func (s *missionService) UpdateMission(ctx context.Context, mission *models.Mission) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "UpdateMission",
		"mission_id": mission.ID,
	})
	log.Info("Attempting to update mission")

	if err := mission.Polygon.Validate(); err != nil {
		log.WithError(err).Warn("Mission polygon is not a valid closed ring")
		return fmt.Errorf("service: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, mission.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent mission")
		return fmt.Errorf("service: mission not found for update: %w", err)
	}

	existing.Title = mission.Title
	existing.Description = mission.Description
	existing.Date = mission.Date
	existing.City = mission.City
	existing.Area = mission.Area
	existing.CenterLat = mission.CenterLat
	existing.CenterLon = mission.CenterLon
	existing.Polygon = mission.Polygon

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update mission in repository")
		return fmt.Errorf("service: could not update mission: %w", err)
	}

	if err := s.repo.InvalidateMissionCache(ctx, mission.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission cache")
	}

	*mission = *existing
	log.Info("Mission updated successfully")
	return nil
}

// DeleteMission удаляет миссию вместе с ее наблюдениями (каскадно в бд)
func (s *missionService) DeleteMission(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "DeleteMission",
		"mission_id": id,
	})
	log.Info("Attempting to delete mission")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete mission in repository")
		return fmt.Errorf("service: could not delete mission: %w", err)
	}

	if err := s.repo.InvalidateMissionCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission cache")
	}

	log.Info("Mission deleted successfully")
	return nil
}

// ListMissions возвращает список миссий с пагинацией
func (s *missionService) ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "mission",
		"method":    "ListMissions",
		"page":      page,
		"page_size": pageSize,
	})

	missions, err := s.repo.ListMissions(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list missions from repository")
		return nil, fmt.Errorf("service: could not list missions: %w", err)
	}

	log.WithField("count", len(missions)).Info("Missions listed successfully")
	return missions, nil
}

// GetStatistics возвращает статистику по миссии.
// Процент стерилизации равен 0, когда наблюдений нет.
func (s *missionService) GetStatistics(ctx context.Context, id uuid.UUID) (*models.MissionStatistics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetStatistics",
		"mission_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Requested statistics for a non-existent mission")
		return nil, fmt.Errorf("service: mission not found: %w", err)
	}

	stats, err := s.repo.GetStatistics(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get mission statistics from repository")
		return nil, fmt.Errorf("service: could not get mission statistics: %w", err)
	}

	stats.CompletionPercentage = completionPercentage(stats.SterilizedCount, stats.TotalSightings)
	return stats, nil
}

// completionPercentage возвращает долю стерилизованных в процентах,
// округленную до 2 знаков. При нуле наблюдений возвращает 0.
func completionPercentage(sterilized, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(sterilized)/float64(total)*100*100) / 100
}

// ListMissionSightings возвращает наблюдения миссии.
// Если у миссии задан полигон, репозиторий возвращает только точки внутри него
// (ST_Within, граница не включается).
func (s *missionService) ListMissionSightings(ctx context.Context, id uuid.UUID) ([]*models.Sighting, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "ListMissionSightings",
		"mission_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Requested sightings for a non-existent mission")
		return nil, fmt.Errorf("service: mission not found: %w", err)
	}

	sightings, err := s.repo.ListSightings(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list mission sightings from repository")
		return nil, fmt.Errorf("service: could not list mission sightings: %w", err)
	}

	log.WithField("count", len(sightings)).Info("Mission sightings listed successfully")
	return sightings, nil
}

// GetDashboard собирает данные дашборда: миссию, KPI и наблюдения
func (s *missionService) GetDashboard(ctx context.Context, id uuid.UUID) (*models.MissionDashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetDashboard",
		"mission_id": id,
	})

	mission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Requested dashboard for a non-existent mission")
		return nil, fmt.Errorf("service: mission not found: %w", err)
	}

	stats, err := s.repo.GetStatistics(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get mission statistics for dashboard")
		return nil, fmt.Errorf("service: could not get mission statistics: %w", err)
	}

	sightings, err := s.repo.ListSightings(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list sightings for dashboard")
		return nil, fmt.Errorf("service: could not list mission sightings: %w", err)
	}

	stats.CompletionPercentage = completionPercentage(stats.SterilizedCount, stats.TotalSightings)

	return &models.MissionDashboard{
		Mission:   mission,
		Stats:     *stats,
		Sightings: sightings,
	}, nil
}
