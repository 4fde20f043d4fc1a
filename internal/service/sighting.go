package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tmorozova/animal_rescue_system/internal/models"
)

// SightingRepository определяет контракт для работы с бд наблюдений
type SightingRepository interface {
	Create(ctx context.Context, sighting *models.Sighting) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sighting, error)
	Update(ctx context.Context, sighting *models.Sighting) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListSightings(ctx context.Context, page, pageSize int) ([]*models.Sighting, error)
}

// SightingService определяет контракт для бизнес-логики наблюдений
type SightingService interface {
	CreateSighting(ctx context.Context, sighting *models.Sighting) error
	GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error)
	UpdateSighting(ctx context.Context, sighting *models.Sighting) error
	DeleteSighting(ctx context.Context, id uuid.UUID) error
	ListSightings(ctx context.Context, page, pageSize int) ([]*models.Sighting, error)
}

type sightingService struct {
	repo        SightingRepository
	missionRepo MissionRepository
	logger      *logrus.Logger
}

func NewSightingService(repo SightingRepository, missionRepo MissionRepository, logger *logrus.Logger) SightingService {
	return &sightingService{
		repo:        repo,
		missionRepo: missionRepo,
		logger:      logger,
	}
}

// CreateSighting создает наблюдение. Миссия должна существовать.
// Вхождение точки в полигон миссии не обязательно: наблюдение вне границы
// сохраняется, но пишется предупреждение в лог.
func (s *sightingService) CreateSighting(ctx context.Context, sighting *models.Sighting) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "sighting",
		"method":     "CreateSighting",
		"mission_id": sighting.MissionID,
		"name":       sighting.Name,
	})
	log.Info("Attempting to create a new sighting")

	if _, err := s.missionRepo.GetByID(ctx, sighting.MissionID); err != nil {
		log.WithError(err).Warn("Attempted to create a sighting for a non-existent mission")
		return fmt.Errorf("service: mission not found: %w", err)
	}

	inside, err := s.missionRepo.ContainsPoint(ctx, sighting.MissionID, sighting.Longitude, sighting.Latitude)
	if err != nil {
		log.WithError(err).Warn("Failed to check sighting containment")
	} else if !inside {
		log.Warn("Sighting location is outside the mission polygon")
	}

	if err := s.repo.Create(ctx, sighting); err != nil {
		log.WithError(err).Error("Failed to create sighting in repository")
		return fmt.Errorf("service: could not create sighting: %w", err)
	}

	log.WithField("sighting_id", sighting.ID).Info("Sighting created successfully")
	return nil
}

// GetSighting получает наблюдение по ID
func (s *sightingService) GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "sighting",
		"method":      "GetSighting",
		"sighting_id": id,
	})

	sighting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get sighting from repository")
		return nil, fmt.Errorf("service: could not get sighting: %w", err)
	}

	return sighting, nil
}

// UpdateSighting обновляет существующее наблюдение
func (s *sightingService) UpdateSighting(ctx context.Context, sighting *models.Sighting) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "sighting",
		"method":      "UpdateSighting",
		"sighting_id": sighting.ID,
	})
	log.Info("Attempting to update sighting")

	existing, err := s.repo.GetByID(ctx, sighting.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent sighting")
		return fmt.Errorf("service: sighting not found for update: %w", err)
	}

	if sighting.MissionID != existing.MissionID {
		if _, err := s.missionRepo.GetByID(ctx, sighting.MissionID); err != nil {
			log.WithError(err).Warn("Attempted to move sighting to a non-existent mission")
			return fmt.Errorf("service: mission not found: %w", err)
		}
	}

	existing.MissionID = sighting.MissionID
	existing.Name = sighting.Name
	existing.Sterilized = sighting.Sterilized
	existing.Longitude = sighting.Longitude
	existing.Latitude = sighting.Latitude

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update sighting in repository")
		return fmt.Errorf("service: could not update sighting: %w", err)
	}

	*sighting = *existing
	log.Info("Sighting updated successfully")
	return nil
}

// DeleteSighting удаляет наблюдение
func (s *sightingService) DeleteSighting(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "sighting",
		"method":      "DeleteSighting",
		"sighting_id": id,
	})
	log.Info("Attempting to delete sighting")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete sighting in repository")
		return fmt.Errorf("service: could not delete sighting: %w", err)
	}

	log.Info("Sighting deleted successfully")
	return nil
}

// ListSightings возвращает список наблюдений с пагинацией
func (s *sightingService) ListSightings(ctx context.Context, page, pageSize int) ([]*models.Sighting, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "sighting",
		"method":    "ListSightings",
		"page":      page,
		"page_size": pageSize,
	})

	sightings, err := s.repo.ListSightings(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list sightings from repository")
		return nil, fmt.Errorf("service: could not list sightings: %w", err)
	}

	log.WithField("count", len(sightings)).Info("Sightings listed successfully")
	return sightings, nil
}
