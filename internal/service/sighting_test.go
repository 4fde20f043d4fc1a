package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestSightingService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSightingService(t *testing.T) (*sightingService, *mocks.MockSightingRepository, *mocks.MockMissionRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSightingRepository(ctrl)
	missionRepoMock := mocks.NewMockMissionRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewSightingService(repoMock, missionRepoMock, logger)
	return service.(*sightingService), repoMock, missionRepoMock
}

func TestCreateSighting_Success(t *testing.T) {
	// Подготовка
	service, repoMock, missionRepoMock := newTestSightingService(t)
	ctx := context.Background()
	missionID := uuid.New()
	sighting := &models.Sighting{
		MissionID: missionID,
		Name:      "Рыжий кот",
		Longitude: 30.05,
		Latitude:  50.05,
	}

	// Ожидания
	missionRepoMock.EXPECT().GetByID(ctx, missionID).Return(&models.Mission{ID: missionID}, nil).Times(1)
	missionRepoMock.EXPECT().ContainsPoint(ctx, missionID, 30.05, 50.05).Return(true, nil).Times(1)
	repoMock.EXPECT().Create(ctx, sighting).Return(nil).Times(1)

	// Действие
	err := service.CreateSighting(ctx, sighting)

	// Проверки
	require.NoError(t, err)
}

func TestCreateSighting_OutsidePolygonIsAllowed(t *testing.T) {
	// Подготовка: точка вне полигона не отклоняется, только логируется
	service, repoMock, missionRepoMock := newTestSightingService(t)
	ctx := context.Background()
	missionID := uuid.New()
	sighting := &models.Sighting{
		MissionID: missionID,
		Name:      "Пес за границей миссии",
		Longitude: 31.0,
		Latitude:  51.0,
	}

	// Ожидания
	missionRepoMock.EXPECT().GetByID(ctx, missionID).Return(&models.Mission{ID: missionID}, nil).Times(1)
	missionRepoMock.EXPECT().ContainsPoint(ctx, missionID, 31.0, 51.0).Return(false, nil).Times(1)
	repoMock.EXPECT().Create(ctx, sighting).Return(nil).Times(1)

	// Действие
	err := service.CreateSighting(ctx, sighting)

	// Проверки
	require.NoError(t, err)
}

func TestCreateSighting_MissionNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, missionRepoMock := newTestSightingService(t)
	ctx := context.Background()
	missionID := uuid.New()
	sighting := &models.Sighting{MissionID: missionID}

	// Ожидания
	missionRepoMock.EXPECT().
		GetByID(ctx, missionID).
		Return(nil, fmt.Errorf("mission with id %s: %w", missionID, models.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateSighting(ctx, sighting)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateSighting_MoveToOtherMission(t *testing.T) {
	// Подготовка: при смене миссии новая миссия должна существовать
	service, repoMock, missionRepoMock := newTestSightingService(t)
	ctx := context.Background()
	sightingID := uuid.New()
	oldMissionID := uuid.New()
	newMissionID := uuid.New()
	existing := &models.Sighting{ID: sightingID, MissionID: oldMissionID}
	update := &models.Sighting{
		ID:         sightingID,
		MissionID:  newMissionID,
		Name:       "Перенесенное наблюдение",
		Sterilized: true,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, sightingID).Return(existing, nil).Times(1)
	missionRepoMock.EXPECT().GetByID(ctx, newMissionID).Return(&models.Mission{ID: newMissionID}, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	// Действие
	err := service.UpdateSighting(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, newMissionID, update.MissionID)
	assert.True(t, update.Sterilized)
}

func TestUpdateSighting_NewMissionNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, missionRepoMock := newTestSightingService(t)
	ctx := context.Background()
	sightingID := uuid.New()
	newMissionID := uuid.New()
	existing := &models.Sighting{ID: sightingID, MissionID: uuid.New()}
	update := &models.Sighting{ID: sightingID, MissionID: newMissionID}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, sightingID).Return(existing, nil).Times(1)
	missionRepoMock.EXPECT().
		GetByID(ctx, newMissionID).
		Return(nil, fmt.Errorf("mission with id %s: %w", newMissionID, models.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateSighting(ctx, update)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteSighting_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSightingService(t)
	ctx := context.Background()
	sightingID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Delete(ctx, sightingID).
		Return(fmt.Errorf("sighting with id %s: %w", sightingID, models.ErrNotFound)).
		Times(1)

	// Действие
	err := service.DeleteSighting(ctx, sightingID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListSightings_ClampsPagination(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSightingService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListSightings(ctx, 1, 20).Return([]*models.Sighting{}, nil).Times(1)

	// Действие
	sightings, err := service.ListSightings(ctx, -3, 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, sightings)
}
