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

// newTestMissionService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMissionService(t *testing.T) (*missionService, *mocks.MockMissionRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMissionRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewMissionService(repoMock, logger)
	return service.(*missionService), repoMock
}

// Замкнутый прямоугольник вокруг начала координат
func testPolygon() models.Polygon {
	return models.Polygon{
		{30.0, 50.0},
		{30.1, 50.0},
		{30.1, 50.1},
		{30.0, 50.1},
		{30.0, 50.0},
	}
}

func TestCreateMission_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	mission := &models.Mission{
		Title:     "Стерилизация в Подольском районе",
		CenterLat: 50.05,
		CenterLon: 30.05,
		Polygon:   testPolygon(),
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, mission).Return(nil).Times(1)

	// Действие
	err := service.CreateMission(ctx, mission)

	// Проверки
	require.NoError(t, err)
}

func TestCreateMission_InvalidPolygon(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	mission := &models.Mission{
		Title: "Миссия с незамкнутым полигоном",
		Polygon: models.Polygon{
			{30.0, 50.0},
			{30.1, 50.0},
			{30.1, 50.1},
			{30.0, 50.1}, // Кольцо не замкнуто
		},
	}

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0) // До репозитория дойти не должно

	// Действие
	err := service.CreateMission(ctx, mission)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidPolygon)
}

func TestCreateMission_NoPolygon(t *testing.T) {
	// Подготовка: полигон опционален, миссия без него валидна
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	mission := &models.Mission{
		Title:     "Миссия без полигона",
		CenterLat: 50.05,
		CenterLon: 30.05,
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, mission).Return(nil).Times(1)

	// Действие
	err := service.CreateMission(ctx, mission)

	// Проверки
	require.NoError(t, err)
}

func TestGetMission_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()
	expectedMission := &models.Mission{
		ID:    missionID,
		Title: "Миссия из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetMissionFromCache(ctx, missionID).
		Return(expectedMission, nil).
		Times(1)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0) // До бд дойти не должно

	// Действие
	mission, err := service.GetMission(ctx, missionID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedMission, mission)
}

func TestGetMission_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()
	expectedMission := &models.Mission{
		ID:    missionID,
		Title: "Миссия из бд",
	}

	// Ожидания: промах кеша, чтение из бд, запись в кеш
	repoMock.EXPECT().GetMissionFromCache(ctx, missionID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, missionID).Return(expectedMission, nil).Times(1)
	repoMock.EXPECT().SetMissionCache(ctx, expectedMission).Return(nil).Times(1)

	// Действие
	mission, err := service.GetMission(ctx, missionID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedMission, mission)
}

func TestGetMission_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetMissionFromCache(ctx, missionID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		GetByID(ctx, missionID).
		Return(nil, fmt.Errorf("mission with id %s: %w", missionID, models.ErrNotFound)).
		Times(1)

	// Действие
	mission, err := service.GetMission(ctx, missionID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, mission)
}

func TestUpdateMission_Success_InvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()
	existing := &models.Mission{
		ID:    missionID,
		Title: "Старое название",
	}
	update := &models.Mission{
		ID:        missionID,
		Title:     "Новое название",
		CenterLat: 50.05,
		CenterLon: 30.05,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, missionID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateMissionCache(ctx, missionID).Return(nil).Times(1)

	// Действие
	err := service.UpdateMission(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Новое название", update.Title)
}

func TestUpdateMission_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()
	update := &models.Mission{ID: missionID, Title: "Обновление"}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, missionID).
		Return(nil, fmt.Errorf("mission with id %s: %w", missionID, models.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateMission(ctx, update)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteMission_Success_InvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, missionID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateMissionCache(ctx, missionID).Return(nil).Times(1)

	// Действие
	err := service.DeleteMission(ctx, missionID)

	// Проверки
	require.NoError(t, err)
}

func TestListMissions_ClampsPagination(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()

	// Ожидания: невалидные page и pageSize заменяются значениями по умолчанию
	repoMock.EXPECT().ListMissions(ctx, 1, 20).Return([]*models.Mission{}, nil).Times(1)

	// Действие
	missions, err := service.ListMissions(ctx, 0, 500)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestGetStatistics_CompletionPercentage(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, missionID).Return(&models.Mission{ID: missionID}, nil).Times(1)
	repoMock.EXPECT().
		GetStatistics(ctx, missionID).
		Return(&models.MissionStatistics{TotalSightings: 3, SterilizedCount: 1}, nil).
		Times(1)

	// Действие
	stats, err := service.GetStatistics(ctx, missionID)

	// Проверки: 1/3 с округлением до 2 знаков
	require.NoError(t, err)
	assert.Equal(t, 33.33, stats.CompletionPercentage)
}

func TestGetStatistics_ZeroSightings(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, missionID).Return(&models.Mission{ID: missionID}, nil).Times(1)
	repoMock.EXPECT().
		GetStatistics(ctx, missionID).
		Return(&models.MissionStatistics{TotalSightings: 0, SterilizedCount: 0}, nil).
		Times(1)

	// Действие
	stats, err := service.GetStatistics(ctx, missionID)

	// Проверки: деления на ноль нет, процент равен 0
	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.CompletionPercentage)
}

func TestCompletionPercentage_Rounding(t *testing.T) {
	assert.Equal(t, float64(0), completionPercentage(0, 0))
	assert.Equal(t, float64(0), completionPercentage(0, 7))
	assert.Equal(t, 66.67, completionPercentage(2, 3))
	assert.Equal(t, float64(100), completionPercentage(5, 5))
	assert.Equal(t, 14.29, completionPercentage(1, 7))
}

func TestGetDashboard_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()
	mission := &models.Mission{ID: missionID, Title: "Миссия для дашборда"}
	sightings := []*models.Sighting{
		{ID: uuid.New(), MissionID: missionID, Sterilized: true},
		{ID: uuid.New(), MissionID: missionID},
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, missionID).Return(mission, nil).Times(1)
	repoMock.EXPECT().
		GetStatistics(ctx, missionID).
		Return(&models.MissionStatistics{TotalSightings: 2, SterilizedCount: 1, AreaCoveredKm2: 1.5}, nil).
		Times(1)
	repoMock.EXPECT().ListSightings(ctx, missionID).Return(sightings, nil).Times(1)

	// Действие
	dashboard, err := service.GetDashboard(ctx, missionID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, mission, dashboard.Mission)
	assert.Equal(t, 50.0, dashboard.Stats.CompletionPercentage)
	assert.Len(t, dashboard.Sightings, 2)
}

func TestGetDashboard_MissionNotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestMissionService(t)
	ctx := context.Background()
	missionID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, missionID).
		Return(nil, fmt.Errorf("mission with id %s: %w", missionID, models.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	dashboard, err := service.GetDashboard(ctx, missionID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, dashboard)
}
