package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service/mocks"
	"github.com/tmorozova/animal_rescue_system/internal/webhook"
	webhook_mocks "github.com/tmorozova/animal_rescue_system/internal/webhook/mocks"
	"go.uber.org/mock/gomock"
)

// newTestEmergencyService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestEmergencyService(t *testing.T) (*emergencyService, *mocks.MockEmergencyRepository, *mocks.MockUserRepository, *webhook_mocks.MockEmergencyPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEmergencyRepository(ctrl)
	userRepoMock := mocks.NewMockUserRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEmergencyPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewEmergencyService(repoMock, userRepoMock, logger, publisherMock)
	return service.(*emergencyService), repoMock, userRepoMock, publisherMock
}

func TestCreateEmergency_DefaultsAndPublish(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{
		Title:      "Собака застряла в заборе",
		Lat:        50.45,
		Lng:        30.52,
		ReporterID: uuid.New(),
	}

	// Ожидания: статус принудительно reported, severity по умолчанию medium,
	// после создания публикуется событие в очередь вебхуков
	repoMock.EXPECT().
		Create(ctx, emergency).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			e.ID = uuid.New()
			e.CreatedAt = time.Now()
			return nil
		}).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.EmergencyEvent) error {
			assert.Equal(t, emergency.ID, event.EmergencyID)
			assert.Equal(t, models.SeverityMedium, event.Severity)
			assert.False(t, event.Critical)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateEmergency(ctx, emergency)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, emergency.Status)
	assert.Equal(t, models.SeverityMedium, emergency.Severity)
}

func TestCreateEmergency_PublishFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{
		Title:      "Кошка на дереве",
		Severity:   models.SeverityCritical,
		ReporterID: uuid.New(),
	}

	// Ожидания: ошибка публикации не ломает создание
	repoMock.EXPECT().Create(ctx, emergency).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis is down")).
		Times(1)

	// Действие
	err := service.CreateEmergency(ctx, emergency)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateEmergencyStatus_ResolvedStampsResolvedAt(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()
	frozenNow := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return frozenNow }

	existing := &models.Emergency{
		ID:     emergencyID,
		Status: models.StatusInProgress,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, emergencyID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	// Действие
	emergency, err := service.UpdateEmergencyStatus(ctx, emergencyID, models.StatusResolved)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, emergency.Status)
	require.NotNil(t, emergency.ResolvedAt)
	assert.Equal(t, frozenNow, *emergency.ResolvedAt)
}

func TestUpdateEmergencyStatus_BackwardsKeepsResolvedAt(t *testing.T) {
	// Подготовка: обратный переход из resolved не сбрасывает resolved_at
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()
	resolvedAt := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)

	existing := &models.Emergency{
		ID:         emergencyID,
		Status:     models.StatusResolved,
		ResolvedAt: &resolvedAt,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, emergencyID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	// Действие
	emergency, err := service.UpdateEmergencyStatus(ctx, emergencyID, models.StatusInProgress)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, emergency.Status)
	require.NotNil(t, emergency.ResolvedAt)
	assert.Equal(t, resolvedAt, *emergency.ResolvedAt)
}

func TestUpdateEmergencyStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()

	// Ожидания: до репозитория дойти не должно
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	emergency, err := service.UpdateEmergencyStatus(ctx, emergencyID, "escalated")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Nil(t, emergency)
}

func TestAssignEmergency_Success(t *testing.T) {
	// Подготовка
	service, repoMock, userRepoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()
	userID := uuid.New()
	assignee := &models.User{ID: userID, Username: "volunteer1", FirstName: "Анна"}
	existing := &models.Emergency{ID: emergencyID, Status: models.StatusReported}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, emergencyID).Return(existing, nil).Times(1)
	userRepoMock.EXPECT().GetByID(ctx, userID).Return(assignee, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	// Действие
	emergency, err := service.AssignEmergency(ctx, emergencyID, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, emergency.Status)
	require.NotNil(t, emergency.AssignedTo)
	assert.Equal(t, userID, *emergency.AssignedTo)
	assert.Equal(t, assignee, emergency.Assignee)
}

func TestAssignEmergency_UserNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, userRepoMock, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()
	userID := uuid.New()
	existing := &models.Emergency{ID: emergencyID, Status: models.StatusReported}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, emergencyID).Return(existing, nil).Times(1)
	userRepoMock.EXPECT().
		GetByID(ctx, userID).
		Return(nil, fmt.Errorf("user with id %s: %w", userID, models.ErrNotFound)).
		Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	emergency, err := service.AssignEmergency(ctx, emergencyID, userID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, emergency)
}

func TestListEmergencies_RadiusFilter(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	lat, lng, radius := 50.0, 30.0, 111.0

	// Ожидания: прямоугольник +-1 градус широты, долгота масштабируется
	// как radius/(111*|lat|)
	repoMock.EXPECT().
		ListEmergencies(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
			require.NotNil(t, filter.LatMin)
			assert.InDelta(t, 49.0, *filter.LatMin, 1e-9)
			assert.InDelta(t, 51.0, *filter.LatMax, 1e-9)
			assert.InDelta(t, 30.0-111.0/(111.0*50.0), *filter.LngMin, 1e-9)
			assert.InDelta(t, 30.0+111.0/(111.0*50.0), *filter.LngMax, 1e-9)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	// Действие
	_, err := service.ListEmergencies(ctx, models.EmergencyListParams{Lat: &lat, Lng: &lng, RadiusKm: &radius})

	// Проверки
	require.NoError(t, err)
}

func TestListEmergencies_ActiveOnlyExcludesFinalStatuses(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ListEmergencies(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
			assert.Equal(t, []string{models.StatusResolved, models.StatusClosed}, filter.ExcludeStatuses)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	// Действие
	_, err := service.ListEmergencies(ctx, models.EmergencyListParams{ActiveOnly: true})

	// Проверки
	require.NoError(t, err)
}

func TestListEmergencies_CriticalOnlyOverridesSeverity(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ListEmergencies(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
			assert.Equal(t, models.SeverityCritical, filter.Severity)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	// Действие
	_, err := service.ListEmergencies(ctx, models.EmergencyListParams{Severity: models.SeverityLow, CriticalOnly: true})

	// Проверки
	require.NoError(t, err)
}

func TestListEmergencies_TimeRange(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	frozenNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return frozenNow }

	// Ожидания
	repoMock.EXPECT().
		ListEmergencies(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
			require.NotNil(t, filter.CreatedAfter)
			assert.Equal(t, frozenNow.Add(-24*time.Hour), *filter.CreatedAfter)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	// Действие
	_, err := service.ListEmergencies(ctx, models.EmergencyListParams{TimeRange: "24h"})

	// Проверки
	require.NoError(t, err)
}

func TestListEmergencies_UnknownTimeRangeIgnored(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ListEmergencies(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
			assert.Nil(t, filter.CreatedAfter)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	// Действие
	_, err := service.ListEmergencies(ctx, models.EmergencyListParams{TimeRange: "30d"})

	// Проверки
	require.NoError(t, err)
}

func TestGetStatistics_DayStartIsLocalMidnight(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	loc := time.FixedZone("UTC+3", 3*60*60)
	frozenNow := time.Date(2025, 6, 15, 1, 30, 0, 0, loc)
	service.now = func() time.Time { return frozenNow }

	expected := &models.EmergencyStatistics{Total: 10, Critical: 2, High: 3, Active: 5, ResolvedToday: 1}

	// Ожидания: resolved_today считается от местной полуночи
	repoMock.EXPECT().
		GetStatistics(ctx, time.Date(2025, 6, 15, 0, 0, 0, 0, loc)).
		Return(expected, nil).
		Times(1)

	// Действие
	stats, err := service.GetStatistics(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestUpdateEmergency_UnknownSeverity(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergency := &models.Emergency{ID: uuid.New(), Title: "Обновление", Severity: "catastrophic"}

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateEmergency(ctx, emergency)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateEmergency_KeepsReporter(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestEmergencyService(t)
	ctx := context.Background()
	emergencyID := uuid.New()
	reporterID := uuid.New()
	existing := &models.Emergency{
		ID:         emergencyID,
		Title:      "Старое название",
		Severity:   models.SeverityHigh,
		Status:     models.StatusInProgress,
		ReporterID: reporterID,
	}
	update := &models.Emergency{
		ID:    emergencyID,
		Title: "Новое название",
		Lat:   50.4,
		Lng:   30.5,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, emergencyID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	// Действие
	err := service.UpdateEmergency(ctx, update)

	// Проверки: репортер и статус не изменились, severity без значения сохранилась
	require.NoError(t, err)
	assert.Equal(t, reporterID, update.ReporterID)
	assert.Equal(t, models.StatusInProgress, update.Status)
	assert.Equal(t, models.SeverityHigh, update.Severity)
	assert.Equal(t, "Новое название", update.Title)
}
