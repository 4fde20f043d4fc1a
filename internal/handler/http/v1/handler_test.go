package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorozova/animal_rescue_system/internal/config"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	missions    *mocks.MockMissionService
	sightings   *mocks.MockSightingService
	emergencies *mocks.MockEmergencyService
	users       *mocks.MockUserRepository
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		missions:    mocks.NewMockMissionService(ctrl),
		sightings:   mocks.NewMockSightingService(ctrl),
		emergencies: mocks.NewMockEmergencyService(ctrl),
		users:       mocks.NewMockUserRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	handler := NewHandler(m.missions, m.sightings, m.emergencies, m.users, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// authHeader возвращает заголовок токена и настраивает мок пользователей
func authHeader(m testMocks, user *models.User) map[string]string {
	m.users.EXPECT().GetByToken(gomock.Any(), "test-token").Return(user, nil).AnyTimes()
	return map[string]string{"X-API-Key": "test-token"}
}

func testUser() *models.User {
	return &models.User{
		ID:        uuid.New(),
		Username:  "reporter1",
		FirstName: "Мария",
		LastName:  "Ковальчук",
	}
}

func TestCreateMission_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := CreateMissionRequest{
		Title:     "Стерилизация в Дарницком районе",
		City:      "Kyiv",
		Area:      "Darnytskyi",
		CenterLat: 50.4,
		CenterLon: 30.6,
	}

	m.missions.EXPECT().
		CreateMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mission *models.Mission) error {
			mission.ID = missionID
			mission.CreatedAt = time.Now()
			mission.UpdatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, missionID, resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.Equal(t, reqBody.CenterLat, resp.Center.Lat)
	assert.Equal(t, reqBody.CenterLon, resp.Center.Lng)
}

func TestCreateMission_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.missions.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateMission_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateMissionRequest{ // Отсутствует Title
		City:      "Kyiv",
		Area:      "Darnytskyi",
		CenterLat: 50.4,
		CenterLon: 30.6,
	}

	m.missions.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateMission_InvalidPolygon(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateMissionRequest{
		Title:     "Миссия с плохим полигоном",
		City:      "Kyiv",
		Area:      "Darnytskyi",
		CenterLat: 50.4,
		CenterLon: 30.6,
		Polygon:   [][]float64{{30.0, 50.0}, {30.1, 50.0}, {30.1, 50.1}},
	}

	m.missions.EXPECT().
		CreateMission(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w: ring must contain at least 4 points", models.ErrInvalidPolygon)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMission_EquatorCenterAccepted(t *testing.T) {
	// Нулевые координаты центра - валидная точка, а не отсутствующее поле
	_, m, router := newTestHandler(t)
	reqBody := CreateMissionRequest{
		Title:     "Миссия на экваторе",
		City:      "Libreville",
		Area:      "Centre",
		CenterLat: 0,
		CenterLon: 9.45,
	}

	m.missions.EXPECT().
		CreateMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mission *models.Mission) error {
			assert.Zero(t, mission.CenterLat)
			mission.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetMission_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	missionID := uuid.New()

	m.missions.EXPECT().
		GetMission(gomock.Any(), missionID).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/missions/"+missionID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "mission not found")
}

func TestGetMission_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.missions.EXPECT().GetMission(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/missions/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid mission ID")
}

func TestListMissions_DefaultPagination(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.missions.EXPECT().
		ListMissions(gomock.Any(), 1, 20).
		Return([]*models.Mission{{ID: uuid.New(), Title: "Миссия 1"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/missions", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestDeleteMission_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	missionID := uuid.New()

	m.missions.EXPECT().DeleteMission(gomock.Any(), missionID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/missions/"+missionID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetMissionStatistics_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	missionID := uuid.New()

	m.missions.EXPECT().
		GetStatistics(gomock.Any(), missionID).
		Return(&models.MissionStatistics{
			TotalSightings:       4,
			SterilizedCount:      3,
			CompletionPercentage: 75,
			AreaCoveredKm2:       2.5,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/missions/"+missionID.String()+"/statistics", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MissionStatisticsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalSightings)
	assert.Equal(t, 75.0, resp.CompletionPercentage)
}

func TestGetMissionDashboard_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	missionID := uuid.New()
	sightingID := uuid.New()

	m.missions.EXPECT().
		GetDashboard(gomock.Any(), missionID).
		Return(&models.MissionDashboard{
			Mission: &models.Mission{ID: missionID, Title: "Дашборд-миссия"},
			Stats:   models.MissionStatistics{TotalSightings: 1, SterilizedCount: 1, AreaCoveredKm2: 0.7},
			Sightings: []*models.Sighting{
				{ID: sightingID, MissionID: missionID, Name: "Кот", Sterilized: true, Longitude: 30.5, Latitude: 50.4},
			},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/missions/"+missionID.String()+"/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MissionDashboardResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, missionID, resp.MissionDetails.ID)
	assert.Equal(t, 1, resp.KPIs.AnimalsCovered)
	assert.Equal(t, "FeatureCollection", resp.GeoJSON.Type)
	require.Len(t, resp.GeoJSON.Features, 1)
	assert.Equal(t, []float64{30.5, 50.4}, resp.GeoJSON.Features[0].Geometry.Coordinates)
	assert.NotNil(t, resp.Volunteers)
	assert.Empty(t, resp.Volunteers)
}

func TestCreateSighting_MissionNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateSightingRequest{
		MissionID: uuid.New(),
		Name:      "Собака",
		Longitude: 30.5,
		Latitude:  50.4,
	}

	m.sightings.EXPECT().
		CreateSighting(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: mission not found: %w", models.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sightings", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "mission not found")
}

func TestCreateSighting_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sightingID := uuid.New()
	reqBody := CreateSightingRequest{
		MissionID: uuid.New(),
		Name:      "Кошка с меткой",
		Longitude: 30.5,
		Latitude:  50.4,
	}

	m.sightings.EXPECT().
		CreateSighting(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sighting *models.Sighting) error {
			sighting.ID = sightingID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sightings", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SightingResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, sightingID, resp.ID)
	assert.Equal(t, []float64{30.5, 50.4}, resp.Coordinates)
}

func TestEmergencies_RequireToken(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.emergencies.EXPECT().ListEmergencies(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergencies", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API token required")
}

func TestEmergencies_InvalidToken(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.users.EXPECT().
		GetByToken(gomock.Any(), "bad-token").
		Return(nil, fmt.Errorf("unknown api token: %w", models.ErrUnauthorized)).
		Times(1)
	m.emergencies.EXPECT().ListEmergencies(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergencies", nil, map[string]string{"X-API-Key": "bad-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid API token")
}

func TestEmergencies_BearerTokenAccepted(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()

	m.users.EXPECT().GetByToken(gomock.Any(), "test-token").Return(user, nil).Times(1)
	m.emergencies.EXPECT().
		ListEmergencies(gomock.Any(), gomock.Any()).
		Return([]*models.Emergency{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies", nil, map[string]string{"Authorization": "Bearer test-token"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateEmergency_ReporterFromToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()
	emergencyID := uuid.New()
	reqBody := CreateEmergencyRequest{
		Title:       "Раненая птица на обочине",
		Description: "Нужна помощь волонтера",
		Lat:         50.45,
		Lng:         30.52,
	}

	m.emergencies.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, emergency *models.Emergency) error {
			assert.Equal(t, user.ID, emergency.ReporterID)
			emergency.ID = emergencyID
			emergency.Status = models.StatusReported
			emergency.Severity = models.SeverityMedium
			emergency.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, emergencyID, resp.ID)
	assert.Equal(t, user.ID, resp.Reporter)
	assert.Equal(t, "Мария Ковальчук", resp.ReporterName)
	assert.Equal(t, models.StatusReported, resp.Status)
	assert.Equal(t, "Just now", resp.TimeSinceCreated)
}

func TestCreateEmergency_InvalidSeverity(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()
	reqBody := CreateEmergencyRequest{
		Title:       "Плохая severity",
		Description: "Описание",
		Lat:         50.45,
		Lng:         30.52,
		Severity:    "catastrophic",
	}

	m.emergencies.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestCreateEmergency_ZeroCoordinatesAccepted(t *testing.T) {
	// Происшествие на экваторе/нулевом меридиане не должно отклоняться валидацией
	_, m, router := newTestHandler(t)
	user := testUser()
	reqBody := CreateEmergencyRequest{
		Title:       "Происшествие на нулевых координатах",
		Description: "Точка на экваторе",
		Lat:         0,
		Lng:         0,
	}

	m.emergencies.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, emergency *models.Emergency) error {
			assert.Zero(t, emergency.Lat)
			assert.Zero(t, emergency.Lng)
			emergency.ID = uuid.New()
			emergency.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateEmergency_InvalidSeverityFromService(t *testing.T) {
	// Сервисная проверка severity должна отдаваться как 400, а не 500
	_, m, router := newTestHandler(t)
	user := testUser()
	emergencyID := uuid.New()
	reqBody := UpdateEmergencyRequest{
		Title:       "Обновление с плохой severity",
		Description: "Описание",
		Lat:         50.45,
		Lng:         30.52,
	}

	m.emergencies.EXPECT().
		UpdateEmergency(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w: unknown severity %q", models.ErrInvalidStatus, "catastrophic")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/emergencies/"+emergencyID.String(), bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid severity")
}

func TestListEmergencies_QueryFilters(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()

	m.emergencies.EXPECT().
		ListEmergencies(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params models.EmergencyListParams) ([]*models.Emergency, error) {
			assert.Equal(t, "high", params.Severity)
			assert.Equal(t, "24h", params.TimeRange)
			require.NotNil(t, params.Lat)
			assert.Equal(t, 50.4, *params.Lat)
			require.NotNil(t, params.Lng)
			assert.Equal(t, 30.5, *params.Lng)
			require.NotNil(t, params.RadiusKm)
			assert.Equal(t, 10.0, *params.RadiusKm)
			return []*models.Emergency{}, nil
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies?severity=high&lat=50.4&lng=30.5&radius=10&time_range=24h", nil, authHeader(m, user))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestActiveEmergencies_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()

	m.emergencies.EXPECT().
		ListEmergencies(gomock.Any(), gomock.Any()).
		Return([]*models.Emergency{
			{ID: uuid.New(), Title: "Активное происшествие", Status: models.StatusInProgress, ReporterID: user.ID, CreatedAt: time.Now()},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/active", nil, authHeader(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, models.StatusInProgress, resp[0].Status)
}

func TestAssignEmergency_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()
	emergencyID := uuid.New()
	reqBody := AssignEmergencyRequest{UserID: uuid.New()}

	m.emergencies.EXPECT().
		AssignEmergency(gomock.Any(), emergencyID, reqBody.UserID).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/assign", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEmergencyStatus_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()
	emergencyID := uuid.New()
	reqBody := UpdateEmergencyStatusRequest{Status: "escalated"}

	m.emergencies.EXPECT().
		UpdateEmergencyStatus(gomock.Any(), emergencyID, "escalated").
		Return(nil, fmt.Errorf("service: %w: unknown status %q", models.ErrInvalidStatus, "escalated")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/update_status", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status")
}

func TestUpdateEmergencyStatus_Resolved(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()
	emergencyID := uuid.New()
	resolvedAt := time.Now()
	reqBody := UpdateEmergencyStatusRequest{Status: models.StatusResolved}

	m.emergencies.EXPECT().
		UpdateEmergencyStatus(gomock.Any(), emergencyID, models.StatusResolved).
		Return(&models.Emergency{
			ID:         emergencyID,
			Title:      "Закрытое происшествие",
			Status:     models.StatusResolved,
			ReporterID: user.ID,
			CreatedAt:  time.Now().Add(-5 * time.Minute),
			ResolvedAt: &resolvedAt,
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/update_status", bytes.NewBuffer(bodyBytes), authHeader(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resp.Status)
	require.NotNil(t, resp.ResolvedAt)
}

func TestEmergencyStatistics_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()

	m.emergencies.EXPECT().
		GetStatistics(gomock.Any()).
		Return(&models.EmergencyStatistics{Total: 12, Critical: 2, High: 4, Active: 7, ResolvedToday: 3}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/statistics", nil, authHeader(m, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyStatisticsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 3, resp.ResolvedToday)
}

func TestEmergencyStatistics_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := testUser()

	m.emergencies.EXPECT().
		GetStatistics(gomock.Any()).
		Return(nil, errors.New("db is down")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/statistics", nil, authHeader(m, user))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
