package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateMissionRequest DTO для создания миссии
// @Description DTO для создания миссии
type CreateMissionRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	City        string  `json:"city" validate:"required,max=100"`
	Area        string  `json:"area" validate:"required,max=100"`
	CenterLat   float64 `json:"center_lat" validate:"latitude"`
	CenterLon   float64 `json:"center_lon" validate:"longitude"`
	// Замкнутое кольцо [lng, lat], опционально
	Polygon [][]float64 `json:"polygon,omitempty"`
}

// UpdateMissionRequest DTO для обновления миссии
// @Description DTO для обновления миссии
type UpdateMissionRequest struct {
	Title       string      `json:"title" validate:"required,min=2,max=200"`
	Description string      `json:"description,omitempty"`
	Date        string      `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	City        string      `json:"city" validate:"required,max=100"`
	Area        string      `json:"area" validate:"required,max=100"`
	CenterLat   float64     `json:"center_lat" validate:"latitude"`
	CenterLon   float64     `json:"center_lon" validate:"longitude"`
	Polygon     [][]float64 `json:"polygon,omitempty"`
}

// CenterResponse - центр миссии в виде пары координат
type CenterResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MissionResponse DTO для ответа с информацией о миссии
// @Description DTO для ответа с информацией о миссии
type MissionResponse struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Date            string         `json:"date,omitempty"`
	City            string         `json:"city"`
	Area            string         `json:"area"`
	CenterLat       float64        `json:"center_lat"`
	CenterLon       float64        `json:"center_lon"`
	Center          CenterResponse `json:"center"`
	Polygon         [][]float64    `json:"polygon,omitempty"`
	AreaCoverageKm2 float64        `json:"area_coverage_km2"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// MissionStatisticsResponse DTO для статистики миссии
// @Description DTO для статистики миссии
type MissionStatisticsResponse struct {
	TotalSightings       int     `json:"total_sightings"`
	SterilizedCount      int     `json:"sterilized_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
	AreaCoveredKm2       float64 `json:"area_covered_km2"`
}

// CreateSightingRequest DTO для создания наблюдения
// @Description DTO для создания наблюдения
type CreateSightingRequest struct {
	MissionID  uuid.UUID `json:"mission_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	Sterilized bool      `json:"sterilized"`
	Longitude  float64   `json:"longitude" validate:"longitude"`
	Latitude   float64   `json:"latitude" validate:"latitude"`
}

// UpdateSightingRequest DTO для обновления наблюдения
// @Description DTO для обновления наблюдения
type UpdateSightingRequest struct {
	MissionID  uuid.UUID `json:"mission_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	Sterilized bool      `json:"sterilized"`
	Longitude  float64   `json:"longitude" validate:"longitude"`
	Latitude   float64   `json:"latitude" validate:"latitude"`
}

// SightingResponse DTO для ответа с информацией о наблюдении
// @Description DTO для ответа с информацией о наблюдении
type SightingResponse struct {
	ID         uuid.UUID `json:"id"`
	MissionID  uuid.UUID `json:"mission_id"`
	Name       string    `json:"name"`
	Sterilized bool      `json:"sterilized"`
	Longitude  float64   `json:"longitude"`
	Latitude   float64   `json:"latitude"`
	// Координаты в порядке [lng, lat]
	Coordinates []float64 `json:"coordinates"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GeoJSONGeometry - геометрия точки в GeoJSON
type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// GeoJSONProperties - свойства наблюдения в GeoJSON
type GeoJSONProperties struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Sterilized bool      `json:"sterilized"`
	CreatedAt  string    `json:"created_at"`
}

// GeoJSONFeature - наблюдение в виде GeoJSON Feature
type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   GeoJSONGeometry   `json:"geometry"`
	Properties GeoJSONProperties `json:"properties"`
}

// GeoJSONFeatureCollection - коллекция наблюдений миссии
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

// DashboardKPIs - ключевые показатели дашборда миссии
type DashboardKPIs struct {
	AnimalsCovered   int     `json:"animals_covered"`
	TaggedSterilized int     `json:"tagged_sterilized"`
	AreaCoverageKm2  float64 `json:"area_coverage_km2"`
}

// MissionDashboardResponse DTO для дашборда миссии
// @Description DTO для дашборда миссии
type MissionDashboardResponse struct {
	MissionDetails *MissionResponse         `json:"mission_details"`
	KPIs           DashboardKPIs            `json:"kpis"`
	GeoJSON        GeoJSONFeatureCollection `json:"geo_json"`
	// Всегда пустой список, поле оставлено для совместимости ответа
	Volunteers []string `json:"volunteers"`
}

// CreateEmergencyRequest DTO для создания происшествия.
// Репортер берется из аутентифицированного пользователя, не из тела запроса.
// @Description DTO для создания происшествия
type CreateEmergencyRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lng         float64 `json:"lng" validate:"longitude"`
	Severity    string  `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	PhotoURL    string  `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// UpdateEmergencyRequest DTO для обновления происшествия
// @Description DTO для обновления происшествия
type UpdateEmergencyRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lng         float64 `json:"lng" validate:"longitude"`
	Severity    string  `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	PhotoURL    string  `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// AssignEmergencyRequest DTO для назначения исполнителя
// @Description DTO для назначения исполнителя
type AssignEmergencyRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// UpdateEmergencyStatusRequest DTO для смены статуса происшествия
// @Description DTO для смены статуса происшествия
type UpdateEmergencyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// EmergencyResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type EmergencyResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	Severity         string     `json:"severity"`
	Status           string     `json:"status"`
	PhotoURL         string     `json:"photo_url,omitempty"`
	Reporter         uuid.UUID  `json:"reporter"`
	ReporterName     string     `json:"reporter_name"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedToName   string     `json:"assigned_to_name,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	TimeSinceCreated string     `json:"time_since_created"`
}

// EmergencyStatisticsResponse DTO для счетчиков происшествий
// @Description DTO для счетчиков происшествий
type EmergencyStatisticsResponse struct {
	Total         int `json:"total"`
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Active        int `json:"active"`
	ResolvedToday int `json:"resolved_today"`
}
