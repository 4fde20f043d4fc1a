package v1

import (
	"fmt"
	"time"

	"github.com/tmorozova/animal_rescue_system/internal/models"
)

const dateLayout = "2006-01-02"

// DTOToMissionModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToMissionModel(dto any) *models.Mission {
	var (
		title, description, date, city, area string
		centerLat, centerLon                 float64
		polygon                              [][]float64
	)

	switch v := dto.(type) {
	case CreateMissionRequest:
		title, description, date, city, area = v.Title, v.Description, v.Date, v.City, v.Area
		centerLat, centerLon, polygon = v.CenterLat, v.CenterLon, v.Polygon
	case UpdateMissionRequest:
		title, description, date, city, area = v.Title, v.Description, v.Date, v.City, v.Area
		centerLat, centerLon, polygon = v.CenterLat, v.CenterLon, v.Polygon
	default:
		return nil
	}

	mission := &models.Mission{
		Title:       title,
		Description: description,
		City:        city,
		Area:        area,
		CenterLat:   centerLat,
		CenterLon:   centerLon,
		Polygon:     models.Polygon(polygon),
	}
	if date != "" {
		// Формат даты уже проверен валидатором
		if parsed, err := time.Parse(dateLayout, date); err == nil {
			mission.Date = &parsed
		}
	}
	return mission
}

// ModelToMissionResponse преобразует доменную модель в DTO для ответа
func ModelToMissionResponse(model *models.Mission) *MissionResponse {
	resp := &MissionResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		City:        model.City,
		Area:        model.Area,
		CenterLat:   model.CenterLat,
		CenterLon:   model.CenterLon,
		Center: CenterResponse{
			Lat: model.CenterLat,
			Lng: model.CenterLon,
		},
		Polygon:         model.Polygon,
		AreaCoverageKm2: model.AreaCoverageKm2,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Date != nil {
		resp.Date = model.Date.Format(dateLayout)
	}
	return resp
}

// ModelsToMissionResponses преобразует слайс моделей в слайс DTO
func ModelsToMissionResponses(missions []*models.Mission) []*MissionResponse {
	responses := make([]*MissionResponse, len(missions))
	for i, model := range missions {
		responses[i] = ModelToMissionResponse(model)
	}
	return responses
}

// DTOToSightingModel преобразует DTO создания/обновления в доменную модель
func DTOToSightingModel(dto any) *models.Sighting {
	switch v := dto.(type) {
	case CreateSightingRequest:
		return &models.Sighting{
			MissionID:  v.MissionID,
			Name:       v.Name,
			Sterilized: v.Sterilized,
			Longitude:  v.Longitude,
			Latitude:   v.Latitude,
		}
	case UpdateSightingRequest:
		return &models.Sighting{
			MissionID:  v.MissionID,
			Name:       v.Name,
			Sterilized: v.Sterilized,
			Longitude:  v.Longitude,
			Latitude:   v.Latitude,
		}
	}
	return nil
}

// ModelToSightingResponse преобразует доменную модель в DTO для ответа
func ModelToSightingResponse(model *models.Sighting) *SightingResponse {
	return &SightingResponse{
		ID:          model.ID,
		MissionID:   model.MissionID,
		Name:        model.Name,
		Sterilized:  model.Sterilized,
		Longitude:   model.Longitude,
		Latitude:    model.Latitude,
		Coordinates: model.Coordinates(),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToSightingResponses преобразует слайс моделей в слайс DTO
func ModelsToSightingResponses(sightings []*models.Sighting) []*SightingResponse {
	responses := make([]*SightingResponse, len(sightings))
	for i, model := range sightings {
		responses[i] = ModelToSightingResponse(model)
	}
	return responses
}

// SightingsToFeatureCollection преобразует наблюдения в GeoJSON FeatureCollection.
// Координаты в порядке [lng, lat], created_at в ISO-8601.
func SightingsToFeatureCollection(sightings []*models.Sighting) GeoJSONFeatureCollection {
	features := make([]GeoJSONFeature, len(sightings))
	for i, s := range sightings {
		features[i] = GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: s.Coordinates(),
			},
			Properties: GeoJSONProperties{
				ID:         s.ID,
				Name:       s.Name,
				Sterilized: s.Sterilized,
				CreatedAt:  s.CreatedAt.Format(time.RFC3339),
			},
		}
	}
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// DashboardToResponse собирает DTO дашборда миссии
func DashboardToResponse(dashboard *models.MissionDashboard) *MissionDashboardResponse {
	return &MissionDashboardResponse{
		MissionDetails: ModelToMissionResponse(dashboard.Mission),
		KPIs: DashboardKPIs{
			AnimalsCovered:   dashboard.Stats.TotalSightings,
			TaggedSterilized: dashboard.Stats.SterilizedCount,
			AreaCoverageKm2:  dashboard.Stats.AreaCoveredKm2,
		},
		GeoJSON:    SightingsToFeatureCollection(dashboard.Sightings),
		Volunteers: []string{},
	}
}

// DTOToEmergencyModel преобразует DTO создания/обновления в доменную модель
func DTOToEmergencyModel(dto any) *models.Emergency {
	switch v := dto.(type) {
	case CreateEmergencyRequest:
		return &models.Emergency{
			Title:       v.Title,
			Description: v.Description,
			Lat:         v.Lat,
			Lng:         v.Lng,
			Severity:    v.Severity,
			PhotoURL:    v.PhotoURL,
		}
	case UpdateEmergencyRequest:
		return &models.Emergency{
			Title:       v.Title,
			Description: v.Description,
			Lat:         v.Lat,
			Lng:         v.Lng,
			Severity:    v.Severity,
			PhotoURL:    v.PhotoURL,
		}
	}
	return nil
}

// ModelToEmergencyResponse преобразует доменную модель в DTO для ответа,
// добавляя отображаемые имена пользователей и возраст записи
func ModelToEmergencyResponse(model *models.Emergency, now time.Time) *EmergencyResponse {
	resp := &EmergencyResponse{
		ID:               model.ID,
		Title:            model.Title,
		Description:      model.Description,
		Lat:              model.Lat,
		Lng:              model.Lng,
		Severity:         model.Severity,
		Status:           model.Status,
		PhotoURL:         model.PhotoURL,
		Reporter:         model.ReporterID,
		AssignedTo:       model.AssignedTo,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
		ResolvedAt:       model.ResolvedAt,
		TimeSinceCreated: timeSince(model.CreatedAt, now),
	}
	if model.Reporter != nil {
		resp.ReporterName = model.Reporter.FullName()
	}
	if model.Assignee != nil {
		resp.AssignedToName = model.Assignee.FullName()
	}
	return resp
}

// ModelsToEmergencyResponses преобразует слайс моделей в слайс DTO
func ModelsToEmergencyResponses(emergencies []*models.Emergency, now time.Time) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(emergencies))
	for i, model := range emergencies {
		responses[i] = ModelToEmergencyResponse(model, now)
	}
	return responses
}

// timeSince возвращает грубый человекочитаемый возраст записи:
// "Just now" до минуты, "{m}m ago" до часа, "{h}h ago" в пределах
// текущего календарного дня, иначе "{d}d ago".
func timeSince(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = 0
	}

	if diff < time.Minute {
		return "Just now"
	}
	if diff < time.Hour {
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	}

	y1, m1, d1 := now.Date()
	y2, m2, d2 := createdAt.In(now.Location()).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
}
