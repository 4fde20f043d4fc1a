package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Polygon - замкнутое кольцо границы миссии, точки в порядке [lng, lat]
type Polygon [][]float64

// Validate проверяет, что кольцо замкнуто, содержит минимум 4 точки
// и координаты лежат в допустимых диапазонах. Простота кольца не
// проверяется: самопересекающаяся геометрия передается в PostGIS как есть.
func (p Polygon) Validate() error {
	if len(p) == 0 {
		return nil
	}
	if len(p) < 4 {
		return fmt.Errorf("%w: ring must contain at least 4 points", ErrInvalidPolygon)
	}
	for i, pt := range p {
		if len(pt) != 2 {
			return fmt.Errorf("%w: point %d must be a [lng, lat] pair", ErrInvalidPolygon, i)
		}
		if pt[0] < -180 || pt[0] > 180 || pt[1] < -90 || pt[1] > 90 {
			return fmt.Errorf("%w: point %d is out of range", ErrInvalidPolygon, i)
		}
	}
	first, last := p[0], p[len(p)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return fmt.Errorf("%w: ring is not closed", ErrInvalidPolygon)
	}
	return nil
}

// WKT возвращает кольцо в формате WKT для передачи в PostGIS
func (p Polygon) WKT() string {
	if len(p) == 0 {
		return ""
	}
	points := make([]string, len(p))
	for i, pt := range p {
		points[i] = fmt.Sprintf("%g %g", pt[0], pt[1])
	}
	return fmt.Sprintf("POLYGON((%s))", strings.Join(points, ","))
}

type Mission struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	City            string     `json:"city"`
	Area            string     `json:"area"`
	CenterLat       float64    `json:"center_lat"`
	CenterLon       float64    `json:"center_lon"`
	Polygon         Polygon    `json:"polygon,omitempty"`
	AreaCoverageKm2 float64    `json:"area_coverage_km2"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MissionDashboard - составные данные для дашборда миссии
type MissionDashboard struct {
	Mission   *Mission
	Stats     MissionStatistics
	Sightings []*Sighting
}

// MissionStatistics - агрегированная статистика по миссии
type MissionStatistics struct {
	TotalSightings       int     `json:"total_sightings"`
	SterilizedCount      int     `json:"sterilized_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
	AreaCoveredKm2       float64 `json:"area_covered_km2"`
}
