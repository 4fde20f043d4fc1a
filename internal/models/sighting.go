package models

import (
	"time"

	"github.com/google/uuid"
)

// Sighting представляет наблюдение животного, привязанное к миссии
type Sighting struct {
	ID         uuid.UUID `json:"id"`
	MissionID  uuid.UUID `json:"mission_id"`
	Name       string    `json:"name"`
	Sterilized bool      `json:"sterilized"`
	// Координаты точки в порядке [lng, lat]
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coordinates возвращает координаты в порядке [lng, lat]
func (s *Sighting) Coordinates() []float64 {
	return []float64{s.Longitude, s.Latitude}
}
