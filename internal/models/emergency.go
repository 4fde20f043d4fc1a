package models

import (
	"time"

	"github.com/google/uuid"
)

// Уровни серьезности экстренного происшествия
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Статусы жизненного цикла происшествия
const (
	StatusReported   = "reported"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// ValidSeverities - множество допустимых значений severity
var ValidSeverities = map[string]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

// ValidStatuses - множество допустимых значений status.
// Переходы между статусами намеренно не ограничены.
var ValidStatuses = map[string]bool{
	StatusReported:   true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

type Emergency struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	ReporterID  uuid.UUID  `json:"reporter"`
	Reporter    *User      `json:"-"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	Assignee    *User      `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// EmergencyListParams - параметры выборки происшествий из query-запроса
type EmergencyListParams struct {
	Severity  string
	Status    string
	TimeRange string
	Lat       *float64
	Lng       *float64
	RadiusKm  *float64
	// Только активные (не resolved и не closed)
	ActiveOnly bool
	// Только критические
	CriticalOnly bool
}

// EmergencyFilter - составной фильтр для выборки происшествий.
// Все поля опциональны и комбинируются через AND.
type EmergencyFilter struct {
	Severity string
	Status   string
	// Исключаемые статусы (для выборки активных происшествий)
	ExcludeStatuses []string
	// Прямоугольная аппроксимация радиусного поиска
	LatMin, LatMax *float64
	LngMin, LngMax *float64
	// Нижняя граница created_at
	CreatedAfter *time.Time
}

// EmergencyStatistics - агрегированные счетчики по происшествиям
type EmergencyStatistics struct {
	Total         int `json:"total"`
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Active        int `json:"active"`
	ResolvedToday int `json:"resolved_today"`
}
