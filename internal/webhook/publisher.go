package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	emergencyQueueKey = "emergency_events"
)

// EmergencyEvent - структура для данных вебхука о новом происшествии
type EmergencyEvent struct {
	EmergencyID uuid.UUID `json:"emergency_id"`
	Title       string    `json:"title"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Critical    bool      `json:"critical"`
	ReportedAt  time.Time `json:"reported_at"`
}

// EmergencyPublisher - интерфейс для публикации событий о происшествиях
type EmergencyPublisher interface {
	Publish(ctx context.Context, event EmergencyEvent) error
}

// RedisEmergencyPublisher - реализация EmergencyPublisher, использующая Redis
type RedisEmergencyPublisher struct {
	redisClient *redis.Client
}

// NewRedisEmergencyPublisher создает новый RedisEmergencyPublisher
func NewRedisEmergencyPublisher(client *redis.Client) *RedisEmergencyPublisher {
	return &RedisEmergencyPublisher{
		redisClient: client,
	}
}

// Publish публикует событие о происшествии в очередь Redis
func (p *RedisEmergencyPublisher) Publish(ctx context.Context, event EmergencyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка, воркер снимает справа
	if err := p.redisClient.LPush(ctx, emergencyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish emergency event to Redis: %w", err)
	}
	return nil
}
