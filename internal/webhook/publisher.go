package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/siren_dashboard/internal/models"
)

const (
	triageQueueKey = "triage_events"
)

// TriageEvent - подтвержденное бэкендом решение оператора по инциденту
type TriageEvent struct {
	ID           uuid.UUID             `json:"id"`
	OperatorName string                `json:"operator_name"`
	IncidentID   int64                 `json:"incident_id"`
	Status       models.IncidentStatus `json:"status"`
	Timestamp    time.Time             `json:"timestamp"`
}

// NewTriageEvent создает событие с новым идентификатором
func NewTriageEvent(operator string, incidentID int64, status models.IncidentStatus, at time.Time) TriageEvent {
	return TriageEvent{
		ID:           uuid.New(),
		OperatorName: operator,
		IncidentID:   incidentID,
		Status:       status,
		Timestamp:    at,
	}
}

// Publisher - интерфейс для публикации событий разбора инцидентов
type Publisher interface {
	Publish(ctx context.Context, event TriageEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event TriageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal triage event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, triageQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish triage event to Redis: %w", err)
	}
	return nil
}
