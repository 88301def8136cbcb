package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/food_rescue_network/internal/models"
)

const (
	donationQueueKey = "donation_events"
)

// DonationEvent - уведомление организаций об изменении жизненного цикла пожертвования
type DonationEvent struct {
	ID        uuid.UUID        `json:"id"`
	Kind      string           `json:"kind"`
	Donation  *models.Donation `json:"donation"`
	Timestamp time.Time        `json:"timestamp"`
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, event DonationEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event DonationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal donation event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, donationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish donation event to Redis: %w", err)
	}
	return nil
}
