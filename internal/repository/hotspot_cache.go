package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
)

const hotspotCacheKey = "hotspots:all"

// HotspotCache - кеш горячих точек в Redis
type HotspotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewHotspotCache(redisClient *redis.Client, ttl time.Duration) service.HotspotCache {
	return &HotspotCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetHotspots пытается получить горячие точки из Redis
func (c *HotspotCache) GetHotspots(ctx context.Context) ([]*models.Hotspot, error) {
	val, err := c.redisClient.Get(ctx, hotspotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotspots from cache: %w", err)
	}

	hotspots := make([]*models.Hotspot, 0)
	if err := json.Unmarshal(val, &hotspots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots from cache: %w", err)
	}
	return hotspots, nil
}

// SetHotspots сохраняет горячие точки в Redis на время ttl
func (c *HotspotCache) SetHotspots(ctx context.Context, hotspots []*models.Hotspot) error {
	val, err := json.Marshal(hotspots)
	if err != nil {
		return fmt.Errorf("failed to marshal hotspots for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, hotspotCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set hotspots in cache: %w", err)
	}
	return nil
}
