package service

import (
	"context"
	"fmt"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// HotspotSource определяет контракт API агрегации горячих точек
type HotspotSource interface {
	FetchHotspots(ctx context.Context) ([]*models.Hotspot, error)
}

// HotspotCache определяет контракт кеша горячих точек.
// GetHotspots возвращает nil, nil при промахе.
type HotspotCache interface {
	GetHotspots(ctx context.Context) ([]*models.Hotspot, error)
	SetHotspots(ctx context.Context, hotspots []*models.Hotspot) error
}

// HotspotService отдает горячие точки для карты
type HotspotService struct {
	source HotspotSource
	cache  HotspotCache
	logger *logrus.Logger
}

// NewHotspotService создает сервис. cache может быть nil.
func NewHotspotService(source HotspotSource, cache HotspotCache, logger *logrus.Logger) *HotspotService {
	return &HotspotService{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает горячие точки из кеша или из API.
// Ошибки кеша только логируются.
func (s *HotspotService) List(ctx context.Context) ([]*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hotspot",
		"method":  "List",
	})

	if s.cache != nil {
		cached, err := s.cache.GetHotspots(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read hotspots from cache")
		} else if cached != nil {
			log.WithField("count", len(cached)).Debug("Hotspots served from cache")
			return cached, nil
		}
	}

	hotspots, err := s.source.FetchHotspots(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch hotspots")
		return nil, fmt.Errorf("service: could not list hotspots: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetHotspots(ctx, hotspots); err != nil {
			log.WithError(err).Warn("Failed to store hotspots in cache")
		}
	}

	log.WithField("count", len(hotspots)).Info("Hotspots fetched successfully")
	return hotspots, nil
}
