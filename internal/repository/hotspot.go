package repository

import (
	"context"

	"github.com/shenikar/siren_dashboard/internal/models"
)

type hotspotDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int     `json:"count"`
	Severity  string  `json:"severity"`
}

// FetchHotspots возвращает точки концентрации ДТП
func (c *BackendClient) FetchHotspots(ctx context.Context) ([]*models.Hotspot, error) {
	const op = "fetch hotspots"

	res, err := c.hotspots.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/accidents/hotspots")
	if err := checkResponse(op, res, err); err != nil {
		return nil, err
	}

	var dtos []hotspotDTO
	if err := decodeJSON(op, res.Body(), &dtos); err != nil {
		return nil, err
	}

	hotspots := make([]*models.Hotspot, 0, len(dtos))
	for _, dto := range dtos {
		hotspots = append(hotspots, &models.Hotspot{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
			Count:     dto.Count,
			Severity:  models.ParseSeverity(dto.Severity),
		})
	}
	return hotspots, nil
}
