package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
)

// assignedIncidentDTO - инцидент в формате API назначения
type assignedIncidentDTO struct {
	ID          int64   `json:"id"`
	Address     string  `json:"address"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
	Image       *string `json:"image"`
	ImageURL    *string `json:"image_url"`
	Status      string  `json:"status"`
}

type statusUpdateDTO struct {
	Status models.IncidentStatus `json:"status"`
}

// Форматы отметки времени: с часовым поясом и без него
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// FetchAssigned возвращает инциденты, назначенные оператору, в порядке сервера
func (c *BackendClient) FetchAssigned(ctx context.Context, token string) ([]*models.Incident, error) {
	const op = "fetch assigned incidents"

	res, err := c.backend.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		Get("/api/accidents/assigned-police/")
	if err := checkResponse(op, res, err); err != nil {
		return nil, err
	}

	var dtos []assignedIncidentDTO
	if err := decodeJSON(op, res.Body(), &dtos); err != nil {
		return nil, err
	}

	incidents := make([]*models.Incident, 0, len(dtos))
	for _, dto := range dtos {
		incidents = append(incidents, c.toIncident(dto))
	}
	return incidents, nil
}

// UpdateStatus отправляет PATCH со статусом accepted или rejected
func (c *BackendClient) UpdateStatus(ctx context.Context, token string, id int64, status models.IncidentStatus) error {
	op := fmt.Sprintf("update incident %d status", id)

	res, err := c.backend.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(statusUpdateDTO{Status: status}).
		Patch("/api/accidents/{id}/status/")
	return checkResponse(op, res, err)
}

func (c *BackendClient) toIncident(dto assignedIncidentDTO) *models.Incident {
	evidence := ""
	switch {
	case dto.ImageURL != nil && *dto.ImageURL != "":
		evidence = *dto.ImageURL
	case dto.Image != nil:
		evidence = *dto.Image
	}

	return &models.Incident{
		ID:          dto.ID,
		Address:     dto.Address,
		Severity:    models.ParseSeverity(dto.Severity),
		Description: dto.Description,
		Timestamp:   parseTimestamp(dto.Timestamp),
		EvidenceRef: resolveRef(c.backendBaseURL, evidence),
		Status:      models.IncidentStatus(dto.Status),
	}
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
