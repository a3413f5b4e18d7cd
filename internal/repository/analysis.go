package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
)

type analysisResponseDTO struct {
	Error   string   `json:"error"`
	Report  string   `json:"report"`
	Summary string   `json:"summary"`
	Images  []string `json:"images"`
}

// Analyze отправляет видео на POST /upload одним multipart-запросом.
// Тело с полем error возвращается как есть, даже при статусе 500.
func (c *BackendClient) Analyze(ctx context.Context, req models.UploadRequest) (*models.AnalysisResponse, error) {
	const op = "analyze video"

	form := map[string]string{"location": req.Location}
	if req.Coordinates != nil {
		coords, err := json.Marshal(req.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		form["coordinates"] = string(coords)
	}

	res, err := c.analysis.R().
		SetContext(ctx).
		SetFileReader("video", req.File.Name, req.File.Content).
		SetFormData(form).
		Post("/upload")
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, service.ErrTransport, err)
	}

	var dto analysisResponseDTO
	if err := decodeJSON(op, res.Body(), &dto); err != nil {
		return nil, err
	}
	if dto.Error != "" {
		return &models.AnalysisResponse{Error: dto.Error}, nil
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%s: %w: unexpected status %d", op, service.ErrTransport, res.StatusCode())
	}

	images := make([]string, 0, len(dto.Images))
	for _, img := range dto.Images {
		images = append(images, resolveRef(c.analysisBaseURL, img))
	}
	return &models.AnalysisResponse{
		Report:  dto.Report,
		Summary: dto.Summary,
		Images:  images,
	}, nil
}
