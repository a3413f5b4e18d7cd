package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/siren_dashboard/internal/config"
	"github.com/shenikar/siren_dashboard/internal/service"
)

// BackendClient - HTTP-клиент внешних сервисов: анализ видео, назначение инцидентов, горячие точки
type BackendClient struct {
	backend  *resty.Client
	analysis *resty.Client
	hotspots *resty.Client

	analysisBaseURL string
	backendBaseURL  string
}

func NewBackendClient(cfg *config.Config) *BackendClient {
	return &BackendClient{
		backend:         resty.New().SetBaseURL(cfg.BackendURL).SetTimeout(cfg.BackendTimeout),
		analysis:        resty.New().SetBaseURL(cfg.AnalysisURL).SetTimeout(cfg.AnalysisTimeout),
		hotspots:        resty.New().SetBaseURL(cfg.HotspotURL).SetTimeout(cfg.BackendTimeout),
		analysisBaseURL: cfg.AnalysisURL,
		backendBaseURL:  cfg.BackendURL,
	}
}

var (
	_ service.AnalysisBackend = (*BackendClient)(nil)
	_ service.IncidentBackend = (*BackendClient)(nil)
	_ service.HotspotSource   = (*BackendClient)(nil)
)

// checkResponse сводит ответ resty к таксономии ошибок сервиса
func checkResponse(op string, res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, service.ErrTransport, err)
	}
	switch code := res.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w (status %d)", op, service.ErrAuth, code)
	case !res.IsSuccess():
		return fmt.Errorf("%s: %w (status %d): %s", op, service.ErrFetch, code, truncate(res.String(), 200))
	}
	return nil
}

func decodeJSON(op string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: %w: malformed response: %w", op, service.ErrTransport, err)
	}
	return nil
}

// resolveRef дополняет относительную ссылку базовым адресом сервиса
func resolveRef(base, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
