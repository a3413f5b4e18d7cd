package v1

import (
	"time"
)

// UploadForm - поля multipart-формы загрузки видео (файл передается в поле video)
// @Description Поля формы загрузки видео
type UploadForm struct {
	Location  string   `form:"location" validate:"required"`
	Latitude  *float64 `form:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `form:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// ListIncidentsQuery - фильтр списка инцидентов
type ListIncidentsQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending accepted"`
}

// PanelClickRequest DTO для клика по странице при открытой панели уведомлений
// @Description Клик внутри или вне панели уведомлений
type PanelClickRequest struct {
	Inside *bool `json:"inside" validate:"required"`
}

// AnalysisResultResponse DTO результата анализа
// @Description Результат анализа видео
type AnalysisResultResponse struct {
	Report  string   `json:"report"`
	Summary string   `json:"summary"`
	Images  []string `json:"images"`
}

// JobResponse DTO для состояния задачи загрузки
// @Description Этап обработки видео и результат
type JobResponse struct {
	Stage     string                  `json:"stage"`
	Label     string                  `json:"label"`
	Location  string                  `json:"location,omitempty"`
	FileName  string                  `json:"file_name,omitempty"`
	StartedAt *time.Time              `json:"started_at,omitempty"`
	Result    *AnalysisResultResponse `json:"result,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// IncidentResponse DTO для инцидента
// @Description Назначенный оператору инцидент
type IncidentResponse struct {
	ID              int64     `json:"id"`
	Address         string    `json:"address"`
	Severity        string    `json:"severity"`
	Description     string    `json:"description"`
	Timestamp       time.Time `json:"timestamp"`
	EvidenceURL     string    `json:"evidence_url,omitempty"`
	EvidenceIsVideo bool      `json:"evidence_is_video"`
	Status          string    `json:"status"`
	InFlight        bool      `json:"in_flight"`
}

// TriageActionResponse DTO для принятого к отправке решения
// @Description Решение оператора по инциденту
type TriageActionResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// NotificationResponse DTO для уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

// NotificationsResponse DTO ленты уведомлений
// @Description Лента уведомлений и состояние панели
type NotificationsResponse struct {
	Items       []*NotificationResponse `json:"items"`
	UnreadCount int                     `json:"unread_count"`
	PanelOpen   bool                    `json:"panel_open"`
}

// PanelResponse DTO состояния панели уведомлений
type PanelResponse struct {
	Open bool `json:"open"`
}

// HotspotResponse DTO точки концентрации ДТП
type HotspotResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int     `json:"count"`
	Severity  string  `json:"severity"`
}

// DashboardResponse DTO первичной загрузки дашборда
// @Description Данные для первичной отрисовки дашборда
type DashboardResponse struct {
	Operator      string                `json:"operator"`
	Incidents     []*IncidentResponse   `json:"incidents"`
	Hotspots      []*HotspotResponse    `json:"hotspots"`
	Notifications NotificationsResponse `json:"notifications"`
	Job           *JobResponse          `json:"job"`
}
