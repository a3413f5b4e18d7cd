package v1

import (
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
)

// FormToUploadRequest собирает запрос на анализ из формы и прочитанного файла
func FormToUploadRequest(form UploadForm, file *models.VideoFile) models.UploadRequest {
	req := models.UploadRequest{
		File:     file,
		Location: form.Location,
	}
	if form.Latitude != nil && form.Longitude != nil {
		req.Coordinates = &models.Coordinates{Latitude: *form.Latitude, Longitude: *form.Longitude}
	}
	return req
}

// SnapshotToJobResponse преобразует снимок задачи в DTO
func SnapshotToJobResponse(snap service.JobSnapshot) *JobResponse {
	resp := &JobResponse{
		Stage:     snap.Stage.String(),
		Label:     snap.Label,
		Location:  snap.Location,
		FileName:  snap.FileName,
		StartedAt: snap.StartedAt,
		Error:     snap.Error,
	}
	if snap.Result != nil {
		images := make([]string, len(snap.Result.Images))
		copy(images, snap.Result.Images)
		resp.Result = &AnalysisResultResponse{
			Report:  snap.Result.Report,
			Summary: snap.Result.Summary,
			Images:  images,
		}
	}
	return resp
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident, inFlight bool) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		Address:         model.Address,
		Severity:        string(model.Severity),
		Description:     model.Description,
		Timestamp:       model.Timestamp,
		EvidenceURL:     model.EvidenceRef,
		EvidenceIsVideo: model.EvidenceIsVideo(),
		Status:          string(model.Status),
		InFlight:        inFlight,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident, triage *service.TriageController) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, inc := range incidents {
		responses[i] = ModelToIncidentResponse(inc, triage.InFlight(inc.ID))
	}
	return responses
}

func ModelsToNotificationResponses(notifications []models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = &NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			IsRead:    n.IsRead,
		}
	}
	return responses
}

func ModelsToHotspotResponses(hotspots []*models.Hotspot) []*HotspotResponse {
	responses := make([]*HotspotResponse, len(hotspots))
	for i, h := range hotspots {
		responses[i] = &HotspotResponse{
			Latitude:  h.Latitude,
			Longitude: h.Longitude,
			Count:     h.Count,
			Severity:  string(h.Severity),
		}
	}
	return responses
}

// ViewToDashboardResponse преобразует данные дашборда в DTO
func ViewToDashboardResponse(view *service.DashboardView, triage *service.TriageController) *DashboardResponse {
	return &DashboardResponse{
		Operator:  view.Operator,
		Incidents: ModelsToIncidentResponses(view.Incidents, triage),
		Hotspots:  ModelsToHotspotResponses(view.Hotspots),
		Notifications: NotificationsResponse{
			Items:       ModelsToNotificationResponses(view.Notifications),
			UnreadCount: view.UnreadCount,
			PanelOpen:   triage.PanelOpen(),
		},
		Job: SnapshotToJobResponse(view.Job),
	}
}
