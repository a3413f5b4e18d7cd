package v1

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/siren_dashboard/internal/config"
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	registry *service.SessionRegistry
	hotspots *service.HotspotService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(registry *service.SessionRegistry, hotspots *service.HotspotService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		registry: registry,
		hotspots: hotspots,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Upload a video for analysis
// @Description Submit a CCTV video with its location. The job advances through stages on timers until the analysis service answers.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param video formData file true "Video file"
// @Param location formData string true "Location of the camera"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Success 202 {object} JobResponse
// @Failure 400 {object} map[string]string "Missing file or location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Upload already in progress"
// @Failure 413 {object} map[string]string "File too large"
// @Router /upload [post]
func (h *Handler) uploadVideo(c *gin.Context) {
	log := h.logger.WithField("method", "uploadVideo")
	dashboard := dashboardFrom(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.cfg.MaxUploadMB)<<20)

	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WithError(err).Warn("Upload exceeds size limit")
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "video file is too large"})
			return
		}
		log.WithError(err).Warn("Failed to bind upload form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload form"})
		return
	}

	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := readVideoFile(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded video")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video file"})
		return
	}

	if _, err := dashboard.Jobs.Start(c.Request.Context(), FormToUploadRequest(form, file)); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, SnapshotToJobResponse(dashboard.Jobs.Snapshot()))
}

// readVideoFile копирует файл из формы в память: временные файлы multipart
// удаляются по завершении запроса, а анализ продолжается в фоне.
// Отсутствующий файл возвращается как nil.
func readVideoFile(c *gin.Context) (*models.VideoFile, error) {
	header, err := c.FormFile("video")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &models.VideoFile{Name: header.Filename, Content: bytes.NewReader(content)}, nil
}

// @Summary Get upload job status
// @Description Current stage of the session's upload job and its result once done.
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /upload [get]
func (h *Handler) getUpload(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToJobResponse(dashboardFrom(c).Jobs.Snapshot()))
}

// @Summary Reset upload job
// @Description Clear the result and return the job to idle. A response still in flight is discarded.
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /upload [delete]
func (h *Handler) resetUpload(c *gin.Context) {
	jobs := dashboardFrom(c).Jobs
	jobs.Reset()
	c.JSON(http.StatusOK, SnapshotToJobResponse(jobs.Snapshot()))
}

// @Summary Load the dashboard
// @Description Fetch assigned incidents and hotspots and return everything needed for the first render.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")
	dashboard := dashboardFrom(c)

	view, err := dashboard.Load(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToDashboardResponse(view, dashboard.Triage))
}

// @Summary List assigned incidents
// @Description List incidents assigned to the operator, optionally filtered by status. The list is fetched on first use.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, accepted)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	triage := dashboardFrom(c).Triage

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !triage.Loaded() {
		if _, err := triage.FetchAssigned(c.Request.Context()); err != nil {
			h.writeError(c, log, err)
			return
		}
	}

	incidents := triage.Incidents()
	if query.Status != "" {
		incidents = triage.Filter(models.IncidentStatus(query.Status))
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, triage))
}

// @Summary Refresh assigned incidents
// @Description Re-fetch the assigned incidents and replace the local list.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /incidents/refresh [post]
func (h *Handler) refreshIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "refreshIncidents")
	triage := dashboardFrom(c).Triage

	incidents, err := triage.FetchAssigned(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, triage))
}

// @Summary Accept an incident
// @Description Mark a pending incident as accepted. The change is applied locally at once and confirmed with the backend in the background.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 202 {object} TriageActionResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident not pending or update in flight"
// @Router /incidents/{id}/accept [post]
func (h *Handler) acceptIncident(c *gin.Context) {
	h.triageAction(c, "acceptIncident", models.StatusAccepted, (*service.TriageController).Accept)
}

// @Summary Reject an incident
// @Description Remove a pending incident from the list. The backend is updated in the background.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 202 {object} TriageActionResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident not pending or update in flight"
// @Router /incidents/{id}/reject [post]
func (h *Handler) rejectIncident(c *gin.Context) {
	h.triageAction(c, "rejectIncident", models.StatusRejected, (*service.TriageController).Reject)
}

func (h *Handler) triageAction(c *gin.Context, method string, status models.IncidentStatus, action func(*service.TriageController, context.Context, int64) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	if err := action(dashboardFrom(c).Triage, c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, TriageActionResponse{ID: id, Status: string(status)})
}

// @Summary List notifications
// @Description Notifications of the session, newest first, with the unread count.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, notificationsResponse(dashboardFrom(c).Triage))
}

// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/read [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	triage := dashboardFrom(c).Triage
	triage.MarkAllRead()
	c.JSON(http.StatusOK, notificationsResponse(triage))
}

// @Summary Mark a notification read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} NotificationsResponse
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	triage := dashboardFrom(c).Triage
	if err := triage.MarkRead(id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notificationsResponse(triage))
}

// @Summary Toggle the notification panel
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PanelResponse
// @Router /notifications/panel/toggle [post]
func (h *Handler) togglePanel(c *gin.Context) {
	c.JSON(http.StatusOK, PanelResponse{Open: dashboardFrom(c).Triage.TogglePanel()})
}

// @Summary Report a click while the panel is open
// @Description A click outside the open panel closes it.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param click body PanelClickRequest true "Click position"
// @Success 200 {object} PanelResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /notifications/panel/click [post]
func (h *Handler) clickPanel(c *gin.Context) {
	var input PanelClickRequest
	log := h.logger.WithField("method", "clickPanel")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PanelResponse{Open: dashboardFrom(c).Triage.DismissPanel(*input.Inside)})
}

// @Summary List accident hotspots
// @Tags Hotspots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} HotspotResponse
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")

	hotspots, err := h.hotspots.List(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary End the operator session
// @Description Drop the session state. An upload in progress is reset and its result discarded.
// @Tags Session
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /session [delete]
func (h *Handler) endSession(c *gin.Context) {
	h.registry.End(dashboardFrom(c).Session.Token)
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": strconv.Itoa(h.registry.Len())})
}

func notificationsResponse(triage *service.TriageController) NotificationsResponse {
	return NotificationsResponse{
		Items:       ModelsToNotificationResponses(triage.Notifications()),
		UnreadCount: triage.UnreadCount(),
		PanelOpen:   triage.PanelOpen(),
	}
}

// writeError переводит ошибку сервиса в HTTP-статус
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	var reported *service.ServerReportedError

	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAuth):
		log.WithError(err).Warn("Backend rejected credentials, ending session")
		if d, ok := c.Get(dashboardKey); ok {
			h.registry.End(d.(*service.Dashboard).Session.Token)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session is not authorized"})
	case errors.Is(err, service.ErrUnknownIncident), errors.Is(err, service.ErrUnknownNotification):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpdateInFlight), errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrJobActive), errors.Is(err, service.ErrJobSuperseded):
		log.WithError(err).Warn("Request conflicts with current state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &reported):
		log.WithError(err).Warn("Analysis service reported an error")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reported.Message})
	case errors.Is(err, service.ErrTransport), errors.Is(err, service.ErrFetch):
		log.WithError(err).Error("Backend request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	default:
		log.WithError(err).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
