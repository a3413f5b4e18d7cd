package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без авторизации
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("", SessionAuthMiddleware(h.registry, h.logger))

	// Загрузка видео на анализ
	upload := secured.Group("/upload")
	{
		upload.POST("", h.uploadVideo)
		upload.GET("", h.getUpload)
		upload.DELETE("", h.resetUpload)
	}

	secured.GET("/dashboard", h.getDashboard)

	// Разбор назначенных инцидентов
	incidents := secured.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("/refresh", h.refreshIncidents)
		incidents.POST("/:id/accept", h.acceptIncident)
		incidents.POST("/:id/reject", h.rejectIncident)
	}

	// Лента уведомлений
	notifications := secured.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/read", h.markAllNotificationsRead)
		notifications.POST("/:id/read", h.markNotificationRead)
		notifications.POST("/panel/toggle", h.togglePanel)
		notifications.POST("/panel/click", h.clickPanel)
	}

	secured.GET("/hotspots", h.listHotspots)
	secured.DELETE("/session", h.endSession)
}
