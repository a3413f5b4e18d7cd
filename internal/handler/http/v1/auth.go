package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	dashboardKey       = "dashboard"
	operatorNameHeader = "X-Operator-Name"
)

// SessionAuthMiddleware - middleware, привязывающий запрос к дашборду оператора по bearer-токену.
// Токен не проверяется локально: его принимает или отклоняет бэкенд при первом запросе.
func SessionAuthMiddleware(registry *service.SessionRegistry, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		session := models.Session{
			Token:        token,
			OperatorName: strings.TrimSpace(c.GetHeader(operatorNameHeader)),
		}
		c.Set(dashboardKey, registry.Get(session))
		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// dashboardFrom возвращает дашборд, сохраненный middleware
func dashboardFrom(c *gin.Context) *service.Dashboard {
	return c.MustGet(dashboardKey).(*service.Dashboard)
}
