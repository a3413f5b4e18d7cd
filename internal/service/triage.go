package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentBackend определяет контракт API назначения инцидентов
type IncidentBackend interface {
	FetchAssigned(ctx context.Context, token string) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, token string, id int64, status models.IncidentStatus) error
}

const defaultUpdateTimeout = 15 * time.Second

// TriageController владеет списком назначенных оператору инцидентов и лентой уведомлений сессии.
//
// Accept и Reject меняют локальное состояние до ответа бэкенда. Если PATCH завершился
// ошибкой, локальное изменение не откатывается: расхождение видно только после
// следующей загрузки списка.
type TriageController struct {
	backend       IncidentBackend
	publisher     webhook.Publisher
	session       models.Session
	updateTimeout time.Duration
	logger        *logrus.Logger
	now           func() time.Time

	mu        sync.Mutex
	incidents []*models.Incident
	loaded    bool
	inFlight  map[int64]struct{}
	feed      notificationFeed
	panelOpen bool

	updates sync.WaitGroup
}

// NewTriageController создает контроллер для сессии. publisher может быть nil.
func NewTriageController(backend IncidentBackend, publisher webhook.Publisher, session models.Session, updateTimeout time.Duration, logger *logrus.Logger) *TriageController {
	if updateTimeout <= 0 {
		updateTimeout = defaultUpdateTimeout
	}
	return &TriageController{
		backend:       backend,
		publisher:     publisher,
		session:       session,
		updateTimeout: updateTimeout,
		logger:        logger,
		now:           time.Now,
		inFlight:      make(map[int64]struct{}),
	}
}

// FetchAssigned загружает назначенные инциденты и целиком заменяет локальный список.
// При ошибке предыдущий список сохраняется.
func (c *TriageController) FetchAssigned(ctx context.Context) ([]*models.Incident, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":  "triage",
		"method":   "FetchAssigned",
		"operator": c.session.OperatorName,
	})
	log.Info("Fetching assigned incidents")

	fetched, err := c.backend.FetchAssigned(ctx, c.session.Token)
	if err != nil {
		if errors.Is(err, ErrAuth) {
			log.WithError(err).Warn("Backend rejected operator credentials")
			return nil, fmt.Errorf("service: could not fetch incidents: %w", err)
		}
		if !errors.Is(err, ErrTransport) && !errors.Is(err, ErrFetch) {
			err = fmt.Errorf("%w: %w", ErrFetch, err)
		}
		log.WithError(err).Error("Failed to fetch incidents, keeping last known list")
		return nil, fmt.Errorf("service: could not fetch incidents: %w", err)
	}

	// Идентификатор уникален в пределах списка: повтор отбрасывается, первая запись остается
	incidents := make([]*models.Incident, 0, len(fetched))
	seen := make(map[int64]struct{}, len(fetched))
	for _, inc := range fetched {
		if inc == nil {
			continue
		}
		if _, dup := seen[inc.ID]; dup {
			log.WithField("incident_id", inc.ID).Warn("Duplicate incident id in backend response, keeping the first")
			continue
		}
		seen[inc.ID] = struct{}{}
		incidents = append(incidents, inc.Clone())
	}

	c.mu.Lock()
	c.incidents = incidents
	c.loaded = true
	c.mu.Unlock()

	log.WithField("count", len(incidents)).Info("Assigned incidents fetched successfully")
	return cloneIncidents(incidents), nil
}

// Accept переводит инцидент pending -> accepted, добавляет уведомление и отправляет PATCH в фоне
func (c *TriageController) Accept(ctx context.Context, id int64) error {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "Accept",
		"incident_id": id,
	})

	c.mu.Lock()
	idx, err := c.checkPendingLocked(id)
	if err != nil {
		c.mu.Unlock()
		log.WithError(err).Warn("Accept rejected")
		return err
	}
	accepted := c.incidents[idx].Clone()
	accepted.Status = models.StatusAccepted
	c.incidents[idx] = accepted
	c.feed.appendAccepted(id, c.now())
	c.inFlight[id] = struct{}{}
	c.mu.Unlock()

	log.Info("Incident accepted locally, confirming with backend")
	c.dispatch(ctx, id, models.StatusAccepted)
	return nil
}

// Reject убирает инцидент из локального списка и отправляет PATCH в фоне
func (c *TriageController) Reject(ctx context.Context, id int64) error {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "Reject",
		"incident_id": id,
	})

	c.mu.Lock()
	idx, err := c.checkPendingLocked(id)
	if err != nil {
		c.mu.Unlock()
		log.WithError(err).Warn("Reject rejected")
		return err
	}
	c.incidents = append(c.incidents[:idx:idx], c.incidents[idx+1:]...)
	c.inFlight[id] = struct{}{}
	c.mu.Unlock()

	log.Info("Incident rejected locally, confirming with backend")
	c.dispatch(ctx, id, models.StatusRejected)
	return nil
}

// Filter возвращает инциденты с указанным статусом в порядке загрузки
func (c *TriageController) Filter(status models.IncidentStatus) []*models.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := make([]*models.Incident, 0)
	for _, inc := range c.incidents {
		if inc.Status == status {
			filtered = append(filtered, inc.Clone())
		}
	}
	return filtered
}

// Incidents возвращает весь локальный список
func (c *TriageController) Incidents() []*models.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneIncidents(c.incidents)
}

// Loaded сообщает, был ли список хотя бы раз успешно загружен
func (c *TriageController) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// InFlight сообщает, ожидает ли инцидент ответа на PATCH
func (c *TriageController) InFlight(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

// Wait блокируется, пока не завершатся все отправленные PATCH-запросы
func (c *TriageController) Wait() {
	c.updates.Wait()
}

func (c *TriageController) Notifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed.list()
}

func (c *TriageController) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed.unread()
}

func (c *TriageController) MarkRead(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.feed.markRead(id) {
		return ErrUnknownNotification
	}
	return nil
}

func (c *TriageController) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feed.markAllRead()
}

// TogglePanel переключает видимость панели уведомлений
func (c *TriageController) TogglePanel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panelOpen = !c.panelOpen
	return c.panelOpen
}

// DismissPanel обрабатывает клик: клик вне открытой панели закрывает ее
func (c *TriageController) DismissPanel(inside bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panelOpen && !inside {
		c.panelOpen = false
	}
	return c.panelOpen
}

func (c *TriageController) PanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// checkPendingLocked проверяет, что по id можно отправить решение
func (c *TriageController) checkPendingLocked(id int64) (int, error) {
	if _, busy := c.inFlight[id]; busy {
		return -1, fmt.Errorf("%w: incident %d", ErrUpdateInFlight, id)
	}
	for i, inc := range c.incidents {
		if inc.ID != id {
			continue
		}
		if inc.Status != models.StatusPending {
			return -1, fmt.Errorf("%w: incident %d is %s", ErrNotPending, id, inc.Status)
		}
		return i, nil
	}
	return -1, fmt.Errorf("%w: incident %d", ErrUnknownIncident, id)
}

// dispatch отправляет PATCH вне мьютекса и снимает флаг in-flight по завершении
func (c *TriageController) dispatch(ctx context.Context, id int64, status models.IncidentStatus) {
	c.updates.Add(1)
	go func() {
		defer c.updates.Done()

		log := c.logger.WithFields(logrus.Fields{
			"service":     "triage",
			"method":      "dispatch",
			"incident_id": id,
			"status":      status,
		})

		// Отмена на середине запроса не поддерживается
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.updateTimeout)
		defer cancel()

		err := c.backend.UpdateStatus(reqCtx, c.session.Token, id, status)

		c.mu.Lock()
		delete(c.inFlight, id)
		c.mu.Unlock()

		if err != nil {
			log.WithError(err).Error("Backend did not confirm status update, local state kept")
			return
		}
		log.Info("Status update confirmed by backend")

		if c.publisher == nil {
			return
		}
		event := webhook.NewTriageEvent(c.session.OperatorName, id, status, c.now())
		if err := c.publisher.Publish(reqCtx, event); err != nil {
			log.WithError(err).Warn("Failed to publish triage event")
		}
	}()
}

func cloneIncidents(src []*models.Incident) []*models.Incident {
	out := make([]*models.Incident, len(src))
	for i, inc := range src {
		out[i] = inc.Clone()
	}
	return out
}
