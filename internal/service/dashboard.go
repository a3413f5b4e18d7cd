package service

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Dashboard - состояние одной сессии оператора
type Dashboard struct {
	Session models.Session
	Jobs    *JobEstimator
	Triage  *TriageController

	hotspots *HotspotService
	logger   *logrus.Logger

	lastSeen time.Time // под мьютексом реестра
}

// DashboardView - данные для первичной отрисовки
type DashboardView struct {
	Operator      string                `json:"operator"`
	Incidents     []*models.Incident    `json:"incidents"`
	Hotspots      []*models.Hotspot     `json:"hotspots"`
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
	Job           JobSnapshot           `json:"job"`
}

// Load параллельно загружает назначенные инциденты и горячие точки.
// Ошибка горячих точек не прерывает загрузку, так как они только для карты.
func (d *Dashboard) Load(ctx context.Context) (*DashboardView, error) {
	var hotspots []*models.Hotspot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := d.Triage.FetchAssigned(gctx)
		return err
	})
	g.Go(func() error {
		if d.hotspots == nil {
			return nil
		}
		list, err := d.hotspots.List(gctx)
		if err != nil {
			d.logger.WithError(err).WithField("operator", d.Session.OperatorName).Warn("Dashboard loaded without hotspots")
			return nil
		}
		hotspots = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if hotspots == nil {
		hotspots = make([]*models.Hotspot, 0)
	}
	return &DashboardView{
		Operator:      d.Session.OperatorName,
		Incidents:     d.Triage.Filter(models.StatusPending),
		Hotspots:      hotspots,
		Notifications: d.Triage.Notifications(),
		UnreadCount:   d.Triage.UnreadCount(),
		Job:           d.Jobs.Snapshot(),
	}, nil
}

// Deps - общие зависимости всех сессий
type Deps struct {
	Analysis      AnalysisBackend
	Incidents     IncidentBackend
	Hotspots      *HotspotService
	Publisher     webhook.Publisher
	Scheduler     Scheduler
	StageDelays   StageDelays
	UpdateTimeout time.Duration
	Logger        *logrus.Logger
}

// SessionRegistry хранит дашборды по токену оператора
type SessionRegistry struct {
	deps Deps
	now  func() time.Time

	mu         sync.Mutex
	dashboards map[string]*Dashboard

	// ended ждет PATCH-запросы уже завершенных сессий
	ended sync.WaitGroup
}

func NewSessionRegistry(deps Deps) *SessionRegistry {
	if deps.StageDelays == (StageDelays{}) {
		deps.StageDelays = DefaultStageDelays
	}
	return &SessionRegistry{
		deps:       deps,
		now:        time.Now,
		dashboards: make(map[string]*Dashboard),
	}
}

// Get возвращает дашборд сессии, создавая его при первом обращении
func (r *SessionRegistry) Get(session models.Session) *Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.dashboards[session.Token]; ok {
		d.lastSeen = r.now()
		return d
	}

	d := &Dashboard{
		Session:  session,
		Jobs:     NewJobEstimator(r.deps.Analysis, r.deps.Scheduler, r.deps.StageDelays, r.deps.Logger),
		Triage:   NewTriageController(r.deps.Incidents, r.deps.Publisher, session, r.deps.UpdateTimeout, r.deps.Logger),
		hotspots: r.deps.Hotspots,
		logger:   r.deps.Logger,
		lastSeen: r.now(),
	}
	r.dashboards[session.Token] = d
	r.deps.Logger.WithField("operator", session.OperatorName).Info("Operator session started")
	return d
}

// End завершает сессию: сбрасывает задачу загрузки и удаляет дашборд
func (r *SessionRegistry) End(token string) bool {
	r.mu.Lock()
	d, ok := r.dashboards[token]
	delete(r.dashboards, token)
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.retire(d)
	r.deps.Logger.WithField("operator", d.Session.OperatorName).Info("Operator session ended")
	return true
}

// ExpireIdle завершает сессии, к которым не обращались дольше maxIdle.
// Сессии с незавершенной загрузкой не трогаются.
func (r *SessionRegistry) ExpireIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var expired []*Dashboard
	for token, d := range r.dashboards {
		if d.lastSeen.After(cutoff) || d.Jobs.Stage().Active() {
			continue
		}
		delete(r.dashboards, token)
		expired = append(expired, d)
	}
	r.mu.Unlock()

	for _, d := range expired {
		r.retire(d)
		r.deps.Logger.WithField("operator", d.Session.OperatorName).Info("Idle operator session expired")
	}
	return len(expired)
}

// retire сбрасывает задачу загрузки и передает ожидание PATCH-запросов сессии реестру
func (r *SessionRegistry) retire(d *Dashboard) {
	d.Jobs.Reset()
	r.ended.Add(1)
	go func() {
		defer r.ended.Done()
		d.Triage.Wait()
	}()
}

// Each вызывает fn для каждой активной сессии
func (r *SessionRegistry) Each(fn func(*Dashboard)) {
	r.mu.Lock()
	dashboards := make([]*Dashboard, 0, len(r.dashboards))
	for _, d := range r.dashboards {
		dashboards = append(dashboards, d)
	}
	r.mu.Unlock()

	for _, d := range dashboards {
		fn(d)
	}
}

// Len возвращает число активных сессий
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dashboards)
}

// Wait дожидается фоновых PATCH-запросов всех сессий, включая уже завершенные
func (r *SessionRegistry) Wait() {
	r.Each(func(d *Dashboard) { d.Triage.Wait() })
	r.ended.Wait()
}
