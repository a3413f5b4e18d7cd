package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher периодически перезагружает назначенные инциденты всех сессий,
// чтобы изменения других офицеров и автотаймаута бэкенда попадали в списки,
// и завершает сессии, простаивающие дольше idleTimeout.
type Refresher struct {
	registry    *SessionRegistry
	interval    time.Duration
	idleTimeout time.Duration
	logger      *logrus.Logger
}

func NewRefresher(registry *SessionRegistry, interval, idleTimeout time.Duration, logger *logrus.Logger) *Refresher {
	return &Refresher{
		registry:    registry,
		interval:    interval,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Start запускает фоновую горутину. Нулевой интервал отключает обновление,
// нулевой idleTimeout отключает завершение простаивающих сессий.
func (r *Refresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info("Incident refresh is disabled")
	}
	if r.interval <= 0 && r.idleTimeout <= 0 {
		return
	}

	r.logger.WithFields(logrus.Fields{
		"interval":     r.interval,
		"idle_timeout": r.idleTimeout,
	}).Info("Starting incident refresher...")
	go func() {
		var refreshC, sweepC <-chan time.Time
		if r.interval > 0 {
			ticker := time.NewTicker(r.interval)
			defer ticker.Stop()
			refreshC = ticker.C
		}
		if r.idleTimeout > 0 {
			ticker := time.NewTicker(sweepInterval(r.idleTimeout))
			defer ticker.Stop()
			sweepC = ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping incident refresher.")
				return
			case <-refreshC:
				r.RefreshAll(ctx)
			case <-sweepC:
				if n := r.registry.ExpireIdle(r.idleTimeout); n > 0 {
					r.logger.WithField("expired", n).Info("Idle sessions expired")
				}
			}
		}
	}()
}

func sweepInterval(idleTimeout time.Duration) time.Duration {
	return min(max(idleTimeout/2, time.Second), time.Minute)
}

// RefreshAll перезагружает списки всех загруженных сессий.
// Сессии с отозванными учетными данными завершаются.
func (r *Refresher) RefreshAll(ctx context.Context) {
	var expired []string
	r.registry.Each(func(d *Dashboard) {
		if !d.Triage.Loaded() {
			return
		}
		if _, err := d.Triage.FetchAssigned(ctx); err != nil && errors.Is(err, ErrAuth) {
			expired = append(expired, d.Session.Token)
		}
	})
	for _, token := range expired {
		r.registry.End(token)
	}
}
