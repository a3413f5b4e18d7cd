package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/siren_dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - структура для доставки событий разбора на внешний вебхук
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *resty.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient:  resty.New().SetTimeout(cfg.WebhookTimeout),
	}
}

// Start запускает горутину для обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting triage webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping triage webhook worker.")
				return
			default:
				// BRPOP блокируется до появления события, 0 - без таймаута
				result, err := w.redisClient.BRPop(ctx, 0, triageQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop triage event from Redis")
					sleepCtx(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event TriageEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal triage event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *Worker) deliver(ctx context.Context, event TriageEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"incident_id": event.IncidentID,
		"status":      event.Status,
	})
	log.Debug("Delivering triage event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping triage event delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			if !sleepCtx(ctx, delay) {
				return false
			}
			delay *= 2
		}

		req := w.httpClient.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(rawPayload)

		// HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			req.SetHeader("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := req.Post(w.cfg.WebhookURL)
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
			continue
		}

		if resp.IsSuccess() {
			log.Info("Triage event delivered successfully.")
			return true
		}
		log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", resp.StatusCode(), maxRetries-1-i)
	}

	log.Errorf("Failed to deliver triage event after %d attempts.", maxRetries)
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
