package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/siren_dashboard/internal/config"
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewWorker(nil, logger, &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
}

func testEvent(t *testing.T) (TriageEvent, string) {
	event := NewTriageEvent("Inspector Ravi", 7, models.StatusAccepted, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestDeliver_SignedPayload(t *testing.T) {
	event, raw := testEvent(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, raw, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(raw, "s3cret"), r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.True(t, newTestWorker(srv.URL).deliver(context.Background(), event, raw))
}

func TestDeliver_UnsignedWithoutSecret(t *testing.T) {
	event, raw := testEvent(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL)
	worker.cfg.WebhookSecret = ""

	assert.True(t, worker.deliver(context.Background(), event, raw))
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	event, raw := testEvent(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, newTestWorker(srv.URL).deliver(context.Background(), event, raw))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	event, raw := testEvent(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.False(t, newTestWorker(srv.URL).deliver(context.Background(), event, raw))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	event, raw := testEvent(t)
	assert.False(t, newTestWorker("").deliver(context.Background(), event, raw))
}

func TestDeliver_StopsOnCancel(t *testing.T) {
	event, raw := testEvent(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL)
	worker.cfg.WebhookBaseDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	assert.False(t, worker.deliver(ctx, event, raw))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Подпись детерминирована и зависит от секрета
	a := generateHMACSHA256("payload", "key-1")
	assert.Len(t, a, 64)
	assert.Equal(t, a, generateHMACSHA256("payload", "key-1"))
	assert.NotEqual(t, a, generateHMACSHA256("payload", "key-2"))
}
