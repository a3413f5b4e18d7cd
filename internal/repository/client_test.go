package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/siren_dashboard/internal/config"
	"github.com/shenikar/siren_dashboard/internal/models"
	"github.com/shenikar/siren_dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient направляет все три сервиса на один тестовый сервер
func newTestClient(t *testing.T, handler http.HandlerFunc) *BackendClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewBackendClient(&config.Config{
		BackendURL:      srv.URL,
		AnalysisURL:     srv.URL,
		HotspotURL:      srv.URL,
		BackendTimeout:  2 * time.Second,
		AnalysisTimeout: 2 * time.Second,
	})
}

func uploadRequest() models.UploadRequest {
	return models.UploadRequest{
		File:        &models.VideoFile{Name: "crash.mp4", Content: strings.NewReader("frames")},
		Location:    "Anna Nagar",
		Coordinates: &models.Coordinates{Latitude: 13.08, Longitude: 80.21},
	}
}

func TestAnalyze_Success(t *testing.T) {
	var base string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Anna Nagar", r.FormValue("location"))
		assert.JSONEq(t, `{"lat":13.08,"lng":80.21}`, r.FormValue("coordinates"))

		file, header, err := r.FormFile("video")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "crash.mp4", header.Filename)
		assert.Equal(t, "frames", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"report":"R","summary":"S","images":["/static/a.jpg","https://cdn.example/b.jpg"]}`))
	})
	base = client.analysisBaseURL

	resp, err := client.Analyze(context.Background(), uploadRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "R", resp.Report)
	assert.Equal(t, "S", resp.Summary)
	assert.Equal(t, []string{base + "/static/a.jpg", "https://cdn.example/b.jpg"}, resp.Images)
}

func TestAnalyze_ErrorFieldWithStatus500(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"corrupt file"}`))
	})

	resp, err := client.Analyze(context.Background(), uploadRequest())

	require.NoError(t, err)
	assert.Equal(t, "corrupt file", resp.Error)
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.Analyze(context.Background(), uploadRequest())

	assert.ErrorIs(t, err, service.ErrTransport)
}

func TestAnalyze_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewBackendClient(&config.Config{
		BackendURL:      srv.URL,
		AnalysisURL:     srv.URL,
		HotspotURL:      srv.URL,
		BackendTimeout:  time.Second,
		AnalysisTimeout: time.Second,
	})

	_, err := client.Analyze(context.Background(), uploadRequest())

	assert.ErrorIs(t, err, service.ErrTransport)
}

func TestFetchAssigned_Success(t *testing.T) {
	var base string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accidents/assigned-police/", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":1,"address":"Poonamallee High Road","severity":"HIGH","description":"two cars","timestamp":"2024-01-15T10:30:00Z","image":"/media/a.jpg","status":"pending"},
			{"id":2,"address":"Mount Road","severity":"minor","description":"","timestamp":"2024-01-15T11:00:00.123456","image":null,"image_url":"http://media.local/clip_video.mp4","status":"accepted"}
		]`))
	})
	base = client.backendBaseURL

	incidents, err := client.FetchAssigned(context.Background(), "secret-token")

	require.NoError(t, err)
	require.Len(t, incidents, 2)

	assert.Equal(t, int64(1), incidents[0].ID)
	assert.Equal(t, models.SeverityHigh, incidents[0].Severity)
	assert.Equal(t, models.StatusPending, incidents[0].Status)
	assert.Equal(t, base+"/media/a.jpg", incidents[0].EvidenceRef)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), incidents[0].Timestamp)
	assert.False(t, incidents[0].EvidenceIsVideo())

	assert.Equal(t, models.Severity("minor"), incidents[1].Severity)
	assert.Equal(t, models.StatusAccepted, incidents[1].Status)
	assert.Equal(t, "http://media.local/clip_video.mp4", incidents[1].EvidenceRef)
	assert.True(t, incidents[1].EvidenceIsVideo())
	assert.False(t, incidents[1].Timestamp.IsZero())
}

func TestFetchAssigned_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"token expired"}`, want: service.ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"Unauthorized"}`, want: service.ErrAuth},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, want: service.ErrFetch},
		{name: "malformed", status: http.StatusOK, body: `{"not":"a list"}`, want: service.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			incidents, err := client.FetchAssigned(context.Background(), "token")

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, incidents)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/accidents/42/status/", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "accepted"}, body)
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateStatus(context.Background(), "token", 42, models.StatusAccepted)
	require.NoError(t, err)
}

func TestUpdateStatus_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.UpdateStatus(context.Background(), "token", 42, models.StatusRejected)
	assert.ErrorIs(t, err, service.ErrFetch)
	assert.ErrorContains(t, err, "update incident 42 status")
}

func TestFetchHotspots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accidents/hotspots", r.URL.Path)
		_, _ = w.Write([]byte(`[{"latitude":13.08,"longitude":80.27,"count":5,"severity":"MEDIUM"}]`))
	})

	hotspots, err := client.FetchHotspots(context.Background())

	require.NoError(t, err)
	require.Len(t, hotspots, 1)
	assert.Equal(t, models.SeverityMedium, hotspots[0].Severity)
	assert.Equal(t, 5, hotspots[0].Count)
}
