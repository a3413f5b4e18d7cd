package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"BACKEND_URL", "ANALYSIS_URL", "HOTSPOT_URL", "STAGE1_DELAY", "STAGE2_DELAY", "SESSION_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, cfg.BackendURL, cfg.AnalysisURL)
	assert.Equal(t, cfg.BackendURL, cfg.HotspotURL)
	assert.Equal(t, 20*time.Second, cfg.Stage1Delay)
	assert.Equal(t, 40*time.Second, cfg.Stage2Delay)
	assert.Equal(t, time.Duration(0), cfg.IncidentRefreshInterval)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://siren.local:8000/")
	t.Setenv("ANALYSIS_URL", "http://engine.local:5000")
	t.Setenv("HOTSPOT_URL", "")
	t.Setenv("STAGE1_DELAY", "5s")
	t.Setenv("STAGE2_DELAY", "9s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://siren.local:8000", cfg.BackendURL)
	assert.Equal(t, "http://engine.local:5000", cfg.AnalysisURL)
	assert.Equal(t, "http://siren.local:8000", cfg.HotspotURL)
	assert.Equal(t, 5*time.Second, cfg.Stage1Delay)
}

func TestLoadConfig_InvalidStageDelays(t *testing.T) {
	t.Setenv("STAGE1_DELAY", "40s")
	t.Setenv("STAGE2_DELAY", "20s")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "STAGE2_DELAY")
}

func TestLoadConfig_InvalidBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "localhost")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "BACKEND_URL")
}
