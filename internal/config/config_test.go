package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.Wizard.AdvanceDelay)
	assert.Equal(t, "LEAD_GENERATION", cfg.Wizard.LeadObjective)
	assert.Equal(t, []string{"CONVERSIONS", "WEB_CONVERSIONS", "PRODUCT_SALES"}, cfg.Wizard.OptimizationObjectives)
	assert.Equal(t, 512, cfg.Cache.Size)
	assert.Equal(t, 3, cfg.Upstream.RetryMax)
	assert.Equal(t, "localhost:9000", cfg.Upstream.BaseURL.Host)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WIZARD_ADVANCE_DELAY", "2s")
	t.Setenv("WIZARD_OPTIMIZATION_OBJECTIVES", "CONVERSIONS,APP_INSTALLS")
	t.Setenv("UPSTREAM_BASE_URL", "https://ads.example.com/v2")
	t.Setenv("CACHE_SIZE", "64")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Wizard.AdvanceDelay)
	assert.Equal(t, []string{"CONVERSIONS", "APP_INSTALLS"}, cfg.Wizard.OptimizationObjectives)
	assert.Equal(t, "/v2", cfg.Upstream.BaseURL.Path)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("CACHE_REFETCH_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"

	logger := cfg.Log.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Equal(t, slog.LevelInfo, (Config{}).Log.SlogLevel())
}
