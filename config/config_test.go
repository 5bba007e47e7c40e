package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugMetricsDisabledByDefault(t *testing.T) {
	t.Setenv("DEBUG_METRICS_ENABLED", "")

	cfg := Load()

	assert.False(t, cfg.DebugMetricsEnabled, "/debug/vars must stay off unless opted into")
}

func TestDebugMetricsOptIn(t *testing.T) {
	t.Setenv("DEBUG_METRICS_ENABLED", "true")

	cfg := Load()

	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}
