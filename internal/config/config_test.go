package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Env{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		TPS:          TPS,
		Particles:    ParticleCount,
		Sound:        true,
		Notify:       true,
		LogLevel:     "info",
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NMBK_WINDOW_WIDTH", "640")
	t.Setenv("NMBK_WINDOW_HEIGHT", "480")
	t.Setenv("NMBK_PARTICLES", "100")
	t.Setenv("NMBK_SOUND", "false")
	t.Setenv("NMBK_CONTENT_FILE", "/tmp/site.yaml")
	t.Setenv("NMBK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, 480, cfg.WindowHeight)
	assert.Equal(t, 100, cfg.Particles)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "/tmp/site.yaml", cfg.ContentFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "NMBK_TPS", "fast"},
		{"zero width", "NMBK_WINDOW_WIDTH", "0"},
		{"negative particles", "NMBK_PARTICLES", "-1"},
		{"bad level", "NMBK_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
