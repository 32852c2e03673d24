package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "mongo")
	t.Setenv("DB_PORT", "27017")
	t.Setenv("DB_USER", "maze")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "vinom")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("JWT_ISSUER", "vinom-maze")
	t.Setenv("REST_PORT", "9090")
	t.Setenv("MAZE_MAX_DIMENSION", "64")

	cfg := Load()

	assert.Equal(t, "mongo", cfg.DBHost)
	assert.Equal(t, 27017, cfg.DBPort)
	assert.Equal(t, 9090, cfg.RESTPort)
	assert.Equal(t, 64, cfg.MazeMaxDimension)
	assert.Equal(t, "0.0.0.0", cfg.HostIP)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 20, cfg.MazePublicMaxDimension)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
}
