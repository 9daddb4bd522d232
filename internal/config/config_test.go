package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	env := `SERVER_ADDRESS=127.0.0.1:9090
DB_SOURCE=postgres://u:p@db:5432/land?sslmode=disable
KAKAO_API_KEY=test-key
GEOCODE_TIMEOUT=5s
REGION_PREFIX=인천광역시
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	assert.Equal(t, "postgres://u:p@db:5432/land?sslmode=disable", cfg.DBSource)
	assert.Equal(t, "test-key", cfg.KakaoAPIKey)
	assert.Equal(t, 5*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, "인천광역시", cfg.RegionPrefix)
	// Unset keys keep their defaults.
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, 24*time.Hour, cfg.GeocodeCacheTTL)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, "https://dapi.kakao.com", cfg.KakaoAPIBase)
	assert.Equal(t, 3*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}
