package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("GRADER_WORKERS", "8")
	t.Setenv("GRADER_DECODE_TIMEOUT_MS", "2500")
	t.Setenv("CRITERIA_PRESETS_PATH", "/etc/psdgrader/presets.yaml")
	t.Setenv("APP_HOST", "grader.example.edu")
	t.Setenv("APP_SCHEME", "https")

	cfg := Load()

	assert.Equal(t, "grader.example.edu", cfg.AppHost)
	assert.Equal(t, "https", cfg.AppScheme)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 8, cfg.Grader.Workers)
	assert.Equal(t, 2500*time.Millisecond, cfg.Grader.DecodeTimeout())
	assert.Equal(t, "/etc/psdgrader/presets.yaml", cfg.Grader.PresetsPath)
}

func TestLoad_GraderDefaults(t *testing.T) {
	for _, k := range []string{"GRADER_WORKERS", "GRADER_DECODE_TIMEOUT_MS", "GRADER_MAX_UPLOAD_MB", "GRADER_MAX_ENTRY_MB", "GRADER_PASS_THRESHOLD", "GRADER_PATTERN_CACHE_SIZE"} {
		t.Setenv(k, "")
	}

	g := Load().Grader

	assert.Equal(t, 4, g.Workers)
	assert.Equal(t, 10*time.Second, g.DecodeTimeout())
	assert.Equal(t, 200<<20, g.MaxUploadBytes())
	assert.Equal(t, int64(500)<<20, g.MaxEntryBytes())
	assert.Equal(t, 70, g.PassThreshold)
	assert.Equal(t, 256, g.PatternCacheSize)
}

func TestArchiveEnabled(t *testing.T) {
	cfg := &AppConfig{}
	assert.False(t, cfg.ArchiveEnabled())

	cfg.Database.Host = "db"
	assert.False(t, cfg.ArchiveEnabled())

	cfg.MinIO = MinIOConfig{Endpoint: "minio:9000", Bucket: "reports"}
	assert.True(t, cfg.ArchiveEnabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
