package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host is configured.
func (d DatabaseConfig) Enabled() bool { return d.Host != "" }

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object storage endpoint and bucket are configured.
func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" && m.Bucket != "" }

// GraderConfig tunes the grading pipeline.
type GraderConfig struct {
	Workers          int
	DecodeTimeoutMS  int
	MaxUploadMB      int
	MaxEntryMB       int
	PassThreshold    int
	PatternCacheSize int
	PresetsPath      string
}

// DecodeTimeout is the bound on a single decode-ladder rung.
func (g GraderConfig) DecodeTimeout() time.Duration {
	return time.Duration(g.DecodeTimeoutMS) * time.Millisecond
}

// MaxUploadBytes is the HTTP request body limit.
func (g GraderConfig) MaxUploadBytes() int { return g.MaxUploadMB << 20 }

// MaxEntryBytes is the largest decompressed archive entry that will be analyzed.
func (g GraderConfig) MaxEntryBytes() int64 { return int64(g.MaxEntryMB) << 20 }

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	AppScheme string
	Port      string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Grader    GraderConfig
}

// ArchiveEnabled reports whether graded batches can be persisted. Both the database and
// object storage are required.
func (c *AppConfig) ArchiveEnabled() bool {
	return c.Database.Enabled() && c.MinIO.Enabled()
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		AppScheme: getEnv("APP_SCHEME", "http"),
		Port:      getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Grader: GraderConfig{
			Workers:          getEnvInt("GRADER_WORKERS", 4),
			DecodeTimeoutMS:  getEnvInt("GRADER_DECODE_TIMEOUT_MS", 10000),
			MaxUploadMB:      getEnvInt("GRADER_MAX_UPLOAD_MB", 200),
			MaxEntryMB:       getEnvInt("GRADER_MAX_ENTRY_MB", 500),
			PassThreshold:    getEnvInt("GRADER_PASS_THRESHOLD", 70),
			PatternCacheSize: getEnvInt("GRADER_PATTERN_CACHE_SIZE", 256),
			PresetsPath:      getEnv("CRITERIA_PRESETS_PATH", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
